package format

import (
	"github.com/dhamidi/kotpoet/kotlin"
)

// emitClass renders a declaration without a trailing newline after the
// closing brace; callers decide what follows (a newline, a comma inside an
// enum, or nothing).
func (p *kotlinPrinter) emitClass(spec kotlin.ClassSpec, anonymous bool) {
	if !anonymous {
		p.emitKDoc(spec.KDoc)
		for _, a := range spec.Annotations {
			p.emitAnnotation(a)
			p.newline()
		}
		p.emitModifiers(spec.Modifiers)
		switch spec.Kind {
		case kotlin.ClassKindInterface:
			p.write("interface ")
		case kotlin.ClassKindEnum:
			p.write("enum class ")
		case kotlin.ClassKindAnnotation:
			p.write("annotation class ")
		default:
			p.write("class ")
		}
		p.write(spec.Name)
		p.emitTypeVariables(spec.TypeVariables)
		p.emitSupertypes(spec)
		p.write(" ")
	}
	p.write("{\n")
	p.indent()
	p.pushScope(spec)
	p.emitClassBody(spec)
	p.popScope(spec)
	p.unindent()
	p.write("}")
}

func (p *kotlinPrinter) emitSupertypes(spec kotlin.ClassSpec) {
	if spec.SuperClass == nil && len(spec.SuperInterfaces) == 0 {
		return
	}
	p.write(" : ")
	first := true
	if spec.SuperClass != nil {
		p.emitType(spec.SuperClass)
		first = false
	}
	for _, iface := range spec.SuperInterfaces {
		if !first {
			p.write(", ")
		}
		p.emitType(iface)
		first = false
	}
}

// emitClassBody writes the member groups in their fixed order with exactly
// one blank line between non-empty groups: enum constants, static members,
// instance members, constructors, functions, nested types. Initializer
// blocks trail the member group of their kind with no blank line in between.
func (p *kotlinPrinter) emitClassBody(spec kotlin.ClassSpec) {
	var staticInits, instanceInits []kotlin.InitializerBlock
	for _, init := range spec.Initializers {
		if init.IsStatic {
			staticInits = append(staticInits, init)
		} else {
			instanceInits = append(instanceInits, init)
		}
	}

	var groups []func()
	if len(spec.EnumConstants) > 0 {
		constants := spec.EnumConstants
		groups = append(groups, func() { p.emitEnumConstants(spec, constants) })
	}
	if len(spec.StaticProperties) > 0 || len(staticInits) > 0 {
		groups = append(groups, func() {
			for _, prop := range spec.StaticProperties {
				p.emitProperty(prop)
			}
			for _, init := range staticInits {
				p.emitInitializer("static init", init)
			}
		})
	}
	if len(spec.Properties) > 0 || len(instanceInits) > 0 {
		groups = append(groups, func() {
			for _, prop := range spec.Properties {
				p.emitProperty(prop)
			}
			for _, init := range instanceInits {
				p.emitInitializer("init", init)
			}
		})
	}
	if len(spec.Constructors) > 0 {
		groups = append(groups, func() {
			for i, ctor := range spec.Constructors {
				if i > 0 {
					p.newline()
				}
				p.emitFunction(ctor)
			}
		})
	}
	if len(spec.Functions) > 0 {
		groups = append(groups, func() {
			for i, fn := range spec.Functions {
				if i > 0 {
					p.newline()
				}
				p.emitFunction(fn)
			}
		})
	}
	if len(spec.Types) > 0 {
		groups = append(groups, func() {
			for i, nested := range spec.Types {
				if i > 0 {
					p.newline()
				}
				p.emitClass(nested, false)
				p.newline()
			}
		})
	}

	for i, emit := range groups {
		if i > 0 {
			p.newline()
		}
		emit()
	}
}

func (p *kotlinPrinter) emitEnumConstants(spec kotlin.ClassSpec, constants []kotlin.EnumConstant) {
	hasMembers := len(spec.StaticProperties) > 0 || len(spec.Properties) > 0 ||
		len(spec.Initializers) > 0 || len(spec.Constructors) > 0 ||
		len(spec.Functions) > 0 || len(spec.Types) > 0
	for i, constant := range constants {
		if i > 0 {
			p.newline()
		}
		p.write(constant.Name)
		if len(constant.Arguments) > 0 {
			p.write("(")
			for j, arg := range constant.Arguments {
				if j > 0 {
					p.write(", ")
				}
				p.emitCode(arg)
			}
			p.write(")")
		}
		if constant.Body != nil {
			p.write(" ")
			p.emitClass(*constant.Body, true)
		}
		switch {
		case i < len(constants)-1:
			p.write(",\n")
		case hasMembers:
			p.write(";\n")
		default:
			p.newline()
		}
	}
}

func (p *kotlinPrinter) emitProperty(prop kotlin.PropertySpec) {
	p.emitKDoc(prop.KDoc)
	for _, a := range prop.Annotations {
		p.emitAnnotation(a)
		p.newline()
	}
	p.emitModifiers(prop.Modifiers)
	if prop.Mutable {
		p.write("var ")
	} else {
		p.write("val ")
	}
	p.write(prop.Name)
	p.write(": ")
	p.emitType(prop.Type)
	if prop.Initializer != nil {
		p.write(" = ")
		p.openUnit()
		p.emitCode(*prop.Initializer)
		p.closeUnit()
	}
	p.newline()
}

func (p *kotlinPrinter) emitInitializer(keyword string, block kotlin.InitializerBlock) {
	p.write(keyword)
	p.write(" {\n")
	p.indent()
	p.emitCode(block.Code)
	p.ensureNewline()
	p.unindent()
	p.write("}\n")
}

func (p *kotlinPrinter) emitFunction(fn kotlin.FunctionSpec) {
	p.emitKDoc(fn.KDoc)
	for _, a := range fn.Annotations {
		p.emitAnnotation(a)
		p.newline()
	}
	if len(fn.Throws) > 0 {
		p.write("@")
		p.emitType(kotlin.ThrowsClass)
		p.write("(")
		for i, t := range fn.Throws {
			if i > 0 {
				p.write(", ")
			}
			p.emitType(t)
			p.write("::class")
		}
		p.write(")")
		p.newline()
	}
	p.emitModifiers(fn.Modifiers)
	if fn.IsConstructor() {
		p.write("constructor")
	} else {
		p.write("fun ")
		if len(fn.TypeVariables) > 0 {
			p.emitTypeVariables(fn.TypeVariables)
			p.write(" ")
		}
		p.write(fn.Name)
	}
	p.write("(")
	for i, param := range fn.Parameters {
		if i > 0 {
			p.write(",")
			p.wrapSpace()
		}
		p.emitParameter(param, fn.Varargs && i == len(fn.Parameters)-1)
	}
	p.write(")")
	if !fn.IsConstructor() && fn.ReturnType != nil {
		p.write(": ")
		p.emitType(fn.ReturnType)
	}
	switch {
	case fn.DefaultValue != nil:
		p.write(" default ")
		p.emitCode(*fn.DefaultValue)
		p.newline()
	case fn.Body == nil:
		p.newline()
	default:
		p.write(" {\n")
		p.indent()
		p.emitCode(*fn.Body)
		p.ensureNewline()
		p.unindent()
		p.write("}\n")
	}
}

func (p *kotlinPrinter) emitParameter(param kotlin.ParameterSpec, vararg bool) {
	for _, a := range param.Annotations {
		p.emitAnnotation(a)
		p.write(" ")
	}
	p.emitModifiers(param.Modifiers)
	if vararg {
		p.write("vararg ")
	}
	p.write(param.Name)
	p.write(": ")
	if vararg {
		p.emitType(varargElement(param.Type))
	} else {
		p.emitType(param.Type)
	}
}

// varargElement strips one array layer off the declared type; builders
// guarantee the type is array-shaped when the vararg flag is set.
func varargElement(t kotlin.TypeName) kotlin.TypeName {
	switch v := t.(type) {
	case kotlin.ArrayType:
		return v.Elem
	case kotlin.ParameterizedType:
		if len(v.Args) == 1 {
			return v.Args[0]
		}
	case kotlin.ClassName:
		simple := v.Simple()
		if len(simple) > len("Array") {
			return kotlin.NewClassName(v.PackageName, simple[:len(simple)-len("Array")])
		}
	}
	return t
}

// emitAnnotation renders inline: no parentheses without members, a bare value
// for the single conventional "value" member, one member per line otherwise.
// A member holding several values renders as a bracketed list.
func (p *kotlinPrinter) emitAnnotation(a kotlin.AnnotationSpec) {
	p.write("@")
	p.emitType(a.Type)
	if len(a.Members) == 0 {
		return
	}
	if len(a.Members) == 1 && a.Members[0].Name == "value" {
		p.write("(")
		p.emitAnnotationValues(a.Members[0].Values)
		p.write(")")
		return
	}
	p.write("(\n")
	p.indent()
	for i, m := range a.Members {
		p.write(m.Name)
		p.write(" = ")
		p.emitAnnotationValues(m.Values)
		if i < len(a.Members)-1 {
			p.write(",")
		}
		p.newline()
	}
	p.unindent()
	p.write(")")
}

func (p *kotlinPrinter) emitAnnotationValues(values []kotlin.CodeBlock) {
	if len(values) == 1 {
		p.emitCode(values[0])
		return
	}
	p.write("[")
	for i, v := range values {
		if i > 0 {
			p.write(", ")
		}
		p.emitCode(v)
	}
	p.write("]")
}

package kotlin

import (
	"github.com/cockroachdb/errors"
)

// ConstructorName is the sentinel name marking a FunctionSpec as a
// constructor.
const ConstructorName = "<init>"

// FunctionSpec describes a function or constructor. A nil Body means the
// function is abstract (declaration only). DefaultValue is meaningful only
// for members of annotation classes.
type FunctionSpec struct {
	Name          string
	Modifiers     []Modifier
	TypeVariables []TypeVariable
	ReturnType    TypeName
	Parameters    []ParameterSpec
	Throws        []TypeName
	Varargs       bool
	KDoc          CodeBlock
	Annotations   []AnnotationSpec
	Body          *CodeBlock
	DefaultValue  *CodeBlock
}

func (f FunctionSpec) IsConstructor() bool {
	return f.Name == ConstructorName
}

func (f FunctionSpec) ToBuilder() *FunctionSpecBuilder {
	b := NewFunctionSpecBuilder(f.Name)
	b.spec = f
	b.spec.Modifiers = append([]Modifier(nil), f.Modifiers...)
	b.spec.TypeVariables = append([]TypeVariable(nil), f.TypeVariables...)
	b.spec.Parameters = append([]ParameterSpec(nil), f.Parameters...)
	b.spec.Throws = append([]TypeName(nil), f.Throws...)
	b.spec.Annotations = append([]AnnotationSpec(nil), f.Annotations...)
	if f.Body != nil {
		b.body = f.Body.ToBuilder()
	}
	if f.DefaultValue != nil {
		dv := *f.DefaultValue
		b.spec.DefaultValue = &dv
	}
	return b
}

type FunctionSpecBuilder struct {
	spec FunctionSpec
	body *CodeBlockBuilder
	err  error
}

func NewFunctionSpecBuilder(name string) *FunctionSpecBuilder {
	return &FunctionSpecBuilder{spec: FunctionSpec{Name: name}}
}

func NewConstructorBuilder() *FunctionSpecBuilder {
	return NewFunctionSpecBuilder(ConstructorName)
}

func (b *FunctionSpecBuilder) AddModifiers(mods ...Modifier) *FunctionSpecBuilder {
	b.spec.Modifiers = append(b.spec.Modifiers, mods...)
	return b
}

func (b *FunctionSpecBuilder) AddTypeVariable(tv TypeVariable) *FunctionSpecBuilder {
	b.spec.TypeVariables = append(b.spec.TypeVariables, tv)
	return b
}

func (b *FunctionSpecBuilder) Returns(t TypeName) *FunctionSpecBuilder {
	b.spec.ReturnType = t
	return b
}

func (b *FunctionSpecBuilder) AddParameter(p ParameterSpec) *FunctionSpecBuilder {
	b.spec.Parameters = append(b.spec.Parameters, p)
	return b
}

func (b *FunctionSpecBuilder) AddThrows(types ...TypeName) *FunctionSpecBuilder {
	b.spec.Throws = append(b.spec.Throws, types...)
	return b
}

// Varargs marks the last parameter as variadic. Build rejects it unless the
// last parameter's type is array-shaped.
func (b *FunctionSpecBuilder) Varargs() *FunctionSpecBuilder {
	b.spec.Varargs = true
	return b
}

func (b *FunctionSpecBuilder) AddAnnotation(a AnnotationSpec) *FunctionSpecBuilder {
	b.spec.Annotations = append(b.spec.Annotations, a)
	return b
}

func (b *FunctionSpecBuilder) AddKDoc(format string, args ...any) *FunctionSpecBuilder {
	if b.err != nil {
		return b
	}
	doc := b.spec.KDoc.ToBuilder().Add(format, args...)
	block, err := doc.Build()
	if err != nil {
		b.err = errors.Wrapf(err, "kdoc for function %q", b.spec.Name)
		return b
	}
	b.spec.KDoc = block
	return b
}

func (b *FunctionSpecBuilder) ensureBody() *CodeBlockBuilder {
	if b.body == nil {
		b.body = NewCodeBlockBuilder()
	}
	return b.body
}

// AddCode appends raw code to the function body.
func (b *FunctionSpecBuilder) AddCode(format string, args ...any) *FunctionSpecBuilder {
	b.ensureBody().Add(format, args...)
	return b
}

// AddStatement appends a full statement to the function body.
func (b *FunctionSpecBuilder) AddStatement(format string, args ...any) *FunctionSpecBuilder {
	b.ensureBody().AddStatement(format, args...)
	return b
}

func (b *FunctionSpecBuilder) BeginControlFlow(format string, args ...any) *FunctionSpecBuilder {
	b.ensureBody().BeginControlFlow(format, args...)
	return b
}

func (b *FunctionSpecBuilder) NextControlFlow(format string, args ...any) *FunctionSpecBuilder {
	b.ensureBody().NextControlFlow(format, args...)
	return b
}

func (b *FunctionSpecBuilder) EndControlFlow() *FunctionSpecBuilder {
	b.ensureBody().EndControlFlow()
	return b
}

// DefaultValue sets the default for an annotation class member. It may be set
// at most once; ClassSpecBuilder.Build rejects it outside annotation classes.
func (b *FunctionSpecBuilder) DefaultValue(format string, args ...any) *FunctionSpecBuilder {
	if b.err != nil {
		return b
	}
	if b.spec.DefaultValue != nil {
		b.err = errors.Newf("default value for function %q was already set", b.spec.Name)
		return b
	}
	block, err := Code(format, args...)
	if err != nil {
		b.err = errors.Wrapf(err, "default value for function %q", b.spec.Name)
		return b
	}
	b.spec.DefaultValue = &block
	return b
}

func (b *FunctionSpecBuilder) Build() (FunctionSpec, error) {
	if b.err != nil {
		return FunctionSpec{}, b.err
	}
	if b.spec.Name == "" {
		return FunctionSpec{}, errors.New("function name must not be empty")
	}
	if b.spec.IsConstructor() && b.spec.ReturnType != nil {
		return FunctionSpec{}, errors.New("constructors cannot declare a return type")
	}
	if b.spec.Varargs {
		if len(b.spec.Parameters) == 0 {
			return FunctionSpec{}, errors.Newf("function %q is varargs but has no parameters", b.spec.Name)
		}
		last := b.spec.Parameters[len(b.spec.Parameters)-1]
		if !IsArrayShaped(last.Type) {
			return FunctionSpec{}, errors.Newf("function %q: last parameter %q must be array-shaped to be varargs", b.spec.Name, last.Name)
		}
	}
	spec := b.spec
	spec.Modifiers = append([]Modifier(nil), b.spec.Modifiers...)
	spec.TypeVariables = append([]TypeVariable(nil), b.spec.TypeVariables...)
	spec.Parameters = append([]ParameterSpec(nil), b.spec.Parameters...)
	spec.Throws = append([]TypeName(nil), b.spec.Throws...)
	spec.Annotations = append([]AnnotationSpec(nil), b.spec.Annotations...)
	if b.body != nil && !b.body.IsEmpty() {
		body, err := b.body.Build()
		if err != nil {
			return FunctionSpec{}, errors.Wrapf(err, "body of function %q", b.spec.Name)
		}
		spec.Body = &body
	}
	if b.spec.DefaultValue != nil {
		dv := *b.spec.DefaultValue
		spec.DefaultValue = &dv
	}
	return spec, nil
}

package kotlin

import (
	"github.com/cockroachdb/errors"
)

// ClassKind discriminates the declaration forms. All kinds share one spec
// type and one builder; kind-specific rules are enforced in Build.
type ClassKind string

const (
	ClassKindClass      ClassKind = "class"
	ClassKindInterface  ClassKind = "interface"
	ClassKindEnum       ClassKind = "enum"
	ClassKindAnnotation ClassKind = "annotation"
)

// EnumConstant is one enum entry: a name, optional constructor arguments and
// an optional anonymous body.
type EnumConstant struct {
	Name      string
	Arguments []CodeBlock
	Body      *ClassSpec
}

// InitializerBlock is a static or instance initializer.
type InitializerBlock struct {
	IsStatic bool
	Code     CodeBlock
}

// ClassSpec is a frozen declaration. Member sequences keep insertion order
// within their group; the writer decides inter-group ordering.
// OriginatingElements is an opaque bag for host-tool bookkeeping; it is
// propagated to the file level and never interpreted.
type ClassSpec struct {
	Kind                ClassKind
	Name                string
	Modifiers           []Modifier
	TypeVariables       []TypeVariable
	SuperClass          TypeName
	SuperInterfaces     []TypeName
	Annotations         []AnnotationSpec
	KDoc                CodeBlock
	EnumConstants       []EnumConstant
	StaticProperties    []PropertySpec
	Properties          []PropertySpec
	Constructors        []FunctionSpec
	Functions           []FunctionSpec
	Types               []ClassSpec
	Initializers        []InitializerBlock
	OriginatingElements []any
}

// ClassName returns the spec's name within pkg, for referencing the type it
// declares.
func (c ClassSpec) ClassName(pkg string) ClassName {
	return NewClassName(pkg, c.Name)
}

func (c ClassSpec) ToBuilder() *ClassSpecBuilder {
	b := NewClassSpecBuilder(c.Kind, c.Name)
	b.anonymous = c.Name == ""
	b.spec = c
	b.spec.Modifiers = append([]Modifier(nil), c.Modifiers...)
	b.spec.TypeVariables = append([]TypeVariable(nil), c.TypeVariables...)
	b.spec.SuperInterfaces = append([]TypeName(nil), c.SuperInterfaces...)
	b.spec.Annotations = append([]AnnotationSpec(nil), c.Annotations...)
	b.spec.EnumConstants = append([]EnumConstant(nil), c.EnumConstants...)
	b.spec.StaticProperties = append([]PropertySpec(nil), c.StaticProperties...)
	b.spec.Properties = append([]PropertySpec(nil), c.Properties...)
	b.spec.Constructors = append([]FunctionSpec(nil), c.Constructors...)
	b.spec.Functions = append([]FunctionSpec(nil), c.Functions...)
	b.spec.Types = append([]ClassSpec(nil), c.Types...)
	b.spec.Initializers = append([]InitializerBlock(nil), c.Initializers...)
	b.spec.OriginatingElements = append([]any(nil), c.OriginatingElements...)
	return b
}

type ClassSpecBuilder struct {
	spec      ClassSpec
	anonymous bool
	err       error
}

func NewClassSpecBuilder(kind ClassKind, name string) *ClassSpecBuilder {
	return &ClassSpecBuilder{spec: ClassSpec{Kind: kind, Name: name}}
}

func NewClassBuilder(name string) *ClassSpecBuilder {
	return NewClassSpecBuilder(ClassKindClass, name)
}

func NewInterfaceBuilder(name string) *ClassSpecBuilder {
	return NewClassSpecBuilder(ClassKindInterface, name)
}

func NewEnumBuilder(name string) *ClassSpecBuilder {
	return NewClassSpecBuilder(ClassKindEnum, name)
}

func NewAnnotationClassBuilder(name string) *ClassSpecBuilder {
	return NewClassSpecBuilder(ClassKindAnnotation, name)
}

// NewAnonymousClassBuilder builds a body for an enum constant.
func NewAnonymousClassBuilder() *ClassSpecBuilder {
	return &ClassSpecBuilder{spec: ClassSpec{Kind: ClassKindClass}, anonymous: true}
}

func (b *ClassSpecBuilder) AddModifiers(mods ...Modifier) *ClassSpecBuilder {
	b.spec.Modifiers = append(b.spec.Modifiers, mods...)
	return b
}

func (b *ClassSpecBuilder) AddTypeVariable(tv TypeVariable) *ClassSpecBuilder {
	b.spec.TypeVariables = append(b.spec.TypeVariables, tv)
	return b
}

// SuperClass sets the superclass. Only class kinds may extend, and only once.
func (b *ClassSpecBuilder) SuperClass(t TypeName) *ClassSpecBuilder {
	if b.err != nil {
		return b
	}
	if b.spec.Kind != ClassKindClass {
		b.err = errors.Newf("%s %q cannot have a superclass", b.spec.Kind, b.spec.Name)
		return b
	}
	if b.spec.SuperClass != nil {
		b.err = errors.Newf("superclass of %q already set to %s", b.spec.Name, b.spec.SuperClass)
		return b
	}
	b.spec.SuperClass = t
	return b
}

func (b *ClassSpecBuilder) AddSuperInterface(t TypeName) *ClassSpecBuilder {
	b.spec.SuperInterfaces = append(b.spec.SuperInterfaces, t)
	return b
}

func (b *ClassSpecBuilder) AddAnnotation(a AnnotationSpec) *ClassSpecBuilder {
	b.spec.Annotations = append(b.spec.Annotations, a)
	return b
}

func (b *ClassSpecBuilder) AddKDoc(format string, args ...any) *ClassSpecBuilder {
	if b.err != nil {
		return b
	}
	doc := b.spec.KDoc.ToBuilder().Add(format, args...)
	block, err := doc.Build()
	if err != nil {
		b.err = errors.Wrapf(err, "kdoc for %q", b.spec.Name)
		return b
	}
	b.spec.KDoc = block
	return b
}

// AddEnumConstant appends an enum entry. Build rejects constants on non-enum
// kinds.
func (b *ClassSpecBuilder) AddEnumConstant(c EnumConstant) *ClassSpecBuilder {
	b.spec.EnumConstants = append(b.spec.EnumConstants, c)
	return b
}

// AddStaticProperty appends to the static member group.
func (b *ClassSpecBuilder) AddStaticProperty(p PropertySpec) *ClassSpecBuilder {
	b.spec.StaticProperties = append(b.spec.StaticProperties, p)
	return b
}

// AddProperty appends to the instance member group.
func (b *ClassSpecBuilder) AddProperty(p PropertySpec) *ClassSpecBuilder {
	b.spec.Properties = append(b.spec.Properties, p)
	return b
}

// AddFunction routes constructors and plain functions into their groups. The
// function group keeps raw insertion order regardless of modifiers.
func (b *ClassSpecBuilder) AddFunction(f FunctionSpec) *ClassSpecBuilder {
	if f.IsConstructor() {
		b.spec.Constructors = append(b.spec.Constructors, f)
	} else {
		b.spec.Functions = append(b.spec.Functions, f)
	}
	return b
}

func (b *ClassSpecBuilder) AddType(t ClassSpec) *ClassSpecBuilder {
	b.spec.Types = append(b.spec.Types, t)
	return b
}

// AddInitializerBlock appends an instance initializer.
func (b *ClassSpecBuilder) AddInitializerBlock(code CodeBlock) *ClassSpecBuilder {
	b.spec.Initializers = append(b.spec.Initializers, InitializerBlock{Code: code})
	return b
}

// AddStaticBlock appends a static initializer.
func (b *ClassSpecBuilder) AddStaticBlock(code CodeBlock) *ClassSpecBuilder {
	b.spec.Initializers = append(b.spec.Initializers, InitializerBlock{IsStatic: true, Code: code})
	return b
}

// AddOriginatingElement records opaque host bookkeeping data.
func (b *ClassSpecBuilder) AddOriginatingElement(e any) *ClassSpecBuilder {
	b.spec.OriginatingElements = append(b.spec.OriginatingElements, e)
	return b
}

func (b *ClassSpecBuilder) Build() (ClassSpec, error) {
	if b.err != nil {
		return ClassSpec{}, b.err
	}
	if b.spec.Name == "" && !b.anonymous {
		return ClassSpec{}, errors.New("class name must not be empty")
	}
	switch b.spec.Kind {
	case ClassKindClass, ClassKindInterface, ClassKindEnum, ClassKindAnnotation:
	default:
		return ClassSpec{}, errors.Newf("unknown class kind %q", b.spec.Kind)
	}
	if b.spec.Kind == ClassKindEnum && len(b.spec.EnumConstants) == 0 {
		return ClassSpec{}, errors.Newf("enum %q must have at least one constant", b.spec.Name)
	}
	if b.spec.Kind != ClassKindEnum && len(b.spec.EnumConstants) > 0 {
		return ClassSpec{}, errors.Newf("%s %q cannot have enum constants", b.spec.Kind, b.spec.Name)
	}
	if len(b.spec.Initializers) > 0 {
		switch b.spec.Kind {
		case ClassKindClass, ClassKindEnum:
		default:
			return ClassSpec{}, errors.Newf("%s %q cannot have initializer blocks", b.spec.Kind, b.spec.Name)
		}
	}
	if b.spec.Kind != ClassKindAnnotation {
		for _, f := range b.spec.Functions {
			if f.DefaultValue != nil {
				return ClassSpec{}, errors.Newf("function %q has a default value but %q is not an annotation class", f.Name, b.spec.Name)
			}
		}
	}
	spec := b.spec
	spec.Modifiers = append([]Modifier(nil), b.spec.Modifiers...)
	spec.TypeVariables = append([]TypeVariable(nil), b.spec.TypeVariables...)
	spec.SuperInterfaces = append([]TypeName(nil), b.spec.SuperInterfaces...)
	spec.Annotations = append([]AnnotationSpec(nil), b.spec.Annotations...)
	spec.EnumConstants = append([]EnumConstant(nil), b.spec.EnumConstants...)
	spec.StaticProperties = append([]PropertySpec(nil), b.spec.StaticProperties...)
	spec.Properties = append([]PropertySpec(nil), b.spec.Properties...)
	spec.Constructors = append([]FunctionSpec(nil), b.spec.Constructors...)
	spec.Functions = append([]FunctionSpec(nil), b.spec.Functions...)
	spec.Types = append([]ClassSpec(nil), b.spec.Types...)
	spec.Initializers = append([]InitializerBlock(nil), b.spec.Initializers...)
	spec.OriginatingElements = append([]any(nil), b.spec.OriginatingElements...)
	return spec, nil
}

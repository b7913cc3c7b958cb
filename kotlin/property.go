package kotlin

import (
	"github.com/cockroachdb/errors"
)

// PropertySpec describes a val/var declaration. Initializer is nil when the
// property is declared without a value.
type PropertySpec struct {
	Name        string
	Type        TypeName
	Mutable     bool
	Modifiers   []Modifier
	KDoc        CodeBlock
	Annotations []AnnotationSpec
	Initializer *CodeBlock
}

func (p PropertySpec) ToBuilder() *PropertySpecBuilder {
	b := NewPropertySpecBuilder(p.Name, p.Type)
	b.spec = p
	b.spec.Modifiers = append([]Modifier(nil), p.Modifiers...)
	b.spec.Annotations = append([]AnnotationSpec(nil), p.Annotations...)
	if p.Initializer != nil {
		init := *p.Initializer
		b.spec.Initializer = &init
	}
	return b
}

type PropertySpecBuilder struct {
	spec PropertySpec
	err  error
}

func NewPropertySpecBuilder(name string, typ TypeName) *PropertySpecBuilder {
	return &PropertySpecBuilder{spec: PropertySpec{Name: name, Type: typ}}
}

// Mutable marks the property as var instead of val.
func (b *PropertySpecBuilder) Mutable() *PropertySpecBuilder {
	b.spec.Mutable = true
	return b
}

func (b *PropertySpecBuilder) AddModifiers(mods ...Modifier) *PropertySpecBuilder {
	b.spec.Modifiers = append(b.spec.Modifiers, mods...)
	return b
}

func (b *PropertySpecBuilder) AddAnnotation(a AnnotationSpec) *PropertySpecBuilder {
	b.spec.Annotations = append(b.spec.Annotations, a)
	return b
}

func (b *PropertySpecBuilder) AddKDoc(format string, args ...any) *PropertySpecBuilder {
	if b.err != nil {
		return b
	}
	doc := b.spec.KDoc.ToBuilder().Add(format, args...)
	block, err := doc.Build()
	if err != nil {
		b.err = errors.Wrapf(err, "kdoc for property %q", b.spec.Name)
		return b
	}
	b.spec.KDoc = block
	return b
}

// Initializer sets the property's value. It may be set at most once.
func (b *PropertySpecBuilder) Initializer(format string, args ...any) *PropertySpecBuilder {
	if b.err != nil {
		return b
	}
	if b.spec.Initializer != nil {
		b.err = errors.Newf("initializer for property %q was already set", b.spec.Name)
		return b
	}
	block, err := Code(format, args...)
	if err != nil {
		b.err = errors.Wrapf(err, "initializer for property %q", b.spec.Name)
		return b
	}
	b.spec.Initializer = &block
	return b
}

func (b *PropertySpecBuilder) Build() (PropertySpec, error) {
	if b.err != nil {
		return PropertySpec{}, b.err
	}
	if b.spec.Name == "" {
		return PropertySpec{}, errors.New("property name must not be empty")
	}
	if b.spec.Type == nil {
		return PropertySpec{}, errors.Newf("property %q has no type", b.spec.Name)
	}
	spec := b.spec
	spec.Modifiers = append([]Modifier(nil), b.spec.Modifiers...)
	spec.Annotations = append([]AnnotationSpec(nil), b.spec.Annotations...)
	if b.spec.Initializer != nil {
		init := *b.spec.Initializer
		spec.Initializer = &init
	}
	return spec, nil
}

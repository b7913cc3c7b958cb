package kotlin

import (
	"github.com/cockroachdb/errors"
)

// ParameterSpec describes one callable parameter.
type ParameterSpec struct {
	Name        string
	Type        TypeName
	Modifiers   []Modifier
	Annotations []AnnotationSpec
}

func (p ParameterSpec) ToBuilder() *ParameterSpecBuilder {
	b := NewParameterSpecBuilder(p.Name, p.Type)
	b.spec.Modifiers = append([]Modifier(nil), p.Modifiers...)
	b.spec.Annotations = append([]AnnotationSpec(nil), p.Annotations...)
	return b
}

type ParameterSpecBuilder struct {
	spec ParameterSpec
	err  error
}

func NewParameterSpecBuilder(name string, typ TypeName) *ParameterSpecBuilder {
	return &ParameterSpecBuilder{spec: ParameterSpec{Name: name, Type: typ}}
}

// Parameter is the no-frills constructor for a plain name: Type parameter.
func Parameter(name string, typ TypeName) ParameterSpec {
	return ParameterSpec{Name: name, Type: typ}
}

func (b *ParameterSpecBuilder) AddModifiers(mods ...Modifier) *ParameterSpecBuilder {
	b.spec.Modifiers = append(b.spec.Modifiers, mods...)
	return b
}

func (b *ParameterSpecBuilder) AddAnnotation(a AnnotationSpec) *ParameterSpecBuilder {
	b.spec.Annotations = append(b.spec.Annotations, a)
	return b
}

func (b *ParameterSpecBuilder) Build() (ParameterSpec, error) {
	if b.err != nil {
		return ParameterSpec{}, b.err
	}
	if b.spec.Name == "" {
		return ParameterSpec{}, errors.New("parameter name must not be empty")
	}
	if b.spec.Type == nil {
		return ParameterSpec{}, errors.Newf("parameter %q has no type", b.spec.Name)
	}
	spec := b.spec
	spec.Modifiers = append([]Modifier(nil), b.spec.Modifiers...)
	spec.Annotations = append([]AnnotationSpec(nil), b.spec.Annotations...)
	return spec, nil
}

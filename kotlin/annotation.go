package kotlin

import (
	"github.com/cockroachdb/errors"
)

// AnnotationSpec is one annotation use. Members keep insertion order; adding
// a member under an existing name appends another value to that member, which
// renders as a list.
type AnnotationSpec struct {
	Type    ClassName
	Members []AnnotationMember
}

type AnnotationMember struct {
	Name   string
	Values []CodeBlock
}

// Annotation is the common no-member case, e.g. @Override.
func Annotation(typ ClassName) AnnotationSpec {
	return AnnotationSpec{Type: typ}
}

func (a AnnotationSpec) ToBuilder() *AnnotationSpecBuilder {
	b := NewAnnotationSpecBuilder(a.Type)
	for _, m := range a.Members {
		member := AnnotationMember{Name: m.Name, Values: append([]CodeBlock(nil), m.Values...)}
		b.members = append(b.members, member)
		b.byName[m.Name] = len(b.members) - 1
	}
	return b
}

type AnnotationSpecBuilder struct {
	typ     ClassName
	members []AnnotationMember
	byName  map[string]int
	err     error
}

func NewAnnotationSpecBuilder(typ ClassName) *AnnotationSpecBuilder {
	return &AnnotationSpecBuilder{typ: typ, byName: make(map[string]int)}
}

// AddMember appends a value to the member called name.
func (b *AnnotationSpecBuilder) AddMember(name, format string, args ...any) *AnnotationSpecBuilder {
	if b.err != nil {
		return b
	}
	if name == "" {
		b.err = errors.New("annotation member name must not be empty")
		return b
	}
	value, err := Code(format, args...)
	if err != nil {
		b.err = errors.Wrapf(err, "annotation member %q", name)
		return b
	}
	if i, ok := b.byName[name]; ok {
		b.members[i].Values = append(b.members[i].Values, value)
		return b
	}
	b.members = append(b.members, AnnotationMember{Name: name, Values: []CodeBlock{value}})
	b.byName[name] = len(b.members) - 1
	return b
}

func (b *AnnotationSpecBuilder) Build() (AnnotationSpec, error) {
	if b.err != nil {
		return AnnotationSpec{}, b.err
	}
	spec := AnnotationSpec{Type: b.typ}
	for _, m := range b.members {
		spec.Members = append(spec.Members, AnnotationMember{
			Name:   m.Name,
			Values: append([]CodeBlock(nil), m.Values...),
		})
	}
	return spec, nil
}

package kotlin

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// TypeName is a reference to a Kotlin type. The set of implementations is
// closed: ClassName, ParameterizedType, TypeVariable and ArrayType.
type TypeName interface {
	String() string
	typeName()
}

// ClassName identifies a (possibly nested) class by its package and the chain
// of simple names from the top-level class down to the class itself.
type ClassName struct {
	PackageName string
	Names       []string
}

// NewClassName builds a ClassName from a package name and at least one simple
// name. The names are ordered outermost first.
func NewClassName(packageName string, names ...string) ClassName {
	if len(names) == 0 {
		panic("kotlin: class name needs at least one simple name")
	}
	return ClassName{PackageName: packageName, Names: names}
}

// ParseClassName splits a canonical name like "com.example.Outer.Inner" into
// package and class parts. The package consists of the leading lowercase
// segments; the first segment starting with an uppercase letter begins the
// class name chain.
func ParseClassName(name string) (ClassName, error) {
	parts := strings.Split(name, ".")
	classStart := -1
	for i, part := range parts {
		if part == "" {
			return ClassName{}, errors.Newf("empty segment in class name %q", name)
		}
		if part[0] >= 'A' && part[0] <= 'Z' {
			classStart = i
			break
		}
	}
	if classStart == -1 {
		return ClassName{}, errors.Newf("no class segment in %q (expected an uppercase segment)", name)
	}
	return ClassName{
		PackageName: strings.Join(parts[:classStart], "."),
		Names:       parts[classStart:],
	}, nil
}

func (c ClassName) typeName() {}

// Simple returns the class's own simple name.
func (c ClassName) Simple() string {
	return c.Names[len(c.Names)-1]
}

// TopLevel returns the outermost class enclosing c (or c itself).
func (c ClassName) TopLevel() ClassName {
	return ClassName{PackageName: c.PackageName, Names: c.Names[:1]}
}

// Nested returns the class named name nested inside c.
func (c ClassName) Nested(name string) ClassName {
	names := make([]string, 0, len(c.Names)+1)
	names = append(names, c.Names...)
	names = append(names, name)
	return ClassName{PackageName: c.PackageName, Names: names}
}

// Enclosing returns the class enclosing c, or false for a top-level class.
func (c ClassName) Enclosing() (ClassName, bool) {
	if len(c.Names) < 2 {
		return ClassName{}, false
	}
	return ClassName{PackageName: c.PackageName, Names: c.Names[:len(c.Names)-1]}, true
}

// Canonical returns the fully qualified dotted name.
func (c ClassName) Canonical() string {
	joined := strings.Join(c.Names, ".")
	if c.PackageName == "" {
		return joined
	}
	return c.PackageName + "." + joined
}

func (c ClassName) String() string {
	return c.Canonical()
}

// Equal reports whether two class names identify the same class.
func (c ClassName) Equal(other ClassName) bool {
	if c.PackageName != other.PackageName || len(c.Names) != len(other.Names) {
		return false
	}
	for i := range c.Names {
		if c.Names[i] != other.Names[i] {
			return false
		}
	}
	return true
}

// ParameterizedType is a generic class reference like List<String>.
type ParameterizedType struct {
	Raw  ClassName
	Args []TypeName
}

// Parameterized binds type arguments to a raw class.
func Parameterized(raw ClassName, args ...TypeName) ParameterizedType {
	return ParameterizedType{Raw: raw, Args: args}
}

func (p ParameterizedType) typeName() {}

func (p ParameterizedType) String() string {
	var sb strings.Builder
	sb.WriteString(p.Raw.Canonical())
	sb.WriteString("<")
	for i, arg := range p.Args {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(arg.String())
	}
	sb.WriteString(">")
	return sb.String()
}

// TypeVariable is a declared type parameter. Bounds are rendered only at the
// declaration site.
type TypeVariable struct {
	Name   string
	Bounds []TypeName
}

func NewTypeVariable(name string, bounds ...TypeName) TypeVariable {
	return TypeVariable{Name: name, Bounds: bounds}
}

func (t TypeVariable) typeName() {}

func (t TypeVariable) String() string {
	return t.Name
}

// ArrayType renders as Array<Elem>.
type ArrayType struct {
	Elem TypeName
}

func ArrayOf(elem TypeName) ArrayType {
	return ArrayType{Elem: elem}
}

func (a ArrayType) typeName() {}

func (a ArrayType) String() string {
	return "Array<" + a.Elem.String() + ">"
}

// Well-known classes referenced by generated code and by the emitter itself.
var (
	AnyClass    = NewClassName("kotlin", "Any")
	UnitClass   = NewClassName("kotlin", "Unit")
	StringClass = NewClassName("java.lang", "String")
	ThrowsClass = NewClassName("kotlin.jvm", "Throws")
)

// primitive array classes, which count as array-shaped for vararg checks
var primitiveArrayNames = map[string]bool{
	"BooleanArray": true,
	"ByteArray":    true,
	"CharArray":    true,
	"ShortArray":   true,
	"IntArray":     true,
	"LongArray":    true,
	"FloatArray":   true,
	"DoubleArray":  true,
}

// IsArrayShaped reports whether t can back a vararg parameter.
func IsArrayShaped(t TypeName) bool {
	switch v := t.(type) {
	case ArrayType:
		return true
	case ClassName:
		return v.PackageName == "kotlin" && len(v.Names) == 1 && primitiveArrayNames[v.Names[0]]
	case ParameterizedType:
		return v.Raw.PackageName == "kotlin" && len(v.Raw.Names) == 1 && v.Raw.Names[0] == "Array"
	}
	return false
}

package kotlin

import (
	"github.com/cockroachdb/errors"
)

// FileSpec is one compilation unit: a package name and its top-level
// declaration. Rendering lives in the format package; writing the text
// anywhere is the caller's business.
type FileSpec struct {
	PackageName string
	Type        ClassSpec
}

// NewFileSpec pairs a built declaration with its package. The declaration
// must be named; anonymous specs only appear as enum constant bodies.
func NewFileSpec(packageName string, class ClassSpec) (FileSpec, error) {
	if class.Name == "" {
		return FileSpec{}, errors.New("top-level declaration must have a name")
	}
	return FileSpec{PackageName: packageName, Type: class}, nil
}

// FileName is the conventional output name for the unit.
func (f FileSpec) FileName() string {
	return f.Type.Name + ".kt"
}

// OriginatingElements aggregates the bookkeeping bags of every declaration in
// the file, outermost first.
func (f FileSpec) OriginatingElements() []any {
	var out []any
	var walk func(c ClassSpec)
	walk = func(c ClassSpec) {
		out = append(out, c.OriginatingElements...)
		for _, nested := range c.Types {
			walk(nested)
		}
		for _, ec := range c.EnumConstants {
			if ec.Body != nil {
				walk(*ec.Body)
			}
		}
	}
	walk(f.Type)
	return out
}

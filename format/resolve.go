package format

import (
	"sort"
	"strings"

	"github.com/dhamidi/kotpoet/kotlin"
)

// nameResolver decides the spelling of every class reference in one file.
// It is built once per rendering and discarded afterwards.
//
// Claim precedence: the file's own declarations (by nested path) always win
// their simple names and are never imported; among the remaining referenced
// classes, the first one encountered in the collection walk claims the
// unqualified spelling; everything else sharing that simple name is spelled
// fully qualified at every use site.
type nameResolver struct {
	filePackage string
	localPaths  map[string]bool
	claims      map[string]kotlin.ClassName
	imports     map[string]kotlin.ClassName
}

func newNameResolver(file *kotlin.FileSpec) *nameResolver {
	r := &nameResolver{
		filePackage: file.PackageName,
		localPaths:  make(map[string]bool),
		claims:      make(map[string]kotlin.ClassName),
		imports:     make(map[string]kotlin.ClassName),
	}
	r.registerLocal(file.Type, nil)
	r.collectClass(file.Type)
	return r
}

func (r *nameResolver) registerLocal(c kotlin.ClassSpec, prefix []string) {
	if c.Name == "" {
		// anonymous enum constant bodies contribute no referencable path
		for _, nested := range c.Types {
			r.registerLocal(nested, prefix)
		}
		return
	}
	path := append(append([]string(nil), prefix...), c.Name)
	r.localPaths[strings.Join(path, ".")] = true
	if _, taken := r.claims[c.Name]; !taken {
		r.claims[c.Name] = kotlin.ClassName{PackageName: r.filePackage, Names: path}
	}
	for _, nested := range c.Types {
		r.registerLocal(nested, path)
	}
	for _, ec := range c.EnumConstants {
		if ec.Body != nil {
			r.registerLocal(*ec.Body, path)
		}
	}
}

func (r *nameResolver) isLocal(c kotlin.ClassName) bool {
	return c.PackageName == r.filePackage && r.localPaths[strings.Join(c.Names, ".")]
}

func (r *nameResolver) claim(c kotlin.ClassName) {
	if _, taken := r.claims[c.Simple()]; taken {
		return
	}
	r.claims[c.Simple()] = c
	if !r.isLocal(c) && c.PackageName != "" && c.PackageName != r.filePackage {
		r.imports[c.Canonical()] = c
	}
}

func (r *nameResolver) addType(t kotlin.TypeName) {
	switch v := t.(type) {
	case kotlin.ClassName:
		r.claim(v)
	case kotlin.ParameterizedType:
		r.claim(v.Raw)
		for _, arg := range v.Args {
			r.addType(arg)
		}
	case kotlin.TypeVariable:
		for _, bound := range v.Bounds {
			r.addType(bound)
		}
	case kotlin.ArrayType:
		r.addType(v.Elem)
	}
}

// collectClass walks a declaration in emission order. KDoc fragments are
// deliberately skipped: documentation references never join the import table.
func (r *nameResolver) collectClass(c kotlin.ClassSpec) {
	for _, a := range c.Annotations {
		r.collectAnnotation(a)
	}
	for _, tv := range c.TypeVariables {
		r.addType(tv)
	}
	if c.SuperClass != nil {
		r.addType(c.SuperClass)
	}
	for _, iface := range c.SuperInterfaces {
		r.addType(iface)
	}
	for _, ec := range c.EnumConstants {
		for _, arg := range ec.Arguments {
			r.collectCode(arg)
		}
		if ec.Body != nil {
			r.collectClass(*ec.Body)
		}
	}
	for _, p := range c.StaticProperties {
		r.collectProperty(p)
	}
	for _, p := range c.Properties {
		r.collectProperty(p)
	}
	for _, init := range c.Initializers {
		r.collectCode(init.Code)
	}
	for _, f := range c.Constructors {
		r.collectFunction(f)
	}
	for _, f := range c.Functions {
		r.collectFunction(f)
	}
	for _, nested := range c.Types {
		r.collectClass(nested)
	}
}

func (r *nameResolver) collectProperty(p kotlin.PropertySpec) {
	for _, a := range p.Annotations {
		r.collectAnnotation(a)
	}
	r.addType(p.Type)
	if p.Initializer != nil {
		r.collectCode(*p.Initializer)
	}
}

func (r *nameResolver) collectFunction(f kotlin.FunctionSpec) {
	for _, a := range f.Annotations {
		r.collectAnnotation(a)
	}
	if len(f.Throws) > 0 {
		r.claim(kotlin.ThrowsClass)
		for _, t := range f.Throws {
			r.addType(t)
		}
	}
	for _, tv := range f.TypeVariables {
		r.addType(tv)
	}
	if f.ReturnType != nil {
		r.addType(f.ReturnType)
	}
	for _, p := range f.Parameters {
		r.collectParameter(p)
	}
	if f.DefaultValue != nil {
		r.collectCode(*f.DefaultValue)
	}
	if f.Body != nil {
		r.collectCode(*f.Body)
	}
}

func (r *nameResolver) collectParameter(p kotlin.ParameterSpec) {
	for _, a := range p.Annotations {
		r.collectAnnotation(a)
	}
	r.addType(p.Type)
}

func (r *nameResolver) collectAnnotation(a kotlin.AnnotationSpec) {
	r.claim(a.Type)
	for _, m := range a.Members {
		for _, v := range m.Values {
			r.collectCode(v)
		}
	}
}

func (r *nameResolver) collectCode(block kotlin.CodeBlock) {
	for _, arg := range block.Args {
		switch v := arg.(type) {
		case kotlin.TypeName:
			r.addType(v)
		case kotlin.CodeBlock:
			r.collectCode(v)
		case kotlin.AnnotationSpec:
			r.collectAnnotation(v)
		case kotlin.PropertySpec:
			r.collectProperty(v)
		case kotlin.ParameterSpec:
			r.collectParameter(v)
		case kotlin.FunctionSpec:
			r.collectFunction(v)
		case kotlin.ClassSpec:
			r.collectClass(v)
		}
	}
}

// resolve spells c at a use site. scope is the stack of enclosing declaration
// names, outermost first; shadowed holds the nested-declaration names visible
// on that stack. Resolution always produces a legal spelling.
func (r *nameResolver) resolve(c kotlin.ClassName, scope []string, shadowed map[string]bool) string {
	if r.isLocal(c) {
		common := 0
		for common < len(scope) && common < len(c.Names) && scope[common] == c.Names[common] {
			common++
		}
		if common == len(c.Names) {
			return c.Simple()
		}
		if common == 0 {
			return strings.Join(c.Names, ".")
		}
		return strings.Join(c.Names[common:], ".")
	}
	if shadowed[c.Simple()] {
		return r.fullyQualified(c)
	}
	if owner, ok := r.claims[c.Simple()]; ok && owner.Equal(c) {
		return c.Simple()
	}
	return r.fullyQualified(c)
}

// resolveDoc spells c inside documentation: abbreviate only when the file
// already imports exactly this class, otherwise keep the supplied spelling.
func (r *nameResolver) resolveDoc(c kotlin.ClassName) string {
	if imported, ok := r.imports[c.Canonical()]; ok && imported.Equal(c) {
		return c.Simple()
	}
	if r.isLocal(c) {
		return strings.Join(c.Names, ".")
	}
	return r.fullyQualified(c)
}

func (r *nameResolver) fullyQualified(c kotlin.ClassName) string {
	return c.Canonical()
}

func (r *nameResolver) importList() []string {
	names := make([]string, 0, len(r.imports))
	for name := range r.imports {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

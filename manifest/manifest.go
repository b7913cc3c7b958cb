// Package manifest loads YAML descriptions of compilation units and lowers
// them through the kotlin builders, so every structural invariant guards
// manifest input the same way it guards programmatic input.
package manifest

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/dhamidi/kotpoet/kotlin"
)

type File struct {
	Package string `yaml:"package"`
	Class   Class  `yaml:"class"`
}

type Class struct {
	Name             string       `yaml:"name"`
	Kind             string       `yaml:"kind"`
	Modifiers        []string     `yaml:"modifiers"`
	KDoc             string       `yaml:"kdoc"`
	Annotations      []Annotation `yaml:"annotations"`
	Extends          string       `yaml:"extends"`
	Implements       []string     `yaml:"implements"`
	Constants        []Constant   `yaml:"constants"`
	StaticProperties []Property   `yaml:"staticProperties"`
	Properties       []Property   `yaml:"properties"`
	Functions        []Function   `yaml:"functions"`
	Types            []Class      `yaml:"types"`
}

type Annotation struct {
	Type    string   `yaml:"type"`
	Members []Member `yaml:"members"`
}

type Member struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

type Constant struct {
	Name      string   `yaml:"name"`
	Arguments []string `yaml:"arguments"`
}

type Property struct {
	Name        string   `yaml:"name"`
	Type        string   `yaml:"type"`
	Mutable     bool     `yaml:"mutable"`
	Modifiers   []string `yaml:"modifiers"`
	KDoc        string   `yaml:"kdoc"`
	Initializer string   `yaml:"initializer"`
}

type Function struct {
	Name        string       `yaml:"name"`
	Constructor bool         `yaml:"constructor"`
	Returns     string       `yaml:"returns"`
	Modifiers   []string     `yaml:"modifiers"`
	KDoc        string       `yaml:"kdoc"`
	Annotations []Annotation `yaml:"annotations"`
	Parameters  []Parameter  `yaml:"parameters"`
	Throws      []string     `yaml:"throws"`
	Body        []string     `yaml:"body"`
}

type Parameter struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// Load reads a manifest file and builds the compilation unit it describes.
func Load(path string) (*kotlin.FileSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading manifest %s", path)
	}
	return Parse(data)
}

// Parse decodes a manifest and lowers it through the builders.
func Parse(data []byte) (*kotlin.FileSpec, error) {
	var m File
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(err, "decoding manifest")
	}
	class, err := buildClass(m.Class)
	if err != nil {
		return nil, err
	}
	file, err := kotlin.NewFileSpec(m.Package, class)
	if err != nil {
		return nil, err
	}
	return &file, nil
}

func buildClass(c Class) (kotlin.ClassSpec, error) {
	kind := kotlin.ClassKind(c.Kind)
	if c.Kind == "" {
		kind = kotlin.ClassKindClass
	}
	b := kotlin.NewClassSpecBuilder(kind, c.Name)
	for _, m := range c.Modifiers {
		b.AddModifiers(kotlin.Modifier(m))
	}
	if c.KDoc != "" {
		b.AddKDoc("%L\n", c.KDoc)
	}
	for _, a := range c.Annotations {
		spec, err := buildAnnotation(a)
		if err != nil {
			return kotlin.ClassSpec{}, errors.Wrapf(err, "class %q", c.Name)
		}
		b.AddAnnotation(spec)
	}
	if c.Extends != "" {
		super, err := parseTypeRef(c.Extends)
		if err != nil {
			return kotlin.ClassSpec{}, errors.Wrapf(err, "class %q extends", c.Name)
		}
		b.SuperClass(super)
	}
	for _, impl := range c.Implements {
		iface, err := parseTypeRef(impl)
		if err != nil {
			return kotlin.ClassSpec{}, errors.Wrapf(err, "class %q implements", c.Name)
		}
		b.AddSuperInterface(iface)
	}
	for _, constant := range c.Constants {
		ec := kotlin.EnumConstant{Name: constant.Name}
		for _, arg := range constant.Arguments {
			code, err := kotlin.Code("%L", arg)
			if err != nil {
				return kotlin.ClassSpec{}, errors.Wrapf(err, "constant %q", constant.Name)
			}
			ec.Arguments = append(ec.Arguments, code)
		}
		b.AddEnumConstant(ec)
	}
	for _, prop := range c.StaticProperties {
		spec, err := buildProperty(prop)
		if err != nil {
			return kotlin.ClassSpec{}, errors.Wrapf(err, "class %q", c.Name)
		}
		b.AddStaticProperty(spec)
	}
	for _, prop := range c.Properties {
		spec, err := buildProperty(prop)
		if err != nil {
			return kotlin.ClassSpec{}, errors.Wrapf(err, "class %q", c.Name)
		}
		b.AddProperty(spec)
	}
	for _, fn := range c.Functions {
		spec, err := buildFunction(fn)
		if err != nil {
			return kotlin.ClassSpec{}, errors.Wrapf(err, "class %q", c.Name)
		}
		b.AddFunction(spec)
	}
	for _, nested := range c.Types {
		spec, err := buildClass(nested)
		if err != nil {
			return kotlin.ClassSpec{}, err
		}
		b.AddType(spec)
	}
	spec, err := b.Build()
	if err != nil {
		return kotlin.ClassSpec{}, errors.Wrapf(err, "building class %q", c.Name)
	}
	return spec, nil
}

func buildAnnotation(a Annotation) (kotlin.AnnotationSpec, error) {
	typ, err := kotlin.ParseClassName(a.Type)
	if err != nil {
		return kotlin.AnnotationSpec{}, errors.Wrapf(err, "annotation %q", a.Type)
	}
	if len(a.Members) == 0 {
		return kotlin.Annotation(typ), nil
	}
	b := kotlin.NewAnnotationSpecBuilder(typ)
	for _, m := range a.Members {
		b.AddMember(m.Name, "%L", m.Value)
	}
	return b.Build()
}

func buildProperty(p Property) (kotlin.PropertySpec, error) {
	typ, err := parseTypeRef(p.Type)
	if err != nil {
		return kotlin.PropertySpec{}, errors.Wrapf(err, "property %q", p.Name)
	}
	b := kotlin.NewPropertySpecBuilder(p.Name, typ)
	if p.Mutable {
		b.Mutable()
	}
	for _, m := range p.Modifiers {
		b.AddModifiers(kotlin.Modifier(m))
	}
	if p.KDoc != "" {
		b.AddKDoc("%L\n", p.KDoc)
	}
	if p.Initializer != "" {
		b.Initializer("%L", p.Initializer)
	}
	return b.Build()
}

func buildFunction(f Function) (kotlin.FunctionSpec, error) {
	var b *kotlin.FunctionSpecBuilder
	if f.Constructor {
		b = kotlin.NewConstructorBuilder()
	} else {
		b = kotlin.NewFunctionSpecBuilder(f.Name)
	}
	for _, m := range f.Modifiers {
		b.AddModifiers(kotlin.Modifier(m))
	}
	if f.KDoc != "" {
		b.AddKDoc("%L\n", f.KDoc)
	}
	for _, a := range f.Annotations {
		spec, err := buildAnnotation(a)
		if err != nil {
			return kotlin.FunctionSpec{}, errors.Wrapf(err, "function %q", f.Name)
		}
		b.AddAnnotation(spec)
	}
	if f.Returns != "" {
		ret, err := parseTypeRef(f.Returns)
		if err != nil {
			return kotlin.FunctionSpec{}, errors.Wrapf(err, "function %q returns", f.Name)
		}
		b.Returns(ret)
	}
	for _, param := range f.Parameters {
		typ, err := parseTypeRef(param.Type)
		if err != nil {
			return kotlin.FunctionSpec{}, errors.Wrapf(err, "function %q parameter %q", f.Name, param.Name)
		}
		b.AddParameter(kotlin.Parameter(param.Name, typ))
	}
	for _, thrown := range f.Throws {
		typ, err := parseTypeRef(thrown)
		if err != nil {
			return kotlin.FunctionSpec{}, errors.Wrapf(err, "function %q throws", f.Name)
		}
		b.AddThrows(typ)
	}
	for _, line := range f.Body {
		b.AddStatement("%L", line)
	}
	return b.Build()
}

// parseTypeRef understands canonical class names plus angle-bracket type
// arguments, e.g. "java.util.List<java.lang.String>" or
// "Array<java.lang.String>".
func parseTypeRef(s string) (kotlin.TypeName, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.New("empty type reference")
	}
	open := strings.IndexByte(s, '<')
	if open < 0 {
		return kotlin.ParseClassName(s)
	}
	if !strings.HasSuffix(s, ">") {
		return nil, errors.Newf("unbalanced type arguments in %q", s)
	}
	rawName := strings.TrimSpace(s[:open])
	args, err := splitTypeArgs(s[open+1 : len(s)-1])
	if err != nil {
		return nil, errors.Wrapf(err, "type %q", s)
	}
	parsed := make([]kotlin.TypeName, 0, len(args))
	for _, arg := range args {
		t, err := parseTypeRef(arg)
		if err != nil {
			return nil, err
		}
		parsed = append(parsed, t)
	}
	if rawName == "Array" && len(parsed) == 1 {
		return kotlin.ArrayOf(parsed[0]), nil
	}
	raw, err := kotlin.ParseClassName(rawName)
	if err != nil {
		return nil, err
	}
	return kotlin.Parameterized(raw, parsed...), nil
}

func splitTypeArgs(s string) ([]string, error) {
	var args []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '<':
			depth++
		case '>':
			depth--
			if depth < 0 {
				return nil, errors.Newf("unbalanced angle brackets in %q", s)
			}
		case ',':
			if depth == 0 {
				args = append(args, s[start:i])
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, errors.Newf("unbalanced angle brackets in %q", s)
	}
	args = append(args, s[start:])
	return args, nil
}

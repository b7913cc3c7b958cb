package format

import (
	"strings"

	"github.com/dhamidi/kotpoet/kotlin"
)

// Options configures rendering. Zero values pick the defaults: two-space
// indent and a 100 column soft limit. Capabilities of the target toolchain
// belong here, resolved once by the caller; the writer never probes its
// environment.
type Options struct {
	Indent      string
	ColumnLimit int
}

func (o Options) withDefaults() Options {
	if o.Indent == "" {
		o.Indent = "  "
	}
	if o.ColumnLimit == 0 {
		o.ColumnLimit = 100
	}
	return o
}

// kotlinPrinter walks a frozen declaration tree and serializes it. It owns
// the lexical scope stack the resolver consults and the atomic-unit state for
// wrap points. The printer cannot fail: every malformed input is rejected by
// the builders before a tree ever reaches it.
type kotlinPrinter struct {
	out         *lineWrapper
	resolver    *nameResolver
	opts        Options
	scope       []string
	shadow      []map[string]bool
	unitDepth   int
	unitIndent  int
	commentMode bool
}

func newKotlinPrinter(out *strings.Builder, resolver *nameResolver, opts Options) *kotlinPrinter {
	return &kotlinPrinter{
		out:      newLineWrapper(out, opts.Indent, opts.ColumnLimit),
		resolver: resolver,
		opts:     opts,
	}
}

func (p *kotlinPrinter) write(s string) {
	p.out.WriteString(s)
}

func (p *kotlinPrinter) newline() {
	p.out.WriteString("\n")
}

func (p *kotlinPrinter) ensureNewline() {
	if !p.out.atLineStart() {
		p.newline()
	}
}

func (p *kotlinPrinter) indent() {
	p.out.Indent()
}

func (p *kotlinPrinter) unindent() {
	p.out.Unindent()
}

// wrapSpace emits a soft break candidate. Inside an atomic unit the
// continuation indent is one level deeper than the unit's own indent.
func (p *kotlinPrinter) wrapSpace() {
	level := p.out.indentLevel
	if p.unitDepth > 0 {
		level = p.unitIndent + 1
	}
	p.out.WrapSpace(level)
}

func (p *kotlinPrinter) openUnit() {
	if p.unitDepth == 0 {
		p.unitIndent = p.out.indentLevel
	}
	p.unitDepth++
}

func (p *kotlinPrinter) closeUnit() {
	if p.unitDepth > 0 {
		p.unitDepth--
	}
}

func (p *kotlinPrinter) pushScope(spec kotlin.ClassSpec) {
	if spec.Name != "" {
		p.scope = append(p.scope, spec.Name)
	}
	visible := make(map[string]bool, len(spec.Types)+1)
	if spec.Name != "" {
		visible[spec.Name] = true
	}
	for _, nested := range spec.Types {
		visible[nested.Name] = true
	}
	p.shadow = append(p.shadow, visible)
}

func (p *kotlinPrinter) popScope(spec kotlin.ClassSpec) {
	if spec.Name != "" {
		p.scope = p.scope[:len(p.scope)-1]
	}
	p.shadow = p.shadow[:len(p.shadow)-1]
}

func (p *kotlinPrinter) shadowSet() map[string]bool {
	merged := make(map[string]bool)
	for _, visible := range p.shadow {
		for name := range visible {
			merged[name] = true
		}
	}
	return merged
}

func (p *kotlinPrinter) emitType(t kotlin.TypeName) {
	switch v := t.(type) {
	case kotlin.ClassName:
		if p.commentMode {
			p.write(p.resolver.resolveDoc(v))
			return
		}
		p.write(p.resolver.resolve(v, p.scope, p.shadowSet()))
	case kotlin.ParameterizedType:
		p.emitType(v.Raw)
		p.write("<")
		for i, arg := range v.Args {
			if i > 0 {
				p.write(", ")
			}
			p.emitType(arg)
		}
		p.write(">")
	case kotlin.TypeVariable:
		p.write(v.Name)
	case kotlin.ArrayType:
		p.write("Array<")
		p.emitType(v.Elem)
		p.write(">")
	}
}

func (p *kotlinPrinter) emitModifiers(mods []kotlin.Modifier) {
	for _, m := range kotlin.SortModifiers(mods) {
		p.write(string(m))
		p.write(" ")
	}
}

func (p *kotlinPrinter) emitTypeVariables(vars []kotlin.TypeVariable) {
	if len(vars) == 0 {
		return
	}
	p.write("<")
	for i, tv := range vars {
		if i > 0 {
			p.write(", ")
		}
		p.write(tv.Name)
		for j, bound := range tv.Bounds {
			if j == 0 {
				p.write(" : ")
			} else {
				p.write(" & ")
			}
			p.emitType(bound)
		}
	}
	p.write(">")
}

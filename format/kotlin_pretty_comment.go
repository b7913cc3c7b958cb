package format

import (
	"strings"

	"github.com/dhamidi/kotpoet/kotlin"
)

// emitKDoc renders a documentation block with the conventional per-line
// continuation marker. Type references inside documentation do not touch the
// import table: the fragment is expanded by a comment-mode sub-printer that
// abbreviates a reference only when the file happens to import exactly that
// class, and otherwise keeps the spelling the caller supplied.
func (p *kotlinPrinter) emitKDoc(doc kotlin.CodeBlock) {
	if doc.IsEmpty() {
		return
	}
	var buf strings.Builder
	sub := &kotlinPrinter{
		out:         newLineWrapper(&buf, p.opts.Indent, 1<<30),
		resolver:    p.resolver,
		opts:        p.opts,
		scope:       p.scope,
		shadow:      p.shadow,
		commentMode: true,
	}
	sub.emitCode(doc)
	sub.out.Flush()

	text := strings.TrimSuffix(buf.String(), "\n")
	p.write("/**\n")
	for _, line := range strings.Split(text, "\n") {
		if line == "" {
			p.write(" *\n")
			continue
		}
		p.write(" * ")
		p.write(line)
		p.newline()
	}
	p.write(" */\n")
}

package format

import (
	"io"
	"strings"

	"github.com/dhamidi/kotpoet/kotlin"
)

// FileEncoder renders compilation units to a writer.
type FileEncoder struct {
	w       io.Writer
	Options Options
}

func NewFileEncoder(w io.Writer) *FileEncoder {
	return &FileEncoder{w: w}
}

func (e *FileEncoder) Encode(file *kotlin.FileSpec) error {
	text := renderFile(file, e.Options.withDefaults())
	_, err := io.WriteString(e.w, text)
	return err
}

// RenderFile produces the complete text of one compilation unit: package
// line, blank line, sorted imports, blank line, the declaration, trailing
// newline. Rendering cannot fail; builders reject every malformed tree
// before it gets here.
func RenderFile(file *kotlin.FileSpec) string {
	return renderFile(file, Options{}.withDefaults())
}

// RenderFileOptions is RenderFile with explicit rendering configuration.
func RenderFileOptions(file *kotlin.FileSpec, opts Options) string {
	return renderFile(file, opts.withDefaults())
}

// Imports reports the import lines RenderFile would emit for file, sorted by
// fully qualified name.
func Imports(file *kotlin.FileSpec) []string {
	return newNameResolver(file).importList()
}

func renderFile(file *kotlin.FileSpec, opts Options) string {
	resolver := newNameResolver(file)

	var out strings.Builder
	p := newKotlinPrinter(&out, resolver, opts)

	if file.PackageName != "" {
		p.write("package ")
		p.write(file.PackageName)
		p.write("\n\n")
	}
	imports := resolver.importList()
	for _, name := range imports {
		p.write("import ")
		p.write(name)
		p.newline()
	}
	if len(imports) > 0 {
		p.newline()
	}
	p.emitClass(file.Type, false)
	p.newline()
	p.out.Flush()
	return out.String()
}

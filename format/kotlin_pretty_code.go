package format

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dhamidi/kotpoet/kotlin"
)

// emitCode expands a frozen fragment. Argument binding was validated when the
// block was built, so consumption here cannot run out of arguments. The block
// itself is never mutated; frozen specs stay shareable across renderings.
func (p *kotlinPrinter) emitCode(block kotlin.CodeBlock) {
	argIndex := 0
	nextArg := func() any {
		arg := block.Args[argIndex]
		argIndex++
		return arg
	}
	for _, part := range block.Parts {
		switch part {
		case "%L":
			p.emitLiteral(nextArg())
		case "%N":
			name, _ := kotlin.NameOf(nextArg())
			p.write(name)
		case "%S":
			p.emitStringLiteral(nextArg())
		case "%T":
			p.emitType(nextArg().(kotlin.TypeName))
		case "%W":
			p.wrapSpace()
		case "%>":
			p.indent()
		case "%<":
			p.unindent()
		case "%[":
			p.openUnit()
		case "%]":
			p.closeUnit()
		default:
			p.write(part)
		}
	}
}

func (p *kotlinPrinter) emitLiteral(arg any) {
	switch v := arg.(type) {
	case nil:
		p.write("null")
	case string:
		p.write(v)
	case bool:
		p.write(strconv.FormatBool(v))
	case kotlin.CodeBlock:
		p.emitCode(v)
	case kotlin.TypeName:
		p.emitType(v)
	case kotlin.PropertySpec:
		p.emitProperty(v)
	case kotlin.ParameterSpec:
		p.emitParameter(v, false)
	case kotlin.FunctionSpec:
		p.emitFunction(v)
	case kotlin.AnnotationSpec:
		p.emitAnnotation(v)
	case kotlin.ClassSpec:
		p.emitClass(v, false)
		p.newline()
	case fmt.Stringer:
		p.write(v.String())
	default:
		p.write(fmt.Sprintf("%v", v))
	}
}

// emitStringLiteral renders a quoted, escaped string. A nil argument emits
// the bare literal null. Values with embedded newlines split into one quoted
// segment per source line, joined with the concatenation operator.
func (p *kotlinPrinter) emitStringLiteral(arg any) {
	var value string
	switch v := arg.(type) {
	case nil:
		p.write("null")
		return
	case string:
		value = v
	case fmt.Stringer:
		value = v.String()
	}

	segments := strings.Split(value, "\n")
	if len(segments) == 1 {
		p.write(quoteString(value))
		return
	}
	p.write(quoteString(segments[0] + "\n"))
	p.indent()
	for i := 1; i < len(segments); i++ {
		p.newline()
		segment := segments[i]
		if i < len(segments)-1 {
			segment += "\n"
		}
		p.write("+ " + quoteString(segment))
	}
	p.unindent()
}

func quoteString(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			sb.WriteString(`\\`)
		case '"':
			sb.WriteString(`\"`)
		case '$':
			sb.WriteString(`\$`)
		case '\t':
			sb.WriteString(`\t`)
		case '\b':
			sb.WriteString(`\b`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		default:
			if r < 0x20 {
				sb.WriteString(fmt.Sprintf(`\u%04x`, r))
			} else {
				sb.WriteRune(r)
			}
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

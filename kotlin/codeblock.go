package kotlin

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// CodeBlock is a frozen fragment of code. Parts holds literal text and
// directive tokens ("%L", "%N", "%S", "%T", "%W", "%>", "%<", "%[", "%]");
// Args holds the bound arguments in the order the consuming directives appear.
// Treat both as read-only once built.
type CodeBlock struct {
	Parts []string
	Args  []any
}

// Code expands one format string into a CodeBlock. All argument binding is
// checked here: unknown directives, out-of-range indexes, arguments of a kind
// the directive cannot interpret, and arguments that are never referenced all
// fail immediately.
func Code(format string, args ...any) (CodeBlock, error) {
	b := NewCodeBlockBuilder()
	b.Add(format, args...)
	return b.Build()
}

// IsEmpty reports whether the block renders no text at all.
func (c CodeBlock) IsEmpty() bool {
	for _, part := range c.Parts {
		if part != "" {
			return false
		}
	}
	return true
}

// ToBuilder derives an independent builder seeded with this block's contents.
func (c CodeBlock) ToBuilder() *CodeBlockBuilder {
	b := NewCodeBlockBuilder()
	b.parts = append(b.parts, c.Parts...)
	b.args = append(b.args, c.Args...)
	return b
}

// CodeBlockBuilder accumulates format strings and arguments. The first error
// sticks; Build reports it.
type CodeBlockBuilder struct {
	parts []string
	args  []any
	err   error
}

func NewCodeBlockBuilder() *CodeBlockBuilder {
	return &CodeBlockBuilder{}
}

// Add expands format against args and appends the result.
func (b *CodeBlockBuilder) Add(format string, args ...any) *CodeBlockBuilder {
	if b.err != nil {
		return b
	}
	parts, ordered, err := parseFormat(format, args)
	if err != nil {
		b.err = err
		return b
	}
	b.parts = append(b.parts, parts...)
	b.args = append(b.args, ordered...)
	return b
}

// AddStatement appends format wrapped in an atomic wrapping unit and
// terminated with a newline.
func (b *CodeBlockBuilder) AddStatement(format string, args ...any) *CodeBlockBuilder {
	b.Add("%[")
	b.Add(format, args...)
	b.Add("\n%]")
	return b
}

// AddCode appends a previously built block.
func (b *CodeBlockBuilder) AddCode(block CodeBlock) *CodeBlockBuilder {
	if b.err != nil {
		return b
	}
	b.parts = append(b.parts, block.Parts...)
	b.args = append(b.args, block.Args...)
	return b
}

// BeginControlFlow appends "format {" and indents. The format conventionally
// holds something like "if (%N > 0)".
func (b *CodeBlockBuilder) BeginControlFlow(format string, args ...any) *CodeBlockBuilder {
	b.Add(format, args...)
	b.Add(" {\n%>")
	return b
}

// NextControlFlow closes the current branch and opens another, as in
// "} else {".
func (b *CodeBlockBuilder) NextControlFlow(format string, args ...any) *CodeBlockBuilder {
	b.Add("%<} ")
	b.Add(format, args...)
	b.Add(" {\n%>")
	return b
}

// EndControlFlow closes the innermost control flow block.
func (b *CodeBlockBuilder) EndControlFlow() *CodeBlockBuilder {
	return b.Add("%<}\n")
}

func (b *CodeBlockBuilder) Indent() *CodeBlockBuilder {
	return b.Add("%>")
}

func (b *CodeBlockBuilder) Unindent() *CodeBlockBuilder {
	return b.Add("%<")
}

func (b *CodeBlockBuilder) IsEmpty() bool {
	return len(b.parts) == 0
}

func (b *CodeBlockBuilder) Build() (CodeBlock, error) {
	if b.err != nil {
		return CodeBlock{}, b.err
	}
	block := CodeBlock{
		Parts: append([]string(nil), b.parts...),
		Args:  append([]any(nil), b.args...),
	}
	return block, nil
}

// parseFormat scans one format string, validates the argument bindings, and
// returns the flat part list plus the arguments reordered into consumption
// order. Relative and indexed references may be mixed; every supplied
// argument must be referenced at least once.
func parseFormat(format string, args []any) ([]string, []any, error) {
	var parts []string
	var ordered []any
	var literal strings.Builder
	used := make([]bool, len(args))
	nextRelative := 0

	flushLiteral := func() {
		if literal.Len() > 0 {
			parts = append(parts, literal.String())
			literal.Reset()
		}
	}

	for i := 0; i < len(format); {
		if format[i] != '%' {
			literal.WriteByte(format[i])
			i++
			continue
		}
		i++
		if i >= len(format) {
			return nil, nil, errors.Newf("dangling %% at end of format string %q", format)
		}

		indexStart := i
		for i < len(format) && format[i] >= '0' && format[i] <= '9' {
			i++
		}
		indexDigits := format[indexStart:i]
		if i >= len(format) {
			return nil, nil, errors.Newf("dangling format characters %q in %q", "%"+indexDigits, format)
		}

		ch := format[i]
		i++

		switch ch {
		case 'L', 'N', 'S', 'T':
			var argIndex int
			if indexDigits != "" {
				n := 0
				for _, d := range indexDigits {
					n = n*10 + int(d-'0')
				}
				if n < 1 || n > len(args) {
					return nil, nil, errors.Newf("index %d for %%%s not in range (received %d arguments)", n, string(ch), len(args))
				}
				argIndex = n - 1
			} else {
				if nextRelative >= len(args) {
					return nil, nil, errors.Newf("not enough arguments for %%%s (received %d)", string(ch), len(args))
				}
				argIndex = nextRelative
				nextRelative++
			}
			arg := args[argIndex]
			if err := checkArgKind(ch, arg); err != nil {
				return nil, nil, err
			}
			used[argIndex] = true
			flushLiteral()
			parts = append(parts, "%"+string(ch))
			ordered = append(ordered, arg)

		case '%', 'W', '>', '<', '[', ']':
			if indexDigits != "" {
				return nil, nil, errors.Newf("%%%s may not have an index in %q", string(ch), format)
			}
			if ch == '%' {
				literal.WriteByte('%')
				break
			}
			flushLiteral()
			parts = append(parts, "%"+string(ch))

		default:
			return nil, nil, errors.Newf("unknown directive %%%s in %q", string(ch), format)
		}
	}
	flushLiteral()

	var unused []string
	for i, ok := range used {
		if !ok {
			unused = append(unused, fmt.Sprintf("%%%d", i+1))
		}
	}
	if len(unused) > 0 {
		return nil, nil, errors.Newf("unused argument%s: %s", plural(len(unused)), strings.Join(unused, ", "))
	}
	return parts, ordered, nil
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

func checkArgKind(directive byte, arg any) error {
	switch directive {
	case 'N':
		_, err := NameOf(arg)
		return err
	case 'T':
		if _, ok := arg.(TypeName); !ok {
			return errors.Newf("%%T argument is not a type: %v (%T)", arg, arg)
		}
	case 'S':
		switch arg.(type) {
		case nil, string, fmt.Stringer:
		default:
			return errors.Newf("%%S argument is not a string: %v (%T)", arg, arg)
		}
	case 'L':
		switch arg.(type) {
		case nil, bool, string,
			int, int8, int16, int32, int64,
			uint, uint8, uint16, uint32, uint64,
			float32, float64,
			CodeBlock, TypeName, fmt.Stringer,
			PropertySpec, ParameterSpec, FunctionSpec, ClassSpec, AnnotationSpec:
		default:
			return errors.Newf("%%L argument cannot be rendered as a literal: %v (%T)", arg, arg)
		}
	}
	return nil
}

// NameOf extracts the bare identifier a %N directive emits for arg.
func NameOf(arg any) (string, error) {
	switch v := arg.(type) {
	case string:
		return v, nil
	case PropertySpec:
		return v.Name, nil
	case ParameterSpec:
		return v.Name, nil
	case FunctionSpec:
		return v.Name, nil
	case ClassSpec:
		return v.Name, nil
	default:
		return "", errors.Newf("%%N argument is not a named element: %v (%T)", arg, arg)
	}
}

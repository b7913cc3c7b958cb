package format

import (
	"strings"
)

// lineWrapper assembles output one physical line at a time, tracking the
// current column and the most recent wrap candidate. When a line outgrows the
// column limit and a candidate exists, the candidate's space is retroactively
// turned into a line break at the candidate's continuation indent.
type lineWrapper struct {
	out           *strings.Builder
	indentStr     string
	columnLimit   int
	line          []byte
	wrapIndex     int
	wrapIndent    int
	indentLevel   int
	pendingIndent bool
}

func newLineWrapper(out *strings.Builder, indentStr string, columnLimit int) *lineWrapper {
	return &lineWrapper{
		out:           out,
		indentStr:     indentStr,
		columnLimit:   columnLimit,
		wrapIndex:     -1,
		pendingIndent: true,
	}
}

func (w *lineWrapper) Indent() {
	w.indentLevel++
}

func (w *lineWrapper) Unindent() {
	if w.indentLevel > 0 {
		w.indentLevel--
	}
}

func (w *lineWrapper) atLineStart() bool {
	return w.pendingIndent
}

// WriteString appends text, honoring embedded newlines as hard breaks.
func (w *lineWrapper) WriteString(s string) {
	for {
		idx := strings.IndexByte(s, '\n')
		if idx < 0 {
			w.writeChunk(s)
			return
		}
		w.writeChunk(s[:idx])
		w.hardBreak()
		s = s[idx+1:]
	}
}

func (w *lineWrapper) writeChunk(s string) {
	if s == "" {
		return
	}
	w.ensureIndent()
	w.line = append(w.line, s...)
	w.checkWrap()
}

func (w *lineWrapper) ensureIndent() {
	if !w.pendingIndent {
		return
	}
	for i := 0; i < w.indentLevel; i++ {
		w.line = append(w.line, w.indentStr...)
	}
	w.pendingIndent = false
}

func (w *lineWrapper) hardBreak() {
	w.out.Write(w.line)
	w.out.WriteByte('\n')
	w.line = w.line[:0]
	w.pendingIndent = true
	w.wrapIndex = -1
}

// WrapSpace records a soft break candidate. If the line is already over
// budget the break happens right here; otherwise a single space is written
// and remembered for retroactive conversion.
func (w *lineWrapper) WrapSpace(continuationIndent int) {
	w.ensureIndent()
	if len(w.line) > w.columnLimit {
		w.breakAt(continuationIndent)
		return
	}
	w.wrapIndex = len(w.line)
	w.wrapIndent = continuationIndent
	w.line = append(w.line, ' ')
}

func (w *lineWrapper) breakAt(continuationIndent int) {
	w.out.Write(w.line)
	w.out.WriteByte('\n')
	w.line = w.line[:0]
	for i := 0; i < continuationIndent; i++ {
		w.line = append(w.line, w.indentStr...)
	}
	w.pendingIndent = false
	w.wrapIndex = -1
}

func (w *lineWrapper) checkWrap() {
	if len(w.line) <= w.columnLimit || w.wrapIndex < 0 {
		return
	}
	head := w.line[:w.wrapIndex]
	rest := append([]byte(nil), w.line[w.wrapIndex+1:]...)
	w.out.Write(head)
	w.out.WriteByte('\n')
	w.line = w.line[:0]
	for i := 0; i < w.wrapIndent; i++ {
		w.line = append(w.line, w.indentStr...)
	}
	w.line = append(w.line, rest...)
	w.wrapIndex = -1
}

// Flush commits whatever is buffered on the current line without a break.
func (w *lineWrapper) Flush() {
	w.out.Write(w.line)
	w.line = w.line[:0]
}

// Package annotate rewrites raw HTML text so every opening tag carries a
// source-location marker attribute. The rewrite is purely lexical: it
// recognizes where an opening tag token starts and injects the marker
// right after the tag name, without understanding attribute quoting.
// Literal "<name" sequences inside attribute values or scripts may
// therefore gain a marker too; the tokenizer downstream treats those as
// text, so they never surface as findings.
package annotate

import (
	"bytes"
	"fmt"
	"regexp"
)

// LocAttr is the pseudo-attribute injected after every opening tag name.
// The parser strips it back out of the attribute snapshot.
const LocAttr = "__loc__"

// openTag matches the start of an opening tag: "<", optional whitespace,
// and a tag name token. Closing tags, comments, doctypes, and processing
// instructions do not match.
var openTag = regexp.MustCompile(`<\s*[A-Za-z][A-Za-z0-9:._-]*`)

// Annotator transforms an ordered sequence of text chunks belonging to
// one file. Chunk boundaries are arbitrary; the annotator buffers the
// trailing partial line of each chunk, so its output is a pure function
// of the concatenated input and a tag split across chunks is still
// attributed to the line it began on.
type Annotator struct {
	file    string
	line    int
	partial []byte
}

// New returns an Annotator for the named file with the line counter at 1.
func New(file string) *Annotator {
	return &Annotator{file: file, line: 1}
}

// Annotate consumes the next chunk and returns the annotated text
// completed by it. Only newline-terminated lines are rewritten; anything
// after the last newline is held back until the next chunk or Flush.
func (a *Annotator) Annotate(chunk []byte) []byte {
	data := append(a.partial, chunk...)

	idx := bytes.LastIndexByte(data, '\n')
	if idx < 0 {
		a.partial = data
		return nil
	}

	complete := data[:idx+1]
	a.partial = append([]byte(nil), data[idx+1:]...)
	return a.rewrite(complete)
}

// Flush annotates and returns any buffered partial line. It must be
// called once after the last chunk; the result is nil when the input
// ended with a newline.
func (a *Annotator) Flush() []byte {
	if len(a.partial) == 0 {
		return nil
	}
	out := a.rewrite(a.partial)
	a.partial = nil
	return out
}

// rewrite annotates every line in text with the running line counter,
// advancing the counter once per newline. Lines keep their terminators;
// a trailing "\r" from CRLF input stays untouched at the end of the line.
func (a *Annotator) rewrite(text []byte) []byte {
	var out bytes.Buffer
	for len(text) > 0 {
		line := text
		nl := bytes.IndexByte(text, '\n')
		if nl >= 0 {
			line = text[:nl+1]
			text = text[nl+1:]
		} else {
			text = nil
		}

		marker := fmt.Sprintf(` %s="%s:%d"`, LocAttr, a.file, a.line)
		out.Write(openTag.ReplaceAllFunc(line, func(m []byte) []byte {
			// Copy the match before appending: m aliases the source
			// buffer and must not be grown in place.
			return append(append([]byte(nil), m...), marker...)
		}))

		if nl >= 0 {
			a.line++
		}
	}
	return out.Bytes()
}

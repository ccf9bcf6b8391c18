package emitter

import (
	"bufio"
	"encoding/xml"
	"io"
	"strings"
)

// Header is written before the root element
const Header = `<?xml version="1.0" encoding="utf-8"?>`

type frame struct {
	name     string
	children bool
	text     bool
}

// Writer represents an indented XML Sink; write errors are kept and returned by Flush
type Writer struct {
	out    *bufio.Writer
	indent string
	stack  []*frame
	open   bool
	closed bool
	err    error
}

// Option represents a writer option
type Option func(w *Writer)

// WithIndent sets indentation unit, two spaces by default
func WithIndent(indent string) Option {
	return func(w *Writer) {
		w.indent = indent
	}
}

// NewWriter creates XML writer
func NewWriter(w io.Writer, options ...Option) *Writer {
	ret := &Writer{out: bufio.NewWriter(w), indent: "  "}
	for _, option := range options {
		option(ret)
	}
	ret.write(Header)
	return ret
}

// StartElement opens an element
func (w *Writer) StartElement(name string) {
	if !IsName(name) {
		misuse("invalid element name %q", name)
	}
	if w.closed {
		misuse("second root element %v", name)
	}
	if parent := w.top(); parent != nil {
		w.closeStartTag()
		parent.children = true
	}
	w.write("\n")
	w.write(strings.Repeat(w.indent, len(w.stack)))
	w.write("<")
	w.write(name)
	w.stack = append(w.stack, &frame{name: name})
	w.open = true
}

// Attribute adds an attribute to the element just opened
func (w *Writer) Attribute(name, value string) {
	if !w.open {
		misuse("attribute %v outside of a start tag", name)
	}
	if !IsName(name) {
		misuse("invalid attribute name %q", name)
	}
	w.write(" ")
	w.write(name)
	w.write(`="`)
	w.escape(value)
	w.write(`"`)
}

// Text adds character data
func (w *Writer) Text(value string) {
	current := w.top()
	if current == nil {
		misuse("text outside of an element")
	}
	if value == "" {
		return
	}
	w.closeStartTag()
	current.text = true
	w.write(textEscaper.Replace(strings.Map(validChar, value)))
}

// EndElement closes current element
func (w *Writer) EndElement() {
	current := w.top()
	if current == nil {
		misuse("end element without start")
	}
	w.stack = w.stack[:len(w.stack)-1]
	switch {
	case w.open:
		w.write("/>")
		w.open = false
	case current.children && !current.text:
		w.write("\n")
		w.write(strings.Repeat(w.indent, len(w.stack)))
		fallthrough
	default:
		w.write("</")
		w.write(current.name)
		w.write(">")
	}
	if len(w.stack) == 0 {
		w.closed = true
	}
}

// Flush writes buffered output, it returns ErrUnbalanced when elements are left open
func (w *Writer) Flush() error {
	if len(w.stack) > 0 {
		return ErrUnbalanced
	}
	w.write("\n")
	if w.err != nil {
		return w.err
	}
	return w.out.Flush()
}

func (w *Writer) top() *frame {
	if len(w.stack) == 0 {
		return nil
	}
	return w.stack[len(w.stack)-1]
}

func (w *Writer) closeStartTag() {
	if w.open {
		w.write(">")
		w.open = false
	}
}

func (w *Writer) escape(value string) {
	if w.err != nil {
		return
	}
	w.err = xml.EscapeText(w.out, []byte(value))
}

func (w *Writer) write(s string) {
	if w.err != nil {
		return
	}
	_, w.err = w.out.WriteString(s)
}

var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", "\r", "&#xD;")

// validChar replaces characters XML 1.0 cannot represent
func validChar(r rune) rune {
	switch {
	case r == '\t' || r == '\n' || r == '\r':
		return r
	case r < 0x20, r == 0xFFFE, r == 0xFFFF, r >= 0xD800 && r <= 0xDFFF:
		return '\uFFFD'
	}
	return r
}

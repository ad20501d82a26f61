package xml

import (
	"bytes"
	"strings"
)

// writer is the set of buffer methods the encoder writes through.
// Both *bytes.Buffer and *strings.Builder satisfy it.
type writer interface {
	Write(p []byte) (n int, err error)
	WriteByte(c byte) error
	WriteRune(r rune) (n int, err error)
	WriteString(s string) (n int, err error)
}

// Encoder is a line oriented XML encoder. Each call that writes an element,
// a tag or a raw fragment starts a new line.
type Encoder struct {
	w       *bytes.Buffer
	scratch *[]byte

	lines int
}

// NewEncoder returns an XML encoder
func NewEncoder() *Encoder {
	writer := bytes.NewBuffer(nil)
	scratch := make([]byte, 64)

	return &Encoder{w: writer, scratch: &scratch}
}

// String returns the string output of the XML encoder
func (e *Encoder) String() string {
	return e.w.String()
}

// Bytes returns the []byte slice of the XML encoder
func (e *Encoder) Bytes() []byte {
	return e.w.Bytes()
}

// Lines returns the number of lines written so far.
func (e *Encoder) Lines() int {
	return e.lines
}

func (e *Encoder) newLine() {
	if e.lines != 0 {
		e.w.WriteByte(newline)
	}
	e.lines++
}

// Element writes the start tag of element on a new line and returns a Value
// that writes the element content and its end tag.
func (e *Encoder) Element(element StartElement) Value {
	e.newLine()
	return newWrappedValue(e.w, e.scratch, element)
}

// EmptyElement writes element as a self-closing tag on a new line,
// e.g. `<enclosure url="u" length="1" type="t"/>`.
func (e *Encoder) EmptyElement(element StartElement) {
	e.newLine()
	writeEmptyElement(e.w, element)
}

// StartElement writes only the start tag of element on its own line. The
// element content is expected to follow as separate lines, terminated by a
// call to EndElement.
func (e *Encoder) StartElement(element StartElement) {
	e.newLine()
	writeStartElement(e.w, element)
}

// EndElement writes the end tag on its own line.
func (e *Encoder) EndElement(element EndElement) {
	e.newLine()
	writeEndElement(e.w, element)
}

// Raw writes an already rendered fragment verbatim on a new line.
// The fragment itself may span several lines.
func (e *Encoder) Raw(fragment string) {
	e.newLine()
	e.w.WriteString(fragment)
}

// FormatAttrs renders attrs as space separated name="value" pairs, keeping
// the given order. Values are escaped with EscapeAttr.
func FormatAttrs(attrs ...Attr) string {
	var b strings.Builder
	for i := range attrs {
		if i != 0 {
			b.WriteRune(' ')
		}
		buildAttribute(&b, &attrs[i])
	}
	return b.String()
}

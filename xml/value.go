package xml

import (
	"strconv"
)

// Value represents the content of an XML element whose start tag has
// already been written. Every Value operation writes the content followed
// by the end tag.
type Value struct {
	w       writer
	scratch *[]byte

	startElement StartElement
}

// newWrappedValue writes the start element xml tag and returns a Value
func newWrappedValue(w writer, scratch *[]byte, startElement StartElement) Value {
	writeStartElement(w, startElement)
	return Value{w: w, scratch: scratch, startElement: startElement}
}

// writeStartElement takes in a start element and writes it.
// It handles namespace, attributes in start element.
func writeStartElement(w writer, el StartElement) {
	writeOpenTag(w, el)
	w.WriteRune(rightAngleBracket)
}

// writeEmptyElement writes el as a self-closing tag.
func writeEmptyElement(w writer, el StartElement) {
	writeOpenTag(w, el)
	w.WriteRune(forwardSlash)
	w.WriteRune(rightAngleBracket)
}

func writeOpenTag(w writer, el StartElement) {
	if el.isZero() {
		panic("xml start element cannot be nil")
	}

	w.WriteRune(leftAngleBracket)

	if len(el.Name.Space) != 0 {
		w.WriteString(el.Name.Space)
		w.WriteRune(colon)
	}
	w.WriteString(el.Name.Local)

	for i := range el.Attr {
		w.WriteRune(' ')
		buildAttribute(w, &el.Attr[i])
	}
}

// buildAttribute writes an attribute from a provided Attribute
// For a namespace attribute, the attr.Name.Space must be defined as "xmlns".
// https://www.w3.org/TR/REC-xml-names/#NT-DefaultAttName
func buildAttribute(w writer, attr *Attr) {
	local := attr.Name.Local

	// if local, space both are not empty
	if len(attr.Name.Space) != 0 && len(local) != 0 {
		w.WriteString(attr.Name.Space)
		w.WriteRune(colon)
	}

	// if prefix is empty, the default `xmlns` space should be used as prefix.
	if len(local) == 0 {
		local = attr.Name.Space
	}

	w.WriteString(local)
	w.WriteRune(equals)
	w.WriteRune(quote)
	escapeString(w, attr.Value, true)
	w.WriteRune(quote)
}

// writeEndElement takes in a end element and writes it.
func writeEndElement(w writer, el EndElement) {
	if el.isZero() {
		panic("xml end element cannot be nil")
	}

	w.WriteRune(leftAngleBracket)
	w.WriteRune(forwardSlash)

	if len(el.Name.Space) != 0 {
		w.WriteString(el.Name.Space)
		w.WriteRune(colon)
	}
	w.WriteString(el.Name.Local)
	w.WriteRune(rightAngleBracket)
}

// String encodes v as escaped XML character data.
// It will auto close the parent xml element tag.
func (xv Value) String(v string) {
	escapeString(xv.w, v, false)
	xv.Close()
}

// Long encodes v as a XML number.
// It will auto close the parent xml element tag.
func (xv Value) Long(v int64) {
	*xv.scratch = strconv.AppendInt((*xv.scratch)[:0], v, 10)
	xv.w.Write(*xv.scratch)

	xv.Close()
}

// Close closes the value
func (xv Value) Close() {
	writeEndElement(xv.w, xv.startElement.End())
}

package xml

import "strconv"

// A Name represents an XML name (Local) annotated
// with a name space prefix (Space).
type Name struct {
	Space, Local string
}

// An Attr represents an attribute in an XML element (Name=Value).
type Attr struct {
	Name  Name
	Value string
}

// NewAttr returns an attribute with the given local name and value.
func NewAttr(local, value string) Attr {
	return Attr{Name: Name{Local: local}, Value: value}
}

// IntAttr returns an attribute whose value is v in decimal form.
func IntAttr(local string, v int64) Attr {
	return NewAttr(local, strconv.FormatInt(v, 10))
}

// BoolAttr returns an attribute whose value is the literal true or false.
func BoolAttr(local string, v bool) Attr {
	return NewAttr(local, strconv.FormatBool(v))
}

// A StartElement represents an XML start element.
type StartElement struct {
	Name Name
	Attr []Attr
}

// Start returns a start element for the local name and attributes.
func Start(local string, attrs ...Attr) StartElement {
	return StartElement{Name: Name{Local: local}, Attr: attrs}
}

// End returns the corresponding XML end element.
func (e StartElement) End() EndElement {
	return EndElement{e.Name}
}

func (e StartElement) isZero() bool {
	return len(e.Name.Local) == 0
}

// An EndElement represents an XML end element.
type EndElement struct {
	Name Name
}

func (e EndElement) isZero() bool {
	return len(e.Name.Local) == 0
}

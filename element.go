package rss

import (
	"fmt"

	"github.com/rsskit/rss/xml"
)

// Element is implemented by every RSS element.
type Element interface {
	// String returns the XML rendering of the element.
	fmt.Stringer

	// Validate reports mandatory fields that are empty.
	Validate() error
}

var (
	_ Element = (*Category)(nil)
	_ Element = (*Cloud)(nil)
	_ Element = (*Enclosure)(nil)
	_ Element = (*GUID)(nil)
	_ Element = (*Image)(nil)
	_ Element = (*Source)(nil)
	_ Element = (*Item)(nil)
	_ Element = (*Channel)(nil)
	_ Element = (*RSS)(nil)
)

// writeText writes <name>v</name> with v escaped.
func writeText(enc *xml.Encoder, name, v string) {
	enc.Element(xml.Start(name)).String(v)
}

// writeOptionalText writes <name>*v</name> unless v is nil.
func writeOptionalText(enc *xml.Encoder, name string, v *string) {
	if v == nil {
		return
	}
	writeText(enc, name, *v)
}

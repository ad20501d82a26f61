package rss

import (
	"errors"

	"github.com/rsskit/rss/xml"
)

// Enclosure describes a media object that is attached to an item.
type Enclosure struct {
	// The URL where the enclosure is located.
	URL string

	// The length of the enclosure in bytes.
	Length int64

	// The MIME type of the enclosure.
	Type string
}

// NewEnclosure returns an enclosure element.
func NewEnclosure(url string, length int64, typ string) *Enclosure {
	return &Enclosure{URL: url, Length: length, Type: typ}
}

func (e *Enclosure) String() string {
	enc := xml.NewEncoder()
	enc.EmptyElement(xml.Start("enclosure",
		xml.NewAttr("url", e.URL),
		xml.IntAttr("length", e.Length),
		xml.NewAttr("type", e.Type),
	))
	return enc.String()
}

// Validate returns an error for an empty URL or Type and for a negative
// Length.
func (e *Enclosure) Validate() error {
	errs := []error{
		requireText("enclosure", "URL", e.URL),
		requireText("enclosure", "Type", e.Type),
	}
	if e.Length < 0 {
		errs = append(errs, &InvalidFieldError{Element: "enclosure", Field: "Length", Reason: "must not be negative"})
	}
	return errors.Join(errs...)
}

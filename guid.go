package rss

import (
	"errors"

	"github.com/rsskit/rss/xml"
)

// GUID is the globally unique identifier of an item.
type GUID struct {
	// The string that uniquely identifies the item.
	Value string

	// Whether Value is a permanent link to the item.
	IsPermaLink bool
}

// NewGUID returns a GUID that is a permalink. Use an option to mark it
// otherwise:
//
//	rss.NewGUID("FOO-BAR-BAZ", func(g *rss.GUID) { g.IsPermaLink = false })
func NewGUID(value string, optFns ...func(*GUID)) *GUID {
	g := &GUID{Value: value, IsPermaLink: true}
	for _, fn := range optFns {
		fn(g)
	}
	return g
}

func (g *GUID) String() string {
	enc := xml.NewEncoder()
	enc.Element(xml.Start("guid", xml.BoolAttr("isPermaLink", g.IsPermaLink))).String(g.Value)
	return enc.String()
}

// Validate returns an error if Value is empty.
func (g *GUID) Validate() error {
	return errors.Join(requireText("guid", "Value", g.Value))
}

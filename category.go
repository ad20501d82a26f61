package rss

import (
	"errors"

	"github.com/rsskit/rss/xml"
)

// Category is the category of an item or a channel.
type Category struct {
	// Forward-slash-separated string that identifies a hierarchic location
	// in the indicated taxonomy.
	Value string

	// Identifies a categorization taxonomy. Omitted when nil or empty.
	Domain *string
}

// NewCategory returns a category with the given value.
func NewCategory(value string, optFns ...func(*Category)) *Category {
	c := &Category{Value: value}
	for _, fn := range optFns {
		fn(c)
	}
	return c
}

func (c *Category) String() string {
	start := xml.Start("category")
	// An empty domain is treated like a missing one.
	if c.Domain != nil && len(*c.Domain) != 0 {
		start.Attr = append(start.Attr, xml.NewAttr("domain", *c.Domain))
	}

	enc := xml.NewEncoder()
	enc.Element(start).String(c.Value)
	return enc.String()
}

// Validate returns an error if Value is empty.
func (c *Category) Validate() error {
	return errors.Join(requireText("category", "Value", c.Value))
}

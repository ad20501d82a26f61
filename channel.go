package rss

import (
	"errors"
	"fmt"

	"github.com/rsskit/rss/xml"
)

// DefaultGenerator is the generator a new Channel reports.
const DefaultGenerator = "rsskit"

// Channel is the <channel> element of an RSS document. The skipHours,
// skipDays and textInput sub-elements are not supported.
type Channel struct {
	// The name of the channel. Mandatory.
	Title string

	// The URL of the website corresponding to the channel. Mandatory.
	Link string

	// A short description of the channel. Mandatory.
	Description string

	Language       *string
	Copyright      *string
	ManagingEditor *string
	WebMaster      *string
	PubDate        *string
	LastBuildDate  *string

	// The program used to generate the channel. NewChannel sets it to
	// DefaultGenerator; set it to nil to leave the tag out.
	Generator *string

	// URL of the documentation for the format used in the RSS file.
	Docs *string

	// Minutes the channel can be cached before refreshing from the source.
	TTL *int

	Cloud *Cloud
	Image *Image

	categories []*Category
	items      []*Item
}

// NewChannel returns a channel with the mandatory fields set and the
// generator set to DefaultGenerator.
func NewChannel(title, link, description string, optFns ...func(*Channel)) *Channel {
	generator := DefaultGenerator
	c := &Channel{
		Title:       title,
		Link:        link,
		Description: description,
		Generator:   &generator,
	}
	for _, fn := range optFns {
		fn(c)
	}
	return c
}

// Categories returns a copy of the channel's categories.
func (c *Channel) Categories() []*Category {
	return append([]*Category(nil), c.categories...)
}

// Items returns a copy of the channel's items.
func (c *Channel) Items() []*Item {
	return append([]*Item(nil), c.items...)
}

// AddCategory appends category to the channel and returns the channel.
func (c *Channel) AddCategory(category *Category) *Channel {
	c.categories = append(c.categories, category)
	return c
}

// AddCategories appends categories to the channel and returns the channel.
func (c *Channel) AddCategories(categories ...*Category) *Channel {
	c.categories = append(c.categories, categories...)
	return c
}

// SetCategories replaces the categories of the channel and returns the
// channel. Calling it without arguments removes every category.
func (c *Channel) SetCategories(categories ...*Category) *Channel {
	c.categories = append([]*Category(nil), categories...)
	return c
}

// AddItem appends item to the channel and returns the channel.
func (c *Channel) AddItem(item *Item) *Channel {
	c.items = append(c.items, item)
	return c
}

// AddItems appends items to the channel and returns the channel.
func (c *Channel) AddItems(items ...*Item) *Channel {
	c.items = append(c.items, items...)
	return c
}

// SetItems replaces the items of the channel and returns the channel.
// Calling it without arguments removes every item.
func (c *Channel) SetItems(items ...*Item) *Channel {
	c.items = append([]*Item(nil), items...)
	return c
}

func (c *Channel) String() string {
	start := xml.Start("channel")

	enc := xml.NewEncoder()
	enc.StartElement(start)
	writeText(enc, "title", c.Title)
	writeText(enc, "link", c.Link)
	writeText(enc, "description", c.Description)
	writeOptionalText(enc, "language", c.Language)
	writeOptionalText(enc, "copyright", c.Copyright)
	writeOptionalText(enc, "managingEditor", c.ManagingEditor)
	writeOptionalText(enc, "webMaster", c.WebMaster)
	writeOptionalText(enc, "pubDate", c.PubDate)
	writeOptionalText(enc, "lastBuildDate", c.LastBuildDate)
	writeOptionalText(enc, "generator", c.Generator)
	writeOptionalText(enc, "docs", c.Docs)
	if c.TTL != nil {
		enc.Element(xml.Start("ttl")).Long(int64(*c.TTL))
	}
	if c.Cloud != nil {
		enc.Raw(c.Cloud.String())
	}
	if c.Image != nil {
		enc.Raw(c.Image.String())
	}
	for _, category := range c.categories {
		if category != nil {
			enc.Raw(category.String())
		}
	}
	for _, item := range c.items {
		if item != nil {
			enc.Raw(item.String())
		}
	}
	enc.EndElement(start.End())
	return enc.String()
}

// Validate checks the channel and, recursively, everything it holds.
func (c *Channel) Validate() error {
	errs := []error{
		requireText("channel", "Title", c.Title),
		requireText("channel", "Link", c.Link),
		requireText("channel", "Description", c.Description),
	}
	if c.TTL != nil && *c.TTL < 0 {
		errs = append(errs, &InvalidFieldError{Element: "channel", Field: "TTL", Reason: "must not be negative"})
	}
	if c.Cloud != nil {
		errs = append(errs, validateChild("cloud", c.Cloud))
	}
	if c.Image != nil {
		errs = append(errs, validateChild("image", c.Image))
	}
	errs = append(errs, validateCategories(c.categories))
	for i, item := range c.items {
		if item == nil {
			continue
		}
		errs = append(errs, validateChild(fmt.Sprintf("item[%d]", i), item))
	}
	return errors.Join(errs...)
}

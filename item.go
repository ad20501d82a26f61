package rss

import (
	"errors"

	"github.com/rsskit/rss/xml"
)

// Item is a single entry of a channel.
type Item struct {
	// The title of the item. Mandatory.
	Title string

	// The URL of the item. Mandatory.
	Link string

	// The item synopsis.
	Description *string

	// Email address of the author of the item.
	Author *string

	// URL of a page for comments relating to the item.
	Comments *string

	// Media object attached to the item.
	Enclosure *Enclosure

	// Globally unique identifier of the item.
	GUID *GUID

	// Publication date of the item.
	PubDate *string

	// The RSS channel the item came from.
	Source *Source

	categories []*Category
}

// NewItem returns an item with the mandatory title and link. Optional
// fields can be set by the option functions or on the returned value.
func NewItem(title, link string, optFns ...func(*Item)) *Item {
	i := &Item{Title: title, Link: link}
	for _, fn := range optFns {
		fn(i)
	}
	return i
}

// Categories returns a copy of the item's categories.
func (i *Item) Categories() []*Category {
	return append([]*Category(nil), i.categories...)
}

// AddCategory appends category to the item and returns the item.
func (i *Item) AddCategory(category *Category) *Item {
	i.categories = append(i.categories, category)
	return i
}

// AddCategories appends categories to the item, keeping their order, and
// returns the item.
func (i *Item) AddCategories(categories ...*Category) *Item {
	i.categories = append(i.categories, categories...)
	return i
}

// SetCategories replaces the categories of the item and returns the item.
// Calling it without arguments removes every category.
func (i *Item) SetCategories(categories ...*Category) *Item {
	i.categories = append([]*Category(nil), categories...)
	return i
}

func (i *Item) String() string {
	start := xml.Start("item")

	enc := xml.NewEncoder()
	enc.StartElement(start)
	writeText(enc, "title", i.Title)
	writeText(enc, "link", i.Link)
	writeOptionalText(enc, "description", i.Description)
	writeOptionalText(enc, "author", i.Author)
	writeOptionalText(enc, "comments", i.Comments)
	if i.Enclosure != nil {
		enc.Raw(i.Enclosure.String())
	}
	if i.GUID != nil {
		enc.Raw(i.GUID.String())
	}
	writeOptionalText(enc, "pubDate", i.PubDate)
	if i.Source != nil {
		enc.Raw(i.Source.String())
	}
	for _, c := range i.categories {
		if c != nil {
			enc.Raw(c.String())
		}
	}
	enc.EndElement(start.End())
	return enc.String()
}

// Validate checks the item and every sub-element it holds.
func (i *Item) Validate() error {
	errs := []error{
		requireText("item", "Title", i.Title),
		requireText("item", "Link", i.Link),
	}
	if i.Enclosure != nil {
		errs = append(errs, validateChild("enclosure", i.Enclosure))
	}
	if i.GUID != nil {
		errs = append(errs, validateChild("guid", i.GUID))
	}
	if i.Source != nil {
		errs = append(errs, validateChild("source", i.Source))
	}
	errs = append(errs, validateCategories(i.categories))
	return errors.Join(errs...)
}

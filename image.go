package rss

import "github.com/rsskit/rss/xml"

// Image specifies a GIF, JPEG or PNG image that can be displayed with the
// channel. All fields are optional; each sub-element is written only when
// its field is non-nil, always in the order title, url, link.
type Image struct {
	// A description of the image.
	Title *string

	// The URL of the image.
	URL *string

	// The site the image links to when the channel is rendered.
	Link *string
}

// NewImage returns an image with the given fields set. Pass nil to leave a
// field out.
func NewImage(title, url, link *string) *Image {
	return &Image{Title: title, URL: url, Link: link}
}

func (i *Image) String() string {
	start := xml.Start("image")

	enc := xml.NewEncoder()
	enc.StartElement(start)
	writeOptionalText(enc, "title", i.Title)
	writeOptionalText(enc, "url", i.URL)
	writeOptionalText(enc, "link", i.Link)
	enc.EndElement(start.End())
	return enc.String()
}

// Validate always returns nil, an image has no mandatory fields.
func (i *Image) Validate() error {
	return nil
}

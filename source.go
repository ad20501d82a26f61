package rss

import (
	"errors"

	"github.com/rsskit/rss/xml"
)

// Source is the RSS channel an item came from.
type Source struct {
	// Link to the XMLization of the source.
	URL string

	// Name of the originating channel.
	Value string
}

// NewSource returns a source element.
func NewSource(url, value string) *Source {
	return &Source{URL: url, Value: value}
}

// String renders the source. The element is written even if Value is empty.
func (s *Source) String() string {
	enc := xml.NewEncoder()
	enc.Element(xml.Start("source", xml.NewAttr("url", s.URL))).String(s.Value)
	return enc.String()
}

// Validate returns an error if URL is empty. An empty Value is allowed.
func (s *Source) Validate() error {
	return errors.Join(requireText("source", "URL", s.URL))
}

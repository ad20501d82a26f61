package rss

import (
	"io"

	"github.com/rsskit/rss/xml"
)

// Version is the value of the version attribute of the <rss> element.
const Version = "2.0"

// RSS is the root element of an RSS 2.0 document.
type RSS struct {
	Channel *Channel
}

// New returns an RSS document wrapping channel.
func New(channel *Channel) *RSS {
	return &RSS{Channel: channel}
}

// String renders the document. No XML declaration is written, prepend
// xml.Header if one is needed.
func (r *RSS) String() string {
	start := xml.Start("rss", xml.NewAttr("version", Version))

	enc := xml.NewEncoder()
	enc.StartElement(start)
	if r.Channel != nil {
		enc.Raw(r.Channel.String())
	}
	enc.EndElement(start.End())
	return enc.String()
}

// WriteTo writes the rendered document to w.
func (r *RSS) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, r.String())
	return int64(n), err
}

// Validate returns an error if the document has no channel, otherwise the
// errors of the channel.
func (r *RSS) Validate() error {
	if r.Channel == nil {
		return &MissingFieldError{Element: "rss", Field: "Channel"}
	}
	return r.Channel.Validate()
}

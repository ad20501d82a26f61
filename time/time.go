package time

import (
	"fmt"
	"strings"
	"time"
)

const (
	// rfc822Format is the RFC 822 date-time with a four digit year and a
	// numeric zone, the form RSS 2.0 recommends for pubDate and lastBuildDate.
	rfc822Format = "Mon, 02 Jan 2006 15:04:05 -0700"
)

// layouts are tried in order by ParseRFC822.
var layouts = []string{
	rfc822Format,
	time.RFC1123,
	time.RFC822Z,
	time.RFC822,
	time.RFC3339,
	time.RFC850,
	time.ANSIC,
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 MST",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// FormatRFC822 format value as an RSS date-time
func FormatRFC822(value time.Time) string {
	return value.Format(rfc822Format)
}

// ParseRFC822 parse a string as an RSS date-time. Besides RFC 822 it accepts
// the other layouts commonly found in feeds.
func ParseRFC822(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if len(value) == 0 {
		return time.Time{}, fmt.Errorf("empty date-time")
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse date-time %q", value)
}

// NormalizeRFC822 parses value and formats it again with FormatRFC822.
func NormalizeRFC822(value string) (string, error) {
	t, err := ParseRFC822(value)
	if err != nil {
		return "", err
	}
	return FormatRFC822(t), nil
}

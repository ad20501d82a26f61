package rss_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rsskit/rss"
	"github.com/rsskit/rss/ptr"
	rsstesting "github.com/rsskit/rss/testing"
	"github.com/rsskit/rss/xml"
)

func TestRSS(t *testing.T) {
	doc := rss.New(rss.NewChannel("RSS 2.0 Test Channel", "https://test.channel.rss/", "Test channel > description"))

	rsstesting.AssertMarkupEqual(t, lines(
		`<rss version="2.0">`,
		"<channel>",
		"<title>RSS 2.0 Test Channel</title>",
		"<link>https://test.channel.rss/</link>",
		"<description>Test channel &gt; description</description>",
		"<generator>"+rss.DefaultGenerator+"</generator>",
		"</channel>",
		"</rss>",
	), doc.String())
}

func TestRSSWrapsChannel(t *testing.T) {
	channel := rss.NewChannel("T", "L", "D")
	channel.AddItem(rss.NewItem("I", "L"))
	doc := rss.New(channel)

	if e, a := "<rss version=\"2.0\">\n"+channel.String()+"\n</rss>", doc.String(); e != a {
		t.Errorf("expected %v, got %v", e, a)
	}
	if strings.HasPrefix(doc.String(), "<?xml") {
		t.Errorf("expected no XML declaration")
	}
}

func TestRSSNilChannel(t *testing.T) {
	doc := &rss.RSS{}
	if e, a := "<rss version=\"2.0\">\n</rss>", doc.String(); e != a {
		t.Errorf("expected %v, got %v", e, a)
	}

	var missing *rss.MissingFieldError
	if err := doc.Validate(); !errors.As(err, &missing) {
		t.Fatalf("expected MissingFieldError, got %v", err)
	}
	if e, a := "Channel", missing.Field; e != a {
		t.Errorf("expected %v, got %v", e, a)
	}
}

func TestRSSWriteTo(t *testing.T) {
	doc := rss.New(rss.NewChannel("T", "L", "D"))

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	n, err := doc.WriteTo(&buf)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if e, a := int64(len(doc.String())), n; e != a {
		t.Errorf("expected %d bytes written, got %d", e, a)
	}
	if e, a := xml.Header+doc.String(), buf.String(); e != a {
		t.Errorf("expected %v, got %v", e, a)
	}
	rsstesting.AssertWellFormed(t, buf.String())
}

func TestRSSFullDocumentWellFormed(t *testing.T) {
	channel := rss.NewChannel("Feed <1>", "https://a.b/", "Desc & more", func(c *rss.Channel) {
		c.Cloud = rss.NewCloud("rpc.sys.com", 80, "/RPC2", "pingMe", "soap")
		c.Image = &rss.Image{URL: ptr.String("https://a.b/logo.png")}
		c.TTL = ptr.Int(60)
	})
	channel.AddCategory(rss.NewCategory("News", func(c *rss.Category) { c.Domain = ptr.String(`a"b`) }))
	channel.AddItem(rss.NewItem("One", "https://a.b/1", func(i *rss.Item) {
		i.Enclosure = rss.NewEnclosure("https://a.b/1.mp3", 1024, "audio/mpeg")
		i.GUID = rss.NewGUID("https://a.b/1")
		i.Source = rss.NewSource("https://c.d/rss?x=1&y=2", "")
	}))

	rsstesting.AssertWellFormed(t, rss.New(channel).String())
}

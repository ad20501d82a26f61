// Package rss renders RSS 2.0 documents.
//
// Every RSS element is a Go type implementing Element. An element renders
// itself with its String method; composite elements (Image, Item, Channel,
// RSS) render each present child and place the results on their own lines.
// Optional fields are pointers, a nil pointer suppresses the tag while a
// pointer to an empty string still emits it.
//
//	channel := rss.NewChannel("Example", "https://example.com/", "An example feed")
//	channel.AddItem(rss.NewItem("Hello", "https://example.com/hello"))
//	fmt.Println(rss.New(channel))
//
// Rendering never fails and never modifies the element graph. Elements are
// not safe for concurrent mutation while they are being rendered.
//
// See https://validator.w3.org/feed/docs/rss2.html for the format.
package rss

// Package feedfile builds RSS documents from YAML feed definitions.
//
// A definition mirrors the element model of package rss:
//
//	channel:
//	  title: Liftoff News
//	  link: http://liftoff.msfc.nasa.gov/
//	  description: Liftoff to Space Exploration.
//	  language: en-us
//	  ttl: 60
//	  categories: [Space, {value: Rockets, domain: nasa}]
//	select: "items[?draft != `true`]"
//	items:
//	  - title: Star City
//	    link: http://liftoff.msfc.nasa.gov/news/2003/news-starcity.asp
//	    pub_date: Tue, 03 Jun 2003 09:39:21 GMT
//	    guid: auto
//	    enclosure: {url: http://a.b/c.mp3, length: 1024, type: audio/mpeg}
//
// A key that is absent or null leaves the element out, an empty string
// keeps it. The optional select key holds a JMESPath expression that is
// evaluated against the whole definition and must yield the list of items
// to publish. A guid of "auto" derives a stable, non-permalink identifier
// from the item link.
package feedfile

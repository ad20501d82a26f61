package feedfile

import (
	"github.com/google/uuid"

	"github.com/rsskit/rss"
	"github.com/rsskit/rss/logging"
	rsstime "github.com/rsskit/rss/time"
)

// Build turns the definition into an RSS document. It does not validate
// mandatory fields, call Validate on the result for that.
func (d *Definition) Build(opts Options) *rss.RSS {
	if opts.Logger == nil {
		opts.Logger = logging.Noop{}
	}
	b := builder{opts: opts}

	channel := b.channel(&d.Channel)
	for i := range d.Items {
		channel.AddItem(b.item(i, &d.Items[i]))
	}

	opts.Logger.Logf(logging.Debug, "built channel %q with %d items", channel.Title, len(d.Items))
	return rss.New(channel)
}

type builder struct {
	opts Options
}

func (b builder) channel(def *ChannelDefinition) *rss.Channel {
	c := rss.NewChannel(def.Title, def.Link, def.Description)
	c.Language = def.Language
	c.Copyright = def.Copyright
	c.ManagingEditor = def.ManagingEditor
	c.WebMaster = def.WebMaster
	c.PubDate = b.date("channel pub_date", def.PubDate)
	c.LastBuildDate = b.date("channel last_build_date", def.LastBuildDate)
	c.Docs = def.Docs
	c.TTL = def.TTL

	switch {
	case def.OmitGenerator:
		c.Generator = nil
	case def.Generator != nil:
		c.Generator = def.Generator
	case len(b.opts.Generator) != 0:
		generator := b.opts.Generator
		c.Generator = &generator
	}

	if def.Cloud != nil {
		c.Cloud = rss.NewCloud(def.Cloud.Domain, def.Cloud.Port, def.Cloud.Path, def.Cloud.RegisterProcedure, def.Cloud.Protocol)
	}
	if def.Image != nil {
		c.Image = rss.NewImage(def.Image.Title, def.Image.URL, def.Image.Link)
	}
	c.SetCategories(categories(def.Categories)...)
	return c
}

func (b builder) item(index int, def *ItemDefinition) *rss.Item {
	item := rss.NewItem(def.Title, def.Link)
	item.Description = def.Description
	item.Author = def.Author
	item.Comments = def.Comments
	item.PubDate = b.date("item pub_date", def.PubDate)

	if def.Enclosure != nil {
		item.Enclosure = rss.NewEnclosure(def.Enclosure.URL, def.Enclosure.Length, def.Enclosure.Type)
	}
	if def.GUID != nil {
		item.GUID = b.guid(index, def)
	}
	if def.Source != nil {
		item.Source = rss.NewSource(def.Source.URL, def.Source.Value)
	}
	item.SetCategories(categories(def.Categories)...)
	return item
}

func (b builder) guid(index int, def *ItemDefinition) *rss.GUID {
	if !def.GUID.Auto {
		g := rss.NewGUID(def.GUID.Value)
		if def.GUID.IsPermaLink != nil {
			g.IsPermaLink = *def.GUID.IsPermaLink
		}
		return g
	}

	if len(def.Link) == 0 {
		b.opts.Logger.Logf(logging.Warn, "item %d: guid auto needs a link, leaving guid out", index)
		return nil
	}

	id := uuid.NewSHA1(uuid.NameSpaceURL, []byte(def.Link))
	return rss.NewGUID("urn:uuid:"+id.String(), func(g *rss.GUID) {
		g.IsPermaLink = false
	})
}

func (b builder) date(field string, v *string) *string {
	if v == nil || !b.opts.NormalizeDates {
		return v
	}

	normalized, err := rsstime.NormalizeRFC822(*v)
	if err != nil {
		b.opts.Logger.Logf(logging.Warn, "%s kept as written: %v", field, err)
		return v
	}
	return &normalized
}

func categories(defs []CategoryDefinition) []*rss.Category {
	categories := make([]*rss.Category, 0, len(defs))
	for _, def := range defs {
		categories = append(categories, &rss.Category{Value: def.Value, Domain: def.Domain})
	}
	return categories
}

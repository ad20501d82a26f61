package feedfile

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Definition is the YAML layout of a feed definition file.
type Definition struct {
	Channel ChannelDefinition `yaml:"channel"`
	Items   []ItemDefinition  `yaml:"items"`

	// JMESPath expression selecting the items to publish.
	Select string `yaml:"select"`
}

// ChannelDefinition describes an rss.Channel.
type ChannelDefinition struct {
	Title          string  `yaml:"title"`
	Link           string  `yaml:"link"`
	Description    string  `yaml:"description"`
	Language       *string `yaml:"language"`
	Copyright      *string `yaml:"copyright"`
	ManagingEditor *string `yaml:"managing_editor"`
	WebMaster      *string `yaml:"web_master"`
	PubDate        *string `yaml:"pub_date"`
	LastBuildDate  *string `yaml:"last_build_date"`
	Generator      *string `yaml:"generator"`
	OmitGenerator  bool    `yaml:"omit_generator"`
	Docs           *string `yaml:"docs"`
	TTL            *int    `yaml:"ttl"`

	Cloud      *CloudDefinition     `yaml:"cloud"`
	Image      *ImageDefinition     `yaml:"image"`
	Categories []CategoryDefinition `yaml:"categories"`
}

// CloudDefinition describes an rss.Cloud.
type CloudDefinition struct {
	Domain            string `yaml:"domain"`
	Port              int    `yaml:"port"`
	Path              string `yaml:"path"`
	RegisterProcedure string `yaml:"register_procedure"`
	Protocol          string `yaml:"protocol"`
}

// ImageDefinition describes an rss.Image.
type ImageDefinition struct {
	Title *string `yaml:"title"`
	URL   *string `yaml:"url"`
	Link  *string `yaml:"link"`
}

// ItemDefinition describes an rss.Item.
type ItemDefinition struct {
	Title       string  `yaml:"title"`
	Link        string  `yaml:"link"`
	Description *string `yaml:"description"`
	Author      *string `yaml:"author"`
	Comments    *string `yaml:"comments"`
	PubDate     *string `yaml:"pub_date"`

	Enclosure  *EnclosureDefinition `yaml:"enclosure"`
	GUID       *GUIDDefinition      `yaml:"guid"`
	Source     *SourceDefinition    `yaml:"source"`
	Categories []CategoryDefinition `yaml:"categories"`
}

// EnclosureDefinition describes an rss.Enclosure.
type EnclosureDefinition struct {
	URL    string `yaml:"url"`
	Length int64  `yaml:"length"`
	Type   string `yaml:"type"`
}

// SourceDefinition describes an rss.Source.
type SourceDefinition struct {
	URL   string `yaml:"url"`
	Value string `yaml:"value"`
}

// CategoryDefinition describes an rss.Category. It is written either as a
// plain string or as a mapping with value and domain keys.
type CategoryDefinition struct {
	Value  string  `yaml:"value"`
	Domain *string `yaml:"domain"`
}

// UnmarshalYAML accepts both the scalar and the mapping form.
func (c *CategoryDefinition) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		c.Value = value.Value
		return nil
	}

	type plain CategoryDefinition
	if err := value.Decode((*plain)(c)); err != nil {
		return fmt.Errorf("category: %w", err)
	}
	return nil
}

// autoGUID is the scalar guid value requesting a derived identifier.
const autoGUID = "auto"

// GUIDDefinition describes an rss.GUID. The scalar form sets the value of a
// permalink GUID, or requests a derived one with "auto".
type GUIDDefinition struct {
	Value       string `yaml:"value"`
	IsPermaLink *bool  `yaml:"is_perma_link"`
	Auto        bool   `yaml:"auto"`
}

// UnmarshalYAML accepts both the scalar and the mapping form.
func (g *GUIDDefinition) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		if value.Value == autoGUID {
			g.Auto = true
		} else {
			g.Value = value.Value
		}
		return nil
	}

	type plain GUIDDefinition
	if err := value.Decode((*plain)(g)); err != nil {
		return fmt.Errorf("guid: %w", err)
	}
	return nil
}

package rss

import (
	"errors"

	"github.com/rsskit/rss/xml"
)

// Cloud specifies a web service that supports the rssCloud interface, so
// processes can register to be notified of updates to the channel.
type Cloud struct {
	Domain            string
	Port              int
	Path              string
	RegisterProcedure string
	Protocol          string
}

// NewCloud returns a cloud element. All of its fields are mandatory.
func NewCloud(domain string, port int, path, registerProcedure, protocol string) *Cloud {
	return &Cloud{
		Domain:            domain,
		Port:              port,
		Path:              path,
		RegisterProcedure: registerProcedure,
		Protocol:          protocol,
	}
}

func (c *Cloud) String() string {
	enc := xml.NewEncoder()
	enc.EmptyElement(xml.Start("cloud",
		xml.NewAttr("domain", c.Domain),
		xml.IntAttr("port", int64(c.Port)),
		xml.NewAttr("path", c.Path),
		xml.NewAttr("registerProcedure", c.RegisterProcedure),
		xml.NewAttr("protocol", c.Protocol),
	))
	return enc.String()
}

// Validate returns an error for every empty field and for a port outside
// of 0-65535.
func (c *Cloud) Validate() error {
	errs := []error{
		requireText("cloud", "Domain", c.Domain),
		requireText("cloud", "Path", c.Path),
		requireText("cloud", "RegisterProcedure", c.RegisterProcedure),
		requireText("cloud", "Protocol", c.Protocol),
	}
	if c.Port < 0 || c.Port > 65535 {
		errs = append(errs, &InvalidFieldError{Element: "cloud", Field: "Port", Reason: "must be within 0-65535"})
	}
	return errors.Join(errs...)
}

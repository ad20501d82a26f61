package rss_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/rsskit/rss"
)

func TestValidate(t *testing.T) {
	cases := map[string]struct {
		element rss.Element
		fields  []string
	}{
		"category ok":    {element: rss.NewCategory("a")},
		"category empty": {element: rss.NewCategory(""), fields: []string{"Value"}},
		"cloud ok":       {element: rss.NewCloud("d", 80, "/p", "r", "soap")},
		"cloud empty": {
			element: &rss.Cloud{},
			fields:  []string{"Domain", "Path", "RegisterProcedure", "Protocol"},
		},
		"enclosure ok":    {element: rss.NewEnclosure("u", 0, "t")},
		"enclosure empty": {element: &rss.Enclosure{}, fields: []string{"URL", "Type"}},
		"guid empty":      {element: rss.NewGUID(""), fields: []string{"Value"}},
		"image":           {element: &rss.Image{}},
		"source ok":       {element: rss.NewSource("u", "")},
		"source empty":    {element: rss.NewSource("", "v"), fields: []string{"URL"}},
		"item empty":      {element: rss.NewItem("", ""), fields: []string{"Title", "Link"}},
		"channel empty": {
			element: rss.NewChannel("", "", ""),
			fields:  []string{"Title", "Link", "Description"},
		},
		"nested": {
			element: rss.New(rss.NewChannel("T", "L", "D").
				AddCategory(rss.NewCategory("")).
				AddItem(rss.NewItem("T", "L", func(i *rss.Item) {
					i.GUID = rss.NewGUID("")
				}))),
			fields: []string{"Value", "Value"},
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			err := c.element.Validate()
			if len(c.fields) == 0 {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error, got none")
			}

			got := missingFields(err)
			if e, a := strings.Join(c.fields, ","), strings.Join(got, ","); e != a {
				t.Errorf("expected missing fields %v, got %v", e, a)
			}
		})
	}
}

func TestValidateInvalidValues(t *testing.T) {
	cases := map[string]struct {
		element rss.Element
		field   string
	}{
		"negative length": {element: rss.NewEnclosure("u", -1, "t"), field: "Length"},
		"port too large":  {element: rss.NewCloud("d", 70000, "/p", "r", "soap"), field: "Port"},
		"negative ttl": {
			element: rss.NewChannel("T", "L", "D", func(c *rss.Channel) {
				ttl := -5
				c.TTL = &ttl
			}),
			field: "TTL",
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			var invalid *rss.InvalidFieldError
			if err := c.element.Validate(); !errors.As(err, &invalid) {
				t.Fatalf("expected InvalidFieldError, got %v", err)
			}
			if e, a := c.field, invalid.Field; e != a {
				t.Errorf("expected %v, got %v", e, a)
			}
		})
	}
}

func TestValidateErrorPath(t *testing.T) {
	channel := rss.NewChannel("T", "L", "D").
		AddItems(rss.NewItem("T", "L"), rss.NewItem("", "L"))

	err := channel.Validate()
	if err == nil {
		t.Fatalf("expected error, got none")
	}
	if e, a := "item[1]: rss: item is missing required field Title", err.Error(); e != a {
		t.Errorf("expected %v, got %v", e, a)
	}
}

// missingFields flattens joined and wrapped errors into the list of missing
// field names, in order.
func missingFields(err error) []string {
	var missing *rss.MissingFieldError
	if errors.As(err, &missing) {
		if _, ok := err.(*rss.MissingFieldError); ok {
			return []string{missing.Field}
		}
	}

	var fields []string
	switch e := err.(type) {
	case interface{ Unwrap() []error }:
		for _, inner := range e.Unwrap() {
			fields = append(fields, missingFields(inner)...)
		}
	case interface{ Unwrap() error }:
		fields = append(fields, missingFields(e.Unwrap())...)
	}
	return fields
}

package testing

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/google/go-cmp/cmp"
)

// T provides the testing interface for capturing failures with testing assert
// utilities.
type T interface {
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
	Helper()
}

// MarkupEqual compares two rendered documents line by line. Returns an error
// holding the line diff if the documents differ.
func MarkupEqual(expect, actual string) error {
	if diff := cmp.Diff(strings.Split(expect, "\n"), strings.Split(actual, "\n")); len(diff) != 0 {
		return fmt.Errorf("markup mismatch (-expect +actual):\n%s", diff)
	}

	return nil
}

// AssertMarkupEqual compares two rendered documents line by line. Emits a
// testing error, and returns false if the documents are not equal.
func AssertMarkupEqual(t T, expect, actual string) bool {
	t.Helper()

	if err := MarkupEqual(expect, actual); err != nil {
		t.Errorf("expect markup equal, %v", err)
		return false
	}

	return true
}

// WellFormed reports whether markup is a well-formed XML document or
// fragment with balanced tags.
func WellFormed(markup string) error {
	d := xml.NewDecoder(strings.NewReader(markup))
	d.Strict = true

	depth := 0
	for {
		tok, err := d.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("malformed xml, %v", err)
		}

		switch tok.(type) {
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		}
	}

	if depth != 0 {
		return fmt.Errorf("malformed xml, %d unclosed elements", depth)
	}
	return nil
}

// AssertWellFormed emits a testing error, and returns false if markup is not
// well-formed XML.
func AssertWellFormed(t T, markup string) bool {
	t.Helper()

	if err := WellFormed(markup); err != nil {
		t.Errorf("expect well-formed xml, %v", err)
		return false
	}

	return true
}

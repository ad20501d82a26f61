package rss

import (
	"errors"
	"fmt"
)

// MissingFieldError is returned by Validate when a mandatory field of an
// element is empty.
type MissingFieldError struct {
	Element string
	Field   string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("rss: %s is missing required field %s", e.Element, e.Field)
}

// InvalidFieldError is returned by Validate when a field holds a value the
// element cannot represent, such as a negative enclosure length.
type InvalidFieldError struct {
	Element string
	Field   string
	Reason  string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("rss: %s field %s is invalid, %s", e.Element, e.Field, e.Reason)
}

func requireText(element, field, v string) error {
	if len(v) == 0 {
		return &MissingFieldError{Element: element, Field: field}
	}
	return nil
}

// validateChild validates a child element and prefixes its errors with the
// child's position in the parent.
func validateChild(path string, child Element) error {
	if err := child.Validate(); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func validateCategories(categories []*Category) error {
	var errs []error
	for i, c := range categories {
		if c == nil {
			continue
		}
		errs = append(errs, validateChild(fmt.Sprintf("category[%d]", i), c))
	}
	return errors.Join(errs...)
}

// Package ptr provides utilities for converting values to and from the
// pointers used by the optional fields of RSS elements.
package ptr

// String returns a pointer value for the string value passed in.
func String(v string) *string {
	return &v
}

// Int returns a pointer value for the int value passed in.
func Int(v int) *int {
	return &v
}

// Int64 returns a pointer value for the int64 value passed in.
func Int64(v int64) *int64 {
	return &v
}

// Bool returns a pointer value for the bool value passed in.
func Bool(v bool) *bool {
	return &v
}

// ToString returns the string value dereferenced from the passed in pointer,
// or the empty string if the pointer is nil.
func ToString(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// ToInt returns the int value dereferenced from the passed in pointer,
// or zero if the pointer is nil.
func ToInt(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

// ToBool returns the bool value dereferenced from the passed in pointer,
// or false if the pointer is nil.
func ToBool(p *bool) bool {
	if p == nil {
		return false
	}
	return *p
}

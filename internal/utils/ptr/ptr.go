// Package ptr provides small helpers for building pointer values inline.
package ptr

// ToString returns a pointer to the given string.
func ToString(s string) *string {
	return &s
}

// StringValue dereferences a string pointer, returning "" for nil.
func StringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// To returns a pointer to any value.
func To[T any](v T) *T {
	return &v
}

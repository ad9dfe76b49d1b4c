package domain

import "strings"

// StripNulls removes NUL bytes, which some databases reject inside text.
func StripNulls(s string) string {
	return strings.ReplaceAll(s, "\x00", "")
}

// TrimToNil trims whitespace and returns nil when nothing remains.
func TrimToNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

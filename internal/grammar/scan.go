package grammar

import "strings"

// IndexUnquoted returns the index of the first occurrence of c in s that is
// outside a double-quoted span, or -1 if there is none.
//
// Quote state toggles on every '"' regardless of escaping: the scanner only
// understands literal quote pairs, not backslash-escaped quotes.
func IndexUnquoted(s string, c byte) int {
	inQuotes := false
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '"':
			inQuotes = !inQuotes
		case s[i] == c && !inQuotes:
			return i
		}
	}
	return -1
}

// SplitUnquoted splits s on every occurrence of sep that is outside a
// double-quoted span. Quote characters stay in the resulting segments.
// A trailing empty segment is dropped; empty segments elsewhere are kept.
func SplitUnquoted(s string, sep byte) []string {
	var (
		out      []string
		cur      strings.Builder
		inQuotes bool
	)
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '"':
			inQuotes = !inQuotes
			cur.WriteByte(c)
		case c == sep && !inQuotes:
			out = append(out, cur.String())
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}
	if cur.Len() > 0 {
		out = append(out, cur.String())
	}
	return out
}

// SplitValues splits s on every occurrence of sep that is outside a
// double-quoted span, consuming the quote characters as state toggles
// instead of emitting them. A trailing empty segment is dropped.
func SplitValues(s string, sep byte) []string {
	var (
		out      []string
		cur      strings.Builder
		inQuotes bool
	)
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '"':
			inQuotes = !inQuotes
		case c == sep && !inQuotes:
			out = append(out, cur.String())
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}
	if cur.Len() > 0 {
		out = append(out, cur.String())
	}
	return out
}

package grammar

import "strings"

// Unescape reverses the value escaping of RFC 6350 Section 3.4.
//
// The substitutions run in a fixed order with the backslash rule last, so
// that it cannot corrupt the two-character sequences consumed by the earlier
// rules. Unrecognized backslash sequences pass through unchanged.
func Unescape(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	s = strings.ReplaceAll(s, `\n`, "\n")
	s = strings.ReplaceAll(s, `\N`, "\n")
	s = strings.ReplaceAll(s, `\;`, ";")
	s = strings.ReplaceAll(s, `\,`, ",")
	s = strings.ReplaceAll(s, `\\`, `\`)
	return s
}

// Escape applies the value escaping of RFC 6350 Section 3.4.
// The backslash rule runs first so later rules do not double-escape its
// output. Carriage returns are dropped.
func Escape(s string) string {
	if !strings.ContainsAny(s, "\\;,\n\r") {
		return s
	}
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, ";", `\;`)
	s = strings.ReplaceAll(s, ",", `\,`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	s = strings.ReplaceAll(s, "\r", "")
	return s
}

// Package grammar implements the low-level wire syntax of the vCard format
// described in RFC 6350: line folding, quote-aware delimiter scanning and
// value escaping.
package grammar

//go:generate errtrace -w .

// Error is a grammar level error.
type Error string

func (e Error) Error() string { return string(e) }

func (Error) Grammar() bool { return true }

const (
	// ErrMissingColon is returned for a property line without an unquoted colon.
	ErrMissingColon Error = "invalid property line (missing colon)"
	// ErrMissingEquals is returned for a parameter clause without an equals sign.
	ErrMissingEquals Error = "invalid parameter (missing equals)"
)

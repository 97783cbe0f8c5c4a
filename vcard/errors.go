package vcard

import (
	"fmt"

	"github.com/ghettovoice/govcard/internal/errorutil"
	"github.com/ghettovoice/govcard/internal/grammar"
)

// Error represents a vCard error.
// See [errorutil.Error].
type Error = errorutil.Error

// Common errors.
const ErrInvalidArgument = errorutil.ErrInvalidArgument

// Structural errors.
const (
	// ErrExpectedBegin is returned when a component does not open with BEGIN:VCARD.
	ErrExpectedBegin Error = "expected BEGIN:VCARD"
	// ErrMismatchedEnd is returned when an END tag closes a different component type.
	ErrMismatchedEnd Error = "mismatched END tag"
	// ErrUnexpectedEOF is returned when the input ends inside an open component.
	ErrUnexpectedEOF Error = "unexpected end of input"
	// ErrNoCardData is returned when the input contains no vCard data at all.
	ErrNoCardData Error = "no vCard data found"
)

// Syntax errors.
const (
	// ErrMissingColon is returned for a property line without an unquoted colon.
	ErrMissingColon = grammar.ErrMissingColon
	// ErrMissingEquals is returned for a parameter clause without an equals sign.
	ErrMissingEquals = grammar.ErrMissingEquals
)

// Validation errors.
const (
	// ErrMissingRequiredProperty is returned when VERSION or FN is absent at
	// component close.
	ErrMissingRequiredProperty Error = "missing required property"
	// ErrUnsupportedVersion is returned when VERSION is present but not
	// [SupportedVersion].
	ErrUnsupportedVersion Error = "unsupported vCard version"
)

// ParseError represents an error that occurred during parsing.
//
// It contains the error that occurred, the current parsing state and the
// logical line that caused the error.
type ParseError struct {
	Err   error
	State ParseState
	Line  string
}

func (err *ParseError) Error() string {
	return fmt.Sprintf("parse error: %v", err.Err)
}

func (err *ParseError) Unwrap() error { return err.Err }

func (err *ParseError) Grammar() bool { return errorutil.IsGrammarErr(err.Err) }

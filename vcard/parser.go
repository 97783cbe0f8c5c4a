package vcard

import (
	"context"
	"log/slog"
	"strings"

	"braces.dev/errtrace"
	"github.com/qmuntal/stateless"

	"github.com/ghettovoice/govcard/internal/errorutil"
	"github.com/ghettovoice/govcard/internal/grammar"
	"github.com/ghettovoice/govcard/internal/log"
	"github.com/ghettovoice/govcard/internal/stringutils"
)

// Parser is an interface for parsing vCard records.
type Parser interface {
	// Parse parses all vCard records from the given buffer src.
	//
	// Any implementations must satisfy the following contract:
	// - in success case, it returns all records in source order and nil error;
	// - a single structural, syntax or validation failure anywhere aborts the
	//   whole call with a non-nil error and no partial results.
	Parse(src []byte) ([]*Card, error)
}

var defParser = &DefaultParser{}

// Parse parses all vCard records from the given buffer src using the default
// parser. See [DefaultParser.Parse] for details.
func Parse(src []byte) ([]*Card, error) { return errtrace.Wrap2(defParser.Parse(src)) }

// ParseString parses all vCard records from the given string using the
// default parser. See [DefaultParser.ParseString] for details.
func ParseString(src string) ([]*Card, error) { return errtrace.Wrap2(defParser.ParseString(src)) }

// DefaultParser implements the [Parser] interface.
//
// The zero value is ready to use. A parser is reusable: the unfolded line
// buffer and the cursor into it are reset unconditionally at the start of
// every call. It is not safe for concurrent use from multiple goroutines;
// give each goroutine its own parser instead.
type DefaultParser struct {
	// Log is the logger used to trace parsing. If nil, logging is disabled.
	Log *slog.Logger

	lines []string
	pos   int
}

// Parse parses all vCard records from the given buffer src.
//
// The input is one or more BEGIN:VCARD ... END:VCARD components in RFC 6350
// folded-line syntax with platform-agnostic line endings. In success case,
// it returns the validated records in source order. Any failure aborts the
// whole call and is returned as a [*ParseError]; no partial results are
// returned.
func (p *DefaultParser) Parse(src []byte) ([]*Card, error) {
	return errtrace.Wrap2(p.parse(grammar.Unfold(src)))
}

// ParseString parses all vCard records from the given string.
// See [DefaultParser.Parse] for details.
func (p *DefaultParser) ParseString(src string) ([]*Card, error) {
	return errtrace.Wrap2(p.parse(grammar.Unfold(src)))
}

func (p *DefaultParser) log() *slog.Logger {
	if p == nil || p.Log == nil {
		return log.Noop
	}
	return p.Log
}

func (p *DefaultParser) parse(lines []string) ([]*Card, error) {
	p.lines = lines
	p.pos = 0

	m := newComponentFSM(p.log())
	for ; p.pos < len(p.lines); p.pos++ {
		line := p.lines[p.pos]
		if err := m.feed(line); err != nil {
			p.log().Warn("line parsing error", "line", log.StringValue(line), "error", err)
			return nil, &ParseError{Err: err, State: m.state(), Line: line}
		}
	}
	if err := m.finish(); err != nil {
		return nil, &ParseError{Err: err, State: m.state()}
	}

	p.log().Debug("parsed vCard data", "cards", len(m.cards), "lines", len(p.lines))
	return m.cards, nil
}

// ParseState is the state of the component recognition machine.
type ParseState int

const (
	ParseStateAwaiting  ParseState = iota // waiting for a component to open
	ParseStateComponent                   // accumulating component properties
)

func (s ParseState) String() string {
	switch s {
	case ParseStateAwaiting:
		return "awaiting component"
	case ParseStateComponent:
		return "in component"
	default:
		return "unknown"
	}
}

type parseTrigger int

const (
	triggerBegin parseTrigger = iota
	triggerEnd
	triggerProperty
)

const (
	beginLine     = PropBegin + ":" + ComponentTag
	endLinePrefix = PropEnd + ":"
)

// componentFSM drives BEGIN:VCARD / property* / END:VCARD recognition across
// the unfolded line stream. One machine handles any number of consecutive
// components within a single parse call.
type componentFSM struct {
	sm    *stateless.StateMachine
	log   *slog.Logger
	line  string // current logical line, kept for diagnostics
	card  *Card
	cards []*Card
}

func newComponentFSM(logger *slog.Logger) *componentFSM {
	m := &componentFSM{log: logger}

	sm := stateless.NewStateMachine(ParseStateAwaiting)
	sm.Configure(ParseStateAwaiting).
		Permit(triggerBegin, ParseStateComponent).
		OnEntryFrom(triggerEnd, m.closeComponent)
	sm.Configure(ParseStateComponent).
		OnEntryFrom(triggerBegin, m.openComponent).
		InternalTransition(triggerProperty, m.appendProperty).
		// a nested BEGIN:VCARD is not a component boundary, just a property line
		InternalTransition(triggerBegin, m.appendProperty).
		Permit(triggerEnd, ParseStateAwaiting)
	sm.OnUnhandledTrigger(func(context.Context, stateless.State, stateless.Trigger, []string) error {
		return errtrace.Wrap(errorutil.NewWrapperError(ErrExpectedBegin, "got: %s", m.line))
	})

	m.sm = sm
	return m
}

func (m *componentFSM) state() ParseState {
	st, _ := m.sm.MustState().(ParseState)
	return st
}

// feed advances the machine by one logical line.
func (m *componentFSM) feed(line string) error {
	m.line = line

	upper := stringutils.UCase(line)
	trigger := triggerProperty
	switch {
	case upper == beginLine:
		trigger = triggerBegin
	case strings.HasPrefix(upper, endLinePrefix):
		trigger = triggerEnd
	}
	return errtrace.Wrap(m.sm.Fire(trigger, line))
}

// finish checks the machine after the input is exhausted.
func (m *componentFSM) finish() error {
	if m.state() == ParseStateComponent {
		return errtrace.Wrap(errorutil.NewWrapperError(ErrUnexpectedEOF, "while parsing %s", ComponentTag))
	}
	if len(m.cards) == 0 {
		return errtrace.Wrap(ErrNoCardData)
	}
	return nil
}

func (m *componentFSM) openComponent(context.Context, ...any) error {
	m.card = NewCard()
	return nil
}

func (m *componentFSM) appendProperty(_ context.Context, args ...any) error {
	line, _ := args[0].(string)
	prop, err := parsePropertyLine(line)
	if err != nil {
		return errtrace.Wrap(err)
	}
	m.card.Append(prop)
	return nil
}

func (m *componentFSM) closeComponent(_ context.Context, args ...any) error {
	line, _ := args[0].(string)
	if endTag := stringutils.UCase(line)[len(endLinePrefix):]; endTag != ComponentTag {
		return errtrace.Wrap(errorutil.NewWrapperError(ErrMismatchedEnd,
			"expected END:%s but got END:%s", ComponentTag, endTag,
		))
	}
	if err := validateCard(m.card); err != nil {
		return errtrace.Wrap(err)
	}

	m.log.Debug("component parsed", "card", log.FmtValue(m.card, false))
	m.cards = append(m.cards, m.card)
	m.card = nil
	return nil
}

// validateCard enforces the required-property and supported-version policy
// once per completed component.
func validateCard(c *Card) error {
	ver := c.First(PropVersion)
	if ver == nil {
		return errtrace.Wrap(errorutil.NewWrapperError(ErrMissingRequiredProperty,
			"%s (RFC 6350 Section 6.7.9): vCard must include %s:%s",
			PropVersion, PropVersion, SupportedVersion,
		))
	}
	if ver.Value != SupportedVersion {
		return errtrace.Wrap(errorutil.NewWrapperError(ErrUnsupportedVersion,
			"found %q, only version %q is supported", ver.Value, SupportedVersion,
		))
	}
	if c.First(PropFN) == nil {
		return errtrace.Wrap(errorutil.NewWrapperError(ErrMissingRequiredProperty,
			"%s (Formatted Name, RFC 6350 Section 6.2.1): vCard must include %s property",
			PropFN, PropFN,
		))
	}
	return nil
}

// parsePropertyLine decomposes one logical line into a property.
func parsePropertyLine(line string) (*Property, error) {
	ci := grammar.IndexUnquoted(line, ':')
	if ci < 0 {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(grammar.ErrMissingColon, "%s", line))
	}
	nameAndParams, value := line[:ci], grammar.Unescape(line[ci+1:])

	name, paramsPart := nameAndParams, ""
	if si := grammar.IndexUnquoted(nameAndParams, ';'); si >= 0 {
		name, paramsPart = nameAndParams[:si], nameAndParams[si+1:]
	}

	prop := NewProperty(name, value)
	if paramsPart != "" {
		if err := parseParams(paramsPart, prop); err != nil {
			return nil, errtrace.Wrap(err)
		}
	}
	return prop, nil
}

// parseParams decodes a parameter segment into the property's parameter map.
func parseParams(s string, prop *Property) error {
	for _, clause := range grammar.SplitUnquoted(s, ';') {
		eq := strings.IndexByte(clause, '=')
		if eq < 0 {
			return errtrace.Wrap(errorutil.NewWrapperError(grammar.ErrMissingEquals, "%s", clause))
		}
		name, val := clause[:eq], clause[eq+1:]
		if len(val) >= 2 && val[0] == '"' && val[len(val)-1] == '"' {
			val = val[1 : len(val)-1]
		}
		for _, v := range grammar.SplitValues(val, ',') {
			prop.AddParam(name, v)
		}
	}
	return nil
}

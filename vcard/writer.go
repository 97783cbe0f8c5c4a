package vcard

import (
	"io"
	"slices"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/govcard/internal/grammar"
	"github.com/ghettovoice/govcard/internal/ioutil"
	"github.com/ghettovoice/govcard/internal/stringutils"
)

const lineBreak = "\r\n"

// paramQuoteChars are the characters that force a parameter value to be
// rendered inside double quotes.
const paramQuoteChars = ":;, \t"

// RenderTo writes the card in text/vcard format (RFC 6350) to w.
//
// The VERSION property is written first; the remaining properties follow in
// alphabetical name order, occurrences of one name in insertion order.
// Content lines longer than 75 octets are folded.
func (c *Card) RenderTo(w io.Writer) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)

	renderLine(cw, PropBegin+":"+ComponentTag)

	if ver := c.First(PropVersion); ver != nil {
		renderProperty(cw, ver)
	}

	names := make([]string, 0, len(c.Props))
	for name := range c.Props {
		if name != PropVersion {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	for _, name := range names {
		for _, prop := range c.Props[name] {
			renderProperty(cw, prop)
		}
	}

	renderLine(cw, PropEnd+":"+ComponentTag)
	return errtrace.Wrap2(cw.Result())
}

// Render returns the card in text/vcard format (RFC 6350).
func (c *Card) Render() string {
	sb := stringutils.NewStrBldr()
	defer stringutils.FreeStrBldr(sb)
	c.RenderTo(sb) //nolint:errcheck
	return sb.String()
}

func (c *Card) String() string { return c.Render() }

// RenderCards renders multiple cards back to back.
func RenderCards(w io.Writer, cards ...*Card) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	for _, c := range cards {
		cw.Call(func(w io.Writer) (int, error) {
			return errtrace.Wrap2(c.RenderTo(w))
		})
	}
	return errtrace.Wrap2(cw.Result())
}

func renderProperty(cw *ioutil.CountingWriter, prop *Property) {
	sb := stringutils.NewStrBldr()
	defer stringutils.FreeStrBldr(sb)

	sb.WriteString(prop.Name)

	names := make([]string, 0, len(prop.Params))
	for name := range prop.Params {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		for _, val := range prop.Params[name] {
			sb.WriteByte(';')
			sb.WriteString(name)
			sb.WriteByte('=')
			if strings.ContainsAny(val, paramQuoteChars) {
				sb.WriteByte('"')
				sb.WriteString(val)
				sb.WriteByte('"')
			} else {
				sb.WriteString(val)
			}
		}
	}

	sb.WriteByte(':')
	sb.WriteString(grammar.Escape(prop.Value))

	renderLine(cw, sb.String())
}

func renderLine(cw *ioutil.CountingWriter, line string) {
	for _, l := range grammar.Fold(line) {
		cw.WriteString(l)
		cw.WriteString(lineBreak)
	}
}

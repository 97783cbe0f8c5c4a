package vcard

import (
	"github.com/ghettovoice/govcard/internal/stringutils"
)

// Properties maps a property name to the ordered list of its occurrences.
//
// The keys in the map are case-insensitive and stored normalized to upper
// case. Repeated properties (TEL, EMAIL, ADR and so on) keep their source
// order under their key.
type Properties map[string][]*Property

// Get returns properties associated with the given name.
// If there are no properties associated with the name, Get returns the empty slice.
func (props Properties) Get(name string) []*Property { return props[stringutils.UCase(name)] }

// First returns the first property associated with the given name, or nil.
func (props Properties) First(name string) *Property {
	v := props[stringutils.UCase(name)]
	if len(v) == 0 {
		return nil
	}
	return v[0]
}

// Set sets the name to a single property. It replaces any existing occurrences.
func (props Properties) Set(p *Property) Properties {
	props[p.Name] = []*Property{p}
	return props
}

// Append appends a property to the occurrences of its name.
func (props Properties) Append(p *Property) Properties {
	props[p.Name] = append(props[p.Name], p)
	return props
}

// Has checks whether a given name is in the list.
func (props Properties) Has(name string) bool {
	_, ok := props[stringutils.UCase(name)]
	return ok
}

// Clone returns copy of the map.
func (props Properties) Clone() Properties {
	var props2 Properties
	for k, ps := range props {
		if props2 == nil {
			props2 = make(Properties, len(props))
		}
		ps2 := make([]*Property, len(ps))
		for i := range ps {
			ps2[i] = ps[i].Clone()
		}
		props2[k] = ps2
	}
	return props2
}

// Card is a single vCard record: the properties of one BEGIN:VCARD ...
// END:VCARD component.
//
// A Card has no identity beyond its properties. Cards produced by the parse
// path satisfy the required-property policy (exactly one VERSION equal to
// [SupportedVersion] and at least one FN); cards assembled by the [Builder]
// are not validated.
type Card struct {
	Props Properties
}

// NewCard creates an empty card.
func NewCard() *Card {
	return &Card{Props: make(Properties)}
}

// Get returns all properties with the given name in source order.
func (c *Card) Get(name string) []*Property { return c.Props.Get(name) }

// First returns the first property with the given name, or nil.
func (c *Card) First(name string) *Property { return c.Props.First(name) }

// Value returns the value of the first property with the given name,
// or the empty string.
func (c *Card) Value(name string) string {
	p := c.Props.First(name)
	if p == nil {
		return ""
	}
	return p.Value
}

// Append appends properties to the card.
func (c *Card) Append(props ...*Property) *Card {
	if c.Props == nil {
		c.Props = make(Properties)
	}
	for _, p := range props {
		c.Props.Append(p)
	}
	return c
}

// Clone returns copy of the card.
func (c *Card) Clone() *Card {
	if c == nil {
		return nil
	}
	return &Card{Props: c.Props.Clone()}
}

// Version returns the value of the VERSION property.
func (c *Card) Version() string { return c.Value(PropVersion) }

// FormattedName returns the value of the FN property.
func (c *Card) FormattedName() string { return c.Value(PropFN) }

// Name returns the value of the N property.
// See [ParseStructuredName] for decomposing it.
func (c *Card) Name() string { return c.Value(PropN) }

// Nickname returns the value of the NICKNAME property.
func (c *Card) Nickname() string { return c.Value(PropNickname) }

// Photo returns the value of the PHOTO property.
func (c *Card) Photo() string { return c.Value(PropPhoto) }

// Birthday returns the value of the BDAY property.
func (c *Card) Birthday() string { return c.Value(PropBirthday) }

// Organization returns the value of the ORG property.
func (c *Card) Organization() string { return c.Value(PropOrg) }

// Title returns the value of the TITLE property.
func (c *Card) Title() string { return c.Value(PropTitle) }

// Telephones returns all TEL properties in source order.
func (c *Card) Telephones() []*Property { return c.Get(PropTel) }

// Emails returns all EMAIL properties in source order.
func (c *Card) Emails() []*Property { return c.Get(PropEmail) }

// Addresses returns all ADR properties in source order.
func (c *Card) Addresses() []*Property { return c.Get(PropAddress) }

// URLs returns all URL properties in source order.
func (c *Card) URLs() []*Property { return c.Get(PropURL) }

package vcard

import (
	"github.com/ghettovoice/govcard/internal/stringutils"
)

// Params maps a parameter name to a list of parameter values.
//
// The keys in the map are case-insensitive and stored normalized to upper
// case. Values keep their case, their insertion order and any duplicates.
type Params map[string][]string

// Get returns values associated with the given name.
// If there are no values associated with the name, Get returns the empty slice.
func (params Params) Get(name string) []string { return params[stringutils.UCase(name)] }

// First returns the first value associated with the given name.
func (params Params) First(name string) string {
	v := params[stringutils.UCase(name)]
	if len(v) == 0 {
		return ""
	}
	return v[0]
}

// Set sets the name to value. It replaces any existing values.
func (params Params) Set(name, value string) Params {
	params[stringutils.UCase(name)] = []string{value}
	return params
}

// Append appends value to the values associated with the name.
func (params Params) Append(name, value string) Params {
	name = stringutils.UCase(name)
	params[name] = append(params[name], value)
	return params
}

// Del deletes the values associated with the name.
func (params Params) Del(name string) Params {
	delete(params, stringutils.UCase(name))
	return params
}

// Has checks whether a given name is in the list.
func (params Params) Has(name string) bool {
	_, ok := params[stringutils.UCase(name)]
	return ok
}

// Clone returns copy of the map.
func (params Params) Clone() Params {
	var params2 Params
	for k, vs := range params {
		if params2 == nil {
			params2 = make(Params, len(params))
		}
		params2[k] = make([]string, len(vs))
		copy(params2[k], vs)
	}
	return params2
}

// Property is a single vCard content line: a name, a value and a set of
// parameters.
//
// The name is stored normalized to upper case. The value holds the unescaped
// text when the property was produced by the parse path, and whatever was
// given when produced by the builder.
type Property struct {
	Name   string
	Value  string
	Params Params
}

// NewProperty creates a property with the name normalized to upper case.
func NewProperty(name, value string) *Property {
	return &Property{Name: stringutils.UCase(name), Value: value}
}

// Param returns the first value of the named parameter.
func (p *Property) Param(name string) string { return p.Params.First(name) }

// ParamValues returns all values of the named parameter in insertion order.
func (p *Property) ParamValues(name string) []string { return p.Params.Get(name) }

// AddParam appends a parameter value, allocating the parameter map on first use.
func (p *Property) AddParam(name, value string) *Property {
	if p.Params == nil {
		p.Params = make(Params)
	}
	p.Params.Append(name, value)
	return p
}

// Clone returns copy of the property.
func (p *Property) Clone() *Property {
	if p == nil {
		return nil
	}
	return &Property{Name: p.Name, Value: p.Value, Params: p.Params.Clone()}
}

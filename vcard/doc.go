// Package vcard implements parsing and construction of vCard 4.0 contact
// records as defined in RFC 6350.
//
// The package includes support for parsing the text/vcard serialization
// (line unfolding, quote-aware property and parameter tokenization, value
// unescaping and BEGIN/END component validation), rendering records back to
// text, and a fluent builder for assembling records from typed fields.
package vcard

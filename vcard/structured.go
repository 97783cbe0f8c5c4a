package vcard

import "strings"

// StructuredName is the decomposed value of the N property
// (RFC 6350 Section 6.2.2).
type StructuredName struct {
	FamilyName        string
	GivenName         string
	AdditionalNames   string
	HonorificPrefixes string
	HonorificSuffixes string
}

// ParseStructuredName decomposes a semicolon-separated N value.
// Missing trailing components are left empty.
func ParseStructuredName(value string) StructuredName {
	var n StructuredName
	fields := []*string{
		&n.FamilyName, &n.GivenName, &n.AdditionalNames,
		&n.HonorificPrefixes, &n.HonorificSuffixes,
	}
	for i, part := range strings.Split(value, ";") {
		if i >= len(fields) {
			break
		}
		*fields[i] = part
	}
	return n
}

func (n StructuredName) String() string {
	return strings.Join([]string{
		n.FamilyName, n.GivenName, n.AdditionalNames,
		n.HonorificPrefixes, n.HonorificSuffixes,
	}, ";")
}

// StructuredAddress is the decomposed value of the ADR property
// (RFC 6350 Section 6.3.1).
type StructuredAddress struct {
	PostOfficeBox   string
	ExtendedAddress string
	StreetAddress   string
	Locality        string
	Region          string
	PostalCode      string
	CountryName     string
}

// ParseStructuredAddress decomposes a semicolon-separated ADR value.
// Missing trailing components are left empty.
func ParseStructuredAddress(value string) StructuredAddress {
	var a StructuredAddress
	fields := []*string{
		&a.PostOfficeBox, &a.ExtendedAddress, &a.StreetAddress,
		&a.Locality, &a.Region, &a.PostalCode, &a.CountryName,
	}
	for i, part := range strings.Split(value, ";") {
		if i >= len(fields) {
			break
		}
		*fields[i] = part
	}
	return a
}

func (a StructuredAddress) String() string {
	return strings.Join([]string{
		a.PostOfficeBox, a.ExtendedAddress, a.StreetAddress,
		a.Locality, a.Region, a.PostalCode, a.CountryName,
	}, ";")
}

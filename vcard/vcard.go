package vcard

//go:generate errtrace -w .

// ComponentTag is the component type of a vCard record.
const ComponentTag = "VCARD"

// SupportedVersion is the only vCard version accepted by the parse path.
const SupportedVersion = "4.0"

// Well-known property names (RFC 6350 Section 6).
const (
	PropBegin       = "BEGIN"
	PropEnd         = "END"
	PropVersion     = "VERSION"
	PropFN          = "FN"
	PropN           = "N"
	PropNickname    = "NICKNAME"
	PropPhoto       = "PHOTO"
	PropBirthday    = "BDAY"
	PropAnniversary = "ANNIVERSARY"
	PropGender      = "GENDER"
	PropTel         = "TEL"
	PropEmail       = "EMAIL"
	PropAddress     = "ADR"
	PropURL         = "URL"
	PropOrg         = "ORG"
	PropTitle       = "TITLE"
	PropRole        = "ROLE"
	PropNote        = "NOTE"
	PropUID         = "UID"
	PropCategories  = "CATEGORIES"
	PropRevision    = "REV"
	PropTimeZone    = "TZ"
	PropGeo         = "GEO"
)

// ParamType is the TYPE parameter name.
const ParamType = "TYPE"

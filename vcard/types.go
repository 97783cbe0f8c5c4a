package vcard

// TelType is a TYPE parameter value of the TEL property
// (RFC 6350 Section 6.4.1).
type TelType string

const (
	TelText      TelType = "text"
	TelVoice     TelType = "voice"
	TelFax       TelType = "fax"
	TelCell      TelType = "cell"
	TelVideo     TelType = "video"
	TelPager     TelType = "pager"
	TelTextphone TelType = "textphone"
	TelWork      TelType = "work"
	TelHome      TelType = "home"
)

// String returns the lowercase wire-format string of the tag.
func (t TelType) String() string { return string(t) }

// EmailType is a TYPE parameter value of the EMAIL property
// (RFC 6350 Section 6.4.2).
type EmailType string

const (
	EmailWork     EmailType = "work"
	EmailHome     EmailType = "home"
	EmailInternet EmailType = "internet"
)

// String returns the lowercase wire-format string of the tag.
func (t EmailType) String() string { return string(t) }

// AddrType is a TYPE parameter value of the ADR property
// (RFC 6350 Section 6.3.1).
type AddrType string

const (
	AddrWork   AddrType = "work"
	AddrHome   AddrType = "home"
	AddrPostal AddrType = "postal"
	AddrParcel AddrType = "parcel"
	AddrDom    AddrType = "dom"
	AddrIntl   AddrType = "intl"
)

// String returns the lowercase wire-format string of the tag.
func (t AddrType) String() string { return string(t) }

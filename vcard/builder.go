package vcard

// Builder assembles a [Card] from typed field-setting calls.
//
// The builder stores values as given, without escaping, and performs no
// validation: required-property policy is enforced only by the parse path.
// Set methods replace any previous occurrences of their property, Add
// methods accumulate.
//
// Example:
//
//	card := vcard.NewBuilder().
//		SetVersion("4.0").
//		SetFormattedName("John Doe").
//		AddTelephone("+1-555-1234", vcard.TelWork, vcard.TelVoice).
//		AddEmail("john@example.com", vcard.EmailWork).
//		Build()
type Builder struct {
	card *Card
}

// NewBuilder creates a builder with an empty card.
func NewBuilder() *Builder {
	return &Builder{card: NewCard()}
}

// Build returns the assembled card. The builder is consumed: further calls
// mutate the same card.
func (b *Builder) Build() *Card { return b.card }

// SetVersion sets the VERSION property (typically [SupportedVersion]).
func (b *Builder) SetVersion(version string) *Builder {
	return b.set(PropVersion, version)
}

// SetFormattedName sets the FN property.
func (b *Builder) SetFormattedName(name string) *Builder {
	return b.set(PropFN, name)
}

// SetName sets the N property from a semicolon-separated composite value.
func (b *Builder) SetName(name string) *Builder {
	return b.set(PropN, name)
}

// SetNameParts sets the N property from its components.
func (b *Builder) SetNameParts(n StructuredName) *Builder {
	return b.set(PropN, n.String())
}

// AddTelephone adds a TEL property with the given type tags.
func (b *Builder) AddTelephone(number string, types ...TelType) *Builder {
	prop := NewProperty(PropTel, number)
	for _, t := range types {
		prop.AddParam(ParamType, t.String())
	}
	b.card.Append(prop)
	return b
}

// AddEmail adds an EMAIL property with the given type tags.
func (b *Builder) AddEmail(email string, types ...EmailType) *Builder {
	prop := NewProperty(PropEmail, email)
	for _, t := range types {
		prop.AddParam(ParamType, t.String())
	}
	b.card.Append(prop)
	return b
}

// AddAddress adds an ADR property from a semicolon-separated composite value
// with the given type tags.
func (b *Builder) AddAddress(address string, types ...AddrType) *Builder {
	prop := NewProperty(PropAddress, address)
	for _, t := range types {
		prop.AddParam(ParamType, t.String())
	}
	b.card.Append(prop)
	return b
}

// AddAddressParts adds an ADR property from its components with the given
// type tags.
func (b *Builder) AddAddressParts(addr StructuredAddress, types ...AddrType) *Builder {
	return b.AddAddress(addr.String(), types...)
}

// SetOrganization sets the ORG property.
func (b *Builder) SetOrganization(org string) *Builder {
	return b.set(PropOrg, org)
}

// SetTitle sets the TITLE property.
func (b *Builder) SetTitle(title string) *Builder {
	return b.set(PropTitle, title)
}

// SetRole sets the ROLE property.
func (b *Builder) SetRole(role string) *Builder {
	return b.set(PropRole, role)
}

// SetNickname sets the NICKNAME property.
func (b *Builder) SetNickname(nickname string) *Builder {
	return b.set(PropNickname, nickname)
}

// SetPhoto sets the PHOTO property to the given URI.
func (b *Builder) SetPhoto(uri string) *Builder {
	return b.set(PropPhoto, uri)
}

// SetBirthday sets the BDAY property (YYYYMMDD or YYYY-MM-DD).
func (b *Builder) SetBirthday(date string) *Builder {
	return b.set(PropBirthday, date)
}

// SetAnniversary sets the ANNIVERSARY property (YYYYMMDD or YYYY-MM-DD).
func (b *Builder) SetAnniversary(date string) *Builder {
	return b.set(PropAnniversary, date)
}

// SetGender sets the GENDER property.
func (b *Builder) SetGender(gender string) *Builder {
	return b.set(PropGender, gender)
}

// AddURL adds a URL property.
func (b *Builder) AddURL(url string) *Builder {
	b.card.Append(NewProperty(PropURL, url))
	return b
}

// AddNote adds a NOTE property.
func (b *Builder) AddNote(note string) *Builder {
	b.card.Append(NewProperty(PropNote, note))
	return b
}

// SetUID sets the UID property.
func (b *Builder) SetUID(uid string) *Builder {
	return b.set(PropUID, uid)
}

// AddCategories adds a CATEGORIES property from a comma-separated value.
func (b *Builder) AddCategories(categories string) *Builder {
	b.card.Append(NewProperty(PropCategories, categories))
	return b
}

// SetRevision sets the REV property.
func (b *Builder) SetRevision(rev string) *Builder {
	return b.set(PropRevision, rev)
}

// SetTimeZone sets the TZ property.
func (b *Builder) SetTimeZone(tz string) *Builder {
	return b.set(PropTimeZone, tz)
}

// SetGeo sets the GEO property.
func (b *Builder) SetGeo(geo string) *Builder {
	return b.set(PropGeo, geo)
}

// AddProperty adds a free-form property, e.g. a vendor X- extension.
func (b *Builder) AddProperty(name, value string) *Builder {
	b.card.Append(NewProperty(name, value))
	return b
}

func (b *Builder) set(name, value string) *Builder {
	b.card.Props.Set(NewProperty(name, value))
	return b
}

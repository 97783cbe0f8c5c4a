package vcard_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ghettovoice/govcard/vcard"
)

func TestBuilder(t *testing.T) {
	t.Parallel()

	card := vcard.NewBuilder().
		SetVersion("4.0").
		SetFormattedName("John Doe").
		SetNameParts(vcard.StructuredName{
			FamilyName: "Doe",
			GivenName:  "John",
		}).
		AddTelephone("+1-555-1234", vcard.TelWork, vcard.TelVoice).
		AddTelephone("+1-555-5678", vcard.TelCell).
		AddEmail("john@example.com", vcard.EmailWork).
		AddAddressParts(vcard.StructuredAddress{
			StreetAddress: "123 Main St",
			Locality:      "Springfield",
			Region:        "IL",
			PostalCode:    "62704",
			CountryName:   "USA",
		}, vcard.AddrWork).
		SetOrganization("ACME Inc.").
		SetTitle("Engineer").
		AddProperty("X-SKYPE", "john.doe").
		Build()

	if got, want := card.Version(), "4.0"; got != want {
		t.Errorf("card.Version() = %q, want %q", got, want)
	}
	if got, want := card.FormattedName(), "John Doe"; got != want {
		t.Errorf("card.FormattedName() = %q, want %q", got, want)
	}
	if got, want := card.Name(), "Doe;John;;;"; got != want {
		t.Errorf("card.Name() = %q, want %q", got, want)
	}
	if got, want := card.Organization(), "ACME Inc."; got != want {
		t.Errorf("card.Organization() = %q, want %q", got, want)
	}
	if got, want := card.Title(), "Engineer"; got != want {
		t.Errorf("card.Title() = %q, want %q", got, want)
	}
	if got, want := card.Value("X-SKYPE"), "john.doe"; got != want {
		t.Errorf(`card.Value("X-SKYPE") = %q, want %q`, got, want)
	}

	tels := card.Telephones()
	if len(tels) != 2 {
		t.Fatalf("card.Telephones() returned %d properties, want 2", len(tels))
	}
	if diff := cmp.Diff(tels[0].ParamValues("TYPE"), []string{"work", "voice"}); diff != "" {
		t.Errorf("tels[0] TYPE mismatch (-got +want):\n%v", diff)
	}
	if diff := cmp.Diff(tels[1].ParamValues("TYPE"), []string{"cell"}); diff != "" {
		t.Errorf("tels[1] TYPE mismatch (-got +want):\n%v", diff)
	}

	adrs := card.Addresses()
	if len(adrs) != 1 {
		t.Fatalf("card.Addresses() returned %d properties, want 1", len(adrs))
	}
	if got, want := adrs[0].Value, ";;123 Main St;Springfield;IL;62704;USA"; got != want {
		t.Errorf("adrs[0].Value = %q, want %q", got, want)
	}
}

func TestBuilderStoresValuesRaw(t *testing.T) {
	t.Parallel()

	// the builder does not apply escaping: values round-trip 1:1
	const v = `semi;colon, comma\backslash` + "\nnewline"
	card := vcard.NewBuilder().AddNote(v).Build()
	if got := card.Value("NOTE"); got != v {
		t.Errorf(`card.Value("NOTE") = %q, want %q`, got, v)
	}
}

func TestBuilderSetReplaces(t *testing.T) {
	t.Parallel()

	card := vcard.NewBuilder().
		SetFormattedName("First").
		SetFormattedName("Second").
		Build()

	if got, want := len(card.Get("FN")), 1; got != want {
		t.Fatalf(`len(card.Get("FN")) = %d, want %d`, got, want)
	}
	if got, want := card.FormattedName(), "Second"; got != want {
		t.Errorf("card.FormattedName() = %q, want %q", got, want)
	}
}

func TestBuilderNoValidation(t *testing.T) {
	t.Parallel()

	// no VERSION, no FN: the builder does not enforce the parse-path policy
	card := vcard.NewBuilder().AddTelephone("+1").Build()
	if got, want := len(card.Props), 1; got != want {
		t.Errorf("len(card.Props) = %d, want %d", got, want)
	}
}

func TestBuilderParseEquivalence(t *testing.T) {
	t.Parallel()

	built := vcard.NewBuilder().
		SetVersion("4.0").
		SetFormattedName("John Doe").
		AddTelephone("+1-555-1234", vcard.TelWork).
		Build()

	parsed, err := vcard.ParseString(
		"BEGIN:VCARD\nVERSION:4.0\nFN:John Doe\nTEL;TYPE=work:+1-555-1234\nEND:VCARD",
	)
	if err != nil {
		t.Fatalf("vcard.ParseString() error = %v", err)
	}
	if diff := cmp.Diff(built, parsed[0]); diff != "" {
		t.Errorf("built card differs from parsed card (-built +parsed):\n%v", diff)
	}
}

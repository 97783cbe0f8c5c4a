package vcard_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ghettovoice/govcard/vcard"
)

func TestCardRender(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		card *vcard.Card
		want string
	}{
		{
			"minimal card",
			vcard.NewBuilder().
				SetVersion("4.0").
				SetFormattedName("John Doe").
				Build(),
			"BEGIN:VCARD\r\nVERSION:4.0\r\nFN:John Doe\r\nEND:VCARD\r\n",
		},
		{
			"version first then alphabetical",
			vcard.NewBuilder().
				SetTitle("Engineer").
				SetFormattedName("John Doe").
				SetVersion("4.0").
				Build(),
			"BEGIN:VCARD\r\nVERSION:4.0\r\nFN:John Doe\r\nTITLE:Engineer\r\nEND:VCARD\r\n",
		},
		{
			"parameters rendered per value",
			vcard.NewBuilder().
				SetVersion("4.0").
				SetFormattedName("A").
				AddTelephone("+1", vcard.TelWork, vcard.TelFax).
				Build(),
			"BEGIN:VCARD\r\nVERSION:4.0\r\nFN:A\r\nTEL;TYPE=work;TYPE=fax:+1\r\nEND:VCARD\r\n",
		},
		{
			"parameter value with specials is quoted",
			vcard.NewCard().Append(
				vcard.NewProperty("VERSION", "4.0"),
				vcard.NewProperty("FN", "A"),
				vcard.NewProperty("TEL", "+1").AddParam("TYPE", "a;b"),
			),
			"BEGIN:VCARD\r\nVERSION:4.0\r\nFN:A\r\nTEL;TYPE=\"a;b\":+1\r\nEND:VCARD\r\n",
		},
		{
			"value escaped",
			vcard.NewBuilder().
				SetVersion("4.0").
				SetFormattedName("A").
				AddNote("a,b;c\\d\ne").
				Build(),
			"BEGIN:VCARD\r\nVERSION:4.0\r\nFN:A\r\n" +
				`NOTE:a\,b\;c\\d\ne` + "\r\nEND:VCARD\r\n",
		},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got, want := c.card.Render(), c.want; got != want {
				t.Errorf("card.Render() = %q, want %q", got, want)
			}
		})
	}
}

func TestCardRenderFoldsLongLines(t *testing.T) {
	t.Parallel()

	note := strings.Repeat("x", 300)
	card := vcard.NewBuilder().
		SetVersion("4.0").
		SetFormattedName("A").
		AddNote(note).
		Build()

	out := card.Render()
	for i, line := range strings.Split(strings.TrimSuffix(out, "\r\n"), "\r\n") {
		if len(line) > 75 {
			t.Errorf("physical line %d is %d octets long, want <= 75", i, len(line))
		}
	}

	parsed, err := vcard.ParseString(out)
	if err != nil {
		t.Fatalf("vcard.ParseString() error = %v", err)
	}
	if got := parsed[0].Value("NOTE"); got != note {
		t.Errorf("folded NOTE did not survive the round trip: got %d octets, want %d", len(got), len(note))
	}
}

func TestRenderParseRoundTrip(t *testing.T) {
	t.Parallel()

	card := vcard.NewBuilder().
		SetVersion("4.0").
		SetFormattedName("John Doe").
		SetNameParts(vcard.StructuredName{FamilyName: "Doe", GivenName: "John"}).
		AddTelephone("+1-555-1234", vcard.TelWork, vcard.TelVoice).
		AddEmail("john@example.com", vcard.EmailWork).
		SetOrganization("ACME Inc.").
		AddNote("line1\nline2; with specials, and\\slash").
		Build()

	parsed, err := vcard.ParseString(card.Render())
	if err != nil {
		t.Fatalf("vcard.ParseString() error = %v", err)
	}
	if diff := cmp.Diff(parsed[0], card); diff != "" {
		t.Errorf("round trip mismatch (-parsed +original):\n%v", diff)
	}
}

func TestRenderCards(t *testing.T) {
	t.Parallel()

	first := vcard.NewBuilder().SetVersion("4.0").SetFormattedName("First").Build()
	second := vcard.NewBuilder().SetVersion("4.0").SetFormattedName("Second").Build()

	sb := &strings.Builder{}
	num, err := vcard.RenderCards(sb, first, second)
	if err != nil {
		t.Fatalf("vcard.RenderCards() error = %v", err)
	}
	if num != sb.Len() {
		t.Errorf("vcard.RenderCards() reported %d bytes, writer got %d", num, sb.Len())
	}

	parsed, err := vcard.ParseString(sb.String())
	if err != nil {
		t.Fatalf("vcard.ParseString() error = %v", err)
	}
	if len(parsed) != 2 {
		t.Fatalf("vcard.ParseString() returned %d cards, want 2", len(parsed))
	}
	if got, want := parsed[0].FormattedName(), "First"; got != want {
		t.Errorf("parsed[0].FormattedName() = %q, want %q", got, want)
	}
	if got, want := parsed[1].FormattedName(), "Second"; got != want {
		t.Errorf("parsed[1].FormattedName() = %q, want %q", got, want)
	}
}

package vcard_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ghettovoice/govcard/vcard"
)

func TestCardLookup(t *testing.T) {
	t.Parallel()

	card := vcard.NewCard().Append(
		vcard.NewProperty("VERSION", "4.0"),
		vcard.NewProperty("FN", "John Doe"),
		vcard.NewProperty("TEL", "+1").AddParam("TYPE", "work"),
		vcard.NewProperty("TEL", "+2").AddParam("TYPE", "home"),
		vcard.NewProperty("email", "john@example.com"),
	)

	t.Run("lookup is case-insensitive", func(t *testing.T) {
		t.Parallel()

		for _, name := range []string{"fn", "FN", "Fn"} {
			if got, want := card.Value(name), "John Doe"; got != want {
				t.Errorf("card.Value(%q) = %q, want %q", name, got, want)
			}
		}
	})

	t.Run("names are normalized at insertion", func(t *testing.T) {
		t.Parallel()

		p := card.First("EMAIL")
		if p == nil {
			t.Fatal(`card.First("EMAIL") = nil, want property`)
		}
		if got, want := p.Name, "EMAIL"; got != want {
			t.Errorf("p.Name = %q, want %q", got, want)
		}
	})

	t.Run("first returns first occurrence", func(t *testing.T) {
		t.Parallel()

		p := card.First("tel")
		if p == nil {
			t.Fatal(`card.First("tel") = nil, want property`)
		}
		if got, want := p.Value, "+1"; got != want {
			t.Errorf("p.Value = %q, want %q", got, want)
		}
	})

	t.Run("get returns all occurrences in order", func(t *testing.T) {
		t.Parallel()

		tels := card.Get("TEL")
		if len(tels) != 2 {
			t.Fatalf(`card.Get("TEL") returned %d properties, want 2`, len(tels))
		}
		if got, want := tels[0].Value, "+1"; got != want {
			t.Errorf("tels[0].Value = %q, want %q", got, want)
		}
		if got, want := tels[1].Value, "+2"; got != want {
			t.Errorf("tels[1].Value = %q, want %q", got, want)
		}
	})

	t.Run("absent property", func(t *testing.T) {
		t.Parallel()

		if got := card.First("ADR"); got != nil {
			t.Errorf(`card.First("ADR") = %v, want nil`, got)
		}
		if got := card.Value("ADR"); got != "" {
			t.Errorf(`card.Value("ADR") = %q, want ""`, got)
		}
		if got := card.Get("ADR"); len(got) != 0 {
			t.Errorf(`card.Get("ADR") = %v, want empty`, got)
		}
	})
}

func TestCardClone(t *testing.T) {
	t.Parallel()

	orig := vcard.NewCard().Append(
		vcard.NewProperty("VERSION", "4.0"),
		vcard.NewProperty("FN", "John Doe"),
		vcard.NewProperty("TEL", "+1").AddParam("TYPE", "work"),
	)

	dup := orig.Clone()
	if diff := cmp.Diff(dup, orig); diff != "" {
		t.Fatalf("card.Clone() mismatch (-dup +orig):\n%v", diff)
	}

	dup.First("TEL").Params.Append("TYPE", "voice")
	if got, want := len(orig.First("TEL").ParamValues("TYPE")), 1; got != want {
		t.Errorf("mutating the clone changed the original: got %d param values, want %d", got, want)
	}
}

func TestPropertyParams(t *testing.T) {
	t.Parallel()

	prop := vcard.NewProperty("tel", "+1-555-1234").
		AddParam("type", "work").
		AddParam("TYPE", "fax").
		AddParam("pref", "1")

	if got, want := prop.Name, "TEL"; got != want {
		t.Errorf("prop.Name = %q, want %q", got, want)
	}
	if got, want := prop.Param("Type"), "work"; got != want {
		t.Errorf(`prop.Param("Type") = %q, want %q`, got, want)
	}
	if diff := cmp.Diff(prop.ParamValues("TYPE"), []string{"work", "fax"}); diff != "" {
		t.Errorf(`prop.ParamValues("TYPE") mismatch (-got +want):\n%v`, diff)
	}
	if got, want := prop.Param("PREF"), "1"; got != want {
		t.Errorf(`prop.Param("PREF") = %q, want %q`, got, want)
	}
	if got := prop.Param("VALUE"); got != "" {
		t.Errorf(`prop.Param("VALUE") = %q, want ""`, got)
	}
}

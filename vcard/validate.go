package vcard

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/ghettovoice/govcard/internal/stringutils"
)

// ValidationResult collects advisory findings about a card.
//
// Unlike the hard required-property policy of the parse path, validation
// reports everything it finds instead of aborting on the first problem.
type ValidationResult struct {
	Errors   []string
	Warnings []string
}

// IsValid reports whether validation found no errors. Warnings do not affect
// validity.
func (r *ValidationResult) IsValid() bool { return len(r.Errors) == 0 }

func (r *ValidationResult) addError(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *ValidationResult) addWarning(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Summary returns a human-readable report of the validation results.
func (r *ValidationResult) Summary() string {
	sb := stringutils.NewStrBldr()
	defer stringutils.FreeStrBldr(sb)

	verdict := "VALID"
	if !r.IsValid() {
		verdict = "INVALID"
	}
	fmt.Fprintf(sb, "validation result: %s\nerrors: %d\nwarnings: %d\n",
		verdict, len(r.Errors), len(r.Warnings))
	if len(r.Errors) > 0 {
		sb.WriteString("\nerrors:\n")
		for _, e := range r.Errors {
			fmt.Fprintf(sb, "  - %s\n", e)
		}
	}
	if len(r.Warnings) > 0 {
		sb.WriteString("\nwarnings:\n")
		for _, w := range r.Warnings {
			fmt.Fprintf(sb, "  - %s\n", w)
		}
	}
	return sb.String()
}

var emailRx = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// knownVersions are the versions the format family defines; only
// [SupportedVersion] passes the parse path, older ones merely avoid the
// lint error here.
var knownVersions = []string{"4.0", "3.0", "2.1"}

var knownTelTypes = map[string]bool{
	"text": true, "voice": true, "fax": true, "cell": true, "video": true,
	"pager": true, "textphone": true, "work": true, "home": true,
}

// Validate checks a card against RFC 6350 and reports advisory errors and
// warnings. It never mutates the card.
func Validate(c *Card) *ValidationResult {
	res := &ValidationResult{}

	if !c.Props.Has(PropVersion) {
		res.addError("required property %s is missing", PropVersion)
	} else if ver := c.Version(); !slices.Contains(knownVersions, ver) {
		res.addError("%s must be one of: %s, found: %s",
			PropVersion, strings.Join(knownVersions, ", "), ver)
	} else if ver != SupportedVersion {
		res.addWarning("%s %s is deprecated, consider upgrading to %s",
			PropVersion, ver, SupportedVersion)
	}

	if !c.Props.Has(PropFN) {
		res.addError("required property %s is missing", PropFN)
	} else if strings.TrimSpace(c.FormattedName()) == "" {
		res.addError("%s (Formatted Name) cannot be empty", PropFN)
	}

	for _, tel := range c.Telephones() {
		if strings.TrimSpace(tel.Value) == "" {
			res.addError("%s property cannot be empty", PropTel)
		}
		for _, typ := range tel.ParamValues(ParamType) {
			if !knownTelTypes[strings.ToLower(typ)] {
				res.addWarning("%s %s parameter has non-standard value: %s", PropTel, ParamType, typ)
			}
		}
	}

	for _, email := range c.Emails() {
		if strings.TrimSpace(email.Value) == "" {
			res.addError("%s property cannot be empty", PropEmail)
			continue
		}
		if !emailRx.MatchString(email.Value) {
			res.addWarning("%s property may not be a valid email address: %s", PropEmail, email.Value)
		}
	}

	for _, adr := range c.Addresses() {
		if n := strings.Count(adr.Value, ";") + 1; n != 7 {
			res.addWarning("%s property should have exactly 7 components, found %d: %s",
				PropAddress, n, adr.Value)
		}
	}

	for _, url := range c.URLs() {
		if strings.TrimSpace(url.Value) == "" {
			res.addError("%s property cannot be empty", PropURL)
			continue
		}
		if !strings.HasPrefix(url.Value, "http://") &&
			!strings.HasPrefix(url.Value, "https://") &&
			!strings.HasPrefix(url.Value, "ftp://") {
			res.addWarning("%s property may not be a valid URL: %s", PropURL, url.Value)
		}
	}

	return res
}

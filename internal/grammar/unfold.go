package grammar

import (
	"strings"

	"github.com/ghettovoice/govcard/internal/constraints"
	"github.com/ghettovoice/govcard/internal/stringutils"
)

// Unfold reassembles logical lines from the folded physical lines of src,
// reversing the folding described in RFC 6350 Section 3.2.
//
// A physical line starting with a single SP or HTAB continues the current
// logical line with that one character removed. Finished logical lines are
// trimmed of surrounding whitespace and blank lines are dropped. The whole
// result is materialized before any further parsing happens.
func Unfold[T constraints.Byteseq](src T) []string {
	lines := strings.Split(strings.ReplaceAll(string(src), "\r\n", "\n"), "\n")

	var (
		out []string
		cur []string
	)
	flush := func() {
		if len(cur) == 0 {
			return
		}
		if l := stringutils.TrimSP(strings.Join(cur, "")); l != "" {
			out = append(out, l)
		}
	}
	for _, line := range lines {
		if line != "" && (line[0] == ' ' || line[0] == '\t') {
			// Continuation: exactly one folding character is stripped,
			// any further leading whitespace belongs to the value.
			cur = append(cur, line[1:])
			continue
		}
		flush()
		cur = cur[:0]
		cur = append(cur, line)
	}
	flush()
	return out
}

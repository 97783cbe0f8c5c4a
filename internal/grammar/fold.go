package grammar

// MaxLineLen is the maximum length of a physical content line in octets,
// excluding the line break (RFC 6350 Section 3.2).
const MaxLineLen = 75

// Fold splits a logical line into physical lines of at most [MaxLineLen]
// octets, continuation lines prefixed with a single space.
func Fold(line string) []string {
	if len(line) <= MaxLineLen {
		return []string{line}
	}
	out := []string{line[:MaxLineLen]}
	rest := line[MaxLineLen:]
	for len(rest) > 0 {
		n := min(MaxLineLen-1, len(rest))
		out = append(out, " "+rest[:n])
		rest = rest[n:]
	}
	return out
}

package rules

import "regexp"

var (
	// postalRe is the expected shape: A1A 1A1. Anchored at the start only,
	// so trailing characters after a full match are tolerated. RE2's \s
	// leaves out the vertical tab, so it is listed separately.
	postalRe = regexp.MustCompile(`^[A-Za-z]\d[A-Za-z][\s\v]\d[A-Za-z]\d`)

	// compactPostalRe is the same code with the separator missing: A1A1A1.
	// The second half also takes a letter O in place of a zero, a common
	// keying slip in the export ("t3bob1").
	compactPostalRe = regexp.MustCompile(`^([A-Za-z]\d[A-Za-z])([\dOo][A-Za-z][\dOo])`)
)

// MatchPostal reports whether value starts with a well-formed postal code.
func MatchPostal(value string) bool {
	return postalRe.MatchString(value)
}

// SplitCompactPostal returns the two halves of a postal code written
// without a separator.
func SplitCompactPostal(value string) (string, string, bool) {
	m := compactPostalRe.FindStringSubmatch(value)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

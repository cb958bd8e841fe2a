package rules

import "regexp"

// suffixRe captures the last two whitespace-separated tokens of a value.
var suffixRe = regexp.MustCompile(`(\S+)\s+(\S+)\s*$`)

// Suffix is the pair of trailing tokens of a street value.
type Suffix struct {
	Street    string // street-type token, second to last
	Direction string // directional token, last
	Prefix    string // everything before Street, verbatim
}

// SplitSuffix extracts the street-type and directional tokens from value.
// It reports false when value has fewer than two tokens.
func SplitSuffix(value string) (Suffix, bool) {
	loc := suffixRe.FindStringSubmatchIndex(value)
	if loc == nil {
		return Suffix{}, false
	}
	return Suffix{
		Street:    value[loc[2]:loc[3]],
		Direction: value[loc[4]:loc[5]],
		Prefix:    value[:loc[2]],
	}, true
}

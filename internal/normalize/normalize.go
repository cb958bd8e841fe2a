// Package normalize rewrites street and postal code values into canonical form.
package normalize

import (
	"strings"

	"github.com/sells-group/osm-audit/internal/model"
	"github.com/sells-group/osm-audit/internal/rules"
)

// Options tunes street reassembly.
type Options struct {
	// KeepPrefix keeps the text before the last two tokens. When false the
	// result is only "<street> <direction>", so "Main St North" becomes
	// "Street N".
	KeepPrefix bool
}

// Normalizer rewrites values with one rule set. It is stateless and safe
// for concurrent use.
type Normalizer struct {
	rules *rules.Set
	opts  Options
}

// New creates a Normalizer.
func New(rs *rules.Set, opts Options) *Normalizer {
	return &Normalizer{rules: rs, opts: opts}
}

// Street replaces the street-type and directional tokens of value with
// their canonical forms. Values with fewer than two tokens are returned
// unchanged.
func (n *Normalizer) Street(value string) string {
	sfx, ok := rules.SplitSuffix(value)
	if !ok {
		return value
	}

	street := n.rules.StreetSuffixes.Replace(sfx.Street)
	dir := n.rules.Directions.Replace(sfx.Direction)

	if n.opts.KeepPrefix {
		return sfx.Prefix + street + " " + dir
	}
	return street + " " + dir
}

// PostalCode returns value in canonical A1A 1A1 form when it can be
// recognised, and uppercased otherwise. It never fails, and applying it
// twice gives the same result as applying it once.
func PostalCode(value string) string {
	// Uppercasing first keeps the result stable under a second pass: some
	// non-ASCII letters only fold into A-Z once uppercased.
	up := strings.ToUpper(value)
	if rules.MatchPostal(up) {
		return up
	}
	if head, tail, ok := rules.SplitCompactPostal(up); ok {
		return head + " " + tail
	}
	return up
}

// Correction is one field whose normalized value differs from the source.
type Correction struct {
	Kind       model.RecordKind `json:"kind" yaml:"kind"`
	ID         string           `json:"id" yaml:"id"`
	Field      string           `json:"field" yaml:"field"`
	Original   string           `json:"original" yaml:"original"`
	Normalized string           `json:"normalized" yaml:"normalized"`
}

// Correct normalizes the street and postal code of rec and returns the
// fields that changed. Street names from other cities are left alone, the
// same scope the auditor applies.
func (n *Normalizer) Correct(rec model.AddressRecord) []Correction {
	var out []Correction

	if street, ok := rec.Street(); ok {
		if city, _ := rec.City(); city == n.rules.Region {
			if fixed := n.Street(street); fixed != street {
				out = append(out, Correction{Kind: rec.Kind, ID: rec.ID, Field: model.KeyStreet, Original: street, Normalized: fixed})
			}
		}
	}

	if pc, ok := rec.PostalCode(); ok {
		if fixed := PostalCode(pc); fixed != pc {
			out = append(out, Correction{Kind: rec.Kind, ID: rec.ID, Field: model.KeyPostcode, Original: pc, Normalized: fixed})
		}
	}

	return out
}

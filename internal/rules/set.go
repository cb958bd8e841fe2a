package rules

import (
	"os"
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// Set is the full convention for one region. The rewrite tables drive the
// normalizer; the vocabularies drive the auditor. The two are kept
// independent: a token can be expected without having a rewrite, and a
// rewrite key can also appear in a vocabulary.
type Set struct {
	Region             string
	StreetSuffixes     Table
	Directions         Table
	ExpectedStreets    Vocabulary
	ExpectedDirections Vocabulary
}

// File is the on-disk YAML form of a Set. Omitted sections fall back to the
// built-in defaults.
type File struct {
	Region             string            `json:"region" yaml:"region"`
	StreetSuffixes     map[string]string `json:"street_suffixes" yaml:"street_suffixes" validate:"omitempty,dive,keys,required,endkeys,required"`
	Directions         map[string]string `json:"directions" yaml:"directions" validate:"omitempty,dive,keys,required,endkeys,required"`
	ExpectedStreets    []string          `json:"expected_streets" yaml:"expected_streets" validate:"omitempty,dive,required"`
	ExpectedDirections []string          `json:"expected_directions" yaml:"expected_directions" validate:"omitempty,dive,required"`
}

var validate = validator.New()

// Load reads a rules file. An empty path returns Default().
func Load(path string) (*Set, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "rules: read %s", path)
	}
	return Parse(data)
}

// Parse decodes YAML rules and overlays them on the defaults.
func Parse(data []byte) (*Set, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, eris.Wrap(err, "rules: decode yaml")
	}
	if err := validate.Struct(f); err != nil {
		return nil, eris.Wrap(err, "rules: validate")
	}

	s := Default()
	if f.Region != "" {
		s.Region = f.Region
	}
	if f.StreetSuffixes != nil {
		s.StreetSuffixes = NewTable(f.StreetSuffixes)
	}
	if f.Directions != nil {
		s.Directions = NewTable(f.Directions)
	}
	if f.ExpectedStreets != nil {
		s.ExpectedStreets = NewVocabulary(f.ExpectedStreets...)
	}
	if f.ExpectedDirections != nil {
		s.ExpectedDirections = NewVocabulary(f.ExpectedDirections...)
	}
	return s, nil
}

// File returns the serialisable form of s.
func (s *Set) File() File {
	return File{
		Region:             s.Region,
		StreetSuffixes:     s.StreetSuffixes.Map(),
		Directions:         s.Directions.Map(),
		ExpectedStreets:    s.ExpectedStreets.Words(),
		ExpectedDirections: s.ExpectedDirections.Words(),
	}
}

// Mismatch describes a rewrite table entry that disagrees with the
// matching vocabulary.
type Mismatch struct {
	Table  string `json:"table" yaml:"table"`
	Token  string `json:"token" yaml:"token"`
	Reason string `json:"reason" yaml:"reason"`
}

// Mismatches lists the places where the rewrite tables and the expected
// vocabularies disagree: a rewrite whose target is not expected, or a raw
// key that is itself already expected. These are reported, not fixed.
func (s *Set) Mismatches() []Mismatch {
	var out []Mismatch
	out = append(out, mismatches("street_suffixes", s.StreetSuffixes, s.ExpectedStreets)...)
	out = append(out, mismatches("directions", s.Directions, s.ExpectedDirections)...)
	return out
}

func mismatches(name string, t Table, v Vocabulary) []Mismatch {
	var out []Mismatch
	targets := make(map[string]bool)
	for _, k := range t.Keys() {
		if v.Contains(k) {
			out = append(out, Mismatch{Table: name, Token: k, Reason: "raw key is also expected"})
		}
		target, _ := t.Lookup(k)
		if !v.Contains(target) && !targets[target] {
			targets[target] = true
			out = append(out, Mismatch{Table: name, Token: target, Reason: "rewrite target is not expected"})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Token < out[j].Token })
	return out
}

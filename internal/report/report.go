// Package report renders audit results and rule tables for the terminal or
// for machine consumption.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"
	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/osm-audit/internal/audit"
	"github.com/sells-group/osm-audit/internal/rules"
)

// Format selects an output encoding.
type Format string

// Supported formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// PostalDoc is the encoded form of a postal code audit.
type PostalDoc struct {
	RunID       string   `json:"run_id" yaml:"run_id"`
	Records     int      `json:"records" yaml:"records"`
	PostalCodes int      `json:"postal_codes" yaml:"postal_codes"`
	Exceptions  []string `json:"exceptions" yaml:"exceptions"`
}

// StreetDoc is the encoded form of a street name audit.
type StreetDoc struct {
	RunID          string              `json:"run_id" yaml:"run_id"`
	Records        int                 `json:"records" yaml:"records"`
	Streets        int                 `json:"streets" yaml:"streets"`
	StreetsAudited int                 `json:"streets_audited" yaml:"streets_audited"`
	Directions     map[string][]string `json:"directions" yaml:"directions"`
	StreetTypes    map[string][]string `json:"street_types" yaml:"street_types"`
}

// RulesDoc is the encoded form of a rule set.
type RulesDoc struct {
	rules.File `yaml:",inline"`
	Mismatches []rules.Mismatch `json:"mismatches,omitempty" yaml:"mismatches,omitempty"`
}

// NormalizedDoc is the encoded form of a single rewrite.
type NormalizedDoc struct {
	Input      string `json:"input" yaml:"input"`
	Normalized string `json:"normalized" yaml:"normalized"`
}

// WriteNormalized writes the result of normalizing one value. Text output
// is the bare normalized value.
func WriteNormalized(w io.Writer, input, normalized string, f Format) error {
	if f != FormatText {
		return encode(w, NormalizedDoc{Input: input, Normalized: normalized}, f)
	}
	ew := &errWriter{w: w}
	ew.printf("%s\n", normalized)
	return ew.err
}

// WritePostal writes the postal code exceptions of rep.
func WritePostal(w io.Writer, rep *audit.Report, f Format) error {
	doc := PostalDoc{
		RunID:       rep.RunID,
		Records:     rep.Records,
		PostalCodes: rep.PostalCodes,
		Exceptions:  rep.Postal.Tokens(),
	}
	if f != FormatText {
		return encode(w, doc, f)
	}

	ew := &errWriter{w: w}
	ew.printf("Postal codes checked: %d\n", doc.PostalCodes)
	ew.printf("Unexpected postal codes: %d\n", len(doc.Exceptions))
	for _, v := range doc.Exceptions {
		ew.printf("  %q\n", v)
	}
	return ew.err
}

// WriteStreets writes the street exceptions of rep, grouped first by
// directional token and then by street-type token.
func WriteStreets(w io.Writer, rep *audit.Report, f Format) error {
	doc := StreetDoc{
		RunID:          rep.RunID,
		Records:        rep.Records,
		Streets:        rep.Streets,
		StreetsAudited: rep.StreetsAudited,
		Directions:     rep.Direction.Map(),
		StreetTypes:    rep.Street.Map(),
	}
	if f != FormatText {
		return encode(w, doc, f)
	}

	ew := &errWriter{w: w}
	ew.printf("Street names audited: %d of %d\n", doc.StreetsAudited, doc.Streets)
	ew.printf("\nUnexpected directions (%d):\n", rep.Direction.Len())
	writeGroups(ew, rep.Direction)
	ew.printf("\nUnexpected street types (%d):\n", rep.Street.Len())
	writeGroups(ew, rep.Street)
	return ew.err
}

// WriteRules writes the active tables, vocabularies and any disagreement
// between them.
func WriteRules(w io.Writer, rs *rules.Set, f Format) error {
	doc := RulesDoc{File: rs.File(), Mismatches: rs.Mismatches()}
	if f != FormatText {
		return encode(w, doc, f)
	}

	ew := &errWriter{w: w}
	ew.printf("Region: %s\n", rs.Region)
	ew.printf("\nStreet suffixes (%d):\n", rs.StreetSuffixes.Len())
	writeTable(ew, rs.StreetSuffixes)
	ew.printf("\nDirections (%d):\n", rs.Directions.Len())
	writeTable(ew, rs.Directions)
	ew.printf("\nExpected street types: %v\n", rs.ExpectedStreets.Words())
	ew.printf("Expected directions: %v\n", rs.ExpectedDirections.Words())
	if len(doc.Mismatches) > 0 {
		ew.printf("\nMismatches (%d):\n", len(doc.Mismatches))
		for _, m := range doc.Mismatches {
			ew.printf("  %s: %s (%s)\n", m.Table, m.Token, m.Reason)
		}
	}
	return ew.err
}

func writeGroups(ew *errWriter, set *audit.ExceptionSet) {
	tokens := set.Tokens()
	width := maxWidth(tokens)
	for _, tok := range tokens {
		for i, v := range set.Values(tok) {
			label := ""
			if i == 0 {
				label = tok
			}
			ew.printf("  %s  %s\n", runewidth.FillRight(label, width), v)
		}
	}
}

func writeTable(ew *errWriter, t rules.Table) {
	keys := t.Keys()
	width := maxWidth(keys)
	for _, k := range keys {
		v, _ := t.Lookup(k)
		ew.printf("  %s  -> %s\n", runewidth.FillRight(k, width), v)
	}
}

// maxWidth returns the display width of the widest string. Street names
// can carry accented or CJK characters, so byte length is not enough.
func maxWidth(ss []string) int {
	w := 0
	for _, s := range ss {
		if sw := runewidth.StringWidth(s); sw > w {
			w = sw
		}
	}
	return w
}

func encode(w io.Writer, doc any, f Format) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return eris.Wrap(err, "report: encode json")
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return eris.Wrap(err, "report: encode yaml")
		}
		if err := enc.Close(); err != nil {
			return eris.Wrap(err, "report: close yaml encoder")
		}
		return nil
	default:
		return eris.Errorf("report: unknown format %q", f)
	}
}

// errWriter remembers the first write error so callers can print freely
// and check once.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}

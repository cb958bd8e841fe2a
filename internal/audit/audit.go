// Package audit classifies street and postal code values against the
// regional convention and collects the ones that do not conform.
package audit

import (
	"iter"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/osm-audit/internal/model"
	"github.com/sells-group/osm-audit/internal/rules"
)

// PostalCode reports whether value begins with a well-formed postal code
// (A1A 1A1). Trailing characters after the code are tolerated.
func PostalCode(value string) bool {
	return rules.MatchPostal(value)
}

// Auditor checks values against one rule set. It holds no per-pass state
// and may be shared.
type Auditor struct {
	rules *rules.Set
}

// New creates an Auditor for the given rules.
func New(rs *rules.Set) *Auditor {
	return &Auditor{rules: rs}
}

// StreetName extracts the street-type and directional tokens of value.
// Extraction only happens when city is exactly the configured region;
// values from other cities, and values with fewer than two tokens,
// report false.
func (a *Auditor) StreetName(value, city string) (rules.Suffix, bool) {
	if city != a.rules.Region {
		return rules.Suffix{}, false
	}
	return rules.SplitSuffix(value)
}

// Report accumulates the outcome of one audit pass.
type Report struct {
	RunID string `json:"run_id" yaml:"run_id"`

	Records     int `json:"records" yaml:"records"`
	PostalCodes int `json:"postal_codes" yaml:"postal_codes"`
	Streets     int `json:"streets" yaml:"streets"`
	// StreetsAudited counts streets whose city matched the region and had
	// two tokens to check.
	StreetsAudited int `json:"streets_audited" yaml:"streets_audited"`

	Postal    *ExceptionSet `json:"-" yaml:"-"`
	Street    *ExceptionSet `json:"-" yaml:"-"`
	Direction *ExceptionSet `json:"-" yaml:"-"`
}

// NewReport returns an empty report with a fresh run id.
func NewReport() *Report {
	return &Report{
		RunID:     uuid.NewString(),
		Postal:    NewExceptionSet(),
		Street:    NewExceptionSet(),
		Direction: NewExceptionSet(),
	}
}

// Observe audits one record into rep. The postal code and the street are
// checked independently; absent fields are skipped.
func (a *Auditor) Observe(rep *Report, rec model.AddressRecord) {
	rep.Records++

	if pc, ok := rec.PostalCode(); ok {
		rep.PostalCodes++
		if !PostalCode(pc) {
			rep.Postal.Add(pc, pc)
		}
	}

	street, ok := rec.Street()
	if !ok {
		return
	}
	rep.Streets++

	city, _ := rec.City()
	sfx, ok := a.StreetName(street, city)
	if !ok {
		return
	}
	rep.StreetsAudited++

	if !a.rules.ExpectedStreets.Contains(sfx.Street) {
		rep.Street.Add(sfx.Street, street)
	}
	if !a.rules.ExpectedDirections.Contains(sfx.Direction) {
		rep.Direction.Add(sfx.Direction, street)
	}
}

// AuditAll folds every record of the sequence into a new Report. The first
// error from the sequence stops the pass.
func (a *Auditor) AuditAll(records iter.Seq2[model.AddressRecord, error]) (*Report, error) {
	rep := NewReport()
	for rec, err := range records {
		if err != nil {
			return nil, eris.Wrap(err, "audit: read records")
		}
		a.Observe(rep, rec)
	}

	zap.L().Debug("audit pass complete",
		zap.String("run_id", rep.RunID),
		zap.Int("records", rep.Records),
		zap.Int("postal_exceptions", rep.Postal.Total()),
		zap.Int("street_exceptions", rep.Street.Total()),
		zap.Int("direction_exceptions", rep.Direction.Total()),
	)
	return rep, nil
}

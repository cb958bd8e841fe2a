package report

import (
	"encoding/csv"
	"io"

	"github.com/rotisserie/eris"

	"github.com/sells-group/osm-audit/internal/normalize"
)

var correctionHeader = []string{"kind", "id", "field", "original", "normalized"}

// CorrectionWriter streams corrections as CSV rows.
type CorrectionWriter struct {
	w      *csv.Writer
	header bool
	rows   int
}

// NewCorrectionWriter wraps w. The header row is written with the first
// correction, or on Flush if there were none.
func NewCorrectionWriter(w io.Writer) *CorrectionWriter {
	return &CorrectionWriter{w: csv.NewWriter(w)}
}

// Write appends one row per correction.
func (c *CorrectionWriter) Write(corrections ...normalize.Correction) error {
	if err := c.writeHeader(); err != nil {
		return err
	}
	for _, cr := range corrections {
		row := []string{string(cr.Kind), cr.ID, cr.Field, cr.Original, cr.Normalized}
		if err := c.w.Write(row); err != nil {
			return eris.Wrap(err, "report: write correction")
		}
		c.rows++
	}
	return nil
}

// Rows returns the number of corrections written.
func (c *CorrectionWriter) Rows() int { return c.rows }

// Flush writes buffered rows to the underlying writer.
func (c *CorrectionWriter) Flush() error {
	if err := c.writeHeader(); err != nil {
		return err
	}
	c.w.Flush()
	if err := c.w.Error(); err != nil {
		return eris.Wrap(err, "report: flush corrections")
	}
	return nil
}

func (c *CorrectionWriter) writeHeader() error {
	if c.header {
		return nil
	}
	c.header = true
	if err := c.w.Write(correctionHeader); err != nil {
		return eris.Wrap(err, "report: write header")
	}
	return nil
}

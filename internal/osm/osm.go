// Package osm extracts address records from an OpenStreetMap XML export.
package osm

import (
	"context"
	"encoding/xml"
	"io"
	"iter"

	"github.com/sells-group/osm-audit/internal/fetcher"
	"github.com/sells-group/osm-audit/internal/model"
)

// Tag is one k/v attribute pair nested inside a node or way.
type Tag struct {
	K string `xml:"k,attr"`
	V string `xml:"v,attr"`
}

// Element is the subset of a node or way element the extractor decodes.
// Child elements other than <tag> (nd refs, members) are skipped.
type Element struct {
	XMLName xml.Name
	ID      string `xml:"id,attr"`
	Tags    []Tag  `xml:"tag"`
}

// Record converts the element into an AddressRecord. All tags are read
// before the record is returned, so addr:city applies to addr:street no
// matter which comes first.
func (e Element) Record() model.AddressRecord {
	rec := model.NewAddressRecord(model.RecordKind(e.XMLName.Local), e.ID)
	for _, t := range e.Tags {
		rec.Set(t.K, t.V)
	}
	return rec
}

// Records streams node and way records from r. The sequence is lazy and
// forward-only; stopping the range loop early stops the decoder. A decode
// error is yielded once as the final element of the sequence.
func Records(ctx context.Context, r io.Reader) iter.Seq2[model.AddressRecord, error] {
	return func(yield func(model.AddressRecord, error) bool) {
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		elemCh, errCh := fetcher.StreamXML[Element](ctx, r, string(model.KindNode), string(model.KindWay))
		for elem := range elemCh {
			if !yield(elem.Record(), nil) {
				return
			}
		}
		if err := <-errCh; err != nil {
			yield(model.AddressRecord{}, err)
		}
	}
}

// Package model holds the record types shared by the extractor, auditor and normalizer.
package model

// RecordKind identifies which OSM element a record came from.
type RecordKind string

// Record kinds carried by an OSM export.
const (
	KindNode RecordKind = "node"
	KindWay  RecordKind = "way"
)

// Tag keys read from each record.
const (
	KeyPostcode = "addr:postcode"
	KeyStreet   = "addr:street"
	KeyCity     = "addr:city"
)

// AddressRecord is a transient view over one node or way element.
// Only the address attributes the auditor cares about are kept.
type AddressRecord struct {
	Kind RecordKind
	ID   string

	street     string
	city       string
	postalCode string
	present    map[string]bool
}

// NewAddressRecord creates an empty record of the given kind.
func NewAddressRecord(kind RecordKind, id string) AddressRecord {
	return AddressRecord{Kind: kind, ID: id}
}

// Set records the value of an address attribute. Keys other than
// addr:street, addr:city and addr:postcode are ignored. A repeated
// key overwrites the previous value.
func (r *AddressRecord) Set(key, value string) {
	switch key {
	case KeyStreet:
		r.street = value
	case KeyCity:
		r.city = value
	case KeyPostcode:
		r.postalCode = value
	default:
		return
	}
	if r.present == nil {
		r.present = make(map[string]bool, 3)
	}
	r.present[key] = true
}

// Field returns the value of an address attribute and whether the
// source element carried it.
func (r AddressRecord) Field(key string) (string, bool) {
	if !r.present[key] {
		return "", false
	}
	switch key {
	case KeyStreet:
		return r.street, true
	case KeyCity:
		return r.city, true
	case KeyPostcode:
		return r.postalCode, true
	}
	return "", false
}

// Street returns the addr:street value, if present.
func (r AddressRecord) Street() (string, bool) { return r.Field(KeyStreet) }

// City returns the addr:city value, if present.
func (r AddressRecord) City() (string, bool) { return r.Field(KeyCity) }

// PostalCode returns the addr:postcode value, if present.
func (r AddressRecord) PostalCode() (string, bool) { return r.Field(KeyPostcode) }

// HasAddress reports whether any audited attribute is present.
func (r AddressRecord) HasAddress() bool {
	return len(r.present) > 0
}

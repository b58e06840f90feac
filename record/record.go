// Package record models incoming publication records and their
// classification.
//
// A record is a flat mapping of canonical lowercase field keys to string
// values, as produced by the CSV loader through a mapping profile. The
// converter only ever reads records; they carry no behavior beyond
// accessors.
package record

import "strings"

// Record is one publication's metadata, keyed by canonical lowercase field
// names ("id", "creator", "title", ...).
type Record map[string]string

// ID returns the record identifier.
func (r Record) ID() string {
	return r["id"]
}

// Field returns the trimmed value for a key, "" when absent.
func (r Record) Field(key string) string {
	return strings.TrimSpace(r[key])
}

// Has reports whether the field is present and non-empty.
func (r Record) Has(key string) bool {
	return r.Field(key) != ""
}

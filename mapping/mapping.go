// Package mapping provides column-mapping profiles for CSV sources.
//
// A profile maps the headers of a particular export (a reference manager,
// the fixed-column template) onto the canonical lowercase field keys the
// converter consumes. Profiles are YAML so operators can describe a new
// export without touching code.
package mapping

import "strings"

// Profile describes how one CSV source maps onto canonical fields.
type Profile struct {
	// Name is the profile identifier.
	Name string `yaml:"name"`

	// Description provides human-readable documentation.
	Description string `yaml:"description,omitempty"`

	// Passthrough maps every unlisted header to itself, lowercased. The
	// template profile uses this: its headers already are the canonical
	// keys.
	Passthrough bool `yaml:"passthrough,omitempty"`

	// Columns maps source headers to canonical fields, in order. Several
	// sources may map to the same field; their values are joined with
	// newlines in this order.
	Columns []ColumnMapping `yaml:"columns,omitempty"`
}

// ColumnMapping maps one source column to a canonical field key.
type ColumnMapping struct {
	// Source is the header as it appears in the export. Matched
	// case-insensitively against trimmed headers.
	Source string `yaml:"source"`

	// Field is the canonical lowercase field key (e.g. "id", "creator",
	// "subject").
	Field string `yaml:"field"`
}

// FieldFor returns the canonical field key for a source header, or "" when
// the header is unmapped and passthrough is off.
func (p *Profile) FieldFor(header string) string {
	header = strings.TrimSpace(header)
	for _, c := range p.Columns {
		if strings.EqualFold(c.Source, header) {
			return c.Field
		}
	}
	if p.Passthrough {
		return strings.ToLower(header)
	}
	return ""
}

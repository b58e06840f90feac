package record

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/scholarly-commons/pureimport/mapping"
)

// Load reads a CSV export through a mapping profile and returns one Record
// per data row. The first row must be the header. When several source
// columns map to the same field, their non-empty values are joined with
// newlines in profile order (the reference-manager export splits subjects
// and notes across columns).
func Load(r io.Reader, profile *mapping.Profile) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing CSV: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	fields := make([]string, len(rows[0]))
	for i, header := range rows[0] {
		fields[i] = profile.FieldFor(header)
	}

	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(Record)
		for i, value := range row {
			if i >= len(fields) || fields[i] == "" {
				continue
			}
			value = strings.TrimSpace(value)
			if value == "" {
				continue
			}
			if existing, ok := rec[fields[i]]; ok && existing != "" {
				rec[fields[i]] = existing + "\n" + value
			} else {
				rec[fields[i]] = value
			}
		}
		if len(rec) == 0 {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

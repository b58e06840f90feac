// Package roster loads the internal-persons extract that author names are
// matched against.
//
// The extract comes from the research information system either as an Excel
// workbook (the portal's native export) or as a CSV of the same sheet. The
// export renumbers its column headers between system versions ("2 Last,
// first name" in one release, "3 Last, first name" in the next), so columns
// are located by header substring rather than position.
package roster

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// DefaultSheet is the sheet name the portal uses for person exports.
const DefaultSheet = "Persons (0)_1"

// Entry is one known internal person.
type Entry struct {
	// Key is the canonical "Last, First" string used for matching.
	Key string
	// PersonID is the person's identifier in the research information
	// system.
	PersonID int
	// Unit is the first organizational-unit affiliation, empty when
	// unknown.
	Unit string
}

// Roster is a read-only snapshot of internal persons, loaded once per
// conversion run. Duplicate keys (different people sharing a name) are
// preserved as distinct entries.
type Roster struct {
	entries []Entry
	skipped int
}

// Entries returns all entries in scan order. Callers must not mutate the
// returned slice.
func (r *Roster) Entries() []Entry {
	return r.entries
}

// Len returns the number of entries.
func (r *Roster) Len() int {
	return len(r.entries)
}

// SkippedRows returns how many rows were rejected at load time for missing
// a key or identifier. A non-zero count silently reduces match recall, so
// callers should surface it as a warning.
func (r *Roster) SkippedRows() int {
	return r.skipped
}

// New builds a roster directly from entries. Intended for tests and for
// callers that already hold structured person data.
func New(entries []Entry) *Roster {
	return &Roster{entries: entries}
}

// Load reads a CSV export of the persons sheet. The first row must be a
// header containing the key, id and unit columns.
func Load(r io.Reader) (*Roster, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing roster CSV: %w", err)
	}
	return FromRows(rows)
}

// LoadWorkbook reads the persons sheet from an Excel workbook. An empty
// sheet name selects DefaultSheet.
func LoadWorkbook(path, sheet string) (*Roster, error) {
	if sheet == "" {
		sheet = DefaultSheet
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening roster workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	return FromRows(rows)
}

// FromRows builds a roster from raw rows, the first of which is the
// header. Rows missing the key or id are counted as skipped rather than
// silently dropped.
func FromRows(rows [][]string) (*Roster, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("roster source is empty")
	}

	keyCol, idCol, unitCol := locateColumns(rows[0])
	if keyCol < 0 {
		return nil, fmt.Errorf("roster header has no %q column", "Last, first name")
	}
	if idCol < 0 {
		return nil, fmt.Errorf("roster header has no ID column")
	}

	roster := &Roster{}
	for _, row := range rows[1:] {
		key := cell(row, keyCol)
		id, ok := parseID(cell(row, idCol))
		if key == "" || !ok {
			roster.skipped++
			continue
		}
		roster.entries = append(roster.entries, Entry{
			Key:      key,
			PersonID: id,
			Unit:     cell(row, unitCol),
		})
	}
	return roster, nil
}

func locateColumns(header []string) (keyCol, idCol, unitCol int) {
	keyCol, idCol, unitCol = -1, -1, -1
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(h))
		switch {
		case strings.Contains(h, "last, first name"):
			keyCol = i
		case h == "id" || strings.HasSuffix(h, " id"):
			idCol = i
		case strings.Contains(h, "organizational unit"):
			unitCol = i
		}
	}
	return keyCol, idCol, unitCol
}

func cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

// parseID accepts plain integers and the "345262.0" form spreadsheet tools
// produce for numeric cells.
func parseID(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	if id, err := strconv.Atoi(s); err == nil {
		return id, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != float64(int(f)) {
		return 0, false
	}
	return int(f), true
}

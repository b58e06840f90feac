package record

import "strings"

// NormalizeDate rewrites "MM/DD/YYYY" into "YYYY-MM-DD". Values already in
// "YYYY[-MM[-DD]]" form pass through unchanged.
func NormalizeDate(date string) string {
	if !strings.Contains(date, "/") {
		return date
	}
	parts := strings.Split(date, "/")
	if len(parts) != 3 {
		return date
	}
	return parts[2] + "-" + parts[0] + "-" + parts[1]
}

// SplitDate breaks a normalized date into its parts. Month and day are
// empty when the value carries only a year.
func SplitDate(date string) (year, month, day string) {
	date = NormalizeDate(date)
	if len(date) >= 4 {
		year = date[:4]
	}
	parts := strings.Split(date, "-")
	if len(parts) > 1 {
		month = parts[1]
	}
	if len(parts) > 2 {
		day = parts[2]
	}
	return year, month, day
}

// ValidDate reports whether the value can serve as a publication date: at
// minimum a four-digit year, at most a full YYYY-MM-DD.
func ValidDate(date string) bool {
	return len(date) >= 4 && len(date) <= 10
}

// CheckDates returns the ids of records whose date field cannot serve as a
// publication date. A date (at minimum a year) is required by the import
// schema, so callers should surface these before conversion.
func CheckDates(records []Record) []string {
	var bad []string
	for _, r := range records {
		if !ValidDate(r.Field("date")) {
			bad = append(bad, r.ID())
		}
	}
	return bad
}

// Package review accumulates identity decisions for human verification.
//
// Fuzzy matching is best-effort: a wrong pick attaches a publication to the
// wrong person with no error anywhere. The review reports are the mechanism
// by which such misattributions get caught, so the collector keeps every
// non-trivial match and every synthesized external author for the whole
// run.
package review

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/scholarly-commons/pureimport/match"
	"github.com/scholarly-commons/pureimport/names"
)

// Report file names, matching the layout operators already know.
const (
	ExternalPersonsFile = "external_persons.txt"
	MatchesFile         = "internal_person_matches.txt"
	GroupAuthorsFile    = "group_authors.txt"
)

// MatchEntry is one reviewed match: the author string as assembled for
// matching plus the candidates that competed for it.
type MatchEntry struct {
	Name       string
	Candidates []match.Candidate
}

// Collector gathers run-scoped review data. It is appended to by the single
// processing goroutine in input order; all accessors dedupe and sort so
// output is deterministic regardless of insertion history.
type Collector struct {
	runID     string
	externals map[names.Name]struct{}
	matches   map[string]MatchEntry
	groups    []names.GroupCandidate
}

// NewCollector returns an empty collector labeled with a fresh run id.
func NewCollector() *Collector {
	return &Collector{
		runID:     uuid.NewString(),
		externals: make(map[names.Name]struct{}),
		matches:   make(map[string]MatchEntry),
	}
}

// RunID identifies this conversion run in report headers.
func (c *Collector) RunID() string {
	return c.runID
}

// Observe routes one decision into the run collections. Exact matches are
// trivial and not collected; everything fuzzy or external is.
func (c *Collector) Observe(d match.Decision) {
	switch d.Kind {
	case match.NoMatchExternal:
		c.externals[d.Name] = struct{}{}
	case match.SingleFuzzy, match.MultiFuzzyBestPick:
		name := d.Name.Last + ", " + d.Name.First
		if _, seen := c.matches[name]; !seen {
			c.matches[name] = MatchEntry{Name: name, Candidates: d.Candidates}
		}
	}
}

// AddGroups records group-author candidates reported by the name parser.
func (c *Collector) AddGroups(groups []names.GroupCandidate) {
	c.groups = append(c.groups, groups...)
}

// ExternalPersons returns the deduplicated external authors sorted by last
// name, then first name.
func (c *Collector) ExternalPersons() []names.Name {
	out := make([]names.Name, 0, len(c.externals))
	for n := range c.externals {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Last != out[j].Last {
			return out[i].Last < out[j].Last
		}
		return out[i].First < out[j].First
	})
	return out
}

// Matches returns the deduplicated non-trivial matches sorted by the
// matched name (which begins with the last name).
func (c *Collector) Matches() []MatchEntry {
	out := make([]MatchEntry, 0, len(c.matches))
	for _, e := range c.matches {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Groups returns group-author candidates in the order they were recorded.
func (c *Collector) Groups() []names.GroupCandidate {
	return c.groups
}

// WriteExternalPersons writes the possible-external-authors report: one
// "First Last" per line.
func (c *Collector) WriteExternalPersons(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Authors with no internal-person match (run %s)\n", c.runID); err != nil {
		return err
	}
	for _, n := range c.ExternalPersons() {
		line := strings.TrimSpace(n.First + " " + n.Last)
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// WriteMatches writes the review-these-matches report: each line holds the
// author string as listed in the publication and the internal persons that
// matched it with their scores.
func (c *Collector) WriteMatches(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Author name as listed in publication -> internal person candidates with scores (run %s)\n", c.runID); err != nil {
		return err
	}
	for _, e := range c.Matches() {
		parts := make([]string, 0, len(e.Candidates))
		for _, cand := range e.Candidates {
			parts = append(parts, fmt.Sprintf("%s (%d)", cand.Entry.Key, cand.Score))
		}
		if _, err := fmt.Fprintf(w, "%s -> %s\n", e.Name, strings.Join(parts, ", ")); err != nil {
			return err
		}
	}
	return nil
}

// WriteGroupAuthors writes values that were converted from author to
// group author, with the record ids to check.
func (c *Collector) WriteGroupAuthors(w io.Writer) error {
	if len(c.groups) == 0 {
		_, err := fmt.Fprintln(w, "No group authors found")
		return err
	}
	if _, err := fmt.Fprintln(w, "The following values were not formatted as 'Last, First' and were converted to group authors. To change this, fix the rows with these ids and re-run."); err != nil {
		return err
	}
	for _, g := range c.groups {
		if _, err := fmt.Fprintf(w, "%s (record %s)\n", g.Raw, g.RecordID); err != nil {
			return err
		}
	}
	return nil
}

// WriteReports writes the three review files into dir, creating it if
// needed.
func (c *Collector) WriteReports(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating report directory: %w", err)
	}
	writers := []struct {
		name  string
		write func(io.Writer) error
	}{
		{ExternalPersonsFile, c.WriteExternalPersons},
		{MatchesFile, c.WriteMatches},
		{GroupAuthorsFile, c.WriteGroupAuthors},
	}
	for _, r := range writers {
		if err := writeFile(filepath.Join(dir, r.name), r.write); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()
	if err := write(f); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Summary reports run totals for the operator.
type Summary struct {
	Total      int
	Converted  int
	FlaggedIDs []string
}

// Flagged returns how many records need manual correction.
func (s Summary) Flagged() int {
	return len(s.FlaggedIDs)
}

func (s Summary) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d records found, %d converted, %d need manual correction", s.Total, s.Converted, s.Flagged())
	if len(s.FlaggedIDs) > 0 {
		fmt.Fprintf(&b, " (ids: %s)", strings.Join(s.FlaggedIDs, ", "))
	}
	return b.String()
}

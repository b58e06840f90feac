// Package match resolves parsed author names against the internal-persons
// roster.
//
// Matching is approximate: every roster key is scored against the author's
// "Last, First" string and candidates above a threshold compete for the
// match. A wrong pick silently attaches the publication to the wrong
// person, so every decision carries the candidate list it was based on for
// later human review.
package match

import (
	"fmt"
	"math/rand"
	"sort"
	"strconv"

	"github.com/scholarly-commons/pureimport/names"
	"github.com/scholarly-commons/pureimport/roster"
)

// DefaultThreshold is the similarity score a roster entry must exceed to
// become a candidate. Lowering it raises the match rate but also the risk
// of silent misattribution.
const DefaultThreshold = 79

// ExternalIDPrefix marks synthesized identifiers for authors not found in
// the roster, keeping them visually distinct from numeric person ids.
const ExternalIDPrefix = "imported_person_"

// Kind classifies how a decision was reached.
type Kind int

const (
	// NoMatchExternal means no roster entry scored above the threshold;
	// the author was assigned a synthesized external identifier.
	NoMatchExternal Kind = iota
	// Exact means a roster key equaled the author string byte for byte.
	Exact
	// SingleFuzzy means exactly one roster entry scored above the
	// threshold.
	SingleFuzzy
	// MultiFuzzyBestPick means several entries qualified and the highest
	// scorer was chosen. These picks are the primary review target.
	MultiFuzzyBestPick
)

func (k Kind) String() string {
	switch k {
	case NoMatchExternal:
		return "no-match-external"
	case Exact:
		return "exact"
	case SingleFuzzy:
		return "single-fuzzy"
	case MultiFuzzyBestPick:
		return "multi-fuzzy-best-pick"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Candidate pairs a roster entry with its similarity score for one lookup.
type Candidate struct {
	Entry roster.Entry
	Score int
}

// Decision is the matcher's output for one author. It is immutable once
// returned.
type Decision struct {
	Name names.Name
	Kind Kind
	// PersonID is set for roster matches.
	PersonID int
	// ExternalID is set for NoMatchExternal decisions. It is unlikely to
	// collide within a run but is not guaranteed unique by construction.
	ExternalID string
	// Unit is the matched entry's affiliation, empty for external authors.
	Unit string
	// Candidates holds every qualifying entry in score-descending order,
	// retained for audit.
	Candidates []Candidate
}

// AssignedID returns the identifier to use in the emitted record: the
// numeric person id for roster matches, the synthesized token otherwise.
func (d Decision) AssignedID() string {
	if d.Kind == NoMatchExternal {
		return d.ExternalID
	}
	return strconv.Itoa(d.PersonID)
}

// External reports whether the author was not found in the roster.
func (d Decision) External() bool {
	return d.Kind == NoMatchExternal
}

// Scorer computes a similarity score between two canonical key strings.
// Implementations must be symmetric and deterministic, return values in
// [0,100], and return 100 only for identical strings.
type Scorer interface {
	Score(a, b string) int
}

// IDGenerator synthesizes identifiers for authors without a roster match.
type IDGenerator interface {
	ExternalID() string
}

type randomIDGenerator struct{}

func (randomIDGenerator) ExternalID() string {
	return fmt.Sprintf("%s%d%d", ExternalIDPrefix, rand.Intn(1000000), rand.Intn(1000000))
}

// Matcher resolves names against a roster. It holds no per-lookup state
// and never mutates the roster.
type Matcher struct {
	scorer    Scorer
	idgen     IDGenerator
	threshold int
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithScorer replaces the default edit-distance scorer.
func WithScorer(s Scorer) Option {
	return func(m *Matcher) { m.scorer = s }
}

// WithIDGenerator replaces the default random external-id generator.
// Tests supply a deterministic generator through this.
func WithIDGenerator(g IDGenerator) Option {
	return func(m *Matcher) { m.idgen = g }
}

// New returns a matcher using the given threshold on the 0-100 scale.
// Thresholds outside the scale are clamped.
func New(threshold int, opts ...Option) *Matcher {
	if threshold < 0 {
		threshold = 0
	}
	if threshold > 100 {
		threshold = 100
	}
	m := &Matcher{
		scorer:    LevenshteinScorer{},
		idgen:     randomIDGenerator{},
		threshold: threshold,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Resolve matches one parsed name against the roster and returns an
// identity decision. An empty roster is not an error; every author simply
// becomes external.
func (m *Matcher) Resolve(name names.Name, r *roster.Roster) Decision {
	correct := name.Last + ", " + name.First

	var candidates []Candidate
	for _, entry := range r.Entries() {
		if entry.Key == correct {
			// Exact match wins over any fuzzy scan, even if later
			// entries would also qualify.
			return Decision{
				Name:       name,
				Kind:       Exact,
				PersonID:   entry.PersonID,
				Unit:       entry.Unit,
				Candidates: []Candidate{{Entry: entry, Score: 100}},
			}
		}
		if score := m.scorer.Score(entry.Key, correct); score > m.threshold {
			candidates = append(candidates, Candidate{Entry: entry, Score: score})
		}
	}

	switch len(candidates) {
	case 0:
		return Decision{
			Name:       name,
			Kind:       NoMatchExternal,
			ExternalID: m.idgen.ExternalID(),
		}
	case 1:
		best := candidates[0]
		return Decision{
			Name:       name,
			Kind:       SingleFuzzy,
			PersonID:   best.Entry.PersonID,
			Unit:       best.Entry.Unit,
			Candidates: candidates,
		}
	default:
		// Stable sort: among equal scores the entry encountered first in
		// roster scan order wins, keeping tie-breaks deterministic.
		sort.SliceStable(candidates, func(i, j int) bool {
			return candidates[i].Score > candidates[j].Score
		})
		best := candidates[0]
		return Decision{
			Name:       name,
			Kind:       MultiFuzzyBestPick,
			PersonID:   best.Entry.PersonID,
			Unit:       best.Entry.Unit,
			Candidates: candidates,
		}
	}
}

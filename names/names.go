// Package names splits raw author-field strings into structured name parts.
//
// Reference-manager exports list every author of a publication in a single
// field, in "Last, First" form, separated by "||" or "; ". Values that
// cannot be split into last/first parts are usually organizations that were
// entered in an author column; those are kept as group-author candidates so
// a human can review them before import.
package names

import (
	"errors"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrBlankAuthorField is returned when the author field contains no authors
// at all. The record cannot be converted without operator input, so the
// caller decides whether to substitute a group author or skip the record.
var ErrBlankAuthorField = errors.New("author field is blank")

// Name is one parsed author. Last is never empty for a valid record; an
// empty First marks a value that was not in "Last, First" form and is
// therefore a group-author candidate.
type Name struct {
	First string
	Last  string
}

// IsGroup reports whether the value looks like an organization rather than
// a person. The comma heuristic is the only detection performed; false
// positives and negatives are routed to manual review.
func (n Name) IsGroup() bool {
	return n.First == ""
}

// Inverted returns the name in "Last, First" form, the canonical key shape
// used for roster matching.
func (n Name) Inverted() string {
	if n.First == "" {
		return n.Last
	}
	return n.Last + ", " + n.First
}

// GroupCandidate records a value that could not be split into last/first
// parts, together with the id of the record it came from.
type GroupCandidate struct {
	Raw      string
	RecordID string
}

// Parser splits multi-author fields. The zero value is usable; options
// adjust normalization.
type Parser struct {
	titleCase bool
	caser     cases.Caser
}

// Option configures a Parser.
type Option func(*Parser)

// WithTitleCase title-cases name parts and collapses runs of whitespace.
// Reference-manager exports mix "SMITH, JOHN" and "smith, john" for the
// same person; normalizing the case improves roster match rates.
func WithTitleCase() Option {
	return func(p *Parser) {
		p.titleCase = true
		p.caser = cases.Title(language.English)
	}
}

// NewParser returns a parser with the given options applied.
func NewParser(opts ...Option) *Parser {
	p := &Parser{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse splits a raw author field into names, preserving input order. The
// returned order becomes the author-sequence order of the emitted record.
// Values without a comma are returned with an empty First and also recorded
// as group candidates tagged with contextID.
func (p *Parser) Parse(raw, contextID string) ([]Name, []GroupCandidate, error) {
	var segments []string
	switch {
	case strings.Contains(raw, "||"):
		segments = strings.Split(raw, "||")
	case strings.Contains(raw, "; "):
		segments = strings.Split(raw, "; ")
	case strings.TrimSpace(raw) == "":
		return nil, nil, ErrBlankAuthorField
	default:
		segments = []string{raw}
	}

	var parsed []Name
	var groups []GroupCandidate
	for _, segment := range segments {
		if strings.TrimSpace(segment) == "" {
			// Tolerate trailing delimiters like "Smith, J.||".
			continue
		}
		parts := strings.Split(segment, ", ")
		var name Name
		switch {
		case len(parts) > 2:
			// Generational suffix: "Crouch, Barty C., Jr." keeps the
			// suffix with the last name.
			name = Name{First: parts[1], Last: parts[0] + ", " + parts[2]}
		case len(parts) == 2:
			name = Name{First: parts[1], Last: parts[0]}
		default:
			// No comma: organization listed where a person was expected.
			name = Name{Last: segment}
			groups = append(groups, GroupCandidate{Raw: segment, RecordID: contextID})
		}
		parsed = append(parsed, p.normalize(name))
	}
	return parsed, groups, nil
}

// Parse splits a raw author field using a default parser.
func Parse(raw, contextID string) ([]Name, []GroupCandidate, error) {
	return NewParser().Parse(raw, contextID)
}

func (p *Parser) normalize(n Name) Name {
	if !p.titleCase {
		return n
	}
	return Name{
		First: p.clean(n.First),
		Last:  p.clean(n.Last),
	}
}

func (p *Parser) clean(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return s
	}
	return p.caser.String(s)
}

package record

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedType marks a type value the import schema cannot express
// yet (e.g. presentations). Such records must be entered manually.
var ErrUnsupportedType = errors.New("unsupported research output type")

// OutputType is the import schema's (type, subType) pair for one research
// output, e.g. {"book", "technical_report"}.
type OutputType struct {
	Type    string
	SubType string
}

// IsArticle reports whether the output is a journal article, which changes
// peer-review status and the journal-specific element set.
func (t OutputType) IsArticle() bool {
	return t.SubType == "article"
}

// IsChapter reports whether the output is a chapter in a book.
func (t OutputType) IsChapter() bool {
	return t.Type == "chapterInBook"
}

// Classify maps a free-text type value onto the import schema's type and
// subtype. The substring rules mirror the vocabulary reference managers
// emit ("bookSection", "journalArticle", "conferencePaper", ...).
func Classify(typeValue string) (OutputType, error) {
	v := strings.ToLower(typeValue)
	switch {
	case strings.Contains(v, "booksection"):
		return OutputType{Type: "chapterInBook", SubType: "chapter"}, nil
	case strings.Contains(v, "book"):
		return OutputType{Type: "book", SubType: "book"}, nil
	case strings.Contains(v, "technical"), strings.Contains(v, "report"):
		return OutputType{Type: "book", SubType: "technical_report"}, nil
	case strings.Contains(v, "other") && strings.Contains(v, "conference"):
		return OutputType{Type: "contributionToConference", SubType: "other"}, nil
	case strings.Contains(v, "conference"), strings.Contains(v, "proceeding"):
		return OutputType{Type: "chapterInBook", SubType: "conference"}, nil
	case strings.Contains(v, "journal"), strings.Contains(v, "article"):
		return OutputType{Type: "contributionToJournal", SubType: "article"}, nil
	case strings.Contains(v, "presentation"):
		return OutputType{}, fmt.Errorf("%w: %q", ErrUnsupportedType, typeValue)
	default:
		return OutputType{}, fmt.Errorf("%w: %q", ErrUnsupportedType, typeValue)
	}
}

// DefaultType is used when the source has no type column at all.
var DefaultType = OutputType{Type: "book", SubType: "technical_report"}

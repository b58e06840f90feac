package convert

import (
	"fmt"
	"strings"
	"testing"

	"github.com/scholarly-commons/pureimport/match"
	"github.com/scholarly-commons/pureimport/names"
	"github.com/scholarly-commons/pureimport/record"
	"github.com/scholarly-commons/pureimport/review"
	"github.com/scholarly-commons/pureimport/roster"
)

type sequentialIDs struct{ n int }

func (g *sequentialIDs) ExternalID() string {
	g.n++
	return fmt.Sprintf("%sseq%d", match.ExternalIDPrefix, g.n)
}

func newTestConverter() *Converter {
	r := roster.New([]roster.Entry{
		{Key: "Potter, Harry", PersonID: 345262, Unit: "Department of Magical Law Enforcement"},
		{Key: "Johnson, Angelina", PersonID: 861581, Unit: "Department of Magical Games and Sports"},
	})
	return &Converter{
		Parser:       names.NewParser(),
		Matcher:      match.New(match.DefaultThreshold, match.WithIDGenerator(&sequentialIDs{})),
		Roster:       r,
		Collector:    review.NewCollector(),
		ManagingUnit: "123",
		Organization: "Ministry of Magic",
	}
}

func TestConvertArticle(t *testing.T) {
	c := newTestConverter()
	records := []record.Record{{
		"id":      "a1",
		"type":    "journalArticle",
		"creator": "Potter, Harry||Goldstein, Anthony",
		"title":   "Defensive Charms",
		"date":    "2021-03",
		"journal": "Journal of Applied Charms",
		"issn":    "1234-5678",
		"volume":  "7",
		"issue":   "2",
	}}

	pubs, summary := c.Convert(records)
	if summary.Converted != 1 || summary.Flagged() != 0 {
		t.Fatalf("summary = %+v", summary)
	}
	p := pubs[0]
	if p.XMLName.Local != "v1:contributionToJournal" || !p.PeerReviewed {
		t.Errorf("article shell wrong: %s peerReviewed=%v", p.XMLName.Local, p.PeerReviewed)
	}
	if len(p.Persons.Authors) != 2 {
		t.Fatalf("got %d authors, want 2", len(p.Persons.Authors))
	}
	if got := p.Persons.Authors[0].Person.ID; got != "345262" {
		t.Errorf("roster author id = %q, want 345262", got)
	}
	if got := p.Persons.Authors[0].Organisations.Organisations[0].Name.Text.Value; got != "Department of Magical Law Enforcement" {
		t.Errorf("roster author unit = %q", got)
	}
	if got := p.Persons.Authors[1].Person.ID; !strings.HasPrefix(got, match.ExternalIDPrefix) {
		t.Errorf("external author id = %q, want %s prefix", got, match.ExternalIDPrefix)
	}
	if p.Journal == nil || p.Journal.Title != "Journal of Applied Charms" {
		t.Errorf("journal = %+v", p.Journal)
	}
	if p.JournalVolume != "7" || p.JournalNumber != "2" {
		t.Errorf("volume/number = %q/%q", p.JournalVolume, p.JournalNumber)
	}

	externals := c.Collector.ExternalPersons()
	if len(externals) != 1 || externals[0].Last != "Goldstein" {
		t.Errorf("collected externals = %v", externals)
	}
}

func TestConvertChapterUsesHostTitle(t *testing.T) {
	c := newTestConverter()
	records := []record.Record{{
		"id":        "c1",
		"type":      "bookSection",
		"creator":   "Johnson, Angelina",
		"title":     "Beaters and Bludgers",
		"date":      "2019",
		"journal":   "The Quidditch Compendium",
		"publisher": "Obscurus Books",
		"editor":    "Whisp, Kennilworthy",
	}}

	pubs, summary := c.Convert(records)
	if summary.Converted != 1 {
		t.Fatalf("summary = %+v", summary)
	}
	p := pubs[0]
	if p.HostPublicationTitle != "The Quidditch Compendium" {
		t.Errorf("host title = %q", p.HostPublicationTitle)
	}
	if p.Journal != nil {
		t.Error("chapter emitted a journal element")
	}
	if p.Editors == nil || p.Editors.Editors[0].LastName != "Whisp" {
		t.Errorf("editors = %+v", p.Editors)
	}
}

func TestConvertFlagsBadRecords(t *testing.T) {
	c := newTestConverter()
	records := []record.Record{
		{"id": "ok", "type": "book", "creator": "Potter, Harry", "date": "2020"},
		{"id": "notype", "type": "presentation", "creator": "Potter, Harry", "date": "2020"},
		{"id": "nodate", "type": "book", "creator": "Potter, Harry"},
		{"id": "shortdate", "type": "book", "creator": "Potter, Harry", "date": "85"},
		{"id": "noauthor", "type": "book", "date": "2020"},
	}

	pubs, summary := c.Convert(records)
	if len(pubs) != 1 || summary.Converted != 1 {
		t.Fatalf("summary = %+v", summary)
	}
	want := []string{"notype", "nodate", "shortdate", "noauthor"}
	if len(summary.FlaggedIDs) != len(want) {
		t.Fatalf("FlaggedIDs = %v, want %v", summary.FlaggedIDs, want)
	}
	for i := range want {
		if summary.FlaggedIDs[i] != want[i] {
			t.Errorf("FlaggedIDs[%d] = %q, want %q", i, summary.FlaggedIDs[i], want[i])
		}
	}
}

func TestConvertBlankAuthorDefault(t *testing.T) {
	c := newTestConverter()
	c.GroupAuthorDefault = "Ministry of Magic"
	records := []record.Record{
		{"id": "g1", "type": "book", "date": "2020", "title": "Annual Report"},
	}

	pubs, summary := c.Convert(records)
	if summary.Converted != 1 || summary.Flagged() != 0 {
		t.Fatalf("summary = %+v", summary)
	}
	authors := pubs[0].Persons.Authors
	if len(authors) != 1 || authors[0].GroupAuthor != "Ministry of Magic" {
		t.Errorf("authors = %+v", authors)
	}
	groups := c.Collector.Groups()
	if len(groups) != 1 || groups[0].RecordID != "g1" {
		t.Errorf("collected groups = %+v", groups)
	}
}

func TestConvertGroupAuthorEmittedOnce(t *testing.T) {
	c := newTestConverter()
	records := []record.Record{{
		"id":      "m1",
		"type":    "book",
		"creator": "Potter, Harry||Hogwarts School of Witchcraft and Wizardry",
		"date":    "2020",
	}}

	pubs, summary := c.Convert(records)
	if summary.Converted != 1 {
		t.Fatalf("summary = %+v", summary)
	}
	authors := pubs[0].Persons.Authors
	if len(authors) != 2 {
		t.Fatalf("got %d authors, want 2", len(authors))
	}
	if authors[0].Person == nil || authors[0].GroupAuthor != "" {
		t.Errorf("authors[0] = %+v, want person", authors[0])
	}
	if authors[1].Person != nil || authors[1].GroupAuthor != "Hogwarts School of Witchcraft and Wizardry" {
		t.Errorf("authors[1] = %+v, want group author", authors[1])
	}
	if groups := c.Collector.Groups(); len(groups) != 1 {
		t.Errorf("collected groups = %+v", groups)
	}
}

func TestConvertNoTypeColumnDefaultsToReport(t *testing.T) {
	c := newTestConverter()
	records := []record.Record{
		{"id": "r1", "creator": "Potter, Harry", "date": "1947", "relation": "NACA Technical Reports", "series number": "TR-9"},
	}

	pubs, summary := c.Convert(records)
	if summary.Converted != 1 {
		t.Fatalf("summary = %+v", summary)
	}
	p := pubs[0]
	if p.XMLName.Local != "v1:book" || p.SubType != "technical_report" {
		t.Errorf("default type = %s/%s", p.XMLName.Local, p.SubType)
	}
	if p.Series == nil || p.Series.Series[0].Number != "TR-9" {
		t.Errorf("series = %+v", p.Series)
	}
}

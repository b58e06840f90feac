package purexml

import (
	"strings"
	"testing"

	"github.com/scholarly-commons/pureimport/record"
)

func TestSerializeArticle(t *testing.T) {
	outputType, err := record.Classify("journalArticle")
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	p := NewPublication(outputType, "a1")
	p.SetDate("2022-05-17")
	p.SetTitle("Quidditch Injuries & Their Treatment")
	p.SetAbstract("A survey of common injuries.")
	p.AddAuthor("861581", "Angelina", "Johnson", "Department of Magical Games and Sports")
	p.AddAuthor("imported_person_1205", "Anthony", "Goldstein", "")
	p.SetOrganisation("Hogwarts School of Witchcraft and Wizardry")
	p.SetOwner("123")
	p.SetKeywords("sports medicine; broomsticks")
	p.SetDOI("10.1000/quidditch")
	p.Pages = "12-29"
	p.JournalVolume = "7"
	p.SetJournal("Journal of Magical Medicine", "1234-5678")

	var sb strings.Builder
	if err := Serialize(&sb, []*Publication{p}); err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}
	got := sb.String()

	for _, want := range []string{
		`<v1:publications xmlns:v3="v3.commons.pure.atira.dk" xmlns:v1="v1.publication-import.base-uk.pure.atira.dk">`,
		`<v1:contributionToJournal subType="article" id="a1">`,
		`<v1:peerReviewed>true</v1:peerReviewed>`,
		`<v1:statusType>/dk/atira/pure/researchoutput/status/published</v1:statusType>`,
		`<v3:year>2022</v3:year>`,
		`<v3:month>05</v3:month>`,
		`<v3:day>17</v3:day>`,
		`<v3:text lang="en" country="US"><![CDATA[Quidditch Injuries & Their Treatment]]></v3:text>`,
		`<v1:person id="861581">`,
		`<v1:firstName>Angelina</v1:firstName>`,
		`<v1:lastName>Johnson</v1:lastName>`,
		`<v1:person id="imported_person_1205">`,
		`<v3:text>Department of Magical Games and Sports</v3:text>`,
		`<v1:owner id="123">`,
		`<v3:logicalGroup logicalName="keywordContainers">`,
		`<v3:text>sports medicine</v3:text>`,
		`<v3:text>broomsticks</v3:text>`,
		`<v1:publicAccess>unknown</v1:publicAccess>`,
		`<v1:doi>10.1000/quidditch</v1:doi>`,
		`<v1:pages>12-29</v1:pages>`,
		`<v1:journalVolume>7</v1:journalVolume>`,
		`<v1:title>Journal of Magical Medicine</v1:title>`,
		`<v1:issn>1234-5678</v1:issn>`,
		`</v1:publications>`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %s", want)
		}
	}
	if strings.Contains(got, "<v1:groupAuthor>") {
		t.Error("unexpected groupAuthor element")
	}
}

func TestSerializeBookWithGroupAuthor(t *testing.T) {
	outputType, err := record.Classify("book")
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	p := NewPublication(outputType, "b1")
	p.SetDate("1995")
	p.SetTitle("Hogwarts: A History")
	p.AddGroupAuthor("Hogwarts School of Witchcraft and Wizardry")
	p.SetISBNs("978-1-4028-9462-6 978-0-5453-1026-4")
	p.SetPublisher("Obscurus Books")
	p.PlaceOfPublication = "Diagon Alley"
	p.SetSeries("Wizarding Reference; 4", "", "")
	p.AddEditor("Bathilda", "Bagshot")
	p.AddEditor("", "Scamander")

	var sb strings.Builder
	if err := Serialize(&sb, []*Publication{p}); err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}
	got := sb.String()

	for _, want := range []string{
		`<v1:book subType="book" id="b1">`,
		`<v1:peerReviewed>false</v1:peerReviewed>`,
		`<v3:year>1995</v3:year>`,
		`<v1:groupAuthor>Hogwarts School of Witchcraft and Wizardry</v1:groupAuthor>`,
		`<v1:isbn>978-1-4028-9462-6</v1:isbn>`,
		`<v1:isbn>978-0-5453-1026-4</v1:isbn>`,
		`<v1:name><![CDATA[Wizarding Reference]]></v1:name>`,
		`<v1:number>4</v1:number>`,
		`<v1:placeOfPublication>Diagon Alley</v1:placeOfPublication>`,
		`<v1:name>Obscurus Books</v1:name>`,
		`<v3:firstname>Bathilda</v3:firstname>`,
		`<v3:lastname>Bagshot</v3:lastname>`,
		`<v3:lastname>Scamander</v3:lastname>`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %s", want)
		}
	}
	if strings.Contains(got, "<v3:month>") {
		t.Error("year-only date emitted a month")
	}
	if strings.Contains(got, "<v1:person ") {
		t.Error("group author emitted a person element")
	}
}

func TestSetSeriesSharedNumberAndISSN(t *testing.T) {
	p := NewPublication(record.DefaultType, "r1")
	p.SetSeries("NACA Technical Reports", "TR-1234", "0096-0979")
	if p.Series == nil || len(p.Series.Series) != 1 {
		t.Fatalf("Series = %+v", p.Series)
	}
	s := p.Series.Series[0]
	if s.Name.Value != "NACA Technical Reports" || s.Number != "TR-1234" {
		t.Errorf("serie = %+v", s)
	}
	if s.PrintISSNs == nil || s.PrintISSNs.ISSNs[0] != "0096-0979" {
		t.Errorf("serie ISSNs = %+v", s.PrintISSNs)
	}
}

func TestSetKeywordsDoublePipe(t *testing.T) {
	p := NewPublication(record.DefaultType, "k1")
	p.SetKeywords("alchemy||transfiguration; advanced")
	kws := p.Keywords.LogicalGroup.StructuredKeywords.StructuredKeyword.FreeKeywords.Keywords
	if len(kws) != 2 {
		t.Fatalf("got %d keywords, want 2", len(kws))
	}
	if kws[1].Text.Value != "transfiguration; advanced" {
		t.Errorf("keyword[1] = %q", kws[1].Text.Value)
	}
}

func TestNewPublicationElementName(t *testing.T) {
	tests := []struct {
		typeValue string
		wantName  string
	}{
		{"journalArticle", "v1:contributionToJournal"},
		{"bookSection", "v1:chapterInBook"},
		{"report", "v1:book"},
		{"other conference contribution", "v1:contributionToConference"},
	}
	for _, tt := range tests {
		outputType, err := record.Classify(tt.typeValue)
		if err != nil {
			t.Fatalf("Classify(%q) error = %v", tt.typeValue, err)
		}
		p := NewPublication(outputType, "x")
		if p.XMLName.Local != tt.wantName {
			t.Errorf("Classify(%q) element = %q, want %q", tt.typeValue, p.XMLName.Local, tt.wantName)
		}
	}
}

// Package purexml emits the research information system's bulk-import XML.
//
// The schema ("publication-import" v1 with v3 commons) is consumed by the
// portal's bulk upload; element order and the v1:/v3: prefixes follow the
// namespace files published there. One Publication struct covers all four
// output types; the element name is set per record.
package purexml

import "encoding/xml"

// Namespace URIs from the portal's bulk-import schema bundle.
const (
	NamespaceV1 = "v1.publication-import.base-uk.pure.atira.dk"
	NamespaceV3 = "v3.commons.pure.atira.dk"
)

// Publication is one research output. The XMLName carries the type-specific
// element (v1:book, v1:contributionToJournal, ...).
type Publication struct {
	XMLName xml.Name
	SubType string `xml:"subType,attr"`
	ID      string `xml:"id,attr"`

	PeerReviewed        bool                `xml:"v1:peerReviewed"`
	PublicationCategory string              `xml:"v1:publicationCategory"`
	Statuses            PublicationStatuses `xml:"v1:publicationStatuses"`
	Workflow            string              `xml:"v1:workflow"`
	Language            string              `xml:"v1:language"`

	Title    *LocalizedText `xml:"v1:title,omitempty"`
	Abstract *LocalizedText `xml:"v1:abstract,omitempty"`

	Persons       *Persons       `xml:"v1:persons,omitempty"`
	Organisations *Organisations `xml:"v1:organisations,omitempty"`
	Owner         *Owner         `xml:"v1:owner,omitempty"`

	Keywords           *Keywords           `xml:"v1:keywords,omitempty"`
	URLs               *URLs               `xml:"v1:urls,omitempty"`
	ElectronicVersions *ElectronicVersions `xml:"v1:electronicVersions,omitempty"`
	Notes              *Notes              `xml:"v1:bibliographicalNotes,omitempty"`

	// Journal-article elements.
	Pages         string   `xml:"v1:pages,omitempty"`
	NumberOfPages string   `xml:"v1:numberOfPages,omitempty"`
	JournalNumber string   `xml:"v1:journalNumber,omitempty"`
	JournalVolume string   `xml:"v1:journalVolume,omitempty"`
	Journal       *Journal `xml:"v1:journal,omitempty"`

	// Book, report and chapter elements.
	PlaceOfPublication   string      `xml:"v1:placeOfPublication,omitempty"`
	Edition              string      `xml:"v1:edition,omitempty"`
	Volume               string      `xml:"v1:volume,omitempty"`
	PrintISBNs           *PrintISBNs `xml:"v1:printIsbns,omitempty"`
	Series               *SeriesList `xml:"v1:series,omitempty"`
	HostPublicationTitle string      `xml:"v1:hostPublicationTitle,omitempty"`
	Publisher            *Publisher  `xml:"v1:publisher,omitempty"`
	Editors              *Editors    `xml:"v1:editors,omitempty"`
}

// PublicationStatuses wraps the single hard-coded "published" status.
type PublicationStatuses struct {
	Status PublicationStatus `xml:"v1:publicationStatus"`
}

// PublicationStatus carries the status type and the publication date.
type PublicationStatus struct {
	StatusType string `xml:"v1:statusType"`
	Date       *Date  `xml:"v1:date,omitempty"`
}

// Date is a year with optional month and day.
type Date struct {
	Year  string `xml:"v3:year"`
	Month string `xml:"v3:month,omitempty"`
	Day   string `xml:"v3:day,omitempty"`
}

// LocalizedText wraps a v3:text node with language attributes and CDATA
// content, used for titles and abstracts.
type LocalizedText struct {
	Text LangText `xml:"v3:text"`
}

// LangText is localized CDATA content.
type LangText struct {
	Lang    string `xml:"lang,attr,omitempty"`
	Country string `xml:"country,attr,omitempty"`
	Value   string `xml:",cdata"`
}

// CDATAValue is unlocalized CDATA content (series names).
type CDATAValue struct {
	Value string `xml:",cdata"`
}

// PlainText is a v3:text node without attributes or CDATA.
type PlainText struct {
	Value string `xml:",chardata"`
}

// Persons lists a publication's authors in original order.
type Persons struct {
	Authors []Author `xml:"v1:author"`
}

// Author is either a person (with identifier) or a group author.
type Author struct {
	Role          string         `xml:"v1:role"`
	Person        *Person        `xml:"v1:person,omitempty"`
	Organisations *Organisations `xml:"v1:organisations,omitempty"`
	GroupAuthor   string         `xml:"v1:groupAuthor,omitempty"`
}

// Person carries the resolved identifier and name parts.
type Person struct {
	ID        string `xml:"id,attr"`
	FirstName string `xml:"v1:firstName,omitempty"`
	LastName  string `xml:"v1:lastName"`
}

// Organisations wraps one or more named organizational units.
type Organisations struct {
	Organisations []Organisation `xml:"v1:organisation"`
}

// Organisation is a named organizational unit.
type Organisation struct {
	Name OrganisationName `xml:"v1:name"`
}

// OrganisationName wraps the unit's display text.
type OrganisationName struct {
	Text PlainText `xml:"v3:text"`
}

// Owner is the managing unit, referenced by portal-internal id.
type Owner struct {
	ID string `xml:"id,attr"`
}

// Keywords is the free-keyword container structure the schema requires.
type Keywords struct {
	LogicalGroup LogicalGroup `xml:"v3:logicalGroup"`
}

// LogicalGroup names the keyword container group.
type LogicalGroup struct {
	LogicalName        string             `xml:"logicalName,attr"`
	StructuredKeywords StructuredKeywords `xml:"v3:structuredKeywords"`
}

// StructuredKeywords wraps the single structured keyword entry.
type StructuredKeywords struct {
	StructuredKeyword StructuredKeyword `xml:"v3:structuredKeyword"`
}

// StructuredKeyword wraps the free keywords.
type StructuredKeyword struct {
	FreeKeywords FreeKeywords `xml:"v3:freeKeywords"`
}

// FreeKeywords lists the keyword texts.
type FreeKeywords struct {
	Keywords []KeywordText `xml:"v3:freeKeyword"`
}

// KeywordText is one keyword.
type KeywordText struct {
	Text PlainText `xml:"v3:text"`
}

// URLs lists related links.
type URLs struct {
	URLs []URL `xml:"v1:url"`
}

// URL is one related link.
type URL struct {
	URL  string `xml:"v1:url"`
	Type string `xml:"v1:type"`
}

// ElectronicVersions wraps the DOI-backed electronic version.
type ElectronicVersions struct {
	DOI *ElectronicVersionDOI `xml:"v1:electronicVersionDOI,omitempty"`
}

// ElectronicVersionDOI records a DOI with access metadata.
type ElectronicVersionDOI struct {
	Version      string `xml:"v1:version"`
	PublicAccess string `xml:"v1:publicAccess"`
	DOI          string `xml:"v1:doi"`
}

// Notes lists bibliographical notes.
type Notes struct {
	Notes []Note `xml:"v1:bibliographicalNote"`
}

// Note is one bibliographical note.
type Note struct {
	Text LangText `xml:"v3:text"`
}

// Journal names the host journal with its ISSNs.
type Journal struct {
	Title      string      `xml:"v1:title"`
	PrintISSNs *PrintISSNs `xml:"v1:printIssns,omitempty"`
}

// PrintISSNs lists print ISSNs.
type PrintISSNs struct {
	ISSNs []string `xml:"v1:issn"`
}

// PrintISBNs lists print ISBNs.
type PrintISBNs struct {
	ISBNs []string `xml:"v1:isbn"`
}

// SeriesList wraps the book/report series entries.
type SeriesList struct {
	Series []Serie `xml:"v1:serie"`
}

// Serie is one series membership.
type Serie struct {
	Name       CDATAValue  `xml:"v1:name"`
	Number     string      `xml:"v1:number,omitempty"`
	PrintISSNs *PrintISSNs `xml:"v1:printIssns,omitempty"`
}

// Publisher names the publisher.
type Publisher struct {
	Name string `xml:"v1:name"`
}

// Editors lists a publication's editors in original order.
type Editors struct {
	Editors []Editor `xml:"v1:editor"`
}

// Editor is one editor's name parts.
type Editor struct {
	FirstName string `xml:"v3:firstname,omitempty"`
	LastName  string `xml:"v3:lastname"`
}

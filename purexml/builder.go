package purexml

import (
	"strings"

	"github.com/scholarly-commons/pureimport/record"
)

// Fixed values the portal expects on every bulk-imported output.
const (
	statusPublished    = "/dk/atira/pure/researchoutput/status/published"
	workflowApproved   = "approved"
	languageEnUS       = "en_US"
	categoryResearch   = "research"
	roleAuthor         = "author"
	urlTypeUnspecified = "unspecified"
	doiVersionFinal    = "publishersversion"
	doiAccessUnknown   = "unknown"
	keywordGroup       = "keywordContainers"
)

// NewPublication returns a publication shell for the given output type with
// the fixed status, workflow and language elements filled in. Articles are
// marked peer reviewed; everything else is not.
func NewPublication(t record.OutputType, id string) *Publication {
	p := &Publication{
		SubType:             t.SubType,
		ID:                  id,
		PeerReviewed:        t.IsArticle(),
		PublicationCategory: categoryResearch,
		Workflow:            workflowApproved,
		Language:            languageEnUS,
		Statuses: PublicationStatuses{
			Status: PublicationStatus{StatusType: statusPublished},
		},
	}
	p.XMLName.Local = "v1:" + t.Type
	return p
}

// SetDate attaches the publication date to the published status.
func (p *Publication) SetDate(date string) {
	year, month, day := record.SplitDate(date)
	if year == "" {
		return
	}
	p.Statuses.Status.Date = &Date{Year: year, Month: month, Day: day}
}

// SetTitle sets the localized title.
func (p *Publication) SetTitle(title string) {
	if title == "" {
		return
	}
	p.Title = &LocalizedText{Text: LangText{Lang: "en", Country: "US", Value: title}}
}

// SetAbstract sets the localized abstract.
func (p *Publication) SetAbstract(abstract string) {
	if abstract == "" {
		return
	}
	p.Abstract = &LocalizedText{Text: LangText{Lang: "en", Country: "US", Value: abstract}}
}

// AddAuthor appends an internal or external person. id is either the
// portal-internal numeric id or a generated external id; unit, when
// present, names the person's organizational unit.
func (p *Publication) AddAuthor(id, first, last, unit string) {
	a := Author{
		Role:   roleAuthor,
		Person: &Person{ID: id, FirstName: first, LastName: last},
	}
	if unit != "" {
		a.Organisations = &Organisations{
			Organisations: []Organisation{{Name: OrganisationName{Text: PlainText{Value: unit}}}},
		}
	}
	if p.Persons == nil {
		p.Persons = &Persons{}
	}
	p.Persons.Authors = append(p.Persons.Authors, a)
}

// AddGroupAuthor appends a group (corporate) author.
func (p *Publication) AddGroupAuthor(name string) {
	if p.Persons == nil {
		p.Persons = &Persons{}
	}
	p.Persons.Authors = append(p.Persons.Authors, Author{Role: roleAuthor, GroupAuthor: name})
}

// SetOrganisation names the publication's organization.
func (p *Publication) SetOrganisation(name string) {
	if name == "" {
		return
	}
	p.Organisations = &Organisations{
		Organisations: []Organisation{{Name: OrganisationName{Text: PlainText{Value: name}}}},
	}
}

// SetOwner sets the managing unit by portal-internal id.
func (p *Publication) SetOwner(id string) {
	if id == "" {
		return
	}
	p.Owner = &Owner{ID: id}
}

// SetKeywords splits a raw subject value into free keywords. Values use
// either "||" or ";" between keywords, never both.
func (p *Publication) SetKeywords(raw string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return
	}
	if !strings.Contains(raw, "||") {
		raw = strings.ReplaceAll(raw, ";", "||")
		raw = strings.ReplaceAll(raw, "\n", "||")
	}
	var texts []KeywordText
	for _, kw := range strings.Split(raw, "||") {
		kw = strings.TrimSpace(kw)
		if kw == "" {
			continue
		}
		texts = append(texts, KeywordText{Text: PlainText{Value: kw}})
	}
	if len(texts) == 0 {
		return
	}
	p.Keywords = &Keywords{
		LogicalGroup: LogicalGroup{
			LogicalName: keywordGroup,
			StructuredKeywords: StructuredKeywords{
				StructuredKeyword: StructuredKeyword{
					FreeKeywords: FreeKeywords{Keywords: texts},
				},
			},
		},
	}
}

// SetURL records a related link.
func (p *Publication) SetURL(url string) {
	if url == "" {
		return
	}
	p.URLs = &URLs{URLs: []URL{{URL: url, Type: urlTypeUnspecified}}}
}

// SetDOI records a DOI as the published electronic version.
func (p *Publication) SetDOI(doi string) {
	if doi == "" {
		return
	}
	p.ElectronicVersions = &ElectronicVersions{
		DOI: &ElectronicVersionDOI{
			Version:      doiVersionFinal,
			PublicAccess: doiAccessUnknown,
			DOI:          doi,
		},
	}
}

// SetNotes records a bibliographical note.
func (p *Publication) SetNotes(text string) {
	if text == "" {
		return
	}
	p.Notes = &Notes{Notes: []Note{
		{Text: LangText{Lang: "en", Country: "US", Value: text}},
	}}
}

// SetJournal names the host journal. issns holds comma-separated print
// ISSNs and may be empty.
func (p *Publication) SetJournal(title, issns string) {
	if title == "" {
		return
	}
	j := &Journal{Title: title}
	if list := splitList(issns, ","); len(list) > 0 {
		j.PrintISSNs = &PrintISSNs{ISSNs: list}
	}
	p.Journal = j
}

// SetISBNs records space-separated print ISBNs.
func (p *Publication) SetISBNs(isbns string) {
	if list := splitList(isbns, " "); len(list) > 0 {
		p.PrintISBNs = &PrintISBNs{ISBNs: list}
	}
}

// SetPublisher names the publisher.
func (p *Publication) SetPublisher(name string) {
	if name == "" {
		return
	}
	p.Publisher = &Publisher{Name: name}
}

// AddEditor appends one editor.
func (p *Publication) AddEditor(first, last string) {
	if p.Editors == nil {
		p.Editors = &Editors{}
	}
	p.Editors.Editors = append(p.Editors.Editors, Editor{FirstName: first, LastName: last})
}

// SetSeries records series memberships. relation holds "||"-separated
// entries; when number and issns are empty each entry may carry its own
// number after a "; " (the reference-manager convention), otherwise the
// shared number and ISSNs apply to every entry.
func (p *Publication) SetSeries(relation, number, issns string) {
	relation = strings.TrimSpace(relation)
	if relation == "" {
		return
	}
	issnList := splitList(issns, ",")
	list := &SeriesList{}
	for _, entry := range strings.Split(relation, "||") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		s := Serie{Number: strings.TrimSpace(number)}
		if number == "" && issns == "" {
			if name, n, found := strings.Cut(entry, "; "); found {
				entry = strings.TrimSpace(name)
				s.Number = strings.TrimSpace(n)
			}
		}
		s.Name = CDATAValue{Value: entry}
		if len(issnList) > 0 {
			s.PrintISSNs = &PrintISSNs{ISSNs: issnList}
		}
		list.Series = append(list.Series, s)
	}
	if len(list.Series) > 0 {
		p.Series = list
	}
}

func splitList(raw, sep string) []string {
	var out []string
	for _, v := range strings.Split(raw, sep) {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		out = append(out, v)
	}
	return out
}

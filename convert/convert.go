// Package convert drives the record-to-publication pipeline: parse the
// author field, resolve each author against the roster, collect review
// data and assemble the import-ready publication values.
package convert

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/scholarly-commons/pureimport/match"
	"github.com/scholarly-commons/pureimport/names"
	"github.com/scholarly-commons/pureimport/purexml"
	"github.com/scholarly-commons/pureimport/record"
	"github.com/scholarly-commons/pureimport/review"
	"github.com/scholarly-commons/pureimport/roster"
)

// Converter holds the fixed collaborators and institution settings for one
// conversion run.
type Converter struct {
	Parser    *names.Parser
	Matcher   *match.Matcher
	Roster    *roster.Roster
	Collector *review.Collector

	// ManagingUnit is the portal-internal id of the owning unit, emitted
	// as the publication owner.
	ManagingUnit string
	// Organization is the institution name emitted on every publication.
	Organization string
	// GroupAuthorDefault, when set, stands in for a blank author field
	// instead of flagging the record.
	GroupAuthorDefault string
}

// Convert turns records into publications. A record that cannot be
// converted (unsupported type, unusable date, blank author with no
// default) is skipped and flagged in the summary; the batch never aborts.
func (c *Converter) Convert(records []record.Record) ([]*purexml.Publication, review.Summary) {
	summary := review.Summary{Total: len(records)}
	pubs := make([]*purexml.Publication, 0, len(records))

	for _, rec := range records {
		pub, err := c.convertOne(rec)
		if err != nil {
			slog.Warn("skipping record", "id", rec.ID(), "err", err)
			summary.FlaggedIDs = append(summary.FlaggedIDs, rec.ID())
			continue
		}
		pubs = append(pubs, pub)
		summary.Converted++
	}
	return pubs, summary
}

func (c *Converter) convertOne(rec record.Record) (*purexml.Publication, error) {
	outputType := record.DefaultType
	if rec.Has("type") {
		var err error
		outputType, err = record.Classify(rec.Field("type"))
		if err != nil {
			return nil, err
		}
	}

	date := record.NormalizeDate(rec.Field("date"))
	if !record.ValidDate(date) {
		return nil, errors.New("date missing or not importable")
	}

	authors, groups, err := c.Parser.Parse(rec.Field("creator"), rec.ID())
	if err != nil {
		if !errors.Is(err, names.ErrBlankAuthorField) || c.GroupAuthorDefault == "" {
			return nil, err
		}
		authors = []names.Name{{Last: c.GroupAuthorDefault}}
		groups = []names.GroupCandidate{{Raw: c.GroupAuthorDefault, RecordID: rec.ID()}}
	}

	pub := purexml.NewPublication(outputType, rec.ID())
	pub.SetDate(date)
	pub.SetTitle(rec.Field("title"))
	pub.SetAbstract(rec.Field("abstract"))

	// No-comma values appear in the authors slice as group-like names and
	// again in the side list; emission happens here, the side list only
	// feeds the review report.
	for _, name := range authors {
		if name.IsGroup() {
			pub.AddGroupAuthor(name.Last)
			continue
		}
		decision := c.Matcher.Resolve(name, c.Roster)
		c.Collector.Observe(decision)
		pub.AddAuthor(decision.AssignedID(), name.First, name.Last, decision.Unit)
	}
	c.Collector.AddGroups(groups)
	if g := rec.Field("groupauthor"); g != "" {
		pub.AddGroupAuthor(g)
	}

	pub.SetOrganisation(c.Organization)
	pub.SetOwner(c.ManagingUnit)
	pub.SetKeywords(rec.Field("subject"))
	pub.SetURL(rec.Field("url"))
	pub.SetDOI(rec.Field("doi"))
	pub.SetNotes(rec.Field("notes"))

	if outputType.IsArticle() {
		pub.Pages = rec.Field("pages range")
		pub.NumberOfPages = rec.Field("pages")
		pub.JournalNumber = rec.Field("issue")
		pub.JournalVolume = rec.Field("volume")
		pub.SetJournal(rec.Field("journal"), rec.Field("issn"))
		return pub, nil
	}

	pub.NumberOfPages = rec.Field("pages")
	pub.PlaceOfPublication = rec.Field("place of publication")
	pub.Edition = rec.Field("edition")
	pub.Volume = rec.Field("volume")
	pub.SetISBNs(rec.Field("isbn"))
	pub.SetSeries(rec.Field("relation"), rec.Field("series number"), rec.Field("issn"))
	if outputType.IsChapter() {
		pub.HostPublicationTitle = rec.Field("journal")
	}
	pub.SetPublisher(rec.Field("publisher"))
	if ed := rec.Field("editor"); ed != "" {
		// Editors use the same inverted "||"-separated form authors do,
		// but are emitted by name only, never matched against the roster.
		editors, _, err := c.Parser.Parse(ed, rec.ID())
		if err != nil {
			return nil, fmt.Errorf("parsing editors: %w", err)
		}
		for _, e := range editors {
			pub.AddEditor(e.First, e.Last)
		}
	}
	return pub, nil
}

package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/scholarly-commons/pureimport/convert"
	"github.com/scholarly-commons/pureimport/mapping"
	"github.com/scholarly-commons/pureimport/match"
	"github.com/scholarly-commons/pureimport/names"
	"github.com/scholarly-commons/pureimport/purexml"
	"github.com/scholarly-commons/pureimport/record"
	"github.com/scholarly-commons/pureimport/review"
	"github.com/scholarly-commons/pureimport/roster"
)

var (
	inputFile          string
	outputFile         string
	profileName        string
	profileFile        string
	rosterFile         string
	rosterSheet        string
	threshold          int
	managingUnit       string
	organization       string
	reportsDir         string
	groupAuthorDefault string
	titleCase          bool
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a CSV export to bulk-import XML",
	Long: `Convert a bibliographic CSV export into Pure bulk-import XML.

Input defaults to stdin, output defaults to stdout. Columns are mapped
through a profile (the embedded "zotero" profile by default); authors are
matched against the roster workbook when one is given, otherwise every
author becomes an external person.

Examples:
  # Zotero export, stdin to stdout, no roster
  cat export.csv | pureimport convert

  # With roster matching and review reports
  pureimport convert -i export.csv -o publications.xml \
    --roster persons.xlsx --reports-dir review/

  # Custom column mapping
  pureimport convert -i export.csv --profile-file mylibrary.yaml`,
	Args: cobra.NoArgs,
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input CSV file (default: stdin)")
	convertCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output XML file (default: stdout)")
	convertCmd.Flags().StringVarP(&profileName, "profile", "p", "zotero", "Mapping profile name")
	convertCmd.Flags().StringVar(&profileFile, "profile-file", "", "Custom profile YAML file")
	convertCmd.Flags().StringVar(&rosterFile, "roster", "", "Internal-persons roster workbook (.xlsx) or CSV")
	convertCmd.Flags().StringVar(&rosterSheet, "sheet", roster.DefaultSheet, "Worksheet name in the roster workbook")
	convertCmd.Flags().IntVar(&threshold, "threshold", match.DefaultThreshold, "Similarity score a fuzzy match must exceed (0-100)")
	convertCmd.Flags().StringVar(&managingUnit, "managing-unit", "", "Portal-internal id of the owning organizational unit")
	convertCmd.Flags().StringVar(&organization, "organization", "", "Institution name emitted on every publication")
	convertCmd.Flags().StringVar(&reportsDir, "reports-dir", "", "Directory for review reports (default: no reports)")
	convertCmd.Flags().StringVar(&groupAuthorDefault, "group-author-default", "", "Group author to use when the author field is blank")
	convertCmd.Flags().BoolVar(&titleCase, "title-case", false, "Normalize author names to title case")
}

func runConvert(cmd *cobra.Command, args []string) (err error) {
	var input io.Reader = os.Stdin
	if inputFile != "" {
		var f *os.File
		f, err = os.Open(inputFile)
		if err != nil {
			return fmt.Errorf("opening input file: %w", err)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("closing input file: %w", cerr)
			}
		}()
		input = f
	}

	var output io.Writer = os.Stdout
	if outputFile != "" {
		var f *os.File
		f, err = os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("closing output file: %w", cerr)
			}
		}()
		output = f
	}

	profile, err := loadProfile()
	if err != nil {
		return fmt.Errorf("loading profile: %w", err)
	}

	records, err := record.Load(input, profile)
	if err != nil {
		return fmt.Errorf("reading records: %w", err)
	}
	slog.Info("records loaded", "count", len(records))
	if bad := record.CheckDates(records); len(bad) > 0 {
		slog.Warn("records with unusable dates will be skipped", "ids", strings.Join(bad, ", "))
	}

	r, err := loadRoster()
	if err != nil {
		return fmt.Errorf("loading roster: %w", err)
	}

	var parserOpts []names.Option
	if titleCase {
		parserOpts = append(parserOpts, names.WithTitleCase())
	}

	converter := &convert.Converter{
		Parser:             names.NewParser(parserOpts...),
		Matcher:            match.New(threshold),
		Roster:             r,
		Collector:          review.NewCollector(),
		ManagingUnit:       managingUnit,
		Organization:       organization,
		GroupAuthorDefault: groupAuthorDefault,
	}

	pubs, summary := converter.Convert(records)
	if err := purexml.Serialize(output, pubs); err != nil {
		return fmt.Errorf("writing XML: %w", err)
	}

	if reportsDir != "" {
		if err := converter.Collector.WriteReports(reportsDir); err != nil {
			return fmt.Errorf("writing review reports: %w", err)
		}
		slog.Info("review reports written", "dir", reportsDir)
	}

	fmt.Fprintln(os.Stderr, summary)
	return nil
}

func loadProfile() (*mapping.Profile, error) {
	if profileFile != "" {
		return mapping.LoadProfile(profileFile)
	}
	registry, err := mapping.NewRegistry()
	if err != nil {
		return nil, err
	}
	p, ok := registry.Get(profileName)
	if !ok {
		return nil, fmt.Errorf("unknown profile: %s", profileName)
	}
	return p, nil
}

func loadRoster() (r *roster.Roster, err error) {
	if rosterFile == "" {
		slog.Warn("no roster given, every author becomes an external person")
		return roster.New(nil), nil
	}
	if isWorkbook(rosterFile) {
		r, err = roster.LoadWorkbook(rosterFile, rosterSheet)
	} else {
		var f *os.File
		f, err = os.Open(rosterFile)
		if err != nil {
			return nil, fmt.Errorf("opening roster file: %w", err)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("closing roster file: %w", cerr)
			}
		}()
		r, err = roster.Load(f)
	}
	if err != nil {
		return nil, err
	}
	if skipped := r.SkippedRows(); skipped > 0 {
		slog.Warn("roster rows skipped", "count", skipped)
	}
	slog.Info("roster loaded", "persons", r.Len())
	return r, nil
}

func isWorkbook(path string) bool {
	return strings.HasSuffix(path, ".xlsx")
}

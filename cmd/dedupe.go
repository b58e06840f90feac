package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/scholarly-commons/pureimport/dedupe"
	"github.com/scholarly-commons/pureimport/record"
)

var (
	dedupeInputFile   string
	dedupeBaseURL     string
	dedupeProfileName string
	dedupeProfileFile string
)

var dedupeCmd = &cobra.Command{
	Use:   "dedupe",
	Short: "Check records against outputs already in the portal",
	Long: `Check each record against research outputs already in the portal so a
bulk import does not create duplicates. Articles are looked up by DOI,
books and reports by ISBN; records with neither are reported as unchecked.

The API key is read from the PURE_API_KEY environment variable (a local
.env file is honored).

Examples:
  pureimport dedupe -i export.csv --base-url https://pure.example.edu`,
	Args: cobra.NoArgs,
	RunE: runDedupe,
}

func init() {
	dedupeCmd.Flags().StringVarP(&dedupeInputFile, "input", "i", "", "Input CSV file (default: stdin)")
	dedupeCmd.Flags().StringVar(&dedupeBaseURL, "base-url", "", "Portal base URL")
	dedupeCmd.Flags().StringVarP(&dedupeProfileName, "profile", "p", "zotero", "Mapping profile name")
	dedupeCmd.Flags().StringVar(&dedupeProfileFile, "profile-file", "", "Custom profile YAML file")
	_ = dedupeCmd.MarkFlagRequired("base-url")
}

func runDedupe(cmd *cobra.Command, args []string) (err error) {
	apiKey := os.Getenv("PURE_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("PURE_API_KEY is not set")
	}

	var input io.Reader = os.Stdin
	if dedupeInputFile != "" {
		var f *os.File
		f, err = os.Open(dedupeInputFile)
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

	profileName = dedupeProfileName
	profileFile = dedupeProfileFile
	profile, err := loadProfile()
	if err != nil {
		return fmt.Errorf("loading profile: %w", err)
	}

	records, err := record.Load(input, profile)
	if err != nil {
		return fmt.Errorf("reading records: %w", err)
	}

	client := dedupe.NewClient(dedupeBaseURL, apiKey)
	results, err := client.CheckAll(cmd.Context(), records)
	if err != nil {
		return err
	}

	var duplicates, unchecked int
	for _, res := range results {
		switch {
		case len(res.Duplicates) > 0:
			duplicates++
			fmt.Printf("%s: duplicate of %s\n", res.RecordID, strings.Join(res.Duplicates, ", "))
		case !res.Checked:
			unchecked++
			fmt.Printf("%s: no DOI or ISBN to check\n", res.RecordID)
		}
	}
	fmt.Fprintf(os.Stderr, "%d records checked, %d duplicates, %d unchecked\n",
		len(results), duplicates, unchecked)
	return nil
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/scholarly-commons/pureimport/match"
	"github.com/scholarly-commons/pureimport/names"
	"github.com/scholarly-commons/pureimport/roster"
)

var (
	matchRosterFile  string
	matchRosterSheet string
	matchThreshold   int
)

var matchCmd = &cobra.Command{
	Use:   "match <name>",
	Short: "Resolve one author name against the roster",
	Long: `Resolve a single author name against the internal-persons roster and
print the decision with every candidate that competed. Useful for checking
why a name matched (or failed to match) before running a full conversion.

Examples:
  pureimport match "Potter, Harry" --roster persons.xlsx
  pureimport match "Potter, H." --roster persons.xlsx --threshold 70`,
	Args: cobra.ExactArgs(1),
	RunE: runMatch,
}

func init() {
	matchCmd.Flags().StringVar(&matchRosterFile, "roster", "", "Internal-persons roster workbook (.xlsx) or CSV")
	matchCmd.Flags().StringVar(&matchRosterSheet, "sheet", roster.DefaultSheet, "Worksheet name in the roster workbook")
	matchCmd.Flags().IntVar(&matchThreshold, "threshold", match.DefaultThreshold, "Similarity score a fuzzy match must exceed (0-100)")
	_ = matchCmd.MarkFlagRequired("roster")
}

func runMatch(cmd *cobra.Command, args []string) error {
	rosterFile = matchRosterFile
	rosterSheet = matchRosterSheet
	r, err := loadRoster()
	if err != nil {
		return fmt.Errorf("loading roster: %w", err)
	}

	parsed, groups, err := names.Parse(args[0], "cli")
	if err != nil {
		return fmt.Errorf("parsing name: %w", err)
	}
	if len(groups) > 0 {
		fmt.Printf("%s: not in 'Last, First' form, would become a group author\n", groups[0].Raw)
		return nil
	}

	matcher := match.New(matchThreshold)
	for _, name := range parsed {
		d := matcher.Resolve(name, r)
		fmt.Fprintf(os.Stdout, "%s -> %s (%s)\n", name.Inverted(), d.AssignedID(), d.Kind)
		for _, c := range d.Candidates {
			fmt.Fprintf(os.Stdout, "  %s (%d) id=%d unit=%s\n", c.Entry.Key, c.Score, c.Entry.PersonID, c.Entry.Unit)
		}
	}
	return nil
}

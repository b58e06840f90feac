// Package cmd provides CLI commands for pureimport.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func setupLogger() {
	logLevel := strings.ToUpper(os.Getenv("LOG_LEVEL"))
	if logLevel == "" {
		logLevel = "INFO"
	}

	var level slog.Level
	switch logLevel {
	case "DEBUG":
		level = slog.LevelDebug
	case "INFO":
		level = slog.LevelInfo
	case "WARN", "WARNING":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewTextHandler(os.Stderr, opts)
	logger := slog.New(handler)

	slog.SetDefault(logger)
}

var rootCmd = &cobra.Command{
	Use:   "pureimport",
	Short: "Convert bibliographic CSV exports to Pure bulk-import XML",
	Long: `Pureimport converts CSV exports from reference managers into the XML
the Pure research portal's bulk import consumes.

Authors are resolved against an internal-persons roster: exact and fuzzy
name matches become internal person ids, everything else gets a synthesized
external id. Review reports list every decision worth a human look.

Examples:
  pureimport convert -i export.csv -o publications.xml --roster persons.xlsx
  cat export.csv | pureimport convert --roster persons.xlsx > publications.xml
  pureimport match "Potter, Harry" --roster persons.xlsx
  pureimport dedupe -i export.csv --base-url https://pure.example.edu`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Local .env supplies PURE_API_KEY during development; absence is fine.
	_ = godotenv.Load()
	setupLogger()
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(dedupeCmd)
	rootCmd.AddCommand(profilesCmd)
}

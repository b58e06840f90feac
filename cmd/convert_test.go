package cmd

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunConvertEndToEnd(t *testing.T) {
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "export.csv")
	csv := `Key,Item Type,Author,Title,Date
g1,book,"Potter, Harry",A Usable Record,2020
b1,book,"Potter, Harry",An Undatable Record,85
`
	if err := os.WriteFile(csvPath, []byte(csv), 0o644); err != nil {
		t.Fatalf("writing input: %v", err)
	}

	inputFile = csvPath
	outputFile = filepath.Join(dir, "publications.xml")
	profileName = "zotero"
	profileFile = ""
	rosterFile = ""
	reportsDir = filepath.Join(dir, "review")
	groupAuthorDefault = ""
	titleCase = false

	var logBuf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&logBuf, nil)))
	defer slog.SetDefault(prev)

	if err := runConvert(convertCmd, nil); err != nil {
		t.Fatalf("runConvert() error = %v", err)
	}

	out, err := os.ReadFile(outputFile)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	got := string(out)
	if !strings.Contains(got, `<v1:book subType="book" id="g1">`) {
		t.Error("output missing converted record g1")
	}
	if strings.Contains(got, `id="b1"`) {
		t.Error("undatable record b1 was emitted")
	}

	logs := logBuf.String()
	if !strings.Contains(logs, "unusable dates") || !strings.Contains(logs, "b1") {
		t.Errorf("missing bad-date warning in logs:\n%s", logs)
	}

	if _, err := os.Stat(filepath.Join(reportsDir, "external_persons.txt")); err != nil {
		t.Errorf("review reports not written: %v", err)
	}
}

// Package dedupe checks records against research outputs already in the
// portal so re-imports do not create duplicates.
//
// Articles are looked up by DOI, books and reports by ISBN; both go through
// the portal's research-outputs search endpoint. Types with neither field
// are reported as unchecked rather than failing the run.
package dedupe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/scholarly-commons/pureimport/record"
)

// searchPageSize bounds one search response. Duplicate sets are tiny in
// practice; anything larger means the search term itself is bad.
const searchPageSize = 50

// Client calls the portal's research-outputs API.
type Client struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
}

// NewClient returns a client for the portal at baseURL authenticating with
// apiKey.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpc:   &http.Client{Timeout: 30 * time.Second},
	}
}

// Result is the duplicate verdict for one record.
type Result struct {
	RecordID string
	// Checked is false when the record's type has no searchable field.
	Checked bool
	// Duplicate UUIDs of portal research outputs that already carry the
	// record's DOI or ISBN.
	Duplicates []string
}

type searchRequest struct {
	Size         int      `json:"size"`
	Orderings    []string `json:"orderings"`
	SearchString string   `json:"searchString"`
}

type searchResponse struct {
	Items []researchOutput `json:"items"`
}

type researchOutput struct {
	UUID               string              `json:"uuid"`
	ElectronicVersions []electronicVersion `json:"electronicVersions"`
	PrintISBNs         []string            `json:"printISBNs"`
	ElectronicISBNs    []string            `json:"electronicISBNs"`
}

type electronicVersion struct {
	DOI string `json:"doi"`
}

// Check looks one record up in the portal. Records whose type supports
// neither DOI nor ISBN search come back with Checked=false.
func (c *Client) Check(ctx context.Context, rec record.Record) (Result, error) {
	res := Result{RecordID: rec.ID()}

	outputType := record.DefaultType
	if rec.Has("type") {
		var err error
		outputType, err = record.Classify(rec.Field("type"))
		if err != nil {
			return res, nil
		}
	}

	switch {
	case outputType.IsArticle() && rec.Field("doi") != "":
		doi := rec.Field("doi")
		outputs, err := c.search(ctx, doi)
		if err != nil {
			return res, err
		}
		res.Checked = true
		for _, out := range outputs {
			for _, ev := range out.ElectronicVersions {
				if ev.DOI == doi {
					res.Duplicates = append(res.Duplicates, out.UUID)
					break
				}
			}
		}
	case !outputType.IsArticle() && rec.Field("isbn") != "":
		// A record can list several ISBNs; any of them hitting an
		// existing output makes the record a duplicate.
		for _, isbn := range strings.Fields(rec.Field("isbn")) {
			outputs, err := c.search(ctx, isbn)
			if err != nil {
				return res, err
			}
			res.Checked = true
			want := normalizeISBN(isbn)
			for _, out := range outputs {
				if hasISBN(out, want) {
					res.Duplicates = append(res.Duplicates, out.UUID)
				}
			}
		}
	}
	return res, nil
}

// CheckAll runs Check over a batch, stopping on the first transport error.
func (c *Client) CheckAll(ctx context.Context, records []record.Record) ([]Result, error) {
	results := make([]Result, 0, len(records))
	for _, rec := range records {
		res, err := c.Check(ctx, rec)
		if err != nil {
			return results, fmt.Errorf("checking record %s: %w", rec.ID(), err)
		}
		results = append(results, res)
	}
	return results, nil
}

func (c *Client) search(ctx context.Context, term string) ([]researchOutput, error) {
	body, err := json.Marshal(searchRequest{
		Size:         searchPageSize,
		Orderings:    []string{"-created"},
		SearchString: term,
	})
	if err != nil {
		return nil, fmt.Errorf("encoding search request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/ws/api/research-outputs/search", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building search request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("api-key", c.apiKey)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("searching research outputs: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("searching research outputs: unexpected status %s", resp.Status)
	}

	var sr searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("decoding search response: %w", err)
	}
	return sr.Items, nil
}

func hasISBN(out researchOutput, want string) bool {
	for _, isbn := range out.PrintISBNs {
		if normalizeISBN(isbn) == want {
			return true
		}
	}
	for _, isbn := range out.ElectronicISBNs {
		if normalizeISBN(isbn) == want {
			return true
		}
	}
	return false
}

// normalizeISBN strips dashes and spaces so the hyphenation style the
// cataloger used does not defeat the comparison.
func normalizeISBN(isbn string) string {
	isbn = strings.ReplaceAll(isbn, "-", "")
	return strings.ReplaceAll(isbn, " ", "")
}

package purexml

import (
	"encoding/xml"
	"fmt"
	"io"
)

// Serialize writes a complete bulk-import document: the XML declaration,
// the v1:publications root with both namespace declarations, and one
// indented element per publication.
func Serialize(w io.Writer, pubs []*Publication) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("writing XML header: %w", err)
	}
	if _, err := fmt.Fprintf(w, "<v1:publications xmlns:v3=%q xmlns:v1=%q>\n", NamespaceV3, NamespaceV1); err != nil {
		return fmt.Errorf("writing root element: %w", err)
	}
	for _, p := range pubs {
		b, err := xml.MarshalIndent(p, "  ", "  ")
		if err != nil {
			return fmt.Errorf("marshaling publication %s: %w", p.ID, err)
		}
		if _, err := w.Write(append(b, '\n')); err != nil {
			return fmt.Errorf("writing publication %s: %w", p.ID, err)
		}
	}
	if _, err := io.WriteString(w, "</v1:publications>\n"); err != nil {
		return fmt.Errorf("closing root element: %w", err)
	}
	return nil
}

// ABOUTME: JSON exporter for journal documents
// ABOUTME: Pretty-printed output suitable for backups and tooling

package export

import (
	"encoding/json"
	"io"
)

// JSONExporter exports a document as indented JSON.
type JSONExporter struct{}

// Export writes the document to w as JSON.
func (e *JSONExporter) Export(doc *Document, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// Extension returns the file extension for this format.
func (e *JSONExporter) Extension() string {
	return "json"
}

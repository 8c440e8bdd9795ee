// ABOUTME: YAML exporter for journal documents
// ABOUTME: Human-editable output for backups

package export

import (
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLExporter exports a document as YAML.
type YAMLExporter struct{}

// Export writes the document to w as YAML.
func (e *YAMLExporter) Export(doc *Document, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer func() { _ = enc.Close() }()

	return enc.Encode(doc)
}

// Extension returns the file extension for this format.
func (e *YAMLExporter) Extension() string {
	return "yaml"
}

// ABOUTME: HTML exporter for journal documents
// ABOUTME: Renders entry bodies as Markdown via goldmark into a standalone page

package export

import (
	"bytes"
	"fmt"
	"html"
	"io"

	"github.com/yuin/goldmark"

	"github.com/moodjourney/moodjourney/internal/annotate"
)

// HTMLExporter exports a document as a standalone HTML page. Entry
// bodies are treated as Markdown and converted with goldmark; titles
// and metadata are escaped as plain text.
type HTMLExporter struct{}

// Export writes the document to w as HTML.
func (e *HTMLExporter) Export(doc *Document, w io.Writer) error {
	_, _ = fmt.Fprintf(w, "<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>Journal</title>\n</head>\n<body>\n")
	_, _ = fmt.Fprintf(w, "<h1>Journal</h1>\n<p>Exported %s</p>\n", doc.GeneratedAt.Format("2006-01-02 15:04"))

	for _, entry := range doc.Entries {
		_, _ = fmt.Fprintf(w, "<article>\n<h2>%s - %s</h2>\n",
			html.EscapeString(entry.Date), html.EscapeString(entry.Title))

		if emotion := annotate.Emotion(entry.Content); emotion != "" {
			_, _ = fmt.Fprintf(w, "<p><em>Emotion: %s</em></p>\n", html.EscapeString(emotion))
		}

		if body := annotate.MainContent(entry.Content); body != "" {
			var buf bytes.Buffer
			if err := goldmark.Convert([]byte(body), &buf); err != nil {
				return fmt.Errorf("rendering entry %s: %w", entry.Date, err)
			}
			_, _ = w.Write(buf.Bytes())
		}

		if suggestion := annotate.Suggestion(entry.Content); suggestion != "" {
			_, _ = fmt.Fprintf(w, "<blockquote>💡 %s</blockquote>\n", html.EscapeString(suggestion))
		}
		_, _ = fmt.Fprintf(w, "</article>\n")
	}

	if len(doc.Conversations) > 0 {
		_, _ = fmt.Fprintf(w, "<h1>Conversations</h1>\n")
	}
	for _, conv := range doc.Conversations {
		title := conv.Title
		if title == "" {
			title = conv.ID
		}
		_, _ = fmt.Fprintf(w, "<section>\n<h2>%s</h2>\n", html.EscapeString(title))
		for _, msg := range conv.Messages {
			_, _ = fmt.Fprintf(w, "<p><strong>%s</strong> (%s): %s</p>\n",
				html.EscapeString(msg.Sender),
				msg.Timestamp.Format("2006-01-02 15:04"),
				html.EscapeString(msg.Content))
		}
		_, _ = fmt.Fprintf(w, "</section>\n")
	}

	_, _ = fmt.Fprintf(w, "</body>\n</html>\n")
	return nil
}

// Extension returns the file extension for this format.
func (e *HTMLExporter) Extension() string {
	return "html"
}

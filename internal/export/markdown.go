// ABOUTME: Markdown exporter for journal documents
// ABOUTME: Renders entries with their emotion tags and chat transcripts

package export

import (
	"fmt"
	"io"

	"github.com/moodjourney/moodjourney/internal/annotate"
)

// MarkdownExporter exports a document as a readable Markdown journal.
type MarkdownExporter struct{}

// Export writes the document to w as Markdown. Annotated entry content
// is split into body, emotion tag and suggestion.
func (e *MarkdownExporter) Export(doc *Document, w io.Writer) error {
	_, _ = fmt.Fprintf(w, "# Journal\n\nExported %s\n\n", doc.GeneratedAt.Format("2006-01-02 15:04"))

	for _, entry := range doc.Entries {
		_, _ = fmt.Fprintf(w, "## %s - %s\n\n", entry.Date, entry.Title)

		if emotion := annotate.Emotion(entry.Content); emotion != "" {
			_, _ = fmt.Fprintf(w, "*Emotion: %s*\n\n", emotion)
		}
		if body := annotate.MainContent(entry.Content); body != "" {
			_, _ = fmt.Fprintf(w, "%s\n\n", body)
		}
		if suggestion := annotate.Suggestion(entry.Content); suggestion != "" {
			_, _ = fmt.Fprintf(w, "> 💡 %s\n\n", suggestion)
		}
		if entry.Image != "" {
			_, _ = fmt.Fprintf(w, "![attachment](%s)\n\n", entry.Image)
		}
	}

	if len(doc.Conversations) > 0 {
		_, _ = fmt.Fprintf(w, "# Conversations\n\n")
	}
	for _, conv := range doc.Conversations {
		title := conv.Title
		if title == "" {
			title = conv.ID
		}
		_, _ = fmt.Fprintf(w, "## %s\n\n", title)

		for _, msg := range conv.Messages {
			_, _ = fmt.Fprintf(w, "**%s** (%s):\n\n%s\n\n", msg.Sender,
				msg.Timestamp.Format("2006-01-02 15:04"), msg.Content)
		}
	}

	return nil
}

// Extension returns the file extension for this format.
func (e *MarkdownExporter) Extension() string {
	return "md"
}

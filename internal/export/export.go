// ABOUTME: Export formats for journal entries and chat transcripts
// ABOUTME: Defines the Exporter interface and the serializable document shapes

package export

import (
	"fmt"
	"io"
	"time"

	"github.com/moodjourney/moodjourney/internal/store"
)

// Document is a full journal snapshot handed to an Exporter.
type Document struct {
	GeneratedAt   time.Time      `json:"generated_at" yaml:"generated_at"`
	Entries       []Entry        `json:"entries" yaml:"entries"`
	Conversations []Conversation `json:"conversations,omitempty" yaml:"conversations,omitempty"`
}

// Entry is the serializable form of a journal entry. The legacy
// per-entry password is deliberately omitted from exports.
type Entry struct {
	Date    string `json:"date" yaml:"date"`
	Title   string `json:"title" yaml:"title"`
	Content string `json:"content,omitempty" yaml:"content,omitempty"`
	Image   string `json:"image,omitempty" yaml:"image,omitempty"`
}

// Conversation is one chat session with its ordered messages.
type Conversation struct {
	ID             string    `json:"id" yaml:"id"`
	Title          string    `json:"title,omitempty" yaml:"title,omitempty"`
	CreatedAt      time.Time `json:"created_at" yaml:"created_at"`
	LastModifiedAt time.Time `json:"last_modified_at" yaml:"last_modified_at"`
	Messages       []Message `json:"messages" yaml:"messages"`
}

// Message is one chat turn.
type Message struct {
	Sender    string    `json:"sender" yaml:"sender"`
	Content   string    `json:"content" yaml:"content"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
}

// Exporter writes a Document in one output format.
type Exporter interface {
	Export(doc *Document, w io.Writer) error
	Extension() string
}

// NewExporter creates an exporter for the given format.
func NewExporter(format string) (Exporter, error) {
	switch format {
	case "json":
		return &JSONExporter{}, nil
	case "yaml":
		return &YAMLExporter{}, nil
	case "md", "markdown":
		return &MarkdownExporter{}, nil
	case "html":
		return &HTMLExporter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (supported: json, yaml, md, html)", format)
	}
}

// BuildDocument converts store records into an export document.
// Sessions keep their given order; messages are looked up by session id.
func BuildDocument(entries []*store.Entry, sessions []*store.ChatSession, messagesBySession map[string][]*store.ChatMessage) *Document {
	doc := &Document{GeneratedAt: time.Now().UTC()}

	for _, e := range entries {
		doc.Entries = append(doc.Entries, Entry{
			Date:    e.Date,
			Title:   e.Title,
			Content: e.Content,
			Image:   e.Image,
		})
	}

	for _, session := range sessions {
		conv := Conversation{
			ID:             session.ID,
			Title:          session.Title,
			CreatedAt:      session.CreatedAt,
			LastModifiedAt: session.LastModifiedAt,
		}
		for _, m := range messagesBySession[session.ID] {
			conv.Messages = append(conv.Messages, Message{
				Sender:    m.Sender,
				Content:   m.Content,
				Timestamp: m.Timestamp,
			})
		}
		doc.Conversations = append(doc.Conversations, conv)
	}

	return doc
}

package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/moodjourney/moodjourney/internal/store"
)

func sampleDocument() *Document {
	ts := time.Date(2025, 5, 2, 9, 30, 0, 0, time.UTC)
	return &Document{
		GeneratedAt: ts,
		Entries: []Entry{
			{
				Date:    "2025-05-01",
				Title:   "Spring walk",
				Content: "Walked in the **park**.\n\n🧠 Emotion: joy\n\n💡 Suggestion: Go again tomorrow.",
				Image:   "journal_images/abc.png",
			},
		},
		Conversations: []Conversation{
			{
				ID:             "sess-1",
				Title:          "How do I relax?",
				CreatedAt:      ts,
				LastModifiedAt: ts,
				Messages: []Message{
					{Sender: "user", Content: "How do I relax?", Timestamp: ts},
					{Sender: "assistant", Content: "Try a short breathing exercise.", Timestamp: ts},
				},
			},
		},
	}
}

func TestNewExporter(t *testing.T) {
	for format, ext := range map[string]string{
		"json":     "json",
		"yaml":     "yaml",
		"md":       "md",
		"markdown": "md",
		"html":     "html",
	} {
		exp, err := NewExporter(format)
		require.NoError(t, err, "format %q", format)
		assert.Equal(t, ext, exp.Extension())
	}

	_, err := NewExporter("pdf")
	assert.Error(t, err)
}

func TestJSONExport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&JSONExporter{}).Export(sampleDocument(), &buf))

	var decoded Document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded.Entries, 1)
	assert.Equal(t, "Spring walk", decoded.Entries[0].Title)
	require.Len(t, decoded.Conversations, 1)
	assert.Len(t, decoded.Conversations[0].Messages, 2)
}

func TestYAMLExport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&YAMLExporter{}).Export(sampleDocument(), &buf))

	var decoded Document
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded.Entries, 1)
	assert.Equal(t, "2025-05-01", decoded.Entries[0].Date)
}

func TestMarkdownExport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&MarkdownExporter{}).Export(sampleDocument(), &buf))
	out := buf.String()

	assert.Contains(t, out, "## 2025-05-01 - Spring walk")
	assert.Contains(t, out, "*Emotion: joy*")
	assert.Contains(t, out, "Walked in the **park**.")
	assert.Contains(t, out, "> 💡 Go again tomorrow.")
	assert.Contains(t, out, "**user**")
	// Annotation markers themselves never leak into the output
	assert.NotContains(t, out, "🧠 Emotion:")
}

func TestHTMLExport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&HTMLExporter{}).Export(sampleDocument(), &buf))
	out := buf.String()

	assert.Contains(t, out, "<h2>2025-05-01 - Spring walk</h2>")
	// Markdown body rendered to HTML
	assert.Contains(t, out, "<strong>park</strong>")
	assert.Contains(t, out, "<blockquote>💡 Go again tomorrow.</blockquote>")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "</html>"))
}

func TestHTMLExport_EscapesTitles(t *testing.T) {
	doc := &Document{
		GeneratedAt: time.Now(),
		Entries:     []Entry{{Date: "2025-01-01", Title: "<script>alert(1)</script>"}},
	}

	var buf bytes.Buffer
	require.NoError(t, (&HTMLExporter{}).Export(doc, &buf))
	assert.NotContains(t, buf.String(), "<script>")
}

func TestBuildDocument(t *testing.T) {
	ts := time.Date(2025, 5, 2, 9, 0, 0, 0, time.UTC)
	entries := []*store.Entry{
		{Date: "2025-05-01", Title: "One", Password: "secret"},
	}
	sessions := []*store.ChatSession{
		{ID: "s1", Title: "hello", CreatedAt: ts, LastModifiedAt: ts},
	}
	messages := map[string][]*store.ChatMessage{
		"s1": {{SessionID: "s1", Sender: "user", Content: "hello", Timestamp: ts}},
	}

	doc := BuildDocument(entries, sessions, messages)
	require.Len(t, doc.Entries, 1)
	require.Len(t, doc.Conversations, 1)
	assert.Equal(t, "hello", doc.Conversations[0].Messages[0].Content)

	// Legacy per-entry passwords never reach an export
	raw, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "secret")
}

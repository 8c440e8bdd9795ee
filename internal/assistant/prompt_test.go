package assistant

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moodjourney/moodjourney/internal/store"
)

func TestBuildSuggestionPrompt_IncludesEntry(t *testing.T) {
	prompt, err := buildSuggestionPrompt("A good day", "Went for a run.", SuggestionReflectiveQuestion)
	require.NoError(t, err)

	assert.Contains(t, prompt, "Title: A good day")
	assert.Contains(t, prompt, "Content: Went for a run.")
	assert.Contains(t, prompt, "reflective question")
	assert.True(t, strings.HasSuffix(prompt, "Suggestion:"))
}

func TestBuildSuggestionPrompt_Kinds(t *testing.T) {
	for kind, want := range map[string]string{
		SuggestionPositiveAffirmation: "positive affirmation",
		SuggestionActionableStep:      "actionable step",
		"something_else":              "helpful and insightful suggestion",
	} {
		prompt, err := buildSuggestionPrompt("Title", "Content", kind)
		require.NoError(t, err)
		assert.Contains(t, prompt, want, "kind %q", kind)
	}
}

func TestBuildSuggestionPrompt_TruncatesLongContent(t *testing.T) {
	long := strings.Repeat("x", 800)
	prompt, err := buildSuggestionPrompt("", long, "")
	require.NoError(t, err)

	assert.Contains(t, prompt, strings.Repeat("x", 500)+"...")
	assert.NotContains(t, prompt, strings.Repeat("x", 501))
}

func TestBuildSuggestionPrompt_StripsAnnotations(t *testing.T) {
	content := "Real body.\n\n🧠 Emotion: joy\n\n💡 Suggestion: old suggestion"
	prompt, err := buildSuggestionPrompt("", content, "")
	require.NoError(t, err)

	assert.Contains(t, prompt, "Content: Real body.")
	assert.NotContains(t, prompt, "old suggestion")
}

func TestBuildSuggestionPrompt_RejectsEmptyEntry(t *testing.T) {
	_, err := buildSuggestionPrompt("", "", "")
	assert.ErrorIs(t, err, ErrInsufficientContext)

	_, err = buildSuggestionPrompt("   ", "  ", SuggestionActionableStep)
	assert.ErrorIs(t, err, ErrInsufficientContext)
}

func TestChatSystemPrompt_NoContext(t *testing.T) {
	prompt := chatSystemPrompt(nil)
	assert.Contains(t, prompt, "journaling assistant")
	assert.NotContains(t, prompt, "Recent journal entries")
}

func TestChatSystemPrompt_WithJournalContext(t *testing.T) {
	entries := []*store.Entry{
		{Date: "2025-05-01", Title: "Rough day", Content: "Work was hard.\n\n🧠 Emotion: sadness"},
	}

	prompt := chatSystemPrompt(entries)
	assert.Contains(t, prompt, "2025-05-01: Rough day")
	assert.Contains(t, prompt, "Work was hard.")
	assert.NotContains(t, prompt, "🧠 Emotion", "annotations are stripped from context")
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "short", truncateRunes("short", 10))
	assert.Equal(t, "日本語...", truncateRunes("日本語です", 3))
}

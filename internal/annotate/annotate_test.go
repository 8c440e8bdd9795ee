package annotate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const annotated = "A long walk in the rain today.\n\n🧠 Emotion: joy\n\n💡 Suggestion: Plan another walk this week."

func TestMainContent(t *testing.T) {
	assert.Equal(t, "A long walk in the rain today.", MainContent(annotated))
	assert.Equal(t, "plain text", MainContent("plain text"))
	assert.Equal(t, "", MainContent(""))
}

func TestMainContent_SuggestionOnly(t *testing.T) {
	content := "Body text.\n\n💡 Suggestion: Try something."
	assert.Equal(t, "Body text.", MainContent(content))
}

func TestEmotion(t *testing.T) {
	assert.Equal(t, "joy", Emotion(annotated))
	assert.Empty(t, Emotion("no markers here"))
}

func TestSuggestion(t *testing.T) {
	assert.Equal(t, "Plan another walk this week.", Suggestion(annotated))
	assert.Empty(t, Suggestion("no markers here"))
}

func TestApply(t *testing.T) {
	out := Apply("Body text.", "sadness", "Be kind to yourself.")
	assert.Equal(t, "Body text.\n\n🧠 Emotion: sadness\n\n💡 Suggestion: Be kind to yourself.", out)

	assert.Equal(t, "Body text.", Apply("Body text.", "", ""))
}

func TestApply_ReplacesExistingAnnotations(t *testing.T) {
	out := Apply(annotated, "fear", "")
	assert.Equal(t, "A long walk in the rain today.\n\n🧠 Emotion: fear", out)
}

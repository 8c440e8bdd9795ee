// ABOUTME: Helpers for the annotation markers embedded in entry content
// ABOUTME: Splits opaque content into body, emotion tag and suggestion text

package annotate

import (
	"regexp"
	"strings"
)

// Markers appended to entry content by the classification and
// suggestion collaborators. The store treats the whole content as
// opaque text; these helpers are a best-effort convenience on top.
const (
	EmotionMarker    = "\n\n🧠 Emotion:"
	SuggestionMarker = "\n\n💡 Suggestion:"
)

var (
	emotionPattern    = regexp.MustCompile(`\n\n🧠 Emotion: (\w+)`)
	suggestionPattern = regexp.MustCompile(`(?s)\n\n💡 Suggestion: (.+)$`)
)

// MainContent returns the entry body with any trailing annotation
// markers stripped. Content without markers is returned unchanged
// (trimmed of surrounding whitespace).
func MainContent(content string) string {
	end := len(content)
	if i := strings.Index(content, EmotionMarker); i >= 0 && i < end {
		end = i
	}
	if i := strings.Index(content, SuggestionMarker); i >= 0 && i < end {
		end = i
	}
	return strings.TrimSpace(content[:end])
}

// Emotion extracts the emotion tag from annotated content, or "" when
// no tag is present.
func Emotion(content string) string {
	m := emotionPattern.FindStringSubmatch(content)
	if m == nil {
		return ""
	}
	return m[1]
}

// Suggestion extracts the suggestion text from annotated content, or ""
// when none is present.
func Suggestion(content string) string {
	m := suggestionPattern.FindStringSubmatch(content)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// Apply appends emotion and suggestion annotations to a bare entry
// body. Empty values are skipped; existing annotations are replaced.
func Apply(content, emotion, suggestion string) string {
	out := MainContent(content)
	if emotion != "" {
		out += EmotionMarker + " " + emotion
	}
	if suggestion != "" {
		out += SuggestionMarker + " " + suggestion
	}
	return out
}

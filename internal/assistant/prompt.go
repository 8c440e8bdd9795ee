// ABOUTME: Prompt construction for suggestion generation and assistant chat
// ABOUTME: Builds few-shot suggestion prompts and journal-aware system prompts

package assistant

import (
	"errors"
	"fmt"
	"strings"

	"github.com/moodjourney/moodjourney/internal/annotate"
	"github.com/moodjourney/moodjourney/internal/store"
)

// Suggestion kinds accepted by GenerateSuggestion. Any other value
// falls back to a general suggestion.
const (
	SuggestionReflectiveQuestion  = "reflective_question"
	SuggestionPositiveAffirmation = "positive_affirmation"
	SuggestionActionableStep      = "actionable_step"
)

// ErrInsufficientContext is returned when an entry carries too little
// text to generate a meaningful suggestion.
var ErrInsufficientContext = errors.New("entry context is too minimal for a suggestion")

// maxContentRunes caps how much entry content is included in a prompt.
const maxContentRunes = 500

// buildSuggestionPrompt assembles the few-shot prompt for a journal
// suggestion. Entry content beyond maxContentRunes is truncated with a
// "..." marker.
func buildSuggestionPrompt(title, content, kind string) (string, error) {
	parts := []string{
		"Here are some examples of journal entries and helpful suggestions:",
		"Journal Entry: I felt anxious about my presentation today, but it went okay.",
		"Suggestion: What specific part of the presentation made you feel most relieved when it was over?",
		"Journal Entry: I'm grateful for a quiet evening at home.",
		"Suggestion: How can you create more moments of quiet and gratitude this week?",
		"\nNow, consider the following journal entry:",
	}

	title = strings.TrimSpace(title)
	content = strings.TrimSpace(annotate.MainContent(content))

	if title != "" {
		parts = append(parts, fmt.Sprintf("Title: %s", title))
	}
	if content != "" {
		parts = append(parts, fmt.Sprintf("Content: %s", truncateRunes(content, maxContentRunes)))
	} else {
		parts = append(parts, "Content: (No specific content provided for this entry)")
	}

	switch kind {
	case SuggestionReflectiveQuestion:
		parts = append(parts, "\nBased on this entry, suggest a reflective question for the user.")
	case SuggestionPositiveAffirmation:
		parts = append(parts, "\nBased on this entry, generate a positive affirmation.")
	case SuggestionActionableStep:
		parts = append(parts, "\nBased on this entry, suggest a small actionable step the user could take.")
	default:
		parts = append(parts, "\nProvide a helpful and insightful suggestion related to this journal entry.")
	}
	parts = append(parts, "Suggestion:")

	if title == "" && content == "" {
		return "", ErrInsufficientContext
	}

	return strings.Join(parts, "\n"), nil
}

// chatSystemPrompt builds the system message for assistant chat,
// optionally embedding recent journal entries as context. Annotation
// markers are stripped from entry content before inclusion.
func chatSystemPrompt(journal []*store.Entry) string {
	var b strings.Builder
	b.WriteString("You are a supportive journaling assistant. ")
	b.WriteString("Help the user reflect on their day and feelings. ")
	b.WriteString("Be warm and concise; never give medical advice.")

	if len(journal) == 0 {
		return b.String()
	}

	b.WriteString("\n\nRecent journal entries for context:")
	for _, entry := range journal {
		b.WriteString(fmt.Sprintf("\n- %s: %s", entry.Date, entry.Title))
		if body := annotate.MainContent(entry.Content); body != "" {
			b.WriteString(": ")
			b.WriteString(truncateRunes(body, maxContentRunes))
		}
	}
	return b.String()
}

// truncateRunes shortens s to at most n runes, appending "..." when
// anything was cut.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}

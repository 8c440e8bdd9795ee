// ABOUTME: The suggest and export subcommands
// ABOUTME: Suggestions come from the assistant; exports stream a full document

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/moodjourney/moodjourney/internal/annotate"
	"github.com/moodjourney/moodjourney/internal/assistant"
	"github.com/moodjourney/moodjourney/internal/export"
	"github.com/moodjourney/moodjourney/internal/store"
)

func (a *app) cmdSuggest(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: moodjourney suggest <date> [kind]")
	}
	if a.assistant == nil {
		return fmt.Errorf("assistant is disabled; enable it in config.toml")
	}
	kind := assistant.SuggestionReflectiveQuestion
	if len(args) > 1 {
		kind = args[1]
	}
	ctx := context.Background()

	entry, err := a.store.GetEntry(ctx, args[0])
	if err != nil {
		return err
	}
	if entry == nil {
		return fmt.Errorf("no entry for %s", args[0])
	}

	suggestion, err := a.assistant.GenerateSuggestion(ctx, entry.Title, entry.Content, kind)
	if err != nil {
		return err
	}
	fmt.Println(suggestion)

	updated := annotate.Apply(entry.Content, annotate.Emotion(entry.Content), suggestion)
	if err := a.store.UpdateEntry(ctx, entry.Date, entry.Title, updated, entry.Password, entry.Image); err != nil {
		return fmt.Errorf("saving suggestion: %w", err)
	}
	return nil
}

func (a *app) cmdExport(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: moodjourney export <json|yaml|md|html> [file]")
	}
	ctx := context.Background()

	exporter, err := export.NewExporter(args[0])
	if err != nil {
		return err
	}

	entries, err := a.store.ListEntries(ctx)
	if err != nil {
		return err
	}
	sessions, err := a.store.ListChatSessions(ctx)
	if err != nil {
		return err
	}
	messages := make(map[string][]*store.ChatMessage, len(sessions))
	for _, session := range sessions {
		messages[session.ID], err = a.store.ListMessages(ctx, session.ID)
		if err != nil {
			return err
		}
	}

	doc := export.BuildDocument(entries, sessions, messages)

	out := os.Stdout
	if len(args) > 1 {
		name := args[1]
		if !strings.Contains(name, ".") {
			name += "." + exporter.Extension()
		}
		f, err := os.Create(name)
		if err != nil {
			return fmt.Errorf("creating %s: %w", name, err)
		}
		defer f.Close()
		out = f
		fmt.Fprintf(os.Stderr, "Exporting to %s\n", name)
	}

	return exporter.Export(doc, out)
}

// ABOUTME: Entry subcommands: create, add, get, list, update, delete, attach
// ABOUTME: Thin wrappers over the store that format results for the terminal

package main

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/moodjourney/moodjourney/internal/annotate"
	"github.com/moodjourney/moodjourney/internal/store"
)

func (a *app) cmdCreate(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: moodjourney create <title> [content]")
	}
	content := ""
	if len(args) > 1 {
		content = args[1]
	}

	entry, err := a.store.CreateEntryNow(context.Background(), args[0], content, "", "")
	if err != nil {
		return err
	}
	fmt.Printf("Created entry for %s\n", entry.Date)
	return nil
}

func (a *app) cmdAdd(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: moodjourney add <date> <title> [content]")
	}
	content := ""
	if len(args) > 2 {
		content = args[2]
	}

	entry := &store.Entry{Date: args[0], Title: args[1], Content: content}
	if err := a.store.AddEntry(context.Background(), entry); err != nil {
		return err
	}
	fmt.Printf("Created entry for %s\n", args[0])
	return nil
}

func (a *app) cmdGet(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: moodjourney get <date>")
	}

	entry, err := a.store.GetEntry(context.Background(), args[0])
	if err != nil {
		return err
	}
	if entry == nil {
		fmt.Printf("No entry for %s\n", args[0])
		return nil
	}

	fmt.Printf("%s  %s\n", entry.Date, entry.Title)
	body, emotion, suggestion := annotate.MainContent(entry.Content), annotate.Emotion(entry.Content), annotate.Suggestion(entry.Content)
	if body != "" {
		fmt.Printf("\n%s\n", body)
	}
	if emotion != "" {
		fmt.Printf("\nEmotion: %s\n", emotion)
	}
	if suggestion != "" {
		fmt.Printf("\nSuggestion: %s\n", suggestion)
	}
	if entry.Image != "" {
		fmt.Printf("\nAttachment: %s\n", filepath.Join(a.cfg.Data.Dir, entry.Image))
	}
	return nil
}

func (a *app) cmdList() error {
	entries, err := a.store.ListEntries(context.Background())
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No entries.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tTITLE\tEMOTION\tATTACHMENT")
	for _, entry := range entries {
		attachment := ""
		if entry.Image != "" {
			attachment = "yes"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", entry.Date, entry.Title, annotate.Emotion(entry.Content), attachment)
	}
	return w.Flush()
}

func (a *app) cmdUpdate(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: moodjourney update <date> <title> [content] [password] [image]")
	}
	get := func(i int) string {
		if len(args) > i {
			return args[i]
		}
		return ""
	}

	if err := a.store.UpdateEntry(context.Background(), args[0], args[1], get(2), get(3), get(4)); err != nil {
		return err
	}
	fmt.Printf("Updated entry for %s\n", args[0])
	return nil
}

func (a *app) cmdDelete(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: moodjourney delete <date>")
	}
	ctx := context.Background()

	entry, err := a.store.GetEntry(ctx, args[0])
	if err != nil {
		return err
	}
	if entry != nil && entry.Image != "" {
		if err := a.uploads.Remove(entry.Image); err != nil {
			a.logger.Warn("failed to remove attachment", "image", entry.Image, "error", err)
		}
	}

	if err := a.store.DeleteEntry(ctx, args[0]); err != nil {
		return err
	}
	fmt.Printf("Deleted entry for %s\n", args[0])
	return nil
}

func (a *app) cmdAttach(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: moodjourney attach <date> <file>")
	}
	ctx := context.Background()

	entry, err := a.store.GetEntry(ctx, args[0])
	if err != nil {
		return err
	}
	if entry == nil {
		return fmt.Errorf("no entry for %s", args[0])
	}

	data, err := os.ReadFile(args[1])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[1], err)
	}
	rel, err := a.uploads.SaveBase64(base64.StdEncoding.EncodeToString(data), args[1])
	if err != nil {
		return err
	}

	if entry.Image != "" {
		if err := a.uploads.Remove(entry.Image); err != nil {
			a.logger.Warn("failed to remove previous attachment", "image", entry.Image, "error", err)
		}
	}

	if err := a.store.UpdateEntry(ctx, entry.Date, entry.Title, entry.Content, entry.Password, rel); err != nil {
		return err
	}
	fmt.Printf("Attached %s to %s\n", rel, entry.Date)
	return nil
}

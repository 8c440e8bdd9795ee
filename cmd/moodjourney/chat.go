// ABOUTME: Chat subcommands: new, send, list, history, delete
// ABOUTME: Drives chat sessions and, when enabled, the assistant replies

package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/moodjourney/moodjourney/internal/store"
)

// journalContextEntries caps how many recent entries are handed to the
// assistant as conversational context.
const journalContextEntries = 5

func (a *app) cmdChat(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: moodjourney chat <new|send|list|history|delete> [args]")
	}

	switch args[0] {
	case "new":
		return a.chatNew()
	case "send":
		return a.chatSend(args[1:])
	case "list":
		return a.chatList()
	case "history":
		return a.chatHistory(args[1:])
	case "delete":
		return a.chatDelete(args[1:])
	default:
		return fmt.Errorf("unknown chat command: %s", args[0])
	}
}

func (a *app) chatNew() error {
	id, err := a.store.CreateChatSession(context.Background())
	if err != nil {
		return err
	}
	fmt.Println(id)
	return nil
}

func (a *app) chatSend(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: moodjourney chat send <session-id> <message>")
	}
	sessionID, message := args[0], args[1]
	ctx := context.Background()

	if err := a.store.AppendChatMessage(ctx, sessionID, store.SenderUser, message); err != nil {
		return err
	}

	if a.assistant == nil {
		fmt.Println("Message saved. Enable the assistant in config.toml to get replies.")
		return nil
	}

	history, err := a.store.ListMessages(ctx, sessionID)
	if err != nil {
		return err
	}

	journal, err := a.store.ListEntries(ctx)
	if err != nil {
		return err
	}
	if len(journal) > journalContextEntries {
		journal = journal[:journalContextEntries]
	}

	reply, err := a.assistant.Chat(ctx, history, journal)
	if err != nil {
		return err
	}

	if err := a.store.AppendChatMessage(ctx, sessionID, store.SenderAssistant, reply); err != nil {
		return err
	}

	fmt.Println(reply)
	return nil
}

func (a *app) chatList() error {
	sessions, err := a.store.ListChatSessions(context.Background())
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Println("No chat sessions.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tLAST ACTIVITY")
	for _, session := range sessions {
		title := session.Title
		if title == "" {
			title = "(untitled)"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", session.ID, title, session.LastModifiedAt.Local().Format(time.DateTime))
	}
	return w.Flush()
}

func (a *app) chatHistory(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: moodjourney chat history <session-id>")
	}

	messages, err := a.store.ListMessages(context.Background(), args[0])
	if err != nil {
		return err
	}
	if len(messages) == 0 {
		fmt.Println("No messages.")
		return nil
	}

	for _, msg := range messages {
		fmt.Printf("[%s] %s:\n%s\n\n", msg.Timestamp.Local().Format(time.DateTime), msg.Sender, msg.Content)
	}
	return nil
}

func (a *app) chatDelete(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: moodjourney chat delete <session-id>")
	}

	if err := a.store.DeleteChatSession(context.Background(), args[0]); err != nil {
		return err
	}
	fmt.Printf("Deleted session %s\n", args[0])
	return nil
}

// ABOUTME: Command-line front end for the moodjourney journal
// ABOUTME: Dispatches entry, chat, passcode, suggestion and export commands

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"

	"github.com/moodjourney/moodjourney/internal/assistant"
	"github.com/moodjourney/moodjourney/internal/config"
	"github.com/moodjourney/moodjourney/internal/gate"
	"github.com/moodjourney/moodjourney/internal/store"
	"github.com/moodjourney/moodjourney/internal/upload"
)

// app bundles the shared handles every command operates on. The gate is
// constructed exactly once and shared by reference.
type app struct {
	cfg       *config.Config
	logger    *slog.Logger
	store     *store.SQLiteStore
	gate      *gate.Gate
	uploads   *upload.Manager
	assistant *assistant.Client
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cfgPath := os.Getenv("MOODJOURNEY_CONFIG")
	if cfgPath == "" {
		var err error
		cfgPath, err = config.DefaultPath()
		if err != nil {
			color.Red("Error: %v\n", err)
			os.Exit(1)
		}
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		color.Red("Error: %v\n", err)
		os.Exit(1)
	}

	slog.SetDefault(setupLogger(cfg.Logging))

	a, err := newApp(cfg)
	if err != nil {
		color.Red("Error: %v\n", err)
		os.Exit(1)
	}
	defer a.store.Close()

	cmd := os.Args[1]
	args := os.Args[2:]

	// Everything except the passcode commands and help sits behind the gate.
	if cmd != "passcode" && cmd != "help" && cmd != "-h" && cmd != "--help" {
		if err := a.ensureUnlocked(); err != nil {
			color.Red("Error: %v\n", err)
			os.Exit(1)
		}
	}

	switch cmd {
	case "init":
		// Opening the store already ensured the schema exists
		fmt.Println("Database initialized.")
	case "create":
		err = a.cmdCreate(args)
	case "add":
		err = a.cmdAdd(args)
	case "get":
		err = a.cmdGet(args)
	case "list":
		err = a.cmdList()
	case "update":
		err = a.cmdUpdate(args)
	case "delete":
		err = a.cmdDelete(args)
	case "attach":
		err = a.cmdAttach(args)
	case "chat":
		err = a.cmdChat(args)
	case "suggest":
		err = a.cmdSuggest(args)
	case "export":
		err = a.cmdExport(args)
	case "passcode":
		err = a.cmdPasscode(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		color.Red("Error: %v\n", err)
		os.Exit(1)
	}
}

func newApp(cfg *config.Config) (*app, error) {
	s, err := store.NewSQLiteStore(cfg.Database.Path)
	if err != nil {
		return nil, err
	}

	g, err := gate.New(cfg.Gate.Path)
	if err != nil {
		s.Close()
		return nil, err
	}

	a := &app{
		cfg:     cfg,
		logger:  slog.Default().With("component", "cli"),
		store:   s,
		gate:    g,
		uploads: upload.NewManager(cfg.Data.Dir),
	}

	if cfg.Assistant.Enabled {
		a.assistant = assistant.New(assistant.Config{
			APIKey:  cfg.Assistant.APIKey,
			BaseURL: cfg.Assistant.BaseURL,
			Model:   cfg.Assistant.Model,
		})
	}

	return a, nil
}

// ensureUnlocked prompts for the passcode while the gate is locked.
func (a *app) ensureUnlocked() error {
	if !a.gate.IsLocked() {
		return nil
	}

	for attempts := 0; attempts < 3; attempts++ {
		passcode, err := promptSecret("Passcode: ")
		if err != nil {
			return err
		}
		ok, err := a.gate.CheckPasscode(passcode)
		if err != nil {
			return err
		}
		if ok {
			return nil
		}
		color.Yellow("Incorrect passcode.\n")
	}
	return fmt.Errorf("too many incorrect passcode attempts")
}

// setupLogger builds the process logger from config.
func setupLogger(cfg config.LoggingConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	return slog.New(handler)
}

func printUsage() {
	fmt.Println(`moodjourney - a personal journal with an assistant

Usage: moodjourney <command> [args]

Entries:
  create <title> [content]            Create an entry for today
  add <date> <title> [content]        Create an entry for a specific date (YYYY-MM-DD)
  get <date>                          Show one entry
  list                                List all entries, newest first
  update <date> <title> [content] [password] [image]
                                      Overwrite an entry's fields
  delete <date>                       Delete an entry and its attachment
  attach <date> <file>                Attach an image file to an entry

Chat:
  chat new                            Start a new chat session
  chat list                           List chat sessions
  chat history <session-id>           Show a session transcript
  chat send <session-id> <message>    Send a message (and get a reply if the assistant is enabled)
  chat delete <session-id>            Delete a session and its messages

Assistant:
  suggest <date> [kind]               Generate a suggestion for an entry
                                      (kind: reflective_question, positive_affirmation, actionable_step)

Other:
  export <format> [file]              Export the journal (json, yaml, md, html)
  passcode <set|clear|check|lock|unlock|status>
                                      Manage the application passcode
  init                                Initialize the database
  help                                Show this help

Environment:
  MOODJOURNEY_CONFIG                  Path to config.toml (default: user config dir)`)
}

// ABOUTME: Store interface and data types for moodjourney persistence
// ABOUTME: Defines Entry, ChatSession, ChatMessage and the Store interface for database operations

package store

import (
	"context"
	"errors"
	"time"
)

// ErrInvalidDate is returned when an entry date is not a valid YYYY-MM-DD calendar date
var ErrInvalidDate = errors.New("date must be a valid YYYY-MM-DD date")

// ErrDuplicateDate is returned when an entry for the given date already exists
var ErrDuplicateDate = errors.New("entry for this date already exists")

// ErrEmptyTitle is returned when an entry is created without a title
var ErrEmptyTitle = errors.New("entry title is required")

// ErrSessionNotFound is returned when a message is appended to a session that does not exist
var ErrSessionNotFound = errors.New("chat session not found")

// ErrEmptyContent is returned when a chat message has no content
var ErrEmptyContent = errors.New("message content is required")

// ErrInvalidSender is returned when a chat message sender is not "user" or "assistant"
var ErrInvalidSender = errors.New("sender must be \"user\" or \"assistant\"")

// Sender constants for chat messages
const (
	SenderUser      = "user"
	SenderAssistant = "assistant"
)

// sessionTitleRunes is the number of leading runes of the first user
// message that become the session title. Longer messages get a "..." suffix.
const sessionTitleRunes = 50

// Entry represents one journal record for a single calendar date.
// Date is the primary key in YYYY-MM-DD form and is immutable after creation.
type Entry struct {
	Date     string
	Title    string
	Content  string // opaque text; may carry appended annotation markers
	Password string // legacy per-entry secret, independent of the access gate
	Image    string // relative attachment path, managed by the upload collaborator
}

// ChatSession represents one assistant conversation.
type ChatSession struct {
	ID             string
	CreatedAt      time.Time
	LastModifiedAt time.Time
	Title          string // derived from the first user message, immutable once set
}

// ChatMessage represents a single turn within a chat session.
type ChatMessage struct {
	ID        int64
	SessionID string
	Sender    string // "user" or "assistant"
	Content   string
	Timestamp time.Time
}

// Store defines the interface for entry and conversation persistence
type Store interface {
	// Entries
	AddEntry(ctx context.Context, entry *Entry) error
	GetEntry(ctx context.Context, date string) (*Entry, error)
	UpdateEntry(ctx context.Context, date, title, content, password, image string) error
	DeleteEntry(ctx context.Context, date string) error
	ListEntries(ctx context.Context) ([]*Entry, error)
	CreateEntryNow(ctx context.Context, title, content, password, image string) (*Entry, error)

	// Chat sessions and messages
	CreateChatSession(ctx context.Context) (string, error)
	AppendChatMessage(ctx context.Context, sessionID, sender, content string) error
	ListChatSessions(ctx context.Context) ([]*ChatSession, error)
	ListMessages(ctx context.Context, sessionID string) ([]*ChatMessage, error)
	DeleteChatSession(ctx context.Context, sessionID string) error

	Close() error
}

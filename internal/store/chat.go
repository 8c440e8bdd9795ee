// ABOUTME: Chat session and message operations for the SQLite store
// ABOUTME: Handles session title derivation and cascading message deletes

package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
)

// CreateChatSession inserts a new empty chat session and returns its id.
// The session starts with no title; created_at and last_modified_at are
// both set to the current time.
func (s *SQLiteStore) CreateChatSession(ctx context.Context) (string, error) {
	sessionID := uuid.New().String()
	now := time.Now().UTC().Format(time.RFC3339)

	query := `
		INSERT INTO chat_sessions (id, created_at, last_modified_at)
		VALUES (?, ?, ?)
	`

	if _, err := s.db.ExecContext(ctx, query, sessionID, now, now); err != nil {
		return "", fmt.Errorf("inserting chat session: %w", err)
	}

	s.logger.Debug("created chat session", "id", sessionID)
	return sessionID, nil
}

// AppendChatMessage inserts a message into the session and advances the
// session's last_modified_at. The first user message of an untitled
// session also sets the session title (see deriveSessionTitle); once a
// title exists it is never overwritten.
func (s *SQLiteStore) AppendChatMessage(ctx context.Context, sessionID, sender, content string) error {
	if sender != SenderUser && sender != SenderAssistant {
		return ErrInvalidSender
	}
	if content == "" {
		return ErrEmptyContent
	}

	now := time.Now().UTC().Format(time.RFC3339)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var title sql.NullString
	err = tx.QueryRowContext(ctx,
		"SELECT title FROM chat_sessions WHERE id = ?", sessionID).Scan(&title)
	if err == sql.ErrNoRows {
		return ErrSessionNotFound
	}
	if err != nil {
		return fmt.Errorf("querying session title: %w", err)
	}

	if sender == SenderUser && strings.TrimSpace(title.String) == "" {
		_, err = tx.ExecContext(ctx,
			"UPDATE chat_sessions SET title = ?, last_modified_at = ? WHERE id = ?",
			deriveSessionTitle(content), now, sessionID)
	} else {
		_, err = tx.ExecContext(ctx,
			"UPDATE chat_sessions SET last_modified_at = ? WHERE id = ?",
			now, sessionID)
	}
	if err != nil {
		return fmt.Errorf("updating session: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		"INSERT INTO chat_messages (session_id, sender, content, timestamp) VALUES (?, ?, ?, ?)",
		sessionID, sender, content, now)
	if err != nil {
		if isConstraintViolation(err) {
			return ErrSessionNotFound
		}
		return fmt.Errorf("inserting message: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing message: %w", err)
	}

	s.logger.Debug("appended chat message", "session", sessionID, "sender", sender)
	return nil
}

// deriveSessionTitle builds a session title from the first user
// message: the first 50 runes, with a literal "..." suffix when the
// message is longer than that.
func deriveSessionTitle(content string) string {
	runes := []rune(content)
	if len(runes) <= sessionTitleRunes {
		return content
	}
	return string(runes[:sessionTitleRunes]) + "..."
}

// ListChatSessions returns all sessions ordered by last_modified_at
// descending (most recently active first).
func (s *SQLiteStore) ListChatSessions(ctx context.Context) ([]*ChatSession, error) {
	query := `
		SELECT id, created_at, last_modified_at, title
		FROM chat_sessions
		ORDER BY last_modified_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying chat sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*ChatSession
	for rows.Next() {
		var session ChatSession
		var createdAt, modifiedAt string
		var title sql.NullString
		if err := rows.Scan(&session.ID, &createdAt, &modifiedAt, &title); err != nil {
			return nil, fmt.Errorf("scanning chat session: %w", err)
		}
		session.CreatedAt = parseTimestamp(s.logger, createdAt)
		session.LastModifiedAt = parseTimestamp(s.logger, modifiedAt)
		session.Title = title.String
		sessions = append(sessions, &session)
	}
	return sessions, rows.Err()
}

// ListMessages returns all messages for the session in chronological
// order, ties broken by insertion order. An unknown session id yields
// an empty result, not an error.
func (s *SQLiteStore) ListMessages(ctx context.Context, sessionID string) ([]*ChatMessage, error) {
	query := `
		SELECT id, session_id, sender, content, timestamp
		FROM chat_messages
		WHERE session_id = ?
		ORDER BY timestamp ASC, id ASC
	`

	rows, err := s.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("querying messages: %w", err)
	}
	defer rows.Close()

	var messages []*ChatMessage
	for rows.Next() {
		var msg ChatMessage
		var timestamp string
		if err := rows.Scan(&msg.ID, &msg.SessionID, &msg.Sender, &msg.Content, &timestamp); err != nil {
			return nil, fmt.Errorf("scanning message: %w", err)
		}
		msg.Timestamp = parseTimestamp(s.logger, timestamp)
		messages = append(messages, &msg)
	}
	return messages, rows.Err()
}

// DeleteChatSession deletes the session row; the ON DELETE CASCADE
// foreign key removes all of its messages as part of the same delete.
// Deleting an unknown id is a no-op.
func (s *SQLiteStore) DeleteChatSession(ctx context.Context, sessionID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM chat_sessions WHERE id = ?", sessionID)
	if err != nil {
		return fmt.Errorf("deleting chat session: %w", err)
	}

	s.logger.Debug("deleted chat session", "id", sessionID)
	return nil
}

// parseTimestamp parses a stored RFC3339 timestamp, logging rather than
// failing on malformed values so one bad row doesn't break listings.
func parseTimestamp(logger *slog.Logger, value string) time.Time {
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		logger.Warn("failed to parse stored timestamp", "value", value, "error", err)
		return time.Time{}
	}
	return parsed
}

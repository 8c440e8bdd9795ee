// ABOUTME: Journal entry CRUD operations for the SQLite store
// ABOUTME: Enforces date validity and one-entry-per-date uniqueness

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// entryDateLayout is the only accepted form for entry dates.
const entryDateLayout = "2006-01-02"

// AddEntry inserts a new journal entry.
// Returns ErrInvalidDate if the date does not parse as YYYY-MM-DD and
// ErrDuplicateDate if an entry for that date already exists. The
// duplicate check runs before the insert; a constraint violation on the
// insert itself is reported as the same conflict. No partial insert is
// observable on failure.
func (s *SQLiteStore) AddEntry(ctx context.Context, entry *Entry) error {
	// time.Parse accepts unpadded forms like 2025-2-3; requiring the
	// canonical form keeps date DESC ordering lexicographic and one
	// entry per calendar day.
	parsed, err := time.Parse(entryDateLayout, entry.Date)
	if err != nil || parsed.Format(entryDateLayout) != entry.Date {
		return ErrInvalidDate
	}
	if strings.TrimSpace(entry.Title) == "" {
		return ErrEmptyTitle
	}

	// Read-before-write uniqueness check. Safe under the single-writer
	// assumption; the primary key still backstops it.
	existing, err := s.GetEntry(ctx, entry.Date)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrDuplicateDate
	}

	query := `
		INSERT INTO entries (date, title, content, password, image)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err = s.db.ExecContext(ctx, query,
		entry.Date,
		entry.Title,
		nullString(entry.Content),
		nullString(entry.Password),
		nullString(entry.Image),
	)
	if err != nil {
		if isConstraintViolation(err) {
			return ErrDuplicateDate
		}
		return fmt.Errorf("inserting entry: %w", err)
	}

	s.logger.Debug("added entry", "date", entry.Date)
	return nil
}

// GetEntry retrieves the entry for the given date.
// A missing entry is not an error: it returns (nil, nil).
func (s *SQLiteStore) GetEntry(ctx context.Context, date string) (*Entry, error) {
	query := `
		SELECT date, title, content, password, image
		FROM entries
		WHERE date = ?
	`

	var entry Entry
	var content, password, image sql.NullString

	err := s.db.QueryRowContext(ctx, query, date).Scan(
		&entry.Date,
		&entry.Title,
		&content,
		&password,
		&image,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying entry: %w", err)
	}

	entry.Content = content.String
	entry.Password = password.String
	entry.Image = image.String
	return &entry, nil
}

// UpdateEntry overwrites all mutable fields of the entry for the given
// date. If no entry exists for that date, the call succeeds but affects
// zero rows; callers must not assume existence.
func (s *SQLiteStore) UpdateEntry(ctx context.Context, date, title, content, password, image string) error {
	query := `
		UPDATE entries
		SET title = ?, content = ?, password = ?, image = ?
		WHERE date = ?
	`

	_, err := s.db.ExecContext(ctx, query,
		title,
		nullString(content),
		nullString(password),
		nullString(image),
		date,
	)
	if err != nil {
		return fmt.Errorf("updating entry: %w", err)
	}

	s.logger.Debug("updated entry", "date", date)
	return nil
}

// DeleteEntry removes the entry for the given date. Deleting a date
// with no entry is a no-op. Any attachment file referenced by the entry
// is the caller's responsibility to reclaim.
func (s *SQLiteStore) DeleteEntry(ctx context.Context, date string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM entries WHERE date = ?", date)
	if err != nil {
		return fmt.Errorf("deleting entry: %w", err)
	}

	s.logger.Debug("deleted entry", "date", date)
	return nil
}

// ListEntries returns all entries ordered by date descending (most recent first).
func (s *SQLiteStore) ListEntries(ctx context.Context) ([]*Entry, error) {
	query := `
		SELECT date, title, content, password, image
		FROM entries
		ORDER BY date DESC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying entries: %w", err)
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		var entry Entry
		var content, password, image sql.NullString
		if err := rows.Scan(&entry.Date, &entry.Title, &content, &password, &image); err != nil {
			return nil, fmt.Errorf("scanning entry: %w", err)
		}
		entry.Content = content.String
		entry.Password = password.String
		entry.Image = image.String
		entries = append(entries, &entry)
	}
	return entries, rows.Err()
}

// CreateEntryNow creates an entry stamped with the current local
// calendar date and delegates to AddEntry, inheriting its failure
// modes. The created entry is returned on success.
func (s *SQLiteStore) CreateEntryNow(ctx context.Context, title, content, password, image string) (*Entry, error) {
	entry := &Entry{
		Date:     time.Now().Format(entryDateLayout),
		Title:    title,
		Content:  content,
		Password: password,
		Image:    image,
	}
	if err := s.AddEntry(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

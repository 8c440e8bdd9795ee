// Package store provides persistent storage for moodjourney using SQLite.
//
// # Data Models
//
//   - Entry: one journal record per calendar date (YYYY-MM-DD primary key)
//   - ChatSession: one assistant conversation with a derived title
//   - ChatMessage: one turn within a session, ordered by timestamp
//
// # SQLite Configuration
//
// The store uses SQLite with WAL mode and foreign keys enabled:
//
//	PRAGMA journal_mode=WAL;
//	PRAGMA foreign_keys=ON;
//
// Schema creation is idempotent; opening an existing database preserves
// all rows. Deleting a chat session cascades to its messages via the
// session_id foreign key.
//
// # Error Handling
//
// Invalid input is rejected before any I/O:
//
//   - ErrInvalidDate: entry date does not parse as YYYY-MM-DD
//   - ErrDuplicateDate: an entry for the date already exists
//   - ErrEmptyTitle, ErrEmptyContent, ErrInvalidSender: missing or
//     malformed required fields
//   - ErrSessionNotFound: message appended to an unknown session
//
// Absence on reads is not an error: GetEntry returns (nil, nil) for a
// missing date, and ListMessages returns an empty slice for an unknown
// session. The store never retries; storage failures are returned to
// the caller wrapped with context.
//
// All methods accept context.Context. This is a single-process,
// single-writer model: the design does not support multiple processes
// sharing one database file.
package store

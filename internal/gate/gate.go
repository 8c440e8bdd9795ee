// ABOUTME: Passcode gate state machine persisted to a JSON file
// ABOUTME: Mutex-guarded lock/unlock state shared by all request handlers

package gate

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// passcodeData is the durable on-disk shape. A nil PasswordHash means
// no passcode is configured; Locked is only meaningful alongside a hash.
type passcodeData struct {
	PasswordHash *string `json:"password_hash"`
	Locked       bool    `json:"locked"`
}

// Gate is the passcode-backed lock/unlock state machine controlling
// application access. The in-memory state is exclusively owned by one
// mutex for the process lifetime; the backing file is rewritten in full
// on every mutation. Construct it once and pass the same instance to
// every handler.
type Gate struct {
	mu     sync.Mutex
	path   string
	logger *slog.Logger
	data   passcodeData
}

// New loads the gate state from the given file path, creating missing
// parent directories. A missing, unreadable, or corrupt state file is
// treated as "no passcode configured" so the application stays usable.
func New(path string) (*Gate, error) {
	logger := slog.Default().With("component", "gate")

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating gate state directory: %w", err)
	}

	g := &Gate{
		path:   path,
		logger: logger,
	}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return g, nil
	}
	if err != nil {
		logger.Warn("failed to read passcode state, starting unconfigured", "path", path, "error", err)
		return g, nil
	}

	if err := json.Unmarshal(raw, &g.data); err != nil {
		logger.Warn("corrupt passcode state, starting unconfigured", "path", path, "error", err)
		g.data = passcodeData{}
	}

	return g, nil
}

// SetPasscode replaces the current passcode. A non-empty value stores
// its digest and immediately locks the gate. An empty value removes the
// passcode entirely, clearing the locked flag.
func (g *Gate) SetPasscode(value string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if value == "" {
		g.data.PasswordHash = nil
		g.data.Locked = false
	} else {
		h := digest(value)
		g.data.PasswordHash = &h
		g.data.Locked = true
	}

	return g.saveLocked()
}

// DeletePasscode removes any configured passcode, leaving the gate
// unlocked. Equivalent to SetPasscode("").
func (g *Gate) DeletePasscode() error {
	return g.SetPasscode("")
}

// CheckPasscode compares the attempt against the stored digest. A
// correct attempt unlocks the gate and persists the new state; an
// incorrect attempt, or one made while no passcode exists, leaves the
// state unchanged and reports failure.
func (g *Gate) CheckPasscode(attempt string) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.data.PasswordHash == nil {
		return false, nil
	}
	if digest(attempt) != *g.data.PasswordHash {
		return false, nil
	}

	g.data.Locked = false
	if err := g.saveLocked(); err != nil {
		return false, err
	}
	return true, nil
}

// SetLocked explicitly locks or unlocks the gate. The flag is persisted
// either way, but has no observable effect until a passcode exists.
func (g *Gate) SetLocked(locked bool) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.data.Locked = locked
	return g.saveLocked()
}

// IsLocked reports whether the gate is currently locked. It is always
// false while no passcode is configured, regardless of the stored flag.
func (g *Gate) IsLocked() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.data.PasswordHash != nil && g.data.Locked
}

// HasPasscode reports whether a passcode is currently configured.
func (g *Gate) HasPasscode() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.data.PasswordHash != nil
}

// saveLocked rewrites the whole backing file. Must be called with mu held.
func (g *Gate) saveLocked() error {
	raw, err := json.MarshalIndent(&g.data, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding passcode state: %w", err)
	}
	if err := os.WriteFile(g.path, raw, 0600); err != nil {
		return fmt.Errorf("writing passcode state: %w", err)
	}
	return nil
}

// digest computes the unsalted SHA-256 hex digest of a passcode. The
// raw value is never persisted; this resists casual disk inspection,
// not offline brute force.
func digest(passcode string) string {
	sum := sha256.Sum256([]byte(passcode))
	return hex.EncodeToString(sum[:])
}

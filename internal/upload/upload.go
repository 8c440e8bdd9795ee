// ABOUTME: Attachment storage for journal entry images
// ABOUTME: Decodes base64 payloads into uniquely named files under the data dir

package upload

import (
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// imagesDirName is the directory under the data dir that holds all
// entry attachments; the relative paths stored on entries start with it.
const imagesDirName = "journal_images"

// ErrUnsafePath is returned when a stored attachment path would escape
// the images directory.
var ErrUnsafePath = errors.New("attachment path escapes the images directory")

// Manager stores and reclaims entry attachments. The relative paths it
// returns are persisted verbatim on entries; the store never checks
// that they resolve to real files.
type Manager struct {
	dataDir string
	logger  *slog.Logger
}

// NewManager creates a manager rooted at the given data directory.
func NewManager(dataDir string) *Manager {
	return &Manager{
		dataDir: dataDir,
		logger:  slog.Default().With("component", "upload"),
	}
}

// SaveBase64 decodes the payload and writes it to a uniquely named file
// under the images directory, creating it if needed. The original file
// name contributes only its extension, sanitized to lowercase
// alphanumerics with "png" as the fallback. Returns the relative path
// to store on the entry.
func (m *Manager) SaveBase64(dataBase64, originalName string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(dataBase64)
	if err != nil {
		return "", fmt.Errorf("decoding image data: %w", err)
	}

	imagesDir := filepath.Join(m.dataDir, imagesDirName)
	if err := os.MkdirAll(imagesDir, 0755); err != nil {
		return "", fmt.Errorf("creating images directory: %w", err)
	}

	fileName := uuid.New().String() + "." + sanitizeExtension(originalName)
	fullPath := filepath.Join(imagesDir, fileName)

	if err := os.WriteFile(fullPath, raw, 0644); err != nil {
		return "", fmt.Errorf("writing image file: %w", err)
	}

	m.logger.Debug("saved attachment", "path", fullPath, "bytes", len(raw))
	return path.Join(imagesDirName, fileName), nil
}

// Remove deletes the attachment at the given relative path. A missing
// file or empty path is a no-op; a path outside the images directory is
// rejected. The data dir holds more than attachments, so anything that
// does not resolve under journal_images/ must never be unlinked.
func (m *Manager) Remove(rel string) error {
	if rel == "" {
		return nil
	}
	clean := path.Clean(filepath.ToSlash(rel))
	if filepath.IsAbs(rel) || !filepath.IsLocal(rel) ||
		!strings.HasPrefix(clean, imagesDirName+"/") {
		return ErrUnsafePath
	}

	full := filepath.Join(m.dataDir, filepath.FromSlash(clean))
	err := os.Remove(full)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("removing attachment: %w", err)
	}

	m.logger.Debug("removed attachment", "path", full)
	return nil
}

// sanitizeExtension extracts a safe lowercase extension from a file
// name, defaulting to "png" when none is usable.
func sanitizeExtension(name string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if ext == "" {
		return "png"
	}
	for _, r := range ext {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return "png"
		}
	}
	return ext
}

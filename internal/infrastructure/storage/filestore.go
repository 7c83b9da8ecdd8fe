// Package storage keeps attachment bytes on disk. Files live under a
// per-ticket subdirectory named by the ticket ID; each stored filename is
// prefixed with a random token so concurrent uploads of the same filename
// never collide and names cannot be guessed.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"helpdesk/internal/shared/id"
)

// FileStore writes and resolves attachment files under a base directory.
type FileStore struct {
	baseDir string
}

func NewFileStore(baseDir string) (*FileStore, error) {
	if baseDir == "" {
		return nil, fmt.Errorf("base directory is required")
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create files directory: %w", err)
	}
	return &FileStore{baseDir: baseDir}, nil
}

// Save streams r into the ticket's subdirectory under a token-prefixed
// sanitized filename. It returns the opaque stored name
// ("<token>__<sanitized name>"), the sanitized original filename, and the
// byte count written.
func (s *FileStore) Save(ticketID uint, originalName string, r io.Reader) (storedName, safeName string, size int64, err error) {
	safeName = SanitizeFilename(originalName)
	storedName = id.MustGenerate(id.DefaultLength) + "__" + safeName

	dir := s.ticketDir(ticketID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", 0, fmt.Errorf("failed to create ticket directory: %w", err)
	}

	path := filepath.Join(dir, storedName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o644)
	if err != nil {
		return "", "", 0, fmt.Errorf("failed to create attachment file: %w", err)
	}

	size, err = io.Copy(f, r)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(path)
		return "", "", 0, fmt.Errorf("failed to write attachment file: %w", err)
	}

	return storedName, safeName, size, nil
}

// Resolve returns the absolute path of a stored file, refusing any stored
// name that would escape the ticket's storage area.
func (s *FileStore) Resolve(ticketID uint, storedName string) (string, error) {
	if storedName == "" || storedName != filepath.Base(storedName) || strings.Contains(storedName, "..") {
		return "", fmt.Errorf("invalid stored name: %q", storedName)
	}

	dir := s.ticketDir(ticketID)
	path := filepath.Join(dir, storedName)

	// Resolve is the only read path; verify the cleaned path is still
	// inside the ticket directory.
	rel, err := filepath.Rel(dir, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return "", fmt.Errorf("stored name escapes ticket directory: %q", storedName)
	}

	return path, nil
}

// Remove deletes a stored file. Used to clean up when the database write
// that references the file fails.
func (s *FileStore) Remove(ticketID uint, storedName string) error {
	path, err := s.Resolve(ticketID, storedName)
	if err != nil {
		return err
	}
	return os.Remove(path)
}

func (s *FileStore) ticketDir(ticketID uint) string {
	return filepath.Join(s.baseDir, strconv.FormatUint(uint64(ticketID), 10))
}

// SanitizeFilename strips directory components and replaces unsafe runes,
// keeping letters, digits, dot, dash and underscore. An empty or fully
// unsafe name becomes "file".
func SanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}

	cleaned := strings.Trim(b.String(), "._")
	if cleaned == "" {
		return "file"
	}
	return cleaned
}

// Package storage writes uploaded attachment files under a configured
// upload root and guards reads against paths escaping it.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"maintdesk/internal/shared/errors"
)

// AttachmentStore stores attachment files under root, segmented by ticket
// id, with a randomized filename prefix to avoid collisions while keeping
// the sanitized original name for display.
type AttachmentStore struct {
	root string
}

// NewAttachmentStore resolves the upload root to an absolute path.
func NewAttachmentStore(root string) (*AttachmentStore, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve upload root: %w", err)
	}
	return &AttachmentStore{root: abs}, nil
}

// StoredFile describes a file written into the store.
type StoredFile struct {
	// DisplayName is the sanitized original filename kept for display.
	DisplayName string
	// Path is the absolute storage path to persist alongside the ticket.
	Path string
	// Size is the number of bytes written.
	Size int64
}

// Save writes the stream to disk under the ticket's directory and returns
// the stored file's metadata.
func (s *AttachmentStore) Save(ticketID uint, filename string, r io.Reader) (*StoredFile, error) {
	display := SanitizeFilename(filename)
	stored := uuid.New().String() + "_" + display

	dir := filepath.Join(s.root, "maintenance", strconv.FormatUint(uint64(ticketID), 10))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create attachment directory: %w", err)
	}

	path := filepath.Join(dir, stored)
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create attachment file: %w", err)
	}
	defer f.Close()

	size, err := io.Copy(f, r)
	if err != nil {
		return nil, fmt.Errorf("failed to write attachment file: %w", err)
	}

	return &StoredFile{
		DisplayName: display,
		Path:        path,
		Size:        size,
	}, nil
}

// Resolve canonicalizes a persisted storage path and verifies that it lies
// strictly within the upload root and that the file exists. Stored paths
// were server-generated, but they are read back from persisted state and
// must not be trusted implicitly. Violations and missing files report a
// not-found outcome, never a raw filesystem error.
func (s *AttachmentStore) Resolve(path string) (string, error) {
	abs, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return "", errors.NewNotFoundError("attachment not found")
	}

	rel, err := filepath.Rel(s.root, abs)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", errors.NewNotFoundError("attachment not found")
	}

	info, err := os.Stat(abs)
	if err != nil || info.IsDir() {
		return "", errors.NewNotFoundError("attachment not found")
	}

	return abs, nil
}

// SanitizeFilename strips path separators from a client-supplied filename,
// keeping it usable as a display name and as part of a stored name.
func SanitizeFilename(filename string) string {
	name := strings.ReplaceAll(filename, "\\", "_")
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.TrimSpace(name)
	if name == "" {
		return "file"
	}
	return name
}

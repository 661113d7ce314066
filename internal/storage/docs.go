// Package storage is the verification-document bucket, a directory on
// disk keyed by {sessionID}/{timestamp}.{ext} paths. Documents are
// private review material and are never served publicly.
package storage

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var ErrBadPath = errors.New("invalid document path")

type DocumentStore struct {
	root string
}

func NewDocumentStore(root string) *DocumentStore {
	return &DocumentStore{root: root}
}

// Save writes the document under the bucket root and returns the
// stored path. Traversal attempts are rejected, not cleaned up.
func (s *DocumentStore) Save(path string, r io.Reader) (string, error) {
	clean := filepath.Clean(path)
	if clean == "." || strings.Contains(clean, "..") || filepath.IsAbs(clean) || strings.ContainsRune(clean, 0) {
		return "", ErrBadPath
	}
	full := filepath.Join(s.root, clean)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", err
	}
	f, err := os.OpenFile(full, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return "", err
	}
	defer f.Close()
	if _, err := io.Copy(f, r); err != nil {
		return "", err
	}
	return clean, nil
}

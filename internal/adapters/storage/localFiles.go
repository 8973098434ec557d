package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gofrs/uuid"
)

// LocalFileStore writes uploaded images under a media root on disk. The
// database keeps only the relative path this returns.
type LocalFileStore struct {
	Root string
}

func NewLocalFileStore(root string) *LocalFileStore {
	return &LocalFileStore{Root: root}
}

func (s *LocalFileStore) Save(filename string, r io.Reader) (string, error) {
	// Uploaded names are untrusted; keep only the extension.
	rel := filepath.Join("posts", uuid.Must(uuid.NewV4()).String()+filepath.Ext(filename))
	abs := filepath.Join(s.Root, rel)

	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return "", fmt.Errorf("could not create media dir: %w", err)
	}

	f, err := os.Create(abs)
	if err != nil {
		return "", fmt.Errorf("could not create media file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("could not write media file: %w", err)
	}
	return rel, nil
}

package storage

import "io"

// FileStore keeps uploaded images outside the database; posts hold only the
// path it returns.
type FileStore interface {
	Save(filename string, r io.Reader) (string, error)
}

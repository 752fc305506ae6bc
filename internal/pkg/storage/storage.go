package storage

import (
	"context"
	"io"
)

// FileStorage abstracts where complaint attachments live.
type FileStorage interface {
	// Upload writes a file under the given relative path and returns the
	// stored path/key.
	Upload(ctx context.Context, file io.Reader, path string) (string, error)

	// Delete removes a stored file.
	Delete(ctx context.Context, path string) error

	// URL returns the public URL for a stored path.
	URL(path string) string
}

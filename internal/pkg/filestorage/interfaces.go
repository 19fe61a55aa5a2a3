package filestorage

import (
	"context"
	"io"
)

// StoredFile describes a file written by a FileStorage.
type StoredFile struct {
	URL      string // Public URL or uploads-relative path
	Path     string // Filesystem path
	Filename string // Original filename
	Size     int64
}

// FileStorage stores uploaded files and hands back a URL for them.
type FileStorage interface {
	// Save writes r under subPath with a generated name that keeps the extension of filename.
	Save(ctx context.Context, filename string, r io.Reader, subPath string) (*StoredFile, error)

	// Delete removes a file previously returned by Save.
	Delete(fileURL string) error

	// FullPath maps a URL returned by Save back to the filesystem path.
	FullPath(fileURL string) string
}

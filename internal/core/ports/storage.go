package ports

import (
	"context"
	"io"
)

type UploadInput struct {
	TaskID   uint64
	FileName string
	MimeType string
	Size     int64
	Content  io.Reader
}

// FileStorage keeps attachment payloads. Save returns the path the file can
// later be opened or removed with.
type FileStorage interface {
	Save(ctx context.Context, name string, content io.Reader) (string, int64, error)
	Open(ctx context.Context, path string) (io.ReadCloser, error)
	Remove(ctx context.Context, path string) error
}

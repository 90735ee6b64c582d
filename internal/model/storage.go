package model

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
)

// Storage is a blob store.
type Storage interface {
	Upload(ctx context.Context, key string, reader io.Reader, size int64) error
	Download(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// Transactor runs fn in a single store transaction. Stores called with the
// context passed to fn take part in it.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ListExport describes an exported list snapshot.
type ListExport struct {
	ListID     uuid.UUID
	Key        string
	Size       int64
	ExportedAt time.Time
}

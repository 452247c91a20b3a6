package object

import (
	"context"
	"errors"
	"io"
)

// ErrNotFound reports that no object exists under a storage key. Records can
// outlive their files when the disk and the database drift, so callers must
// treat this as a first-class outcome, not a bug.
var ErrNotFound = errors.New("object not found")

// ObjectStore defines the contract for saving and retrieving binary objects.
type ObjectStore interface {
	Save(ctx context.Context, userID string, fileName string, r io.Reader) (storageKey string, sizeBytes int64, mimeType string, err error)
	Open(ctx context.Context, storageKey string) (io.ReadCloser, error)
	Delete(ctx context.Context, storageKey string) error
}

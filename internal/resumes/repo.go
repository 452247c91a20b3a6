package resumes

import (
	"context"
	"errors"
)

// ErrNotFound reports that no resume record matches the id. It also covers
// a delete that lost a race with another delete of the same record.
var ErrNotFound = errors.New("resume not found")

// Repo defines persistence operations for resumes. Ownership checks live in
// the service so every handler goes through the same guard.
type Repo interface {
	Create(ctx context.Context, resume Resume) error
	ListByUser(ctx context.Context, userID string) ([]Resume, error)
	GetByID(ctx context.Context, id string) (Resume, error)
	UpdateParsed(ctx context.Context, id string, parsed ParsedData) error
	Delete(ctx context.Context, id string) error
}

package interfaces

import (
	"context"
	"errors"

	"capquote/internal/domain/entities"
)

// ErrRevisionConflict is returned by Save when the stored revision no longer
// matches the one the caller loaded.
var ErrRevisionConflict = errors.New("thread revision conflict")

// IThreadRepository persists one ConfigurationThread per caller-supplied id.
//
//   - Get returns an empty thread (ID == "") when nothing is stored.
//   - Save writes t when the stored revision equals t.Revision (0 = not stored
//     yet) and returns the thread with its revision incremented.
type IThreadRepository interface {
	Get(ctx context.Context, id string) (entities.ConfigurationThread, error)
	Save(ctx context.Context, t entities.ConfigurationThread) (entities.ConfigurationThread, error)
}

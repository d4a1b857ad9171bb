package repository

import (
	"context"
	"errors"

	"github.com/marqueehq/marquee/internal/models"
)

// ErrNotFound is returned when an id has no row behind it.
var ErrNotFound = errors.New("not found")

// Movies persists catalog records. Create assigns the identifier and
// creation timestamp; callers hand in an already-validated candidate, the
// store never re-checks constraints.
type Movies interface {
	Create(ctx context.Context, m models.Movie) (models.Movie, error)
	GetByID(ctx context.Context, id string) (models.Movie, error)
	List(ctx context.Context) ([]models.Movie, error)
	Delete(ctx context.Context, id string) error
}

// AuditLog records submission outcomes. Writes are fire-and-forget from the
// service's point of view; a failed audit write never fails the submission.
type AuditLog interface {
	Insert(ctx context.Context, e models.AuditEntry) error
}

// Repositories bundles one implementation of every store so wiring code can
// swap backends in one place.
type Repositories struct {
	Movies Movies
	Audit  AuditLog
}

package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/marqueehq/marquee/internal/models"
	repo "github.com/marqueehq/marquee/internal/repository"
	"github.com/marqueehq/marquee/internal/validate"
	"github.com/marqueehq/marquee/internal/worker"
)

const auditTimeout = 5 * time.Second

// MovieService validates and persists catalog entries. Validation never
// short-circuits: a rejected movie reports every violation at once.
type MovieService struct {
	movies repo.Movies
	audit  repo.AuditLog
	wp     *worker.Pool
	log    *slog.Logger
}

func NewMovieService(movies repo.Movies, audit repo.AuditLog, wp *worker.Pool, log *slog.Logger) *MovieService {
	return &MovieService{movies: movies, audit: audit, wp: wp, log: log}
}

// Create runs every field check and either returns the full violation
// list as the error or persists the movie with a fresh identifier.
func (s *MovieService) Create(ctx context.Context, m models.Movie) (models.Movie, error) {
	v := validate.New()
	models.ValidateMovie(v, &m)
	if !v.Valid() {
		vs := v.Violations()
		s.auditAsync(nil, models.AuditMovieRejected, strings.Join(vs.Messages, "; "))
		return models.Movie{}, vs
	}

	created, err := s.movies.Create(ctx, m)
	if err != nil {
		return models.Movie{}, fmt.Errorf("create movie: %w", err)
	}
	s.auditAsync(&created.ID, models.AuditMovieCreated, created.Title)
	return created, nil
}

func (s *MovieService) List(ctx context.Context) ([]models.Movie, error) {
	movies, err := s.movies.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	return movies, nil
}

func (s *MovieService) Get(ctx context.Context, id string) (models.Movie, error) {
	return s.movies.GetByID(ctx, id)
}

func (s *MovieService) Delete(ctx context.Context, id string) error {
	if err := s.movies.Delete(ctx, id); err != nil {
		return err
	}
	s.auditAsync(&id, models.AuditMovieDeleted, "")
	return nil
}

// auditAsync records the action on the worker pool so request latency
// never includes the audit write. The id is copied before capture.
func (s *MovieService) auditAsync(entityID *string, action, detail string) {
	var idCopy *string
	if entityID != nil {
		v := *entityID
		idCopy = &v
	}
	s.wp.Submit(func() {
		ctx, cancel := context.WithTimeout(context.Background(), auditTimeout)
		defer cancel()
		err := s.audit.Insert(ctx, models.AuditEntry{
			EntityType: "movie",
			EntityID:   idCopy,
			Action:     action,
			Detail:     detail,
		})
		if err != nil {
			s.log.Warn("audit write failed", "action", action, "error", err)
		}
	})
}

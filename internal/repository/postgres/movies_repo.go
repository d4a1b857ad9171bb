package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/marqueehq/marquee/internal/models"
	"github.com/marqueehq/marquee/internal/repository"
)

type moviesRepo struct{ pool *pgxpool.Pool }

func NewMovies(pool *pgxpool.Pool) repository.Movies {
	return &moviesRepo{pool: pool}
}

func (r *moviesRepo) Create(ctx context.Context, m models.Movie) (models.Movie, error) {
	m.ID = uuid.NewString()
	m.CreatedAt = time.Now().UTC()

	_, err := r.pool.Exec(ctx,
		`INSERT INTO movies(id, title, year, length, director, description, poster_url, category, discount, female_director, created_at)
         VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
		m.ID, m.Title, m.Year, m.Length, m.Director, m.Description, m.PosterURL, m.Category, m.Discount, m.FemaleDirector, m.CreatedAt,
	)
	if err != nil {
		return models.Movie{}, err
	}
	return m, nil
}

func (r *moviesRepo) GetByID(ctx context.Context, id string) (models.Movie, error) {
	var m models.Movie
	err := r.pool.QueryRow(ctx,
		`SELECT id, title, year, length, director, description, poster_url, category, discount, female_director, created_at
         FROM movies WHERE id=$1`, id,
	).Scan(&m.ID, &m.Title, &m.Year, &m.Length, &m.Director, &m.Description, &m.PosterURL, &m.Category, &m.Discount, &m.FemaleDirector, &m.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Movie{}, repository.ErrNotFound
	}
	return m, err
}

func (r *moviesRepo) List(ctx context.Context) ([]models.Movie, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, title, year, length, director, description, poster_url, category, discount, female_director, created_at
         FROM movies ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Movie{}
	for rows.Next() {
		var m models.Movie
		if err := rows.Scan(&m.ID, &m.Title, &m.Year, &m.Length, &m.Director, &m.Description, &m.PosterURL, &m.Category, &m.Discount, &m.FemaleDirector, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *moviesRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM movies WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

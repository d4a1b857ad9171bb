package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/marqueehq/marquee/internal/models"
	"github.com/marqueehq/marquee/internal/repository"
)

// Timestamps are stored as RFC 3339 text. Second precision keeps the column
// lexicographically sortable; rowid breaks same-second ties in list order.
const timeLayout = time.RFC3339

type moviesRepo struct{ db *sqlx.DB }

// movieRow mirrors the movies table. The wire model stays free of db tags;
// conversion happens here.
type movieRow struct {
	ID             string `db:"id"`
	Title          string `db:"title"`
	Year           int    `db:"year"`
	Length         int    `db:"length"`
	Director       string `db:"director"`
	Description    string `db:"description"`
	PosterURL      string `db:"poster_url"`
	Category       string `db:"category"`
	Discount       bool   `db:"discount"`
	FemaleDirector bool   `db:"female_director"`
	CreatedAt      string `db:"created_at"`
}

func toRow(m models.Movie) movieRow {
	return movieRow{
		ID:             m.ID,
		Title:          m.Title,
		Year:           m.Year,
		Length:         m.Length,
		Director:       m.Director,
		Description:    m.Description,
		PosterURL:      m.PosterURL,
		Category:       m.Category,
		Discount:       m.Discount,
		FemaleDirector: m.FemaleDirector,
		CreatedAt:      m.CreatedAt.UTC().Format(timeLayout),
	}
}

func (r movieRow) toModel() (models.Movie, error) {
	createdAt, err := time.Parse(timeLayout, r.CreatedAt)
	if err != nil {
		return models.Movie{}, err
	}
	return models.Movie{
		ID:             r.ID,
		Title:          r.Title,
		Year:           r.Year,
		Length:         r.Length,
		Director:       r.Director,
		Description:    r.Description,
		PosterURL:      r.PosterURL,
		Category:       r.Category,
		Discount:       r.Discount,
		FemaleDirector: r.FemaleDirector,
		CreatedAt:      createdAt,
	}, nil
}

func (r *moviesRepo) Create(ctx context.Context, m models.Movie) (models.Movie, error) {
	m.ID = uuid.NewString()
	m.CreatedAt = time.Now().UTC().Truncate(time.Second)

	_, err := r.db.NamedExecContext(ctx,
		`INSERT INTO movies (id, title, year, length, director, description, poster_url, category, discount, female_director, created_at)
         VALUES (:id, :title, :year, :length, :director, :description, :poster_url, :category, :discount, :female_director, :created_at)`,
		toRow(m))
	if err != nil {
		return models.Movie{}, err
	}
	return m, nil
}

func (r *moviesRepo) GetByID(ctx context.Context, id string) (models.Movie, error) {
	var row movieRow
	err := r.db.GetContext(ctx, &row, `SELECT * FROM movies WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Movie{}, repository.ErrNotFound
	}
	if err != nil {
		return models.Movie{}, err
	}
	return row.toModel()
}

func (r *moviesRepo) List(ctx context.Context) ([]models.Movie, error) {
	var rows []movieRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT * FROM movies ORDER BY created_at DESC, rowid DESC`)
	if err != nil {
		return nil, err
	}

	out := make([]models.Movie, 0, len(rows))
	for _, row := range rows {
		m, err := row.toModel()
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

func (r *moviesRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM movies WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

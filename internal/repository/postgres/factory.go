package postgres

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/marqueehq/marquee/internal/repository"
)

func NewRepositories(pool *pgxpool.Pool) repository.Repositories {
	return repository.Repositories{
		Movies: &moviesRepo{pool},
		Audit:  &auditRepo{pool},
	}
}

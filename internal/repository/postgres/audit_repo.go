package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/marqueehq/marquee/internal/models"
	"github.com/marqueehq/marquee/internal/repository"
)

type auditRepo struct{ pool *pgxpool.Pool }

func NewAudit(pool *pgxpool.Pool) repository.AuditLog {
	return &auditRepo{pool: pool}
}

func (r *auditRepo) Insert(ctx context.Context, e models.AuditEntry) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	_, err := r.pool.Exec(ctx,
		`INSERT INTO audit_log(id, entity_type, entity_id, action, detail, created_at) VALUES($1,$2,$3,$4,$5,$6)`,
		e.ID, e.EntityType, e.EntityID, e.Action, e.Detail, e.CreatedAt,
	)
	return err
}

package sqlite

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/marqueehq/marquee/internal/models"
)

type auditRepo struct{ db *sqlx.DB }

type auditRow struct {
	ID         string  `db:"id"`
	EntityType string  `db:"entity_type"`
	EntityID   *string `db:"entity_id"`
	Action     string  `db:"action"`
	Detail     string  `db:"detail"`
	CreatedAt  string  `db:"created_at"`
}

func (r *auditRepo) Insert(ctx context.Context, e models.AuditEntry) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	_, err := r.db.NamedExecContext(ctx,
		`INSERT INTO audit_log (id, entity_type, entity_id, action, detail, created_at)
         VALUES (:id, :entity_type, :entity_id, :action, :detail, :created_at)`,
		auditRow{
			ID:         e.ID,
			EntityType: e.EntityType,
			EntityID:   e.EntityID,
			Action:     e.Action,
			Detail:     e.Detail,
			CreatedAt:  e.CreatedAt.UTC().Format(timeLayout),
		})
	return err
}

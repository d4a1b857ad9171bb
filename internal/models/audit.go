package models

import "time"

// Audit actions recorded for submission outcomes.
const (
	AuditMovieCreated  = "movie.created"
	AuditMovieRejected = "movie.rejected"
	AuditMovieDeleted  = "movie.deleted"
)

// AuditEntry is one row of the submission audit trail. EntityID is nil for
// rejected candidates, which never receive an identifier.
type AuditEntry struct {
	ID         string    `json:"id"`
	EntityType string    `json:"entityType"`
	EntityID   *string   `json:"entityId,omitempty"`
	Action     string    `json:"action"`
	Detail     string    `json:"detail"`
	CreatedAt  time.Time `json:"createdAt"`
}

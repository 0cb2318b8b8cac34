package domain

import "time"

// Idempotency records the outcome of a create request keyed by
// (scope, key). Scope is the route plus its path parameters
// (e.g. "POST /api/articles/3/comments"), so the same key may be reused
// against different parents. ResourceID points at the row that was created.
type Idempotency struct {
	ID         string    `gorm:"type:varchar(36);primaryKey"`
	Scope      string    `gorm:"type:varchar(255);not null;uniqueIndex:ux_idem_scope_key,priority:1"`
	Key        string    `gorm:"type:varchar(255);not null;uniqueIndex:ux_idem_scope_key,priority:2"`
	ResourceID int       `gorm:"not null"`
	Status     int       `gorm:"not null"`
	CreatedAt  time.Time `gorm:"not null;autoCreateTime"`
	ExpiresAt  time.Time `gorm:"not null;index"`
}

// TableName implements the GORM tabler interface.
func (Idempotency) TableName() string { return "idempotency" }

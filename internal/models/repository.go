package models

import "time"

const (
	VisibilityPublic  = "public"
	VisibilityPrivate = "private"
)

type Repository struct {
	ID          int64      `db:"id"`
	Name        string     `db:"name"`
	OrgID       int64      `db:"org_id"`
	Visibility  string     `db:"visibility"`
	Description *string    `db:"description"`
	CreatedAt   *time.Time `db:"created_at"`
	UpdatedAt   *time.Time `db:"updated_at"`
}

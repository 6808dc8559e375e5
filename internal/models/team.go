package models

import "time"

type Team struct {
	ID          int64      `db:"id"`
	Name        string     `db:"name"`
	OrgID       int64      `db:"org_id"`
	Description *string    `db:"description"`
	CreatedAt   *time.Time `db:"created_at"`
	UpdatedAt   *time.Time `db:"updated_at"`
}

package models

import "time"

// AuditLogEntry is append-only.
type AuditLogEntry struct {
	ID           int64      `db:"id"`
	UserID       int64      `db:"user_id"`
	UserEmail    string     `db:"user_email"`
	Action       string     `db:"action"`
	ResourceType string     `db:"resource_type"`
	ResourceID   *string    `db:"resource_id"`
	IPAddress    string     `db:"ip_address"`
	UserAgent    string     `db:"user_agent"`
	StatusCode   int        `db:"status_code"`
	CreatedAt    *time.Time `db:"created_at"`
}

type AuditFilter struct {
	ResourceType string
	Action       string
	Limit        int
	Offset       int
}

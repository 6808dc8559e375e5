package repo

import (
	"context"
	"strings"

	"github-rebac/internal/lib"
	"github-rebac/internal/models"
	"github.com/jmoiron/sqlx"
)

const auditColumns = `id, user_id, user_email, action, resource_type, resource_id,
	ip_address, user_agent, status_code, created_at`

// AuditRepo never joins caller transactions: entries are written by the
// background consumer on their own.
type AuditRepo struct {
	db *sqlx.DB
}

func NewAuditRepo(db *sqlx.DB) *AuditRepo {
	return &AuditRepo{
		db: db,
	}
}

func (r *AuditRepo) Insert(ctx context.Context, entry *models.AuditLogEntry) error {
	const op = "audit_repo.Insert"

	query := r.db.Rebind(`
		INSERT INTO audit_logs
			(user_id, user_email, action, resource_type, resource_id, ip_address, user_agent, status_code)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)

	_, err := r.db.ExecContext(
		ctx,
		query,
		entry.UserID,
		entry.UserEmail,
		entry.Action,
		entry.ResourceType,
		entry.ResourceID,
		entry.IPAddress,
		entry.UserAgent,
		entry.StatusCode,
	)
	if err != nil {
		return lib.Err(op, err)
	}

	return nil
}

func (r *AuditRepo) ListByUser(ctx context.Context, userID int64, f models.AuditFilter) ([]*models.AuditLogEntry, error) {
	const op = "audit_repo.ListByUser"

	var b strings.Builder
	b.WriteString(`SELECT ` + auditColumns + ` FROM audit_logs WHERE user_id = ?`)
	args := []any{userID}

	if f.ResourceType != "" {
		b.WriteString(` AND resource_type = ?`)
		args = append(args, f.ResourceType)
	}
	if f.Action != "" {
		b.WriteString(` AND action = ?`)
		args = append(args, f.Action)
	}

	b.WriteString(` ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`)
	args = append(args, f.Limit, f.Offset)

	entries := []*models.AuditLogEntry{}
	if err := r.db.SelectContext(ctx, &entries, r.db.Rebind(b.String()), args...); err != nil {
		return nil, lib.Err(op, err)
	}

	return entries, nil
}

func (r *AuditRepo) ListByResource(ctx context.Context, resourceType, resourceID string, limit, offset int) ([]*models.AuditLogEntry, error) {
	const op = "audit_repo.ListByResource"

	query := r.db.Rebind(`
		SELECT ` + auditColumns + `
		FROM audit_logs
		WHERE resource_type = ? AND resource_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ? OFFSET ?
	`)

	entries := []*models.AuditLogEntry{}
	if err := r.db.SelectContext(ctx, &entries, query, resourceType, resourceID, limit, offset); err != nil {
		return nil, lib.Err(op, err)
	}

	return entries, nil
}

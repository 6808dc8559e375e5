package repo

import (
	"context"

	"github-rebac/internal/lib"
	"github-rebac/internal/models"
	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/jmoiron/sqlx"
)

const ruleColumns = `id, repo_id, branch_pattern, required_approvals, require_status_checks,
	require_conversation_resolution, allow_admin_override, created_at`

type BranchProtectionRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewBranchProtectionRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *BranchProtectionRepo {
	return &BranchProtectionRepo{
		db:     db,
		getter: c,
	}
}

func (r *BranchProtectionRepo) Create(ctx context.Context, rule *models.BranchProtectionRule) (*models.BranchProtectionRule, error) {
	const op = "branch_protection_repo.Create"

	query := r.db.Rebind(`
		INSERT INTO branch_protection_rules (
			repo_id, branch_pattern, required_approvals, require_status_checks,
			require_conversation_resolution, allow_admin_override
		) VALUES (?, ?, ?, ?, ?, ?)
		RETURNING ` + ruleColumns)

	var created models.BranchProtectionRule
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(
		ctx,
		&created,
		query,
		rule.RepoID,
		rule.BranchPattern,
		rule.RequiredApprovals,
		rule.RequireStatusChecks,
		rule.RequireConversationResolution,
		rule.AllowAdminOverride,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrRuleExists
		}
		if isForeignKeyViolation(err) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &created, nil
}

func (r *BranchProtectionRepo) ListByRepo(ctx context.Context, repoID int64) ([]*models.BranchProtectionRule, error) {
	const op = "branch_protection_repo.ListByRepo"

	query := r.db.Rebind(`SELECT ` + ruleColumns + ` FROM branch_protection_rules WHERE repo_id = ? ORDER BY id`)

	rules := []*models.BranchProtectionRule{}
	if err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &rules, query, repoID); err != nil {
		return nil, lib.Err(op, err)
	}

	return rules, nil
}

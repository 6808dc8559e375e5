package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github-rebac/internal/lib"
	"github-rebac/internal/models"
	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/jmoiron/sqlx"
)

const pullRequestColumns = `id, repo_id, author_id, title, description, source_branch, target_branch,
	status, merged_at, merged_by, created_at, updated_at`

type PullRequestRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewPullRequestRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *PullRequestRepo {
	return &PullRequestRepo{
		db:     db,
		getter: c,
	}
}

func (r *PullRequestRepo) Create(ctx context.Context, pr *models.PullRequest) (*models.PullRequest, error) {
	const op = "pull_request_repo.Create"

	query := r.db.Rebind(`
		INSERT INTO pull_requests (repo_id, author_id, title, description, source_branch, target_branch, status)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING ` + pullRequestColumns)

	var created models.PullRequest
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(
		ctx,
		&created,
		query,
		pr.RepoID,
		pr.AuthorID,
		pr.Title,
		pr.Description,
		pr.SourceBranch,
		pr.TargetBranch,
		pr.Status,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &created, nil
}

func (r *PullRequestRepo) GetByID(ctx context.Context, prID int64) (*models.PullRequest, error) {
	const op = "pull_request_repo.GetByID"

	query := r.db.Rebind(`SELECT ` + pullRequestColumns + ` FROM pull_requests WHERE id = ?`)

	var pr models.PullRequest
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &pr, query, prID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &pr, nil
}

// MarkAsMerged moves an open pull request to merged in a single statement.
// ErrStateChanged means the row exists but was no longer open.
func (r *PullRequestRepo) MarkAsMerged(ctx context.Context, prID, mergedBy int64, at time.Time) error {
	const op = "pull_request_repo.MarkAsMerged"

	query := r.db.Rebind(`
		UPDATE pull_requests
		SET status = 'merged', merged_at = ?, merged_by = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND status = 'open'
	`)

	res, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, query, at, mergedBy, prID)
	if err != nil {
		return lib.Err(op, err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return lib.Err(op, err)
	}
	if rowsAffected == 0 {
		return ErrStateChanged
	}

	return nil
}

// UpsertReview records the reviewer's verdict, replacing any earlier review
// by the same reviewer on the same pull request.
func (r *PullRequestRepo) UpsertReview(ctx context.Context, review *models.Review) (*models.Review, error) {
	const op = "pull_request_repo.UpsertReview"

	query := r.db.Rebind(`
		INSERT INTO reviews (pr_id, reviewer_id, status, comment)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (pr_id, reviewer_id) DO UPDATE SET
			status = EXCLUDED.status,
			comment = EXCLUDED.comment
		RETURNING id, pr_id, reviewer_id, status, comment, created_at
	`)

	var saved models.Review
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(
		ctx,
		&saved,
		query,
		review.PrID,
		review.ReviewerID,
		review.Status,
		review.Comment,
	)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	return &saved, nil
}

func (r *PullRequestRepo) CountApprovals(ctx context.Context, prID int64) (int, error) {
	const op = "pull_request_repo.CountApprovals"

	query := r.db.Rebind(`SELECT COUNT(*) FROM reviews WHERE pr_id = ? AND status = 'approved'`)

	var count int
	if err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &count, query, prID); err != nil {
		return 0, lib.Err(op, err)
	}

	return count, nil
}

func (r *PullRequestRepo) ListReviews(ctx context.Context, prID int64) ([]*models.Review, error) {
	const op = "pull_request_repo.ListReviews"

	query := r.db.Rebind(`
		SELECT id, pr_id, reviewer_id, status, comment, created_at
		FROM reviews
		WHERE pr_id = ?
		ORDER BY id
	`)

	reviews := []*models.Review{}
	if err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &reviews, query, prID); err != nil {
		return nil, lib.Err(op, err)
	}

	return reviews, nil
}

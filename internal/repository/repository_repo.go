package repo

import (
	"context"
	"database/sql"
	"errors"

	"github-rebac/internal/lib"
	"github-rebac/internal/models"
	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/jmoiron/sqlx"
)

const repositoryColumns = `id, name, org_id, visibility, description, created_at, updated_at`

type RepositoryRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewRepositoryRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *RepositoryRepo {
	return &RepositoryRepo{
		db:     db,
		getter: c,
	}
}

func (r *RepositoryRepo) Create(ctx context.Context, repository *models.Repository) (*models.Repository, error) {
	const op = "repository_repo.Create"

	query := r.db.Rebind(`
		INSERT INTO repositories (name, org_id, visibility, description)
		VALUES (?, ?, ?, ?)
		RETURNING ` + repositoryColumns)

	var created models.Repository
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(
		ctx,
		&created,
		query,
		repository.Name,
		repository.OrgID,
		repository.Visibility,
		repository.Description,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrRepositoryExists
		}
		return nil, lib.Err(op, err)
	}

	return &created, nil
}

func (r *RepositoryRepo) GetByID(ctx context.Context, id int64) (*models.Repository, error) {
	const op = "repository_repo.GetByID"

	query := r.db.Rebind(`SELECT ` + repositoryColumns + ` FROM repositories WHERE id = ?`)

	var repository models.Repository
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &repository, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &repository, nil
}

func (r *RepositoryRepo) List(ctx context.Context) ([]*models.Repository, error) {
	const op = "repository_repo.List"

	query := `SELECT ` + repositoryColumns + ` FROM repositories ORDER BY id`

	repositories := []*models.Repository{}
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &repositories, query)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	return repositories, nil
}

// Update changes only the fields that are non-nil.
func (r *RepositoryRepo) Update(ctx context.Context, id int64, description, visibility *string) (*models.Repository, error) {
	const op = "repository_repo.Update"

	query := r.db.Rebind(`
		UPDATE repositories
		SET description = COALESCE(?, description),
			visibility = COALESCE(?, visibility),
			updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
		RETURNING ` + repositoryColumns)

	var updated models.Repository
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &updated, query, description, visibility, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &updated, nil
}

func (r *RepositoryRepo) Delete(ctx context.Context, id int64) error {
	const op = "repository_repo.Delete"

	res, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(
		ctx,
		r.db.Rebind(`DELETE FROM repositories WHERE id = ?`),
		id,
	)
	if err != nil {
		return lib.Err(op, err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return lib.Err(op, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

package repo

import (
	"context"

	"github-rebac/internal/lib"
	"github-rebac/internal/models"
	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/jmoiron/sqlx"
)

type TeamRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewTeamRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *TeamRepo {
	return &TeamRepo{
		db:     db,
		getter: c,
	}
}

// EnsureOrganization inserts the organization unless a row with that id exists.
func (r *TeamRepo) EnsureOrganization(ctx context.Context, org *models.Organization) error {
	const op = "team_repo.EnsureOrganization"

	query := r.db.Rebind(`
		INSERT INTO organizations (id, name, owner_id)
		VALUES (?, ?, ?)
		ON CONFLICT (id) DO NOTHING
	`)

	_, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, query, org.ID, org.Name, org.OwnerID)
	if err != nil {
		return lib.Err(op, err)
	}

	return nil
}

func (r *TeamRepo) Create(ctx context.Context, team *models.Team) (*models.Team, error) {
	const op = "team_repo.Create"

	query := r.db.Rebind(`
		INSERT INTO teams (name, org_id, description)
		VALUES (?, ?, ?)
		RETURNING id, name, org_id, description, created_at, updated_at
	`)

	var created models.Team
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &created, query, team.Name, team.OrgID, team.Description)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrTeamExists
		}
		return nil, lib.Err(op, err)
	}

	return &created, nil
}

func (r *TeamRepo) List(ctx context.Context) ([]*models.Team, error) {
	const op = "team_repo.List"

	query := `
		SELECT id, name, org_id, description, created_at, updated_at
		FROM teams
		ORDER BY id
	`

	teams := []*models.Team{}
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &teams, query)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	return teams, nil
}

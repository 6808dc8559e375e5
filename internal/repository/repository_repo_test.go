package repo

import (
	"context"
	"testing"

	"github-rebac/internal/models"
	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestRepositoryRepo(t *testing.T) {
	storeSuite(t, func(t *testing.T, db *sqlx.DB) {
		ctx := context.Background()
		r := NewRepositoryRepo(db, trmsqlx.DefaultCtxGetter)

		created, err := r.Create(ctx, &models.Repository{
			Name:        "demo",
			OrgID:       1,
			Visibility:  models.VisibilityPrivate,
			Description: strPtr("demo repository"),
		})
		require.NoError(t, err)
		assert.NotZero(t, created.ID)
		assert.Equal(t, "demo", created.Name)
		assert.Equal(t, models.VisibilityPrivate, created.Visibility)
		assert.NotNil(t, created.CreatedAt)

		t.Run("Create_Duplicate", func(t *testing.T) {
			_, err := r.Create(ctx, &models.Repository{Name: "demo", OrgID: 1, Visibility: models.VisibilityPublic})
			require.ErrorIs(t, err, ErrRepositoryExists)
		})

		t.Run("GetByID", func(t *testing.T) {
			got, err := r.GetByID(ctx, created.ID)
			require.NoError(t, err)
			assert.Equal(t, created.Name, got.Name)
			require.NotNil(t, got.Description)
			assert.Equal(t, "demo repository", *got.Description)
		})

		t.Run("GetByID_NotFound", func(t *testing.T) {
			_, err := r.GetByID(ctx, 9999)
			require.ErrorIs(t, err, ErrNotFound)
		})

		t.Run("Update_KeepsNilFields", func(t *testing.T) {
			updated, err := r.Update(ctx, created.ID, nil, strPtr(models.VisibilityPublic))
			require.NoError(t, err)
			assert.Equal(t, models.VisibilityPublic, updated.Visibility)
			require.NotNil(t, updated.Description)
			assert.Equal(t, "demo repository", *updated.Description)
		})

		t.Run("Update_NotFound", func(t *testing.T) {
			_, err := r.Update(ctx, 9999, strPtr("x"), nil)
			require.ErrorIs(t, err, ErrNotFound)
		})

		t.Run("List", func(t *testing.T) {
			_, err := r.Create(ctx, &models.Repository{Name: "second", OrgID: 1, Visibility: models.VisibilityPublic})
			require.NoError(t, err)

			all, err := r.List(ctx)
			require.NoError(t, err)
			assert.Len(t, all, 2)
			assert.Equal(t, "demo", all[0].Name)
		})

		t.Run("Delete", func(t *testing.T) {
			require.NoError(t, r.Delete(ctx, created.ID))
			require.ErrorIs(t, r.Delete(ctx, created.ID), ErrNotFound)
		})
	})
}

func TestUserRepo_GetByEmail(t *testing.T) {
	storeSuite(t, func(t *testing.T, db *sqlx.DB) {
		ctx := context.Background()
		r := NewUserRepo(db, trmsqlx.DefaultCtxGetter)

		user, err := r.GetByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, "Alice", user.Name)
		assert.NotZero(t, user.ID)

		_, err = r.GetByEmail(ctx, "nobody@example.com")
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestTeamRepo(t *testing.T) {
	storeSuite(t, func(t *testing.T, db *sqlx.DB) {
		ctx := context.Background()
		r := NewTeamRepo(db, trmsqlx.DefaultCtxGetter)

		org := &models.Organization{ID: 7, Name: "Org 7", OwnerID: 1}
		require.NoError(t, r.EnsureOrganization(ctx, org))
		// second call is a no-op
		require.NoError(t, r.EnsureOrganization(ctx, &models.Organization{ID: 7, Name: "Other", OwnerID: 2}))

		team, err := r.Create(ctx, &models.Team{Name: "platform", OrgID: 7, Description: strPtr("infra")})
		require.NoError(t, err)
		assert.NotZero(t, team.ID)
		assert.Equal(t, int64(7), team.OrgID)

		_, err = r.Create(ctx, &models.Team{Name: "platform", OrgID: 7})
		require.ErrorIs(t, err, ErrTeamExists)

		teams, err := r.List(ctx)
		require.NoError(t, err)
		require.Len(t, teams, 1)
		assert.Equal(t, "platform", teams[0].Name)
	})
}

package team

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github-rebac/internal/lib"
	"github-rebac/internal/lib/sl"
	"github-rebac/internal/models"
	"github-rebac/internal/policy"
	"github-rebac/internal/service"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=TeamStore
type TeamStore interface {
	EnsureOrganization(ctx context.Context, org *models.Organization) error
	Create(ctx context.Context, team *models.Team) (*models.Team, error)
}

type TeamService struct {
	log   *slog.Logger
	trm   service.TransactionManager
	teams TeamStore
	rel   policy.Relationships
}

func NewTeamService(
	log *slog.Logger,
	trm service.TransactionManager,
	teams TeamStore,
	rel policy.Relationships,
) *TeamService {
	return &TeamService{
		log:   log,
		trm:   trm,
		teams: teams,
		rel:   rel,
	}
}

type CreateInput struct {
	Name        string
	OrgID       int64
	Description *string
}

// Create stores the team, creating its organization on first use, and makes
// creator the team admin in the policy engine.
func (s *TeamService) Create(ctx context.Context, creator *models.User, in CreateInput) (*models.Team, error) {
	const op = "service.team.Create"

	var created *models.Team
	err := s.trm.Do(ctx, func(ctx context.Context) error {
		err := s.teams.EnsureOrganization(ctx, &models.Organization{
			ID:      in.OrgID,
			Name:    fmt.Sprintf("Org %d", in.OrgID),
			OwnerID: creator.ID,
		})
		if err != nil {
			return err
		}

		created, err = s.teams.Create(ctx, &models.Team{
			Name:        in.Name,
			OrgID:       in.OrgID,
			Description: in.Description,
		})
		return err
	})
	if err != nil {
		return nil, lib.Err(op, err)
	}

	object := policy.Team(created.ID)
	err = s.rel.CreateResourceInstance(ctx, policy.ResourceInstance{
		Resource:   policy.KindTeam,
		Key:        strconv.FormatInt(created.ID, 10),
		Attributes: map[string]any{"name": created.Name},
	})
	if err != nil {
		s.log.Warn("policy sync failed: resource instance", slog.String("object", object), sl.Err(err))
	}

	err = s.rel.CreateTuple(ctx, policy.Tuple{
		Subject:  policy.User(creator.Email),
		Relation: policy.ActionAdmin,
		Object:   object,
	})
	if err != nil {
		s.log.Warn("policy sync failed: admin tuple", slog.String("object", object), sl.Err(err))
	}

	return created, nil
}

// AddMember reports whether the policy engine accepted the membership.
func (s *TeamService) AddMember(ctx context.Context, teamID int64, email string) bool {
	return s.write(ctx, "add team member", s.rel.CreateTuple, policy.Tuple{
		Subject:  policy.User(email),
		Relation: policy.RelationMember,
		Object:   policy.Team(teamID),
	})
}

func (s *TeamService) RemoveMember(ctx context.Context, teamID int64, email string) bool {
	return s.write(ctx, "remove team member", s.rel.DeleteTuple, policy.Tuple{
		Subject:  policy.User(email),
		Relation: policy.RelationMember,
		Object:   policy.Team(teamID),
	})
}

// GrantRepositoryAccess gives every member of the team role on the repository.
func (s *TeamService) GrantRepositoryAccess(ctx context.Context, teamID, repoID int64, role string) (bool, error) {
	const op = "service.team.GrantRepositoryAccess"

	if !policy.IsRepositoryRole(role) {
		return false, lib.Err(op, service.ErrInvalidRole)
	}

	return s.write(ctx, "grant team access", s.rel.CreateTuple, policy.Tuple{
		Subject:  policy.Team(teamID),
		Relation: role,
		Object:   policy.Repository(repoID),
	}), nil
}

func (s *TeamService) write(ctx context.Context, what string, fn func(context.Context, policy.Tuple) error, t policy.Tuple) bool {
	if err := fn(ctx, t); err != nil {
		s.log.Warn("failed to "+what,
			slog.String("subject", t.Subject),
			slog.String("relation", t.Relation),
			slog.String("object", t.Object),
			sl.Err(err),
		)
		return false
	}
	return true
}

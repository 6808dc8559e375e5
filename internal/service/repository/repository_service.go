package repository

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"strconv"
	"time"

	"github-rebac/internal/lib"
	"github-rebac/internal/lib/sl"
	"github-rebac/internal/models"
	"github-rebac/internal/policy"
	repo "github-rebac/internal/repository"
	"github-rebac/internal/service"
)

const storageUnavailableMessage = "Database not available - setup PostgreSQL to see repositories"

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=RepositoryStore
type RepositoryStore interface {
	Create(ctx context.Context, repository *models.Repository) (*models.Repository, error)
	GetByID(ctx context.Context, id int64) (*models.Repository, error)
	List(ctx context.Context) ([]*models.Repository, error)
	Update(ctx context.Context, id int64, description, visibility *string) (*models.Repository, error)
	Delete(ctx context.Context, id int64) error
}

type RepositoryService struct {
	log    *slog.Logger
	store  RepositoryStore
	authz  service.Authorizer
	oracle policy.Oracle
	rel    policy.Relationships
}

func NewRepositoryService(
	log *slog.Logger,
	store RepositoryStore,
	authz service.Authorizer,
	oracle policy.Oracle,
	rel policy.Relationships,
) *RepositoryService {
	return &RepositoryService{
		log:    log,
		store:  store,
		authz:  authz,
		oracle: oracle,
		rel:    rel,
	}
}

type CreateInput struct {
	Name        string
	OrgID       int64
	Visibility  string
	Description *string
}

// Create stores the repository and makes owner its admin in the policy
// engine. A storage failure other than a duplicate name still yields a
// repository, with a random id, so the policy side can be exercised without
// a database.
func (s *RepositoryService) Create(ctx context.Context, owner *models.User, in CreateInput) (*models.Repository, error) {
	const op = "service.repository.Create"

	if in.Visibility == "" {
		in.Visibility = models.VisibilityPrivate
	}
	if !validVisibility(in.Visibility) {
		return nil, lib.Err(op, service.ErrInvalidVisibility)
	}

	r := &models.Repository{
		Name:        in.Name,
		OrgID:       in.OrgID,
		Visibility:  in.Visibility,
		Description: in.Description,
	}

	created, err := s.store.Create(ctx, r)
	if err != nil {
		if errors.Is(err, repo.ErrRepositoryExists) {
			return nil, lib.Err(op, err)
		}

		s.log.Warn("database not available, using fabricated repository", sl.Err(err))
		now := time.Now().UTC()
		r.ID = rand.Int64N(1000) + 1
		r.CreatedAt = &now
		created = r
	}

	s.syncOwner(ctx, owner, created)

	return created, nil
}

func (s *RepositoryService) syncOwner(ctx context.Context, owner *models.User, r *models.Repository) {
	subject := policy.User(owner.Email)
	object := policy.Repository(r.ID)

	err := s.rel.CreateTuple(ctx, policy.Tuple{Subject: subject, Relation: policy.ActionAdmin, Object: object})
	if err != nil {
		s.log.Warn("policy sync failed: owner tuple", slog.String("object", object), sl.Err(err))
	}

	err = s.rel.CreateResourceInstance(ctx, policy.ResourceInstance{
		Resource: policy.KindRepository,
		Key:      strconv.FormatInt(r.ID, 10),
		Attributes: map[string]any{
			"name":       r.Name,
			"visibility": r.Visibility,
		},
	})
	if err != nil {
		s.log.Warn("policy sync failed: resource instance", slog.String("object", object), sl.Err(err))
	}

	allowed, err := s.oracle.Check(ctx, subject, policy.ActionAdmin, object)
	if err != nil {
		s.log.Warn("policy sync verification failed", slog.String("object", object), sl.Err(err))
		return
	}
	s.log.Info("policy sync verified",
		slog.String("subject", subject),
		slog.String("object", object),
		slog.Bool("admin", allowed),
	)
}

type RepositoryList struct {
	Repositories []*models.Repository
	Message      string
}

// List returns the repositories user can read. When storage is unavailable
// the list is empty and Message explains why.
func (s *RepositoryService) List(ctx context.Context, user *models.User) (*RepositoryList, error) {
	const op = "service.repository.List"

	all, err := s.store.List(ctx)
	if err != nil {
		s.log.Warn("database not available, returning empty list", sl.Err(err))
		return &RepositoryList{
			Repositories: []*models.Repository{},
			Message:      storageUnavailableMessage,
		}, nil
	}

	visible := make([]*models.Repository, 0, len(all))
	for _, r := range all {
		allowed, err := s.authz.Allowed(ctx, policy.User(user.Email), policy.ActionRead, policy.Repository(r.ID))
		if err != nil {
			return nil, lib.Err(op, err)
		}
		if allowed {
			visible = append(visible, r)
		}
	}

	return &RepositoryList{Repositories: visible}, nil
}

func (s *RepositoryService) Get(ctx context.Context, id int64) (*models.Repository, error) {
	const op = "service.repository.Get"

	r, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, lib.Err(op, err)
	}
	return r, nil
}

type UpdateInput struct {
	Description *string
	Visibility  *string
}

func (s *RepositoryService) Update(ctx context.Context, id int64, in UpdateInput) (*models.Repository, error) {
	const op = "service.repository.Update"

	if in.Visibility != nil && !validVisibility(*in.Visibility) {
		return nil, lib.Err(op, service.ErrInvalidVisibility)
	}

	r, err := s.store.Update(ctx, id, in.Description, in.Visibility)
	if err != nil {
		return nil, lib.Err(op, err)
	}
	return r, nil
}

func (s *RepositoryService) Delete(ctx context.Context, id int64) error {
	const op = "service.repository.Delete"

	if err := s.store.Delete(ctx, id); err != nil {
		return lib.Err(op, err)
	}
	return nil
}

// AddCollaborator grants role on the repository. The grant is best-effort:
// synced is false when the policy engine rejected it.
func (s *RepositoryService) AddCollaborator(ctx context.Context, repoID int64, email, role string) (synced bool, err error) {
	const op = "service.repository.AddCollaborator"

	if !policy.IsRepositoryRole(role) {
		return false, lib.Err(op, service.ErrInvalidRole)
	}

	err = s.rel.CreateTuple(ctx, policy.Tuple{
		Subject:  policy.User(email),
		Relation: role,
		Object:   policy.Repository(repoID),
	})
	if err != nil {
		s.log.Warn("failed to add collaborator",
			slog.Int64("repo_id", repoID),
			slog.String("user_email", email),
			slog.String("role", role),
			sl.Err(err),
		)
		return false, nil
	}

	return true, nil
}

// RemoveCollaborator drops every repository role held by email. Missing
// relations are not an error.
func (s *RepositoryService) RemoveCollaborator(ctx context.Context, repoID int64, email string) {
	for _, role := range policy.RepositoryRoles {
		err := s.rel.DeleteTuple(ctx, policy.Tuple{
			Subject:  policy.User(email),
			Relation: role,
			Object:   policy.Repository(repoID),
		})
		if err != nil {
			s.log.Debug("collaborator relation not removed",
				slog.String("role", role),
				slog.Int64("repo_id", repoID),
				sl.Err(err),
			)
		}
	}
}

func validVisibility(v string) bool {
	return v == models.VisibilityPublic || v == models.VisibilityPrivate
}

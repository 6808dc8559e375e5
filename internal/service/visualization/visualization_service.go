package visualization

import (
	"context"
	"log/slog"
	"strconv"

	"github-rebac/internal/lib"
	"github-rebac/internal/lib/sl"
	"github-rebac/internal/models"
	"github-rebac/internal/policy"
	"github-rebac/internal/service"
)

const (
	DefaultLimit = 50
	MaxLimit     = 500

	// auditResourceRepositories is the resource type the audit middleware
	// records for repository routes.
	auditResourceRepositories = "repositories"
)

var graphActions = []string{policy.ActionRead, policy.ActionWrite, policy.ActionAdmin}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=RepositoryLister
type RepositoryLister interface {
	List(ctx context.Context) ([]*models.Repository, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=TeamLister
type TeamLister interface {
	List(ctx context.Context) ([]*models.Team, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=AuditReader
type AuditReader interface {
	ListByUser(ctx context.Context, userID int64, f models.AuditFilter) ([]*models.AuditLogEntry, error)
	ListByResource(ctx context.Context, resourceType, resourceID string, limit, offset int) ([]*models.AuditLogEntry, error)
}

type VisualizationService struct {
	log    *slog.Logger
	repos  RepositoryLister
	teams  TeamLister
	audit  AuditReader
	authz  service.Authorizer
	oracle policy.Oracle
}

func NewVisualizationService(
	log *slog.Logger,
	repos RepositoryLister,
	teams TeamLister,
	audit AuditReader,
	authz service.Authorizer,
	oracle policy.Oracle,
) *VisualizationService {
	return &VisualizationService{
		log:    log,
		repos:  repos,
		teams:  teams,
		audit:  audit,
		authz:  authz,
		oracle: oracle,
	}
}

type RepoAccess struct {
	RepoID      int64
	RepoName    string
	Permissions []string
}

type GraphSummary struct {
	TotalRepos  int
	DirectRepos int
	TeamRepos   int
	Teams       int
}

type PermissionGraph struct {
	User         string
	DirectAccess []RepoAccess
	TeamAccess   []RepoAccess
	Summary      GraphSummary
}

// PermissionGraph lists the repositories user can reach and how. Access is
// attributed to teams whenever the user belongs to any team; the engine does
// not say which relation granted it.
func (s *VisualizationService) PermissionGraph(ctx context.Context, user *models.User) (*PermissionGraph, error) {
	const op = "service.visualization.PermissionGraph"

	repos, err := s.repos.List(ctx)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	allTeams, err := s.teams.List(ctx)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	subject := policy.User(user.Email)

	memberOf := 0
	for _, t := range allTeams {
		ok, err := s.check(ctx, subject, policy.RelationMember, policy.Team(t.ID))
		if err != nil {
			return nil, lib.Err(op, err)
		}
		if ok {
			memberOf++
		}
	}

	graph := &PermissionGraph{
		User:         user.Email,
		DirectAccess: []RepoAccess{},
		TeamAccess:   []RepoAccess{},
		Summary:      GraphSummary{Teams: memberOf},
	}

	for _, r := range repos {
		perms := make([]string, 0, len(graphActions))
		for _, action := range graphActions {
			ok, err := s.check(ctx, subject, action, policy.Repository(r.ID))
			if err != nil {
				return nil, lib.Err(op, err)
			}
			if ok {
				perms = append(perms, action)
			}
		}
		if len(perms) == 0 {
			continue
		}

		access := RepoAccess{RepoID: r.ID, RepoName: r.Name, Permissions: perms}
		graph.Summary.TotalRepos++
		if memberOf > 0 {
			graph.TeamAccess = append(graph.TeamAccess, access)
			graph.Summary.TeamRepos++
		} else {
			graph.DirectAccess = append(graph.DirectAccess, access)
			graph.Summary.DirectRepos++
		}
	}

	return graph, nil
}

func (s *VisualizationService) check(ctx context.Context, subject, action, object string) (bool, error) {
	ok, err := s.oracle.Check(ctx, subject, action, object)
	if err != nil {
		s.log.Error("permission check failed", slog.String("object", object), sl.Err(err))
		return false, service.ErrPolicyUnavailable
	}
	return ok, nil
}

type AuditPage struct {
	Logs   []*models.AuditLogEntry
	Limit  int
	Offset int
}

// AuditLogs returns the caller's own audit trail, newest first.
func (s *VisualizationService) AuditLogs(ctx context.Context, user *models.User, f models.AuditFilter) (*AuditPage, error) {
	const op = "service.visualization.AuditLogs"

	f.Limit, f.Offset = clampPage(f.Limit, f.Offset)

	logs, err := s.audit.ListByUser(ctx, user.ID, f)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	return &AuditPage{Logs: logs, Limit: f.Limit, Offset: f.Offset}, nil
}

// RepositoryAuditLogs returns every recorded request against the repository.
// Only repository admins may read it.
func (s *VisualizationService) RepositoryAuditLogs(ctx context.Context, user *models.User, repoID int64, limit, offset int) (*AuditPage, error) {
	const op = "service.visualization.RepositoryAuditLogs"

	err := service.Require(ctx, s.authz, user.Email, policy.ActionAdmin, policy.Repository(repoID),
		"Only repo admins can view audit logs")
	if err != nil {
		return nil, lib.Err(op, err)
	}

	limit, offset = clampPage(limit, offset)

	logs, err := s.audit.ListByResource(ctx, auditResourceRepositories, strconv.FormatInt(repoID, 10), limit, offset)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	return &AuditPage{Logs: logs, Limit: limit, Offset: offset}, nil
}

func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

package visualization_test

import (
	"context"
	"errors"
	"testing"

	"github-rebac/internal/lib/sl"
	"github-rebac/internal/models"
	"github-rebac/internal/policy"
	"github-rebac/internal/service"
	"github-rebac/internal/service/mocks"
	"github-rebac/internal/service/visualization"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var carol = &models.User{ID: 3, Email: "carol@example.com", Name: "carol"}

type fixture struct {
	repos *mocks.RepositoryLister
	teams *mocks.TeamLister
	audit *mocks.AuditReader
	svc   *visualization.VisualizationService
}

func newFixture(t *testing.T, engine *policy.Scripted) *fixture {
	t.Helper()
	f := &fixture{
		repos: mocks.NewRepositoryLister(t),
		teams: mocks.NewTeamLister(t),
		audit: mocks.NewAuditReader(t),
	}
	f.svc = visualization.NewVisualizationService(
		sl.Discard(), f.repos, f.teams, f.audit,
		policy.NewAuthorizer(sl.Discard(), engine, false), engine,
	)
	return f
}

func TestVisualizationService_PermissionGraph_Direct(t *testing.T) {
	ctx := context.Background()
	subject := policy.User(carol.Email)
	engine := policy.NewScripted(false).
		Set(subject, policy.ActionRead, policy.Repository(1), true).
		Set(subject, policy.ActionWrite, policy.Repository(1), true)
	f := newFixture(t, engine)

	f.repos.On("List", ctx).Return([]*models.Repository{{ID: 1, Name: "api"}, {ID: 2, Name: "web"}}, nil).Once()
	f.teams.On("List", ctx).Return([]*models.Team{{ID: 5, Name: "ops"}}, nil).Once()

	graph, err := f.svc.PermissionGraph(ctx, carol)
	require.NoError(t, err)

	assert.Equal(t, carol.Email, graph.User)
	require.Len(t, graph.DirectAccess, 1)
	assert.Equal(t, visualization.RepoAccess{RepoID: 1, RepoName: "api", Permissions: []string{"read", "write"}}, graph.DirectAccess[0])
	assert.Empty(t, graph.TeamAccess)
	assert.Equal(t, visualization.GraphSummary{TotalRepos: 1, DirectRepos: 1}, graph.Summary)
}

func TestVisualizationService_PermissionGraph_TeamMember(t *testing.T) {
	ctx := context.Background()
	subject := policy.User(carol.Email)
	engine := policy.NewScripted(false).
		Set(subject, policy.RelationMember, policy.Team(5), true).
		Set(subject, policy.ActionRead, policy.Repository(2), true)
	f := newFixture(t, engine)

	f.repos.On("List", ctx).Return([]*models.Repository{{ID: 1, Name: "api"}, {ID: 2, Name: "web"}}, nil).Once()
	f.teams.On("List", ctx).Return([]*models.Team{{ID: 5, Name: "ops"}, {ID: 6, Name: "qa"}}, nil).Once()

	graph, err := f.svc.PermissionGraph(ctx, carol)
	require.NoError(t, err)

	assert.Empty(t, graph.DirectAccess)
	require.Len(t, graph.TeamAccess, 1)
	assert.Equal(t, int64(2), graph.TeamAccess[0].RepoID)
	assert.Equal(t, visualization.GraphSummary{TotalRepos: 1, TeamRepos: 1, Teams: 1}, graph.Summary)
}

func TestVisualizationService_PermissionGraph_EngineDown(t *testing.T) {
	ctx := context.Background()
	engine := policy.NewScripted(false).
		Fail(policy.User(carol.Email), policy.ActionRead, policy.Repository(1), errors.New("timeout"))
	f := newFixture(t, engine)

	f.repos.On("List", ctx).Return([]*models.Repository{{ID: 1}}, nil).Once()
	f.teams.On("List", ctx).Return([]*models.Team{}, nil).Once()

	_, err := f.svc.PermissionGraph(ctx, carol)
	require.ErrorIs(t, err, service.ErrPolicyUnavailable)
}

func TestVisualizationService_AuditLogs(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, policy.NewScripted(false))

	entries := []*models.AuditLogEntry{{ID: 1, UserID: carol.ID, Action: "POST", ResourceType: "repositories"}}
	f.audit.On("ListByUser", ctx, carol.ID, models.AuditFilter{ResourceType: "repositories", Limit: 50}).Return(entries, nil).Once()

	page, err := f.svc.AuditLogs(ctx, carol, models.AuditFilter{ResourceType: "repositories"})
	require.NoError(t, err)
	assert.Equal(t, entries, page.Logs)
	assert.Equal(t, 50, page.Limit)
	assert.Equal(t, 0, page.Offset)
}

func TestVisualizationService_AuditLogs_ClampsLimit(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, policy.NewScripted(false))

	f.audit.On("ListByUser", ctx, carol.ID, models.AuditFilter{Limit: visualization.MaxLimit, Offset: 0}).
		Return([]*models.AuditLogEntry{}, nil).Once()

	page, err := f.svc.AuditLogs(ctx, carol, models.AuditFilter{Limit: 10000, Offset: -5})
	require.NoError(t, err)
	assert.Equal(t, visualization.MaxLimit, page.Limit)
}

func TestVisualizationService_RepositoryAuditLogs(t *testing.T) {
	ctx := context.Background()
	engine := policy.NewScripted(false).Set(policy.User(carol.Email), policy.ActionAdmin, policy.Repository(4), true)
	f := newFixture(t, engine)

	f.audit.On("ListByResource", ctx, "repositories", "4", 20, 40).Return([]*models.AuditLogEntry{{ID: 9}}, nil).Once()

	page, err := f.svc.RepositoryAuditLogs(ctx, carol, 4, 20, 40)
	require.NoError(t, err)
	assert.Len(t, page.Logs, 1)
	assert.Equal(t, 40, page.Offset)
}

func TestVisualizationService_RepositoryAuditLogs_NotAdmin(t *testing.T) {
	f := newFixture(t, policy.NewScripted(false))

	_, err := f.svc.RepositoryAuditLogs(context.Background(), carol, 4, 0, 0)
	require.ErrorIs(t, err, service.ErrForbidden)
}

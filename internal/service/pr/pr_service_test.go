package pr_test

import (
	"context"
	"errors"
	"testing"

	"github-rebac/internal/lib/sl"
	"github-rebac/internal/models"
	"github-rebac/internal/policy"
	repo "github-rebac/internal/repository"
	"github-rebac/internal/service"
	"github-rebac/internal/service/mocks"
	"github-rebac/internal/service/pr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	alice = &models.User{ID: 1, Email: "alice@example.com", Name: "alice"}
	bob   = &models.User{ID: 2, Email: "bob@example.com", Name: "bob"}
)

type fixture struct {
	prs    *mocks.PullRequestStore
	rules  *mocks.BranchProtectionStore
	trm    *mocks.MockManager
	engine *policy.Scripted
	svc    *pr.PullRequestService
}

func newFixture(t *testing.T, engine *policy.Scripted) *fixture {
	t.Helper()

	f := &fixture{
		prs:    mocks.NewPullRequestStore(t),
		rules:  mocks.NewBranchProtectionStore(t),
		trm:    &mocks.MockManager{},
		engine: engine,
	}
	f.trm.Test(t)
	t.Cleanup(func() { f.trm.AssertExpectations(t) })

	f.svc = pr.NewPullRequestService(
		sl.Discard(),
		f.trm,
		f.prs,
		f.rules,
		policy.NewAuthorizer(sl.Discard(), engine, false),
		engine,
		engine,
	)
	return f
}

// runTx makes the transaction manager run the closure and return its error.
func (f *fixture) runTx(ctx context.Context) {
	f.trm.On("Do", ctx, mock.AnythingOfType("func(context.Context) error")).
		Return(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).Once()
}

func openPR(target string) *models.PullRequest {
	return &models.PullRequest{
		ID:           10,
		RepoID:       7,
		AuthorID:     alice.ID,
		Title:        "Add search",
		SourceBranch: "feature/search",
		TargetBranch: target,
		Status:       models.PRStatusOpen,
	}
}

func TestPullRequestService_Create_Success(t *testing.T) {
	ctx := context.Background()
	engine := policy.NewScripted(false).Set(policy.User(alice.Email), policy.ActionWrite, policy.Repository(7), true)
	f := newFixture(t, engine)

	f.prs.On("Create", ctx, mock.MatchedBy(func(p *models.PullRequest) bool {
		return p.RepoID == 7 && p.AuthorID == alice.ID && p.Status == models.PRStatusOpen && p.TargetBranch == "main"
	})).Return(func(_ context.Context, p *models.PullRequest) (*models.PullRequest, error) {
		created := *p
		created.ID = 10
		return &created, nil
	}).Once()

	created, err := f.svc.Create(ctx, alice, pr.CreateInput{
		RepoID: 7, Title: "Add search", SourceBranch: "feature/search", TargetBranch: "main",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), created.ID)
	assert.Equal(t, models.PRStatusOpen, created.Status)

	assert.True(t, engine.HasTuple(policy.Tuple{
		Subject: policy.User(alice.Email), Relation: policy.RelationAuthor, Object: policy.PullRequest(10),
	}))
	require.Len(t, engine.Instances(), 1)
	assert.Equal(t, policy.KindPullRequest, engine.Instances()[0].Resource)
	assert.Equal(t, "10", engine.Instances()[0].Key)
}

func TestPullRequestService_Create_Forbidden(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, policy.NewScripted(false))

	_, err := f.svc.Create(ctx, bob, pr.CreateInput{RepoID: 7, Title: "x", SourceBranch: "a", TargetBranch: "main"})
	require.ErrorIs(t, err, service.ErrForbidden)
	f.prs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPullRequestService_Create_PolicySyncFailureIgnored(t *testing.T) {
	ctx := context.Background()
	engine := policy.NewScripted(true).FailWrites(errors.New("permit down"))
	f := newFixture(t, engine)

	f.prs.On("Create", ctx, mock.Anything).Return(&models.PullRequest{ID: 11, RepoID: 7, Status: models.PRStatusOpen}, nil).Once()

	created, err := f.svc.Create(ctx, alice, pr.CreateInput{RepoID: 7, Title: "x", SourceBranch: "a", TargetBranch: "main"})
	require.NoError(t, err)
	assert.Equal(t, int64(11), created.ID)
}

func TestPullRequestService_Approve_Success(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, policy.NewScripted(true))
	comment := "lgtm"

	f.prs.On("GetByID", ctx, int64(10)).Return(openPR("main"), nil).Once()
	f.prs.On("UpsertReview", ctx, mock.MatchedBy(func(r *models.Review) bool {
		return r.PrID == 10 && r.ReviewerID == bob.ID && r.Status == models.ReviewApproved && *r.Comment == comment
	})).Return(&models.Review{ID: 1, PrID: 10, ReviewerID: bob.ID, Status: models.ReviewApproved, Comment: &comment}, nil).Once()

	review, err := f.svc.Approve(ctx, bob, 10, &comment)
	require.NoError(t, err)
	assert.Equal(t, models.ReviewApproved, review.Status)
}

func TestPullRequestService_Approve_SelfApprovalRejected(t *testing.T) {
	ctx := context.Background()

	for _, merged := range []bool{false, true} {
		engine := policy.NewScripted(true)
		f := newFixture(t, engine)

		p := openPR("main")
		if merged {
			p.Status = models.PRStatusMerged
		}
		f.prs.On("GetByID", ctx, int64(10)).Return(p, nil).Once()

		_, err := f.svc.Approve(ctx, alice, 10, nil)
		require.ErrorIs(t, err, service.ErrSelfApproval)
		f.prs.AssertNotCalled(t, "UpsertReview", mock.Anything, mock.Anything)
	}
}

func TestPullRequestService_Approve_AuthorWithoutReadIsForbidden(t *testing.T) {
	ctx := context.Background()
	engine := policy.NewScripted(true).Set(policy.User(alice.Email), policy.ActionRead, policy.Repository(7), false)
	f := newFixture(t, engine)

	f.prs.On("GetByID", ctx, int64(10)).Return(openPR("main"), nil).Once()

	_, err := f.svc.Approve(ctx, alice, 10, nil)
	require.ErrorIs(t, err, service.ErrForbidden)
	require.NotErrorIs(t, err, service.ErrSelfApproval)
	f.prs.AssertNotCalled(t, "UpsertReview", mock.Anything, mock.Anything)
}

func TestPullRequestService_Approve_NotFound(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, policy.NewScripted(true))

	f.prs.On("GetByID", ctx, int64(99)).Return(nil, repo.ErrNotFound).Once()

	_, err := f.svc.Approve(ctx, bob, 99, nil)
	require.ErrorIs(t, err, repo.ErrNotFound)
}

func TestPullRequestService_Approve_NoReadAccess(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, policy.NewScripted(false))

	f.prs.On("GetByID", ctx, int64(10)).Return(openPR("main"), nil).Once()

	_, err := f.svc.Approve(ctx, bob, 10, nil)
	require.ErrorIs(t, err, service.ErrForbidden)
}

func TestPullRequestService_Merge_NoRuleMergesUnconditionally(t *testing.T) {
	ctx := context.Background()
	engine := policy.NewScripted(false).Set(policy.User(alice.Email), policy.ActionWrite, policy.Repository(7), true)
	f := newFixture(t, engine)

	f.prs.On("GetByID", ctx, int64(10)).Return(openPR("main"), nil).Once()
	f.rules.On("ListByRepo", ctx, int64(7)).Return([]*models.BranchProtectionRule{
		{ID: 1, RepoID: 7, BranchPattern: "release/%", RequiredApprovals: 3},
	}, nil).Once()
	f.prs.On("MarkAsMerged", ctx, int64(10), alice.ID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	f.runTx(ctx)

	merged, err := f.svc.Merge(ctx, alice, 10)
	require.NoError(t, err)
	assert.Equal(t, models.PRStatusMerged, merged.Status)
	require.NotNil(t, merged.MergedBy)
	assert.Equal(t, alice.ID, *merged.MergedBy)
	assert.NotNil(t, merged.MergedAt)

	f.prs.AssertNotCalled(t, "CountApprovals", mock.Anything, mock.Anything)
	for _, c := range engine.Checks() {
		assert.NotEqual(t, policy.ActionAdmin, c.Relation, "admin check without a matching rule")
	}
}

func TestPullRequestService_Merge_ApprovalThreshold(t *testing.T) {
	tests := []struct {
		name      string
		required  int
		approvals int
		isAdmin   bool
		override  bool
		merged    bool
	}{
		{name: "enough approvals", required: 2, approvals: 2, merged: true},
		{name: "too few approvals", required: 2, approvals: 1, merged: false},
		{name: "admin override", required: 2, approvals: 0, isAdmin: true, override: true, merged: true},
		{name: "admin without override", required: 2, approvals: 0, isAdmin: true, merged: false},
		{name: "override but not admin", required: 1, approvals: 0, override: true, merged: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			engine := policy.NewScripted(false).
				Set(policy.User(bob.Email), policy.ActionWrite, policy.Repository(7), true).
				Set(policy.User(bob.Email), policy.ActionAdmin, policy.Repository(7), tt.isAdmin)
			f := newFixture(t, engine)

			f.prs.On("GetByID", ctx, int64(10)).Return(openPR("release/1.0"), nil).Once()
			f.rules.On("ListByRepo", ctx, int64(7)).Return([]*models.BranchProtectionRule{{
				ID: 1, RepoID: 7, BranchPattern: "release/%",
				RequiredApprovals: tt.required, AllowAdminOverride: tt.override,
			}}, nil).Once()
			f.prs.On("CountApprovals", ctx, int64(10)).Return(tt.approvals, nil).Once()
			if tt.merged {
				f.prs.On("MarkAsMerged", ctx, int64(10), bob.ID, mock.AnythingOfType("time.Time")).Return(nil).Once()
			}
			f.runTx(ctx)

			merged, err := f.svc.Merge(ctx, bob, 10)
			if tt.merged {
				require.NoError(t, err)
				assert.Equal(t, models.PRStatusMerged, merged.Status)
				return
			}

			var insufficient *service.InsufficientApprovalsError
			require.ErrorAs(t, err, &insufficient)
			assert.Equal(t, tt.required, insufficient.Required)
			assert.Equal(t, tt.approvals, insufficient.Current)
		})
	}
}

func TestPullRequestService_Merge_AdminCheckFailureIsNotAdmin(t *testing.T) {
	ctx := context.Background()
	engine := policy.NewScripted(false).
		Set(policy.User(bob.Email), policy.ActionWrite, policy.Repository(7), true).
		Fail(policy.User(bob.Email), policy.ActionAdmin, policy.Repository(7), errors.New("timeout"))
	f := newFixture(t, engine)

	f.prs.On("GetByID", ctx, int64(10)).Return(openPR("main"), nil).Once()
	f.rules.On("ListByRepo", ctx, int64(7)).Return([]*models.BranchProtectionRule{{
		ID: 1, BranchPattern: "main", RequiredApprovals: 1, AllowAdminOverride: true,
	}}, nil).Once()
	f.prs.On("CountApprovals", ctx, int64(10)).Return(0, nil).Once()
	f.runTx(ctx)

	_, err := f.svc.Merge(ctx, bob, 10)

	var insufficient *service.InsufficientApprovalsError
	require.ErrorAs(t, err, &insufficient)
}

func TestPullRequestService_Merge_NotOpen(t *testing.T) {
	ctx := context.Background()
	engine := policy.NewScripted(true)
	f := newFixture(t, engine)

	p := openPR("main")
	p.Status = models.PRStatusMerged
	f.prs.On("GetByID", ctx, int64(10)).Return(p, nil).Once()

	_, err := f.svc.Merge(ctx, alice, 10)
	require.ErrorIs(t, err, service.ErrPRNotOpen)
	assert.Empty(t, engine.Checks())
}

func TestPullRequestService_Merge_LostRace(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, policy.NewScripted(true))

	f.prs.On("GetByID", ctx, int64(10)).Return(openPR("main"), nil).Once()
	f.rules.On("ListByRepo", ctx, int64(7)).Return([]*models.BranchProtectionRule{}, nil).Once()
	f.prs.On("MarkAsMerged", ctx, int64(10), alice.ID, mock.AnythingOfType("time.Time")).Return(repo.ErrStateChanged).Once()
	f.runTx(ctx)

	_, err := f.svc.Merge(ctx, alice, 10)
	require.ErrorIs(t, err, service.ErrPRNotOpen)
}

func TestPullRequestService_Merge_Forbidden(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, policy.NewScripted(false))

	f.prs.On("GetByID", ctx, int64(10)).Return(openPR("main"), nil).Once()

	_, err := f.svc.Merge(ctx, bob, 10)
	require.ErrorIs(t, err, service.ErrForbidden)
	f.rules.AssertNotCalled(t, "ListByRepo", mock.Anything, mock.Anything)
}

func TestPullRequestService_Merge_PolicyUnavailable(t *testing.T) {
	ctx := context.Background()
	authz := mocks.NewAuthorizer(t)
	prs := mocks.NewPullRequestStore(t)
	engine := policy.NewScripted(true)

	svc := pr.NewPullRequestService(sl.Discard(), &mocks.MockManager{}, prs, mocks.NewBranchProtectionStore(t), authz, engine, engine)

	prs.On("GetByID", ctx, int64(10)).Return(openPR("main"), nil).Once()
	authz.On("Allowed", ctx, policy.User(bob.Email), policy.ActionWrite, policy.Repository(7)).
		Return(false, policy.ErrUnavailable).Once()

	_, err := svc.Merge(ctx, bob, 10)
	require.ErrorIs(t, err, service.ErrPolicyUnavailable)
}

func TestPullRequestService_Get(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, policy.NewScripted(true))

	f.prs.On("GetByID", ctx, int64(10)).Return(openPR("main"), nil).Once()
	f.prs.On("ListReviews", ctx, int64(10)).Return([]*models.Review{{ID: 1, PrID: 10, ReviewerID: bob.ID, Status: models.ReviewApproved}}, nil).Once()

	details, err := f.svc.Get(ctx, bob, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(10), details.PullRequest.ID)
	assert.Len(t, details.Reviews, 1)
}

func TestPullRequestService_CreateBranchProtection(t *testing.T) {
	ctx := context.Background()
	engine := policy.NewScripted(false).Set(policy.User(alice.Email), policy.ActionAdmin, policy.Repository(7), true)
	f := newFixture(t, engine)

	f.rules.On("Create", ctx, mock.MatchedBy(func(r *models.BranchProtectionRule) bool {
		return r.BranchPattern == "release/%" && r.RequiredApprovals == 2 && r.AllowAdminOverride
	})).Return(func(_ context.Context, r *models.BranchProtectionRule) (*models.BranchProtectionRule, error) {
		created := *r
		created.ID = 5
		return &created, nil
	}).Once()

	rule, err := f.svc.CreateBranchProtection(ctx, alice, pr.RuleInput{
		RepoID: 7, BranchPattern: "release/*", RequiredApprovals: 2, AllowAdminOverride: true,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), rule.ID)
	assert.Equal(t, "release/%", rule.BranchPattern)
}

func TestPullRequestService_CreateBranchProtection_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("not admin", func(t *testing.T) {
		f := newFixture(t, policy.NewScripted(false))
		_, err := f.svc.CreateBranchProtection(ctx, bob, pr.RuleInput{RepoID: 7, BranchPattern: "main"})
		require.ErrorIs(t, err, service.ErrForbidden)
	})

	t.Run("duplicate pattern", func(t *testing.T) {
		f := newFixture(t, policy.NewScripted(true))
		f.rules.On("Create", ctx, mock.Anything).Return(nil, repo.ErrRuleExists).Once()

		_, err := f.svc.CreateBranchProtection(ctx, alice, pr.RuleInput{RepoID: 7, BranchPattern: "main"})
		require.ErrorIs(t, err, repo.ErrRuleExists)
	})
}

package pr

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github-rebac/internal/lib"
	"github-rebac/internal/lib/sl"
	"github-rebac/internal/models"
	"github-rebac/internal/policy"
	repo "github-rebac/internal/repository"
	"github-rebac/internal/service"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=PullRequestStore
type PullRequestStore interface {
	Create(ctx context.Context, pr *models.PullRequest) (*models.PullRequest, error)
	GetByID(ctx context.Context, prID int64) (*models.PullRequest, error)
	MarkAsMerged(ctx context.Context, prID, mergedBy int64, at time.Time) error
	UpsertReview(ctx context.Context, review *models.Review) (*models.Review, error)
	CountApprovals(ctx context.Context, prID int64) (int, error)
	ListReviews(ctx context.Context, prID int64) ([]*models.Review, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=BranchProtectionStore
type BranchProtectionStore interface {
	Create(ctx context.Context, rule *models.BranchProtectionRule) (*models.BranchProtectionRule, error)
	ListByRepo(ctx context.Context, repoID int64) ([]*models.BranchProtectionRule, error)
}

type PullRequestService struct {
	log    *slog.Logger
	trm    service.TransactionManager
	prs    PullRequestStore
	rules  BranchProtectionStore
	authz  service.Authorizer
	oracle policy.Oracle
	rel    policy.Relationships
	now    func() time.Time
}

func NewPullRequestService(
	log *slog.Logger,
	trm service.TransactionManager,
	prs PullRequestStore,
	rules BranchProtectionStore,
	authz service.Authorizer,
	oracle policy.Oracle,
	rel policy.Relationships,
) *PullRequestService {
	return &PullRequestService{
		log:    log,
		trm:    trm,
		prs:    prs,
		rules:  rules,
		authz:  authz,
		oracle: oracle,
		rel:    rel,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

type CreateInput struct {
	RepoID       int64
	Title        string
	Description  *string
	SourceBranch string
	TargetBranch string
}

func (s *PullRequestService) Create(ctx context.Context, author *models.User, in CreateInput) (*models.PullRequest, error) {
	const op = "service.pr.Create"

	err := service.Require(ctx, s.authz, author.Email, policy.ActionWrite, policy.Repository(in.RepoID),
		"You need write access to create PRs")
	if err != nil {
		return nil, lib.Err(op, err)
	}

	created, err := s.prs.Create(ctx, &models.PullRequest{
		RepoID:       in.RepoID,
		AuthorID:     author.ID,
		Title:        in.Title,
		Description:  in.Description,
		SourceBranch: in.SourceBranch,
		TargetBranch: in.TargetBranch,
		Status:       models.PRStatusOpen,
	})
	if err != nil {
		return nil, lib.Err(op, err)
	}

	object := policy.PullRequest(created.ID)
	err = s.rel.CreateResourceInstance(ctx, policy.ResourceInstance{
		Resource:   policy.KindPullRequest,
		Key:        strconv.FormatInt(created.ID, 10),
		Attributes: map[string]any{"title": created.Title},
	})
	if err != nil {
		s.log.Warn("policy sync failed: resource instance", slog.String("object", object), sl.Err(err))
	}

	err = s.rel.CreateTuple(ctx, policy.Tuple{
		Subject:  policy.User(author.Email),
		Relation: policy.RelationAuthor,
		Object:   object,
	})
	if err != nil {
		s.log.Warn("policy sync failed: author tuple", slog.String("object", object), sl.Err(err))
	}

	return created, nil
}

type PullRequestDetails struct {
	PullRequest *models.PullRequest
	Reviews     []*models.Review
}

func (s *PullRequestService) Get(ctx context.Context, user *models.User, prID int64) (*PullRequestDetails, error) {
	const op = "service.pr.Get"

	pr, err := s.prs.GetByID(ctx, prID)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	err = service.Require(ctx, s.authz, user.Email, policy.ActionRead, policy.Repository(pr.RepoID),
		"You need read access to this repository")
	if err != nil {
		return nil, lib.Err(op, err)
	}

	reviews, err := s.prs.ListReviews(ctx, prID)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	return &PullRequestDetails{PullRequest: pr, Reviews: reviews}, nil
}

// Approve records an approving review by reviewer. A reviewer has at most
// one review per pull request; approving again updates it.
func (s *PullRequestService) Approve(ctx context.Context, reviewer *models.User, prID int64, comment *string) (*models.Review, error) {
	const op = "service.pr.Approve"

	pr, err := s.prs.GetByID(ctx, prID)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	err = service.Require(ctx, s.authz, reviewer.Email, policy.ActionRead, policy.Repository(pr.RepoID),
		"You need access to this repo to review")
	if err != nil {
		return nil, lib.Err(op, err)
	}

	if pr.AuthorID == reviewer.ID {
		return nil, lib.Err(op, service.ErrSelfApproval)
	}

	review, err := s.prs.UpsertReview(ctx, &models.Review{
		PrID:       prID,
		ReviewerID: reviewer.ID,
		Status:     models.ReviewApproved,
		Comment:    comment,
	})
	if err != nil {
		return nil, lib.Err(op, err)
	}

	return review, nil
}

// Merge moves an open pull request to merged, subject to the branch
// protection rule matching its target branch.
func (s *PullRequestService) Merge(ctx context.Context, actor *models.User, prID int64) (*models.PullRequest, error) {
	const op = "service.pr.Merge"

	pr, err := s.prs.GetByID(ctx, prID)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	if pr.Status != models.PRStatusOpen {
		return nil, lib.Err(op, service.ErrPRNotOpen)
	}

	repoObject := policy.Repository(pr.RepoID)
	err = service.Require(ctx, s.authz, actor.Email, policy.ActionWrite, repoObject,
		"You need write access to merge PRs")
	if err != nil {
		return nil, lib.Err(op, err)
	}

	rules, err := s.rules.ListByRepo(ctx, pr.RepoID)
	if err != nil {
		return nil, lib.Err(op, err)
	}
	rule := MatchRule(rules, pr.TargetBranch)

	isAdmin := false
	if rule != nil {
		isAdmin = s.isAdmin(ctx, actor, repoObject)
	}

	mergedAt := s.now()
	err = s.trm.Do(ctx, func(ctx context.Context) error {
		if rule != nil {
			approvals, err := s.prs.CountApprovals(ctx, prID)
			if err != nil {
				return err
			}
			if err := EvaluateMerge(rule, approvals, isAdmin); err != nil {
				return err
			}
		}

		err := s.prs.MarkAsMerged(ctx, prID, actor.ID, mergedAt)
		if errors.Is(err, repo.ErrStateChanged) {
			return service.ErrPRNotOpen
		}
		return err
	})
	if err != nil {
		return nil, lib.Err(op, err)
	}

	mergedBy := actor.ID
	pr.Status = models.PRStatusMerged
	pr.MergedAt = &mergedAt
	pr.MergedBy = &mergedBy

	return pr, nil
}

// isAdmin asks the engine directly: an engine failure never grants the
// override.
func (s *PullRequestService) isAdmin(ctx context.Context, actor *models.User, repoObject string) bool {
	allowed, err := s.oracle.Check(ctx, policy.User(actor.Email), policy.ActionAdmin, repoObject)
	if err != nil {
		s.log.Warn("admin check failed, override not applied", slog.String("object", repoObject), sl.Err(err))
		return false
	}
	return allowed
}

type RuleInput struct {
	RepoID                        int64
	BranchPattern                 string
	RequiredApprovals             int
	RequireStatusChecks           bool
	RequireConversationResolution bool
	AllowAdminOverride            bool
}

func (s *PullRequestService) CreateBranchProtection(ctx context.Context, actor *models.User, in RuleInput) (*models.BranchProtectionRule, error) {
	const op = "service.pr.CreateBranchProtection"

	err := service.Require(ctx, s.authz, actor.Email, policy.ActionAdmin, policy.Repository(in.RepoID),
		"Only repo admins can create branch protection rules")
	if err != nil {
		return nil, lib.Err(op, err)
	}

	rule, err := s.rules.Create(ctx, &models.BranchProtectionRule{
		RepoID:                        in.RepoID,
		BranchPattern:                 NormalizePattern(in.BranchPattern),
		RequiredApprovals:             in.RequiredApprovals,
		RequireStatusChecks:           in.RequireStatusChecks,
		RequireConversationResolution: in.RequireConversationResolution,
		AllowAdminOverride:            in.AllowAdminOverride,
	})
	if err != nil {
		return nil, lib.Err(op, err)
	}

	return rule, nil
}

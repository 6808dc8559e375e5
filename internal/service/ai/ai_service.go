package ai

import (
	"context"
	"encoding/json"
	"log/slog"
	"regexp"
	"time"

	"github-rebac/internal/ai"
	"github-rebac/internal/lib"
	"github-rebac/internal/lib/sl"
	"github-rebac/internal/models"
	"github-rebac/internal/policy"
	"github-rebac/internal/service"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=PullRequestGetter
type PullRequestGetter interface {
	GetByID(ctx context.Context, prID int64) (*models.PullRequest, error)
}

var jsonBlock = regexp.MustCompile(`(?s)\{.*\}`)

type AIService struct {
	log    *slog.Logger
	prs    PullRequestGetter
	authz  service.Authorizer
	oracle policy.Oracle
	gen    ai.Generator
	now    func() time.Time
}

func NewAIService(
	log *slog.Logger,
	prs PullRequestGetter,
	authz service.Authorizer,
	oracle policy.Oracle,
	gen ai.Generator,
) *AIService {
	return &AIService{
		log:    log,
		prs:    prs,
		authz:  authz,
		oracle: oracle,
		gen:    gen,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

type Review struct {
	PrID      int64
	Review    string
	Timestamp time.Time
}

func (s *AIService) ReviewPullRequest(ctx context.Context, user *models.User, prID int64) (*Review, error) {
	const op = "service.ai.ReviewPullRequest"

	pr, err := s.prs.GetByID(ctx, prID)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	err = service.Require(ctx, s.authz, user.Email, policy.ActionRead, policy.Repository(pr.RepoID),
		"You need read access to request AI review")
	if err != nil {
		return nil, lib.Err(op, err)
	}

	return &Review{
		PrID:      prID,
		Review:    s.generate(ctx, reviewPrompt(pr)),
		Timestamp: s.now(),
	}, nil
}

type DescriptionInput struct {
	RepoID       int64
	SourceBranch string
	TargetBranch string
	Commits      []string
}

type Description struct {
	Description string
	Commits     int
}

func (s *AIService) GeneratePRDescription(ctx context.Context, user *models.User, in DescriptionInput) (*Description, error) {
	const op = "service.ai.GeneratePRDescription"

	err := service.Require(ctx, s.authz, user.Email, policy.ActionWrite, policy.Repository(in.RepoID),
		"You need write access to generate PR descriptions")
	if err != nil {
		return nil, lib.Err(op, err)
	}

	commits := in.Commits
	if len(commits) == 0 {
		commits = DefaultCommits
	}

	return &Description{
		Description: s.generate(ctx, descriptionPrompt(commits, in.SourceBranch, in.TargetBranch)),
		Commits:     len(commits),
	}, nil
}

type ExplainInput struct {
	Action       string
	ResourceType string
	ResourceID   string
}

type Explanation struct {
	Allowed     bool
	Action      string
	Resource    string
	Explanation string
}

// ExplainPermissions reports the engine's answer for the caller and asks the
// model to explain it. The answer comes from the engine itself, so an engine
// failure is an error here rather than a degraded allow.
func (s *AIService) ExplainPermissions(ctx context.Context, user *models.User, in ExplainInput) (*Explanation, error) {
	const op = "service.ai.ExplainPermissions"

	object := policy.Object(in.ResourceType, in.ResourceID)
	allowed, err := s.oracle.Check(ctx, policy.User(user.Email), in.Action, object)
	if err != nil {
		s.log.Error("permission check failed", slog.String("object", object), sl.Err(err))
		return nil, lib.Err(op, service.ErrPolicyUnavailable)
	}

	return &Explanation{
		Allowed:     allowed,
		Action:      in.Action,
		Resource:    object,
		Explanation: s.generate(ctx, explainPrompt(user.Email, in.Action, in.ResourceType, in.ResourceID, allowed)),
	}, nil
}

type TriageInput struct {
	RepoID     int64
	IssueTitle string
	IssueBody  string
}

type Triage struct {
	IssueTitle string
	// Result is the first JSON object found in the model output, or nil.
	Result map[string]any
}

func (s *AIService) TriageIssue(ctx context.Context, user *models.User, in TriageInput) (*Triage, error) {
	const op = "service.ai.TriageIssue"

	err := service.Require(ctx, s.authz, user.Email, policy.ActionTriage, policy.Repository(in.RepoID),
		"You need triage permission for AI issue categorization")
	if err != nil {
		return nil, lib.Err(op, err)
	}

	text := s.generate(ctx, triagePrompt(in.IssueTitle, in.IssueBody))

	return &Triage{
		IssueTitle: in.IssueTitle,
		Result:     extractJSON(text),
	}, nil
}

// generate never fails: upstream errors become response text.
func (s *AIService) generate(ctx context.Context, prompt string) string {
	text, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		s.log.Error("ai generation failed", sl.Err(err))
		return ai.ErrorResponse(err)
	}
	return text
}

func extractJSON(text string) map[string]any {
	block := jsonBlock.FindString(text)
	if block == "" {
		return nil
	}

	var out map[string]any
	if err := json.Unmarshal([]byte(block), &out); err != nil {
		return nil
	}
	return out
}

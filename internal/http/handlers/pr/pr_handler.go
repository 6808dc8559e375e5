package pr

import (
	"context"
	"log/slog"
	"net/http"

	"github-rebac/internal/http/api"
	"github-rebac/internal/http/handlers"
	mw "github-rebac/internal/http/middleware"
	"github-rebac/internal/lib/sl"
	"github-rebac/internal/models"
	prsvc "github-rebac/internal/service/pr"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

const notFound = "PR not found"

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=prService --structname=MockPrService --output=../mocks
type prService interface {
	Create(ctx context.Context, author *models.User, in prsvc.CreateInput) (*models.PullRequest, error)
	Get(ctx context.Context, user *models.User, prID int64) (*prsvc.PullRequestDetails, error)
	Approve(ctx context.Context, reviewer *models.User, prID int64, comment *string) (*models.Review, error)
	Merge(ctx context.Context, actor *models.User, prID int64) (*models.PullRequest, error)
	CreateBranchProtection(ctx context.Context, actor *models.User, in prsvc.RuleInput) (*models.BranchProtectionRule, error)
}

type PrHandler struct {
	log     *slog.Logger
	service prService
}

func NewPrHandler(log *slog.Logger, s prService) *PrHandler {
	return &PrHandler{
		log:     log,
		service: s,
	}
}

type CreateRequest struct {
	RepoID       int64   `json:"repoId"       validate:"required"`
	Title        string  `json:"title"        validate:"required,max=255"`
	Description  *string `json:"description"`
	SourceBranch string  `json:"sourceBranch" validate:"required,max=255"`
	TargetBranch string  `json:"targetBranch" validate:"required,max=255"`
}

func (h *PrHandler) Create(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.pr.Create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var input CreateRequest
	if err := render.DecodeJSON(r.Body, &input); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		handlers.BadRequest(w, r, "bad request")
		return
	}

	if err := validator.New().Struct(input); err != nil {
		validateError := err.(validator.ValidationErrors)

		log.Error("invalid request", sl.Err(err))

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.ValidationError(validateError))
		return
	}

	created, err := h.service.Create(r.Context(), mw.UserFromContext(r.Context()), prsvc.CreateInput{
		RepoID:       input.RepoID,
		Title:        input.Title,
		Description:  input.Description,
		SourceBranch: input.SourceBranch,
		TargetBranch: input.TargetBranch,
	})
	if err != nil {
		handlers.RenderError(w, r, log, err, "Repository not found")
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, api.PrResponse{
		Message:     "Pull request created",
		PullRequest: api.NewPullRequestSchema(created),
	})
}

func (h *PrHandler) Get(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.pr.Get"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	prID, ok := handlers.IDParam(r, "id")
	if !ok {
		handlers.BadRequest(w, r, "invalid pull request id")
		return
	}

	details, err := h.service.Get(r.Context(), mw.UserFromContext(r.Context()), prID)
	if err != nil {
		handlers.RenderError(w, r, log, err, notFound)
		return
	}

	reviews := make([]api.ReviewSchema, 0, len(details.Reviews))
	for _, rv := range details.Reviews {
		reviews = append(reviews, api.NewReviewSchema(rv))
	}

	render.JSON(w, r, api.PrDetailsResponse{
		PullRequest: api.NewPullRequestSchema(details.PullRequest),
		Reviews:     reviews,
	})
}

type ApproveRequest struct {
	Comment *string `json:"comment" validate:"omitempty,max=5000"`
}

func (h *PrHandler) Approve(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.pr.Approve"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	prID, ok := handlers.IDParam(r, "id")
	if !ok {
		handlers.BadRequest(w, r, "invalid pull request id")
		return
	}

	// the body is optional
	var input ApproveRequest
	if r.ContentLength != 0 {
		if err := render.DecodeJSON(r.Body, &input); err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			handlers.BadRequest(w, r, "bad request")
			return
		}
	}

	if err := validator.New().Struct(input); err != nil {
		validateError := err.(validator.ValidationErrors)

		log.Error("invalid request", sl.Err(err))

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.ValidationError(validateError))
		return
	}

	reviewer := mw.UserFromContext(r.Context())
	review, err := h.service.Approve(r.Context(), reviewer, prID, input.Comment)
	if err != nil {
		handlers.RenderError(w, r, log, err, notFound)
		return
	}

	render.JSON(w, r, api.ApproveResponse{
		Message:  "Pull request approved",
		PrID:     prID,
		Reviewer: reviewer.Email,
		Review:   api.NewReviewSchema(review),
	})
}

func (h *PrHandler) Merge(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.pr.Merge"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	prID, ok := handlers.IDParam(r, "id")
	if !ok {
		handlers.BadRequest(w, r, "invalid pull request id")
		return
	}

	actor := mw.UserFromContext(r.Context())
	merged, err := h.service.Merge(r.Context(), actor, prID)
	if err != nil {
		handlers.RenderError(w, r, log, err, notFound)
		return
	}

	render.JSON(w, r, api.MergeResponse{
		Message:     "Pull request merged successfully",
		PrID:        prID,
		MergedBy:    actor.Email,
		MergedAt:    merged.MergedAt,
		PullRequest: api.NewPullRequestSchema(merged),
	})
}

type BranchProtectionRequest struct {
	RepoID                        int64  `json:"repoId"                        validate:"required"`
	BranchPattern                 string `json:"branchPattern"                 validate:"required,max=255"`
	RequiredApprovals             int    `json:"requiredApprovals"             validate:"min=0"`
	RequireStatusChecks           bool   `json:"requireStatusChecks"`
	RequireConversationResolution bool   `json:"requireConversationResolution"`
	AllowAdminOverride            bool   `json:"allowAdminOverride"`
}

func (h *PrHandler) CreateBranchProtection(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.pr.CreateBranchProtection"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var input BranchProtectionRequest
	if err := render.DecodeJSON(r.Body, &input); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		handlers.BadRequest(w, r, "bad request")
		return
	}

	if err := validator.New().Struct(input); err != nil {
		validateError := err.(validator.ValidationErrors)

		log.Error("invalid request", sl.Err(err))

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.ValidationError(validateError))
		return
	}

	rule, err := h.service.CreateBranchProtection(r.Context(), mw.UserFromContext(r.Context()), prsvc.RuleInput{
		RepoID:                        input.RepoID,
		BranchPattern:                 input.BranchPattern,
		RequiredApprovals:             input.RequiredApprovals,
		RequireStatusChecks:           input.RequireStatusChecks,
		RequireConversationResolution: input.RequireConversationResolution,
		AllowAdminOverride:            input.AllowAdminOverride,
	})
	if err != nil {
		handlers.RenderError(w, r, log, err, "Repository not found")
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, api.BranchProtectionResponse{
		Message: "Branch protection rule created",
		Rule:    api.NewBranchProtectionSchema(rule),
	})
}

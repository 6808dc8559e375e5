package ai

import (
	"context"
	"log/slog"
	"net/http"

	"github-rebac/internal/http/api"
	"github-rebac/internal/http/handlers"
	mw "github-rebac/internal/http/middleware"
	"github-rebac/internal/lib/sl"
	"github-rebac/internal/models"
	aisvc "github-rebac/internal/service/ai"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

// ModelName is reported as the author of every generated answer.
const ModelName = "Gemini AI"

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=aiService --structname=MockAIService --output=../mocks
type aiService interface {
	ReviewPullRequest(ctx context.Context, user *models.User, prID int64) (*aisvc.Review, error)
	GeneratePRDescription(ctx context.Context, user *models.User, in aisvc.DescriptionInput) (*aisvc.Description, error)
	ExplainPermissions(ctx context.Context, user *models.User, in aisvc.ExplainInput) (*aisvc.Explanation, error)
	TriageIssue(ctx context.Context, user *models.User, in aisvc.TriageInput) (*aisvc.Triage, error)
}

type AIHandler struct {
	log     *slog.Logger
	service aiService
}

func NewAIHandler(log *slog.Logger, s aiService) *AIHandler {
	return &AIHandler{
		log:     log,
		service: s,
	}
}

func (h *AIHandler) ReviewPullRequest(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.ai.ReviewPullRequest"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	prID, ok := handlers.IDParam(r, "id")
	if !ok {
		handlers.BadRequest(w, r, "invalid pull request id")
		return
	}

	review, err := h.service.ReviewPullRequest(r.Context(), mw.UserFromContext(r.Context()), prID)
	if err != nil {
		handlers.RenderError(w, r, log, err, "PR not found")
		return
	}

	render.JSON(w, r, api.AIReviewResponse{
		PrID:       review.PrID,
		AIReview:   review.Review,
		ReviewedBy: ModelName,
		Timestamp:  review.Timestamp,
	})
}

type DescriptionRequest struct {
	RepoID       int64    `json:"repoId"       validate:"required"`
	SourceBranch string   `json:"sourceBranch" validate:"required,max=255"`
	TargetBranch string   `json:"targetBranch" validate:"required,max=255"`
	Commits      []string `json:"commits"`
}

func (h *AIHandler) GeneratePRDescription(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.ai.GeneratePRDescription"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var input DescriptionRequest
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

	desc, err := h.service.GeneratePRDescription(r.Context(), mw.UserFromContext(r.Context()), aisvc.DescriptionInput{
		RepoID:       input.RepoID,
		SourceBranch: input.SourceBranch,
		TargetBranch: input.TargetBranch,
		Commits:      input.Commits,
	})
	if err != nil {
		handlers.RenderError(w, r, log, err, "Repository not found")
		return
	}

	render.JSON(w, r, api.DescriptionResponse{
		Description: desc.Description,
		Commits:     desc.Commits,
		GeneratedBy: ModelName,
	})
}

type ExplainRequest struct {
	Action       string `json:"action"       validate:"required,max=64"`
	ResourceType string `json:"resourceType" validate:"required,max=64"`
	ResourceID   string `json:"resourceId"   validate:"required,max=255"`
}

func (h *AIHandler) ExplainPermissions(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.ai.ExplainPermissions"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var input ExplainRequest
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

	exp, err := h.service.ExplainPermissions(r.Context(), mw.UserFromContext(r.Context()), aisvc.ExplainInput{
		Action:       input.Action,
		ResourceType: input.ResourceType,
		ResourceID:   input.ResourceID,
	})
	if err != nil {
		handlers.RenderError(w, r, log, err, "Resource not found")
		return
	}

	render.JSON(w, r, api.ExplainResponse{
		Allowed:     exp.Allowed,
		Action:      exp.Action,
		Resource:    exp.Resource,
		Explanation: exp.Explanation,
		ExplainedBy: ModelName,
	})
}

type TriageRequest struct {
	RepoID     int64  `json:"repoId"     validate:"required"`
	IssueTitle string `json:"issueTitle" validate:"required,max=500"`
	IssueBody  string `json:"issueBody"`
}

func (h *AIHandler) TriageIssue(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.ai.TriageIssue"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var input TriageRequest
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

	triage, err := h.service.TriageIssue(r.Context(), mw.UserFromContext(r.Context()), aisvc.TriageInput{
		RepoID:     input.RepoID,
		IssueTitle: input.IssueTitle,
		IssueBody:  input.IssueBody,
	})
	if err != nil {
		handlers.RenderError(w, r, log, err, "Repository not found")
		return
	}

	render.JSON(w, r, api.TriageResponse{
		IssueTitle: triage.IssueTitle,
		Triage:     triage.Result,
		TriagedBy:  ModelName,
	})
}

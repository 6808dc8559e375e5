package team

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github-rebac/internal/http/api"
	"github-rebac/internal/http/handlers"
	mw "github-rebac/internal/http/middleware"
	"github-rebac/internal/lib/sl"
	"github-rebac/internal/models"
	teamsvc "github-rebac/internal/service/team"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

const notFound = "Team not found"

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=teamService --structname=MockTeamService --output=../mocks
type teamService interface {
	Create(ctx context.Context, creator *models.User, in teamsvc.CreateInput) (*models.Team, error)
	AddMember(ctx context.Context, teamID int64, email string) bool
	RemoveMember(ctx context.Context, teamID int64, email string) bool
	GrantRepositoryAccess(ctx context.Context, teamID, repoID int64, role string) (bool, error)
}

type TeamHandler struct {
	log     *slog.Logger
	service teamService
}

func NewTeamHandler(log *slog.Logger, s teamService) *TeamHandler {
	return &TeamHandler{
		log:     log,
		service: s,
	}
}

type CreateRequest struct {
	Name        string  `json:"name"        validate:"required,max=255"`
	OrgID       int64   `json:"orgId"       validate:"required"`
	Description *string `json:"description"`
}

func (h *TeamHandler) Create(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.team.Create"
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

	created, err := h.service.Create(r.Context(), mw.UserFromContext(r.Context()), teamsvc.CreateInput{
		Name:        input.Name,
		OrgID:       input.OrgID,
		Description: input.Description,
	})
	if err != nil {
		handlers.RenderError(w, r, log, err, notFound)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, api.TeamResponse{
		Message: "Team created",
		Team:    api.NewTeamSchema(created),
	})
}

type AddMemberRequest struct {
	UserEmail string `json:"userEmail" validate:"required,email"`
}

func (h *TeamHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.team.AddMember"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	teamID, ok := handlers.IDParam(r, "id")
	if !ok {
		handlers.BadRequest(w, r, "invalid team id")
		return
	}

	var input AddMemberRequest
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

	synced := h.service.AddMember(r.Context(), teamID, input.UserEmail)

	render.JSON(w, r, api.TeamMemberResponse{
		Message:   fmt.Sprintf("User %s added to team", input.UserEmail),
		TeamID:    teamID,
		UserEmail: input.UserEmail,
		Synced:    synced,
	})
}

// RemoveMember takes the member's email in the {userId} segment.
func (h *TeamHandler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	teamID, ok := handlers.IDParam(r, "id")
	if !ok {
		handlers.BadRequest(w, r, "invalid team id")
		return
	}
	email := chi.URLParam(r, "userId")

	synced := h.service.RemoveMember(r.Context(), teamID, email)

	render.JSON(w, r, api.TeamMemberResponse{
		Message:   fmt.Sprintf("User %s removed from team", email),
		TeamID:    teamID,
		UserEmail: email,
		Synced:    synced,
	})
}

type GrantRequest struct {
	RepoID int64  `json:"repoId" validate:"required"`
	Role   string `json:"role"   validate:"required,oneof=read write maintain admin"`
}

func (h *TeamHandler) GrantRepositoryAccess(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.team.GrantRepositoryAccess"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	teamID, ok := handlers.IDParam(r, "id")
	if !ok {
		handlers.BadRequest(w, r, "invalid team id")
		return
	}

	var input GrantRequest
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

	synced, err := h.service.GrantRepositoryAccess(r.Context(), teamID, input.RepoID, input.Role)
	if err != nil {
		handlers.RenderError(w, r, log, err, notFound)
		return
	}

	render.JSON(w, r, api.TeamAccessResponse{
		Message: fmt.Sprintf("Team granted %s access to repository", input.Role),
		TeamID:  teamID,
		RepoID:  input.RepoID,
		Role:    input.Role,
		Synced:  synced,
	})
}

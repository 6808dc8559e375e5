package repository

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
	reposvc "github-rebac/internal/service/repository"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

const notFound = "Repository not found"

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=repositoryService --structname=MockRepositoryService --output=../mocks
type repositoryService interface {
	Create(ctx context.Context, owner *models.User, in reposvc.CreateInput) (*models.Repository, error)
	List(ctx context.Context, user *models.User) (*reposvc.RepositoryList, error)
	Get(ctx context.Context, id int64) (*models.Repository, error)
	Update(ctx context.Context, id int64, in reposvc.UpdateInput) (*models.Repository, error)
	Delete(ctx context.Context, id int64) error
	AddCollaborator(ctx context.Context, repoID int64, email, role string) (bool, error)
	RemoveCollaborator(ctx context.Context, repoID int64, email string)
}

type RepositoryHandler struct {
	log     *slog.Logger
	service repositoryService
}

func NewRepositoryHandler(log *slog.Logger, s repositoryService) *RepositoryHandler {
	return &RepositoryHandler{
		log:     log,
		service: s,
	}
}

type CreateRequest struct {
	Name        string  `json:"name"        validate:"required,max=255"`
	OrgID       int64   `json:"orgId"       validate:"required"`
	Visibility  string  `json:"visibility"  validate:"omitempty,oneof=public private"`
	Description *string `json:"description"`
}

func (h *RepositoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.repository.Create"
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

	created, err := h.service.Create(r.Context(), mw.UserFromContext(r.Context()), reposvc.CreateInput{
		Name:        input.Name,
		OrgID:       input.OrgID,
		Visibility:  input.Visibility,
		Description: input.Description,
	})
	if err != nil {
		handlers.RenderError(w, r, log, err, notFound)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, api.RepositoryResponse{
		Message:    "Repository created",
		Repository: api.NewRepositorySchema(created),
	})
}

func (h *RepositoryHandler) List(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.repository.List"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	list, err := h.service.List(r.Context(), mw.UserFromContext(r.Context()))
	if err != nil {
		handlers.RenderError(w, r, log, err, notFound)
		return
	}

	render.JSON(w, r, api.RepositoryListResponse{
		Repositories: api.NewRepositorySchemas(list.Repositories),
		Count:        len(list.Repositories),
		Message:      list.Message,
	})
}

func (h *RepositoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.repository.Get"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, ok := handlers.IDParam(r, "id")
	if !ok {
		handlers.BadRequest(w, r, "invalid repository id")
		return
	}

	found, err := h.service.Get(r.Context(), id)
	if err != nil {
		handlers.RenderError(w, r, log, err, notFound)
		return
	}

	render.JSON(w, r, api.RepositoryResponse{Repository: api.NewRepositorySchema(found)})
}

type UpdateRequest struct {
	Description *string `json:"description"`
	Visibility  *string `json:"visibility" validate:"omitempty,oneof=public private"`
}

func (h *RepositoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.repository.Update"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, ok := handlers.IDParam(r, "id")
	if !ok {
		handlers.BadRequest(w, r, "invalid repository id")
		return
	}

	var input UpdateRequest
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

	updated, err := h.service.Update(r.Context(), id, reposvc.UpdateInput{
		Description: input.Description,
		Visibility:  input.Visibility,
	})
	if err != nil {
		handlers.RenderError(w, r, log, err, notFound)
		return
	}

	render.JSON(w, r, api.RepositoryResponse{
		Message:    "Repository updated",
		Repository: api.NewRepositorySchema(updated),
	})
}

func (h *RepositoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.repository.Delete"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, ok := handlers.IDParam(r, "id")
	if !ok {
		handlers.BadRequest(w, r, "invalid repository id")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		handlers.RenderError(w, r, log, err, notFound)
		return
	}

	render.JSON(w, r, api.DeleteRepositoryResponse{
		Message: "Repository deleted",
		ID:      id,
	})
}

type AddCollaboratorRequest struct {
	UserEmail string `json:"userEmail" validate:"required,email"`
	Role      string `json:"role"      validate:"required,oneof=read write maintain admin"`
}

func (h *RepositoryHandler) AddCollaborator(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.repository.AddCollaborator"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, ok := handlers.IDParam(r, "id")
	if !ok {
		handlers.BadRequest(w, r, "invalid repository id")
		return
	}

	var input AddCollaboratorRequest
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

	synced, err := h.service.AddCollaborator(r.Context(), id, input.UserEmail, input.Role)
	if err != nil {
		handlers.RenderError(w, r, log, err, notFound)
		return
	}

	render.JSON(w, r, api.CollaboratorResponse{
		Message:   fmt.Sprintf("User %s added as %s", input.UserEmail, input.Role),
		RepoID:    id,
		UserEmail: input.UserEmail,
		Role:      input.Role,
		Synced:    &synced,
	})
}

// RemoveCollaborator takes the collaborator's email in the {userId} segment.
func (h *RepositoryHandler) RemoveCollaborator(w http.ResponseWriter, r *http.Request) {
	id, ok := handlers.IDParam(r, "id")
	if !ok {
		handlers.BadRequest(w, r, "invalid repository id")
		return
	}
	email := chi.URLParam(r, "userId")

	h.service.RemoveCollaborator(r.Context(), id, email)

	render.JSON(w, r, api.CollaboratorResponse{
		Message:   fmt.Sprintf("User %s removed from repository", email),
		RepoID:    id,
		UserEmail: email,
	})
}

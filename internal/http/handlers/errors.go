package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github-rebac/internal/http/api"
	"github-rebac/internal/lib/sl"
	repo "github-rebac/internal/repository"
	"github-rebac/internal/service"
	"github.com/go-chi/render"
)

// RenderError maps a service or storage error onto the error envelope.
// notFound is the message used for a missing resource.
func RenderError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error, notFound string) {
	var (
		forbidden *service.ForbiddenError
		blocked   *service.InsufficientApprovalsError
	)

	switch {
	case errors.Is(err, repo.ErrNotFound):
		log.Info("resource not found", sl.Err(err))
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, api.Error(api.ErrCodeNotFound, notFound))

	case errors.As(err, &forbidden):
		log.Info("permission denied", sl.Err(err))
		render.Status(r, http.StatusForbidden)
		render.JSON(w, r, api.Error(api.ErrCodeForbidden, forbidden.Message))

	case errors.As(err, &blocked):
		log.Info("merge blocked", slog.Int("required", blocked.Required), slog.Int("current", blocked.Current))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.MergeBlocked(blocked.Required, blocked.Current, blocked.Error()))

	case errors.Is(err, service.ErrSelfApproval):
		log.Info("self approval", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrCodeSelfApproval, service.ErrSelfApproval.Error()))

	case errors.Is(err, service.ErrPRNotOpen):
		log.Info("pull request not open", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrCodePRNotOpen, service.ErrPRNotOpen.Error()))

	case errors.Is(err, service.ErrInvalidRole):
		log.Info("invalid role", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrCodeInvalidRole, "role must be one of: read, write, maintain, admin"))

	case errors.Is(err, service.ErrInvalidVisibility):
		log.Info("invalid visibility", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrValidationErr, "visibility must be one of: public, private"))

	case errors.Is(err, repo.ErrRepositoryExists):
		log.Info("repository exists", sl.Err(err))
		render.Status(r, http.StatusConflict)
		render.JSON(w, r, api.Error(api.ErrCodeRepositoryExists, repo.ErrRepositoryExists.Error()))

	case errors.Is(err, repo.ErrTeamExists):
		log.Info("team exists", sl.Err(err))
		render.Status(r, http.StatusConflict)
		render.JSON(w, r, api.Error(api.ErrCodeTeamExists, repo.ErrTeamExists.Error()))

	case errors.Is(err, repo.ErrRuleExists):
		log.Info("rule exists", sl.Err(err))
		render.Status(r, http.StatusConflict)
		render.JSON(w, r, api.Error(api.ErrCodeRuleExists, repo.ErrRuleExists.Error()))

	case errors.Is(err, service.ErrPolicyUnavailable):
		log.Error("policy engine unavailable", sl.Err(err))
		render.Status(r, http.StatusServiceUnavailable)
		render.JSON(w, r, api.Error(api.ErrCodePolicyUnavailable, "authorization service unavailable"))

	default:
		log.Error("request failed", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
	}
}

// BadRequest renders the decode failure envelope.
func BadRequest(w http.ResponseWriter, r *http.Request, msg string) {
	render.Status(r, http.StatusBadRequest)
	render.JSON(w, r, api.Error(api.ErrBadRequest, msg))
}

package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github-rebac/internal/http/api"
	"github-rebac/internal/lib/sl"
	"github-rebac/internal/policy"
	"github-rebac/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

// Authorize guards a route with a check of action on the kind:id object,
// the id taken from the {id} or {repoId} route param.
func Authorize(log *slog.Logger, authz service.Authorizer, kind, action string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := UserFromContext(r.Context())
			if user == nil {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, api.Error(api.ErrCodeUnauthorized, "Not authenticated"))
				return
			}

			id := chi.URLParam(r, "id")
			if id == "" {
				id = chi.URLParam(r, "repoId")
			}
			object := policy.Object(kind, id)

			allowed, err := authz.Allowed(r.Context(), policy.User(user.Email), action, object)
			if err != nil {
				log.Error("authorization failed",
					slog.String("request_id", middleware.GetReqID(r.Context())),
					slog.String("object", object),
					sl.Err(err),
				)
				if errors.Is(err, policy.ErrUnavailable) {
					render.Status(r, http.StatusServiceUnavailable)
					render.JSON(w, r, api.Error(api.ErrCodePolicyUnavailable, "authorization service unavailable"))
					return
				}
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, api.InternalError())
				return
			}

			if !allowed {
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, api.Error(
					api.ErrCodeForbidden,
					fmt.Sprintf("You don't have '%s' permission on this %s", action, kind),
				))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

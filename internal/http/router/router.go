// Package router wires handlers, guards and audit recording into one chi
// router for the server and its integration tests.
package router

import (
	"log/slog"
	"net/http"

	"github-rebac/internal/http/handlers"
	aih "github-rebac/internal/http/handlers/ai"
	prh "github-rebac/internal/http/handlers/pr"
	repoh "github-rebac/internal/http/handlers/repository"
	teamh "github-rebac/internal/http/handlers/team"
	vish "github-rebac/internal/http/handlers/visualization"
	mw "github-rebac/internal/http/middleware"
	"github-rebac/internal/lib/config"
	"github-rebac/internal/policy"
	"github-rebac/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type Deps struct {
	Log   *slog.Logger
	Auth  config.Auth
	Users mw.UserLookup
	Authz service.Authorizer
	// Audit is nil when audit logging is disabled.
	Audit mw.AuditSink

	Repositories  *repoh.RepositoryHandler
	Teams         *teamh.TeamHandler
	PullRequests  *prh.PrHandler
	AI            *aih.AIHandler
	Visualization *vish.VisualizationHandler
}

func New(d Deps) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(mw.New(d.Log))
	router.Use(middleware.Recoverer)

	router.Get("/health", handlers.Healthcheck())

	authenticate := mw.Authenticate(d.Log, d.Users, d.Auth)
	audit := func(resourceType string) func(http.Handler) http.Handler {
		if d.Audit == nil {
			return func(next http.Handler) http.Handler { return next }
		}
		return mw.Audit(d.Audit, resourceType)
	}
	guard := func(kind, action string) func(http.Handler) http.Handler {
		return mw.Authorize(d.Log, d.Authz, kind, action)
	}

	router.Route("/api", func(r chi.Router) {
		r.Use(authenticate)

		r.Route("/repositories", func(r chi.Router) {
			r.Use(audit("repositories"))

			r.Post("/", d.Repositories.Create)
			r.Get("/", d.Repositories.List)

			r.Route("/{id}", func(r chi.Router) {
				r.With(guard(policy.KindRepository, policy.ActionRead)).Get("/", d.Repositories.Get)
				r.With(guard(policy.KindRepository, policy.ActionWrite)).Patch("/", d.Repositories.Update)
				r.With(guard(policy.KindRepository, policy.ActionAdmin)).Delete("/", d.Repositories.Delete)

				r.Group(func(r chi.Router) {
					r.Use(guard(policy.KindRepository, policy.ActionAdmin))
					r.Post("/collaborators", d.Repositories.AddCollaborator)
					r.Delete("/collaborators/{userId}", d.Repositories.RemoveCollaborator)
				})
			})
		})

		r.Route("/teams", func(r chi.Router) {
			r.Use(audit("teams"))

			r.Post("/", d.Teams.Create)

			r.Group(func(r chi.Router) {
				r.Use(guard(policy.KindTeam, policy.ActionAdmin))
				r.Post("/{id}/members", d.Teams.AddMember)
				r.Delete("/{id}/members/{userId}", d.Teams.RemoveMember)
				r.Post("/{id}/repositories", d.Teams.GrantRepositoryAccess)
			})
		})

		r.Route("/pull-requests", func(r chi.Router) {
			r.Use(audit("pull-requests"))

			r.Post("/", d.PullRequests.Create)
			r.Post("/branch-protection", d.PullRequests.CreateBranchProtection)
			r.Get("/{id}", d.PullRequests.Get)
			r.Post("/{id}/approve", d.PullRequests.Approve)
			r.Post("/{id}/merge", d.PullRequests.Merge)
		})

		r.Route("/ai", func(r chi.Router) {
			r.Use(audit("ai"))

			r.Post("/pull-requests/{id}/ai-review", d.AI.ReviewPullRequest)
			r.Post("/generate-pr-description", d.AI.GeneratePRDescription)
			r.Post("/explain-permissions", d.AI.ExplainPermissions)
			r.Post("/triage-issue", d.AI.TriageIssue)
		})

		r.Route("/visualization", func(r chi.Router) {
			r.Use(audit("visualization"))

			r.Get("/permission-graph", d.Visualization.PermissionGraph)
			r.Get("/audit-logs", d.Visualization.AuditLogs)
			r.Get("/repositories/{id}/audit-logs", d.Visualization.RepositoryAuditLogs)
		})
	})

	return router
}

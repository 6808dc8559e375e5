package visualization

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github-rebac/internal/http/api"
	"github-rebac/internal/http/handlers"
	mw "github-rebac/internal/http/middleware"
	"github-rebac/internal/models"
	vissvc "github-rebac/internal/service/visualization"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=visualizationService --structname=MockVisualizationService --output=../mocks
type visualizationService interface {
	PermissionGraph(ctx context.Context, user *models.User) (*vissvc.PermissionGraph, error)
	AuditLogs(ctx context.Context, user *models.User, f models.AuditFilter) (*vissvc.AuditPage, error)
	RepositoryAuditLogs(ctx context.Context, user *models.User, repoID int64, limit, offset int) (*vissvc.AuditPage, error)
}

type VisualizationHandler struct {
	log     *slog.Logger
	service visualizationService
}

func NewVisualizationHandler(log *slog.Logger, s visualizationService) *VisualizationHandler {
	return &VisualizationHandler{
		log:     log,
		service: s,
	}
}

func (h *VisualizationHandler) PermissionGraph(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.visualization.PermissionGraph"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	graph, err := h.service.PermissionGraph(r.Context(), mw.UserFromContext(r.Context()))
	if err != nil {
		handlers.RenderError(w, r, log, err, "Resource not found")
		return
	}

	render.JSON(w, r, api.GraphResponse{
		Graph: api.GraphSchema{
			User:         graph.User,
			DirectAccess: accessSchemas(graph.DirectAccess),
			TeamAccess:   accessSchemas(graph.TeamAccess),
			Summary: api.GraphSummarySchema{
				TotalRepos:  graph.Summary.TotalRepos,
				DirectRepos: graph.Summary.DirectRepos,
				TeamRepos:   graph.Summary.TeamRepos,
				Teams:       graph.Summary.Teams,
			},
		},
	})
}

func (h *VisualizationHandler) AuditLogs(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.visualization.AuditLogs"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	q := r.URL.Query()
	page, err := h.service.AuditLogs(r.Context(), mw.UserFromContext(r.Context()), models.AuditFilter{
		ResourceType: q.Get("resourceType"),
		Action:       q.Get("action"),
		Limit:        intQuery(r, "limit"),
		Offset:       intQuery(r, "offset"),
	})
	if err != nil {
		handlers.RenderError(w, r, log, err, "Resource not found")
		return
	}

	render.JSON(w, r, api.AuditLogsResponse{
		Logs:   api.NewAuditLogSchemas(page.Logs),
		Count:  len(page.Logs),
		Limit:  page.Limit,
		Offset: page.Offset,
	})
}

func (h *VisualizationHandler) RepositoryAuditLogs(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.visualization.RepositoryAuditLogs"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	repoID, ok := handlers.IDParam(r, "id")
	if !ok {
		handlers.BadRequest(w, r, "invalid repository id")
		return
	}

	page, err := h.service.RepositoryAuditLogs(
		r.Context(),
		mw.UserFromContext(r.Context()),
		repoID,
		intQuery(r, "limit"),
		intQuery(r, "offset"),
	)
	if err != nil {
		handlers.RenderError(w, r, log, err, "Repository not found")
		return
	}

	render.JSON(w, r, api.AuditLogsResponse{
		RepoID: &repoID,
		Logs:   api.NewAuditLogSchemas(page.Logs),
		Count:  len(page.Logs),
		Limit:  page.Limit,
		Offset: page.Offset,
	})
}

// intQuery reads an integer query parameter; anything unparsable is 0 and
// left to the service defaults.
func intQuery(r *http.Request, name string) int {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return 0
	}
	return v
}

func accessSchemas(in []vissvc.RepoAccess) []api.RepoAccessSchema {
	out := make([]api.RepoAccessSchema, 0, len(in))
	for _, a := range in {
		out = append(out, api.RepoAccessSchema{
			RepoID:      a.RepoID,
			RepoName:    a.RepoName,
			Permissions: a.Permissions,
		})
	}
	return out
}

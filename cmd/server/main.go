package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github-rebac/internal/ai"
	"github-rebac/internal/audit"
	aih "github-rebac/internal/http/handlers/ai"
	prh "github-rebac/internal/http/handlers/pr"
	repoh "github-rebac/internal/http/handlers/repository"
	teamh "github-rebac/internal/http/handlers/team"
	vish "github-rebac/internal/http/handlers/visualization"
	mw "github-rebac/internal/http/middleware"
	"github-rebac/internal/http/router"
	"github-rebac/internal/lib/config"
	"github-rebac/internal/lib/sl"
	"github-rebac/internal/policy"
	repo "github-rebac/internal/repository"
	aisvc "github-rebac/internal/service/ai"
	prsvc "github-rebac/internal/service/pr"
	reposvc "github-rebac/internal/service/repository"
	teamsvc "github-rebac/internal/service/team"
	vissvc "github-rebac/internal/service/visualization"
	"github-rebac/migrations"

	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
)

const (
	envLocal = "local"
	envProd  = "prod"

	shutdownTimeout = 10 * time.Second
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)
	log.Info("Starting GitHub ReBAC demo service", slog.String("env", cfg.Env))

	ctx := context.Background()

	db, err := repo.Open(ctx, cfg.Storage.Driver, cfg.Storage.DSN)
	if err != nil {
		log.Error("failed to establish connection with database", sl.Err(err))
		os.Exit(1)
	}
	defer db.Close()

	if err := migrations.Run(ctx, db.DB, cfg.Storage.Driver); err != nil {
		log.Error("failed to apply migrations", sl.Err(err))
		os.Exit(1)
	}

	// initialization of go-transaction-manager
	trManager := manager.Must(trmsqlx.NewDefaultFactory(db))

	userRepo := repo.NewUserRepo(db, trmsqlx.DefaultCtxGetter)
	repositoryRepo := repo.NewRepositoryRepo(db, trmsqlx.DefaultCtxGetter)
	teamRepo := repo.NewTeamRepo(db, trmsqlx.DefaultCtxGetter)
	prRepo := repo.NewPullRequestRepo(db, trmsqlx.DefaultCtxGetter)
	ruleRepo := repo.NewBranchProtectionRepo(db, trmsqlx.DefaultCtxGetter)
	auditRepo := repo.NewAuditRepo(db)

	engine := setupPolicy(ctx, log, cfg.Policy)
	authz := policy.NewAuthorizer(log, engine, cfg.Policy.AllowOnPolicyError)

	gen := ai.NewGemini(cfg.AI.APIKey,
		ai.WithBaseURL(cfg.AI.BaseURL),
		ai.WithModel(cfg.AI.Model),
		ai.WithTimeout(cfg.AI.Timeout),
		ai.WithLogger(log),
	)
	if !gen.Configured() {
		log.Warn("GEMINI_API_KEY not set, AI endpoints return mock responses")
	}

	var auditSink mw.AuditSink
	var auditQueue *audit.Queue
	if cfg.Audit.Enabled {
		auditQueue = audit.NewQueue(log, auditRepo, cfg.Audit.QueueSize)
		// runs until Close, independent of request contexts
		go auditQueue.Run(context.Background())
		auditSink = auditQueue
	}

	repositoryService := reposvc.NewRepositoryService(log, repositoryRepo, authz, engine, engine)
	teamService := teamsvc.NewTeamService(log, trManager, teamRepo, engine)
	prService := prsvc.NewPullRequestService(log, trManager, prRepo, ruleRepo, authz, engine, engine)
	aiService := aisvc.NewAIService(log, prRepo, authz, engine, gen)
	visService := vissvc.NewVisualizationService(log, repositoryRepo, teamRepo, auditRepo, authz, engine)

	handler := router.New(router.Deps{
		Log:           log,
		Auth:          cfg.Auth,
		Users:         userRepo,
		Authz:         authz,
		Audit:         auditSink,
		Repositories:  repoh.NewRepositoryHandler(log, repositoryService),
		Teams:         teamh.NewTeamHandler(log, teamService),
		PullRequests:  prh.NewPrHandler(log, prService),
		AI:            aih.NewAIHandler(log, aiService),
		Visualization: vish.NewVisualizationHandler(log, visService),
	})

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      handler,
		ReadTimeout:  cfg.HTTPServer.ReadTimeout,
		WriteTimeout: cfg.HTTPServer.WriteTimeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info("starting http server", slog.String("address", cfg.HTTPServer.Address))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start http server", sl.Err(err))
			os.Exit(1)
		}
	}()

	sig := <-stop
	log.Info("shutting down", slog.String("signal", sig.String()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to stop http server gracefully", sl.Err(err))
	}

	if auditQueue != nil {
		if err := auditQueue.Close(shutdownCtx); err != nil {
			log.Error("audit queue not drained", sl.Err(err), slog.Int64("dropped", auditQueue.Dropped()))
		}
	}

	log.Info("http server stopped")
}

// setupPolicy returns the Permit.io client when a key is configured and an
// allow-all engine otherwise.
func setupPolicy(ctx context.Context, log *slog.Logger, cfg config.Policy) policy.Engine {
	if cfg.APIKey == "" {
		log.Warn("PERMIT_API_KEY not set, every permission check is allowed")
		return policy.Static{Allow: true}
	}

	client := policy.NewPermitClient(policy.PermitConfig{
		PDPURL:      cfg.PDPURL,
		APIURL:      cfg.APIURL,
		APIKey:      cfg.APIKey,
		Project:     cfg.Project,
		Environment: cfg.Environment,
		Tenant:      cfg.Tenant,
		Timeout:     cfg.Timeout,
		Retries:     cfg.Retries,
	}, policy.WithLogger(log))

	pingCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	resources, err := client.Ping(pingCtx)
	if err != nil {
		log.Error("policy engine not reachable", sl.Err(err), slog.Bool("allow_on_policy_error", cfg.AllowOnPolicyError))
	} else {
		log.Info("connected to policy engine", slog.Int("resources", resources))
	}

	return client
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger
	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	default:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	}
	return log
}

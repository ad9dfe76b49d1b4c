package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/akorchemkin/devstash-backend/internal/adapter/postgres"
	accesslogrepo "github.com/akorchemkin/devstash-backend/internal/adapter/postgres/accesslog"
	artifactrepo "github.com/akorchemkin/devstash-backend/internal/adapter/postgres/artifact"
	tagrepo "github.com/akorchemkin/devstash-backend/internal/adapter/postgres/tag"
	workspacerepo "github.com/akorchemkin/devstash-backend/internal/adapter/postgres/workspace"
	"github.com/akorchemkin/devstash-backend/internal/auth"
	"github.com/akorchemkin/devstash-backend/internal/config"
	"github.com/akorchemkin/devstash-backend/internal/ratelimit"
	artifactsvc "github.com/akorchemkin/devstash-backend/internal/service/artifact"
	searchsvc "github.com/akorchemkin/devstash-backend/internal/service/search"
	tagsvc "github.com/akorchemkin/devstash-backend/internal/service/tag"
	workspacesvc "github.com/akorchemkin/devstash-backend/internal/service/workspace"
	"github.com/akorchemkin/devstash-backend/internal/transport/middleware"
	"github.com/akorchemkin/devstash-backend/internal/transport/rest"
)

// Run wires the application together and serves HTTP until ctx is canceled.
// On cancellation the server drains in-flight requests within the configured
// shutdown timeout.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting devstash",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.MigrateOnStart {
		if err := migrateUp(ctx, cfg.Database.DSN); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
		logger.Info("migrations applied")
	}

	workspaceRepo := workspacerepo.New(pool)
	artifactRepo := artifactrepo.New(pool)
	tagRepo := tagrepo.New(pool)
	accessLogRepo := accesslogrepo.New(pool)
	txManager := postgres.NewTxManager(pool)

	limiter := ratelimit.New(map[ratelimit.Class]ratelimit.Budget{
		ratelimit.ClassReveal: {Limit: cfg.RateLimit.RevealLimit, Window: cfg.RateLimit.RevealWindow},
		ratelimit.ClassSearch: {Limit: cfg.RateLimit.SearchLimit, Window: cfg.RateLimit.SearchWindow},
	}, cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	workspaceService := workspacesvc.NewService(logger, workspaceRepo, artifactRepo, txManager)
	artifactService := artifactsvc.NewService(logger, artifactRepo, workspaceRepo, tagRepo, accessLogRepo, limiter, txManager)
	tagService := tagsvc.NewService(logger, tagRepo, workspaceRepo)
	searchService := searchsvc.NewService(logger, artifactRepo, limiter, cfg.Search.MaxResults)

	verifier := auth.NewVerifier(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)

	handlers := rest.Handlers{
		Workspaces: rest.NewWorkspaceHandler(workspaceService, logger),
		Artifacts:  rest.NewArtifactHandler(artifactService, logger),
		Tags:       rest.NewTagHandler(tagService, logger),
		Search:     rest.NewSearchHandler(searchService, logger),
		Health:     rest.NewHealthHandler(pool, BuildVersion()),
	}

	// Metrics sits inside Auth so the route pattern resolved by the mux is
	// visible to it when the request completes.
	protect := middleware.Chain(
		middleware.Auth(verifier),
		middleware.Metrics(),
	)
	router := rest.NewRouter(handlers, protect)

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	)(router)

	server := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

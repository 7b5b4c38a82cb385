package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/photos-gateway/internal/config"
	"github.com/phrazzld/photos-gateway/internal/domain"
	"github.com/phrazzld/photos-gateway/internal/platform/memory"
	"github.com/phrazzld/photos-gateway/internal/platform/upstream"
	"github.com/phrazzld/photos-gateway/internal/repository"
	"github.com/phrazzld/photos-gateway/internal/service"
	"github.com/phrazzld/photos-gateway/internal/service/auth"
	"github.com/phrazzld/photos-gateway/internal/task"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	upstream   *upstream.Client
	taskRunner *task.TaskRunner

	principals *memory.PrincipalStore
	jwtService auth.JWTService

	authService  *auth.Service
	userService  *service.UserService
	albumService *service.AlbumService
	photoService *service.PhotoService
}

// newApplication wires stores, the upstream client and the services for cfg.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes,
		"issuer", cfg.Auth.Issuer)

	hasher, err := auth.NewPasswordHasher(cfg.Auth.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize password hasher: %w", err)
	}
	if cfg.Auth.PasswordHash == auth.HashSHA256 {
		logger.Warn("passwords are hashed with unsalted SHA-256; set auth.password_hash=bcrypt for salted hashes")
	}

	adminHash, err := hasher.Hash(cfg.Auth.AdminPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}
	app.principals = memory.NewPrincipalStore(adminHash)
	app.authService = auth.NewService(app.principals, app.jwtService, hasher, logger)

	var opts []upstream.Option
	if cfg.Upstream.MirrorWorkers > 0 {
		app.taskRunner = setupTaskRunner(cfg.Upstream, logger)
		opts = append(opts, upstream.WithDispatcher(app.taskRunner))
	}

	app.upstream, err = upstream.NewClient(upstream.Config{
		BaseURL: cfg.Upstream.BaseURL,
		Timeout: time.Duration(cfg.Upstream.TimeoutSeconds) * time.Second,
	}, logger, opts...)
	if err != nil {
		app.cleanup()
		return nil, fmt.Errorf("failed to initialize upstream client: %w", err)
	}

	users := repository.New(repository.UserKind,
		memory.NewOverlay[domain.User](memory.FirstUserID), upstream.NewUserSource(app.upstream), logger)
	albums := repository.New(repository.AlbumKind,
		memory.NewOverlay[domain.Album](memory.FirstAlbumID), upstream.NewAlbumSource(app.upstream), logger)
	photos := repository.New(repository.PhotoKind,
		memory.NewOverlay[domain.Photo](memory.FirstPhotoID), upstream.NewPhotoSource(app.upstream), logger)

	app.userService = service.NewUserService(users, logger)
	app.albumService = service.NewAlbumService(albums, logger)
	app.photoService = service.NewPhotoService(photos, logger)

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// setupTaskRunner starts the worker pool that mirrors creates upstream.
func setupTaskRunner(cfg config.UpstreamConfig, logger *slog.Logger) *task.TaskRunner {
	runnerConfig := task.DefaultTaskRunnerConfig()
	runnerConfig.WorkerCount = cfg.MirrorWorkers
	runnerConfig.QueueSize = cfg.MirrorQueueSize

	runner := task.NewTaskRunner(runnerConfig, logger)
	runner.Start()

	logger.Info("upstream mirroring runs in the background",
		"workers", runnerConfig.WorkerCount,
		"queue_size", runnerConfig.QueueSize)
	return runner
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.taskRunner != nil {
		app.taskRunner.Stop()
	}
	app.logger.Info("Application shutdown completed")
}

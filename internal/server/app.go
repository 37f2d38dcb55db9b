// Package server initializes and runs the application: it opens the
// database, applies migrations, wires the authentication core and services,
// and serves the HTTP API until shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-redis/redis/v8"

	"github.com/mkravets/tasktrack/internal/logging"
	"github.com/mkravets/tasktrack/internal/server/auth"
	"github.com/mkravets/tasktrack/internal/server/config"
	"github.com/mkravets/tasktrack/internal/server/httpserver"
	"github.com/mkravets/tasktrack/internal/server/repositories/repomanager"
	"github.com/mkravets/tasktrack/internal/server/services"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	server *httpserver.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	manager := repomanager.FromDSN(cfg.DatabaseDSN)

	db, err := sql.Open(manager.DriverName(), cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	codec := auth.NewCodec([]byte(cfg.SecretKey),
		cfg.AccessTokenValidityDuration, cfg.RefreshTokenValidityDuration)
	hasher := auth.NewHasher(cfg.BcryptCost)

	usersRepo := manager.Users(db)
	authenticator := auth.NewAuthenticator(usersRepo, hasher)
	sessions := auth.NewSessions(authenticator, codec, usersRepo)
	resolver := auth.NewResolver(codec, usersRepo)

	userService := services.NewUserService(db, manager, cfg)
	todoService := services.NewTodoService(db, manager)

	var limiter *httpserver.RateLimiter
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		limiter = httpserver.NewRateLimiter(client, cfg.RateLimitPerMinute, logger)
	}

	srv := httpserver.NewServer(cfg, logger, sessions, resolver, userService, todoService, limiter)

	return &App{config: cfg, logger: logger, db: db, server: srv}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run applies migrations and serves until the context is cancelled or a
// termination signal arrives.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "starting app")

	app.initSignalHandler(cancelFunc)

	manager := repomanager.FromDSN(app.config.DatabaseDSN)
	if err := manager.RunMigrations(ctx, app.db); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	defer func() {
		if err := app.db.Close(); err != nil {
			app.logger.Error(ctx, "db close error", "error", err)
		}
	}()

	return app.server.Run(ctx)
}

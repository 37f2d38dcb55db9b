package httpserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/mkravets/tasktrack/internal/logging"
	"github.com/mkravets/tasktrack/internal/server/auth"
	"github.com/mkravets/tasktrack/internal/server/config"
	"github.com/mkravets/tasktrack/internal/server/services"
)

const shutdownTimeout = 10 * time.Second

// Server owns the router and the HTTP lifecycle.
type Server struct {
	cfg      *config.Config
	logger   logging.Logger
	sessions *auth.Sessions
	resolver *auth.Resolver
	users    *services.UserService
	todos    *services.TodoService
	limiter  *RateLimiter

	router *mux.Router
	http   *http.Server
}

// NewServer wires the handlers and middleware into a router. limiter may be
// nil, which disables rate limiting on the auth endpoints.
func NewServer(
	cfg *config.Config,
	logger logging.Logger,
	sessions *auth.Sessions,
	resolver *auth.Resolver,
	users *services.UserService,
	todos *services.TodoService,
	limiter *RateLimiter,
) *Server {
	s := &Server{
		cfg:      cfg,
		logger:   logger,
		sessions: sessions,
		resolver: resolver,
		users:    users,
		todos:    todos,
		limiter:  limiter,
	}
	s.router = s.routes()
	s.http = &http.Server{
		Addr:              cfg.EndpointAddr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Handler exposes the router, mainly for httptest.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.recovery, s.requestLogging)

	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	// Credential endpoints are the brute-force surface; only they are
	// rate limited.
	authAPI := api.PathPrefix("/auth").Subrouter()
	if s.limiter != nil {
		authAPI.Use(s.limiter.Middleware)
	}
	authAPI.HandleFunc("/register", s.handleRegister).Methods(http.MethodPost)
	authAPI.HandleFunc("/login", s.handleLogin).Methods(http.MethodPost)
	authAPI.HandleFunc("/refresh", s.handleRefresh).Methods(http.MethodPost)

	protected := api.NewRoute().Subrouter()
	protected.Use(s.authenticate)

	protected.HandleFunc("/users/me", s.handleGetMe).Methods(http.MethodGet)
	protected.HandleFunc("/users/me", s.handleUpdateMe).Methods(http.MethodPut)
	protected.HandleFunc("/users/me/password", s.handleChangePassword).Methods(http.MethodPost)
	protected.HandleFunc("/users/me/avatar", s.handleAvatarUpload).Methods(http.MethodPost)
	protected.HandleFunc("/users/me/avatar", s.handleAvatarDownload).Methods(http.MethodGet)

	admin := protected.NewRoute().Subrouter()
	admin.Use(s.requireSuperuser)
	admin.HandleFunc("/users", s.handleListUsers).Methods(http.MethodGet)
	admin.HandleFunc("/users/{id}/deactivate", s.handleDeactivateUser).Methods(http.MethodPost)

	protected.HandleFunc("/todos", s.handleCreateTodo).Methods(http.MethodPost)
	protected.HandleFunc("/todos", s.handleListTodos).Methods(http.MethodGet)
	protected.HandleFunc("/todos/completed", s.handleClearCompleted).Methods(http.MethodDelete)
	protected.HandleFunc("/todos/{id}", s.handleGetTodo).Methods(http.MethodGet)
	protected.HandleFunc("/todos/{id}", s.handleUpdateTodo).Methods(http.MethodPut)
	protected.HandleFunc("/todos/{id}", s.handleDeleteTodo).Methods(http.MethodDelete)

	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info(ctx, "http server listening", "addr", s.http.Addr)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	s.logger.Info(shutdownCtx, "shutting down http server")
	return s.http.Shutdown(shutdownCtx)
}

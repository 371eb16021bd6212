// Package server wires the application together: it is the composition root
// where the database, services, handlers, and routes are assembled, and it
// owns the HTTP server lifecycle including graceful shutdown.
//
// DEPENDENCY FLOW:
//
//	config.Config → sqlite.DB → services → handlers → routes
//
// Each layer receives only what it needs: services get repository
// interfaces, handlers get services, nothing reaches around a layer.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/sakif/blog-platform/internal/auth"
	"github.com/sakif/blog-platform/internal/config"
	"github.com/sakif/blog-platform/internal/handler"
	"github.com/sakif/blog-platform/internal/middleware"
	sqliteRepo "github.com/sakif/blog-platform/internal/repository/sqlite"
	"github.com/sakif/blog-platform/internal/service"
)

// Server holds the router and the resources it owns.
type Server struct {
	router *chi.Mux
	cfg    *config.Config
	logger *slog.Logger
	db     *sqliteRepo.DB // closed on shutdown
}

// New assembles the full dependency graph from the given config.
func New(cfg *config.Config, logger *slog.Logger) (*Server, error) {
	db, err := sqliteRepo.New(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	tokens, err := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating token service: %w", err)
	}

	s := &Server{
		router: chi.NewRouter(),
		cfg:    cfg,
		logger: logger,
		db:     db,
	}
	s.setupRoutes(tokens)

	return s, nil
}

// Router exposes the configured handler chain. Tests mount it on an
// httptest.Server instead of calling Start.
func (s *Server) Router() http.Handler {
	return s.router
}

// setupRoutes configures middleware, services, and the route table.
//
// ROUTE TABLE:
//
//	POST /signup       → create account, respond with raw token
//	POST /signin       → verify credentials, respond {msg, jwt}
//	POST /blog         → create blog            (auth required)
//	PUT  /blog         → update blog by body.id (auth required)
//	GET  /blog/bulk    → list all blogs         (auth required)
//	GET  /blog/{id}    → fetch one blog         (auth required)
//
// signup/signin are deliberately outside the auth gate; everything under
// /blog is behind it. /blog/bulk is registered as a literal path, so chi
// matches it before the {id} parameter route.
func (s *Server) setupRoutes(tokens *auth.TokenService) {
	s.router.Use(chimiddleware.RequestID)
	s.router.Use(chimiddleware.RealIP)
	s.router.Use(chimiddleware.Recoverer)
	s.router.Use(middleware.Logger(s.logger))

	authService := service.NewAuthService(s.db, tokens, auth.NewPasswordService(), s.logger)
	blogService := service.NewBlogService(s.db, s.logger)

	authHandler := handler.NewAuthHandler(authService, s.logger)
	blogHandler := handler.NewBlogHandler(blogService, s.logger)

	s.router.Post("/signup", authHandler.HandleSignup)
	s.router.Post("/signin", authHandler.HandleSignin)

	s.router.Route("/blog", func(r chi.Router) {
		r.Use(auth.RequireAuth(tokens))
		r.Post("/", blogHandler.HandleCreate)
		r.Put("/", blogHandler.HandleUpdate)
		r.Get("/bulk", blogHandler.HandleList)
		r.Get("/{id}", blogHandler.HandleGetByID)
	})
}

// Start runs the HTTP server until SIGINT/SIGTERM, then shuts down
// gracefully: stop accepting connections, give in-flight requests 30
// seconds, close the database (flushes the WAL).
func (s *Server) Start() error {
	defer s.db.Close()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.cfg.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)

	go func() {
		s.logger.Info("server starting",
			slog.Int("port", s.cfg.Port),
			slog.String("database", s.cfg.DatabaseURL),
		)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}

	case sig := <-quit:
		s.logger.Info("shutdown signal received", slog.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		s.logger.Info("server stopped gracefully")
	}

	return nil
}

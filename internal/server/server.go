package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	apisetup "subgate/internal/api"
	"subgate/internal/bootstrap"
	"subgate/internal/config"
	"subgate/internal/observability"
	"subgate/internal/platform"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Server encapsulates the HTTP server, the update dispatcher and their dependencies
type Server struct {
	httpServer *http.Server
	router     *gin.Engine
	deps       *bootstrap.Dependencies
	config     *config.Config
	logger     *observability.Logger

	stopBot    context.CancelFunc
	dispatched chan struct{}
}

// New creates a new Server instance
func New(cfg *config.Config, deps *bootstrap.Dependencies, logger *observability.Logger) *Server {
	return &Server{
		config: cfg,
		deps:   deps,
		logger: logger,
	}
}

// Setup configures the HTTP router with middleware and routes
func (s *Server) Setup() {
	s.router = gin.New()
	s.router.Use(gin.Recovery())

	// Configure CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "PATCH", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}

	// Apply middleware
	s.router.Use(cors.New(corsConfig))
	s.router.Use(observability.Middleware(s.logger))

	// Register routes
	rootRouter := s.router.Group("/")
	api := apisetup.New(
		rootRouter,
		s.deps.AuthHandler,
		s.deps.CampaignHandler,
		s.deps.WebhookHandler,
		s.deps.APIRateLimit,
		s.deps.HealthChecks,
	)
	api.RegisterRoutes()
}

// Start begins listening for HTTP requests and starts dispatching bot updates
func (s *Server) Start(ctx context.Context) error {
	botCtx, cancel := context.WithCancel(ctx)
	s.stopBot = cancel

	updates, err := s.updates(botCtx)
	if err != nil {
		cancel()
		return err
	}

	s.dispatched = make(chan struct{})
	go func() {
		defer close(s.dispatched)
		if err := s.deps.Dispatcher.Run(botCtx, updates); err != nil && !errors.Is(err, context.Canceled) {
			s.logger.Error(ctx, "dispatcher stopped with error", err)
		}
	}()

	// Create HTTP server
	s.httpServer = &http.Server{
		Addr:    fmt.Sprintf(":%d", s.config.Server.Port),
		Handler: s.router,
	}

	// Run the server in a goroutine so that it doesn't block
	go func() {
		s.logger.Info(ctx, fmt.Sprintf("Server starting on port %d", s.config.Server.Port))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error(ctx, "server failed to start", err)
			os.Exit(1)
		}
	}()

	return nil
}

// updates returns the event source for the configured transport
func (s *Server) updates(ctx context.Context) (<-chan platform.Event, error) {
	if s.config.Telegram.Mode == config.TelegramModeWebhook {
		s.logger.Info(ctx, "receiving telegram updates via webhook")
		return s.deps.Events, nil
	}
	events, err := s.deps.Platform.Poll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start polling: %w", err)
	}
	return events, nil
}

// WaitForShutdown blocks until a shutdown signal is received, then gracefully shuts down
func (s *Server) WaitForShutdown(ctx context.Context) error {
	// Set up a channel to listen for OS signals for shutdown
	quit := make(chan os.Signal, 1)
	// kill (no param) default sends syscall.SIGTERM
	// kill -2 is syscall.SIGINT
	// kill -9 is syscall.SIGKILL but can't be caught, so don't need to add it
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until a signal is received
	<-quit
	s.logger.Info(ctx, "Shutting down server...")

	// The context is used to inform the server it has 5 seconds to finish
	// the request it is currently handling
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Stop intake first so no webhook update is queued after the dispatcher exits
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	// Let the in-flight update finish
	s.stopBot()
	select {
	case <-s.dispatched:
	case <-shutdownCtx.Done():
		s.logger.Warn(ctx, "dispatcher did not stop in time")
	}

	// Cleanup dependencies
	s.deps.Cleanup()

	s.logger.Info(ctx, "Server exited gracefully")
	return nil
}

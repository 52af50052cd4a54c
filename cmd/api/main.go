// Package main is the entry point for the dashboard API server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/grupoherz/conversation-dashboard/internal/auth"
	"github.com/grupoherz/conversation-dashboard/internal/config"
	"github.com/grupoherz/conversation-dashboard/internal/handler"
	"github.com/grupoherz/conversation-dashboard/internal/ingest"
	"github.com/grupoherz/conversation-dashboard/internal/middleware"
	"github.com/grupoherz/conversation-dashboard/internal/model"
	"github.com/grupoherz/conversation-dashboard/internal/store"
	"github.com/grupoherz/conversation-dashboard/internal/widget"
	"github.com/grupoherz/conversation-dashboard/pkg/logger"
	"github.com/grupoherz/conversation-dashboard/pkg/tracing"
)

func main() {
	// Load configuration (.env is optional)
	_ = godotenv.Load()
	cfg := config.Load()

	// Initialize logger
	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()
	logger.SetGlobal(log)

	log.Info("starting dashboard API server")

	// Initialize tracing if enabled
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if cfg.TracingEnabled {
		tp, err := tracing.InitTracer(ctx, "conversation-dashboard", cfg.TracingEndpoint)
		if err != nil {
			log.Warn("failed to initialize tracing")
		} else {
			defer tracing.Shutdown(context.Background(), tp)
		}
	}

	// Snapshot store and webhook poller
	st := store.New()
	webhookClient := ingest.NewClient(ingest.Config{
		URL:     cfg.WebhookURL,
		Timeout: cfg.IngestTimeout,
	}, log)
	poller := ingest.NewPoller(webhookClient, st, cfg.IngestCompany, cfg.IngestInterval, log)
	go poller.Run(ctx)

	// Services
	authSvc := auth.NewService(cfg, log)
	embed := widget.NewEmbed(cfg.WidgetBaseURL, cfg.WidgetAgentID, widget.Persona{
		Name: cfg.WidgetPersonaName,
		Role: cfg.WidgetPersonaRole,
	})

	// Handlers
	healthHandler := handler.NewHealthHandler(st)
	authHandler := handler.NewAuthHandler(authSvc, log)
	conversationHandler := handler.NewConversationHandler(st, log)
	statsHandler := handler.NewStatsHandler(st, log)
	widgetHandler := handler.NewWidgetHandler(embed)

	// Create router
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logging(log))
	r.Use(middleware.SecurityHeaders)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		ExposedHeaders:   []string{"X-Correlation-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health endpoints (no auth required)
	r.Get("/health", healthHandler.Health)
	r.Get("/ready", healthHandler.Ready)

	// Metrics endpoint
	r.Handle("/metrics", promhttp.Handler())

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(cfg.RateLimitRequests, cfg.RateLimitWindow))
			r.Post("/auth/login", authHandler.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWTSecret))
			r.Use(middleware.RateLimit(cfg.RateLimitRequests, cfg.RateLimitWindow))

			r.Route("/conversations", func(r chi.Router) {
				r.Get("/", conversationHandler.List)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(model.RoleAdmin))
					r.Get("/{clientID}/history", conversationHandler.History)
				})
			})

			r.Get("/stats", statsHandler.Stats)
			r.Get("/widget/embed", widgetHandler.Embed)
		})
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      r,
		ReadTimeout:  cfg.ServerReadTimeout,
		WriteTimeout: cfg.ServerWriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info("server listening", zap.String("port", cfg.ServerPort))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", zap.Error(err))
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	// Stop the poller before draining the server
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
	}

	log.Info("server stopped")
}

// Package wellnessservice boots the MindMate HTTP server: config, store,
// generative backend, health checkers and graceful shutdown.
package wellnessservice

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/mindmate/mindmate-server/internal/api"
	"github.com/mindmate/mindmate-server/internal/api/ratelimit"
	"github.com/mindmate/mindmate-server/internal/config"
	"github.com/mindmate/mindmate-server/internal/factory"
	"github.com/mindmate/mindmate-server/internal/genai"
	"github.com/mindmate/mindmate-server/internal/health"
	"github.com/mindmate/mindmate-server/internal/logger"
	"github.com/mindmate/mindmate-server/internal/mood"
	"github.com/mindmate/mindmate-server/internal/safety"
	"github.com/mindmate/mindmate-server/internal/services"
	"github.com/mindmate/mindmate-server/internal/store"
)

// Run starts the wellness service HTTP server and blocks until shutdown
// or error.
func Run() error {
	log := logger.New("mindmate-server")

	cfg, err := config.New()
	if err != nil {
		log.Error().Err(err).Msg("failed to load configuration")
		return err
	}

	log.Info().
		Str("environment", string(cfg.Environment)).
		Str("db_driver", cfg.DBDriver).
		Int("http_port", cfg.HTTPPort).
		Str("genai_model", cfg.GenAIModel).
		Bool("genai_configured", cfg.GenAIAPIKey != "").
		Msg("mindmate server starting")

	ctx, stop := newServerContext()
	defer stop()

	st, err := factory.NewStore(cfg, log)
	if err != nil {
		log.Error().Stack().Err(err).Msg("store unavailable")
		return err
	}

	crisis, err := factory.NewCrisisDetector(cfg)
	if err != nil {
		log.Error().Stack().Err(err).Msg("crisis phrase list unavailable")
		return err
	}

	genaiClient := genai.New(cfg.GenAIBaseURL, cfg.GenAIAPIKey, cfg.GenAIModel, cfg.GenAITimeout)

	svcHealth := startHealthCheckers(ctx, cfg, log, st, genaiClient)
	router := buildRouter(cfg, log, st, crisis, genaiClient, svcHealth.IsHealthy)

	if err := waitUntilHealthy(ctx, cfg, svcHealth); err != nil {
		log.Error().Stack().Err(err).Msg("startup health check failed")
		return err
	}

	server := newHTTPServer(ctx, cfg, router)
	errCh := serveHTTP(server, log, cfg)

	select {
	case <-ctx.Done():
		log.Info().Msg("shutting down server")
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctxShutdown); err != nil {
			log.Error().Stack().Err(err).Msg("server forced to shutdown")
			return err
		}
		log.Info().Msg("server exited")
		return nil
	case err := <-errCh:
		log.Error().Stack().Err(err).Msg("HTTP server failed")
		return err
	}
}

func buildRouter(cfg *config.Config, log zerolog.Logger, st store.Store, crisis *safety.Detector, client *genai.Client, isHealthy func() bool) http.Handler {
	classifier := mood.NewClassifier()
	detector := mood.NewFallback(client, classifier, cfg.GenAITimeout, log)

	limiter := ratelimit.NewLimiterStore(cfg.ChatRateLimitPerMinute, cfg.ChatRateLimitBurst, 5*time.Minute)

	return api.NewRouter(api.Deps{
		Chat:      services.NewChatService(st, client, detector, crisis, log),
		Moods:     services.NewMoodService(st),
		Journal:   services.NewJournalService(st),
		Wellness:  services.NewWellnessService(st),
		Insights:  services.NewInsightsService(st, client, cfg.GenAITimeout, log),
		IsHealthy: isHealthy,
		Limiter:   limiter,
	})
}

// startHealthCheckers starts component checkers and the service-level
// aggregator. The genai checker only joins when an API key is configured;
// without one the rest of the service still comes up and every LLM call
// site degrades to its fallback.
func startHealthCheckers(ctx context.Context, cfg *config.Config, log zerolog.Logger, st store.Store, client *genai.Client) *health.ServiceHealthChecker {
	var checkers []health.HealthChecker
	interval := cfg.HealthCheckInterval

	storeChecker := store.NewStoreHealthChecker(st, log, 2*time.Second)
	go storeChecker.Start(ctx, interval)
	checkers = append(checkers, storeChecker)

	if cfg.GenAIAPIKey != "" {
		genaiChecker := genai.NewHealthChecker(client, log, cfg.GenAITimeout)
		go genaiChecker.Start(ctx, interval)
		checkers = append(checkers, genaiChecker)
	}

	svcHealth := health.NewServiceHealthChecker(log, checkers...)
	go svcHealth.Start(ctx, interval)
	return svcHealth
}

func newHTTPServer(ctx context.Context, cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.GetHTTPAddr(),
		Handler:           handler,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
}

func serveHTTP(server *http.Server, log zerolog.Logger, cfg *config.Config) <-chan error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().Int("port", cfg.HTTPPort).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()
	return errCh
}

// waitUntilHealthy blocks until service health is healthy or the startup
// window expires. Checkers start unhealthy and need one probe cycle.
func waitUntilHealthy(ctx context.Context, cfg *config.Config, svcHealth *health.ServiceHealthChecker) error {
	timeout := 2 * cfg.HealthCheckInterval
	if timeout < 60*time.Second {
		timeout = 60 * time.Second
	}
	deadline := time.Now().Add(timeout)
	ticker := time.NewTicker(250 * time.Millisecond)
	defer ticker.Stop()
	for {
		if svcHealth.IsHealthy() {
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("startup aborted: dependencies not healthy within %s", timeout)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// newServerContext returns a cancellable context bound to SIGINT/SIGTERM.
func newServerContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}

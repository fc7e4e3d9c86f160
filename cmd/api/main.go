package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/sonic-labs/sonic-backend/internal/adapters/gemini"
	"github.com/sonic-labs/sonic-backend/internal/adapters/rest"
	"github.com/sonic-labs/sonic-backend/internal/adapters/spotify"
	"github.com/sonic-labs/sonic-backend/internal/adapters/sqlite"
	"github.com/sonic-labs/sonic-backend/internal/config"
	"github.com/sonic-labs/sonic-backend/internal/core/ports"
	"github.com/sonic-labs/sonic-backend/internal/core/services"
	"github.com/sonic-labs/sonic-backend/internal/observability"
	"github.com/sonic-labs/sonic-backend/internal/worker"
)

func main() {
	// 1. Configuration (Environment Variables)
	// Load .env file if it exists (for development)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	cfg := config.Load()

	logger, err := observability.NewLogger(cfg.Debug)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// 2. Initialize "Driven" Adapters (The Tools)
	// -- Settings store
	settingsStore, err := sqlite.NewAdapter(cfg.SettingsDBPath)
	if err != nil {
		logger.Fatal("failed to initialize database", zap.Error(err))
	}
	defer settingsStore.Close()

	// -- Recommendation client
	recommender := gemini.NewClient(cfg.RecommenderURL, cfg.RecommenderAPIKey, cfg.RecommenderTimeout)

	// -- Optional Spotify link resolver
	var resolver ports.LinkResolver
	if cfg.SpotifyEnabled() {
		resolver = spotify.NewClient(context.Background(), cfg.SpotifyClientID, cfg.SpotifyClientSecret)
		logger.Info("spotify link resolver enabled")
	} else {
		logger.Info("spotify link resolver disabled, song cards carry search links only")
	}

	// 3. Initialize Core Logic (The Driver)
	// Dependency Injection: the agnostic service receives the adapters,
	// the compiler guarantees they satisfy the ports.
	scheduler := worker.NewScheduler()
	defer scheduler.Stop()

	svc := services.NewChatService(recommender, resolver, scheduler, logger, cfg.ReplyDelay)

	// 4. Initialize "Driving" Adapter (The Interface)
	handler := rest.NewHandler(svc, settingsStore, logger)

	// 5. Start the Server
	logger.Info("Sonic API is running", zap.String("addr", cfg.Addr))

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 15 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		err := srv.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			serverErr <- err
			return
		}
		serverErr <- nil
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-serverErr:
		if err != nil {
			logger.Fatal("server failed", zap.Error(err))
		}
	case <-ctx.Done():
		logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown error", zap.Error(err))
		}
	}
}

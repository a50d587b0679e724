package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"donategate/internal/adapter/repo"
	"donategate/internal/domain"
	"donategate/internal/http/handlers"
	"donategate/internal/http/httpapi"
	"donategate/internal/infra"
	"donategate/internal/telegram"
)

func main() {
	// Load .env (optional)
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()
	dbpool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}
	defer dbpool.Close()

	runner := infra.NewSQLRunner(dbpool, logger)
	requests := repo.NewDonationRequestRepository(runner)

	// The notifier is optional: missing credentials or an unreachable Bot
	// API downgrade the service to storage-only, they never stop it.
	var notifier domain.DecisionNotifier
	if cfg.TelegramConfigured() {
		n, err := telegram.NewNotifier(cfg.TelegramBotToken, cfg.TelegramAdminChatID, cfg.TelegramTimeout, logger)
		if err != nil {
			logger.Error().Err(err).Msg("telegram notifier unavailable, continuing without notifications")
		} else {
			notifier = n
		}
	} else {
		logger.Warn().Msg("telegram credentials not configured, notifications disabled")
	}

	app := handlers.NewApp(requests, notifier, logger)
	router := httpapi.NewRouter(app, logger)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}

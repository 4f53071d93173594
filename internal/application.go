package application

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/yahtzee-backend/internal/config"
	"github.com/rocketscienceinc/yahtzee-backend/internal/repository"
	"github.com/rocketscienceinc/yahtzee-backend/internal/repository/storage"
	"github.com/rocketscienceinc/yahtzee-backend/internal/usecase"
	"github.com/rocketscienceinc/yahtzee-backend/transport/rest"
)

// RunApp - runs the application until SIGINT or SIGTERM.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr(), conf.Redis.DB)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err := redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	playerRepo := repository.NewPlayerRepository(redisStorage.Connection, conf.Redis.PlayerTTL)
	scoreManager := usecase.NewScoreManager(logger, playerRepo)

	log.Info("Starting HTTP server", "port", conf.HTTPPort)

	if err = rest.New(logger, scoreManager).Start(ctx, conf.HTTPPort); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	log.Info("Application context canceled, shutting down")

	return nil
}

package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/kerstenremco/tic-tac-toe/internal/config"
	"github.com/kerstenremco/tic-tac-toe/internal/repository"
	"github.com/kerstenremco/tic-tac-toe/internal/service"
	"github.com/kerstenremco/tic-tac-toe/internal/usecase"
	"github.com/kerstenremco/tic-tac-toe/transport/rest"
	"golang.org/x/sync/errgroup"
)

var ErrPortNotSet = errors.New("http port is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	if conf.HTTPPort == "" {
		return ErrPortNotSet
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	sessionRepo := repository.NewSessionRepository()
	botService := service.NewBotService()
	gameManager := usecase.NewGameManager(logger, sessionRepo, botService, conf.Session.IdleTimeout)
	handlers := rest.NewHandlers(logger, gameManager)

	errg, ctx := errgroup.WithContext(ctx)

	// run HTTP server
	errg.Go(func() error {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if err := rest.Start(ctx, conf.HTTPPort, rest.NewRouter(handlers)); err != nil {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	// evict abandoned sessions
	errg.Go(func() error {
		log.Info("Starting session janitor", "interval", conf.Session.SweepInterval, "idleTimeout", conf.Session.IdleTimeout)
		return gameManager.RunJanitor(ctx, conf.Session.SweepInterval)
	})

	if err := errg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	log.Info("Application context canceled, shutting down")

	return nil
}

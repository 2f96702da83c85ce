package suite

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/kerstenremco/tic-tac-toe/internal/repository"
	"github.com/kerstenremco/tic-tac-toe/internal/service"
)

const maxWaitDuration = 120 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Sessions repository.SessionRepository
	Bot      service.BotService
}

func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	return ctx, &Suite{
		T:        t,
		Logger:   logger,
		Sessions: repository.NewSessionRepository(),
		Bot:      service.NewBotService(),
	}
}

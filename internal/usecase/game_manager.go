package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/kerstenremco/tic-tac-toe/internal/apperror"
	"github.com/kerstenremco/tic-tac-toe/internal/entity"
	"github.com/kerstenremco/tic-tac-toe/internal/service"
	"github.com/kerstenremco/tic-tac-toe/internal/tictactoe"
)

var ErrInvalidSweepInterval = errors.New("sweep interval must be positive")

type sessionRepo interface {
	CreateOrUpdate(ctx context.Context, session *tictactoe.Session) error
	GetByID(ctx context.Context, id string) (tictactoe.View, error)
	Update(ctx context.Context, id string, fn func(session *tictactoe.Session) error) (tictactoe.View, error)
	DeleteByID(ctx context.Context, id string) error
	DeleteIdle(ctx context.Context, before time.Time) int
}

type GameManager struct {
	logger      *slog.Logger
	sessionRepo sessionRepo
	botService  service.BotService
	idleTimeout time.Duration
}

func NewGameManager(logger *slog.Logger, sessionRepo sessionRepo, botService service.BotService, idleTimeout time.Duration) *GameManager {
	return &GameManager{
		logger:      logger.With("component", "game_manager"),
		sessionRepo: sessionRepo,
		botService:  botService,
		idleTimeout: idleTimeout,
	}
}

// StartSession opens a fresh game in the given mode.
func (that *GameManager) StartSession(ctx context.Context, mode entity.Mode) (tictactoe.View, error) {
	session := tictactoe.NewSession(uuid.NewString(), mode, that.botService)

	if err := that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return tictactoe.View{}, fmt.Errorf("failed to create session: %w", err)
	}

	that.logger.Info("session started", "sessionID", session.ID(), "mode", mode)

	return session.View(), nil
}

func (that *GameManager) GetSession(ctx context.Context, id string) (tictactoe.View, error) {
	view, err := that.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return tictactoe.View{}, fmt.Errorf("failed to get session: %w", err)
	}

	return view, nil
}

// AttemptMove plays for the active mark. An illegal move is not an error for the caller:
// the session is returned unchanged.
func (that *GameManager) AttemptMove(ctx context.Context, id string, row, col int) (tictactoe.View, error) {
	log := that.logger.With("method", "AttemptMove", "sessionID", id, "row", row, "col", col)

	var placed int
	view, err := that.sessionRepo.Update(ctx, id, func(session *tictactoe.Session) error {
		before := session.Board()
		err := session.AttemptMove(row, col)
		after := session.Board()
		placed = after.Filled() - before.Filled()
		return err
	})

	switch {
	case errors.Is(err, apperror.ErrSessionNotFound):
		return tictactoe.View{}, fmt.Errorf("failed to make turn: %w", err)
	case errors.Is(err, apperror.ErrIllegalMove):
		log.Debug("move ignored", "reason", err)
		return view, nil
	case err != nil:
		log.Error("failed to make turn", "error", err)
		return tictactoe.View{}, fmt.Errorf("failed to make turn: %w", err)
	}

	if placed == 2 && view.LastBotMove != nil {
		log.Debug("bot moved",
			"cell", view.LastBotMove.Cell.String(),
			"score", view.LastBotMove.Score,
			"leaves", view.LastBotMove.Leaves,
		)
	}

	if view.State == tictactoe.StateGameOver {
		log.Info("game over", "outcome", view.Outcome.String())
	}

	return view, nil
}

// ResetSession clears the board. An empty mode keeps the session's current one.
func (that *GameManager) ResetSession(ctx context.Context, id string, mode entity.Mode) (tictactoe.View, error) {
	view, err := that.sessionRepo.Update(ctx, id, func(session *tictactoe.Session) error {
		if mode == "" {
			session.Reset()
			return nil
		}
		session.Restart(mode)
		return nil
	})
	if err != nil {
		return tictactoe.View{}, fmt.Errorf("failed to reset session: %w", err)
	}

	that.logger.Info("session reset", "sessionID", id, "mode", view.Mode)

	return view, nil
}

func (that *GameManager) EndSession(ctx context.Context, id string) error {
	if err := that.sessionRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}

	that.logger.Info("session ended", "sessionID", id)

	return nil
}

// SweepIdle drops sessions nobody touched within the idle timeout.
func (that *GameManager) SweepIdle(ctx context.Context, now time.Time) int {
	deleted := that.sessionRepo.DeleteIdle(ctx, now.Add(-that.idleTimeout))
	if deleted > 0 {
		that.logger.Info("idle sessions removed", "count", deleted)
	}

	return deleted
}

// RunJanitor sweeps idle sessions every interval until ctx is done.
func (that *GameManager) RunJanitor(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidSweepInterval, interval)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			that.SweepIdle(ctx, now)
		}
	}
}

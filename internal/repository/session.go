package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/kerstenremco/tic-tac-toe/internal/apperror"
	"github.com/kerstenremco/tic-tac-toe/internal/tictactoe"
	"github.com/puzpuzpuz/xsync/v3"
)

var ErrEmptySessionID = errors.New("session id is empty")

type SessionRepository interface {
	CreateOrUpdate(ctx context.Context, session *tictactoe.Session) error
	GetByID(ctx context.Context, id string) (tictactoe.View, error)
	Update(ctx context.Context, id string, fn func(session *tictactoe.Session) error) (tictactoe.View, error)
	DeleteByID(ctx context.Context, id string) error
	DeleteIdle(ctx context.Context, before time.Time) int
	Count() int
}

type storedSession struct {
	mu        sync.Mutex
	session   *tictactoe.Session
	updatedAt time.Time
	removed   bool
}

type memorySessions struct {
	sessions *xsync.MapOf[string, *storedSession]
	now      func() time.Time
}

// NewSessionRepository keeps sessions in process memory only.
func NewSessionRepository() SessionRepository {
	return NewSessionRepositoryWithClock(time.Now)
}

func NewSessionRepositoryWithClock(now func() time.Time) SessionRepository {
	return &memorySessions{
		sessions: xsync.NewMapOf[string, *storedSession](),
		now:      now,
	}
}

func (that *memorySessions) CreateOrUpdate(_ context.Context, session *tictactoe.Session) error {
	if session.ID() == "" {
		return ErrEmptySessionID
	}

	that.sessions.Store(session.ID(), &storedSession{
		session:   session,
		updatedAt: that.now(),
	})

	return nil
}

func (that *memorySessions) GetByID(_ context.Context, id string) (tictactoe.View, error) {
	stored, ok := that.sessions.Load(id)
	if !ok {
		return tictactoe.View{}, apperror.ErrSessionNotFound
	}

	stored.mu.Lock()
	defer stored.mu.Unlock()

	if stored.removed {
		return tictactoe.View{}, apperror.ErrSessionNotFound
	}

	return stored.session.View(), nil
}

// Update runs fn while holding the session's own lock, so moves on one session never interleave.
// The returned view reflects the session after fn, even when fn fails.
func (that *memorySessions) Update(_ context.Context, id string, fn func(session *tictactoe.Session) error) (tictactoe.View, error) {
	stored, ok := that.sessions.Load(id)
	if !ok {
		return tictactoe.View{}, apperror.ErrSessionNotFound
	}

	stored.mu.Lock()
	defer stored.mu.Unlock()

	if stored.removed {
		return tictactoe.View{}, apperror.ErrSessionNotFound
	}

	err := fn(stored.session)
	stored.updatedAt = that.now()

	return stored.session.View(), err
}

func (that *memorySessions) DeleteByID(_ context.Context, id string) error {
	stored, ok := that.sessions.LoadAndDelete(id)
	if !ok {
		return apperror.ErrSessionNotFound
	}

	stored.mu.Lock()
	stored.removed = true
	stored.mu.Unlock()

	return nil
}

// DeleteIdle drops every session last touched before the given time and reports how many went.
// The idle check and the removal happen under the session's lock, so a concurrent Update keeps it alive.
func (that *memorySessions) DeleteIdle(_ context.Context, before time.Time) int {
	deleted := 0

	that.sessions.Range(func(id string, _ *storedSession) bool {
		that.sessions.Compute(id, func(stored *storedSession, loaded bool) (*storedSession, bool) {
			if !loaded {
				return nil, true
			}

			stored.mu.Lock()
			defer stored.mu.Unlock()

			if !stored.updatedAt.Before(before) {
				return stored, false
			}

			stored.removed = true
			deleted++
			return nil, true
		})

		return true
	})

	return deleted
}

func (that *memorySessions) Count() int {
	return that.sessions.Size()
}

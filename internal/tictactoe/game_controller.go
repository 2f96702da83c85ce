package tictactoe

import (
	"fmt"

	"github.com/kerstenremco/tic-tac-toe/internal/apperror"
	"github.com/kerstenremco/tic-tac-toe/internal/entity"
	"github.com/kerstenremco/tic-tac-toe/internal/service"
)

type State string

const (
	StateAwaitingMove State = "awaiting_move"
	StateGameOver     State = "game_over"
)

// BotMark is the mark the computer plays in single-player mode.
const BotMark = entity.PlayerO

type moveFinder interface {
	FindBestMove(board *entity.Board) (service.Decision, error)
}

// Session is one game: the board, whose turn it is and how the game ended.
// It is not safe for concurrent use.
type Session struct {
	id      string
	mode    entity.Mode
	board   entity.Board
	turn    entity.Mark
	outcome entity.Outcome

	bot         moveFinder
	lastBotMove *service.Decision
}

// View is the read-only snapshot handed to whatever presents the game.
type View struct {
	ID                 string            `json:"id"`
	Mode               entity.Mode       `json:"mode"`
	Board              entity.Board      `json:"board"`
	State              State             `json:"state"`
	Turn               entity.Mark       `json:"turn,omitempty"`
	Outcome            entity.Outcome    `json:"outcome"`
	InteractionEnabled bool              `json:"interaction_enabled"`
	LastBotMove        *service.Decision `json:"last_bot_move,omitempty"`
}

// NewSession starts a game awaiting X. A nil bot falls back to the minimax bot.
func NewSession(id string, mode entity.Mode, bot moveFinder) *Session {
	if bot == nil {
		bot = service.NewBotService()
	}

	session := &Session{
		id:   id,
		mode: mode,
		bot:  bot,
	}
	session.Reset()

	return session
}

func (that *Session) ID() string {
	return that.id
}

func (that *Session) Mode() entity.Mode {
	return that.mode
}

func (that *Session) Board() entity.Board {
	return that.board
}

func (that *Session) Turn() entity.Mark {
	return that.turn
}

func (that *Session) Outcome() entity.Outcome {
	return that.outcome
}

func (that *Session) State() State {
	if that.outcome.IsOver() {
		return StateGameOver
	}
	return StateAwaitingMove
}

// AttemptMove plays the active mark at (row, col). In single-player mode the bot
// answers before AttemptMove returns. Rejected moves leave the session untouched
// and return an error wrapping apperror.ErrIllegalMove. If the bot fails to answer,
// the human move is rolled back as well.
func (that *Session) AttemptMove(row, col int) error {
	if that.outcome.IsOver() {
		return fmt.Errorf("%w: %w", apperror.ErrIllegalMove, apperror.ErrGameFinished)
	}

	board, turn, outcome, lastBotMove := that.board, that.turn, that.outcome, that.lastBotMove

	if err := that.applyMove(row, col); err != nil {
		that.board, that.turn, that.outcome, that.lastBotMove = board, turn, outcome, lastBotMove
		return err
	}

	return nil
}

// Reset clears the board and hands the first move back to X.
func (that *Session) Reset() {
	that.board.Reset()
	that.turn = entity.PlayerX
	that.outcome = entity.Ongoing
	that.lastBotMove = nil
}

// Restart resets the session and switches it to another mode.
func (that *Session) Restart(mode entity.Mode) {
	that.mode = mode
	that.Reset()
}

func (that *Session) View() View {
	view := View{
		ID:                 that.id,
		Mode:               that.mode,
		Board:              that.board,
		State:              that.State(),
		Turn:               that.turn,
		Outcome:            that.outcome,
		InteractionEnabled: !that.outcome.IsOver(),
	}

	if that.lastBotMove != nil {
		decision := *that.lastBotMove
		view.LastBotMove = &decision
	}

	return view
}

func (that *Session) applyMove(row, col int) error {
	if err := that.board.Place(row, col, that.turn); err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrIllegalMove, err)
	}

	that.outcome = entity.EvaluateOutcome(&that.board)
	if that.outcome.IsOver() {
		that.turn = entity.EmptyCell
		return nil
	}

	that.turn = that.turn.Opponent()

	if that.turn == BotMark && that.mode.WithBot() {
		return that.playBot()
	}

	return nil
}

func (that *Session) playBot() error {
	decision, err := that.bot.FindBestMove(&that.board)
	if err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	that.lastBotMove = &decision

	if err = that.applyMove(decision.Cell.Row, decision.Cell.Col); err != nil {
		return fmt.Errorf("%w: bot chose %s: %v", apperror.ErrInvalidSearch, decision.Cell, err) //nolint: errorlint // a rejected bot move is a defect, not an illegal user move
	}

	return nil
}

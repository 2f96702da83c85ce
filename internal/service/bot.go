package service

import (
	"fmt"
	"math"

	"github.com/kerstenremco/tic-tac-toe/internal/apperror"
	"github.com/kerstenremco/tic-tac-toe/internal/entity"
)

const (
	scoreWin  = 10
	scoreLoss = -10
	scoreDraw = 0
)

type BotService interface {
	FindBestMove(board *entity.Board) (Decision, error)
}

// Decision is the move picked by the bot together with what it took to find it.
type Decision struct {
	Cell   entity.Cell `json:"cell"`
	Score  int         `json:"score"`
	Leaves int         `json:"leaves"`
}

// minimaxBot plays O and searches the whole remaining game tree without pruning.
type minimaxBot struct {
	mark entity.Mark
}

func NewBotService() BotService {
	return &minimaxBot{mark: entity.PlayerO}
}

// FindBestMove mutates the board in place while searching and restores every cell before returning.
func (that *minimaxBot) FindBestMove(board *entity.Board) (Decision, error) {
	if outcome := entity.EvaluateOutcome(board); outcome.IsOver() {
		return Decision{}, fmt.Errorf("%w: %s", apperror.ErrInvalidSearch, outcome)
	}

	tree := &search{board: board, bot: that.mark}

	best := Decision{Score: math.MinInt}
	for _, cell := range board.EmptyCells() {
		score := tree.try(cell, that.mark, false)
		if score > best.Score {
			best.Score = score
			best.Cell = cell
		}
	}
	best.Leaves = tree.leaves

	return best, nil
}

type search struct {
	board  *entity.Board
	bot    entity.Mark
	leaves int
}

// try places mark on cell, scores the resulting position and undoes the move.
func (that *search) try(cell entity.Cell, mark entity.Mark, isMaximizing bool) int {
	that.board[cell.Row][cell.Col] = mark
	defer that.board.Clear(cell.Row, cell.Col)

	return that.evaluate(isMaximizing)
}

func (that *search) evaluate(isMaximizing bool) int {
	if outcome := entity.EvaluateOutcome(that.board); outcome.IsOver() {
		that.leaves++
		return that.score(outcome)
	}

	if isMaximizing {
		best := math.MinInt
		for _, cell := range that.board.EmptyCells() {
			best = max(best, that.try(cell, that.bot, false))
		}
		return best
	}

	best := math.MaxInt
	for _, cell := range that.board.EmptyCells() {
		best = min(best, that.try(cell, that.bot.Opponent(), true))
	}
	return best
}

func (that *search) score(outcome entity.Outcome) int {
	switch {
	case outcome.Result == entity.ResultDraw:
		return scoreDraw
	case outcome.Winner == that.bot:
		return scoreWin
	default:
		return scoreLoss
	}
}

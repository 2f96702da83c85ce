package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateOutcome(t *testing.T) {
	const (
		x = PlayerX
		o = PlayerO
		e = EmptyCell
	)

	tests := []struct {
		name  string
		board Board
		want  Outcome
	}{
		{
			name:  "Empty board is ongoing",
			board: Board{},
			want:  Ongoing,
		},
		{
			name:  "Row 0 X wins",
			board: Board{{x, x, x}, {e, o, e}, {e, o, e}},
			want:  Win(x),
		},
		{
			name:  "Row 2 O wins",
			board: Board{{x, x, e}, {e, x, e}, {o, o, o}},
			want:  Win(o),
		},
		{
			name:  "Column 1 O wins",
			board: Board{{x, o, e}, {e, o, x}, {e, o, x}},
			want:  Win(o),
		},
		{
			name:  "Column 0 X wins",
			board: Board{{x, o, e}, {x, o, e}, {x, e, e}},
			want:  Win(x),
		},
		{
			name:  "Main diagonal X wins",
			board: Board{{x, o, e}, {e, x, o}, {e, e, x}},
			want:  Win(x),
		},
		{
			name:  "Anti diagonal O wins",
			board: Board{{x, x, o}, {e, o, x}, {o, e, e}},
			want:  Win(o),
		},
		{
			name:  "Win on the last cell beats the draw check",
			board: Board{{x, o, x}, {o, x, o}, {o, x, x}},
			want:  Win(x),
		},
		{
			name:  "Full board without a line is a draw",
			board: Board{{x, o, x}, {x, o, o}, {o, x, x}},
			want:  Draw(),
		},
		{
			name:  "Partial board without a line is ongoing",
			board: Board{{x, o, x}, {e, o, e}, {o, x, e}},
			want:  Ongoing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := tt.board

			got := EvaluateOutcome(&tt.board)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, before, tt.board, "evaluation must not touch the board")
		})
	}
}

func TestEvaluateOutcome_ScenarioB(t *testing.T) {
	// Given: X to move on [[X,X,-],[O,O,-],[-,-,-]]
	board := Board{
		{PlayerX, PlayerX, EmptyCell},
		{PlayerO, PlayerO, EmptyCell},
	}
	require.Equal(t, Ongoing, EvaluateOutcome(&board))

	// When: X completes the top row
	require.NoError(t, board.Place(0, 2, PlayerX))

	// Then: X has won immediately
	assert.Equal(t, Win(PlayerX), EvaluateOutcome(&board))
}

func TestEvaluateOutcome_ScenarioC(t *testing.T) {
	// Given: alternating play X,O,X,O,X,O,X,O,X that never lines up three
	moves := []Cell{{0, 0}, {0, 1}, {0, 2}, {1, 1}, {1, 0}, {1, 2}, {2, 1}, {2, 0}, {2, 2}}

	var board Board
	mark := PlayerX
	for i, move := range moves {
		require.NoError(t, board.Place(move.Row, move.Col, mark))
		if i < len(moves)-1 {
			require.Equal(t, Ongoing, EvaluateOutcome(&board), "move %d", i)
		}
		mark = mark.Opponent()
	}

	// Then: the full board is a draw
	assert.Equal(t, Draw(), EvaluateOutcome(&board))
}

// Every one of the 3^9 mark assignments yields exactly one consistent result.
func TestEvaluateOutcome_IsTotal(t *testing.T) {
	marks := [3]Mark{EmptyCell, PlayerX, PlayerO}

	for n := range 19683 {
		var board Board
		code := n
		for _, cell := range AllCells {
			board[cell.Row][cell.Col] = marks[code%3]
			code /= 3
		}

		got := EvaluateOutcome(&board)

		switch got.Result {
		case ResultWin:
			require.True(t, got.Winner.IsPlayer(), board.String())
		case ResultDraw:
			require.True(t, board.IsFull(), board.String())
			require.Equal(t, EmptyCell, got.Winner)
		case ResultOngoing:
			require.False(t, board.IsFull(), board.String())
			require.Equal(t, EmptyCell, got.Winner)
		default:
			t.Fatalf("unexpected result %q", got.Result)
		}
		require.Equal(t, got, EvaluateOutcome(&board))
	}
}

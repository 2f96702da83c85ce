package entity

type Result string

const (
	ResultOngoing Result = "ongoing"
	ResultWin     Result = "win"
	ResultDraw    Result = "draw"
)

// WinCombos holds every line that wins the game: three rows, three columns, two diagonals.
var WinCombos = [8][3]Cell{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Outcome is derived from a board and never stored on its own.
type Outcome struct {
	Result Result `json:"result"`
	Winner Mark   `json:"winner,omitempty"`
}

var Ongoing = Outcome{Result: ResultOngoing}

func Win(mark Mark) Outcome {
	return Outcome{Result: ResultWin, Winner: mark}
}

func Draw() Outcome {
	return Outcome{Result: ResultDraw}
}

func (that Outcome) IsOver() bool {
	return that.Result != ResultOngoing
}

func (that Outcome) String() string {
	switch that.Result {
	case ResultWin:
		return string(that.Winner) + " has won"
	case ResultDraw:
		return "draw"
	default:
		return "ongoing"
	}
}

// EvaluateOutcome checks all 8 lines before falling back to the draw check.
func EvaluateOutcome(board *Board) Outcome {
	for _, combo := range WinCombos {
		a := board[combo[0].Row][combo[0].Col]
		b := board[combo[1].Row][combo[1].Col]
		c := board[combo[2].Row][combo[2].Col]
		if a != EmptyCell && a == b && b == c {
			return Win(a)
		}
	}

	// the game will continue until all the squares are full
	if !board.IsFull() {
		return Ongoing
	}

	return Draw()
}

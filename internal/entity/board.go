package entity

import (
	"fmt"
	"strings"

	"github.com/kerstenremco/tic-tac-toe/internal/apperror"
)

const BoardSize = 3

// Cell addresses one square of the board by row and column.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Cell) Valid() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Col >= 0 && that.Col < BoardSize
}

func (that Cell) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}

// AllCells lists every cell in row-major order.
var AllCells = func() [BoardSize * BoardSize]Cell {
	var cells [BoardSize * BoardSize]Cell
	for row := range BoardSize {
		for col := range BoardSize {
			cells[row*BoardSize+col] = Cell{Row: row, Col: col}
		}
	}
	return cells
}()

// Board is the 3x3 grid. The zero value is an empty board.
type Board [BoardSize][BoardSize]Mark

// At returns the mark on a cell, or EmptyCell for out-of-range coordinates.
func (that *Board) At(row, col int) Mark {
	if !(Cell{Row: row, Col: col}).Valid() {
		return EmptyCell
	}
	return that[row][col]
}

// IsEmpty reports whether the cell holds no mark. Out-of-range cells are never empty.
func (that *Board) IsEmpty(row, col int) bool {
	if !(Cell{Row: row, Col: col}).Valid() {
		return false
	}
	return that[row][col] == EmptyCell
}

// Place puts mark on an empty cell. The board is left untouched on error.
func (that *Board) Place(row, col int, mark Mark) error {
	cell := Cell{Row: row, Col: col}
	if !cell.Valid() {
		return fmt.Errorf("%w: %s", apperror.ErrInvalidCell, cell)
	}

	if !mark.IsPlayer() {
		return fmt.Errorf("%w: %q", ErrInvalidMark, mark)
	}

	if that[row][col] != EmptyCell {
		return fmt.Errorf("%w: %s", apperror.ErrCellOccupied, cell)
	}

	that[row][col] = mark

	return nil
}

// Clear empties a cell. It only exists so the search can undo hypothetical moves.
func (that *Board) Clear(row, col int) {
	if !(Cell{Row: row, Col: col}).Valid() {
		return
	}
	that[row][col] = EmptyCell
}

// IsFull reports whether no empty cell is left.
func (that *Board) IsFull() bool {
	for _, cell := range AllCells {
		if that[cell.Row][cell.Col] == EmptyCell {
			return false
		}
	}
	return true
}

// Filled counts the cells holding a mark.
func (that *Board) Filled() int {
	filled := 0
	for _, cell := range AllCells {
		if that[cell.Row][cell.Col] != EmptyCell {
			filled++
		}
	}
	return filled
}

// EmptyCells returns the free cells in row-major order.
func (that *Board) EmptyCells() []Cell {
	cells := make([]Cell, 0, len(AllCells))
	for _, cell := range AllCells {
		if that[cell.Row][cell.Col] == EmptyCell {
			cells = append(cells, cell)
		}
	}
	return cells
}

// Reset empties all nine cells.
func (that *Board) Reset() {
	*that = Board{}
}

func (that *Board) String() string {
	var s strings.Builder
	for row := range BoardSize {
		if row > 0 {
			s.WriteByte('\n')
		}
		for col := range BoardSize {
			if mark := that[row][col]; mark == EmptyCell {
				s.WriteByte('-')
			} else {
				s.WriteString(string(mark))
			}
		}
	}
	return s.String()
}

package entity

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/rocketscienceinc/othello/internal/apperror"
)

// Size - the number of rows and columns of the board.
const Size = 8

var (
	ErrOutOfBounds  = fmt.Errorf("%w: position is outside the board", apperror.ErrInvalidMove)
	ErrCellOccupied = fmt.Errorf("%w: cell is already occupied", apperror.ErrInvalidMove)
	ErrNotAColor    = fmt.Errorf("%w: piece must be white or black", apperror.ErrInvalidMove)
	ErrNoCapture    = fmt.Errorf("%w: move does not capture any piece", apperror.ErrInvalidMove)

	ErrInvalidBoard = errors.New("invalid board layout")
)

// Position - a cell address. Rows and columns are 1-based, 1..Size.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Grid - read-only copy of the board, grid[r-1][c-1] holds cell (r, c).
type Grid [Size][Size]Cell

type direction struct {
	dRow int
	dCol int
}

var directions = [8]direction{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// ray - outcome of scanning one direction from a candidate cell.
// run is the number of opponent pieces next to the cell.
type ray struct {
	captures bool
	run      int
}

// Board - the 8x8 playing field. Cells are stored flat and zero-based,
// the exported methods take 1-based coordinates.
type Board struct {
	cells [Size * Size]Cell
}

// NewBoard - creates a board set to the starting position.
func NewBoard() *Board {
	board := &Board{}
	board.Initialize()

	return board
}

// ParseBoard - builds a board from Size rows of Size glyphs ('.', 'O', 'X'). Whitespace inside a row is ignored.
func ParseBoard(rows ...string) (*Board, error) {
	if len(rows) != Size {
		return nil, fmt.Errorf("%w: expected %d rows, got %d", ErrInvalidBoard, Size, len(rows))
	}

	board := &Board{}
	for r, line := range rows {
		col := 0
		for _, glyph := range line {
			if unicode.IsSpace(glyph) {
				continue
			}

			cell, ok := cellFromGlyph(glyph)
			if !ok {
				return nil, fmt.Errorf("%w: unknown glyph %q in row %d", ErrInvalidBoard, glyph, r+1)
			}

			if col >= Size {
				return nil, fmt.Errorf("%w: row %d has more than %d cells", ErrInvalidBoard, r+1, Size)
			}

			board.cells[index(r+1, col+1)] = cell
			col++
		}

		if col != Size {
			return nil, fmt.Errorf("%w: row %d has %d cells", ErrInvalidBoard, r+1, col)
		}
	}

	return board, nil
}

// Initialize - clears the board and places the four starting pieces.
func (that *Board) Initialize() {
	that.cells = [Size * Size]Cell{}

	that.set(4, 4, Black)
	that.set(4, 5, White)
	that.set(5, 4, White)
	that.set(5, 5, Black)
}

// At - returns the state of (row, col), Empty outside the board.
func (that *Board) At(row, col int) Cell {
	if !inBounds(row, col) {
		return Empty
	}

	return that.cells[index(row, col)]
}

// IsLegalMove - reports whether color may be placed at (row, col).
func (that *Board) IsLegalMove(row, col int, color Cell) bool {
	return that.checkMove(row, col, color) == nil
}

// ApplyMove - places color at (row, col) and flips every captured run.
// An illegal move leaves the board untouched and returns an error wrapping apperror.ErrInvalidMove.
func (that *Board) ApplyMove(row, col int, color Cell) error {
	if err := that.checkMove(row, col, color); err != nil {
		return err
	}

	origin := Position{Row: row, Col: col}

	// all directions are scanned before the first flip
	var rays [len(directions)]ray
	for i, dir := range directions {
		rays[i] = that.scan(origin, dir, color)
	}

	for i, dir := range directions {
		if !rays[i].captures {
			continue
		}

		r, c := row+dir.dRow, col+dir.dCol
		for range rays[i].run {
			that.set(r, c, color)
			r += dir.dRow
			c += dir.dCol
		}
	}

	that.set(row, col, color)

	return nil
}

// IsFull - true when no cell is Empty.
func (that *Board) IsFull() bool {
	for _, cell := range that.cells {
		if cell == Empty {
			return false
		}
	}

	return true
}

// HasAnyLegalMove - true when color has at least one legal move.
func (that *Board) HasAnyLegalMove(color Cell) bool {
	for row := 1; row <= Size; row++ {
		for col := 1; col <= Size; col++ {
			if that.IsLegalMove(row, col, color) {
				return true
			}
		}
	}

	return false
}

// LegalMoves - every legal target for color in row-major order.
func (that *Board) LegalMoves(color Cell) []Position {
	var moves []Position

	for row := 1; row <= Size; row++ {
		for col := 1; col <= Size; col++ {
			if that.IsLegalMove(row, col, color) {
				moves = append(moves, Position{Row: row, Col: col})
			}
		}
	}

	return moves
}

// Count - the number of pieces of the given state on the board.
func (that *Board) Count(cell Cell) int {
	count := 0
	for _, c := range that.cells {
		if c == cell {
			count++
		}
	}

	return count
}

// RenderSnapshot - copies the board into a Grid for display.
func (that *Board) RenderSnapshot() Grid {
	var grid Grid
	for row := 1; row <= Size; row++ {
		for col := 1; col <= Size; col++ {
			grid[row-1][col-1] = that.cells[index(row, col)]
		}
	}

	return grid
}

func (that *Board) String() string {
	return that.RenderSnapshot().String()
}

func (that Grid) String() string {
	var sb strings.Builder

	for _, row := range that {
		for col, cell := range row {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(cell.Glyph())
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// checkMove - the single legality rule shared by IsLegalMove and ApplyMove.
func (that *Board) checkMove(row, col int, color Cell) error {
	if !color.IsColor() {
		return fmt.Errorf("%w: got %s", ErrNotAColor, color)
	}

	if !inBounds(row, col) {
		return fmt.Errorf("%w: row %d, col %d", ErrOutOfBounds, row, col)
	}

	if that.cells[index(row, col)] != Empty {
		return fmt.Errorf("%w: row %d, col %d", ErrCellOccupied, row, col)
	}

	origin := Position{Row: row, Col: col}
	for _, dir := range directions {
		if that.scan(origin, dir, color).captures {
			return nil
		}
	}

	return fmt.Errorf("%w: row %d, col %d", ErrNoCapture, row, col)
}

// scan - walks from origin over opponent pieces. The run captures only when
// it is non-empty and ends on a piece of color, not on Empty or the edge.
func (that *Board) scan(origin Position, dir direction, color Cell) ray {
	opponent := color.Opponent()

	row, col := origin.Row+dir.dRow, origin.Col+dir.dCol
	run := 0
	for inBounds(row, col) && that.cells[index(row, col)] == opponent {
		run++
		row += dir.dRow
		col += dir.dCol
	}

	if run == 0 || !inBounds(row, col) || that.cells[index(row, col)] != color {
		return ray{}
	}

	return ray{captures: true, run: run}
}

func (that *Board) set(row, col int, cell Cell) {
	that.cells[index(row, col)] = cell
}

func inBounds(row, col int) bool {
	return row >= 1 && row <= Size && col >= 1 && col <= Size
}

func index(row, col int) int {
	return (row-1)*Size + (col - 1)
}

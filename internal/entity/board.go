package entity

import (
	"fmt"

	"github.com/rocketscienceinc/gobang-backend/internal/apperror"
)

const (
	BoardSize   = 15
	CellCount   = BoardSize * BoardSize
	CenterIndex = CellCount / 2
	WinLength   = 5
)

// Move is a stone placed on the board. Sequence is the 1-based order in which it was played.
type Move struct {
	Position int    `json:"position"`
	Player   Player `json:"player"`
	Sequence int    `json:"sequence"`
}

// Cell is either empty or holds exactly one move. The zero value is an empty cell.
type Cell struct {
	occupied bool
	move     Move
}

// OccupiedCell - builds a cell holding the given move.
func OccupiedCell(move Move) Cell {
	return Cell{occupied: true, move: move}
}

func (that Cell) IsEmpty() bool {
	return !that.occupied
}

// Move - returns the stored move and whether the cell is occupied.
func (that Cell) Move() (Move, bool) {
	return that.move, that.occupied
}

// Owner - returns the player holding the cell, PlayerNone for an empty cell.
func (that Cell) Owner() Player {
	if !that.occupied {
		return PlayerNone
	}
	return that.move.Player
}

// OwnedBy - reports whether the cell holds a stone of the given player.
func (that Cell) OwnedBy(player Player) bool {
	return that.occupied && that.move.Player == player
}

// Board is a fixed 15x15 grid stored row by row. Apply never mutates the receiver, it returns a modified copy.
type Board struct {
	cells [CellCount]Cell
}

// Index - converts coordinates to a cell index.
func Index(x, y int) int {
	return y*BoardSize + x
}

// Coordinates - converts a cell index to (x, y).
func Coordinates(index int) (int, int) {
	return index % BoardSize, index / BoardSize
}

func InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < BoardSize && y < BoardSize
}

func ValidIndex(index int) bool {
	return index >= 0 && index < CellCount
}

// Apply - returns a copy of the board with the move placed on its position.
func (that *Board) Apply(move Move) (Board, error) {
	if !ValidIndex(move.Position) {
		return *that, fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, move.Position)
	}

	if !that.cells[move.Position].IsEmpty() {
		return *that, apperror.ErrCellOccupied
	}

	next := *that
	next.cells[move.Position] = OccupiedCell(move)

	return next, nil
}

// At - bounds-checked lookup by coordinates.
func (that *Board) At(x, y int) (Cell, bool) {
	if !InBounds(x, y) {
		return Cell{}, false
	}
	return that.cells[Index(x, y)], true
}

// Cell - lookup by index; out of range indexes yield an empty cell.
func (that *Board) Cell(index int) Cell {
	if !ValidIndex(index) {
		return Cell{}
	}
	return that.cells[index]
}

func (that *Board) IsEmptyAt(index int) bool {
	return ValidIndex(index) && that.cells[index].IsEmpty()
}

// EmptyCells - returns indexes of all empty cells in ascending order.
func (that *Board) EmptyCells() []int {
	empty := make([]int, 0, CellCount)
	for i, cell := range that.cells {
		if cell.IsEmpty() {
			empty = append(empty, i)
		}
	}
	return empty
}

func (that *Board) IsFull() bool {
	for _, cell := range that.cells {
		if cell.IsEmpty() {
			return false
		}
	}
	return true
}

func (that *Board) MoveCount() int {
	count := 0
	for _, cell := range that.cells {
		if !cell.IsEmpty() {
			count++
		}
	}
	return count
}

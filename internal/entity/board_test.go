package entity

import (
	"testing"

	"github.com/rocketscienceinc/gobang-backend/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoard_Apply(t *testing.T) {
	t.Run("Places the move and leaves the original board untouched", func(t *testing.T) {
		// Given: an empty board
		var board Board
		move := Move{Position: 17, Player: PlayerBlack, Sequence: 1}

		// When: applying a move
		next, err := board.Apply(move)
		require.NoError(t, err)

		// Then: only the copy holds the move
		stored, ok := next.Cell(17).Move()
		require.True(t, ok)
		assert.Equal(t, move, stored)
		assert.True(t, board.Cell(17).IsEmpty())
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: a board with a stone at 0
		var empty Board
		board, err := empty.Apply(Move{Position: 0, Player: PlayerBlack, Sequence: 1})
		require.NoError(t, err)

		// When: another stone is placed at the same cell
		next, err := board.Apply(Move{Position: 0, Player: PlayerWhite, Sequence: 2})

		// Then: ErrCellOccupied is returned and the stone is not overwritten
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, PlayerBlack, next.Cell(0).Owner())
	})

	t.Run("Error on invalid cell index", func(t *testing.T) {
		var board Board
		for _, position := range []int{-1, CellCount, 1000} {
			_, err := board.Apply(Move{Position: position, Player: PlayerBlack, Sequence: 1})
			assert.ErrorIs(t, err, apperror.ErrInvalidCell, "position %d", position)
		}
	})
}

func TestBoard_At(t *testing.T) {
	// Given: a board with a white stone at (3, 2)
	var empty Board
	board, err := empty.Apply(Move{Position: Index(3, 2), Player: PlayerWhite, Sequence: 1})
	require.NoError(t, err)

	t.Run("Returns the cell inside the grid", func(t *testing.T) {
		cell, ok := board.At(3, 2)
		require.True(t, ok)
		assert.True(t, cell.OwnedBy(PlayerWhite))
		assert.False(t, cell.OwnedBy(PlayerBlack))
	})

	t.Run("Rejects coordinates outside the grid", func(t *testing.T) {
		for _, xy := range [][2]int{{-1, 0}, {0, -1}, {BoardSize, 0}, {0, BoardSize}} {
			cell, ok := board.At(xy[0], xy[1])
			assert.False(t, ok)
			assert.True(t, cell.IsEmpty())
		}
	})
}

func TestBoard_Coordinates(t *testing.T) {
	assert.Equal(t, 112, CenterIndex)

	x, y := Coordinates(CenterIndex)
	assert.Equal(t, 7, x)
	assert.Equal(t, 7, y)
	assert.Equal(t, 106, Index(1, 7))
}

func TestBoard_EmptyCellsAndFull(t *testing.T) {
	// Given: a board with three stones
	board := Board{}
	for i, position := range []int{5, 0, 224} {
		var err error
		board, err = board.Apply(Move{Position: position, Player: PlayerBlack, Sequence: i + 1})
		require.NoError(t, err)
	}

	// When: listing empty cells
	empty := board.EmptyCells()

	// Then: occupied cells are skipped and order is ascending
	assert.Len(t, empty, CellCount-3)
	assert.Equal(t, 1, empty[0])
	assert.Equal(t, 223, empty[len(empty)-1])
	assert.Equal(t, 3, board.MoveCount())
	assert.False(t, board.IsFull())
}

func TestCell_ZeroValue(t *testing.T) {
	var cell Cell

	_, ok := cell.Move()
	assert.False(t, ok)
	assert.True(t, cell.IsEmpty())
	assert.Equal(t, PlayerNone, cell.Owner())
}

func TestPlayer_Opponent(t *testing.T) {
	assert.Equal(t, PlayerWhite, PlayerBlack.Opponent())
	assert.Equal(t, PlayerBlack, PlayerWhite.Opponent())
	assert.Equal(t, PlayerNone, PlayerNone.Opponent())
	assert.False(t, PlayerNone.IsValid())
}

func TestSnapshot_Controls(t *testing.T) {
	t.Run("Replay is disabled without history or while replaying", func(t *testing.T) {
		assert.False(t, Snapshot{Mode: ModeInProgress}.CanReplay())
		assert.False(t, Snapshot{Mode: ModeReplaying, MoveCount: 3}.CanReplay())
		assert.True(t, Snapshot{Mode: ModeWon, MoveCount: 9}.CanReplay())
	})

	t.Run("Game with AI is disabled while replaying or in AI mode", func(t *testing.T) {
		assert.False(t, Snapshot{Mode: ModeReplaying}.CanStartAIGame())
		assert.False(t, Snapshot{Mode: ModeInProgress, AIEnabled: true}.CanStartAIGame())
		assert.True(t, Snapshot{Mode: ModeWon}.CanStartAIGame())
	})
}

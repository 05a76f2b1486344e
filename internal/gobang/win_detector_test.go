package gobang

import (
	"math/rand"
	"testing"

	"github.com/rocketscienceinc/gobang-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasWin(t *testing.T) {
	t.Run("Five in the first row", func(t *testing.T) {
		// Given: black stones at 0, 1, 2, 3 and the completing stone at 4
		board := boardWith(t, []int{0, 1, 2, 3, 4}, nil)

		// When: checking the last played cell
		won := HasWin(board, 4)

		// Then: the line of five is detected
		assert.True(t, won)
	})

	t.Run("Every axis is detected", func(t *testing.T) {
		lines := map[string][]int{
			"horizontal":    {entity.Index(3, 9), entity.Index(4, 9), entity.Index(5, 9), entity.Index(6, 9), entity.Index(7, 9)},
			"vertical":      {entity.Index(14, 0), entity.Index(14, 1), entity.Index(14, 2), entity.Index(14, 3), entity.Index(14, 4)},
			"diagonal":      {entity.Index(2, 2), entity.Index(3, 3), entity.Index(4, 4), entity.Index(5, 5), entity.Index(6, 6)},
			"anti-diagonal": {entity.Index(10, 0), entity.Index(9, 1), entity.Index(8, 2), entity.Index(7, 3), entity.Index(6, 4)},
		}

		for name, line := range lines {
			board := boardWith(t, nil, line)
			for _, index := range line {
				assert.True(t, HasWin(board, index), "%s at %d", name, index)
			}
		}
	})

	t.Run("Only the completing move reports a win", func(t *testing.T) {
		// Given: a diagonal filled one stone at a time, out of order
		line := []int{entity.Index(7, 7), entity.Index(9, 9), entity.Index(5, 5), entity.Index(8, 8), entity.Index(6, 6)}
		board := &entity.Board{}

		for i, index := range line {
			// When: the stone is played
			next, err := board.Apply(entity.Move{Position: index, Player: entity.PlayerBlack, Sequence: i + 1})
			require.NoError(t, err)
			board = &next

			// Then: only the fifth stone wins
			assert.Equal(t, i == len(line)-1, HasWin(board, index), "move %d", i+1)
		}
	})

	t.Run("Four in a row is not a win", func(t *testing.T) {
		board := boardWith(t, []int{0, 1, 2, 3}, nil)

		assert.False(t, HasWin(board, 3))
	})

	t.Run("Opponent stone breaks the line", func(t *testing.T) {
		board := boardWith(t, row(4, 0, 1, 3, 4, 5), row(4, 2))

		assert.False(t, HasWin(board, entity.Index(5, 4)))
	})

	t.Run("Lines do not wrap across rows", func(t *testing.T) {
		// Given: consecutive indexes 12..16 spanning the end of row 0 and the start of row 1
		board := boardWith(t, []int{12, 13, 14, 15, 16}, nil)

		assert.False(t, HasWin(board, 14))
		assert.False(t, HasWin(board, 15))
	})

	t.Run("Six in a row still wins", func(t *testing.T) {
		board := boardWith(t, row(0, 0, 1, 2, 3, 4, 5), nil)

		assert.True(t, HasWin(board, 5))
	})

	t.Run("Empty cell never wins", func(t *testing.T) {
		board := boardWith(t, []int{0, 1, 2, 3}, nil)

		assert.False(t, HasWin(board, 4))
	})
}

func TestHasWin_MatchesFullLineScan(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for round := 0; round < 200; round++ {
		// Given: a random board with about half the cells occupied
		var black, white []int
		for index := 0; index < entity.CellCount; index++ {
			switch rng.Intn(4) {
			case 0:
				black = append(black, index)
			case 1:
				white = append(white, index)
			}
		}
		board := boardWith(t, black, white)

		// Then: HasWin agrees with an unbounded scan of every axis
		for index := 0; index < entity.CellCount; index++ {
			require.Equal(t, longestRun(board, index) >= entity.WinLength, HasWin(board, index), "round %d cell %d", round, index)
		}
	}
}

// longestRun - brute force reference: longest same-player run through index over all axes.
func longestRun(board *entity.Board, index int) int {
	player := board.Cell(index).Owner()
	if player == entity.PlayerNone {
		return 0
	}

	x, y := entity.Coordinates(index)
	longest := 0
	for _, axis := range axes {
		length := 1
		for _, sign := range []int{1, -1} {
			for step := 1; ; step++ {
				cell, ok := board.At(x+sign*step*axis[0], y+sign*step*axis[1])
				if !ok || !cell.OwnedBy(player) {
					break
				}
				length++
			}
		}
		longest = max(longest, length)
	}

	return longest
}

func TestWinningLine(t *testing.T) {
	t.Run("Returns the winning cells in ascending order", func(t *testing.T) {
		line := row(7, 3, 4, 5, 6, 7)
		board := boardWith(t, line, nil)

		assert.Equal(t, line, WinningLine(board, entity.Index(5, 7)))
	})

	t.Run("Returns nil without a win", func(t *testing.T) {
		board := boardWith(t, row(7, 3, 4, 5, 6), nil)

		assert.Nil(t, WinningLine(board, entity.Index(6, 7)))
	})
}

package gobang

import (
	"testing"

	"github.com/rocketscienceinc/gobang-backend/internal/entity"
	"github.com/stretchr/testify/require"
)

// boardWith - places black stones, then white stones, numbering them in that order.
func boardWith(t *testing.T, black, white []int) *entity.Board {
	t.Helper()

	board := &entity.Board{}
	sequence := 0

	place := func(positions []int, player entity.Player) {
		for _, position := range positions {
			sequence++
			next, err := board.Apply(entity.Move{Position: position, Player: player, Sequence: sequence})
			require.NoError(t, err)
			board = &next
		}
	}

	place(black, entity.PlayerBlack)
	place(white, entity.PlayerWhite)

	return board
}

// fullBoardWithoutFive - fills every cell in pairs of two so no line ever reaches three stones.
func fullBoardWithoutFive(t *testing.T) *entity.Board {
	t.Helper()

	var black, white []int
	for index := 0; index < entity.CellCount; index++ {
		x, y := entity.Coordinates(index)
		if (x/2+y)%2 == 0 {
			black = append(black, index)
		} else {
			white = append(white, index)
		}
	}

	return boardWith(t, black, white)
}

func row(y int, xs ...int) []int {
	cells := make([]int, 0, len(xs))
	for _, x := range xs {
		cells = append(cells, entity.Index(x, y))
	}
	return cells
}

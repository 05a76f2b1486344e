package gobang

import (
	"sort"

	"github.com/rocketscienceinc/gobang-backend/internal/entity"
)

// axes - the four line directions; each is scanned both ways.
var axes = [4][2]int{
	{1, 0},
	{0, 1},
	{1, 1},
	{1, -1},
}

// HasWin - reports whether the stone at index completes a line of five or more.
func HasWin(board *entity.Board, index int) bool {
	player := board.Cell(index).Owner()
	if player == entity.PlayerNone {
		return false
	}

	return completesLine(board, index, player)
}

// WinningLine - returns the cells of the first winning run through index, in ascending order.
func WinningLine(board *entity.Board, index int) []int {
	player := board.Cell(index).Owner()
	if player == entity.PlayerNone {
		return nil
	}

	for _, axis := range axes {
		dx, dy := axis[0], axis[1]
		if runLength(board, index, player, dx, dy) < entity.WinLength {
			continue
		}

		line := []int{index}
		line = append(line, walk(board, index, player, dx, dy)...)
		line = append(line, walk(board, index, player, -dx, -dy)...)
		sort.Ints(line)

		return line
	}

	return nil
}

// completesLine - treats index as holding a stone of player. The origin cell itself is never read,
// so this works for hypothetical placements on an empty cell too.
func completesLine(board *entity.Board, index int, player entity.Player) bool {
	for _, axis := range axes {
		if runLength(board, index, player, axis[0], axis[1]) >= entity.WinLength {
			return true
		}
	}

	return false
}

func runLength(board *entity.Board, index int, player entity.Player, dx, dy int) int {
	return 1 + countDirection(board, index, player, dx, dy) + countDirection(board, index, player, -dx, -dy)
}

// countDirection - number of consecutive stones of player next to index. At most four cells are read.
func countDirection(board *entity.Board, index int, player entity.Player, dx, dy int) int {
	x, y := entity.Coordinates(index)

	count := 0
	for step := 1; step < entity.WinLength; step++ {
		cell, ok := board.At(x+step*dx, y+step*dy)
		if !ok || !cell.OwnedBy(player) {
			break
		}
		count++
	}

	return count
}

// walk - same scan as countDirection, collecting the indexes.
func walk(board *entity.Board, index int, player entity.Player, dx, dy int) []int {
	x, y := entity.Coordinates(index)

	var cells []int
	for step := 1; step < entity.WinLength; step++ {
		nx, ny := x+step*dx, y+step*dy

		cell, ok := board.At(nx, ny)
		if !ok || !cell.OwnedBy(player) {
			break
		}

		cells = append(cells, entity.Index(nx, ny))
	}

	return cells
}

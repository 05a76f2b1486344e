package gobang

import (
	"math"

	"github.com/rocketscienceinc/gobang-backend/internal/apperror"
	"github.com/rocketscienceinc/gobang-backend/internal/entity"
)

// forkThreats - a fork needs at least this many distinct winning follow-ups.
const forkThreats = 2

// Strategy picks moves for the computer player with a fixed priority cascade:
// win, block a win, create a fork, block a fork, take the center, best local opportunity.
type Strategy struct {
	player entity.Player
}

func NewStrategy(player entity.Player) *Strategy {
	return &Strategy{
		player: player,
	}
}

// Player - the side this strategy plays.
func (that *Strategy) Player() entity.Player {
	return that.player
}

// ChooseMove - returns the cell the computer plays on. ErrNoAvailableMoves means the board is full.
func (that *Strategy) ChooseMove(board *entity.Board) (int, error) {
	opponent := that.player.Opponent()

	empty := board.EmptyCells()
	if len(empty) == 0 {
		return 0, apperror.ErrNoAvailableMoves
	}

	if index, ok := findWinningMove(board, empty, that.player); ok {
		return index, nil
	}

	if index, ok := findWinningMove(board, empty, opponent); ok {
		return index, nil
	}

	if index, ok := findForkMove(board, empty, that.player); ok {
		return index, nil
	}

	if index, ok := findForkMove(board, empty, opponent); ok {
		return index, nil
	}

	if board.IsEmptyAt(entity.CenterIndex) {
		return entity.CenterIndex, nil
	}

	return findBestOpportunity(board, empty, that.player), nil
}

// findWinningMove - first empty cell (ascending) where a stone of player completes a line.
func findWinningMove(board *entity.Board, empty []int, player entity.Player) (int, bool) {
	for _, index := range empty {
		if completesLine(board, index, player) {
			return index, true
		}
	}

	return 0, false
}

// findForkMove - first empty cell after which player would have two or more winning cells.
// It only counts the threats; whether they can both be defended is not examined.
func findForkMove(board *entity.Board, empty []int, player entity.Player) (int, bool) {
	for _, index := range empty {
		next, err := board.Apply(entity.Move{Position: index, Player: player})
		if err != nil {
			continue
		}

		if countWinningCells(&next, empty, index, player) >= forkThreats {
			return index, true
		}
	}

	return 0, false
}

func countWinningCells(board *entity.Board, empty []int, placed int, player entity.Player) int {
	threats := 0
	for _, index := range empty {
		if index == placed || !completesLine(board, index, player) {
			continue
		}

		threats++
		if threats >= forkThreats {
			break
		}
	}

	return threats
}

// findBestOpportunity - empty cell with the highest EvaluateMove score; ties keep the lowest index.
func findBestOpportunity(board *entity.Board, empty []int, player entity.Player) int {
	bestScore := math.Inf(-1)
	bestMove := empty[0]

	for _, index := range empty {
		score := EvaluateMove(board, index, player)
		if score > bestScore {
			bestScore = score
			bestMove = index
		}
	}

	return bestMove
}

package gobang

import "github.com/rocketscienceinc/gobang-backend/internal/entity"

const (
	scoreFive        = 1000000
	scoreOpenFour    = 50000
	scoreClosedFour  = 10000
	scoreOpenThree   = 5000
	scoreClosedThree = 1000
	scoreOpenTwo     = 100
	scoreClosedTwo   = 10
	scoreAny         = 1

	// defenseWeight discounts what the opponent would gain at the same cell.
	defenseWeight = 0.8
)

// EvaluateDirection - scores a hypothetical stone of player at origin along one axis.
// Both ends are scanned for up to four cells; a scan stops on the border, on an opponent stone,
// or on the first empty cell, which marks that end as open.
func EvaluateDirection(board *entity.Board, origin int, player entity.Player, dx, dy int) int {
	forward, openForward := scanLine(board, origin, player, dx, dy)
	backward, openBackward := scanLine(board, origin, player, -dx, -dy)

	return lineScore(forward+backward, openForward+openBackward)
}

// EvaluateMove - desirability of index for player: own potential in every direction minus
// a discounted share of the opponent's potential at the same cell.
func EvaluateMove(board *entity.Board, index int, player entity.Player) float64 {
	own := directionalSum(board, index, player)
	opponent := directionalSum(board, index, player.Opponent())

	return float64(own) - float64(opponent)*defenseWeight
}

func directionalSum(board *entity.Board, index int, player entity.Player) int {
	sum := 0
	for _, axis := range axes {
		sum += EvaluateDirection(board, index, player, axis[0], axis[1])
		sum += EvaluateDirection(board, index, player, -axis[0], -axis[1])
	}

	return sum
}

// scanLine - returns the number of stones of player next to origin and 1 if the scan ended on an empty cell.
func scanLine(board *entity.Board, origin int, player entity.Player, dx, dy int) (int, int) {
	x, y := entity.Coordinates(origin)

	count := 0
	for step := 1; step < entity.WinLength; step++ {
		cell, ok := board.At(x+step*dx, y+step*dy)
		switch {
		case !ok:
			return count, 0
		case cell.OwnedBy(player):
			count++
		case cell.IsEmpty():
			return count, 1
		default:
			return count, 0
		}
	}

	return count, 0
}

func lineScore(count, open int) int {
	switch {
	case count >= 4:
		return scoreFive
	case count == 3 && open == 2:
		return scoreOpenFour
	case count == 3 && open == 1:
		return scoreClosedFour
	case count == 2 && open == 2:
		return scoreOpenThree
	case count == 2 && open == 1:
		return scoreClosedThree
	case count == 1 && open == 2:
		return scoreOpenTwo
	case count == 1 && open == 1:
		return scoreClosedTwo
	default:
		return scoreAny
	}
}

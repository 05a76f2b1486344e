package entity

// Player is the owner of a stone. Black always moves first.
type Player string

const (
	PlayerBlack Player = "black"
	PlayerWhite Player = "white"

	// PlayerNone marks the absence of a player, e.g. no winner yet.
	PlayerNone Player = ""
)

// Opponent - returns the other side of the board.
func (that Player) Opponent() Player {
	switch that {
	case PlayerBlack:
		return PlayerWhite
	case PlayerWhite:
		return PlayerBlack
	default:
		return PlayerNone
	}
}

func (that Player) IsValid() bool {
	return that == PlayerBlack || that == PlayerWhite
}

package apperror

import "errors"

var (
	ErrGameFinished     = errors.New("game is already finished")
	ErrNotYourTurn      = errors.New("it's not your turn")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrInvalidCell      = errors.New("invalid cell index")
	ErrReplayInProgress = errors.New("replay is in progress")
	ErrNoHistory        = errors.New("no moves to replay")
	ErrAIModeActive     = errors.New("game with AI is already active")
	ErrNoAvailableMoves = errors.New("no available moves")
)

package entity

import "slices"

// Mode is the phase of a game session.
type Mode string

const (
	ModeIdle           Mode = "idle"
	ModeInProgress     Mode = "in_progress"
	ModeWon            Mode = "won"
	ModeDraw           Mode = "draw"
	ModeReplaying      Mode = "replaying"
	ModeReplayComplete Mode = "replay_complete"
)

// AIPlayer is the side played by the computer in a game with AI.
const AIPlayer = PlayerWhite

// IsTerminal - reports whether no more moves can be played in this mode.
func (that Mode) IsTerminal() bool {
	return that != ModeInProgress
}

// CellView is the per-cell data exposed to renderers.
type CellView struct {
	Occupied bool   `json:"occupied"`
	Player   Player `json:"player,omitempty"`
	Sequence int    `json:"sequence,omitempty"`
}

// Snapshot is a read-only view of a game, produced once per state change.
type Snapshot struct {
	ID                    string              `json:"id"`
	Board                 [CellCount]CellView `json:"board"`
	CurrentPlayer         Player              `json:"current_player"`
	Winner                Player              `json:"winner,omitempty"`
	Mode                  Mode                `json:"mode"`
	RevealSequenceNumbers bool                `json:"reveal_sequence_numbers"`
	AIEnabled             bool                `json:"ai_enabled"`
	MoveCount             int                 `json:"move_count"`
	WinningLine           []int               `json:"winning_line,omitempty"`
}

// GameState is one game session. It is owned and mutated by a single controller.
type GameState struct {
	ID                    string
	Board                 Board
	CurrentPlayer         Player
	Winner                Player
	History               []Move
	Mode                  Mode
	AIEnabled             bool
	RevealSequenceNumbers bool
	WinningLine           []int
}

// NewGameState - empty board, black to move, game in progress.
func NewGameState(id string) *GameState {
	return &GameState{
		ID:            id,
		CurrentPlayer: PlayerBlack,
		Winner:        PlayerNone,
		Mode:          ModeInProgress,
	}
}

// NextSequence - sequence number the next recorded move gets.
func (that *GameState) NextSequence() int {
	return len(that.History) + 1
}

// Snapshot - copies the state into a value that shares no memory with it.
func (that *GameState) Snapshot() Snapshot {
	return Snapshot{
		ID:                    that.ID,
		Board:                 that.Board.Views(),
		CurrentPlayer:         that.CurrentPlayer,
		Winner:                that.Winner,
		Mode:                  that.Mode,
		RevealSequenceNumbers: that.RevealSequenceNumbers,
		AIEnabled:             that.AIEnabled,
		MoveCount:             len(that.History),
		WinningLine:           slices.Clone(that.WinningLine),
	}
}

// Views - converts the board into renderer cells.
func (that *Board) Views() [CellCount]CellView {
	var views [CellCount]CellView
	for i, cell := range that.cells {
		move, ok := cell.Move()
		if !ok {
			continue
		}
		views[i] = CellView{Occupied: true, Player: move.Player, Sequence: move.Sequence}
	}
	return views
}

// CanReplay - replay is disabled when there is nothing to replay or a replay is running.
func (that Snapshot) CanReplay() bool {
	return that.MoveCount > 0 && that.Mode != ModeReplaying
}

// CanStartAIGame - a game with AI can't be started during replay or when one is already running.
func (that Snapshot) CanStartAIGame() bool {
	return that.Mode != ModeReplaying && !that.AIEnabled
}

package usecase

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/gobang-backend/internal/apperror"
	"github.com/rocketscienceinc/gobang-backend/internal/entity"
	"github.com/rocketscienceinc/gobang-backend/internal/gobang"
)

type schedulerDep interface {
	After(delay time.Duration, task func())
}

type strategyDep interface {
	ChooseMove(board *entity.Board) (int, error)
}

// notifierDep receives every snapshot while the controller lock is held, so it must not block or call back.
type notifierDep interface {
	Notify(snapshot entity.Snapshot)
}

// Timings - delays of deferred work.
type Timings struct {
	AIMoveDelay    time.Duration
	ReplayInterval time.Duration
}

// GameController is the only writer of the game state: turns, history, replay timeline and the computer's moves.
type GameController struct {
	logger    *slog.Logger
	scheduler schedulerDep
	strategy  strategyDep
	notifiers []notifierDep
	timings   Timings

	mu    sync.Mutex
	state *entity.GameState
	// generation is bumped by every reset and replay start; deferred tasks from older generations do nothing.
	generation uint64
}

func NewGameController(
	logger *slog.Logger,
	scheduler schedulerDep,
	strategy strategyDep,
	timings Timings,
	notifiers ...notifierDep,
) *GameController {
	return &GameController{
		logger:    logger.With("component", "game_controller"),
		scheduler: scheduler,
		strategy:  strategy,
		notifiers: notifiers,
		timings:   timings,

		state: entity.NewGameState(uuid.NewString()),
	}
}

// Snapshot - current read-only view of the game.
func (that *GameController) Snapshot() entity.Snapshot {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.state.Snapshot()
}

// SubmitMove - plays the human move at index for the side to move.
func (that *GameController) SubmitMove(index int) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.state.AIEnabled && that.state.CurrentPlayer == entity.AIPlayer && that.state.Mode == entity.ModeInProgress {
		return fmt.Errorf("failed to submit move: %w", apperror.ErrNotYourTurn)
	}

	if err := that.applyMove(index); err != nil {
		return fmt.Errorf("failed to submit move: %w", err)
	}

	that.notify()
	that.scheduleAIMove()

	return nil
}

// Reset - starts a fresh two-player game from any mode.
func (that *GameController) Reset() {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.reset()
	that.notify()

	that.logger.Info("game reset", "game_id", that.state.ID)
}

// StartAIGame - resets the game and lets the computer play white.
func (that *GameController) StartAIGame() error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.state.Mode == entity.ModeReplaying {
		return fmt.Errorf("failed to start game with AI: %w", apperror.ErrReplayInProgress)
	}

	if that.state.AIEnabled {
		return fmt.Errorf("failed to start game with AI: %w", apperror.ErrAIModeActive)
	}

	that.reset()
	that.state.AIEnabled = true
	that.notify()
	that.scheduleAIMove()

	that.logger.Info("game with AI started", "game_id", that.state.ID, "ai", entity.AIPlayer)

	return nil
}

// StartReplay - clears the board and places the recorded moves again, one per replay interval.
func (that *GameController) StartReplay() error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.state.Mode == entity.ModeReplaying {
		return fmt.Errorf("failed to start replay: %w", apperror.ErrReplayInProgress)
	}

	if len(that.state.History) == 0 {
		return fmt.Errorf("failed to start replay: %w", apperror.ErrNoHistory)
	}

	that.generation++
	generation := that.generation

	that.state.Board = entity.Board{}
	that.state.Mode = entity.ModeReplaying
	that.state.Winner = entity.PlayerNone
	that.state.WinningLine = nil
	that.state.CurrentPlayer = entity.PlayerBlack
	that.state.RevealSequenceNumbers = true
	that.notify()

	history := that.state.History
	for i, move := range history {
		step := i + 1
		last := step == len(history)
		that.scheduler.After(time.Duration(step)*that.timings.ReplayInterval, func() {
			that.replayStep(generation, move, last)
		})
	}

	that.logger.Info("replay started", "game_id", that.state.ID, "moves", len(history))

	return nil
}

func (that *GameController) replayStep(generation uint64, move entity.Move, last bool) {
	log := that.logger.With("method", "replayStep")

	that.mu.Lock()
	defer that.mu.Unlock()

	if generation != that.generation || that.state.Mode != entity.ModeReplaying {
		log.Debug("stale replay step skipped", "sequence", move.Sequence)
		return
	}

	next, err := that.state.Board.Apply(move)
	if err != nil {
		log.Error("failed to replay move", "sequence", move.Sequence, "error", err)
		return
	}

	that.state.Board = next
	if last {
		that.state.Mode = entity.ModeReplayComplete
		log.Info("replay complete", "game_id", that.state.ID)
	}

	that.notify()
}

// applyMove - validates and records a move for the side to move; the state is untouched on error.
func (that *GameController) applyMove(index int) error {
	state := that.state

	if state.Mode == entity.ModeReplaying {
		return apperror.ErrReplayInProgress
	}

	if state.Mode != entity.ModeInProgress || state.Winner != entity.PlayerNone {
		return apperror.ErrGameFinished
	}

	player := state.CurrentPlayer
	move := entity.Move{Position: index, Player: player, Sequence: state.NextSequence()}

	next, err := state.Board.Apply(move)
	if err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	state.Board = next
	state.History = append(state.History, move)

	switch {
	case gobang.HasWin(&state.Board, index):
		state.Winner = player
		state.Mode = entity.ModeWon
		state.WinningLine = gobang.WinningLine(&state.Board, index)
		that.logger.Info("game won", "game_id", state.ID, "winner", player, "moves", len(state.History))
	case state.Board.IsFull():
		state.Mode = entity.ModeDraw
		that.logger.Info("game drawn", "game_id", state.ID)
	default:
		state.CurrentPlayer = player.Opponent()
	}

	return nil
}

func (that *GameController) aiToMove() bool {
	state := that.state

	return state.Mode == entity.ModeInProgress &&
		state.AIEnabled &&
		state.CurrentPlayer == entity.AIPlayer &&
		state.Winner == entity.PlayerNone
}

// scheduleAIMove - defers the computer's move when it is its turn.
func (that *GameController) scheduleAIMove() {
	if !that.aiToMove() {
		return
	}

	generation := that.generation
	that.scheduler.After(that.timings.AIMoveDelay, func() {
		that.playAIMove(generation)
	})
}

func (that *GameController) playAIMove(generation uint64) {
	log := that.logger.With("method", "playAIMove")

	that.mu.Lock()
	defer that.mu.Unlock()

	if generation != that.generation || !that.aiToMove() {
		log.Debug("stale AI move skipped")
		return
	}

	index, err := that.strategy.ChooseMove(&that.state.Board)
	if errors.Is(err, apperror.ErrNoAvailableMoves) {
		that.state.Mode = entity.ModeDraw
		that.notify()
		log.Info("no moves left for AI, game drawn", "game_id", that.state.ID)
		return
	}

	if err != nil {
		log.Error("failed to choose move", "error", err)
		return
	}

	if err = that.applyMove(index); err != nil {
		log.Error("AI move rejected", "cell", index, "error", err)
		return
	}

	log.Debug("AI moved", "cell", index)

	that.notify()
	that.scheduleAIMove()
}

func (that *GameController) reset() {
	that.generation++
	that.state = entity.NewGameState(uuid.NewString())
}

func (that *GameController) notify() {
	snapshot := that.state.Snapshot()
	for _, notifier := range that.notifiers {
		notifier.Notify(snapshot)
	}
}

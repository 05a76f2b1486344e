package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

var ErrInvalidPayload = errors.New("invalid payload")

// handleCellSelect - forwards a clicked cell to the game. Rejected moves are silently ignored.
func (that *Server) handleCellSelect(_ context.Context, c *client, msg *Message) error {
	log := that.logger.With("method", "handleCellSelect")

	var payload CellPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil || payload.Cell == nil {
		that.sendError(c, msg.Action, "cell is required")
		return fmt.Errorf("%w: %s", ErrInvalidPayload, string(msg.Payload))
	}

	if err := that.game.SubmitMove(*payload.Cell); err != nil {
		log.Debug("move ignored", "cell", *payload.Cell, "reason", err)
	}

	return nil
}

func (that *Server) handleReset(_ context.Context, _ *client, _ *Message) error {
	that.game.Reset()

	return nil
}

func (that *Server) handleReplay(_ context.Context, _ *client, _ *Message) error {
	if err := that.game.StartReplay(); err != nil {
		that.logger.Debug("replay ignored", "reason", err)
	}

	return nil
}

func (that *Server) handleAIGame(_ context.Context, _ *client, _ *Message) error {
	if err := that.game.StartAIGame(); err != nil {
		that.logger.Debug("game with AI ignored", "reason", err)
	}

	return nil
}

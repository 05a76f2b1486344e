package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/gobang-backend/internal/entity"
)

const (
	actionCellSelect = "cell:select"
	actionGameReset  = "game:reset"
	actionGameReplay = "game:replay"
	actionGameAI     = "game:ai"
	actionGameState  = "game:state"
	actionError      = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type CellPayload struct {
	Cell *int `json:"cell"`
}

type ErrorPayload struct {
	Action string `json:"action"`
	Error  string `json:"error"`
}

func stateMessage(snapshot entity.Snapshot) ([]byte, error) {
	return encode(actionGameState, snapshot)
}

func errorMessage(action, reason string) ([]byte, error) {
	return encode(actionError, ErrorPayload{Action: action, Error: reason})
}

func encode(action string, payload any) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return json.Marshal(Message{Action: action, Payload: raw})
}

package websocket

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/hexstorm-backend/internal/entity"
)

const (
	ActionAssignPlayer = "assignPlayer"
	ActionSpectator    = "spectator"
	ActionGameState    = "gameState"
	ActionGameError    = "gameError"
	ActionPlayerMove   = "playerMove"
)

var ErrUnknownEvent = errors.New("unknown event")

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type MovePayload struct {
	Color entity.Color `json:"color"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}

func encodeEvent(event entity.Event) (*Message, error) {
	var (
		action  string
		payload any
	)

	switch e := event.(type) {
	case entity.AssignPlayerEvent:
		action, payload = ActionAssignPlayer, e.Slot
	case entity.SpectatorEvent:
		action, payload = ActionSpectator, true
	case entity.GameStateEvent:
		action, payload = ActionGameState, e.State
	case entity.GameErrorEvent:
		action, payload = ActionGameError, ErrorPayload{Message: e.Message}
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownEvent, event)
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s payload: %w", action, err)
	}

	return &Message{Action: action, Payload: data}, nil
}

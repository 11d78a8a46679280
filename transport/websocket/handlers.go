package websocket

import (
	"encoding/json"
	"fmt"
)

func (that *Server) handlePlayerMove(client *Client, message *Message) error {
	var payload MovePayload
	if err := json.Unmarshal(message.Payload, &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	if err := that.session.Move(client.ID(), payload.Color); err != nil {
		return fmt.Errorf("failed to move: %w", err)
	}

	return nil
}

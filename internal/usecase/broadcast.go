package usecase

import "github.com/rocketscienceinc/hexstorm-backend/internal/entity"

// broadcastLocked sends one snapshot to every client. Recipients share it read-only.
func (that *Session) broadcastLocked() {
	event := entity.GameStateEvent{State: that.game.Clone()}

	for _, client := range that.clients {
		client.Send(event)
	}
}

func (that *Session) sendLocked(clientID string, event entity.Event) {
	if client, ok := that.clients[clientID]; ok {
		client.Send(event)
	}
}

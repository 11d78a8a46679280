package entity

// Event is a server to client message. The set of implementations is closed.
type Event interface {
	isEvent()
}

// AssignPlayerEvent tells a connection which slot it controls.
type AssignPlayerEvent struct {
	Slot Slot
}

// SpectatorEvent tells a connection it arrived after both slots were taken.
type SpectatorEvent struct{}

// GameStateEvent carries a full snapshot. State is a private copy and must not be mutated.
type GameStateEvent struct {
	State *Game
}

// GameErrorEvent is informational, sent to the remaining player when the opponent leaves.
type GameErrorEvent struct {
	Message string
}

func (AssignPlayerEvent) isEvent() {}
func (SpectatorEvent) isEvent()    {}
func (GameStateEvent) isEvent()    {}
func (GameErrorEvent) isEvent()    {}

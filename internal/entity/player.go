package entity

type Slot string

const (
	Player1 Slot = "player1"
	Player2 Slot = "player2"

	NoSlot Slot = ""
)

// Slots lists the player slots in assignment order.
var Slots = [2]Slot{Player1, Player2}

func (that Slot) Opponent() Slot {
	switch that {
	case Player1:
		return Player2
	case Player2:
		return Player1
	default:
		return NoSlot
	}
}

func (that Slot) IsValid() bool {
	return that == Player1 || that == Player2
}

type Player struct {
	ConnectionID string `json:"-"`
	Score        int    `json:"score"`
	StartHex     Coord  `json:"startHex"`
	Color        Color  `json:"color"`
}

func (that *Player) IsAttached() bool {
	return that.ConnectionID != ""
}

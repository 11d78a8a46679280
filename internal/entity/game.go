package entity

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/rocketscienceinc/hexstorm-backend/internal/apperror"
)

const (
	StatusWaiting  = "waiting"
	StatusOngoing  = "ongoing"
	StatusFinished = "finished"

	DefaultRadius = 4
)

var ErrInvalidRadius = errors.New("board radius must be at least 1")

// Game is the root aggregate of a session. It is reset in place, never replaced.
type Game struct {
	Radius  int
	Board   map[Coord]*Hex
	Players map[Slot]*Player
	Turn    Slot
	Started bool
	Winner  Slot
}

// NewGame creates a game and generates its first board.
func NewGame(radius int, rng *rand.Rand) (*Game, error) {
	if radius < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRadius, radius)
	}

	game := &Game{
		Radius: radius,
		Players: map[Slot]*Player{
			Player1: {},
			Player2: {},
		},
	}
	game.Reset(rng)

	return game, nil
}

func (that *Game) Player(slot Slot) *Player {
	return that.Players[slot]
}

func (that *Game) Hex(coord Coord) (*Hex, bool) {
	hex, ok := that.Board[coord]
	return hex, ok
}

// Size is the number of hexes on the board.
func (that *Game) Size() int {
	return len(that.Board)
}

// SlotOf resolves a connection to the slot it is attached to.
func (that *Game) SlotOf(connectionID string) Slot {
	if connectionID == "" {
		return NoSlot
	}

	for _, slot := range Slots {
		if that.Players[slot].ConnectionID == connectionID {
			return slot
		}
	}

	return NoSlot
}

// FreeSlot returns the first slot without an attached connection.
func (that *Game) FreeSlot() Slot {
	for _, slot := range Slots {
		if !that.Players[slot].IsAttached() {
			return slot
		}
	}

	return NoSlot
}

func (that *Game) BothAttached() bool {
	return that.FreeSlot() == NoSlot
}

func (that *Game) Status() string {
	switch {
	case that.Winner != NoSlot:
		return StatusFinished
	case that.Started:
		return StatusOngoing
	default:
		return StatusWaiting
	}
}

func (that *Game) IsFinished() bool {
	return that.Status() == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status() == StatusOngoing
}

func (that *Game) IsWaiting() bool {
	return that.Status() == StatusWaiting
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsWaiting():
		return apperror.ErrGameIsNotStarted
	case that.IsFinished():
		return apperror.ErrGameFinished
	default:
		return nil
	}
}

// Clone returns a deep copy that is safe to hand to other goroutines.
func (that *Game) Clone() *Game {
	clone := &Game{
		Radius:  that.Radius,
		Board:   make(map[Coord]*Hex, len(that.Board)),
		Players: make(map[Slot]*Player, len(that.Players)),
		Turn:    that.Turn,
		Started: that.Started,
		Winner:  that.Winner,
	}

	for coord, hex := range that.Board {
		hexCopy := *hex
		clone.Board[coord] = &hexCopy
	}

	for slot, player := range that.Players {
		playerCopy := *player
		clone.Players[slot] = &playerCopy
	}

	return clone
}

// Result summarizes a finished game.
func (that *Game) Result(finishedAt time.Time) *Result {
	scores := make(map[Slot]int, len(that.Players))
	for slot, player := range that.Players {
		scores[slot] = player.Score
	}

	return &Result{
		Winner:     that.Winner,
		Scores:     scores,
		BoardSize:  that.Size(),
		FinishedAt: finishedAt.UTC(),
	}
}

type gameJSON struct {
	Board       map[Coord]*Hex   `json:"board"`
	Players     map[Slot]*Player `json:"players"`
	Turn        *Slot            `json:"turn"`
	GameStarted bool             `json:"gameStarted"`
	Winner      *Slot            `json:"winner"`
}

// MarshalJSON renders the snapshot shape clients consume.
func (that *Game) MarshalJSON() ([]byte, error) {
	return json.Marshal(gameJSON{
		Board:       that.Board,
		Players:     that.Players,
		Turn:        slotOrNil(that.Turn),
		GameStarted: that.Started,
		Winner:      slotOrNil(that.Winner),
	})
}

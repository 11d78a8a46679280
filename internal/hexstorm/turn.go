package hexstorm

import (
	"fmt"

	"github.com/rocketscienceinc/hexstorm-backend/internal/apperror"
	"github.com/rocketscienceinc/hexstorm-backend/internal/entity"
)

// HasMajority reports whether slot owns strictly more than half the board.
func HasMajority(game *entity.Game, slot entity.Slot) bool {
	player := game.Player(slot)
	if player == nil {
		return false
	}

	return player.Score*2 > game.Size()
}

// Start moves a waiting game into play with player1 to move.
func Start(game *entity.Game) bool {
	if !game.IsWaiting() {
		return false
	}

	game.Started = true
	game.Turn = entity.Player1

	return true
}

// CompleteTurn finishes the game if slot reached a majority, otherwise hands the turn over.
func CompleteTurn(game *entity.Game, slot entity.Slot) bool {
	if HasMajority(game, slot) {
		game.Winner = slot
		game.Turn = entity.NoSlot
		game.Started = false

		return true
	}

	game.Turn = slot.Opponent()

	return false
}

// MakeTurn validates and applies a move. It reports whether the move won the game.
func MakeTurn(game *entity.Game, slot entity.Slot, color entity.Color) (bool, error) {
	if err := game.ConfirmOngoingState(); err != nil {
		return false, err
	}

	if game.Turn != slot {
		return false, apperror.ErrNotYourTurn
	}

	if _, err := ApplyMove(game, slot, color); err != nil {
		return false, fmt.Errorf("invalid turn: %w", err)
	}

	return CompleteTurn(game, slot), nil
}

package hexstorm

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/hexstorm-backend/internal/apperror"
	"github.com/rocketscienceinc/hexstorm-backend/internal/entity"
)

var ErrInvalidSlot = errors.New("invalid player slot")

// IsLegalColor reports whether the slot may flood into target.
// The current colors of both players are never legal.
func IsLegalColor(game *entity.Game, slot entity.Slot, target entity.Color) bool {
	if !target.IsValid() {
		return false
	}

	if player := game.Player(slot); player != nil && player.Color == target {
		return false
	}

	if opponent := game.Player(slot.Opponent()); opponent != nil && opponent.Color == target {
		return false
	}

	return true
}

// ApplyMove recolors the territory of slot and floods outward from it.
// It returns the new score. An illegal color leaves the game untouched.
func ApplyMove(game *entity.Game, slot entity.Slot, target entity.Color) (int, error) {
	if !slot.IsValid() {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSlot, slot)
	}

	player := game.Player(slot)
	if !IsLegalColor(game, slot, target) {
		return player.Score, fmt.Errorf("%w: %q", apperror.ErrIllegalColor, target)
	}

	visited := make(map[entity.Coord]struct{}, player.Score)
	queue := make([]entity.Coord, 0, player.Score)

	for coord, hex := range game.Board {
		if hex.IsOwnedBy(slot) {
			visited[coord] = struct{}{}
			queue = append(queue, coord)
			hex.Color = target
		}
	}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, next := range current.Neighbors() {
			if _, seen := visited[next]; seen {
				continue
			}

			hex, ok := game.Hex(next)
			if !ok {
				continue
			}

			if hex.Color != target && !hex.IsOwnedBy(slot) {
				continue
			}

			visited[next] = struct{}{}
			queue = append(queue, next)
			hex.Owner = slot
			hex.Color = target
		}
	}

	player.Color = target
	player.Score = len(visited)

	return player.Score, nil
}

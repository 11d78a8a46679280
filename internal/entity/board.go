package entity

import (
	"math/rand/v2"
	"slices"
)

// CellCount is the number of hexes on a board of the given radius.
func CellCount(radius int) int {
	return 3*radius*(radius+1) + 1
}

// StartHex returns the seed coordinate of a slot on a board of the given radius.
func StartHex(slot Slot, radius int) Coord {
	if slot == Player2 {
		return Coord{Q: radius, R: 0}
	}
	return Coord{Q: -radius, R: 0}
}

// Reset regenerates the board and players in place. Attached connections survive.
func (that *Game) Reset(rng *rand.Rand) {
	p1Start := StartHex(Player1, that.Radius)
	p2Start := StartHex(Player2, that.Radius)

	p1Color := randomColor(rng)
	p2Color := randomColor(rng, p1Color)

	players := map[Slot]*Player{
		Player1: {ConnectionID: that.connectionID(Player1), Score: 1, StartHex: p1Start, Color: p1Color},
		Player2: {ConnectionID: that.connectionID(Player2), Score: 1, StartHex: p2Start, Color: p2Color},
	}

	board := make(map[Coord]*Hex, CellCount(that.Radius))
	for q := -that.Radius; q <= that.Radius; q++ {
		for r := -that.Radius; r <= that.Radius; r++ {
			coord := Coord{Q: q, R: r}
			if coord.Ring() > that.Radius {
				continue
			}

			switch coord {
			case p1Start:
				board[coord] = &Hex{Coord: coord, Color: p1Color, Owner: Player1}
			case p2Start:
				board[coord] = &Hex{Coord: coord, Color: p2Color, Owner: Player2}
			default:
				board[coord] = &Hex{Coord: coord, Color: randomColor(rng, p1Color, p2Color)}
			}
		}
	}

	that.Board = board
	that.Players = players
	that.Turn = NoSlot
	that.Started = false
	that.Winner = NoSlot
}

func (that *Game) connectionID(slot Slot) string {
	if player, ok := that.Players[slot]; ok && player != nil {
		return player.ConnectionID
	}
	return ""
}

// randomColor picks uniformly among the palette colors not excluded.
func randomColor(rng *rand.Rand, exclude ...Color) Color {
	candidates := make([]Color, 0, len(Palette))
	for _, color := range Palette {
		if !slices.Contains(exclude, color) {
			candidates = append(candidates, color)
		}
	}

	return candidates[rng.IntN(len(candidates))]
}

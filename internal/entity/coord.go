package entity

import "strconv"

// Coord is an axial hex coordinate.
type Coord struct {
	Q int
	R int
}

// Directions are the six axial neighbor offsets.
var Directions = [6]Coord{
	{Q: 1, R: 0}, {Q: 1, R: -1}, {Q: 0, R: -1},
	{Q: -1, R: 0}, {Q: -1, R: 1}, {Q: 0, R: 1},
}

func (that Coord) Add(other Coord) Coord {
	return Coord{Q: that.Q + other.Q, R: that.R + other.R}
}

// Neighbors returns the six adjacent coordinates, including ones off the board.
func (that Coord) Neighbors() [6]Coord {
	var neighbors [6]Coord
	for i, dir := range Directions {
		neighbors[i] = that.Add(dir)
	}

	return neighbors
}

// Ring returns the hex distance from the origin.
func (that Coord) Ring() int {
	return max(abs(that.Q), abs(that.R), abs(that.Q+that.R))
}

func (that Coord) String() string {
	return strconv.Itoa(that.Q) + "," + strconv.Itoa(that.R)
}

// MarshalText renders the coordinate as "q,r", used for JSON object keys and startHex.
func (that Coord) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoord_Neighbors(t *testing.T) {
	neighbors := Coord{Q: 0, R: 0}.Neighbors()

	assert.ElementsMatch(t, []Coord{
		{Q: 1, R: 0}, {Q: 1, R: -1}, {Q: 0, R: -1},
		{Q: -1, R: 0}, {Q: -1, R: 1}, {Q: 0, R: 1},
	}, neighbors[:])

	for _, n := range neighbors {
		assert.Equal(t, 1, n.Ring())
	}
}

func TestCoord_Text(t *testing.T) {
	t.Run("Renders as q,r", func(t *testing.T) {
		assert.Equal(t, "-3,2", Coord{Q: -3, R: 2}.String())
		assert.Equal(t, "0,0", Coord{}.String())
	})

	t.Run("Is used for JSON map keys", func(t *testing.T) {
		data, err := json.Marshal(map[Coord]int{{Q: 1, R: -1}: 5})
		require.NoError(t, err)
		assert.JSONEq(t, `{"1,-1":5}`, string(data))
	})
}

func TestColor_IsValid(t *testing.T) {
	for _, color := range Palette {
		assert.True(t, color.IsValid())
	}

	assert.False(t, Color("#000000").IsValid())
	assert.False(t, NoColor.IsValid())
}

func TestSlot_Opponent(t *testing.T) {
	assert.Equal(t, Player2, Player1.Opponent())
	assert.Equal(t, Player1, Player2.Opponent())
	assert.Equal(t, NoSlot, NoSlot.Opponent())
	assert.False(t, Slot("player3").IsValid())
}

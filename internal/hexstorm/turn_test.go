package hexstorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/hexstorm-backend/internal/apperror"
	"github.com/rocketscienceinc/hexstorm-backend/internal/entity"
)

func TestStart(t *testing.T) {
	t.Run("Starts a waiting game with player1 to move", func(t *testing.T) {
		game, err := entity.NewGame(1, newRand(2))
		require.NoError(t, err)

		assert.True(t, Start(game))
		assert.True(t, game.IsOngoing())
		assert.Equal(t, entity.Player1, game.Turn)
	})

	t.Run("Does nothing once the game is finished", func(t *testing.T) {
		game, err := entity.NewGame(1, newRand(2))
		require.NoError(t, err)
		game.Winner = entity.Player2

		assert.False(t, Start(game))
		assert.Equal(t, entity.NoSlot, game.Turn)
	})

	t.Run("Does nothing when already started", func(t *testing.T) {
		game, err := entity.NewGame(1, newRand(2))
		require.NoError(t, err)
		require.True(t, Start(game))
		game.Turn = entity.Player2

		assert.False(t, Start(game))
		assert.Equal(t, entity.Player2, game.Turn)
	})
}

func TestHasMajority(t *testing.T) {
	// Given: a 7-hex board
	game, err := entity.NewGame(1, newRand(4))
	require.NoError(t, err)

	// Then: 3 of 7 is not a majority, 4 of 7 is
	game.Player(entity.Player1).Score = 3
	assert.False(t, HasMajority(game, entity.Player1))

	game.Player(entity.Player1).Score = 4
	assert.True(t, HasMajority(game, entity.Player1))

	assert.False(t, HasMajority(game, entity.NoSlot))
}

func TestHasMajority_EvenBoardTie(t *testing.T) {
	// Given: a game whose board has an even number of hexes
	game, err := entity.NewGame(1, newRand(4))
	require.NoError(t, err)
	delete(game.Board, entity.Coord{Q: 0, R: 1})
	require.Equal(t, 6, game.Size())

	// Then: exactly half is a tie, not a win
	game.Player(entity.Player2).Score = 3
	assert.False(t, HasMajority(game, entity.Player2))

	game.Player(entity.Player2).Score = 4
	assert.True(t, HasMajority(game, entity.Player2))
}

func TestCompleteTurn(t *testing.T) {
	t.Run("Flips the turn without a majority", func(t *testing.T) {
		game, err := entity.NewGame(1, newRand(6))
		require.NoError(t, err)
		require.True(t, Start(game))

		won := CompleteTurn(game, entity.Player1)

		assert.False(t, won)
		assert.Equal(t, entity.Player2, game.Turn)
		assert.True(t, game.IsOngoing())
	})

	t.Run("Finishes the game on a majority", func(t *testing.T) {
		game, err := entity.NewGame(1, newRand(6))
		require.NoError(t, err)
		require.True(t, Start(game))
		game.Turn = entity.Player2
		game.Player(entity.Player2).Score = 4

		won := CompleteTurn(game, entity.Player2)

		assert.True(t, won)
		assert.Equal(t, entity.Player2, game.Winner)
		assert.Equal(t, entity.NoSlot, game.Turn)
		assert.False(t, game.Started)
		assert.True(t, game.IsFinished())
	})
}

func TestMakeTurn(t *testing.T) {
	colors := map[entity.Coord]entity.Color{
		{Q: -1, R: 0}: entity.ColorOrange,
		{Q: 0, R: 0}:  entity.ColorBlue,
		{Q: 1, R: 0}:  entity.ColorGreen,
		{Q: 0, R: -1}: entity.ColorPink,
		{Q: 1, R: -1}: entity.ColorPink,
		{Q: -1, R: 1}: entity.ColorGold,
		{Q: 0, R: 1}:  entity.ColorGold,
	}

	t.Run("Rejects a move before the game starts", func(t *testing.T) {
		game := newSmallGame(t, colors)
		before := game.Clone()

		won, err := MakeTurn(game, entity.Player1, entity.ColorBlue)

		require.ErrorIs(t, err, apperror.ErrGameIsNotStarted)
		assert.False(t, won)
		assert.Equal(t, before, game)
	})

	t.Run("Rejects a move out of turn", func(t *testing.T) {
		game := newSmallGame(t, colors)
		require.True(t, Start(game))
		before := game.Clone()

		_, err := MakeTurn(game, entity.Player2, entity.ColorBlue)

		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.Equal(t, before, game)
	})

	t.Run("Illegal color keeps the turn", func(t *testing.T) {
		game := newSmallGame(t, colors)
		require.True(t, Start(game))
		before := game.Clone()

		_, err := MakeTurn(game, entity.Player1, entity.ColorGreen)

		require.ErrorIs(t, err, apperror.ErrIllegalColor)
		assert.Equal(t, before, game)
		assert.Equal(t, entity.Player1, game.Turn)
	})

	t.Run("Legal move hands the turn over", func(t *testing.T) {
		game := newSmallGame(t, colors)
		require.True(t, Start(game))

		won, err := MakeTurn(game, entity.Player1, entity.ColorPink)

		require.NoError(t, err)
		assert.False(t, won)
		assert.Equal(t, entity.Player2, game.Turn)
		assert.Equal(t, 3, game.Player(entity.Player1).Score)
	})

	t.Run("Winning move finishes the game and blocks further moves", func(t *testing.T) {
		// Given: everything but player2's seed is blue
		game := newSmallGame(t, map[entity.Coord]entity.Color{
			{Q: -1, R: 0}: entity.ColorOrange,
			{Q: 0, R: 0}:  entity.ColorBlue,
			{Q: 1, R: 0}:  entity.ColorGreen,
			{Q: 0, R: -1}: entity.ColorBlue,
			{Q: 1, R: -1}: entity.ColorBlue,
			{Q: -1, R: 1}: entity.ColorBlue,
			{Q: 0, R: 1}:  entity.ColorBlue,
		})
		require.True(t, Start(game))

		// When: player1 floods blue
		won, err := MakeTurn(game, entity.Player1, entity.ColorBlue)

		// Then: player1 wins with 6 of 7 hexes
		require.NoError(t, err)
		assert.True(t, won)
		assert.Equal(t, 6, game.Player(entity.Player1).Score)
		assert.Equal(t, entity.Player1, game.Winner)
		assert.Equal(t, entity.NoSlot, game.Turn)

		// Then: nobody can move anymore
		_, err = MakeTurn(game, entity.Player2, entity.ColorPink)
		assert.ErrorIs(t, err, apperror.ErrGameFinished)
	})
}

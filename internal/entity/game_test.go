package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameStatusMethods(t *testing.T) {
	t.Run("Ongoing game is not finished", func(t *testing.T) {
		// Given: a game with StatusOngoing
		game := &Game{Status: StatusOngoing}

		// Then: it should be ongoing only
		assert.True(t, game.IsOngoing())
		assert.False(t, game.IsFinished())
		assert.False(t, game.IsWin())
		assert.False(t, game.IsTie())
	})

	t.Run("Won game is finished", func(t *testing.T) {
		// Given: a game with StatusWin
		game := &Game{Status: StatusWin}

		// Then: it should be finished with a win
		assert.True(t, game.IsFinished())
		assert.True(t, game.IsWin())
		assert.False(t, game.IsOngoing())
	})

	t.Run("Tied game is finished", func(t *testing.T) {
		// Given: a game with StatusTie
		game := &Game{Status: StatusTie}

		// Then: it should be finished with a tie
		assert.True(t, game.IsFinished())
		assert.True(t, game.IsTie())
		assert.False(t, game.IsWin())
	})
}

func TestGame_JSON(t *testing.T) {
	// Given: a won game
	game := &Game{
		ID:     "42",
		Board:  [9]string{"x", "x", "x", "o", "o", "", "", "", ""},
		Status: StatusWin,
		Winner: &Player{Number: 1, Mark: "x"},
		Line:   []int{0, 1, 2},
		Moves:  5,
	}

	// When: encoding it
	data, err := json.Marshal(game)
	require.NoError(t, err)

	// Then: the field names should match what the browser page reads
	assert.JSONEq(t, `{
		"id": "42",
		"board": ["x","x","x","o","o","","","",""],
		"status": "win",
		"winner": {"number": 1, "mark": "x"},
		"line": [0,1,2],
		"moves": 5
	}`, string(data))
}

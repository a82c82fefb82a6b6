package service

import (
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/rocketscienceinc/tictactoe-core/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-core/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) GameService {
	t.Helper()

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	return NewGameService(logger, "x", "o")
}

func TestGameService_CreateGame(t *testing.T) {
	t.Run("Creates an empty game", func(t *testing.T) {
		service := newService(t)

		// When: creating a game
		game, err := service.CreateGame()

		// Then: it has an ID and player 1 moves first
		require.NoError(t, err)
		assert.NotEmpty(t, game.ID)
		assert.Equal(t, entity.StatusOngoing, game.Status)
		assert.Equal(t, &entity.Player{Number: 1, Mark: "x"}, game.Turn)
		assert.Equal(t, [9]string{}, game.Board)
	})

	t.Run("Games are independent", func(t *testing.T) {
		service := newService(t)

		first, err := service.CreateGame()
		require.NoError(t, err)
		second, err := service.CreateGame()
		require.NoError(t, err)
		require.NotEqual(t, first.ID, second.ID)

		// When: moving in the first game only
		_, err = service.MakeTurn(first.ID, 4)
		require.NoError(t, err)

		// Then: the second game is untouched
		untouched, err := service.GetGameByID(second.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, untouched.Moves)
	})

	t.Run("Invalid marks", func(t *testing.T) {
		service := NewGameService(slog.New(slog.NewJSONHandler(io.Discard, nil)), "x", "x")

		_, err := service.CreateGame()

		assert.ErrorIs(t, err, apperror.ErrInvalidMarks)
	})
}

func TestGameService_MakeTurn(t *testing.T) {
	t.Run("Plays a game to a win", func(t *testing.T) {
		service := newService(t)
		game, err := service.CreateGame()
		require.NoError(t, err)

		for _, pos := range []int{0, 3, 1, 4, 2} {
			game, err = service.MakeTurn(game.ID, pos)
			require.NoError(t, err)
		}

		assert.True(t, game.IsWin())
		assert.Equal(t, &entity.Player{Number: 1, Mark: "x"}, game.Winner)
		assert.Equal(t, []int{0, 1, 2}, game.Line)
	})

	t.Run("Occupied cell returns the unchanged game", func(t *testing.T) {
		service := newService(t)
		game, err := service.CreateGame()
		require.NoError(t, err)
		_, err = service.MakeTurn(game.ID, 0)
		require.NoError(t, err)

		game, err = service.MakeTurn(game.ID, 0)

		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		require.NotNil(t, game)
		assert.Equal(t, 1, game.Moves)
		assert.Equal(t, &entity.Player{Number: 2, Mark: "o"}, game.Turn)
	})

	t.Run("Unknown game", func(t *testing.T) {
		service := newService(t)

		_, err := service.MakeTurn("missing", 0)

		assert.ErrorIs(t, err, apperror.ErrGameNotFound)
	})

	t.Run("Concurrent moves on one game are serialised", func(t *testing.T) {
		service := newService(t)
		game, err := service.CreateGame()
		require.NoError(t, err)

		var wg sync.WaitGroup
		for pos := range 9 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, _ = service.MakeTurn(game.ID, pos)
			}()
		}
		wg.Wait()

		game, err = service.GetGameByID(game.ID)
		require.NoError(t, err)

		filled := 0
		for _, cell := range game.Board {
			if cell != entity.EmptyCell {
				filled++
			}
		}
		assert.Equal(t, game.Moves, filled)
	})
}

func TestGameService_ResetGame(t *testing.T) {
	service := newService(t)
	game, err := service.CreateGame()
	require.NoError(t, err)
	for _, pos := range []int{0, 3, 1, 4, 2} {
		_, err = service.MakeTurn(game.ID, pos)
		require.NoError(t, err)
	}

	// When: resetting a finished game
	game, err = service.ResetGame(game.ID)

	// Then: the same game starts over
	require.NoError(t, err)
	assert.True(t, game.IsOngoing())
	assert.Equal(t, 0, game.Moves)
	assert.Equal(t, [9]string{}, game.Board)

	_, err = service.ResetGame("missing")
	assert.ErrorIs(t, err, apperror.ErrGameNotFound)
}

func TestGameService_DeleteGame(t *testing.T) {
	service := newService(t)
	game, err := service.CreateGame()
	require.NoError(t, err)

	// When: deleting the game
	err = service.DeleteGame(game.ID)
	require.NoError(t, err)

	// Then: it can no longer be found
	_, err = service.GetGameByID(game.ID)
	require.ErrorIs(t, err, apperror.ErrGameNotFound)

	err = service.DeleteGame(game.ID)
	assert.ErrorIs(t, err, apperror.ErrGameNotFound)
}

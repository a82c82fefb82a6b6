package service

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/tictactoe-core/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-core/internal/board"
	"github.com/rocketscienceinc/tictactoe-core/internal/entity"
	"github.com/rocketscienceinc/tictactoe-core/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-core/internal/tictactoe"
)

const maxIDAttempts = 10

// GameService keeps the games of the local HTTP presenter in memory.
type GameService interface {
	CreateGame() (*entity.Game, error)
	GetGameByID(id string) (*entity.Game, error)
	MakeTurn(id string, position int) (*entity.Game, error)
	ResetGame(id string) (*entity.Game, error)
	DeleteGame(id string) error
}

type gameService struct {
	logger *slog.Logger

	first  board.Mark
	second board.Mark

	mu    sync.Mutex
	games map[string]*tictactoe.GameController
}

func NewGameService(logger *slog.Logger, first, second string) GameService {
	return &gameService{
		logger: logger.With("component", "game-service"),
		first:  board.Mark(first),
		second: board.Mark(second),
		games:  make(map[string]*tictactoe.GameController),
	}
}

func (that *gameService) CreateGame() (*entity.Game, error) {
	log := that.logger.With("method", "CreateGame")

	controller, err := tictactoe.NewGameController(that.first, that.second)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	gameID, err := that.newID()
	if err != nil {
		return nil, fmt.Errorf("error generating game ID: %w", err)
	}

	that.games[gameID] = controller
	log.Info("game created", "gameID", gameID)

	return snapshot(gameID, controller), nil
}

// newID must be called with mu held.
func (that *gameService) newID() (string, error) {
	for range maxIDAttempts {
		id, err := pkg.GenerateGameID()
		if err != nil {
			return "", err
		}

		if _, taken := that.games[id]; !taken {
			return id, nil
		}
	}

	return "", fmt.Errorf("no free game ID after %d attempts", maxIDAttempts)
}

func (that *gameService) GetGameByID(id string) (*entity.Game, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	controller, err := that.get(id)
	if err != nil {
		return nil, err
	}

	return snapshot(id, controller), nil
}

func (that *gameService) MakeTurn(id string, position int) (*entity.Game, error) {
	log := that.logger.With("method", "MakeTurn", "gameID", id)

	that.mu.Lock()
	defer that.mu.Unlock()

	controller, err := that.get(id)
	if err != nil {
		return nil, err
	}

	player := controller.Turn()
	outcome, err := controller.MakeTurn(board.Position(position))
	if err != nil {
		return snapshot(id, controller), fmt.Errorf("failed to make turn: %w", err)
	}

	log.Debug("turn made", "player", player.Number, "position", position)

	switch outcome.Status {
	case tictactoe.Win:
		log.Info("game won", "player", outcome.Winner.Number, "line", outcome.Line.Ints())
	case tictactoe.Tie:
		log.Info("game tied")
	}

	return snapshot(id, controller), nil
}

func (that *gameService) ResetGame(id string) (*entity.Game, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	controller, err := that.get(id)
	if err != nil {
		return nil, err
	}

	controller.Reset()
	that.logger.Info("game reset", "gameID", id)

	return snapshot(id, controller), nil
}

func (that *gameService) DeleteGame(id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, err := that.get(id); err != nil {
		return err
	}

	delete(that.games, id)
	that.logger.Info("game deleted", "gameID", id)

	return nil
}

func (that *gameService) get(id string) (*tictactoe.GameController, error) {
	controller, ok := that.games[id]
	if !ok {
		return nil, fmt.Errorf("%w: game id %s", apperror.ErrGameNotFound, id)
	}

	return controller, nil
}

func snapshot(id string, controller *tictactoe.GameController) *entity.Game {
	game := controller.Snapshot()
	game.ID = id

	return game
}

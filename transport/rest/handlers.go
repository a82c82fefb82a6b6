package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-core/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-core/internal/entity"
)

type Handlers interface {
	CreateGame(w http.ResponseWriter, r *http.Request)
	GetGame(w http.ResponseWriter, r *http.Request)
	MakeTurn(w http.ResponseWriter, r *http.Request)
	ResetGame(w http.ResponseWriter, r *http.Request)
	DeleteGame(w http.ResponseWriter, r *http.Request)
}

type gameService interface {
	CreateGame() (*entity.Game, error)
	GetGameByID(id string) (*entity.Game, error)
	MakeTurn(id string, position int) (*entity.Game, error)
	ResetGame(id string) (*entity.Game, error)
	DeleteGame(id string) error
}

type TurnRequest struct {
	Position *int `json:"position"`
}

type ErrorResponse struct {
	Error string       `json:"error"`
	Game  *entity.Game `json:"game,omitempty"`
}

type handlers struct {
	logger *slog.Logger
	games  gameService
}

func NewHandlers(logger *slog.Logger, games gameService) Handlers {
	return &handlers{
		logger: logger.With("component", "rest"),
		games:  games,
	}
}

func (that *handlers) CreateGame(w http.ResponseWriter, _ *http.Request) {
	game, err := that.games.CreateGame()
	if err != nil {
		that.sendError(w, "CreateGame", err, nil)
		return
	}

	that.sendJSON(w, http.StatusCreated, game)
}

func (that *handlers) GetGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.games.GetGameByID(r.PathValue("id"))
	if err != nil {
		that.sendError(w, "GetGame", err, nil)
		return
	}

	that.sendJSON(w, http.StatusOK, game)
}

func (that *handlers) MakeTurn(w http.ResponseWriter, r *http.Request) {
	var req TurnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		that.sendJSON(w, http.StatusBadRequest, ErrorResponse{Error: "failed to parse request body"})
		return
	}

	if req.Position == nil {
		that.sendJSON(w, http.StatusBadRequest, ErrorResponse{Error: "position is required"})
		return
	}

	game, err := that.games.MakeTurn(r.PathValue("id"), *req.Position)
	if err != nil {
		that.sendError(w, "MakeTurn", err, game)
		return
	}

	that.sendJSON(w, http.StatusOK, game)
}

func (that *handlers) ResetGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.games.ResetGame(r.PathValue("id"))
	if err != nil {
		that.sendError(w, "ResetGame", err, nil)
		return
	}

	that.sendJSON(w, http.StatusOK, game)
}

func (that *handlers) DeleteGame(w http.ResponseWriter, r *http.Request) {
	if err := that.games.DeleteGame(r.PathValue("id")); err != nil {
		that.sendError(w, "DeleteGame", err, nil)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// sendError maps domain errors to status codes. game, when known, lets the page redraw.
func (that *handlers) sendError(w http.ResponseWriter, method string, err error, game *entity.Game) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, apperror.ErrGameNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperror.ErrInvalidPosition):
		status = http.StatusBadRequest
	case errors.Is(err, apperror.ErrCellOccupied), errors.Is(err, apperror.ErrGameFinished):
		status = http.StatusConflict
	}

	log := that.logger.With("method", method)
	if status == http.StatusInternalServerError {
		log.Error("request failed", "error", err)
	} else {
		log.Debug("request rejected", "error", err)
	}

	that.sendJSON(w, status, ErrorResponse{Error: err.Error(), Game: game})
}

func (that *handlers) sendJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}

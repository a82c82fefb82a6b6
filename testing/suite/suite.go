package suite

import (
	"context"
	"log/slog"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-core/internal/service"
	"github.com/rocketscienceinc/tictactoe-core/transport/rest"
)

const maxWaitDuration = 30 * time.Second

const (
	firstMark  = "x"
	secondMark = "o"
)

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Games  service.GameService
	Server *httptest.Server
}

// New starts the REST router over a fresh in-memory game service.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelWarn}))

	games := service.NewGameService(logger, firstMark, secondMark)
	server := httptest.NewServer(rest.NewRouter(logger, games))

	t.Cleanup(func() {
		server.Close()
	})

	return ctx, &Suite{
		T:      t,
		Logger: logger,
		Games:  games,
		Server: server,
	}
}

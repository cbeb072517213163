package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbessler/pocketchess/internal/config"
	"github.com/tbessler/pocketchess/internal/engine"
	"github.com/tbessler/pocketchess/internal/model"
	"github.com/tbessler/pocketchess/internal/service"
)

func newService() *service.GameService {
	cfg := config.Default()
	cfg.AIMoveDelayMs = int(time.Hour.Milliseconds())
	return service.NewGameService(service.NewGameManager(cfg))
}

func TestCreateAndFetchGame(t *testing.T) {
	svc := newService()

	gameID, err := svc.CreateGame("player-1", 2)
	require.NoError(t, err)
	require.NotEmpty(t, gameID)

	state, err := svc.GetGameState(gameID)
	require.NoError(t, err)
	assert.Equal(t, "white", state.ToMove)
	assert.Equal(t, 2, state.Difficulty)
}

func TestGameNotFound(t *testing.T) {
	svc := newService()

	_, err := svc.GetGameState("no-such-game")
	require.ErrorIs(t, err, service.ErrGameNotFound)

	err = svc.HandleMove("no-such-game", "player-1", model.MoveRequest{})
	require.ErrorIs(t, err, service.ErrGameNotFound)

	err = svc.HandleUndo("no-such-game", "player-1")
	require.ErrorIs(t, err, service.ErrGameNotFound)

	_, err = svc.Evaluation("no-such-game")
	require.ErrorIs(t, err, service.ErrGameNotFound)
}

func TestHandleMoveFlow(t *testing.T) {
	svc := newService()
	gameID, err := svc.CreateGame("player-1", 1)
	require.NoError(t, err)

	err = svc.HandleMove(gameID, "player-1", model.MoveRequest{
		From: engine.Position{X: 4, Y: 6},
		To:   engine.Position{X: 4, Y: 4},
	})
	require.NoError(t, err)

	err = svc.HandleMove(gameID, "intruder", model.MoveRequest{
		From: engine.Position{X: 3, Y: 6},
		To:   engine.Position{X: 3, Y: 4},
	})
	require.ErrorIs(t, err, model.ErrNotInGame)

	require.NoError(t, svc.HandleUndo(gameID, "player-1"))
	state, err := svc.GetGameState(gameID)
	require.NoError(t, err)
	assert.Empty(t, state.MoveHistory)
}

func TestLegalMovesAndEvaluation(t *testing.T) {
	svc := newService()
	gameID, err := svc.CreateGame("player-1", 1)
	require.NoError(t, err)

	moves, err := svc.LegalMoves(gameID, engine.Position{X: 6, Y: 7})
	require.NoError(t, err)
	assert.ElementsMatch(t, []engine.Position{{X: 7, Y: 5}, {X: 5, Y: 5}}, moves)

	score, err := svc.Evaluation(gameID)
	require.NoError(t, err)
	assert.Equal(t, 0, score)
}

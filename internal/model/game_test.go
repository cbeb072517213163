package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbessler/pocketchess/internal/config"
	"github.com/tbessler/pocketchess/internal/engine"
	"github.com/tbessler/pocketchess/internal/model"
)

const owner = "player-1"

// frozen keeps the engine's answer from firing so tests stay
// deterministic; instant lets it reply immediately.
func frozenGame(level int) *model.Game {
	cfg := config.Default()
	cfg.AIMoveDelayMs = int(time.Hour.Milliseconds())
	return model.NewGame("test-game", owner, level, cfg)
}

func instantGame(level int) *model.Game {
	cfg := config.Default()
	cfg.AIMoveDelayMs = 0
	return model.NewGame("test-game", owner, level, cfg)
}

func TestMakeMoveAndEngineReply(t *testing.T) {
	g := instantGame(1)

	err := g.MakeMove(owner, model.MoveRequest{
		From: engine.Position{X: 4, Y: 6},
		To:   engine.Position{X: 4, Y: 4},
	})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return len(g.GetState().MoveHistory) == 2
	}, 5*time.Second, 10*time.Millisecond, "engine should answer the player move")

	state := g.GetState()
	assert.Equal(t, "white", state.ToMove)
	assert.Equal(t, "ongoing", state.Status)
	assert.Equal(t, engine.Black, state.MoveHistory[1].Piece.Color)
}

func TestMakeMoveRejectsNonOwner(t *testing.T) {
	g := frozenGame(1)
	err := g.MakeMove("someone-else", model.MoveRequest{
		From: engine.Position{X: 4, Y: 6},
		To:   engine.Position{X: 4, Y: 4},
	})
	require.ErrorIs(t, err, model.ErrNotInGame)
}

func TestMakeMoveRejectsIllegalMove(t *testing.T) {
	g := frozenGame(1)
	err := g.MakeMove(owner, model.MoveRequest{
		From: engine.Position{X: 0, Y: 7},
		To:   engine.Position{X: 0, Y: 3},
	})
	require.ErrorIs(t, err, engine.ErrIllegalMove)
	assert.Empty(t, g.GetState().MoveHistory)
}

func TestMakeMoveRejectsOutOfTurn(t *testing.T) {
	g := frozenGame(1)
	require.NoError(t, g.MakeMove(owner, model.MoveRequest{
		From: engine.Position{X: 4, Y: 6},
		To:   engine.Position{X: 4, Y: 4},
	}))
	// Engine reply is frozen, so it is still Black's turn.
	err := g.MakeMove(owner, model.MoveRequest{
		From: engine.Position{X: 3, Y: 6},
		To:   engine.Position{X: 3, Y: 4},
	})
	require.ErrorIs(t, err, model.ErrNotYourTurn)
}

func TestUndoRoundBeforeEngineAnswers(t *testing.T) {
	g := frozenGame(1)
	require.NoError(t, g.MakeMove(owner, model.MoveRequest{
		From: engine.Position{X: 4, Y: 6},
		To:   engine.Position{X: 4, Y: 4},
	}))

	require.NoError(t, g.UndoRound(owner))
	state := g.GetState()
	assert.Empty(t, state.MoveHistory)
	assert.Equal(t, "white", state.ToMove)
}

func TestUndoRoundAfterEngineAnswers(t *testing.T) {
	g := instantGame(1)
	require.NoError(t, g.MakeMove(owner, model.MoveRequest{
		From: engine.Position{X: 4, Y: 6},
		To:   engine.Position{X: 4, Y: 4},
	}))
	require.Eventually(t, func() bool {
		return len(g.GetState().MoveHistory) == 2
	}, 5*time.Second, 10*time.Millisecond)

	require.NoError(t, g.UndoRound(owner))
	state := g.GetState()
	assert.Empty(t, state.MoveHistory)
	assert.Equal(t, "white", state.ToMove)
}

func TestUndoRoundEmptyHistory(t *testing.T) {
	g := frozenGame(1)
	require.ErrorIs(t, g.UndoRound(owner), model.ErrNothingToUndo)
	require.ErrorIs(t, g.UndoRound("someone-else"), model.ErrNotInGame)
}

func TestLegalMoves(t *testing.T) {
	g := frozenGame(1)

	dests := g.LegalMoves(engine.Position{X: 4, Y: 6})
	assert.ElementsMatch(t, []engine.Position{{X: 4, Y: 5}, {X: 4, Y: 4}}, dests)

	// Black piece while it is White's turn: no highlights.
	assert.Empty(t, g.LegalMoves(engine.Position{X: 4, Y: 1}))
	assert.Empty(t, g.LegalMoves(engine.Position{X: 4, Y: 4}))
}

func TestEvaluationAndClientState(t *testing.T) {
	g := frozenGame(3)
	assert.Equal(t, 0, g.Evaluation())

	state := g.GetState()
	assert.Equal(t, "white", state.ToMove)
	assert.Equal(t, "ongoing", state.Status)
	assert.Equal(t, 3, state.Difficulty)
	assert.Equal(t, 0, state.Evaluation)
	assert.Nil(t, state.LastMove)
	assert.Equal(t, "white", state.Players.White.Color)
	assert.Equal(t, "black", state.Players.Black.Color)
	assert.True(t, g.IsOwner(owner))
	assert.False(t, g.IsOwner("someone-else"))
}

package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbessler/pocketchess/internal/engine"
)

func TestStartingPosition(t *testing.T) {
	b := engine.Starting()

	backRank := []engine.PieceType{
		engine.Rook, engine.Knight, engine.Bishop, engine.Queen,
		engine.King, engine.Bishop, engine.Knight, engine.Rook,
	}
	for x, want := range backRank {
		black := b.Get(engine.Position{X: x, Y: 0})
		white := b.Get(engine.Position{X: x, Y: 7})
		assert.Equal(t, engine.Piece{Color: engine.Black, Type: want}, black)
		assert.Equal(t, engine.Piece{Color: engine.White, Type: want}, white)
	}
	for x := 0; x < 8; x++ {
		assert.Equal(t, engine.Piece{Color: engine.Black, Type: engine.Pawn}, b.Get(engine.Position{X: x, Y: 1}))
		assert.Equal(t, engine.Piece{Color: engine.White, Type: engine.Pawn}, b.Get(engine.Position{X: x, Y: 6}))
	}
	for y := 2; y < 6; y++ {
		for x := 0; x < 8; x++ {
			assert.True(t, b.Get(engine.Position{X: x, Y: y}).IsEmpty())
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b := engine.Starting()
	clone := b.Clone()

	clone.Set(engine.Position{X: 4, Y: 4}, engine.Piece{Color: engine.White, Type: engine.Queen})
	clone.Set(engine.Position{X: 4, Y: 6}, engine.Piece{})

	require.True(t, b.Get(engine.Position{X: 4, Y: 4}).IsEmpty())
	require.Equal(t, engine.Piece{Color: engine.White, Type: engine.Pawn}, b.Get(engine.Position{X: 4, Y: 6}))
}

func TestOpponent(t *testing.T) {
	assert.Equal(t, engine.Black, engine.White.Opponent())
	assert.Equal(t, engine.White, engine.Black.Opponent())
}

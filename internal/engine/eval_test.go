package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tbessler/pocketchess/internal/engine"
)

func TestEvaluateStartingPositionIsZero(t *testing.T) {
	b := engine.Starting()
	assert.Equal(t, 0, engine.Evaluate(&b))
}

func TestEvaluateMaterialValues(t *testing.T) {
	cases := []struct {
		piece engine.PieceType
		value int
	}{
		{engine.Pawn, 100},
		{engine.Knight, 320},
		{engine.Bishop, 330},
		{engine.Rook, 500},
		{engine.Queen, 900},
		{engine.King, 20000},
	}
	for _, tc := range cases {
		var b engine.Board
		b.Set(engine.Position{X: 0, Y: 0}, engine.Piece{Color: engine.White, Type: tc.piece})
		assert.Equal(t, tc.value, engine.Evaluate(&b), "white %s", tc.piece)
		b.Set(engine.Position{X: 0, Y: 0}, engine.Piece{Color: engine.Black, Type: tc.piece})
		assert.Equal(t, -tc.value, engine.Evaluate(&b), "black %s", tc.piece)
	}
}

func TestEvaluateSignConvention(t *testing.T) {
	b := engine.Starting()
	// Remove Black's queen: White should be ahead by exactly one queen.
	b.Set(engine.Position{X: 3, Y: 0}, engine.Piece{})
	assert.Equal(t, 900, engine.Evaluate(&b))
}

package engine

import (
	"time"

	"lukechampine.com/frand"
)

// Difficulty is the search parameterization for one level. Random
// short-circuits the search entirely.
type Difficulty struct {
	Depth      int
	TimeBudget time.Duration
	Random     bool
}

const (
	MinLevel = 1
	MaxLevel = 5

	budgetPerPly  = time.Second
	budgetCeiling = 4 * time.Second
)

// DifficultyForLevel maps an integer level to search parameters.
// Level 1 plays uniformly at random. Higher levels search one ply
// deeper each, with a time budget that grows with depth but is capped
// so worst-case move latency stays bounded.
func DifficultyForLevel(level int) Difficulty {
	if level <= MinLevel {
		return Difficulty{Random: true}
	}
	if level > MaxLevel {
		level = MaxLevel
	}
	budget := time.Duration(level) * budgetPerPly
	if budget > budgetCeiling {
		budget = budgetCeiling
	}
	return Difficulty{Depth: level, TimeBudget: budget}
}

// Engine is the automated opponent: a difficulty level plus the
// searcher and RNG that level dispatches to.
type Engine struct {
	level    int
	searcher *Searcher
	rng      *frand.RNG
}

func NewEngine(level int) *Engine {
	return &Engine{
		level:    level,
		searcher: NewSearcher(),
		rng:      frand.New(),
	}
}

// NewEngineWithSeed fixes the RNG seed (32 bytes) so the level-1
// random policy is reproducible in tests.
func NewEngineWithSeed(level int, seed []byte) *Engine {
	return &Engine{
		level:    level,
		searcher: NewSearcher(),
		rng:      frand.NewCustom(seed, 1024, 12),
	}
}

func (e *Engine) Level() int {
	return e.level
}

// ChooseMove is the single entry point the boundary calls when it is
// the automated side's turn. ErrNoMoves signals end of game.
func (e *Engine) ChooseMove(gs *GameState) (Move, error) {
	diff := DifficultyForLevel(e.level)
	if diff.Random {
		moves := Generate(&gs.Board, gs.ToMove)
		if len(moves) == 0 {
			return Move{}, ErrNoMoves
		}
		return moves[e.rng.Intn(len(moves))], nil
	}
	return e.searcher.Search(gs, diff.Depth, diff.TimeBudget)
}

package engine

import (
	"errors"
	"time"

	"github.com/rs/zerolog/log"
)

// ErrNoMoves means the side to move has no pseudo-legal moves: the
// game is over as far as the engine is concerned.
var ErrNoMoves = errors.New("no moves for side to move")

const scoreInf = 1 << 30

// Searcher runs depth-limited minimax with alpha-beta pruning under a
// wall-clock budget. The clock is injected so the cutoff is testable.
// A Searcher runs one search at a time.
type Searcher struct {
	now   func() time.Time
	nodes int
}

func NewSearcher() *Searcher {
	return &Searcher{now: time.Now}
}

func NewSearcherWithClock(now func() time.Time) *Searcher {
	return &Searcher{now: now}
}

// Search picks the best move for the side to move, exploring at most
// depth plies and stopping once the budget is spent. When the budget
// runs out mid-iteration the best move found so far is returned; the
// search degrades, it does not fail. ErrNoMoves when the side has no
// moves at all.
func (s *Searcher) Search(gs *GameState, depth int, budget time.Duration) (Move, error) {
	start := s.now()
	deadline := start.Add(budget)
	moves := orderMoves(Generate(&gs.Board, gs.ToMove))
	if len(moves) == 0 {
		return Move{}, ErrNoMoves
	}
	s.nodes = 0
	maximizing := gs.ToMove == White
	alpha, beta := -scoreInf, scoreInf
	best := moves[0]
	bestScore := scoreInf
	if maximizing {
		bestScore = -scoreInf
	}
	for _, m := range moves {
		child := gs.Board.applied(m)
		score := s.alphaBeta(&child, depth-1, gs.ToMove.Opponent(), alpha, beta, deadline)
		if maximizing {
			if score > bestScore {
				bestScore, best = score, m
			}
			if bestScore > alpha {
				alpha = bestScore
			}
		} else {
			if score < bestScore {
				bestScore, best = score, m
			}
			if bestScore < beta {
				beta = bestScore
			}
		}
		if s.now().After(deadline) {
			break
		}
	}
	log.Debug().
		Int("depth", depth).
		Int("nodes", s.nodes).
		Int("score", bestScore).
		Dur("elapsed", s.now().Sub(start)).
		Msg("search-complete")
	return best, nil
}

func (s *Searcher) alphaBeta(b *Board, depth int, toMove Color, alpha, beta int, deadline time.Time) int {
	s.nodes++
	if depth == 0 || s.now().After(deadline) {
		return Evaluate(b)
	}
	moves := orderMoves(Generate(b, toMove))
	if len(moves) == 0 {
		// Checkmate, stalemate and quiescence all collapse into the
		// static evaluation here.
		return Evaluate(b)
	}
	if toMove == White {
		best := -scoreInf
		for _, m := range moves {
			child := b.applied(m)
			score := s.alphaBeta(&child, depth-1, Black, alpha, beta, deadline)
			if score > best {
				best = score
			}
			if best > alpha {
				alpha = best
			}
			if beta <= alpha {
				break
			}
			if s.now().After(deadline) {
				break
			}
		}
		return best
	}
	best := scoreInf
	for _, m := range moves {
		child := b.applied(m)
		score := s.alphaBeta(&child, depth-1, White, alpha, beta, deadline)
		if score < best {
			best = score
		}
		if best < beta {
			beta = best
		}
		if beta <= alpha {
			break
		}
		if s.now().After(deadline) {
			break
		}
	}
	return best
}

// orderMoves puts captures ahead of quiet moves, keeping generator
// order within each group, to tighten the alpha-beta window early.
func orderMoves(moves []Move) []Move {
	ordered := make([]Move, 0, len(moves))
	for _, m := range moves {
		if m.IsCapture() {
			ordered = append(ordered, m)
		}
	}
	for _, m := range moves {
		if !m.IsCapture() {
			ordered = append(ordered, m)
		}
	}
	return ordered
}

package engine

import "errors"

var (
	ErrOffBoard    = errors.New("position off the board")
	ErrEmptySquare = errors.New("no piece on origin square")
	ErrWrongSide   = errors.New("piece does not belong to the side to move")
	ErrIllegalMove = errors.New("move is not legal for the piece")
)

// Status is the explicit end-of-game signal. The engine does not
// distinguish checkmate from stalemate: either way the side to move
// has no pseudo-legal moves.
type Status int8

const (
	StatusOngoing Status = iota
	StatusNoMoves
)

func (s Status) String() string {
	if s == StatusNoMoves {
		return "noMoves"
	}
	return "ongoing"
}

// GameState is the whole mutable state of one game: board, side to
// move and the executed-move history that powers undo. It is a value
// owned by the caller; the engine keeps no state of its own.
type GameState struct {
	Board   Board
	ToMove  Color
	history []Move
}

func NewGameState() GameState {
	return GameState{
		Board:  Starting(),
		ToMove: White,
	}
}

// Clone returns a fully independent copy, history included.
func (gs *GameState) Clone() GameState {
	out := GameState{
		Board:  gs.Board,
		ToMove: gs.ToMove,
	}
	if len(gs.history) > 0 {
		out.history = append([]Move(nil), gs.history...)
	}
	return out
}

// Execute validates the move against the generator, applies it,
// records it and flips the side to move. It returns the captured
// piece (possibly empty). Malformed requests are rejected with an
// error and leave the state untouched.
func (gs *GameState) Execute(m Move) (Piece, error) {
	if !m.From.OnBoard() || !m.To.OnBoard() {
		return Piece{}, ErrOffBoard
	}
	mover := gs.Board.Get(m.From)
	if mover.IsEmpty() {
		return Piece{}, ErrEmptySquare
	}
	if mover.Color != gs.ToMove {
		return Piece{}, ErrWrongSide
	}
	matched := false
	for _, cand := range pieceMoves(&gs.Board, m.From, mover) {
		if cand.To == m.To {
			m = cand
			matched = true
			break
		}
	}
	if !matched {
		return Piece{}, ErrIllegalMove
	}
	gs.Board = gs.Board.applied(m)
	gs.history = append(gs.history, m)
	gs.ToMove = gs.ToMove.Opponent()
	return m.Captured, nil
}

// Undo reverts the last executed move exactly: mover back to its
// origin, captured piece back to the destination, side to move
// flipped back. Returns false on empty history, state unchanged.
func (gs *GameState) Undo() bool {
	if len(gs.history) == 0 {
		return false
	}
	m := gs.history[len(gs.history)-1]
	gs.history = gs.history[:len(gs.history)-1]
	gs.Board.Set(m.From, m.Piece)
	gs.Board.Set(m.To, m.Captured)
	gs.ToMove = gs.ToMove.Opponent()
	return true
}

// History returns a copy of the executed moves, oldest first.
func (gs *GameState) History() []Move {
	return append([]Move(nil), gs.history...)
}

func (gs *GameState) LastMove() (Move, bool) {
	if len(gs.history) == 0 {
		return Move{}, false
	}
	return gs.history[len(gs.history)-1], true
}

// Status reports whether the side to move still has moves. Callers
// treat StatusNoMoves as end of game.
func (gs *GameState) Status() Status {
	if len(Generate(&gs.Board, gs.ToMove)) == 0 {
		return StatusNoMoves
	}
	return StatusOngoing
}

// MovesFrom returns the pseudo-legal moves of the piece on pos, or
// nil when the square is empty or held by the side not to move. Used
// by the boundary for click/drag highlighting.
func (gs *GameState) MovesFrom(pos Position) []Move {
	if !pos.OnBoard() {
		return nil
	}
	piece := gs.Board.Get(pos)
	if piece.IsEmpty() || piece.Color != gs.ToMove {
		return nil
	}
	return pieceMoves(&gs.Board, pos, piece)
}

package engine

var (
	knightOffsets = []Position{{X: 2, Y: 1}, {X: 2, Y: -1}, {X: -2, Y: 1}, {X: -2, Y: -1}, {X: 1, Y: 2}, {X: 1, Y: -2}, {X: -1, Y: 2}, {X: -1, Y: -2}}
	kingOffsets   = []Position{{X: 1, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: -1}, {X: 1, Y: 1}, {X: 1, Y: -1}, {X: -1, Y: 1}, {X: -1, Y: -1}}
	bishopDirs    = []Position{{X: 1, Y: 1}, {X: 1, Y: -1}, {X: -1, Y: 1}, {X: -1, Y: -1}}
	rookDirs      = []Position{{X: 1, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: -1}}
)

// Generate returns the pseudo-legal moves for every piece of the given
// color: ownership-, shape- and path-correct, with no regard for
// leaving one's own king capturable. Origins are scanned row-major and
// each piece walks a fixed direction order, so the output order is
// deterministic for a given board.
func Generate(b *Board, color Color) []Move {
	moves := []Move{}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			from := Position{X: x, Y: y}
			piece := b.Get(from)
			if piece.IsEmpty() || piece.Color != color {
				continue
			}
			moves = append(moves, pieceMoves(b, from, piece)...)
		}
	}
	return moves
}

func pieceMoves(b *Board, from Position, piece Piece) []Move {
	switch piece.Type {
	case Pawn:
		return pawnMoves(b, from, piece)
	case Knight:
		return leaperMoves(b, from, piece, knightOffsets)
	case Bishop:
		return slidingMoves(b, from, piece, bishopDirs)
	case Rook:
		return slidingMoves(b, from, piece, rookDirs)
	case Queen:
		return append(slidingMoves(b, from, piece, bishopDirs), slidingMoves(b, from, piece, rookDirs)...)
	case King:
		return leaperMoves(b, from, piece, kingOffsets)
	}
	return nil
}

func pawnMoves(b *Board, from Position, piece Piece) []Move {
	moves := []Move{}
	dy := -1
	startRank := 6
	if piece.Color == Black {
		dy = 1
		startRank = 1
	}
	// Forward one, and two from the starting rank through empty cells.
	one := Position{X: from.X, Y: from.Y + dy}
	if one.OnBoard() && b.Get(one).IsEmpty() {
		moves = append(moves, Move{From: from, To: one, Piece: piece})
		two := Position{X: from.X, Y: from.Y + 2*dy}
		if from.Y == startRank && b.Get(two).IsEmpty() {
			moves = append(moves, Move{From: from, To: two, Piece: piece})
		}
	}
	// Diagonal captures only.
	for _, dx := range []int{-1, 1} {
		to := Position{X: from.X + dx, Y: from.Y + dy}
		if !to.OnBoard() {
			continue
		}
		target := b.Get(to)
		if !target.IsEmpty() && target.Color != piece.Color {
			moves = append(moves, Move{From: from, To: to, Piece: piece, Captured: target})
		}
	}
	return moves
}

func leaperMoves(b *Board, from Position, piece Piece, offsets []Position) []Move {
	moves := []Move{}
	for _, off := range offsets {
		to := from.Add(off)
		if !to.OnBoard() {
			continue
		}
		target := b.Get(to)
		if target.IsEmpty() || target.Color != piece.Color {
			moves = append(moves, Move{From: from, To: to, Piece: piece, Captured: target})
		}
	}
	return moves
}

func slidingMoves(b *Board, from Position, piece Piece, dirs []Position) []Move {
	moves := []Move{}
	for _, dir := range dirs {
		for to := from.Add(dir); to.OnBoard(); to = to.Add(dir) {
			target := b.Get(to)
			if target.IsEmpty() {
				moves = append(moves, Move{From: from, To: to, Piece: piece})
				continue
			}
			if target.Color != piece.Color {
				moves = append(moves, Move{From: from, To: to, Piece: piece, Captured: target})
			}
			break
		}
	}
	return moves
}

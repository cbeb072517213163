package engine

// Standard material values in centipawns. The king's weight is large
// enough that losing it dominates any material swing, which is how a
// search branch recognizes a "king captured" line: there is no
// separate check detection.
var pieceValues = [...]int{
	NoPiece: 0,
	Pawn:    100,
	Knight:  320,
	Bishop:  330,
	Rook:    500,
	Queen:   900,
	King:    20000,
}

// Evaluate sums material, White positive, Black negative. The starting
// position scores exactly 0.
func Evaluate(b *Board) int {
	score := 0
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			p := b.cells[y][x]
			if p.IsEmpty() {
				continue
			}
			if p.Color == White {
				score += pieceValues[p.Type]
			} else {
				score -= pieceValues[p.Type]
			}
		}
	}
	return score
}

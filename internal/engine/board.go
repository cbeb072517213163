package engine

import "encoding/json"

type Color int8

const (
	White Color = iota
	Black
)

func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

type PieceType int8

const (
	NoPiece PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

func (t PieceType) String() string {
	switch t {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	}
	return ""
}

// Piece is a tagged (color, type) value. The zero value is an empty cell.
type Piece struct {
	Color Color
	Type  PieceType
}

func (p Piece) IsEmpty() bool {
	return p.Type == NoPiece
}

func (p Piece) MarshalJSON() ([]byte, error) {
	if p.IsEmpty() {
		return []byte("null"), nil
	}
	return json.Marshal(struct {
		Color string `json:"color"`
		Type  string `json:"type"`
	}{p.Color.String(), p.Type.String()})
}

// Position addresses a cell. X is the file (0 = a-file), Y the rank
// from the top of the board: y=0 is Black's back rank, y=7 White's.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Position) OnBoard() bool {
	return p.X >= 0 && p.X < 8 && p.Y >= 0 && p.Y < 8
}

func (p Position) Add(d Position) Position {
	return Position{X: p.X + d.X, Y: p.Y + d.Y}
}

// Board is an 8x8 grid of cells. It is a plain value: assignment and
// Clone produce fully independent copies, which the search relies on
// when branching.
type Board struct {
	cells [8][8]Piece
}

func (b *Board) Get(pos Position) Piece {
	return b.cells[pos.Y][pos.X]
}

func (b *Board) Set(pos Position, p Piece) {
	b.cells[pos.Y][pos.X] = p
}

func (b Board) Clone() Board {
	return b
}

// applied returns a copy of the board with the move played: the mover
// lands on the destination, the origin is cleared. The value receiver
// is the clone.
func (b Board) applied(m Move) Board {
	b.cells[m.To.Y][m.To.X] = b.cells[m.From.Y][m.From.X]
	b.cells[m.From.Y][m.From.X] = Piece{}
	return b
}

func (b Board) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.cells)
}

// Starting returns the standard chess starting position, Black on the
// top two ranks.
func Starting() Board {
	var b Board
	backRank := [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for x, t := range backRank {
		b.cells[0][x] = Piece{Color: Black, Type: t}
		b.cells[7][x] = Piece{Color: White, Type: t}
	}
	for x := 0; x < 8; x++ {
		b.cells[1][x] = Piece{Color: Black, Type: Pawn}
		b.cells[6][x] = Piece{Color: White, Type: Pawn}
	}
	return b
}

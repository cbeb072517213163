package engine

// Move records enough to apply and to undo: the moving piece returns
// to From, the captured piece (possibly empty) returns to To.
type Move struct {
	From     Position `json:"from"`
	To       Position `json:"to"`
	Piece    Piece    `json:"piece"`
	Captured Piece    `json:"captured"`
}

func (m Move) IsCapture() bool {
	return !m.Captured.IsEmpty()
}

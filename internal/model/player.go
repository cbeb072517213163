package model

// ClientPlayer is the per-side seat as the UI sees it. In a
// single-player game White is the human owner of the session and
// Black is the engine.
type ClientPlayer struct {
	Name     string `json:"name"`
	Color    string `json:"color"`
	TimeLeft int    `json:"timeLeft"`
}

type PlayerColor string

const (
	PlayerColorWhite PlayerColor = "white"
	PlayerColorBlack PlayerColor = "black"
)

package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gofiber/websocket/v2"
	"github.com/rs/zerolog/log"

	"github.com/tbessler/pocketchess/internal/config"
	"github.com/tbessler/pocketchess/internal/engine"
	"github.com/tbessler/pocketchess/internal/ws"
)

var (
	ErrNotYourTurn   = errors.New("not your turn")
	ErrNotInGame     = errors.New("player does not own this game")
	ErrGameOver      = errors.New("game is over")
	ErrNothingToUndo = errors.New("nothing to undo")
)

// The connections for a specific game
type GameConnections struct {
	connections map[string]*websocket.Conn // playerID -> connection
	mu          sync.RWMutex
}

func NewGameConnections() *GameConnections {
	return &GameConnections{
		connections: make(map[string]*websocket.Conn),
	}
}

// Game is one player-vs-engine session: the engine game state plus
// everything the boundary owns on top of it (clocks, difficulty,
// observers, the AI turn scheduling).
type Game struct {
	ID          string
	mu          sync.Mutex
	state       engine.GameState
	opponent    *engine.Engine
	ownerID     string
	connections *GameConnections
	whiteClock  *Clock
	blackClock  *Clock
	aiDelay     time.Duration
}

// MoveRequest is the from/to pair the UI submits.
type MoveRequest struct {
	From engine.Position `json:"from"`
	To   engine.Position `json:"to"`
}

type SimpleMove struct {
	From engine.Position `json:"from"`
	To   engine.Position `json:"to"`
}

// ClientState is the full snapshot pushed to the UI on every change.
// The board crosses the boundary as an opaque value copy, not a
// core-defined serialization format.
type ClientState struct {
	Board       engine.Board  `json:"board"`
	ToMove      string        `json:"toMove"`
	Status      string        `json:"status"`
	Difficulty  int           `json:"difficulty"`
	Evaluation  int           `json:"evaluation"`
	MoveHistory []engine.Move `json:"moveHistory"`
	LastMove    *SimpleMove   `json:"lastMove"`
	Players     struct {
		White ClientPlayer `json:"white"`
		Black ClientPlayer `json:"black"`
	} `json:"players"`
}

func NewGame(id string, ownerID string, level int, cfg config.Config) *Game {
	clockTime := time.Duration(cfg.ClockSeconds) * time.Second
	return &Game{
		ID:          id,
		state:       engine.NewGameState(),
		opponent:    engine.NewEngine(level),
		ownerID:     ownerID,
		connections: NewGameConnections(),
		whiteClock:  NewClock(clockTime),
		blackClock:  NewClock(clockTime),
		aiDelay:     time.Duration(cfg.AIMoveDelayMs) * time.Millisecond,
	}
}

// MakeMove executes the human move (White) and, if the game is still
// going, schedules the engine's answer after the configured delay.
// The delay is a UI pacing concern; the engine itself never initiates
// turns.
func (g *Game) MakeMove(playerID string, req MoveRequest) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if playerID != g.ownerID {
		return ErrNotInGame
	}
	if g.state.ToMove != engine.White {
		return ErrNotYourTurn
	}
	if g.state.Status() == engine.StatusNoMoves {
		return ErrGameOver
	}

	if _, err := g.state.Execute(engine.Move{From: req.From, To: req.To}); err != nil {
		return err
	}
	g.whiteClock.Stop()
	g.blackClock.Start()

	go g.broadcastState()

	if g.state.Status() == engine.StatusOngoing {
		time.AfterFunc(g.aiDelay, g.playEngineTurn)
	}
	return nil
}

// playEngineTurn runs the automated opponent's move. It re-checks the
// turn under the lock: an undo between scheduling and firing turns it
// into a no-op.
func (g *Game) playEngineTurn() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state.ToMove != engine.Black {
		return
	}
	move, err := g.opponent.ChooseMove(&g.state)
	if err != nil {
		if errors.Is(err, engine.ErrNoMoves) {
			go g.broadcastState()
			return
		}
		log.Error().Err(err).Str("game", g.ID).Msg("engine move selection failed")
		return
	}
	if _, err := g.state.Execute(move); err != nil {
		log.Error().Err(err).Str("game", g.ID).Msg("engine move rejected by executor")
		return
	}
	g.blackClock.Stop()
	g.whiteClock.Start()
	log.Debug().
		Str("game", g.ID).
		Int("level", g.opponent.Level()).
		Interface("move", SimpleMove{From: move.From, To: move.To}).
		Msg("engine moved")

	go g.broadcastState()
}

// UndoRound takes back a full round so it is the human's turn again:
// the engine's reply and the human move, or just the human move when
// the engine has not answered yet. Both are the executor's single
// undo primitive, never a special case.
func (g *Game) UndoRound(playerID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if playerID != g.ownerID {
		return ErrNotInGame
	}
	if !g.state.Undo() {
		return ErrNothingToUndo
	}
	if g.state.ToMove != engine.White {
		g.state.Undo()
	}
	g.blackClock.Stop()
	g.whiteClock.Start()

	go g.broadcastState()
	return nil
}

// LegalMoves returns the destinations of the piece on pos, for
// click/drag highlighting. Empty when it is not that piece's turn.
func (g *Game) LegalMoves(pos engine.Position) []engine.Position {
	g.mu.Lock()
	defer g.mu.Unlock()

	dests := []engine.Position{}
	for _, m := range g.state.MovesFrom(pos) {
		dests = append(dests, m.To)
	}
	return dests
}

// Evaluation exposes the material score for analysis indicators.
func (g *Game) Evaluation() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return engine.Evaluate(&g.state.Board)
}

func (g *Game) GetState() ClientState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.clientState()
}

func (g *Game) clientState() ClientState {
	cs := ClientState{
		Board:       g.state.Board.Clone(),
		ToMove:      g.state.ToMove.String(),
		Status:      g.state.Status().String(),
		Difficulty:  g.opponent.Level(),
		Evaluation:  engine.Evaluate(&g.state.Board),
		MoveHistory: g.state.History(),
	}
	if last, ok := g.state.LastMove(); ok {
		cs.LastMove = &SimpleMove{From: last.From, To: last.To}
	}
	cs.Players.White = ClientPlayer{
		Name:     g.ownerID,
		Color:    string(PlayerColorWhite),
		TimeLeft: int(g.whiteClock.GetTimeLeft().Milliseconds()),
	}
	cs.Players.Black = ClientPlayer{
		Name:     fmt.Sprintf("engine (level %d)", g.opponent.Level()),
		Color:    string(PlayerColorBlack),
		TimeLeft: int(g.blackClock.GetTimeLeft().Milliseconds()),
	}
	return cs
}

func (g *Game) IsOwner(playerID string) bool {
	return playerID == g.ownerID
}

func (g *Game) RegisterConnection(playerID string, conn *websocket.Conn) error {
	g.connections.mu.Lock()
	if _, exists := g.connections.connections[playerID]; exists {
		// Keep the healthy connection, reject the duplicate.
		g.connections.mu.Unlock()
		conn.WriteMessage(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(
				websocket.CloseNormalClosure,
				"Connection already exists",
			),
		)
		conn.Close()
		return nil
	}
	g.connections.connections[playerID] = conn
	g.connections.mu.Unlock()
	log.Debug().Str("game", g.ID).Str("player", playerID).Msg("connection registered")

	go g.broadcastState()
	return nil
}

func (g *Game) UnregisterConnection(playerID string) {
	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()

	if _, exists := g.connections.connections[playerID]; exists {
		delete(g.connections.connections, playerID)
		log.Debug().Str("game", g.ID).Str("player", playerID).Msg("connection unregistered")
	}
}

func (g *Game) broadcastState() {
	state := g.GetState()

	g.connections.mu.RLock()
	activeConnections := make(map[string]*websocket.Conn, len(g.connections.connections))
	for playerID, conn := range g.connections.connections {
		activeConnections[playerID] = conn
	}
	g.connections.mu.RUnlock()

	payload, err := json.Marshal(state)
	if err != nil {
		log.Error().Err(err).Str("game", g.ID).Msg("failed to marshal game state")
		return
	}
	for playerID, conn := range activeConnections {
		if err := conn.WriteJSON(ws.Message{
			Type:    ws.MessageTypeGameState,
			Payload: json.RawMessage(payload),
		}); err != nil {
			log.Warn().Err(err).Str("game", g.ID).Str("player", playerID).Msg("failed to push state, dropping connection")
			g.connections.mu.Lock()
			delete(g.connections.connections, playerID)
			g.connections.mu.Unlock()
		}
	}
}

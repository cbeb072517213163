package service

import (
	"errors"
	"sync"

	"github.com/gofiber/websocket/v2"
	"github.com/rs/zerolog/log"

	"github.com/tbessler/pocketchess/internal/config"
	"github.com/tbessler/pocketchess/internal/engine"
	"github.com/tbessler/pocketchess/internal/model"
)

var ErrGameNotFound = errors.New("game not found")

// GameManager owns the registry of live sessions.
type GameManager struct {
	games map[string]*model.Game
	cfg   config.Config
	mu    sync.RWMutex
}

func NewGameManager(cfg config.Config) *GameManager {
	return &GameManager{
		games: make(map[string]*model.Game),
		cfg:   cfg,
	}
}

func (gm *GameManager) CreateGame(gameID string, ownerID string, level int) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.games[gameID]; exists {
		return errors.New("game already exists")
	}

	gm.games[gameID] = model.NewGame(gameID, ownerID, level, gm.cfg)
	log.Info().Str("game", gameID).Str("owner", ownerID).Int("level", level).Msg("game created")
	return nil
}

func (gm *GameManager) GetGame(gameID string) (*model.Game, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	game, exists := gm.games[gameID]
	if !exists {
		return nil, ErrGameNotFound
	}
	return game, nil
}

func (gm *GameManager) GetGameState(gameID string) (model.ClientState, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return model.ClientState{}, err
	}
	return game.GetState(), nil
}

func (gm *GameManager) MakeMove(gameID string, playerID string, req model.MoveRequest) error {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}
	return game.MakeMove(playerID, req)
}

func (gm *GameManager) UndoRound(gameID string, playerID string) error {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}
	return game.UndoRound(playerID)
}

func (gm *GameManager) LegalMoves(gameID string, pos engine.Position) ([]engine.Position, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return nil, err
	}
	return game.LegalMoves(pos), nil
}

func (gm *GameManager) Evaluation(gameID string) (int, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return 0, err
	}
	return game.Evaluation(), nil
}

func (gm *GameManager) RegisterConnection(gameID string, playerID string, conn *websocket.Conn) error {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}
	return game.RegisterConnection(playerID, conn)
}

func (gm *GameManager) UnregisterConnection(gameID string, playerID string) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return
	}
	game.UnregisterConnection(playerID)
}

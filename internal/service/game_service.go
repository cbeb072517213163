package service

import (
	"fmt"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"

	"github.com/tbessler/pocketchess/internal/engine"
	"github.com/tbessler/pocketchess/internal/model"
)

type GameService struct {
	gameManager *GameManager
}

func NewGameService(gameManager *GameManager) *GameService {
	return &GameService{
		gameManager: gameManager,
	}
}

func (gs *GameService) CreateGame(ownerID string, level int) (string, error) {
	gameID := uuid.New().String()

	if err := gs.gameManager.CreateGame(gameID, ownerID, level); err != nil {
		return "", fmt.Errorf("failed to create game: %w", err)
	}

	return gameID, nil
}

func (gs *GameService) GetGameState(gameID string) (model.ClientState, error) {
	return gs.gameManager.GetGameState(gameID)
}

func (gs *GameService) HandleMove(gameID string, playerID string, req model.MoveRequest) error {
	return gs.gameManager.MakeMove(gameID, playerID, req)
}

func (gs *GameService) HandleUndo(gameID string, playerID string) error {
	return gs.gameManager.UndoRound(gameID, playerID)
}

func (gs *GameService) LegalMoves(gameID string, pos engine.Position) ([]engine.Position, error) {
	return gs.gameManager.LegalMoves(gameID, pos)
}

func (gs *GameService) Evaluation(gameID string) (int, error) {
	return gs.gameManager.Evaluation(gameID)
}

func (gs *GameService) RegisterConnection(gameID string, playerID string, conn *websocket.Conn) error {
	return gs.gameManager.RegisterConnection(gameID, playerID, conn)
}

func (gs *GameService) UnregisterConnection(gameID string, playerID string) {
	gs.gameManager.UnregisterConnection(gameID, playerID)
}

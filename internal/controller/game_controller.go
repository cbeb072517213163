package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tbessler/pocketchess/internal/engine"
	"github.com/tbessler/pocketchess/internal/service"
)

type GameController struct {
	gameService  *service.GameService
	defaultLevel int
}

func NewGameController(gameService *service.GameService, defaultLevel int) *GameController {
	return &GameController{
		gameService:  gameService,
		defaultLevel: defaultLevel,
	}
}

type createGameRequest struct {
	Difficulty int `json:"difficulty"`
}

func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	playerID := c.Locals("playerID").(string)

	req := createGameRequest{Difficulty: gc.defaultLevel}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid request body",
			})
		}
	}
	if req.Difficulty < engine.MinLevel || req.Difficulty > engine.MaxLevel {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "difficulty out of range",
		})
	}

	gameID, err := gc.gameService.CreateGame(playerID, req.Difficulty)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message":    "Game created",
		"game_id":    gameID,
		"difficulty": req.Difficulty,
	})
}

func (gc *GameController) GetGameState(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	gameState, err := gc.gameService.GetGameState(gameID)
	if err != nil {
		if errors.Is(err, service.ErrGameNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch game state",
		})
	}

	return c.JSON(gameState)
}

// GetLegalMoves backs move highlighting: destinations of the piece on
// the queried square.
func (gc *GameController) GetLegalMoves(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	pos := engine.Position{
		X: c.QueryInt("x", -1),
		Y: c.QueryInt("y", -1),
	}
	if !pos.OnBoard() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "x and y must address a board square",
		})
	}

	moves, err := gc.gameService.LegalMoves(gameID, pos)
	if err != nil {
		if errors.Is(err, service.ErrGameNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch legal moves",
		})
	}

	return c.JSON(fiber.Map{
		"moves": moves,
	})
}

func (gc *GameController) GetEvaluation(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	score, err := gc.gameService.Evaluation(gameID)
	if err != nil {
		if errors.Is(err, service.ErrGameNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to evaluate position",
		})
	}

	return c.JSON(fiber.Map{
		"evaluation": score,
	})
}

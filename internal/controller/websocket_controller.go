package controller

import (
	"encoding/json"
	"fmt"

	"github.com/gofiber/websocket/v2"
	"github.com/rs/zerolog/log"

	"github.com/tbessler/pocketchess/internal/model"
	"github.com/tbessler/pocketchess/internal/service"
	"github.com/tbessler/pocketchess/internal/ws"
)

type WebSocketController struct {
	gameService *service.GameService
}

func NewWebSocketController(gameService *service.GameService) *WebSocketController {
	return &WebSocketController{
		gameService: gameService,
	}
}

// HandleConnection is called when a new WebSocket connection is established
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	gameID := c.Params("gameId")
	playerID := c.Locals("playerID").(string)

	if err := wsc.gameService.RegisterConnection(gameID, playerID, c); err != nil {
		log.Error().Err(err).Str("game", gameID).Str("player", playerID).Msg("failed to register connection")
		c.Close()
		return
	}

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			log.Debug().Err(err).Str("game", gameID).Str("player", playerID).Msg("websocket read ended")
			break
		}

		if messageType != websocket.TextMessage {
			continue
		}
		var msg ws.Message
		if err := json.Unmarshal(message, &msg); err != nil {
			log.Warn().Err(err).Str("game", gameID).Msg("unparseable websocket message")
			continue
		}

		if err := wsc.handleMessage(gameID, playerID, msg); err != nil {
			wsc.sendError(c, err.Error())
		}
	}

	wsc.gameService.UnregisterConnection(gameID, playerID)
}

func (wsc *WebSocketController) handleMessage(gameID, playerID string, msg ws.Message) error {
	switch msg.Type {
	case ws.MessageTypeMove:
		var req model.MoveRequest
		if err := json.Unmarshal(msg.Payload, &req); err != nil {
			return err
		}
		return wsc.gameService.HandleMove(gameID, playerID, req)

	case ws.MessageTypeUndo:
		return wsc.gameService.HandleUndo(gameID, playerID)

	default:
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
}

func (wsc *WebSocketController) sendError(c *websocket.Conn, errorMsg string) {
	payload, _ := json.Marshal(errorPayload{Error: errorMsg})
	c.WriteJSON(ws.Message{
		Type:    ws.MessageTypeError,
		Payload: payload,
	})
}

type errorPayload struct {
	Error string `json:"error"`
}

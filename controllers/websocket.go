package controllers

import (
	"github.com/gofiber/fiber/v2"
	fiberws "github.com/gofiber/websocket/v2"
	"github.com/golang-jwt/jwt/v4"

	"hostelms_go/config"
	"hostelms_go/middleware"
	ws "hostelms_go/services/websocket"
)

type WebSocketController struct {
	hub *ws.Hub
}

func NewWebSocketController(hub *ws.Hub) *WebSocketController {
	return &WebSocketController{hub: hub}
}

// WebSocketHandler upgrades the connection and attaches it to the hub. The
// token travels as a query parameter because browsers cannot set headers on
// WebSocket dials.
func (wc *WebSocketController) WebSocketHandler() fiber.Handler {
	return fiberws.New(func(c *fiberws.Conn) {
		tokenString := c.Query("token")
		if tokenString == "" {
			c.Close()
			return
		}

		claims := &middleware.Claims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(config.AppConfig.JWTSecret), nil
		})
		if err != nil || !token.Valid || claims.UserID <= 0 {
			c.Close()
			return
		}

		wc.hub.ServeFiberWS(c, claims.UserID)
	})
}

// GetWebSocketStats returns hub connection counts
func (wc *WebSocketController) GetWebSocketStats(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"connected_clients": wc.hub.GetClientCount(),
	})
}

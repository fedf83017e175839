// handlers/ws.go
package handlers

import (
	"log"
	"os"
	"time"

	"barkhaven/database"
	"barkhaven/gamedata"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/golang-jwt/jwt/v5"
)

// WebSocketUpgrade rejects non-websocket requests and authenticates the
// caller from the token query parameter. Browsers can't set headers on a
// websocket handshake, so the token travels as ?token=.
func WebSocketUpgrade(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}

	tokenString := c.Query("token")
	if tokenString == "" {
		return fiber.NewError(401, "Missing token")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "barkhaven-secret-change-in-production"
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(401, "Invalid signing method")
		}
		return []byte(jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return fiber.NewError(401, "Invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return fiber.NewError(401, "Invalid token claims")
	}
	userID, ok := claims["user_id"].(float64)
	if !ok {
		return fiber.NewError(401, "Invalid token claims")
	}

	c.Locals("userId", uint(userID))
	return c.Next()
}

type weatherFrame struct {
	Season              string  `json:"season"`
	Weather             string  `json:"weather"`
	Temperature         int     `json:"temperature"`
	TrainingModifier    float64 `json:"training_modifier"`
	CompetitionModifier float64 `json:"competition_modifier"`
	Outdoor             bool    `json:"outdoor"`
	At                  string  `json:"at"`
}

// WeatherSocket streams the caller's weather state, pushing a frame on
// connect and then every minute until the peer goes away. The user id is
// resolved from the query token by the route's auth middleware before the
// upgrade, and stashed in Locals.
func WeatherSocket() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		userID, ok := conn.Locals("userId").(uint)
		if !ok {
			_ = conn.WriteJSON(fiber.Map{"error": "unauthorized"})
			return
		}

		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()

		send := func() bool {
			db := database.GetDB()
			w, err := loadOrInitWeather(db, userID)
			if err != nil {
				log.Printf("ws: weather load failed for user %d: %v", userID, err)
				return false
			}

			season := gamedata.Season(w.CurrentSeason)
			condition := gamedata.WeatherCondition(w.CurrentWeather)
			trainingMod, err := gameEngine.TrainingModifier(season, condition)
			if err != nil {
				return false
			}
			outdoor, err := gameEngine.CanDoOutdoorActivities(condition)
			if err != nil {
				return false
			}

			frame := weatherFrame{
				Season:              w.CurrentSeason,
				Weather:             w.CurrentWeather,
				Temperature:         w.Temperature,
				TrainingModifier:    trainingMod,
				CompetitionModifier: gameEngine.CompetitionModifier(season, condition),
				Outdoor:             outdoor,
				At:                  time.Now().UTC().Format(time.RFC3339),
			}
			return conn.WriteJSON(frame) == nil
		}

		if !send() {
			return
		}

		// Drain reads so close frames are processed.
		closed := make(chan struct{})
		go func() {
			defer close(closed)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		for {
			select {
			case <-closed:
				return
			case <-ticker.C:
				if !send() {
					return
				}
			}
		}
	})
}

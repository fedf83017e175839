// handlers/weather.go
package handlers

import (
	"errors"
	"time"

	"barkhaven/database"
	"barkhaven/gamedata"
	"barkhaven/middleware"
	"barkhaven/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// loadOrInitWeather fetches the player's weather row, creating it on first
// access, then lazily refreshes it through the engine.
func loadOrInitWeather(db *gorm.DB, userID uint) (models.GameWeather, error) {
	var w models.GameWeather
	err := db.Where("user_id = ?", userID).First(&w).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		w, err = gameEngine.InitializeWeather()
		if err != nil {
			return w, err
		}
		w.UserID = userID
		if err := db.Create(&w).Error; err != nil {
			return w, err
		}
		return w, nil
	}
	if err != nil {
		return w, err
	}

	updated, changed, err := gameEngine.UpdateWeather(w)
	if err != nil {
		return w, err
	}
	if changed {
		if err := db.Save(&updated).Error; err != nil {
			return updated, err
		}
	}
	return updated, nil
}

// GetWeather returns the player's current weather, modifiers and any active
// seasonal events.
func GetWeather(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	db := database.GetDB()

	w, err := loadOrInitWeather(db, userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to load weather"})
	}

	season := gamedata.Season(w.CurrentSeason)
	condition := gamedata.WeatherCondition(w.CurrentWeather)

	trainingMod, err := gameEngine.TrainingModifier(season, condition)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Corrupt weather state"})
	}
	outdoor, err := gameEngine.CanDoOutdoorActivities(condition)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Corrupt weather state"})
	}

	return c.JSON(fiber.Map{
		"success":              true,
		"weather":              w,
		"training_modifier":    trainingMod,
		"competition_modifier": gameEngine.CompetitionModifier(season, condition),
		"outdoor_activities":   outdoor,
		"seasonal_events":      gameEngine.CurrentSeasonalEvents(time.Now()),
	})
}

// GetForecastTables exposes the static season and weather effect tables so
// the client can render forecasts and tooltips.
func GetForecastTables(c *fiber.Ctx) error {
	catalog := gameEngine.Catalog()
	return c.JSON(fiber.Map{
		"success": true,
		"seasons": catalog.Seasons,
		"weather": catalog.Weather,
	})
}

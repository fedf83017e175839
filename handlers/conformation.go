// handlers/conformation.go
package handlers

import (
	"time"

	"barkhaven/database"
	"barkhaven/engine"
	"barkhaven/middleware"
	"barkhaven/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type EnterShowRequest struct {
	DogID       uint    `json:"dog_id"`
	Performance float64 `json:"performance"` // handler minigame result, 0-100
}

// placementForScore maps a judged total onto a show placement.
func placementForScore(total float64) int {
	switch {
	case total >= 90:
		return 1
	case total >= 80:
		return 2
	case total >= 70:
		return 3
	default:
		return 4
	}
}

// EnterConformationShow judges a dog against its breed standard, records the
// result and feeds progression the same way a regular competition does.
func EnterConformationShow(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	var req EnterShowRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if req.Performance < 0 || req.Performance > 100 {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Performance must be between 0 and 100"})
	}

	db := database.GetDB()

	var dog models.Dog
	if err := db.Where("id = ? AND user_id = ?", req.DogID, userID).First(&dog).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Dog not found"})
	}

	standard, ok := gameEngine.Catalog().Breed(dog.Breed)
	if !ok {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Dog has no breed standard"})
	}

	w, err := loadOrInitWeather(db, userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to load weather"})
	}

	score := gameEngine.ScoreConformation(&dog, standard, req.Performance)
	placement := placementForScore(score.TotalScore)
	won := placement == 1
	xpEarned := engine.CompetitionXP(score.TotalScore, won, placement, 1.0)
	prestige := engine.PrestigeForResult(score.TotalScore, placement)

	result := models.CompetitionResult{
		UserID:    userID,
		DogID:     dog.ID,
		Type:      "conformation",
		Score:     score.TotalScore,
		Placement: placement,
		Won:       won,
		Season:    w.CurrentSeason,
		Weather:   w.CurrentWeather,
		XPEarned:  xpEarned,
		CreatedAt: time.Now(),
	}

	var user models.User
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&result).Error; err != nil {
			return err
		}
		if err := tx.First(&user, userID).Error; err != nil {
			return err
		}
		user.TotalCompetitions++
		if won {
			user.Wins++
			user.CurrentStreak++
			if user.CurrentStreak > user.BestStreak {
				user.BestStreak = user.CurrentStreak
			}
		} else {
			user.Losses++
			user.CurrentStreak = 0
		}
		user.XP += xpEarned
		newLevel := engine.LevelFromXP(user.XP)
		for lvl := user.Level + 1; lvl <= newLevel; lvl++ {
			user.Cash += engine.LevelUpReward(lvl)
		}
		user.Level = newLevel
		if err := tx.Save(&user).Error; err != nil {
			return err
		}

		dog.XP += xpEarned
		dog.Level = engine.LevelFromXP(dog.XP)
		dog.PrestigePoints += prestige
		return tx.Save(&dog).Error
	})
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to record show result"})
	}

	unlockedNow := evaluateCompetitionAchievements(db, userID, &user, "conformation", score.TotalScore, w.CurrentSeason)

	return c.JSON(fiber.Map{
		"success":          true,
		"score":            score,
		"placement":        placement,
		"won":              won,
		"xp_earned":        xpEarned,
		"prestige_earned":  prestige,
		"result":           result,
		"new_achievements": unlockedNow,
	})
}

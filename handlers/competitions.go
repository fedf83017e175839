// handlers/competitions.go
package handlers

import (
	"log"
	"time"

	"barkhaven/database"
	"barkhaven/engine"
	"barkhaven/gamedata"
	"barkhaven/middleware"
	"barkhaven/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type RecordCompetitionRequest struct {
	DogID     uint    `json:"dog_id"`
	Type      string  `json:"type"` // agility, racing, obedience, weight_pull
	Score     float64 `json:"score"`
	Placement int     `json:"placement"`
}

var competitionTypes = map[string]bool{
	"agility":     true,
	"racing":      true,
	"obedience":   true,
	"weight_pull": true,
}

// RecordCompetition persists one competition outcome: applies the weather
// modifier to XP, moves user/dog progression, streaks and prestige inside a
// single transaction, then re-evaluates competition achievements.
func RecordCompetition(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	var req RecordCompetitionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	if !competitionTypes[req.Type] {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Unknown competition type"})
	}
	if req.Score < 0 || req.Score > 100 {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Score must be between 0 and 100"})
	}

	db := database.GetDB()

	var dog models.Dog
	if err := db.Where("id = ? AND user_id = ?", req.DogID, userID).First(&dog).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Dog not found"})
	}

	w, err := loadOrInitWeather(db, userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to load weather"})
	}

	won := req.Placement == 1
	modifier := gameEngine.CompetitionModifier(
		gamedata.Season(w.CurrentSeason), gamedata.WeatherCondition(w.CurrentWeather))
	xpEarned := engine.CompetitionXP(req.Score, won, req.Placement, modifier)
	prestige := engine.PrestigeForResult(req.Score, req.Placement)

	result := models.CompetitionResult{
		UserID:    userID,
		DogID:     dog.ID,
		Type:      req.Type,
		Score:     req.Score,
		Placement: req.Placement,
		Won:       won,
		Season:    w.CurrentSeason,
		Weather:   w.CurrentWeather,
		XPEarned:  xpEarned,
		CreatedAt: time.Now(),
	}

	var user models.User
	var levelUps []int
	var cashEarned int

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
			reward := engine.LevelUpReward(lvl)
			user.Cash += reward
			cashEarned += reward
			levelUps = append(levelUps, lvl)
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
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to record competition"})
	}

	unlockedNow := evaluateCompetitionAchievements(db, userID, &user, req.Type, req.Score, w.CurrentSeason)

	return c.JSON(fiber.Map{
		"success":          true,
		"result":           result,
		"xp_earned":        xpEarned,
		"prestige_earned":  prestige,
		"modifier":         modifier,
		"level_ups":        levelUps,
		"cash_earned":      cashEarned,
		"new_achievements": unlockedNow,
	})
}

// evaluateCompetitionAchievements feeds the post-result metric values into
// the tracker and persists unlocks. Failures only log; the competition result
// is already committed.
func evaluateCompetitionAchievements(db *gorm.DB, userID uint, user *models.User, compType string, score float64, season string) []string {
	var unlocked []models.UserAchievement
	if err := db.Where("user_id = ?", userID).Find(&unlocked).Error; err != nil {
		log.Printf("achievements: load failed for user %d: %v", userID, err)
		return nil
	}

	var disciplinesWon, seasonsCompeted int64
	db.Model(&models.CompetitionResult{}).Where("user_id = ? AND won = ?", userID, true).
		Distinct("type").Count(&disciplinesWon)
	db.Model(&models.CompetitionResult{}).Where("user_id = ?", userID).
		Distinct("season").Count(&seasonsCompeted)

	metrics := map[string]int{
		"first_win":           user.Wins,
		"competition_wins_10": user.Wins,
		"competition_wins_50": user.Wins,
		"all_disciplines":     int(disciplinesWon),
		"seasonal_regular":    int(seasonsCompeted),
		"level_10":            user.Level,
		"level_25":            user.Level,
	}
	if compType == "conformation" {
		metrics["perfect_conformation"] = int(score)
	}
	if season == "winter" && compType == "racing" && user.Wins > 0 {
		metrics["winter_champion"] = 1
	}

	var newlyUnlocked []string
	for id, value := range metrics {
		check, err := gameEngine.CheckAchievementProgress(id, value, unlocked)
		if err != nil {
			log.Printf("achievements: check %s failed: %v", id, err)
			continue
		}
		if _, changed, err := applyProgress(db, userID, id, check); err != nil {
			log.Printf("achievements: save %s failed: %v", id, err)
		} else if changed && check.Unlocked && !check.AlreadyComplete {
			newlyUnlocked = append(newlyUnlocked, id)
		}
	}
	return newlyUnlocked
}

// GetCompetitionHistory lists the player's results, newest first
func GetCompetitionHistory(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	db := database.GetDB()

	query := db.Where("user_id = ?", userID)
	if compType := c.Query("type"); compType != "" {
		query = query.Where("type = ?", compType)
	}

	var results []models.CompetitionResult
	if err := query.Order("created_at DESC").Limit(100).Find(&results).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to load history"})
	}

	return c.JSON(fiber.Map{"success": true, "results": results, "count": len(results)})
}

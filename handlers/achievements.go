// handlers/achievements.go
package handlers

import (
	"errors"
	"time"

	"barkhaven/database"
	"barkhaven/engine"
	"barkhaven/middleware"
	"barkhaven/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ReportProgressRequest struct {
	AchievementID string `json:"achievement_id"`
	Value         int    `json:"value"`
}

// GetAchievements returns the visible catalog annotated with the player's
// unlock state. Hidden achievements only show up once unlocked.
func GetAchievements(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	db := database.GetDB()

	var unlocked []models.UserAchievement
	if err := db.Where("user_id = ?", userID).Find(&unlocked).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to load achievements"})
	}

	byID := make(map[string]models.UserAchievement, len(unlocked))
	for _, ua := range unlocked {
		byID[ua.AchievementID] = ua
	}

	category := c.Query("category")
	catalog := gameEngine.AvailableAchievements(unlocked)
	if category != "" {
		catalog = gameEngine.AchievementsByCategory(category, unlocked)
	}

	items := make([]fiber.Map, 0, len(catalog))
	for _, a := range catalog {
		item := fiber.Map{
			"achievement": a,
			"unlocked":    false,
		}
		if ua, ok := byID[a.ID]; ok {
			item["unlocked"] = !ua.UnlockedAt.IsZero()
			item["unlocked_at"] = ua.UnlockedAt
			item["progress"] = ua.Progress
			item["times_earned"] = ua.TimesEarned
			item["reward_claimed"] = ua.RewardClaimed
		}
		items = append(items, item)
	}

	return c.JSON(fiber.Map{
		"success":            true,
		"achievements":       items,
		"completion_percent": gameEngine.CompletionPercentage(unlocked),
		"almost_complete":    gameEngine.AlmostComplete(unlocked),
		"unlocked_count":     len(unlocked),
	})
}

// ReportAchievementProgress feeds a tracked metric value into the engine and
// persists any unlock or progress change.
func ReportAchievementProgress(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	var req ReportProgressRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	db := database.GetDB()

	var unlocked []models.UserAchievement
	if err := db.Where("user_id = ?", userID).Find(&unlocked).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to load achievements"})
	}

	check, err := gameEngine.CheckAchievementProgress(req.AchievementID, req.Value, unlocked)
	if err != nil {
		if errors.Is(err, engine.ErrUnknownAchievement) {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Unknown achievement"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to evaluate progress"})
	}

	record, changed, err := applyProgress(db, userID, req.AchievementID, check)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to save progress"})
	}

	resp := fiber.Map{
		"success":  true,
		"unlocked": check.Unlocked,
		"progress": check.Progress,
		"changed":  changed,
	}
	if record != nil {
		resp["record"] = record
	}
	return c.JSON(resp)
}

// applyProgress persists the outcome of a progress check. Repeatable
// achievements bump TimesEarned on each re-completion; non-repeatable ones
// only ever move Progress forward.
func applyProgress(db *gorm.DB, userID uint, achievementID string, check engine.ProgressCheck) (*models.UserAchievement, bool, error) {
	var record models.UserAchievement
	err := db.Where("user_id = ? AND achievement_id = ?", userID, achievementID).First(&record).Error

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		if !check.Unlocked && check.Progress == 0 {
			return nil, false, nil
		}
		record = models.UserAchievement{
			UserID:        userID,
			AchievementID: achievementID,
			Progress:      check.Progress,
			TimesEarned:   0,
		}
		if check.Unlocked {
			record.UnlockedAt = time.Now()
			record.TimesEarned = 1
		}
		// Select forces zero-valued columns past their gorm defaults, so a
		// progress-only record doesn't get TimesEarned bumped to 1.
		if createErr := db.Select("UserID", "AchievementID", "Progress", "TimesEarned", "UnlockedAt").
			Create(&record).Error; createErr != nil {
			return nil, false, createErr
		}
		return &record, true, nil

	case err != nil:
		return nil, false, err
	}

	changed := false
	if check.Progress > record.Progress {
		record.Progress = check.Progress
		changed = true
	}
	if check.Unlocked && !check.AlreadyComplete {
		if record.UnlockedAt.IsZero() {
			record.TimesEarned = 1
		} else {
			record.TimesEarned++
		}
		record.UnlockedAt = time.Now()
		changed = true
	}
	if changed {
		if saveErr := db.Save(&record).Error; saveErr != nil {
			return nil, false, saveErr
		}
	}
	return &record, changed, nil
}

// ClaimAchievementReward pays out an unlocked achievement's reward once.
func ClaimAchievementReward(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	achievementID := c.Params("id")
	achievement, ok := gameEngine.Catalog().Achievement(achievementID)
	if !ok {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Unknown achievement"})
	}

	db := database.GetDB()

	var record models.UserAchievement
	if err := db.Where("user_id = ? AND achievement_id = ?", userID, achievementID).
		First(&record).Error; err != nil || record.UnlockedAt.IsZero() {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Achievement not unlocked"})
	}

	if record.RewardClaimed {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Reward already claimed"})
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			return err
		}
		user.Cash += achievement.Reward.Cash
		user.Gems += achievement.Reward.Gems
		user.XP += achievement.Reward.XP
		user.Level = engine.LevelFromXP(user.XP)
		if err := tx.Save(&user).Error; err != nil {
			return err
		}
		record.RewardClaimed = true
		return tx.Save(&record).Error
	})
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to claim reward"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"reward":  achievement.Reward,
	})
}

// handlers/users.go
package handlers

import (
	"barkhaven/database"
	"barkhaven/middleware"
	"barkhaven/models"

	"github.com/gofiber/fiber/v2"
)

// GetProfile returns the authenticated player's profile and headline stats
func GetProfile(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	db := database.GetDB()

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "User not found"})
	}

	var dogCount, staffCount int64
	db.Model(&models.Dog{}).Where("user_id = ?", userID).Count(&dogCount)
	db.Model(&models.StaffMember{}).Where("user_id = ?", userID).Count(&staffCount)

	var unlocked []models.UserAchievement
	db.Where("user_id = ?", userID).Find(&unlocked)

	return c.JSON(fiber.Map{
		"success":                true,
		"user":                   userInfo(user),
		"dog_count":              dogCount,
		"staff_count":            staffCount,
		"achievement_completion": gameEngine.CompletionPercentage(unlocked),
		"prestige_ranks":         gameEngine.Catalog().PrestigeRanks,
	})
}

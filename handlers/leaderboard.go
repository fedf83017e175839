// handlers/leaderboard.go
package handlers

import (
	"strconv"

	"barkhaven/database"
	"barkhaven/models"

	"github.com/gofiber/fiber/v2"
)

type LeaderboardEntry struct {
	Rank     int    `json:"rank"`
	Username string `json:"username"`
	Level    int    `json:"level"`
	XP       int    `json:"xp"`
	Wins     int    `json:"wins"`
	Streak   int    `json:"best_streak"`
	Prestige int    `json:"prestige,omitempty"`
}

// GetLeaderboard returns the top players ranked by the requested category
func GetLeaderboard(c *fiber.Ctx) error {
	category := c.Query("category", "xp")
	limit, err := strconv.Atoi(c.Query("limit", "25"))
	if err != nil || limit < 1 || limit > 100 {
		limit = 25
	}

	db := database.GetDB()

	// Prestige is summed across the player's kennel, so it needs a join
	// instead of a plain user-column sort.
	if category == "prestige" {
		var rows []struct {
			Username   string
			Level      int
			XP         int
			Wins       int
			BestStreak int
			Prestige   int
		}
		err := db.Model(&models.User{}).
			Select("users.username, users.level, users.xp, users.wins, users.best_streak, COALESCE(SUM(dogs.prestige_points), 0) AS prestige").
			Joins("LEFT JOIN dogs ON dogs.user_id = users.id").
			Where("users.is_banned = ? AND users.is_guest = ?", false, false).
			Group("users.id").
			Order("prestige DESC").
			Limit(limit).
			Scan(&rows).Error
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to load leaderboard"})
		}
		entries := make([]LeaderboardEntry, 0, len(rows))
		for i, r := range rows {
			entries = append(entries, LeaderboardEntry{
				Rank:     i + 1,
				Username: r.Username,
				Level:    r.Level,
				XP:       r.XP,
				Wins:     r.Wins,
				Streak:   r.BestStreak,
				Prestige: r.Prestige,
			})
		}
		return c.JSON(fiber.Map{
			"success":     true,
			"category":    category,
			"leaderboard": entries,
		})
	}

	var orderBy string
	switch category {
	case "xp":
		orderBy = "xp DESC"
	case "level":
		orderBy = "level DESC, xp DESC"
	case "wins":
		orderBy = "wins DESC"
	case "streak":
		orderBy = "best_streak DESC"
	default:
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Unknown leaderboard category"})
	}

	var users []models.User
	if err := db.Where("is_banned = ? AND is_guest = ?", false, false).
		Order(orderBy).Limit(limit).Find(&users).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to load leaderboard"})
	}

	entries := make([]LeaderboardEntry, 0, len(users))
	for i, u := range users {
		entries = append(entries, LeaderboardEntry{
			Rank:     i + 1,
			Username: u.Username,
			Level:    u.Level,
			XP:       u.XP,
			Wins:     u.Wins,
			Streak:   u.BestStreak,
		})
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"category":    category,
		"leaderboard": entries,
	})
}

// handlers/tournaments.go
package handlers

import (
	"time"

	"barkhaven/engine"
	"barkhaven/gamedata"

	"github.com/gofiber/fiber/v2"
)

// GetTournamentSchedule returns the full yearly circuit, optionally filtered
// by season or discipline.
func GetTournamentSchedule(c *fiber.Ctx) error {
	season := c.Query("season")
	discipline := c.Query("discipline")

	var circuits []gamedata.TournamentCircuit
	for _, t := range gameEngine.Catalog().Tournaments {
		if season != "" && string(t.Season) != season {
			continue
		}
		if discipline != "" && t.Discipline != discipline {
			continue
		}
		circuits = append(circuits, t)
	}

	return c.JSON(fiber.Map{"success": true, "tournaments": circuits})
}

// GetUpcomingTournaments returns the circuits for the current season plus
// any seasonal events active today.
func GetUpcomingTournaments(c *fiber.Ctx) error {
	now := time.Now()
	season := engine.SeasonForDate(now)

	var circuits []gamedata.TournamentCircuit
	for _, t := range gameEngine.Catalog().Tournaments {
		if t.Season == season {
			circuits = append(circuits, t)
		}
	}

	return c.JSON(fiber.Map{
		"success":       true,
		"season":        season,
		"tournaments":   circuits,
		"active_events": gameEngine.CurrentSeasonalEvents(now),
	})
}

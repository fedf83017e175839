// handlers/dogs.go
package handlers

import (
	"time"

	"barkhaven/database"
	"barkhaven/middleware"
	"barkhaven/models"

	"github.com/gofiber/fiber/v2"
)

type CreateDogRequest struct {
	Name           string `json:"name"`
	Breed          string `json:"breed"`
	Specialization string `json:"specialization"`
	Size           int    `json:"size"`
	Strength       int    `json:"strength"`
	Agility        int    `json:"agility"`
	Intelligence   int    `json:"intelligence"`
	Friendliness   int    `json:"friendliness"`
}

// dogView decorates a dog with its titled name and prestige rank.
func dogView(dog models.Dog) fiber.Map {
	rank := gameEngine.PrestigeRankFor(dog.PrestigePoints)
	return fiber.Map{
		"dog":           dog,
		"titled_name":   gameEngine.FormatDogNameWithTitles(dog.Name, dog.Certifications),
		"prestige_rank": rank,
	}
}

// CreateDog adds a dog to the player's kennel
func CreateDog(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	var req CreateDogRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	if req.Name == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Dog name required"})
	}

	if _, ok := gameEngine.Catalog().Breed(req.Breed); !ok {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Unknown breed"})
	}

	db := database.GetDB()

	dog := models.Dog{
		UserID:         userID,
		Name:           req.Name,
		Breed:          req.Breed,
		Specialization: req.Specialization,
		Level:          1,
		Size:           req.Size,
		Strength:       req.Strength,
		Agility:        req.Agility,
		Intelligence:   req.Intelligence,
		Friendliness:   req.Friendliness,
		CreatedAt:      time.Now(),
	}

	if err := db.Create(&dog).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to create dog"})
	}

	return c.JSON(fiber.Map{"success": true, "dog": dog})
}

// GetDogs lists the player's kennel
func GetDogs(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	db := database.GetDB()

	var dogs []models.Dog
	if err := db.Preload("Certifications").Where("user_id = ?", userID).
		Order("created_at ASC").Find(&dogs).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to load dogs"})
	}

	views := make([]fiber.Map, 0, len(dogs))
	for _, dog := range dogs {
		views = append(views, dogView(dog))
	}

	return c.JSON(fiber.Map{"success": true, "dogs": views, "count": len(views)})
}

// GetDog returns a single dog with titles, rank and recent results
func GetDog(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	dogID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid dog id"})
	}

	db := database.GetDB()

	var dog models.Dog
	if err := db.Preload("Certifications").
		Where("id = ? AND user_id = ?", dogID, userID).First(&dog).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Dog not found"})
	}

	var results []models.CompetitionResult
	db.Where("dog_id = ?", dog.ID).Order("created_at DESC").Limit(20).Find(&results)

	view := dogView(dog)
	view["recent_results"] = results
	return c.JSON(fiber.Map{"success": true, "dog": view})
}

// GetBreeds returns the breed standard catalog
func GetBreeds(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"breeds":  gameEngine.Catalog().Breeds,
	})
}

// handlers/certifications.go
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

// GetCertifications returns the certification catalog and prestige rank table
func GetCertifications(c *fiber.Ctx) error {
	catalog := gameEngine.Catalog()
	return c.JSON(fiber.Map{
		"success":        true,
		"certifications": catalog.Certifications,
		"prestige_ranks": catalog.PrestigeRanks,
	})
}

// GetDogEligibility reports, per certification, whether the dog qualifies
func GetDogEligibility(c *fiber.Ctx) error {
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

	var history []models.CompetitionResult
	db.Where("dog_id = ?", dog.ID).Find(&history)

	held := make(map[string]bool, len(dog.Certifications))
	for _, cert := range dog.Certifications {
		held[cert.CertificationType] = true
	}

	items := make([]fiber.Map, 0, len(gameEngine.Catalog().Certifications))
	for i := range gameEngine.Catalog().Certifications {
		cert := &gameEngine.Catalog().Certifications[i]
		items = append(items, fiber.Map{
			"certification": cert,
			"held":          held[cert.ID],
			"eligible":      !held[cert.ID] && engine.CheckCertificationEligibility(&dog, cert, history),
		})
	}

	return c.JSON(fiber.Map{"success": true, "eligibility": items})
}

// ClaimCertification awards an earned certification and pays its benefits
func ClaimCertification(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	dogID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid dog id"})
	}
	certID := c.Params("cert")

	cert, ok := gameEngine.Catalog().Certification(certID)
	if !ok {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Unknown certification"})
	}

	db := database.GetDB()

	var dog models.Dog
	if err := db.Preload("Certifications").
		Where("id = ? AND user_id = ?", dogID, userID).First(&dog).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Dog not found"})
	}

	for _, held := range dog.Certifications {
		if held.CertificationType == certID {
			return c.Status(400).JSON(fiber.Map{"success": false, "error": "Certification already held"})
		}
	}

	var history []models.CompetitionResult
	db.Where("dog_id = ?", dog.ID).Find(&history)

	if !engine.CheckCertificationEligibility(&dog, cert, history) {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Requirements not met"})
	}

	var awarded models.DogCertification
	err = db.Transaction(func(tx *gorm.DB) error {
		awarded = models.DogCertification{
			DogID:             dog.ID,
			CertificationType: cert.ID,
			DisplayName:       cert.Name,
			EarnedAt:          time.Now(),
		}
		if err := tx.Create(&awarded).Error; err != nil {
			return err
		}

		dog.PrestigePoints += cert.Benefits.PrestigePoints
		if err := tx.Model(&dog).Update("prestige_points", dog.PrestigePoints).Error; err != nil {
			return err
		}

		if cert.Benefits.CashReward > 0 || cert.Benefits.GemReward > 0 {
			return tx.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
				"cash": gorm.Expr("cash + ?", cert.Benefits.CashReward),
				"gems": gorm.Expr("gems + ?", cert.Benefits.GemReward),
			}).Error
		}
		return nil
	})
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to award certification"})
	}

	dog.Certifications = append(dog.Certifications, awarded)

	return c.JSON(fiber.Map{
		"success":       true,
		"certification": awarded,
		"benefits":      cert.Benefits,
		"titled_name":   gameEngine.FormatDogNameWithTitles(dog.Name, dog.Certifications),
		"prestige_rank": gameEngine.PrestigeRankFor(dog.PrestigePoints),
	})
}

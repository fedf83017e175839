// handlers/staff.go
package handlers

import (
	"time"

	"barkhaven/database"
	"barkhaven/engine"
	"barkhaven/middleware"
	"barkhaven/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HireStaffRequest struct {
	TemplateID string `json:"template_id"`
}

type AssignStaffRequest struct {
	DogID uint `json:"dog_id"`
}

// GetStaffTemplates returns the full hiring catalog plus the subset the
// player can afford right now.
func GetStaffTemplates(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	db := database.GetDB()

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "User not found"})
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"templates":  gameEngine.Catalog().StaffTemplates,
		"affordable": gameEngine.AffordableStaff(user.Cash, user.Level, user.KennelLevel),
	})
}

// GetStaff lists the player's hired staff and the daily wage bill
func GetStaff(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	db := database.GetDB()

	var staff []models.StaffMember
	if err := db.Preload("AssignedDogs").Where("user_id = ?", userID).
		Order("hired_at ASC").Find(&staff).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to load staff"})
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"staff":       staff,
		"daily_wages": engine.DailyWages(staff),
	})
}

// HireStaff hires a staff member from a template, deducting the hiring cost
func HireStaff(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	var req HireStaffRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	tpl, ok := gameEngine.Catalog().StaffTemplate(req.TemplateID)
	if !ok {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Unknown staff template"})
	}

	db := database.GetDB()

	var member models.StaffMember
	err = db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			return err
		}
		if user.Level < tpl.UnlockLevel {
			return fiber.NewError(400, "Player level too low")
		}
		if user.KennelLevel < tpl.KennelLevelRequired {
			return fiber.NewError(400, "Kennel level too low")
		}
		if user.Cash < tpl.HiringCost {
			return fiber.NewError(400, "Not enough cash")
		}

		user.Cash -= tpl.HiringCost
		if err := tx.Model(&user).Update("cash", user.Cash).Error; err != nil {
			return err
		}

		member = models.StaffMember{
			UserID:      userID,
			StaffID:     uuid.New().String(),
			TemplateID:  tpl.ID,
			Name:        gameEngine.GenerateStaffName(),
			Role:        tpl.Role,
			Quality:     tpl.Quality,
			Level:       1,
			Efficiency:  tpl.Efficiency,
			Reliability: tpl.Reliability,
			DailyWage:   tpl.DailyWage,
			MaxDogs:     tpl.MaxDogs,
			HiredAt:     time.Now(),
		}
		return tx.Create(&member).Error
	})
	if err != nil {
		if fiberErr, ok := err.(*fiber.Error); ok {
			return c.Status(fiberErr.Code).JSON(fiber.Map{"success": false, "error": fiberErr.Message})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to hire staff"})
	}

	return c.JSON(fiber.Map{"success": true, "staff": member})
}

// FireStaff dismisses a staff member. No severance.
func FireStaff(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	staffID := c.Params("id")

	db := database.GetDB()

	var member models.StaffMember
	if err := db.Where("staff_id = ? AND user_id = ?", staffID, userID).First(&member).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Staff member not found"})
	}

	if err := db.Model(&member).Association("AssignedDogs").Clear(); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to clear assignments"})
	}
	if err := db.Delete(&member).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fire staff"})
	}

	return c.JSON(fiber.Map{"success": true})
}

// AssignStaff assigns a staff member to a dog, bounded by the template's
// MaxDogs capacity.
func AssignStaff(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	staffID := c.Params("id")

	var req AssignStaffRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	db := database.GetDB()

	var member models.StaffMember
	if err := db.Preload("AssignedDogs").
		Where("staff_id = ? AND user_id = ?", staffID, userID).First(&member).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Staff member not found"})
	}

	var dog models.Dog
	if err := db.Where("id = ? AND user_id = ?", req.DogID, userID).First(&dog).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Dog not found"})
	}

	for _, assigned := range member.AssignedDogs {
		if assigned.ID == dog.ID {
			return c.Status(400).JSON(fiber.Map{"success": false, "error": "Already assigned to this dog"})
		}
	}
	if len(member.AssignedDogs) >= member.MaxDogs {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Staff member is at capacity"})
	}

	if err := db.Model(&member).Association("AssignedDogs").Append(&dog); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to assign staff"})
	}

	return c.JSON(fiber.Map{"success": true, "assigned": len(member.AssignedDogs) + 1, "max_dogs": member.MaxDogs})
}

// UnassignStaff removes a staff/dog assignment
func UnassignStaff(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	staffID := c.Params("id")
	dogID, err := c.ParamsInt("dog")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid dog id"})
	}

	db := database.GetDB()

	var member models.StaffMember
	if err := db.Where("staff_id = ? AND user_id = ?", staffID, userID).First(&member).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Staff member not found"})
	}

	var dog models.Dog
	if err := db.Where("id = ? AND user_id = ?", dogID, userID).First(&dog).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Dog not found"})
	}

	if err := db.Model(&member).Association("AssignedDogs").Delete(&dog); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to unassign staff"})
	}

	return c.JSON(fiber.Map{"success": true})
}

// PayWages deducts the daily wage bill on demand. The scheduler normally
// runs this automatically; the endpoint exists for catch-up after downtime.
func PayWages(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	db := database.GetDB()

	var staff []models.StaffMember
	if err := db.Where("user_id = ?", userID).Find(&staff).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to load staff"})
	}

	wages := engine.DailyWages(staff)
	if wages == 0 {
		return c.JSON(fiber.Map{"success": true, "wages_paid": 0})
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.User{}).Where("id = ?", userID).
			Update("cash", gorm.Expr("cash - ?", wages)).Error; err != nil {
			return err
		}
		return tx.Model(&models.StaffMember{}).Where("user_id = ?", userID).
			Updates(map[string]interface{}{
				"days_worked": gorm.Expr("days_worked + 1"),
			}).Error
	})
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to pay wages"})
	}

	return c.JSON(fiber.Map{"success": true, "wages_paid": wages})
}

// services/scheduler.go
package services

import (
	"log"
	"time"

	"barkhaven/database"
	"barkhaven/engine"
	"barkhaven/models"

	"github.com/go-co-op/gocron/v2"
	"gorm.io/gorm"
)

// SchedulerService runs the recurring background jobs: weather refresh and
// the daily payroll.
type SchedulerService struct {
	engine *engine.Engine
	sched  gocron.Scheduler
}

var schedulerService *SchedulerService

// InitSchedulerService wires the scheduler singleton.
func InitSchedulerService(e *engine.Engine) {
	schedulerService = &SchedulerService{engine: e}
}

// GetSchedulerService returns the initialized scheduler service.
func GetSchedulerService() *SchedulerService {
	return schedulerService
}

// Start registers and starts the background jobs.
func (s *SchedulerService) Start() {
	sched, err := gocron.NewScheduler()
	if err != nil {
		log.Printf("[Scheduler] init failed: %v", err)
		return
	}
	s.sched = sched
	sched.Start()

	// Every 30 minutes: refresh stale weather rows so players who are
	// offline still come back to a current forecast.
	_, _ = sched.NewJob(
		gocron.DurationJob(30*time.Minute),
		gocron.NewTask(s.RefreshWeather),
	)

	// Daily at midnight: payroll.
	_, _ = sched.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(0, 0, 0))),
		gocron.NewTask(s.RunPayroll),
	)

	log.Println("✅ Background scheduler started (weather refresh, daily payroll)")
}

// Stop shuts the scheduler down.
func (s *SchedulerService) Stop() {
	if s.sched != nil {
		_ = s.sched.Shutdown()
	}
}

// RefreshWeather re-rolls every weather row whose season flipped or whose
// refresh interval elapsed.
func (s *SchedulerService) RefreshWeather() {
	db := database.GetDB()
	if db == nil {
		return
	}

	var rows []models.GameWeather
	if err := db.Find(&rows).Error; err != nil {
		log.Printf("[Scheduler] weather query failed: %v", err)
		return
	}

	refreshed := 0
	for _, w := range rows {
		updated, changed, err := s.engine.UpdateWeather(w)
		if err != nil {
			log.Printf("[Scheduler] weather update failed for user %d: %v", w.UserID, err)
			continue
		}
		if !changed {
			continue
		}
		if err := db.Save(&updated).Error; err != nil {
			log.Printf("[Scheduler] weather save failed for user %d: %v", w.UserID, err)
			continue
		}
		refreshed++
	}
	if refreshed > 0 {
		log.Printf("[Scheduler] refreshed weather for %d players", refreshed)
	}
}

// RunPayroll deducts each employer's daily wage bill and bumps DaysWorked.
// Players who can't cover the bill go negative; firing is the player's call.
func (s *SchedulerService) RunPayroll() {
	db := database.GetDB()
	if db == nil {
		return
	}

	var employerIDs []uint
	if err := db.Model(&models.StaffMember{}).Distinct("user_id").
		Pluck("user_id", &employerIDs).Error; err != nil {
		log.Printf("[Scheduler] payroll query failed: %v", err)
		return
	}

	for _, userID := range employerIDs {
		var staff []models.StaffMember
		if err := db.Where("user_id = ?", userID).Find(&staff).Error; err != nil {
			log.Printf("[Scheduler] payroll load failed for user %d: %v", userID, err)
			continue
		}
		wages := engine.DailyWages(staff)
		if wages == 0 {
			continue
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&models.User{}).Where("id = ?", userID).
				Update("cash", gorm.Expr("cash - ?", wages)).Error; err != nil {
				return err
			}
			return tx.Model(&models.StaffMember{}).Where("user_id = ?", userID).
				Update("days_worked", gorm.Expr("days_worked + 1")).Error
		})
		if err != nil {
			log.Printf("[Scheduler] payroll failed for user %d: %v", userID, err)
		}
	}
	log.Printf("[Scheduler] payroll complete for %d employers", len(employerIDs))
}

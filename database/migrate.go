// database/migrate.go - Database Migration Runner
package database

import (
	"log"

	"barkhaven/models"

	"gorm.io/gorm"
)

// RunMigrations runs all database migrations
func RunMigrations() {
	db := GetDB()
	log.Println("🔄 Running database migrations...")

	if err := Migrate(db); err != nil {
		log.Fatalf("❌ Failed to run migrations: %v", err)
	}

	createCoreIndexes()

	log.Println("✅ All migrations completed successfully")
}

// Migrate applies the schema to the given database. Split out so tests can
// migrate an in-memory instance.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Dog{},
		&models.DogCertification{},
		&models.CompetitionResult{},
		&models.UserAchievement{},
		&models.StaffMember{},
		&models.GameWeather{},
	)
}

// createCoreIndexes creates indexes for core tables
func createCoreIndexes() {
	db := GetDB()
	log.Println("Creating core indexes...")

	// User indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_users_username ON users(username)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_users_level ON users(level DESC)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_users_guest ON users(is_guest)")

	// Dog indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_dogs_user ON dogs(user_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_dogs_prestige ON dogs(prestige_points DESC)")

	// Competition indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_results_dog ON competition_results(dog_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_results_type ON competition_results(type)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_results_created ON competition_results(created_at DESC)")

	// Achievement indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_user_achievements_user ON user_achievements(user_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_user_achievements_achievement ON user_achievements(achievement_id)")

	// Staff indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_staff_user ON staff_members(user_id)")

	log.Println("✅ Core indexes created successfully")
}

// main.go
package main

import (
	"log"
	"os"
	"time"

	"barkhaven/database"
	"barkhaven/engine"
	"barkhaven/gamedata"
	"barkhaven/handlers"
	"barkhaven/handlers/admin"
	"barkhaven/middleware"
	"barkhaven/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	// Validate critical environment variables
	validateEnvironment()

	// Build and validate the static game catalog
	catalog := gamedata.Default()
	if err := catalog.Validate(); err != nil {
		log.Fatalf("FATAL: game catalog invalid: %v", err)
	}
	log.Printf("📚 Catalog loaded: %d achievements, %d certifications, %d breeds, %d staff templates",
		len(catalog.Achievements), len(catalog.Certifications), len(catalog.Breeds), len(catalog.StaffTemplates))

	gameEngine := engine.New(catalog)
	handlers.SetEngine(gameEngine)

	// Initialize database
	database.InitDB()

	// Initialize background scheduler
	services.InitSchedulerService(gameEngine)
	services.GetSchedulerService().Start()
	defer services.GetSchedulerService().Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
		BodyLimit:    4 * 1024 * 1024, // 4MB
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
	}))

	// CORS configuration
	corsOrigins := os.Getenv("CORS_ORIGINS")
	if corsOrigins == "" {
		corsOrigins = "http://localhost:3000"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}))

	// Apply rate limiting to all routes
	app.Use(middleware.FiberRateLimitMiddleware())

	// API Routes
	api := app.Group("/api")

	// Auth routes with stricter rate limiting
	authGroup := api.Group("/auth")
	authGroup.Use(middleware.FiberAuthRateLimitMiddleware())
	authGroup.Post("/guest", handlers.GuestLogin)
	authGroup.Post("/login", handlers.Login)
	authGroup.Post("/register", handlers.Register)
	authGroup.Post("/upgrade", middleware.AuthMiddleware, handlers.UpgradeGuest)

	// Static catalog routes (no auth; the tables are public)
	api.Get("/breeds", handlers.GetBreeds)
	api.Get("/tournaments", handlers.GetTournamentSchedule)
	api.Get("/tournaments/upcoming", handlers.GetUpcomingTournaments)
	api.Get("/weather/tables", handlers.GetForecastTables)

	// User routes
	userGroup := api.Group("/users")
	userGroup.Use(middleware.AuthMiddleware)
	userGroup.Get("/me", handlers.GetProfile)

	// Dog routes
	dogGroup := api.Group("/dogs")
	dogGroup.Use(middleware.AuthMiddleware)
	dogGroup.Post("/", handlers.CreateDog)
	dogGroup.Get("/", handlers.GetDogs)
	dogGroup.Get("/:id", handlers.GetDog)
	dogGroup.Get("/:id/eligibility", handlers.GetDogEligibility)
	dogGroup.Post("/:id/certifications/:cert", handlers.ClaimCertification)

	// Certification catalog
	api.Get("/certifications", handlers.GetCertifications)

	// Achievement routes
	achievementGroup := api.Group("/achievements")
	achievementGroup.Use(middleware.AuthMiddleware)
	achievementGroup.Get("/", handlers.GetAchievements)
	achievementGroup.Post("/progress", handlers.ReportAchievementProgress)
	achievementGroup.Post("/:id/claim", handlers.ClaimAchievementReward)

	// Competition routes
	competitionGroup := api.Group("/competitions")
	competitionGroup.Use(middleware.AuthMiddleware)
	competitionGroup.Post("/record", handlers.RecordCompetition)
	competitionGroup.Post("/conformation", handlers.EnterConformationShow)
	competitionGroup.Get("/history", handlers.GetCompetitionHistory)

	// Weather routes
	weatherGroup := api.Group("/weather")
	weatherGroup.Use(middleware.AuthMiddleware)
	weatherGroup.Get("/", handlers.GetWeather)

	// Staff routes
	staffGroup := api.Group("/staff")
	staffGroup.Use(middleware.AuthMiddleware)
	staffGroup.Get("/templates", handlers.GetStaffTemplates)
	staffGroup.Get("/", handlers.GetStaff)
	staffGroup.Post("/hire", handlers.HireStaff)
	staffGroup.Delete("/:id", handlers.FireStaff)
	staffGroup.Post("/:id/assign", handlers.AssignStaff)
	staffGroup.Delete("/:id/assign/:dog", handlers.UnassignStaff)
	staffGroup.Post("/payroll", handlers.PayWages)

	// Leaderboard routes
	api.Get("/leaderboard", handlers.GetLeaderboard)

	// Admin routes
	adminGroup := api.Group("/admin")
	adminGroup.Post("/login", admin.Login)
	adminGroup.Post("/logout", admin.Logout)

	adminProtected := adminGroup.Group("")
	adminProtected.Use(middleware.AdminAuthMiddleware)
	adminProtected.Get("/verify", admin.VerifyToken)
	adminProtected.Get("/users", admin.GetUsers)
	adminProtected.Get("/users/:id", admin.GetUser)
	adminProtected.Put("/users/:id", admin.UpdateUser)
	adminProtected.Delete("/users/:id", admin.DeleteUser)
	adminProtected.Post("/users/:id/ban", admin.BanUser)
	adminProtected.Post("/users/:id/reset-password", admin.ResetUserPassword)

	// Live weather feed
	app.Get("/ws/weather", handlers.WebSocketUpgrade, handlers.WeatherSocket())

	// Health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
			"version":   "1.0.0",
		})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	log.Printf("🚀 HTTP server starting on port %s", port)
	log.Printf("📊 Environment: %s", getEnv("APP_ENV", "development"))
	log.Printf("🔐 JWT Secret configured: %v", os.Getenv("JWT_SECRET") != "")
	log.Printf("🌦️  Live weather feed available at ws://localhost:%s/ws/weather", port)

	if err := app.Listen(":" + port); err != nil {
		log.Fatal("Failed to start HTTP server:", err)
	}
}

// validateEnvironment checks for required environment variables
func validateEnvironment() {
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("FATAL: JWT_SECRET environment variable must be set. Generate one with: openssl rand -base64 64")
	}
	if len(jwtSecret) < 32 {
		log.Fatal("FATAL: JWT_SECRET must be at least 32 characters long")
	}

	appEnv := os.Getenv("APP_ENV")
	if appEnv == "production" {
		corsOrigins := os.Getenv("CORS_ORIGINS")
		if corsOrigins == "" || corsOrigins == "http://localhost:3000" {
			log.Println("WARNING: CORS_ORIGINS not properly configured for production")
		}
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Don't expose internal errors in production
	if os.Getenv("APP_ENV") == "production" && code == 500 {
		message = "An error occurred. Please try again later."
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

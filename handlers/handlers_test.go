package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"barkhaven/database"
	"barkhaven/engine"
	"barkhaven/gamedata"
	"barkhaven/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTest wires an in-memory database and a seeded engine, returning the
// database for direct fixture inserts.
func setupTest(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	database.SetDB(db)
	SetEngine(engine.New(gamedata.Default(), engine.WithSeed(42)))
	return db
}

// testApp builds a Fiber app whose routes run as the given user, skipping
// the JWT middleware.
func testApp(userID uint) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("userId", float64(userID))
		return c.Next()
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	payload := map[string]interface{}{}
	raw, _ := io.ReadAll(resp.Body)
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &payload); err != nil {
			t.Fatalf("%s %s: bad json %q: %v", method, path, raw, err)
		}
	}
	return resp.StatusCode, payload
}

func createTestUser(t *testing.T, db *gorm.DB) models.User {
	t.Helper()
	user := models.User{
		Username:    fmt.Sprintf("tester_%d", time.Now().UnixNano()),
		Password:    "x",
		Level:       5,
		Cash:        2000,
		KennelLevel: 2,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func createTestDog(t *testing.T, db *gorm.DB, userID uint) models.Dog {
	t.Helper()
	dog := models.Dog{
		UserID:         userID,
		Name:           "Rex",
		Breed:          "border_collie",
		Specialization: "show_dog",
		Level:          3,
		Size:           20,
		Strength:       25,
		Agility:        30,
		Intelligence:   32,
		Friendliness:   28,
	}
	if err := db.Create(&dog).Error; err != nil {
		t.Fatalf("create dog: %v", err)
	}
	return dog
}

func TestCreateAndListDogs(t *testing.T) {
	db := setupTest(t)
	user := createTestUser(t, db)

	app := testApp(user.ID)
	app.Post("/dogs", CreateDog)
	app.Get("/dogs", GetDogs)

	status, payload := doJSON(t, app, "POST", "/dogs", CreateDogRequest{
		Name:  "Luna",
		Breed: "siberian_husky",
		Size:  21,
	})
	if status != 200 || payload["success"] != true {
		t.Fatalf("create dog failed: %d %v", status, payload)
	}

	status, payload = doJSON(t, app, "POST", "/dogs", CreateDogRequest{
		Name:  "Ghost",
		Breed: "direwolf",
	})
	if status != 400 {
		t.Fatalf("expected 400 for unknown breed, got %d %v", status, payload)
	}

	status, payload = doJSON(t, app, "GET", "/dogs", nil)
	if status != 200 {
		t.Fatalf("list dogs failed: %d", status)
	}
	if count, _ := payload["count"].(float64); count != 1 {
		t.Errorf("expected 1 dog, got %v", payload["count"])
	}
}

func TestConformationShowRecordsResult(t *testing.T) {
	db := setupTest(t)
	user := createTestUser(t, db)
	dog := createTestDog(t, db, user.ID)

	app := testApp(user.ID)
	app.Post("/competitions/conformation", EnterConformationShow)

	status, payload := doJSON(t, app, "POST", "/competitions/conformation", EnterShowRequest{
		DogID:       dog.ID,
		Performance: 85,
	})
	if status != 200 || payload["success"] != true {
		t.Fatalf("show entry failed: %d %v", status, payload)
	}

	score, ok := payload["score"].(map[string]interface{})
	if !ok {
		t.Fatalf("missing score in %v", payload)
	}
	total, _ := score["total_score"].(float64)
	if total <= 0 || total > 100 {
		t.Errorf("total score out of range: %v", total)
	}

	var results []models.CompetitionResult
	db.Where("dog_id = ?", dog.ID).Find(&results)
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Type != "conformation" {
		t.Errorf("wrong result type %q", results[0].Type)
	}
	if results[0].Season == "" || results[0].Weather == "" {
		t.Errorf("result missing season/weather stamp: %+v", results[0])
	}

	var updated models.Dog
	db.First(&updated, dog.ID)
	if updated.XP <= 0 {
		t.Errorf("dog earned no XP")
	}
}

func TestRecordCompetitionMovesProgression(t *testing.T) {
	db := setupTest(t)
	user := createTestUser(t, db)
	dog := createTestDog(t, db, user.ID)

	app := testApp(user.ID)
	app.Post("/competitions/record", RecordCompetition)

	status, payload := doJSON(t, app, "POST", "/competitions/record", RecordCompetitionRequest{
		DogID:     dog.ID,
		Type:      "agility",
		Score:     92,
		Placement: 1,
	})
	if status != 200 || payload["success"] != true {
		t.Fatalf("record failed: %d %v", status, payload)
	}

	var updated models.User
	db.First(&updated, user.ID)
	if updated.Wins != 1 || updated.TotalCompetitions != 1 {
		t.Errorf("stats not updated: wins=%d total=%d", updated.Wins, updated.TotalCompetitions)
	}
	if updated.CurrentStreak != 1 {
		t.Errorf("streak not started: %d", updated.CurrentStreak)
	}
	if updated.XP <= user.XP {
		t.Errorf("no XP awarded")
	}

	// A first place win should unlock the first_win achievement.
	var ua models.UserAchievement
	if err := db.Where("user_id = ? AND achievement_id = ?", user.ID, "first_win").
		First(&ua).Error; err != nil {
		t.Fatalf("first_win not unlocked: %v", err)
	}

	// A loss resets the streak.
	status, _ = doJSON(t, app, "POST", "/competitions/record", RecordCompetitionRequest{
		DogID:     dog.ID,
		Type:      "racing",
		Score:     40,
		Placement: 5,
	})
	if status != 200 {
		t.Fatalf("second record failed: %d", status)
	}
	db.First(&updated, user.ID)
	if updated.CurrentStreak != 0 {
		t.Errorf("streak not reset after loss: %d", updated.CurrentStreak)
	}
	if updated.BestStreak != 1 {
		t.Errorf("best streak lost: %d", updated.BestStreak)
	}
}

func TestRecordCompetitionRejectsBadInput(t *testing.T) {
	db := setupTest(t)
	user := createTestUser(t, db)
	dog := createTestDog(t, db, user.ID)

	app := testApp(user.ID)
	app.Post("/competitions/record", RecordCompetition)

	status, _ := doJSON(t, app, "POST", "/competitions/record", RecordCompetitionRequest{
		DogID: dog.ID, Type: "frisbee", Score: 50, Placement: 1,
	})
	if status != 400 {
		t.Errorf("expected 400 for unknown type, got %d", status)
	}

	status, _ = doJSON(t, app, "POST", "/competitions/record", RecordCompetitionRequest{
		DogID: dog.ID, Type: "agility", Score: 150, Placement: 1,
	})
	if status != 400 {
		t.Errorf("expected 400 for out-of-range score, got %d", status)
	}

	status, _ = doJSON(t, app, "POST", "/competitions/record", RecordCompetitionRequest{
		DogID: dog.ID + 99, Type: "agility", Score: 50, Placement: 1,
	})
	if status != 404 {
		t.Errorf("expected 404 for foreign dog, got %d", status)
	}
}

func TestGetWeatherInitializesAndPersists(t *testing.T) {
	db := setupTest(t)
	user := createTestUser(t, db)

	app := testApp(user.ID)
	app.Get("/weather", GetWeather)

	status, payload := doJSON(t, app, "GET", "/weather", nil)
	if status != 200 || payload["success"] != true {
		t.Fatalf("get weather failed: %d %v", status, payload)
	}

	var rows []models.GameWeather
	db.Where("user_id = ?", user.ID).Find(&rows)
	if len(rows) != 1 {
		t.Fatalf("expected 1 weather row, got %d", len(rows))
	}

	if _, ok := payload["training_modifier"].(float64); !ok {
		t.Errorf("missing training_modifier in %v", payload)
	}

	// Second call within the refresh window must not re-roll.
	first := rows[0]
	status, _ = doJSON(t, app, "GET", "/weather", nil)
	if status != 200 {
		t.Fatalf("second get failed: %d", status)
	}
	var second models.GameWeather
	db.Where("user_id = ?", user.ID).First(&second)
	if second.CurrentWeather != first.CurrentWeather || !second.LastWeatherChange.Equal(first.LastWeatherChange) {
		t.Errorf("weather re-rolled inside refresh window: %+v vs %+v", first, second)
	}
}

func TestHireStaffFlow(t *testing.T) {
	db := setupTest(t)
	user := createTestUser(t, db)

	app := testApp(user.ID)
	app.Post("/staff/hire", HireStaff)
	app.Get("/staff", GetStaff)

	status, payload := doJSON(t, app, "POST", "/staff/hire", HireStaffRequest{
		TemplateID: "junior_caretaker",
	})
	if status != 200 || payload["success"] != true {
		t.Fatalf("hire failed: %d %v", status, payload)
	}

	var updated models.User
	db.First(&updated, user.ID)
	if updated.Cash != user.Cash-500 {
		t.Errorf("hiring cost not deducted: %d", updated.Cash)
	}

	staff, ok := payload["staff"].(map[string]interface{})
	if !ok {
		t.Fatalf("missing staff in %v", payload)
	}
	if staff["name"] == "" {
		t.Errorf("hired staff has no generated name")
	}

	// Out-of-reach template.
	status, _ = doJSON(t, app, "POST", "/staff/hire", HireStaffRequest{
		TemplateID: "pro_groomer",
	})
	if status != 400 {
		t.Errorf("expected 400 hiring above level, got %d", status)
	}

	status, payload = doJSON(t, app, "GET", "/staff", nil)
	if status != 200 {
		t.Fatalf("list staff failed: %d", status)
	}
	if wages, _ := payload["daily_wages"].(float64); wages != 25 {
		t.Errorf("expected daily wages 25, got %v", payload["daily_wages"])
	}
}

func TestAssignStaffRespectsCapacity(t *testing.T) {
	db := setupTest(t)
	user := createTestUser(t, db)
	dog1 := createTestDog(t, db, user.ID)
	dog2 := models.Dog{UserID: user.ID, Name: "Bella", Breed: "golden_retriever", Size: 22}
	dog3 := models.Dog{UserID: user.ID, Name: "Max", Breed: "jack_russell", Size: 12}
	if err := db.Create(&dog2).Error; err != nil {
		t.Fatalf("create second dog: %v", err)
	}
	if err := db.Create(&dog3).Error; err != nil {
		t.Fatalf("create third dog: %v", err)
	}

	app := testApp(user.ID)
	app.Post("/staff/hire", HireStaff)
	app.Post("/staff/:id/assign", AssignStaff)

	_, payload := doJSON(t, app, "POST", "/staff/hire", HireStaffRequest{
		TemplateID: "apprentice_trainer",
	})
	staff := payload["staff"].(map[string]interface{})
	staffID := staff["staff_id"].(string)
	maxDogs := int(staff["max_dogs"].(float64))
	if maxDogs != 2 {
		t.Fatalf("expected apprentice trainer capacity 2, got %d", maxDogs)
	}

	for _, dogID := range []uint{dog1.ID, dog2.ID} {
		status, _ := doJSON(t, app, "POST", "/staff/"+staffID+"/assign", AssignStaffRequest{DogID: dogID})
		if status != 200 {
			t.Fatalf("assign dog %d failed: %d", dogID, status)
		}
	}
	status, _ := doJSON(t, app, "POST", "/staff/"+staffID+"/assign", AssignStaffRequest{DogID: dog3.ID})
	if status != 400 {
		t.Errorf("expected 400 assigning past capacity, got %d", status)
	}
}

func TestCertificationClaimFlow(t *testing.T) {
	db := setupTest(t)
	user := createTestUser(t, db)

	dog := models.Dog{
		UserID:         user.ID,
		Name:           "Atlas",
		Breed:          "german_shepherd",
		Specialization: "working_dog",
		Level:          12,
		BondLevel:      5,
		Size:           24,
		Strength:       25,
		Intelligence:   20,
	}
	if err := db.Create(&dog).Error; err != nil {
		t.Fatalf("create dog: %v", err)
	}

	app := testApp(user.ID)
	app.Get("/dogs/:id/eligibility", GetDogEligibility)
	app.Post("/dogs/:id/certifications/:cert", ClaimCertification)

	status, payload := doJSON(t, app, "GET", fmt.Sprintf("/dogs/%d/eligibility", dog.ID), nil)
	if status != 200 {
		t.Fatalf("eligibility failed: %d", status)
	}
	items, _ := payload["eligibility"].([]interface{})
	foundEligible := false
	for _, it := range items {
		m := it.(map[string]interface{})
		cert := m["certification"].(map[string]interface{})
		if cert["id"] == "working_dog_cert" && m["eligible"] == true {
			foundEligible = true
		}
	}
	if !foundEligible {
		t.Fatalf("expected working_dog_cert to be eligible")
	}

	status, payload = doJSON(t, app, "POST",
		fmt.Sprintf("/dogs/%d/certifications/working_dog_cert", dog.ID), nil)
	if status != 200 || payload["success"] != true {
		t.Fatalf("claim failed: %d %v", status, payload)
	}

	// Second claim of the same title is rejected.
	status, _ = doJSON(t, app, "POST",
		fmt.Sprintf("/dogs/%d/certifications/working_dog_cert", dog.ID), nil)
	if status != 400 {
		t.Errorf("expected 400 on duplicate claim, got %d", status)
	}

	// Unearned title is rejected.
	status, _ = doJSON(t, app, "POST",
		fmt.Sprintf("/dogs/%d/certifications/grand_champion", dog.ID), nil)
	if status != 400 {
		t.Errorf("expected 400 on unearned claim, got %d", status)
	}

	var updated models.Dog
	db.Preload("Certifications").First(&updated, dog.ID)
	if len(updated.Certifications) != 1 {
		t.Fatalf("expected 1 certification, got %d", len(updated.Certifications))
	}
	if updated.PrestigePoints <= 0 {
		t.Errorf("prestige points not granted")
	}
}

func TestAchievementProgressAndClaim(t *testing.T) {
	db := setupTest(t)
	user := createTestUser(t, db)

	app := testApp(user.ID)
	app.Post("/achievements/progress", ReportAchievementProgress)
	app.Post("/achievements/:id/claim", ClaimAchievementReward)
	app.Get("/achievements", GetAchievements)

	// Partial progress does not unlock.
	status, payload := doJSON(t, app, "POST", "/achievements/progress", ReportProgressRequest{
		AchievementID: "dog_collector_5", Value: 3,
	})
	if status != 200 || payload["unlocked"] != false {
		t.Fatalf("unexpected unlock at 3/5: %d %v", status, payload)
	}

	// Crossing the threshold unlocks.
	status, payload = doJSON(t, app, "POST", "/achievements/progress", ReportProgressRequest{
		AchievementID: "dog_collector_5", Value: 5,
	})
	if status != 200 || payload["unlocked"] != true {
		t.Fatalf("expected unlock at 5/5: %d %v", status, payload)
	}

	// Unknown id is a 404.
	status, _ = doJSON(t, app, "POST", "/achievements/progress", ReportProgressRequest{
		AchievementID: "no_such_achievement", Value: 1,
	})
	if status != 404 {
		t.Errorf("expected 404 for unknown achievement, got %d", status)
	}

	// Claim pays out once.
	status, payload = doJSON(t, app, "POST", "/achievements/dog_collector_5/claim", nil)
	if status != 200 || payload["success"] != true {
		t.Fatalf("claim failed: %d %v", status, payload)
	}
	var updated models.User
	db.First(&updated, user.ID)
	if updated.Cash != user.Cash+500 {
		t.Errorf("reward cash not paid: %d", updated.Cash)
	}
	status, _ = doJSON(t, app, "POST", "/achievements/dog_collector_5/claim", nil)
	if status != 400 {
		t.Errorf("expected 400 on double claim, got %d", status)
	}

	// Listing shows the unlock and nonzero completion.
	status, payload = doJSON(t, app, "GET", "/achievements", nil)
	if status != 200 {
		t.Fatalf("list failed: %d", status)
	}
	if pct, _ := payload["completion_percent"].(float64); pct <= 0 {
		t.Errorf("expected completion > 0, got %v", payload["completion_percent"])
	}
}

func TestLeaderboardOrdering(t *testing.T) {
	db := setupTest(t)

	var userIDs []uint
	for i, xp := range []int{100, 5000, 2500} {
		u := models.User{
			Username: fmt.Sprintf("player_%d", i),
			Password: "x",
			XP:       xp,
			Level:    engine.LevelFromXP(xp),
			Wins:     i,
		}
		if err := db.Create(&u).Error; err != nil {
			t.Fatalf("create user: %v", err)
		}
		userIDs = append(userIDs, u.ID)
	}

	app := fiber.New()
	app.Get("/leaderboard", GetLeaderboard)

	req := httptest.NewRequest(http.MethodGet, "/leaderboard?category=xp", nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("leaderboard request: %v", err)
	}
	defer resp.Body.Close()

	var payload struct {
		Success     bool               `json:"success"`
		Leaderboard []LeaderboardEntry `json:"leaderboard"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !payload.Success || len(payload.Leaderboard) != 3 {
		t.Fatalf("unexpected payload: %+v", payload)
	}
	for i := 1; i < len(payload.Leaderboard); i++ {
		if payload.Leaderboard[i].XP > payload.Leaderboard[i-1].XP {
			t.Errorf("leaderboard not sorted by xp: %+v", payload.Leaderboard)
		}
	}

	// Prestige is summed over the kennel: player_0 holds the bigger kennel
	// despite the lowest XP.
	for _, d := range []models.Dog{
		{UserID: userIDs[0], Name: "Star", Breed: "border_collie", PrestigePoints: 90},
		{UserID: userIDs[0], Name: "Nova", Breed: "border_collie", PrestigePoints: 30},
		{UserID: userIDs[2], Name: "Ace", Breed: "jack_russell", PrestigePoints: 40},
	} {
		dog := d
		if err := db.Create(&dog).Error; err != nil {
			t.Fatalf("create dog: %v", err)
		}
	}

	req = httptest.NewRequest(http.MethodGet, "/leaderboard?category=prestige", nil)
	resp, err = app.Test(req, -1)
	if err != nil {
		t.Fatalf("leaderboard request: %v", err)
	}
	var prestige struct {
		Success     bool               `json:"success"`
		Leaderboard []LeaderboardEntry `json:"leaderboard"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&prestige); err != nil {
		t.Fatalf("decode: %v", err)
	}
	resp.Body.Close()
	if !prestige.Success || len(prestige.Leaderboard) != 3 {
		t.Fatalf("unexpected prestige payload: %+v", prestige)
	}
	if prestige.Leaderboard[0].Username != "player_0" || prestige.Leaderboard[0].Prestige != 120 {
		t.Errorf("expected player_0 on top with 120 prestige, got %+v", prestige.Leaderboard[0])
	}

	req = httptest.NewRequest(http.MethodGet, "/leaderboard?category=bogus", nil)
	resp, err = app.Test(req, -1)
	if err != nil {
		t.Fatalf("leaderboard request: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != 400 {
		t.Errorf("expected 400 for unknown category, got %d", resp.StatusCode)
	}
}

package engine

import (
	"errors"
	"testing"
	"time"

	"barkhaven/models"
)

func unlockedSet(ids ...string) []models.UserAchievement {
	out := make([]models.UserAchievement, 0, len(ids))
	for _, id := range ids {
		out = append(out, models.UserAchievement{
			AchievementID: id,
			UnlockedAt:    time.Now(),
		})
	}
	return out
}

func TestCheckAchievementProgressUnlocksAtTarget(t *testing.T) {
	e := testEngine(1)

	// dog_collector_5: target 5, no prerequisites.
	res, err := e.CheckAchievementProgress("dog_collector_5", 5, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Unlocked {
		t.Fatal("expected unlock at target value")
	}
	if res.Progress != 5 {
		t.Fatalf("progress = %d, want 5", res.Progress)
	}
}

func TestCheckAchievementProgressGatedByPrerequisites(t *testing.T) {
	e := testEngine(1)

	// dog_collector_10 requires dog_collector_5; value past target still
	// reports zero progress until the prerequisite is unlocked.
	res, err := e.CheckAchievementProgress("dog_collector_10", 10, nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.Unlocked {
		t.Fatal("should not unlock with unmet prerequisites")
	}
	if res.Progress != 0 {
		t.Fatalf("progress = %d, want 0 before prerequisites", res.Progress)
	}

	res, err = e.CheckAchievementProgress("dog_collector_10", 10, unlockedSet("dog_collector_5"))
	if err != nil {
		t.Fatal(err)
	}
	if !res.Unlocked || res.Progress != 10 {
		t.Fatalf("expected unlock with prerequisite met, got %+v", res)
	}
}

func TestCheckAchievementProgressClampsToTarget(t *testing.T) {
	e := testEngine(1)

	res, err := e.CheckAchievementProgress("dog_collector_5", 8, nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.Progress != 5 {
		t.Fatalf("progress should clamp to target, got %d", res.Progress)
	}
}

func TestCheckAchievementProgressAlreadyComplete(t *testing.T) {
	e := testEngine(1)

	res, err := e.CheckAchievementProgress("first_dog", 1, unlockedSet("first_dog"))
	if err != nil {
		t.Fatal(err)
	}
	if !res.AlreadyComplete {
		t.Fatal("non-repeatable unlocked achievement should report complete")
	}

	// Repeatable achievements go through the normal evaluation again.
	res, err = e.CheckAchievementProgress("seasonal_regular", 4, unlockedSet("seasonal_regular"))
	if err != nil {
		t.Fatal(err)
	}
	if res.AlreadyComplete {
		t.Fatal("repeatable achievement should not short-circuit")
	}
	if !res.Unlocked {
		t.Fatal("repeatable achievement should unlock again at target")
	}
}

func TestCheckAchievementProgressUnknownID(t *testing.T) {
	e := testEngine(1)
	if _, err := e.CheckAchievementProgress("no_such_achievement", 1, nil); !errors.Is(err, ErrUnknownAchievement) {
		t.Fatalf("expected ErrUnknownAchievement, got %v", err)
	}
	if _, _, err := e.AchievementProgress("no_such_achievement", nil); !errors.Is(err, ErrUnknownAchievement) {
		t.Fatalf("expected ErrUnknownAchievement, got %v", err)
	}
}

func TestAvailableAchievementsHidesLockedHidden(t *testing.T) {
	e := testEngine(1)

	for _, a := range e.AvailableAchievements(nil) {
		if a.ID == "winter_champion" {
			t.Fatal("hidden achievement visible before unlock")
		}
		if len(a.Requires) > 0 {
			t.Fatalf("achievement %q with unmet prerequisites listed as available", a.ID)
		}
	}

	found := false
	for _, a := range e.AvailableAchievements(unlockedSet("winter_champion")) {
		if a.ID == "winter_champion" {
			found = true
		}
	}
	if !found {
		t.Fatal("hidden achievement should be visible once unlocked")
	}
}

func TestAchievementsByCategory(t *testing.T) {
	e := testEngine(1)

	for _, a := range e.AchievementsByCategory("collection", nil) {
		if a.Category != "collection" {
			t.Fatalf("achievement %q has category %q", a.ID, a.Category)
		}
	}
}

func TestCompletionPercentageBounds(t *testing.T) {
	e := testEngine(1)

	if got := e.CompletionPercentage(nil); got != 0 {
		t.Fatalf("empty unlock set should be 0%%, got %d", got)
	}

	all := make([]models.UserAchievement, 0, len(e.Catalog().Achievements))
	for _, a := range e.Catalog().Achievements {
		all = append(all, models.UserAchievement{AchievementID: a.ID, UnlockedAt: time.Now()})
	}
	if got := e.CompletionPercentage(all); got != 100 {
		t.Fatalf("full unlock set should be 100%%, got %d", got)
	}
}

func TestAlmostCompleteBand(t *testing.T) {
	e := testEngine(1)

	// dog_collector_5 at 4/5 = 80% sits in the band. A record with zero
	// UnlockedAt carries progress without counting as unlocked.
	partial := []models.UserAchievement{
		{AchievementID: "first_dog", Progress: 1, UnlockedAt: time.Now()},
		{AchievementID: "dog_collector_5", Progress: 4},
	}

	found := false
	for _, a := range e.AlmostComplete(partial) {
		if a.ID == "dog_collector_5" {
			found = true
		}
	}
	if !found {
		t.Fatal("4/5 progress should appear in the almost-complete band")
	}
}

// engine/achievements.go - Achievement unlock, prerequisite, and progress rules
package engine

import (
	"errors"
	"math"

	"barkhaven/gamedata"
	"barkhaven/models"
)

// ErrUnknownAchievement is returned for any lookup against an id that is not
// in the catalog. Every public function guards the same way; there are no
// unchecked dereferences.
var ErrUnknownAchievement = errors.New("unknown achievement id")

// ProgressCheck is the outcome of evaluating a metric value against an
// achievement's target.
type ProgressCheck struct {
	Unlocked        bool `json:"unlocked"`
	Progress        int  `json:"progress"`
	AlreadyComplete bool `json:"already_complete,omitempty"`
}

// targetValue defends against catalog entries with a zero or negative target.
func targetValue(a *gamedata.Achievement) int {
	if a.TargetValue <= 0 {
		return 1
	}
	return a.TargetValue
}

// IsAchievementUnlocked reports whether the player holds an unlock record.
// Records carrying only partial progress (zero UnlockedAt) do not count.
func IsAchievementUnlocked(id string, unlocked []models.UserAchievement) bool {
	for _, ua := range unlocked {
		if ua.AchievementID == id && !ua.UnlockedAt.IsZero() {
			return true
		}
	}
	return false
}

// RequirementsMet reports whether every prerequisite achievement is unlocked.
// An empty prerequisite list is trivially satisfied.
func RequirementsMet(a gamedata.Achievement, unlocked []models.UserAchievement) bool {
	for _, req := range a.Requires {
		if !IsAchievementUnlocked(req, unlocked) {
			return false
		}
	}
	return true
}

// AchievementProgress returns the player's current and required progress.
func (e *Engine) AchievementProgress(id string, unlocked []models.UserAchievement) (current, required int, err error) {
	a, ok := e.catalog.Achievement(id)
	if !ok {
		return 0, 0, ErrUnknownAchievement
	}
	required = targetValue(a)
	for _, ua := range unlocked {
		if ua.AchievementID == id {
			current = ua.Progress
			break
		}
	}
	return current, required, nil
}

// CheckAchievementProgress evaluates a reported metric value. Progress is not
// tracked until prerequisites are satisfied; partial progress made before
// that point is discarded. Already-unlocked non-repeatable achievements
// report complete without re-unlocking.
func (e *Engine) CheckAchievementProgress(id string, value int, unlocked []models.UserAchievement) (ProgressCheck, error) {
	a, ok := e.catalog.Achievement(id)
	if !ok {
		return ProgressCheck{}, ErrUnknownAchievement
	}

	if IsAchievementUnlocked(id, unlocked) && !a.Repeatable {
		target := targetValue(a)
		return ProgressCheck{Unlocked: true, Progress: target, AlreadyComplete: true}, nil
	}

	if !RequirementsMet(*a, unlocked) {
		return ProgressCheck{}, nil
	}

	target := targetValue(a)
	progress := value
	if progress > target {
		progress = target
	}
	return ProgressCheck{Unlocked: value >= target, Progress: progress}, nil
}

// AvailableAchievements filters the catalog to entries the player can
// currently see and work toward: hidden entries stay invisible until
// unlocked, and prerequisites must already be met.
func (e *Engine) AvailableAchievements(unlocked []models.UserAchievement) []gamedata.Achievement {
	var out []gamedata.Achievement
	for _, a := range e.catalog.Achievements {
		if a.Hidden && !IsAchievementUnlocked(a.ID, unlocked) {
			continue
		}
		if !RequirementsMet(a, unlocked) {
			continue
		}
		out = append(out, a)
	}
	return out
}

// AchievementsByCategory is AvailableAchievements narrowed to one category.
func (e *Engine) AchievementsByCategory(category string, unlocked []models.UserAchievement) []gamedata.Achievement {
	var out []gamedata.Achievement
	for _, a := range e.AvailableAchievements(unlocked) {
		if a.Category == category {
			out = append(out, a)
		}
	}
	return out
}

// CompletionPercentage is the rounded share of catalog achievements unlocked.
func (e *Engine) CompletionPercentage(unlocked []models.UserAchievement) int {
	total := len(e.catalog.Achievements)
	if total == 0 {
		return 0
	}
	count := 0
	for _, a := range e.catalog.Achievements {
		if IsAchievementUnlocked(a.ID, unlocked) {
			count++
		}
	}
	return int(math.Round(float64(count) / float64(total) * 100))
}

// AlmostComplete returns available achievements whose progress sits in the
// [80%, 100%) band.
func (e *Engine) AlmostComplete(unlocked []models.UserAchievement) []gamedata.Achievement {
	var out []gamedata.Achievement
	for _, a := range e.AvailableAchievements(unlocked) {
		current, required, err := e.AchievementProgress(a.ID, unlocked)
		if err != nil {
			continue
		}
		pct := float64(current) / float64(required) * 100
		if pct >= 80 && pct < 100 {
			out = append(out, a)
		}
	}
	return out
}

// engine/progression.go - XP curve and competition rewards
package engine

import "math"

// XPForLevel is the cumulative XP needed to hold a level. The curve follows
// 100 * (level-1)^1.5, so level 1 costs nothing and each level gets steeper.
func XPForLevel(level int) int {
	if level <= 1 {
		return 0
	}
	return int(100 * math.Pow(float64(level-1), 1.5))
}

// LevelFromXP inverts the curve: the highest level whose cumulative cost the
// XP total covers. LevelFromXP(XPForLevel(L)) == L for all L >= 1.
func LevelFromXP(xp int) int {
	if xp < 0 {
		return 1
	}
	level := 1
	for XPForLevel(level+1) <= xp {
		level++
	}
	return level
}

// LevelUpReward is the cash granted on reaching a new level.
func LevelUpReward(level int) int {
	return 50 + level*10
}

// CompetitionXP converts a competition outcome into experience. The weather/
// season modifier scales the whole award.
func CompetitionXP(score float64, won bool, placement int, modifier float64) int {
	xp := score * 0.5
	if won {
		xp += 20
	}
	switch placement {
	case 1:
		xp += 30
	case 2:
		xp += 15
	case 3:
		xp += 5
	}
	return int(math.Round(xp * modifier))
}

// PrestigeForResult awards prestige points for a placement. Only podium
// finishes earn prestige, scaled up for high scores.
func PrestigeForResult(score float64, placement int) int {
	base := 0
	switch placement {
	case 1:
		base = 10
	case 2:
		base = 5
	case 3:
		base = 2
	default:
		return 0
	}
	if score >= 90 {
		base += 5
	}
	return base
}

package engine

import "testing"

func TestXPLevelRoundTrip(t *testing.T) {
	for level := 1; level <= 100; level++ {
		if got := LevelFromXP(XPForLevel(level)); got != level {
			t.Fatalf("LevelFromXP(XPForLevel(%d)) = %d", level, got)
		}
	}
}

func TestXPForLevelNonDecreasing(t *testing.T) {
	prev := XPForLevel(1)
	if prev != 0 {
		t.Fatalf("level 1 should cost 0 XP, got %d", prev)
	}
	for level := 2; level <= 100; level++ {
		cost := XPForLevel(level)
		if cost <= prev {
			t.Fatalf("XP curve not increasing at level %d: %d <= %d", level, cost, prev)
		}
		prev = cost
	}
}

func TestLevelFromXPBetweenThresholds(t *testing.T) {
	if got := LevelFromXP(0); got != 1 {
		t.Fatalf("0 XP should be level 1, got %d", got)
	}
	if got := LevelFromXP(-5); got != 1 {
		t.Fatalf("negative XP should be level 1, got %d", got)
	}
	// One XP shy of level 3 is still level 2.
	if got := LevelFromXP(XPForLevel(3) - 1); got != 2 {
		t.Fatalf("expected level 2, got %d", got)
	}
}

func TestCompetitionXP(t *testing.T) {
	base := CompetitionXP(80, false, 5, 1.0)
	win := CompetitionXP(80, true, 1, 1.0)
	if win <= base {
		t.Fatalf("winning first place must pay more XP: %d vs %d", win, base)
	}

	boosted := CompetitionXP(80, true, 1, 1.2)
	if boosted <= win {
		t.Fatalf("a favorable modifier must scale XP up: %d vs %d", boosted, win)
	}
}

func TestPrestigeForResult(t *testing.T) {
	if got := PrestigeForResult(95, 4); got != 0 {
		t.Fatalf("off-podium finish should earn no prestige, got %d", got)
	}
	first := PrestigeForResult(85, 1)
	second := PrestigeForResult(85, 2)
	if first <= second {
		t.Fatalf("first place must outrank second: %d vs %d", first, second)
	}
	if PrestigeForResult(95, 1) <= first {
		t.Fatal("a 90+ score should add bonus prestige")
	}
}

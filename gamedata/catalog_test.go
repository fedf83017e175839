package gamedata

import (
	"math"
	"testing"
)

func TestDefaultCatalogValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("built-in catalog failed validation: %v", err)
	}
}

func TestWeatherWeightsSumToOne(t *testing.T) {
	for season, profile := range Default().Seasons {
		total := 0.0
		for _, wc := range profile.Weather {
			total += wc.Weight
		}
		if math.Abs(total-1.0) > 1e-9 {
			t.Errorf("season %q: weights sum to %f", season, total)
		}
	}
}

func TestBreedCategoryWeightsSumTo100(t *testing.T) {
	for _, b := range Default().Breeds {
		if sum := b.Categories.Sum(); math.Abs(sum-100) > 1e-9 {
			t.Errorf("breed %q: weights sum to %f", b.BreedID, sum)
		}
	}
}

func TestValidateCatchesDanglingPrerequisite(t *testing.T) {
	c := Default()
	c.Achievements = append([]Achievement{}, c.Achievements...)
	c.Achievements = append(c.Achievements, Achievement{
		ID: "broken", Category: "special", Name: "Broken",
		Requires: []string{"does_not_exist"},
	})
	if err := c.Validate(); err == nil {
		t.Fatal("expected validation failure for dangling prerequisite")
	}
}

func TestValidateCatchesPrerequisiteCycle(t *testing.T) {
	c := Default()
	c.Achievements = []Achievement{
		{ID: "a", Category: "special", Name: "A", Requires: []string{"b"}},
		{ID: "b", Category: "special", Name: "B", Requires: []string{"a"}},
	}
	if err := c.Validate(); err == nil {
		t.Fatal("expected validation failure for prerequisite cycle")
	}
}

func TestValidateCatchesDanglingCertification(t *testing.T) {
	c := Default()
	c.Certifications = append([]Certification{}, c.Certifications...)
	c.Certifications = append(c.Certifications, Certification{
		ID: "broken_cert", Name: "Broken", PrestigeLevel: 1,
		Requirements: CertificationRequirements{
			RequiredCertifications: []string{"missing_cert"},
		},
	})
	if err := c.Validate(); err == nil {
		t.Fatal("expected validation failure for dangling certification reference")
	}
}

func TestValidateCatchesUnsortedPrestigeRanks(t *testing.T) {
	c := Default()
	c.PrestigeRanks = []PrestigeRank{
		{Rank: "High", MinPrestigePoints: 0},
		{Rank: "Low", MinPrestigePoints: 100},
		{Rank: "Mid", MinPrestigePoints: 50},
	}
	if err := c.Validate(); err == nil {
		t.Fatal("expected validation failure for unsorted prestige ranks")
	}
}

func TestValidateCatchesBadWeightSum(t *testing.T) {
	c := Default()
	c.Breeds = append([]BreedStandard{}, c.Breeds...)
	c.Breeds = append(c.Breeds, BreedStandard{
		BreedID: "bad_breed", Name: "Bad",
		IdealSize:  SizeRange{Min: 10, Max: 20},
		Categories: CategoryWeights{Head: 50, Body: 20},
	})
	if err := c.Validate(); err == nil {
		t.Fatal("expected validation failure for weight sum != 100")
	}
}

func TestCatalogLookups(t *testing.T) {
	c := Default()

	if _, ok := c.Achievement("dog_collector_5"); !ok {
		t.Error("dog_collector_5 missing")
	}
	if _, ok := c.Certification("champion"); !ok {
		t.Error("champion certification missing")
	}
	if _, ok := c.Breed("siberian_husky"); !ok {
		t.Error("siberian_husky standard missing")
	}
	if _, ok := c.StaffTemplate("junior_caretaker"); !ok {
		t.Error("junior_caretaker template missing")
	}
	if _, ok := c.Achievement("nope"); ok {
		t.Error("unknown achievement lookup should miss")
	}
}

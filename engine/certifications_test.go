package engine

import (
	"testing"

	"barkhaven/gamedata"
	"barkhaven/models"
)

func eligibleWorkingDog() *models.Dog {
	return &models.Dog{
		Name:           "Koda",
		Breed:          "german_shepherd",
		Specialization: "working_dog",
		Level:          10,
		BondLevel:      4,
		Strength:       20,
		Intelligence:   15,
	}
}

func TestCheckCertificationEligibility(t *testing.T) {
	e := testEngine(1)
	cert, ok := e.Catalog().Certification("working_dog_cert")
	if !ok {
		t.Fatal("working_dog_cert missing from catalog")
	}

	dog := eligibleWorkingDog()
	if !CheckCertificationEligibility(dog, cert, nil) {
		t.Fatal("dog meeting every requirement should be eligible")
	}

	low := eligibleWorkingDog()
	low.Level = 9
	if CheckCertificationEligibility(low, cert, nil) {
		t.Fatal("level below minimum should fail")
	}

	wrongSpec := eligibleWorkingDog()
	wrongSpec.Specialization = "show_dog"
	if CheckCertificationEligibility(wrongSpec, cert, nil) {
		t.Fatal("wrong specialization should fail")
	}

	weak := eligibleWorkingDog()
	weak.Strength = 19
	if CheckCertificationEligibility(weak, cert, nil) {
		t.Fatal("stat below threshold should fail")
	}
}

func TestEligibilityMonotoneInStats(t *testing.T) {
	e := testEngine(1)
	cert, _ := e.Catalog().Certification("working_dog_cert")

	dog := eligibleWorkingDog()
	if !CheckCertificationEligibility(dog, cert, nil) {
		t.Fatal("baseline dog should be eligible")
	}

	// Raising any gating quantity must never revoke eligibility.
	dog.Level += 5
	dog.BondLevel += 3
	dog.Strength += 10
	dog.Intelligence += 10
	if !CheckCertificationEligibility(dog, cert, nil) {
		t.Fatal("raising stats turned an eligible dog ineligible")
	}
}

func TestEligibilityRequiresPriorCertifications(t *testing.T) {
	e := testEngine(1)
	cert, _ := e.Catalog().Certification("weight_pull_titan")

	dog := &models.Dog{
		Level:    12,
		Strength: 28,
	}
	wins := make([]models.CompetitionResult, 5)
	for i := range wins {
		wins[i] = models.CompetitionResult{Type: "weight_pull", Won: true, Score: 75}
	}

	if CheckCertificationEligibility(dog, cert, wins) {
		t.Fatal("missing prerequisite certification should fail")
	}

	dog.Certifications = []models.DogCertification{{CertificationType: "working_dog_cert"}}
	if !CheckCertificationEligibility(dog, cert, wins) {
		t.Fatal("dog with prerequisite certification and wins should pass")
	}
}

func TestEvaluateCompetitionWinRequirement(t *testing.T) {
	req := gamedata.WinRequirement{Type: "agility", Count: 2, MinScore: 70}

	history := []models.CompetitionResult{
		{Type: "agility", Won: true, Score: 80},
		{Type: "agility", Won: true, Score: 65},  // below min score
		{Type: "agility", Won: false, Score: 95}, // not a win
		{Type: "racing", Won: true, Score: 99},   // wrong discipline
	}
	if EvaluateCompetitionWinRequirement(history, req) {
		t.Fatal("one qualifying win should not satisfy a count of 2")
	}

	history = append(history, models.CompetitionResult{Type: "agility", Won: true, Score: 71})
	if !EvaluateCompetitionWinRequirement(history, req) {
		t.Fatal("two qualifying wins should satisfy the requirement")
	}
}

func TestPrestigeRankMonotone(t *testing.T) {
	e := testEngine(1)

	lowest := e.PrestigeRankFor(0)
	if lowest.MinPrestigePoints != 0 {
		t.Fatalf("zero points should map to the lowest rank, got %q", lowest.Rank)
	}

	prev := -1
	for points := 0; points <= 2000; points += 25 {
		rank := e.PrestigeRankFor(points)
		if rank.MinPrestigePoints < prev {
			t.Fatalf("rank threshold regressed at %d points", points)
		}
		prev = rank.MinPrestigePoints
	}

	top := e.PrestigeRankFor(1_000_000)
	ranks := e.Catalog().PrestigeRanks
	if top.Rank != ranks[len(ranks)-1].Rank {
		t.Fatalf("huge point total should map to the top rank, got %q", top.Rank)
	}
}

func TestFormatDogNameWithTitles(t *testing.T) {
	e := testEngine(1)

	if got := e.FormatDogNameWithTitles("Rex", nil); got != "Rex" {
		t.Fatalf("no titles: got %q, want Rex", got)
	}

	got := e.FormatDogNameWithTitles("Rex", []models.DogCertification{
		{CertificationType: "champion"},
	})
	if got != "CH Rex" {
		t.Fatalf("got %q, want %q", got, "CH Rex")
	}

	// Higher prestige title sorts first; dangling references drop silently.
	got = e.FormatDogNameWithTitles("Rex", []models.DogCertification{
		{CertificationType: "champion"},
		{CertificationType: "grand_champion"},
		{CertificationType: "retired_legacy_title"},
	})
	if got != "GCH CH Rex" {
		t.Fatalf("got %q, want %q", got, "GCH CH Rex")
	}
}

package engine

import (
	"testing"

	"barkhaven/models"
)

func showDog() *models.Dog {
	return &models.Dog{
		Name:         "Willow",
		Breed:        "border_collie",
		Size:         20,
		Strength:     25,
		Agility:      30,
		Intelligence: 28,
		Friendliness: 32,
	}
}

func TestConformationScoreWithinBounds(t *testing.T) {
	e := testEngine(3)
	standard, ok := e.Catalog().Breed("border_collie")
	if !ok {
		t.Fatal("border_collie standard missing")
	}

	for i := 0; i < 300; i++ {
		score := e.ScoreConformation(showDog(), standard, 50)
		if score.TotalScore < 0 || score.TotalScore > 100 {
			t.Fatalf("total score %f outside [0,100]", score.TotalScore)
		}
	}
}

func TestConformationDeterministicExceptCoat(t *testing.T) {
	a := testEngine(17)
	b := testEngine(23)
	standard, _ := a.Catalog().Breed("border_collie")

	s1 := a.ScoreConformation(showDog(), standard, 50)
	s2 := b.ScoreConformation(showDog(), standard, 50)

	if s1.CategoryScores.Head != s2.CategoryScores.Head ||
		s1.CategoryScores.Body != s2.CategoryScores.Body ||
		s1.CategoryScores.Legs != s2.CategoryScores.Legs ||
		s1.CategoryScores.Movement != s2.CategoryScores.Movement ||
		s1.CategoryScores.Temperament != s2.CategoryScores.Temperament {
		t.Fatal("non-coat categories must not depend on the random source")
	}

	// Same seed reproduces the coat draw exactly.
	c := testEngine(17)
	s3 := c.ScoreConformation(showDog(), standard, 50)
	if s1.CategoryScores.Coat != s3.CategoryScores.Coat {
		t.Fatal("identical seeds must reproduce the coat score")
	}
}

func TestConformationIdealSizeScoresFullBody(t *testing.T) {
	e := testEngine(5)
	standard, _ := e.Catalog().Breed("border_collie")

	dog := showDog()
	dog.Size = 20 // within [18,22]
	score := e.ScoreConformation(dog, standard, 50)

	wantBody := 100 * (standard.Categories.Body / 100)
	if score.CategoryScores.Body != wantBody {
		t.Fatalf("in-range size should score full body share: got %f want %f", score.CategoryScores.Body, wantBody)
	}
	if len(score.Deductions) != 0 {
		t.Fatalf("in-range size should carry no deductions, got %v", score.Deductions)
	}
}

func TestConformationSizeDeduction(t *testing.T) {
	e := testEngine(5)
	standard, _ := e.Catalog().Breed("border_collie")

	dog := showDog()
	dog.Size = 40 // far outside [18,22]: sizeScore clamps to 0
	score := e.ScoreConformation(dog, standard, 50)

	if score.CategoryScores.Body != 0 {
		t.Fatalf("size far out of range should zero the body score, got %f", score.CategoryScores.Body)
	}
	if len(score.Deductions) != 1 {
		t.Fatalf("expected one size deduction, got %d", len(score.Deductions))
	}
	if score.Deductions[0].Points != 10 {
		t.Fatalf("deduction should be (100-0)*0.1 = 10, got %f", score.Deductions[0].Points)
	}
}

func TestConformationUncappedHeadroom(t *testing.T) {
	e := testEngine(5)
	standard, _ := e.Catalog().Breed("border_collie")

	dog := showDog()
	dog.Intelligence = 60 // above the 40-point reference scale
	score := e.ScoreConformation(dog, standard, 50)

	capShare := standard.Categories.Head
	if score.CategoryScores.Head <= capShare {
		t.Fatalf("intelligence above 40 should exceed the head category share %f, got %f", capShare, score.CategoryScores.Head)
	}
}

func TestConformationPlayerPerformanceMatters(t *testing.T) {
	e1 := testEngine(9)
	e2 := testEngine(9)
	standard, _ := e1.Catalog().Breed("border_collie")

	poor := e1.ScoreConformation(showDog(), standard, 0)
	great := e2.ScoreConformation(showDog(), standard, 100)

	if great.CategoryScores.Movement <= poor.CategoryScores.Movement {
		t.Fatalf("higher handler performance must raise movement: %f vs %f",
			great.CategoryScores.Movement, poor.CategoryScores.Movement)
	}
}

func TestRatingBands(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{95, "Excellent"},
		{90, "Excellent"},
		{85, "Very Good"},
		{75, "Good"},
		{65, "Fair"},
		{10, "Poor"},
	}
	for _, tc := range cases {
		if got := ratingForScore(tc.score); got != tc.want {
			t.Errorf("ratingForScore(%f) = %q, want %q", tc.score, got, tc.want)
		}
	}
}

// engine/conformation.go - Conformation show scoring
package engine

import (
	"barkhaven/gamedata"
	"barkhaven/models"
)

type Deduction struct {
	Reason string  `json:"reason"`
	Points float64 `json:"points"`
}

type CategoryScores struct {
	Head        float64 `json:"head"`
	Body        float64 `json:"body"`
	Legs        float64 `json:"legs"`
	Coat        float64 `json:"coat"`
	Movement    float64 `json:"movement"`
	Temperament float64 `json:"temperament"`
}

func (c CategoryScores) Sum() float64 {
	return c.Head + c.Body + c.Legs + c.Coat + c.Movement + c.Temperament
}

// ConformationScore is an ephemeral value object; nothing here is persisted
// by the engine itself.
type ConformationScore struct {
	TotalScore     float64        `json:"total_score"`
	CategoryScores CategoryScores `json:"category_scores"`
	Deductions     []Deduction    `json:"deductions"`
	Rating         string         `json:"rating"`
}

// ScoreConformation judges a dog against its breed standard. Head, legs and
// temperament ratios are deliberately uncapped: a dog with a stat above the
// 40-point reference scale scores past its category's proportional share,
// which is intentional headroom for stat-maxed dogs. Coat is the only
// stochastic category and draws from the injected random source.
func (e *Engine) ScoreConformation(dog *models.Dog, standard *gamedata.BreedStandard, playerPerformance float64) ConformationScore {
	cats := standard.Categories
	var deductions []Deduction

	sizeScore := 100.0
	if dog.Size < standard.IdealSize.Min || dog.Size > standard.IdealSize.Max {
		mid := float64(standard.IdealSize.Min+standard.IdealSize.Max) / 2
		span := float64(standard.IdealSize.Max - standard.IdealSize.Min)
		diff := float64(dog.Size) - mid
		if diff < 0 {
			diff = -diff
		}
		sizeScore = 100 - diff/span*100
		if sizeScore < 0 {
			sizeScore = 0
		}
	}
	if sizeScore < 70 {
		deductions = append(deductions, Deduction{
			Reason: "size outside breed standard",
			Points: (100 - sizeScore) * 0.1,
		})
	}

	scores := CategoryScores{
		Body: sizeScore * (cats.Body / 100),
		Head: float64(dog.Intelligence) / 40 * 100 * (cats.Head / 100),
		Legs: (float64(dog.Agility)+float64(dog.Strength)) / 2 / 40 * 100 * (cats.Legs / 100),
		Coat: (60 + e.rng.Float64()*30 + float64(dog.Strength)/100*10) * (cats.Coat / 100),
		Movement: (float64(dog.Agility)/40*50 + playerPerformance*0.5) *
			(cats.Movement / 100),
		Temperament: (float64(dog.Friendliness) + float64(dog.Intelligence)) / 80 * 100 *
			(cats.Temperament / 100),
	}

	total := scores.Sum()
	for _, d := range deductions {
		total -= d.Points
	}
	if total < 0 {
		total = 0
	}
	if total > 100 {
		total = 100
	}

	return ConformationScore{
		TotalScore:     total,
		CategoryScores: scores,
		Deductions:     deductions,
		Rating:         ratingForScore(total),
	}
}

func ratingForScore(total float64) string {
	switch {
	case total >= 90:
		return "Excellent"
	case total >= 80:
		return "Very Good"
	case total >= 70:
		return "Good"
	case total >= 60:
		return "Fair"
	default:
		return "Poor"
	}
}

// engine/certifications.go - Certification eligibility, prestige ranks, titles
package engine

import (
	"sort"
	"strings"

	"barkhaven/gamedata"
	"barkhaven/models"
)

// statValue resolves a requirement stat name against the dog record. Unknown
// names read as 0, so an impossible requirement can never be trivially met.
func statValue(dog *models.Dog, stat string) int {
	switch stat {
	case "size":
		return dog.Size
	case "strength":
		return dog.Strength
	case "strength_trained":
		return dog.StrengthTrained
	case "agility":
		return dog.Agility
	case "agility_trained":
		return dog.AgilityTrained
	case "intelligence":
		return dog.Intelligence
	case "friendliness":
		return dog.Friendliness
	default:
		return 0
	}
}

// EvaluateCompetitionWinRequirement counts qualifying wins in the dog's
// history: same discipline, won, and scoring at least the requirement's
// minimum.
func EvaluateCompetitionWinRequirement(history []models.CompetitionResult, req gamedata.WinRequirement) bool {
	count := 0
	for _, r := range history {
		if !r.Won || r.Type != req.Type {
			continue
		}
		if req.MinScore > 0 && r.Score < req.MinScore {
			continue
		}
		count++
	}
	return count >= req.Count
}

// CheckCertificationEligibility evaluates every requirement of a
// certification against the dog and its competition history. All checks use
// >= thresholds, so raising a stat, level, or bond can never turn an
// eligible dog ineligible.
func CheckCertificationEligibility(dog *models.Dog, cert *gamedata.Certification, history []models.CompetitionResult) bool {
	req := cert.Requirements

	if dog.Level < req.MinLevel {
		return false
	}
	if dog.BondLevel < req.MinBondLevel {
		return false
	}
	for stat, threshold := range req.MinStats {
		if statValue(dog, stat) < threshold {
			return false
		}
	}
	if req.RequiredSpecialization != "" && dog.Specialization != req.RequiredSpecialization {
		return false
	}
	for _, id := range req.RequiredCertifications {
		if !holdsCertification(dog, id) {
			return false
		}
	}
	for _, win := range req.CompetitionWins {
		if !EvaluateCompetitionWinRequirement(history, win) {
			return false
		}
	}
	return true
}

func holdsCertification(dog *models.Dog, certID string) bool {
	for _, c := range dog.Certifications {
		if c.CertificationType == certID {
			return true
		}
	}
	return false
}

// PrestigeRankFor returns the highest rank whose threshold the points meet,
// falling back to the lowest rank. Never fails for any points value.
func (e *Engine) PrestigeRankFor(points int) gamedata.PrestigeRank {
	ranks := e.catalog.PrestigeRanks
	for i := len(ranks) - 1; i >= 0; i-- {
		if ranks[i].MinPrestigePoints <= points {
			return ranks[i]
		}
	}
	return ranks[0]
}

// FormatDogNameWithTitles prefixes the dog's name with its earned title
// abbreviations, highest prestige first. Certifications referencing a
// missing catalog entry are silently dropped.
func (e *Engine) FormatDogNameWithTitles(name string, certs []models.DogCertification) string {
	var earned []*gamedata.Certification
	for _, c := range certs {
		if cert, ok := e.catalog.Certification(c.CertificationType); ok {
			earned = append(earned, cert)
		}
	}
	if len(earned) == 0 {
		return name
	}

	sort.SliceStable(earned, func(i, j int) bool {
		return earned[i].PrestigeLevel > earned[j].PrestigeLevel
	})

	prefixes := make([]string, 0, len(earned)+1)
	for _, cert := range earned {
		prefixes = append(prefixes, cert.TitlePrefix)
	}
	prefixes = append(prefixes, name)
	return strings.Join(prefixes, " ")
}

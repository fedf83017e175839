// engine/staff.go - Staff hiring economics
package engine

import (
	"barkhaven/gamedata"
	"barkhaven/models"
)

// AffordableStaff filters the templates a player can hire right now: enough
// cash, high enough player level, high enough kennel tier.
func (e *Engine) AffordableStaff(cash, level, kennelLevel int) []gamedata.StaffTemplate {
	var out []gamedata.StaffTemplate
	for _, tpl := range e.catalog.StaffTemplates {
		if tpl.HiringCost <= cash && tpl.UnlockLevel <= level && tpl.KennelLevelRequired <= kennelLevel {
			out = append(out, tpl)
		}
	}
	return out
}

// DailyWages sums the roster's daily cost.
func DailyWages(staff []models.StaffMember) int {
	total := 0
	for _, s := range staff {
		total += s.DailyWage
	}
	return total
}

// GenerateStaffName picks a random first/last pair from the catalog pools.
// Names are not unique; collisions are expected and acceptable.
func (e *Engine) GenerateStaffName() string {
	first := e.catalog.StaffFirstNames[e.rng.IntN(len(e.catalog.StaffFirstNames))]
	last := e.catalog.StaffLastNames[e.rng.IntN(len(e.catalog.StaffLastNames))]
	return first + " " + last
}

package engine

import (
	"strings"
	"testing"

	"barkhaven/models"
)

func TestAffordableStaffFilters(t *testing.T) {
	e := testEngine(1)

	affordable := e.AffordableStaff(1000, 5, 2)

	var ids []string
	for _, tpl := range affordable {
		ids = append(ids, tpl.ID)
	}

	if !contains(ids, "junior_caretaker") {
		t.Fatalf("Junior Caretaker (cost 500, unlock 3, kennel 1) should be affordable, got %v", ids)
	}
	if contains(ids, "pro_groomer") {
		t.Fatal("Professional Groomer (cost 2500) should be excluded at 1000 cash")
	}

	for _, tpl := range affordable {
		if tpl.HiringCost > 1000 || tpl.UnlockLevel > 5 || tpl.KennelLevelRequired > 2 {
			t.Fatalf("template %q violates the affordability filter", tpl.ID)
		}
	}

	if got := e.AffordableStaff(0, 1, 1); len(got) != 0 {
		t.Fatalf("broke player at level 1 should afford nothing, got %d templates", len(got))
	}
}

func TestDailyWages(t *testing.T) {
	if got := DailyWages(nil); got != 0 {
		t.Fatalf("empty roster wages = %d, want 0", got)
	}

	staff := []models.StaffMember{
		{DailyWage: 25},
		{DailyWage: 90},
		{}, // missing wage counts as 0
	}
	if got := DailyWages(staff); got != 115 {
		t.Fatalf("wages = %d, want 115", got)
	}
}

func TestGenerateStaffName(t *testing.T) {
	e := testEngine(8)

	for i := 0; i < 50; i++ {
		name := e.GenerateStaffName()
		parts := strings.Fields(name)
		if len(parts) != 2 {
			t.Fatalf("generated name %q is not first/last", name)
		}
	}

	// Same seed, same sequence.
	a, b := testEngine(8), testEngine(8)
	if a.GenerateStaffName() != b.GenerateStaffName() {
		t.Fatal("identical seeds must generate identical names")
	}
}

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}

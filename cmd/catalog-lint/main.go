package main

import (
	"fmt"
	"os"

	"barkhaven/gamedata"
)

// Offline sanity check for the built-in catalog: run before shipping any
// table change. Exits non-zero when a cross-reference, weight sum or ordering
// rule is broken.
func main() {
	catalog := gamedata.Default()

	if err := catalog.Validate(); err != nil {
		fmt.Println("catalog: INVALID:", err)
		os.Exit(1)
	}

	fmt.Printf("achievements:    %d\n", len(catalog.Achievements))
	fmt.Printf("certifications:  %d\n", len(catalog.Certifications))
	fmt.Printf("prestige ranks:  %d\n", len(catalog.PrestigeRanks))
	fmt.Printf("breed standards: %d\n", len(catalog.Breeds))
	fmt.Printf("staff templates: %d\n", len(catalog.StaffTemplates))
	fmt.Printf("seasons:         %d\n", len(catalog.Seasons))
	fmt.Printf("weather effects: %d\n", len(catalog.Weather))
	fmt.Printf("seasonal events: %d\n", len(catalog.SeasonalEvents))
	fmt.Printf("tournaments:     %d\n", len(catalog.Tournaments))
	fmt.Println("catalog: OK")
}

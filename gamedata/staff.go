// gamedata/staff.go - Staff template catalog
package gamedata

// Seven roles: caretaker, trainer, groomer, vet, nutritionist, handler, manager.
var staffTemplateTable = []StaffTemplate{
	{
		ID: "junior_caretaker", Name: "Junior Caretaker", Role: "caretaker", Quality: "basic",
		UnlockLevel: 3, KennelLevelRequired: 1, HiringCost: 500, DailyWage: 25,
		Efficiency: 0.8, Reliability: 85, MaxDogs: 3,
		Benefits: "covers feeding and cleanup for assigned dogs", SpecialAbility: "",
	},
	{
		ID: "senior_caretaker", Name: "Senior Caretaker", Role: "caretaker", Quality: "experienced",
		UnlockLevel: 8, KennelLevelRequired: 2, HiringCost: 1800, DailyWage: 60,
		Efficiency: 1.1, Reliability: 92, MaxDogs: 6,
		Benefits: "daily care plus minor health checks", SpecialAbility: "spots illness a day early",
	},
	{
		ID: "apprentice_trainer", Name: "Apprentice Trainer", Role: "trainer", Quality: "basic",
		UnlockLevel: 4, KennelLevelRequired: 1, HiringCost: 800, DailyWage: 35,
		Efficiency: 0.9, Reliability: 88, MaxDogs: 2,
		Benefits: "runs basic drills while you are away", SpecialAbility: "",
	},
	{
		ID: "pro_trainer", Name: "Professional Trainer", Role: "trainer", Quality: "expert",
		UnlockLevel: 12, KennelLevelRequired: 3, HiringCost: 4000, DailyWage: 120,
		Efficiency: 1.3, Reliability: 95, MaxDogs: 4,
		Benefits: "accelerated stat training", SpecialAbility: "+10% training session gains",
	},
	{
		ID: "junior_groomer", Name: "Junior Groomer", Role: "groomer", Quality: "basic",
		UnlockLevel: 5, KennelLevelRequired: 1, HiringCost: 600, DailyWage: 30,
		Efficiency: 0.85, Reliability: 87, MaxDogs: 4,
		Benefits: "keeps coats show-ready", SpecialAbility: "",
	},
	{
		ID: "pro_groomer", Name: "Professional Groomer", Role: "groomer", Quality: "expert",
		UnlockLevel: 10, KennelLevelRequired: 3, HiringCost: 2500, DailyWage: 90,
		Efficiency: 1.25, Reliability: 94, MaxDogs: 6,
		Benefits: "show-quality coat preparation", SpecialAbility: "+5 coat presentation before shows",
	},
	{
		ID: "kennel_vet", Name: "Kennel Veterinarian", Role: "vet", Quality: "expert",
		UnlockLevel: 14, KennelLevelRequired: 3, HiringCost: 6000, DailyWage: 180,
		Efficiency: 1.35, Reliability: 97, MaxDogs: 10,
		Benefits: "on-site medical care", SpecialAbility: "halves recovery time",
	},
	{
		ID: "nutritionist", Name: "Canine Nutritionist", Role: "nutritionist", Quality: "experienced",
		UnlockLevel: 9, KennelLevelRequired: 2, HiringCost: 2200, DailyWage: 70,
		Efficiency: 1.15, Reliability: 93, MaxDogs: 8,
		Benefits: "tailored meal plans", SpecialAbility: "+1 strength gain per week",
	},
	{
		ID: "show_handler", Name: "Show Handler", Role: "handler", Quality: "expert",
		UnlockLevel: 15, KennelLevelRequired: 4, HiringCost: 5000, DailyWage: 150,
		Efficiency: 1.4, Reliability: 96, MaxDogs: 2,
		Benefits: "presents your dogs in the ring", SpecialAbility: "+10 player performance in conformation",
	},
	{
		ID: "kennel_manager", Name: "Kennel Manager", Role: "manager", Quality: "master",
		UnlockLevel: 20, KennelLevelRequired: 5, HiringCost: 12000, DailyWage: 300,
		Efficiency: 1.5, Reliability: 99, MaxDogs: 20,
		Benefits: "oversees all daily operations", SpecialAbility: "-10% wages for all other staff",
	},
}

// Name pools for generated staff. Collisions are expected and fine.
var staffFirstNames = []string{
	"Avery", "Blake", "Casey", "Dana", "Ellis", "Frankie", "Harper",
	"Jordan", "Kendall", "Logan", "Morgan", "Parker", "Quinn", "Riley",
	"Sawyer", "Taylor",
}

var staffLastNames = []string{
	"Barnes", "Calloway", "Donovan", "Ferris", "Grady", "Holloway",
	"Kimball", "Lawson", "Mercer", "Norwood", "Prescott", "Ramsey",
	"Sutton", "Thatcher", "Vance", "Whitfield",
}

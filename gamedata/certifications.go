// gamedata/certifications.go - Certification and prestige rank catalogs
package gamedata

var certificationTable = []Certification{
	{
		ID: "novice_trick_dog", Name: "Novice Trick Dog", TitlePrefix: "NTD",
		Description: "Entry-level obedience and trick work", Icon: "🎓",
		PrestigeLevel: 1,
		Requirements: CertificationRequirements{
			MinLevel:     3,
			MinBondLevel: 1,
			MinStats:     map[string]int{"intelligence": 10},
		},
		Benefits:     CertificationBenefits{PrestigePoints: 10, CashReward: 100},
		DisplayColor: "#8bc34a",
	},
	{
		ID: "canine_good_citizen", Name: "Canine Good Citizen", TitlePrefix: "CGC",
		Description: "Well-mannered in public and around other dogs", Icon: "🦮",
		PrestigeLevel: 2,
		Requirements: CertificationRequirements{
			MinLevel:     5,
			MinBondLevel: 2,
			MinStats:     map[string]int{"friendliness": 15, "intelligence": 12},
		},
		Benefits:     CertificationBenefits{PrestigePoints: 20, CashReward: 250},
		DisplayColor: "#4caf50",
	},
	{
		ID: "agility_novice", Name: "Novice Agility", TitlePrefix: "NA",
		Description: "Completed a novice agility course clean", Icon: "🐕‍🦺",
		PrestigeLevel: 3,
		Requirements: CertificationRequirements{
			MinLevel: 8,
			MinStats: map[string]int{"agility": 18},
			CompetitionWins: []WinRequirement{
				{Type: "agility", Count: 3},
			},
		},
		Benefits:     CertificationBenefits{PrestigePoints: 35, CashReward: 400, StatBonus: 1},
		DisplayColor: "#03a9f4",
	},
	{
		ID: "racing_sprinter", Name: "Certified Sprinter", TitlePrefix: "CS",
		Description: "Proven speed on the straight track", Icon: "💨",
		PrestigeLevel: 3,
		Requirements: CertificationRequirements{
			MinLevel: 8,
			MinStats: map[string]int{"agility": 15, "strength": 12},
			CompetitionWins: []WinRequirement{
				{Type: "racing", Count: 3},
			},
		},
		Benefits:     CertificationBenefits{PrestigePoints: 35, CashReward: 400},
		DisplayColor: "#ff9800",
	},
	{
		ID: "working_dog_cert", Name: "Working Dog Certificate", TitlePrefix: "WD",
		Description: "Certified for sustained working duty", Icon: "🦴",
		PrestigeLevel: 4,
		Requirements: CertificationRequirements{
			MinLevel:               10,
			MinBondLevel:           4,
			RequiredSpecialization: "working_dog",
			MinStats:               map[string]int{"strength": 20, "intelligence": 15},
		},
		Benefits:     CertificationBenefits{PrestigePoints: 50, CashReward: 800, SpecialBonus: "weight-pull entry fee waived"},
		DisplayColor: "#795548",
	},
	{
		ID: "weight_pull_titan", Name: "Weight Pull Titan", TitlePrefix: "WPT",
		Description: "Dominant in the weight-pull ring", Icon: "⚓",
		PrestigeLevel: 5,
		Requirements: CertificationRequirements{
			MinLevel: 12,
			MinStats: map[string]int{"strength": 28},
			CompetitionWins: []WinRequirement{
				{Type: "weight_pull", Count: 5, MinScore: 70},
			},
			RequiredCertifications: []string{"working_dog_cert"},
		},
		Benefits:     CertificationBenefits{PrestigePoints: 75, CashReward: 1500, GemReward: 5},
		DisplayColor: "#607d8b",
	},
	{
		ID: "obedience_master", Name: "Obedience Master", TitlePrefix: "OM",
		Description: "Flawless performance in obedience trials", Icon: "🎖️",
		PrestigeLevel: 6,
		Requirements: CertificationRequirements{
			MinLevel:     14,
			MinBondLevel: 6,
			MinStats:     map[string]int{"intelligence": 30, "friendliness": 20},
			CompetitionWins: []WinRequirement{
				{Type: "obedience", Count: 5, MinScore: 80},
			},
			RequiredCertifications: []string{"canine_good_citizen"},
		},
		Benefits:     CertificationBenefits{PrestigePoints: 90, CashReward: 2000, GemReward: 8},
		DisplayColor: "#9c27b0",
	},
	{
		ID: "champion", Name: "Champion", TitlePrefix: "CH",
		Description: "Earned a championship in conformation", Icon: "🏆",
		PrestigeLevel: 7,
		Requirements: CertificationRequirements{
			MinLevel: 15,
			CompetitionWins: []WinRequirement{
				{Type: "conformation", Count: 3, MinScore: 80},
			},
		},
		Benefits:     CertificationBenefits{PrestigePoints: 120, CashReward: 3000, GemReward: 10},
		DisplayColor: "#ffc107",
	},
	{
		ID: "grand_champion", Name: "Grand Champion", TitlePrefix: "GCH",
		Description: "The highest conformation honor", Icon: "👑",
		PrestigeLevel: 9,
		Requirements: CertificationRequirements{
			MinLevel:     20,
			MinBondLevel: 8,
			CompetitionWins: []WinRequirement{
				{Type: "conformation", Count: 10, MinScore: 90},
			},
			RequiredCertifications: []string{"champion"},
		},
		Benefits:     CertificationBenefits{PrestigePoints: 250, CashReward: 10000, GemReward: 30, SpecialBonus: "unlocks invitational tournaments"},
		DisplayColor: "#e91e63",
	},
	{
		ID: "versatility_supreme", Name: "Supreme Versatility", TitlePrefix: "VS",
		Description: "Titled across every discipline", Icon: "🌟",
		PrestigeLevel: 10,
		Requirements: CertificationRequirements{
			MinLevel:     25,
			MinBondLevel: 10,
			RequiredCertifications: []string{
				"agility_novice", "racing_sprinter", "obedience_master", "weight_pull_titan", "grand_champion",
			},
			CustomRequirement: "judged exhibition performance approved by a senior judge",
		},
		Benefits:     CertificationBenefits{PrestigePoints: 500, CashReward: 25000, GemReward: 100, SpecialBonus: "lifetime entry fee waiver"},
		DisplayColor: "#f44336",
	},
}

var prestigeRankTable = []PrestigeRank{
	{Rank: "Companion", MinPrestigePoints: 0, Icon: "🐾", Benefits: []string{"base kennel listing"}},
	{Rank: "Contender", MinPrestigePoints: 50, Icon: "🎗️", Benefits: []string{"+2% competition payouts"}},
	{Rank: "Titled", MinPrestigePoints: 150, Icon: "🏅", Benefits: []string{"+5% competition payouts", "breeder inquiries"}},
	{Rank: "Distinguished", MinPrestigePoints: 400, Icon: "🎖️", Benefits: []string{"+8% competition payouts", "stud fee bonus"}},
	{Rank: "Elite", MinPrestigePoints: 800, Icon: "💎", Benefits: []string{"+12% competition payouts", "invitational eligibility"}},
	{Rank: "Legendary", MinPrestigePoints: 1500, Icon: "👑", Benefits: []string{"+20% competition payouts", "hall of fame listing"}},
}

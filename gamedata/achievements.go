// gamedata/achievements.go - Achievement catalog
package gamedata

var achievementTable = []Achievement{
	// Kennel
	{
		ID: "first_kennel", Category: "kennel", Name: "Home Sweet Home",
		Description: "Open your first kennel", Icon: "🏠", Rarity: RarityCommon,
		Reward: Reward{Cash: 100, XP: 50},
	},
	{
		ID: "kennel_upgrade_3", Category: "kennel", Name: "Growing Business",
		Description: "Upgrade your kennel to level 3", Icon: "🏗️", Rarity: RarityUncommon,
		Reward: Reward{Cash: 500, XP: 200}, TargetValue: 3,
		Requires: []string{"first_kennel"},
	},
	{
		ID: "kennel_upgrade_5", Category: "kennel", Name: "Top Facility",
		Description: "Upgrade your kennel to level 5", Icon: "🏰", Rarity: RarityRare,
		Reward: Reward{Cash: 2000, Gems: 10, XP: 500}, TargetValue: 5,
		Requires: []string{"kennel_upgrade_3"},
	},

	// Collection
	{
		ID: "first_dog", Category: "collection", Name: "Best Friend",
		Description: "Adopt your first dog", Icon: "🐶", Rarity: RarityCommon,
		Reward: Reward{Cash: 100, XP: 50},
	},
	{
		ID: "dog_collector_5", Category: "collection", Name: "Pack Leader",
		Description: "Own 5 dogs at the same time", Icon: "🐕", Rarity: RarityUncommon,
		Reward: Reward{Cash: 500, XP: 250}, TargetValue: 5,
	},
	{
		ID: "dog_collector_10", Category: "collection", Name: "Full House",
		Description: "Own 10 dogs at the same time", Icon: "🐾", Rarity: RarityRare,
		Reward: Reward{Cash: 1500, Gems: 5, XP: 600}, TargetValue: 10,
		Requires: []string{"dog_collector_5"},
	},
	{
		ID: "breed_collector", Category: "collection", Name: "Connoisseur",
		Description: "Own dogs of 6 different breeds", Icon: "📖", Rarity: RarityEpic,
		Reward: Reward{Gems: 20, XP: 800}, TargetValue: 6,
		Requires: []string{"dog_collector_5"},
	},

	// Training
	{
		ID: "first_training", Category: "training", Name: "Good Boy",
		Description: "Complete your first training session", Icon: "🎾", Rarity: RarityCommon,
		Reward: Reward{XP: 50},
	},
	{
		ID: "training_sessions_50", Category: "training", Name: "Drill Sergeant",
		Description: "Complete 50 training sessions", Icon: "🏋️", Rarity: RarityUncommon,
		Reward: Reward{Cash: 400, XP: 300}, TargetValue: 50,
		Requires: []string{"first_training"},
	},
	{
		ID: "max_stat", Category: "training", Name: "Peak Condition",
		Description: "Train any stat to 40", Icon: "💪", Rarity: RarityRare,
		Reward: Reward{Cash: 1000, Gems: 5, XP: 500}, TargetValue: 40,
		Requires: []string{"first_training"},
	},
	{
		ID: "bond_master", Category: "training", Name: "Inseparable",
		Description: "Reach bond level 10 with a dog", Icon: "❤️", Rarity: RarityRare,
		Reward: Reward{Gems: 10, XP: 400}, TargetValue: 10,
	},

	// Competition
	{
		ID: "first_win", Category: "competition", Name: "Blue Ribbon",
		Description: "Win your first competition", Icon: "🎀", Rarity: RarityCommon,
		Reward: Reward{Cash: 200, XP: 100},
	},
	{
		ID: "competition_wins_10", Category: "competition", Name: "Serial Winner",
		Description: "Win 10 competitions", Icon: "🏅", Rarity: RarityUncommon,
		Reward: Reward{Cash: 800, XP: 400}, TargetValue: 10,
		Requires: []string{"first_win"},
	},
	{
		ID: "competition_wins_50", Category: "competition", Name: "Champion of Champions",
		Description: "Win 50 competitions", Icon: "🏆", Rarity: RarityEpic,
		Reward: Reward{Cash: 5000, Gems: 25, XP: 1500}, TargetValue: 50,
		Requires: []string{"competition_wins_10"},
	},
	{
		ID: "perfect_conformation", Category: "competition", Name: "Picture Perfect",
		Description: "Score 90 or higher in a conformation show", Icon: "✨", Rarity: RarityRare,
		Reward: Reward{Cash: 1200, Gems: 8, XP: 600}, TargetValue: 90,
		Requires: []string{"first_win"},
	},
	{
		ID: "all_disciplines", Category: "competition", Name: "Quintathlete",
		Description: "Win in all 5 competition disciplines", Icon: "🌟", Rarity: RarityEpic,
		Reward: Reward{Gems: 30, XP: 1000}, TargetValue: 5,
		Requires: []string{"competition_wins_10"},
	},

	// Breeding
	{
		ID: "first_litter", Category: "breeding", Name: "New Arrivals",
		Description: "Breed your first litter", Icon: "🍼", Rarity: RarityUncommon,
		Reward: Reward{Cash: 300, XP: 200},
	},
	{
		ID: "breeding_lines_5", Category: "breeding", Name: "Pedigree Builder",
		Description: "Raise 5 bred puppies to adulthood", Icon: "📜", Rarity: RarityRare,
		Reward: Reward{Cash: 1500, Gems: 10, XP: 700}, TargetValue: 5,
		Requires: []string{"first_litter"},
	},

	// Care
	{
		ID: "daily_care_7", Category: "care", Name: "Routine Keeper",
		Description: "Care for your dogs 7 days in a row", Icon: "🗓️", Rarity: RarityCommon,
		Reward: Reward{Cash: 200, XP: 150}, TargetValue: 7,
	},
	{
		ID: "groomer_friend", Category: "care", Name: "Well Groomed",
		Description: "Complete 25 grooming sessions", Icon: "🛁", Rarity: RarityUncommon,
		Reward: Reward{Cash: 400, XP: 250}, TargetValue: 25,
	},

	// Progression
	{
		ID: "level_10", Category: "progression", Name: "Rising Star",
		Description: "Reach player level 10", Icon: "⭐", Rarity: RarityUncommon,
		Reward: Reward{Cash: 500, XP: 0}, TargetValue: 10,
	},
	{
		ID: "level_25", Category: "progression", Name: "Established Breeder",
		Description: "Reach player level 25", Icon: "🌠", Rarity: RarityRare,
		Reward: Reward{Cash: 2500, Gems: 15}, TargetValue: 25,
		Requires: []string{"level_10"},
	},
	{
		ID: "first_staff", Category: "progression", Name: "Help Wanted",
		Description: "Hire your first staff member", Icon: "🤝", Rarity: RarityCommon,
		Reward: Reward{XP: 100},
	},
	{
		ID: "full_roster", Category: "progression", Name: "Well Staffed",
		Description: "Employ 5 staff members at once", Icon: "👥", Rarity: RarityRare,
		Reward: Reward{Cash: 1000, XP: 500}, TargetValue: 5,
		Requires: []string{"first_staff"},
	},

	// Special
	{
		ID: "winter_champion", Category: "special", Name: "Snow Dog",
		Description: "Win a competition during snowy weather", Icon: "❄️", Rarity: RarityRare,
		Reward: Reward{Gems: 10, XP: 400}, Hidden: true,
	},
	{
		ID: "grand_champion_line", Category: "special", Name: "Dynasty",
		Description: "Earn the Grand Champion title on a bred dog", Icon: "👑", Rarity: RarityLegendary,
		Reward: Reward{Cash: 10000, Gems: 50, XP: 3000}, Hidden: true,
		Requires: []string{"first_litter", "competition_wins_50"},
	},
	{
		ID: "seasonal_regular", Category: "special", Name: "All-Weather Competitor",
		Description: "Compete in every season of the year", Icon: "🌦️", Rarity: RarityUncommon,
		Reward: Reward{Cash: 600, XP: 300}, TargetValue: 4, Repeatable: true,
	},
}

// gamedata/tournaments.go - Tournament schedule and seasonal events
package gamedata

var tournamentTable = []TournamentCircuit{
	{ID: "spring_agility_open", Name: "Spring Agility Open", Season: SeasonSpring, Discipline: "agility", Month: 4, EntryFee: 100, PrizeCash: 1500, PrizeGems: 5, MinLevel: 5},
	{ID: "spring_obedience_trial", Name: "Spring Obedience Trial", Season: SeasonSpring, Discipline: "obedience", Month: 5, EntryFee: 75, PrizeCash: 1000, PrizeGems: 3, MinLevel: 4},
	{ID: "summer_derby", Name: "Midsummer Racing Derby", Season: SeasonSummer, Discipline: "racing", Month: 7, EntryFee: 150, PrizeCash: 2500, PrizeGems: 8, MinLevel: 8},
	{ID: "summer_classic", Name: "Summer Conformation Classic", Season: SeasonSummer, Discipline: "conformation", Month: 8, EntryFee: 200, PrizeCash: 3000, PrizeGems: 10, MinLevel: 10},
	{ID: "fall_strongdog", Name: "Harvest Strongdog Pull", Season: SeasonFall, Discipline: "weight_pull", Month: 10, EntryFee: 125, PrizeCash: 2000, PrizeGems: 6, MinLevel: 8},
	{ID: "fall_agility_cup", Name: "Autumn Agility Cup", Season: SeasonFall, Discipline: "agility", Month: 11, EntryFee: 150, PrizeCash: 2200, PrizeGems: 7, MinLevel: 10},
	{ID: "winter_invitational", Name: "Winter Invitational Show", Season: SeasonWinter, Discipline: "conformation", Month: 1, EntryFee: 300, PrizeCash: 5000, PrizeGems: 20, MinLevel: 15},
	{ID: "winter_sled_trials", Name: "Frostline Pull Trials", Season: SeasonWinter, Discipline: "weight_pull", Month: 2, EntryFee: 175, PrizeCash: 2800, PrizeGems: 9, MinLevel: 12},
}

var seasonalEventTable = []SeasonalEvent{
	{ID: "spring_festival", Name: "Blossom Festival", Season: SeasonSpring, Description: "Double bond gains at the spring fairgrounds", StartMonth: 4, StartDay: 10, EndMonth: 4, EndDay: 20, Bonus: "bond_x2"},
	{ID: "summer_splash", Name: "Splash Days", Season: SeasonSummer, Description: "Heat relief: outdoor training penalty waived", StartMonth: 7, StartDay: 1, EndMonth: 7, EndDay: 14, Bonus: "no_heat_penalty"},
	{ID: "fall_harvest", Name: "Harvest Fair", Season: SeasonFall, Description: "Competition entry fees halved", StartMonth: 10, StartDay: 15, EndMonth: 10, EndDay: 31, Bonus: "half_entry_fees"},
	{ID: "winter_lights", Name: "Winter Lights Gala", Season: SeasonWinter, Description: "Bonus prestige at all shows", StartMonth: 12, StartDay: 18, EndMonth: 12, EndDay: 31, Bonus: "prestige_x1_5"},
}

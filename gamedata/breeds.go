// gamedata/breeds.go - Breed standard catalog
package gamedata

var breedStandardTable = []BreedStandard{
	{
		BreedID: "border_collie", Name: "Border Collie",
		IdealSize:         SizeRange{Min: 18, Max: 22},
		IdealProportions:  "slightly longer than tall, athletic outline",
		Categories:        CategoryWeights{Head: 15, Body: 20, Legs: 15, Coat: 10, Movement: 25, Temperament: 15},
		Characteristics:   []string{"intense gaze", "crouching gait", "boundless drive"},
		MinorFaults:       []string{"light eye color", "soft topline"},
		MajorFaults:       []string{"lack of drive", "cow hocks"},
		Disqualifications: []string{"undershot jaw"},
		MinigameModifiers: map[string]float64{"agility": 1.15, "obedience": 1.1},
	},
	{
		BreedID: "siberian_husky", Name: "Siberian Husky",
		IdealSize:         SizeRange{Min: 20, Max: 24},
		IdealProportions:  "moderately compact, balanced power and speed",
		Categories:        CategoryWeights{Head: 15, Body: 20, Legs: 20, Coat: 20, Movement: 15, Temperament: 10},
		Characteristics:   []string{"double coat", "effortless trot", "friendly outlook"},
		MinorFaults:       []string{"coarse head", "weak pasterns"},
		MajorFaults:       []string{"snapiness", "heavy bone"},
		Disqualifications: []string{"long rough coat"},
		MinigameModifiers: map[string]float64{"racing": 1.2, "weight_pull": 1.05},
	},
	{
		BreedID: "german_shepherd", Name: "German Shepherd",
		IdealSize:         SizeRange{Min: 22, Max: 26},
		IdealProportions:  "longer than tall, smooth outline with strong hindquarters",
		Categories:        CategoryWeights{Head: 15, Body: 25, Legs: 15, Coat: 10, Movement: 20, Temperament: 15},
		Characteristics:   []string{"noble carriage", "ground-covering gait", "steady nerves"},
		MinorFaults:       []string{"flat withers"},
		MajorFaults:       []string{"weak temperament", "roached back"},
		Disqualifications: []string{"cropped or hanging ears"},
		MinigameModifiers: map[string]float64{"obedience": 1.15, "weight_pull": 1.1},
	},
	{
		BreedID: "golden_retriever", Name: "Golden Retriever",
		IdealSize:         SizeRange{Min: 20, Max: 24},
		IdealProportions:  "symmetrical, powerful, active",
		Categories:        CategoryWeights{Head: 15, Body: 20, Legs: 15, Coat: 20, Movement: 15, Temperament: 15},
		Characteristics:   []string{"kind expression", "lustrous coat", "eager to please"},
		MinorFaults:       []string{"excessive coat wave"},
		MajorFaults:       []string{"shyness", "poor feathering"},
		Disqualifications: []string{"drastic deviation in height"},
		MinigameModifiers: map[string]float64{"obedience": 1.1, "agility": 1.05},
	},
	{
		BreedID: "alaskan_malamute", Name: "Alaskan Malamute",
		IdealSize:         SizeRange{Min: 23, Max: 28},
		IdealProportions:  "heavy-boned freighting build",
		Categories:        CategoryWeights{Head: 15, Body: 25, Legs: 20, Coat: 15, Movement: 10, Temperament: 15},
		Characteristics:   []string{"powerful shoulders", "plumed tail", "tireless pace"},
		MinorFaults:       []string{"narrow chest"},
		MajorFaults:       []string{"cow hocks", "soft coat texture"},
		Disqualifications: []string{"blue eyes"},
		MinigameModifiers: map[string]float64{"weight_pull": 1.25},
	},
	{
		BreedID: "jack_russell", Name: "Jack Russell Terrier",
		IdealSize:         SizeRange{Min: 10, Max: 15},
		IdealProportions:  "compact, flexible, built for speed",
		Categories:        CategoryWeights{Head: 15, Body: 15, Legs: 20, Coat: 10, Movement: 25, Temperament: 15},
		Characteristics:   []string{"fearless character", "quick turns", "endless energy"},
		MinorFaults:       []string{"broken coat patches"},
		MajorFaults:       []string{"sluggishness"},
		Disqualifications: []string{"overshot bite"},
		MinigameModifiers: map[string]float64{"agility": 1.2, "racing": 1.1},
	},
}

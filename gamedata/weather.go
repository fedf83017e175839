// gamedata/weather.go - Season and weather tables
package gamedata

// seasonTable holds per-season temperature ranges (degrees F), additive
// activity bonuses, and the weighted weather draw table. Weights sum to 1.0
// per season; slice order decides the fallback condition when floating-point
// residue leaves no match.
var seasonTable = map[Season]SeasonProfile{
	SeasonSpring: {
		TemperatureMin: 50, TemperatureMax: 70,
		TrainingBonus: 0.05, CompetitionBonus: 0.02,
		Weather: []WeatherChance{
			{Condition: WeatherSunny, Weight: 0.30},
			{Condition: WeatherCloudy, Weight: 0.25},
			{Condition: WeatherRainy, Weight: 0.25},
			{Condition: WeatherWindy, Weight: 0.10},
			{Condition: WeatherFoggy, Weight: 0.07},
			{Condition: WeatherStormy, Weight: 0.03},
		},
	},
	SeasonSummer: {
		TemperatureMin: 70, TemperatureMax: 95,
		TrainingBonus: 0.10, CompetitionBonus: 0.05,
		Weather: []WeatherChance{
			{Condition: WeatherSunny, Weight: 0.45},
			{Condition: WeatherCloudy, Weight: 0.20},
			{Condition: WeatherStormy, Weight: 0.10},
			{Condition: WeatherRainy, Weight: 0.10},
			{Condition: WeatherWindy, Weight: 0.10},
			{Condition: WeatherFoggy, Weight: 0.05},
		},
	},
	SeasonFall: {
		TemperatureMin: 45, TemperatureMax: 65,
		TrainingBonus: 0.05, CompetitionBonus: 0.02,
		Weather: []WeatherChance{
			{Condition: WeatherCloudy, Weight: 0.30},
			{Condition: WeatherSunny, Weight: 0.20},
			{Condition: WeatherRainy, Weight: 0.20},
			{Condition: WeatherWindy, Weight: 0.15},
			{Condition: WeatherFoggy, Weight: 0.10},
			{Condition: WeatherStormy, Weight: 0.05},
		},
	},
	SeasonWinter: {
		TemperatureMin: 25, TemperatureMax: 45,
		TrainingBonus: -0.05, CompetitionBonus: -0.02,
		Weather: []WeatherChance{
			{Condition: WeatherSnowy, Weight: 0.30},
			{Condition: WeatherCloudy, Weight: 0.25},
			{Condition: WeatherSunny, Weight: 0.15},
			{Condition: WeatherFoggy, Weight: 0.10},
			{Condition: WeatherWindy, Weight: 0.10},
			{Condition: WeatherRainy, Weight: 0.05},
			{Condition: WeatherStormy, Weight: 0.05},
		},
	},
}

var weatherEffectTable = map[WeatherCondition]WeatherEffect{
	WeatherSunny:  {TrainingMultiplier: 1.10, CompetitionMultiplier: 1.05, TemperatureOffset: 5, Outdoor: true},
	WeatherCloudy: {TrainingMultiplier: 1.00, CompetitionMultiplier: 1.00, TemperatureOffset: -2, Outdoor: true},
	WeatherRainy:  {TrainingMultiplier: 0.90, CompetitionMultiplier: 0.95, TemperatureOffset: -5, Outdoor: false},
	WeatherSnowy:  {TrainingMultiplier: 0.80, CompetitionMultiplier: 0.90, TemperatureOffset: -10, Outdoor: false},
	WeatherStormy: {TrainingMultiplier: 0.70, CompetitionMultiplier: 0.85, TemperatureOffset: 0, Outdoor: false},
	WeatherFoggy:  {TrainingMultiplier: 0.85, CompetitionMultiplier: 0.90, TemperatureOffset: 0, Outdoor: false},
	WeatherWindy:  {TrainingMultiplier: 0.95, CompetitionMultiplier: 0.97, TemperatureOffset: 0, Outdoor: true},
}

// engine/weather.go - Season derivation, weather rolls, activity modifiers
package engine

import (
	"fmt"
	"math"
	"time"

	"barkhaven/gamedata"
	"barkhaven/models"
)

// Weather is re-rolled when at least this much time has passed since the
// last change, or when the season flips.
const weatherRefreshInterval = 4 * time.Hour

// SeasonForDate maps a date to its season by fixed three-month bands:
// Mar-May spring, Jun-Aug summer, Sep-Nov fall, Dec-Feb winter.
func SeasonForDate(t time.Time) gamedata.Season {
	switch t.Month() {
	case time.March, time.April, time.May:
		return gamedata.SeasonSpring
	case time.June, time.July, time.August:
		return gamedata.SeasonSummer
	case time.September, time.October, time.November:
		return gamedata.SeasonFall
	default:
		return gamedata.SeasonWinter
	}
}

// SeasonStart returns the fixed calendar start of the season containing t.
// January and February belong to the winter that started the previous December.
func SeasonStart(t time.Time) time.Time {
	year := t.Year()
	var month time.Month
	switch SeasonForDate(t) {
	case gamedata.SeasonSpring:
		month = time.March
	case gamedata.SeasonSummer:
		month = time.June
	case gamedata.SeasonFall:
		month = time.September
	default:
		month = time.December
		if t.Month() != time.December {
			year--
		}
	}
	return time.Date(year, month, 1, 0, 0, 0, 0, t.Location())
}

// GenerateWeather draws a condition from the season's weighted table with a
// cumulative-weight walk. An unknown season is a data error and fails loudly.
// Floating-point residue that exhausts the table without a match falls back
// to the first condition in table order.
func (e *Engine) GenerateWeather(season gamedata.Season) (gamedata.WeatherCondition, error) {
	profile, ok := e.catalog.Seasons[season]
	if !ok {
		return "", fmt.Errorf("unknown season %q", season)
	}

	total := 0.0
	for _, wc := range profile.Weather {
		total += wc.Weight
	}

	r := e.rng.Float64() * total
	for _, wc := range profile.Weather {
		r -= wc.Weight
		if r <= 0 {
			return wc.Condition, nil
		}
	}
	return profile.Weather[0].Condition, nil
}

// Temperature picks a uniform base in the season's range and applies the
// weather's fixed offset. The result is rounded and deliberately unclamped.
func (e *Engine) Temperature(season gamedata.Season, weather gamedata.WeatherCondition) (int, error) {
	profile, ok := e.catalog.Seasons[season]
	if !ok {
		return 0, fmt.Errorf("unknown season %q", season)
	}
	effect, ok := e.catalog.Weather[weather]
	if !ok {
		return 0, fmt.Errorf("unknown weather %q", weather)
	}

	base := float64(profile.TemperatureMin) +
		e.rng.Float64()*float64(profile.TemperatureMax-profile.TemperatureMin)
	return int(math.Round(base)) + effect.TemperatureOffset, nil
}

// InitializeWeather composes a fresh weather state for the current wall-clock
// date, stamping the season's fixed calendar start.
func (e *Engine) InitializeWeather() (models.GameWeather, error) {
	now := e.now()
	season := SeasonForDate(now)

	weather, err := e.GenerateWeather(season)
	if err != nil {
		return models.GameWeather{}, err
	}
	temp, err := e.Temperature(season, weather)
	if err != nil {
		return models.GameWeather{}, err
	}

	return models.GameWeather{
		CurrentSeason:     string(season),
		CurrentWeather:    string(weather),
		Temperature:       temp,
		LastWeatherChange: now,
		SeasonStartDate:   SeasonStart(now),
	}, nil
}

// UpdateWeather re-derives the season from the wall clock and re-rolls
// weather when the season changed or the refresh interval elapsed. Otherwise
// the input is returned unchanged, so repeated calls are idempotent.
func (e *Engine) UpdateWeather(w models.GameWeather) (models.GameWeather, bool, error) {
	now := e.now()
	season := SeasonForDate(now)

	seasonChanged := string(season) != w.CurrentSeason
	stale := now.Sub(w.LastWeatherChange) >= weatherRefreshInterval
	if !seasonChanged && !stale {
		return w, false, nil
	}

	weather, err := e.GenerateWeather(season)
	if err != nil {
		return w, false, err
	}
	temp, err := e.Temperature(season, weather)
	if err != nil {
		return w, false, err
	}

	w.CurrentSeason = string(season)
	w.CurrentWeather = string(weather)
	w.Temperature = temp
	w.LastWeatherChange = now
	if seasonChanged {
		w.SeasonStartDate = SeasonStart(now)
	}
	return w, true, nil
}

// TrainingModifier combines the season's additive bonus with the weather's
// multiplicative modifier into one scalar. Unknown keys fail loudly.
func (e *Engine) TrainingModifier(season gamedata.Season, weather gamedata.WeatherCondition) (float64, error) {
	profile, ok := e.catalog.Seasons[season]
	if !ok {
		return 0, fmt.Errorf("unknown season %q", season)
	}
	effect, ok := e.catalog.Weather[weather]
	if !ok {
		return 0, fmt.Errorf("unknown weather %q", weather)
	}
	return (1 + profile.TrainingBonus) * effect.TrainingMultiplier, nil
}

// CompetitionModifier is the competition counterpart. Missing entries default
// to a 0 seasonal bonus and a 1.0 weather multiplier rather than erroring.
func (e *Engine) CompetitionModifier(season gamedata.Season, weather gamedata.WeatherCondition) float64 {
	bonus := 0.0
	if profile, ok := e.catalog.Seasons[season]; ok {
		bonus = profile.CompetitionBonus
	}
	mult := 1.0
	if effect, ok := e.catalog.Weather[weather]; ok {
		mult = effect.CompetitionMultiplier
	}
	return (1 + bonus) * mult
}

// CanDoOutdoorActivities reports whether the condition permits outdoor play.
func (e *Engine) CanDoOutdoorActivities(weather gamedata.WeatherCondition) (bool, error) {
	effect, ok := e.catalog.Weather[weather]
	if !ok {
		return false, fmt.Errorf("unknown weather %q", weather)
	}
	return effect.Outdoor, nil
}

// CurrentSeasonalEvents returns the events active on the given date.
func (e *Engine) CurrentSeasonalEvents(t time.Time) []gamedata.SeasonalEvent {
	var active []gamedata.SeasonalEvent
	month, day := int(t.Month()), t.Day()
	for _, ev := range e.catalog.SeasonalEvents {
		afterStart := month > ev.StartMonth || (month == ev.StartMonth && day >= ev.StartDay)
		beforeEnd := month < ev.EndMonth || (month == ev.EndMonth && day <= ev.EndDay)
		if afterStart && beforeEnd {
			active = append(active, ev)
		}
	}
	return active
}

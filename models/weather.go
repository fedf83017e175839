// models/weather.go
package models

import "time"

// GameWeather is the per-player weather state. Season is re-derived from the
// wall clock and weather re-rolled every >=4 elapsed hours or on season
// change; only the update path in the engine mutates it.
type GameWeather struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	UserID            uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	CurrentSeason     string    `gorm:"not null" json:"current_season"`
	CurrentWeather    string    `gorm:"not null" json:"current_weather"`
	Temperature       int       `json:"temperature"` // degrees F
	LastWeatherChange time.Time `json:"last_weather_change"`
	SeasonStartDate   time.Time `json:"season_start_date"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

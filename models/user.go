// models/user.go
package models

import (
	"time"
)

type User struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Username    string  `gorm:"uniqueIndex;not null" json:"username"`
	Email       *string `gorm:"uniqueIndex" json:"email,omitempty"`
	Password    string  `gorm:"not null" json:"-"`
	DisplayName string  `json:"display_name"`
	Avatar      string  `json:"avatar"`
	IsGuest     bool    `gorm:"default:false" json:"is_guest"`
	IsAdmin     bool    `gorm:"default:false" json:"is_admin"`
	IsBanned    bool    `gorm:"default:false" json:"is_banned"`

	// Progression
	Level       int `gorm:"default:1" json:"level"`
	XP          int `gorm:"default:0" json:"xp"`
	Cash        int `gorm:"default:500" json:"cash"`
	Gems        int `gorm:"default:0" json:"gems"`
	KennelLevel int `gorm:"default:1" json:"kennel_level"`

	// Competition stats
	TotalCompetitions int `gorm:"default:0" json:"total_competitions"`
	Wins              int `gorm:"default:0" json:"wins"`
	Losses            int `gorm:"default:0" json:"losses"`
	CurrentStreak     int `gorm:"default:0" json:"current_streak"`
	BestStreak        int `gorm:"default:0" json:"best_streak"`

	// Timestamps
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	LastLogin time.Time `json:"last_login"`

	// Relationships
	Dogs         []Dog             `gorm:"foreignKey:UserID" json:"dogs,omitempty"`
	Achievements []UserAchievement `gorm:"foreignKey:UserID" json:"achievements,omitempty"`
	Staff        []StaffMember     `gorm:"foreignKey:UserID" json:"staff,omitempty"`
}

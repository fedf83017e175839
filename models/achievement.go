// models/achievement.go
package models

import "time"

// UserAchievement is a per-player progress record against the static
// achievement catalog (gamedata package). Created when a tracked metric first
// crosses the unlock threshold; only Progress/TimesEarned move afterwards for
// repeatable achievements.
type UserAchievement struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"not null;index" json:"user_id"`
	AchievementID string    `gorm:"not null;index" json:"achievement_id"` // catalog id
	UnlockedAt    time.Time `json:"unlocked_at"`
	Progress      int       `gorm:"default:0" json:"progress"`
	TimesEarned   int       `gorm:"default:1" json:"times_earned"`
	RewardClaimed bool      `gorm:"default:false" json:"reward_claimed"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

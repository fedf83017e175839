// models/dog.go
package models

import "time"

type Dog struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	UserID         uint   `gorm:"not null;index" json:"user_id"`
	Name           string `gorm:"not null" json:"name"`
	Breed          string `gorm:"not null;index" json:"breed"` // breed standard id
	Specialization string `json:"specialization"`              // e.g. working_dog, show_dog

	// Progression
	Level          int `gorm:"default:1" json:"level"`
	XP             int `gorm:"default:0" json:"xp"`
	BondLevel      int `gorm:"default:0" json:"bond_level"`
	PrestigePoints int `gorm:"default:0" json:"prestige_points"`

	// Physical and trained attributes
	Size            int `gorm:"default:0" json:"size"`
	Strength        int `gorm:"default:0" json:"strength"`
	StrengthTrained int `gorm:"default:0" json:"strength_trained"`
	Agility         int `gorm:"default:0" json:"agility"`
	AgilityTrained  int `gorm:"default:0" json:"agility_trained"`
	Intelligence    int `gorm:"default:0" json:"intelligence"`
	Friendliness    int `gorm:"default:0" json:"friendliness"`

	// Timestamps
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Certifications []DogCertification  `gorm:"foreignKey:DogID" json:"certifications,omitempty"`
	Results        []CompetitionResult `gorm:"foreignKey:DogID" json:"results,omitempty"`
}

// DogCertification is an earned title attached to a dog. Created once the
// eligibility check passes and the player claims it; never revoked.
type DogCertification struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	DogID             uint      `gorm:"not null;index" json:"dog_id"`
	CertificationType string    `gorm:"not null;index" json:"certification_type"` // catalog id
	DisplayName       string    `json:"display_name"`
	EarnedAt          time.Time `json:"earned_at"`
}

type CompetitionResult struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	DogID     uint      `gorm:"not null;index" json:"dog_id"`
	Type      string    `gorm:"not null;index" json:"type"` // agility, racing, obedience, weight_pull, conformation
	Score     float64   `json:"score"`
	Placement int       `json:"placement"`
	Won       bool      `json:"won"`
	Season    string    `json:"season"`
	Weather   string    `json:"weather"`
	XPEarned  int       `json:"xp_earned"`
	CreatedAt time.Time `json:"created_at"`
}

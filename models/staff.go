// models/staff.go
package models

import "time"

// StaffMember is a hired instance of a gamedata.StaffTemplate. Created on
// hire with a generated name, destroyed on fire.
type StaffMember struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	UserID     uint    `gorm:"not null;index" json:"user_id"`
	StaffID    string  `gorm:"uniqueIndex;not null" json:"staff_id"` // uuid
	TemplateID string  `gorm:"not null;index" json:"template_id"`    // catalog id
	Name       string  `gorm:"not null" json:"name"`
	Role       string  `gorm:"not null" json:"role"`
	Quality    string  `gorm:"not null" json:"quality"` // basic, experienced, expert, master
	Level      int     `gorm:"default:1" json:"level"`
	Efficiency float64 `gorm:"default:1.0" json:"efficiency"` // 0.8 - 1.5
	Reliability int    `gorm:"default:100" json:"reliability"` // percent
	DailyWage  int     `gorm:"default:0" json:"daily_wage"`
	MaxDogs    int     `gorm:"default:1" json:"max_dogs"`

	TasksCompleted int `gorm:"default:0" json:"tasks_completed"`
	DaysWorked     int `gorm:"default:0" json:"days_worked"`

	HiredAt   time.Time `json:"hired_at"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Dogs this staff member is assigned to, bounded by MaxDogs.
	AssignedDogs []Dog `gorm:"many2many:staff_assignments" json:"assigned_dogs,omitempty"`
}

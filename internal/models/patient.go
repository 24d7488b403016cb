package models

import "time"

// Patient is a bookable profile owned by exactly one User.
type Patient struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name   string `gorm:"size:100;uniqueIndex:idx_patients_name;not null" json:"name"`
	DOB    string `gorm:"size:32;not null" json:"dob"`
	Gender string `gorm:"size:20;not null" json:"gender"`
	Phone  string `gorm:"size:20;not null" json:"phone"`

	UserID uint `gorm:"not null;index" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

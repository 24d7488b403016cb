package models

import "time"

type Clinic struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name    string `gorm:"size:100;uniqueIndex:idx_clinics_name;not null" json:"name"`
	Address string `gorm:"size:255;not null" json:"address"`
	Phone   string `gorm:"size:20;uniqueIndex:idx_clinics_phone;not null" json:"phone"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

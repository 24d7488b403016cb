package models

import (
	"time"

	"gorm.io/datatypes"
)

// DoctorSchedule is the bookable surface of a doctor at one clinic on one
// date. Date and slots are opaque tokens compared by equality only.
type DoctorSchedule struct {
	ID uint `gorm:"primaryKey" json:"id"`

	DoctorID uint   `gorm:"not null;index:idx_schedules_doctor_date,priority:1" json:"doctor_id"`
	Doctor   Doctor `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	ClinicID uint   `gorm:"not null;index" json:"clinic_id"`
	Clinic   Clinic `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Date  string                      `gorm:"size:32;not null;index:idx_schedules_doctor_date,priority:2" json:"date"`
	Slots datatypes.JSONSlice[string] `gorm:"type:jsonb;not null" json:"slots"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (DoctorSchedule) TableName() string {
	return "schedules"
}

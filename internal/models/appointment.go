package models

import "time"

// SlotConstraint is the unique index that makes (doctor, date, time)
// check-and-insert atomic at the storage layer.
const SlotConstraint = "idx_appointments_slot"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PatientID uint    `gorm:"not null;index" json:"patient_id"`
	Patient   Patient `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	DoctorID uint   `gorm:"not null;uniqueIndex:idx_appointments_slot,priority:1" json:"doctor_id"`
	Doctor   Doctor `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	ClinicID uint   `gorm:"not null;index" json:"clinic_id"`
	Clinic   Clinic `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	UserID uint `gorm:"not null;index" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	AppointmentDate string `gorm:"size:32;not null;uniqueIndex:idx_appointments_slot,priority:2;index:idx_appointments_datetime,priority:1" json:"appointment_date"`
	AppointmentTime string `gorm:"size:32;not null;uniqueIndex:idx_appointments_slot,priority:3;index:idx_appointments_datetime,priority:2" json:"appointment_time"`

	Status string `gorm:"size:20;default:'booked';not null" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

package dto

import (
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type PatientSummary struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type DoctorSummary struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
}

type ClinicSummary struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

type AppointmentDTO struct {
	ID              uint           `json:"id"`
	AppointmentDate string         `json:"appointment_date"`
	AppointmentTime string         `json:"appointment_time"`
	Status          string         `json:"status"`
	UserID          uint           `json:"user_id"`
	Patient         PatientSummary `json:"patient"`
	Doctor          DoctorSummary  `json:"doctor"`
	Clinic          ClinicSummary  `json:"clinic"`
	CreatedAt       time.Time      `json:"created_at"`
}

// NewAppointmentDTO expects Patient, Doctor and Clinic to be loaded; ids
// fall back to the foreign keys when they are not.
func NewAppointmentDTO(ap models.Appointment) AppointmentDTO {
	return AppointmentDTO{
		ID:              ap.ID,
		AppointmentDate: ap.AppointmentDate,
		AppointmentTime: ap.AppointmentTime,
		Status:          ap.Status,
		UserID:          ap.UserID,
		Patient: PatientSummary{
			ID:    ap.PatientID,
			Name:  ap.Patient.Name,
			Phone: ap.Patient.Phone,
		},
		Doctor: DoctorSummary{
			ID:        ap.DoctorID,
			Name:      ap.Doctor.Name,
			Specialty: ap.Doctor.Specialty,
		},
		Clinic: ClinicSummary{
			ID:      ap.ClinicID,
			Name:    ap.Clinic.Name,
			Address: ap.Clinic.Address,
		},
		CreatedAt: ap.CreatedAt,
	}
}

func NewAppointmentDTOs(list []models.Appointment) []AppointmentDTO {
	out := make([]AppointmentDTO, 0, len(list))
	for _, ap := range list {
		out = append(out, NewAppointmentDTO(ap))
	}
	return out
}

package appointment

import (
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// Candidate is the (doctor, clinic, date, time) tuple a booking asks for.
type Candidate struct {
	DoctorID uint
	ClinicID uint
	Date     string
	Time     string
}

// ===============================
// Domain Actions
// ===============================

// CandidateOf returns the booking tuple currently stored on ap.
func CandidateOf(ap *models.Appointment) Candidate {
	return Candidate{
		DoctorID: ap.DoctorID,
		ClinicID: ap.ClinicID,
		Date:     ap.AppointmentDate,
		Time:     ap.AppointmentTime,
	}
}

// NewBooking builds an appointment for an admitted candidate.
func NewBooking(c Candidate, patientID, creatorID uint) *models.Appointment {
	return &models.Appointment{
		PatientID:       patientID,
		DoctorID:        c.DoctorID,
		ClinicID:        c.ClinicID,
		UserID:          creatorID,
		AppointmentDate: c.Date,
		AppointmentTime: c.Time,
		Status:          string(InitialStatus()),
	}
}

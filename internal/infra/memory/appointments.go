package memory

import (
	"context"

	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/records"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// withParties fills the Patient, Doctor and Clinic associations.
func (s *Store) withParties(ap models.Appointment) models.Appointment {
	ap.Patient = s.st.patients[ap.PatientID]
	ap.Doctor = s.st.doctors[ap.DoctorID]
	ap.Clinic = s.st.clinics[ap.ClinicID]
	return ap
}

// stripped drops associations before the row is stored.
func stripped(ap models.Appointment) models.Appointment {
	ap.Patient = models.Patient{}
	ap.Doctor = models.Doctor{}
	ap.Clinic = models.Clinic{}
	ap.User = models.User{}
	return ap
}

func (s *Store) GetAppointment(_ context.Context, id uint) (*models.Appointment, error) {
	defer s.lock()()
	ap, ok := s.st.appointments[id]
	if !ok {
		return nil, records.ErrNotFound
	}
	ap = s.withParties(ap)
	return &ap, nil
}

func (s *Store) ListAppointments(_ context.Context, creatorID *uint) ([]models.Appointment, error) {
	defer s.lock()()
	list := filterValues(s.st.appointments, func(ap models.Appointment) bool {
		return creatorID == nil || ap.UserID == *creatorID
	})
	for i := range list {
		list[i] = s.withParties(list[i])
	}
	return list, nil
}

func (s *Store) ListBookingConflicts(
	_ context.Context,
	doctorID uint,
	date string,
	slot string,
	excludeID uint,
) ([]models.Appointment, error) {
	defer s.lock()()
	return filterValues(s.st.appointments, func(ap models.Appointment) bool {
		if ap.ID == excludeID {
			return false
		}
		return ap.DoctorID == doctorID ||
			(ap.AppointmentDate == date && ap.AppointmentTime == slot)
	}), nil
}

func (s *Store) checkAppointment(ap *models.Appointment) error {
	if _, ok := s.st.patients[ap.PatientID]; !ok {
		return records.ErrNotFound
	}
	if _, ok := s.st.doctors[ap.DoctorID]; !ok {
		return records.ErrNotFound
	}
	if _, ok := s.st.clinics[ap.ClinicID]; !ok {
		return records.ErrNotFound
	}
	if _, ok := s.st.users[ap.UserID]; !ok {
		return records.ErrNotFound
	}

	for id, other := range s.st.appointments {
		if id != ap.ID &&
			other.DoctorID == ap.DoctorID &&
			other.AppointmentDate == ap.AppointmentDate &&
			other.AppointmentTime == ap.AppointmentTime {
			return duplicate(models.SlotConstraint)
		}
	}
	return nil
}

func (s *Store) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	defer s.lock()()
	ap.ID = 0
	if err := s.checkAppointment(ap); err != nil {
		return err
	}
	if ap.Status == "" {
		ap.Status = "booked"
	}
	ap.ID = s.st.next("appointments")
	ap.CreatedAt = s.clock()
	ap.UpdatedAt = ap.CreatedAt
	s.st.appointments[ap.ID] = stripped(*ap)
	return nil
}

func (s *Store) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	defer s.lock()()
	if _, ok := s.st.appointments[ap.ID]; !ok {
		return records.ErrNotFound
	}
	if err := s.checkAppointment(ap); err != nil {
		return err
	}
	ap.UpdatedAt = s.clock()
	s.st.appointments[ap.ID] = stripped(*ap)
	return nil
}

func (s *Store) DeleteAppointment(_ context.Context, id uint) error {
	defer s.lock()()
	if _, ok := s.st.appointments[id]; !ok {
		return records.ErrNotFound
	}
	delete(s.st.appointments, id)
	return nil
}

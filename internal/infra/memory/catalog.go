package memory

import (
	"context"

	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/records"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// ===============================
// Doctors
// ===============================

func (s *Store) GetDoctor(_ context.Context, id uint) (*models.Doctor, error) {
	defer s.lock()()
	d, ok := s.st.doctors[id]
	if !ok {
		return nil, records.ErrNotFound
	}
	return &d, nil
}

func (s *Store) ListDoctors(_ context.Context) ([]models.Doctor, error) {
	defer s.lock()()
	return sortedValues(s.st.doctors), nil
}

func (s *Store) DoctorNameTaken(_ context.Context, name string, excludeID uint) (bool, error) {
	defer s.lock()()
	return s.doctorNameTaken(name, excludeID), nil
}

func (s *Store) doctorNameTaken(name string, excludeID uint) bool {
	for id, d := range s.st.doctors {
		if id != excludeID && d.Name == name {
			return true
		}
	}
	return false
}

func (s *Store) CreateDoctor(_ context.Context, d *models.Doctor) error {
	defer s.lock()()
	if s.doctorNameTaken(d.Name, 0) {
		return duplicate("idx_doctors_name")
	}
	d.ID = s.st.next("doctors")
	d.CreatedAt = s.clock()
	d.UpdatedAt = d.CreatedAt
	s.st.doctors[d.ID] = *d
	return nil
}

func (s *Store) UpdateDoctor(_ context.Context, d *models.Doctor) error {
	defer s.lock()()
	if _, ok := s.st.doctors[d.ID]; !ok {
		return records.ErrNotFound
	}
	if s.doctorNameTaken(d.Name, d.ID) {
		return duplicate("idx_doctors_name")
	}
	d.UpdatedAt = s.clock()
	s.st.doctors[d.ID] = *d
	return nil
}

// DeleteDoctor cascades to the doctor's schedules and appointments.
func (s *Store) DeleteDoctor(_ context.Context, id uint) error {
	defer s.lock()()
	if _, ok := s.st.doctors[id]; !ok {
		return records.ErrNotFound
	}
	delete(s.st.doctors, id)
	for sid, sc := range s.st.schedules {
		if sc.DoctorID == id {
			delete(s.st.schedules, sid)
		}
	}
	for aid, ap := range s.st.appointments {
		if ap.DoctorID == id {
			delete(s.st.appointments, aid)
		}
	}
	return nil
}

// ===============================
// Clinics
// ===============================

func (s *Store) GetClinic(_ context.Context, id uint) (*models.Clinic, error) {
	defer s.lock()()
	c, ok := s.st.clinics[id]
	if !ok {
		return nil, records.ErrNotFound
	}
	return &c, nil
}

func (s *Store) ListClinics(_ context.Context) ([]models.Clinic, error) {
	defer s.lock()()
	return sortedValues(s.st.clinics), nil
}

func (s *Store) ClinicNameTaken(_ context.Context, name string, excludeID uint) (bool, error) {
	defer s.lock()()
	return s.clinicTaken(name, "", excludeID) != nil, nil
}

// clinicTaken checks the name and, when phone is set, the phone index.
func (s *Store) clinicTaken(name, phone string, excludeID uint) error {
	for id, c := range s.st.clinics {
		if id == excludeID {
			continue
		}
		if c.Name == name {
			return duplicate("idx_clinics_name")
		}
		if phone != "" && c.Phone == phone {
			return duplicate("idx_clinics_phone")
		}
	}
	return nil
}

func (s *Store) CreateClinic(_ context.Context, c *models.Clinic) error {
	defer s.lock()()
	if err := s.clinicTaken(c.Name, c.Phone, 0); err != nil {
		return err
	}
	c.ID = s.st.next("clinics")
	c.CreatedAt = s.clock()
	c.UpdatedAt = c.CreatedAt
	s.st.clinics[c.ID] = *c
	return nil
}

func (s *Store) UpdateClinic(_ context.Context, c *models.Clinic) error {
	defer s.lock()()
	if _, ok := s.st.clinics[c.ID]; !ok {
		return records.ErrNotFound
	}
	if err := s.clinicTaken(c.Name, c.Phone, c.ID); err != nil {
		return err
	}
	c.UpdatedAt = s.clock()
	s.st.clinics[c.ID] = *c
	return nil
}

// DeleteClinic cascades to schedules and appointments at the clinic.
func (s *Store) DeleteClinic(_ context.Context, id uint) error {
	defer s.lock()()
	if _, ok := s.st.clinics[id]; !ok {
		return records.ErrNotFound
	}
	delete(s.st.clinics, id)
	for sid, sc := range s.st.schedules {
		if sc.ClinicID == id {
			delete(s.st.schedules, sid)
		}
	}
	for aid, ap := range s.st.appointments {
		if ap.ClinicID == id {
			delete(s.st.appointments, aid)
		}
	}
	return nil
}

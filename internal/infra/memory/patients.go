package memory

import (
	"context"

	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/records"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

func (s *Store) GetPatient(_ context.Context, id uint) (*models.Patient, error) {
	defer s.lock()()
	p, ok := s.st.patients[id]
	if !ok {
		return nil, records.ErrNotFound
	}
	return &p, nil
}

func (s *Store) ListPatients(_ context.Context, ownerID *uint) ([]models.Patient, error) {
	defer s.lock()()
	if ownerID == nil {
		return sortedValues(s.st.patients), nil
	}
	return filterValues(s.st.patients, func(p models.Patient) bool {
		return p.UserID == *ownerID
	}), nil
}

func (s *Store) PatientNameTaken(_ context.Context, name string, excludeID uint) (bool, error) {
	defer s.lock()()
	return s.patientNameTaken(name, excludeID), nil
}

func (s *Store) patientNameTaken(name string, excludeID uint) bool {
	for id, p := range s.st.patients {
		if id != excludeID && p.Name == name {
			return true
		}
	}
	return false
}

func (s *Store) CreatePatient(_ context.Context, p *models.Patient) error {
	defer s.lock()()
	if _, ok := s.st.users[p.UserID]; !ok {
		return records.ErrNotFound
	}
	if s.patientNameTaken(p.Name, 0) {
		return duplicate("idx_patients_name")
	}
	p.ID = s.st.next("patients")
	p.CreatedAt = s.clock()
	p.UpdatedAt = p.CreatedAt
	s.st.patients[p.ID] = *p
	return nil
}

func (s *Store) UpdatePatient(_ context.Context, p *models.Patient) error {
	defer s.lock()()
	if _, ok := s.st.patients[p.ID]; !ok {
		return records.ErrNotFound
	}
	if s.patientNameTaken(p.Name, p.ID) {
		return duplicate("idx_patients_name")
	}
	p.UpdatedAt = s.clock()
	s.st.patients[p.ID] = *p
	return nil
}

func (s *Store) DeletePatient(_ context.Context, id uint) error {
	defer s.lock()()
	if _, ok := s.st.patients[id]; !ok {
		return records.ErrNotFound
	}
	s.removePatient(id)
	return nil
}

func (s *Store) removePatient(id uint) {
	delete(s.st.patients, id)
	for aid, ap := range s.st.appointments {
		if ap.PatientID == id {
			delete(s.st.appointments, aid)
		}
	}
}

package memory

import (
	"context"
	"slices"

	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/records"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

func copySchedule(sc models.DoctorSchedule) *models.DoctorSchedule {
	sc.Slots = slices.Clone(sc.Slots)
	return &sc
}

func (s *Store) GetSchedule(_ context.Context, id uint) (*models.DoctorSchedule, error) {
	defer s.lock()()
	sc, ok := s.st.schedules[id]
	if !ok {
		return nil, records.ErrNotFound
	}
	return copySchedule(sc), nil
}

func (s *Store) ListSchedules(_ context.Context) ([]models.DoctorSchedule, error) {
	defer s.lock()()
	return sortedValues(s.st.schedules), nil
}

func (s *Store) ListSchedulesForDoctor(_ context.Context, doctorID uint) ([]models.DoctorSchedule, error) {
	defer s.lock()()
	return filterValues(s.st.schedules, func(sc models.DoctorSchedule) bool {
		return sc.DoctorID == doctorID
	}), nil
}

func (s *Store) firstSchedule(match func(models.DoctorSchedule) bool) (*models.DoctorSchedule, error) {
	found := filterValues(s.st.schedules, match)
	if len(found) == 0 {
		return nil, records.ErrNotFound
	}
	return copySchedule(found[0]), nil
}

func (s *Store) FirstScheduleForDoctor(_ context.Context, doctorID uint) (*models.DoctorSchedule, error) {
	defer s.lock()()
	return s.firstSchedule(func(sc models.DoctorSchedule) bool {
		return sc.DoctorID == doctorID
	})
}

func (s *Store) ScheduleForDoctorOnDate(_ context.Context, doctorID uint, date string) (*models.DoctorSchedule, error) {
	defer s.lock()()
	return s.firstSchedule(func(sc models.DoctorSchedule) bool {
		return sc.DoctorID == doctorID && sc.Date == date
	})
}

func (s *Store) checkScheduleRefs(sc *models.DoctorSchedule) error {
	if _, ok := s.st.doctors[sc.DoctorID]; !ok {
		return records.ErrNotFound
	}
	if _, ok := s.st.clinics[sc.ClinicID]; !ok {
		return records.ErrNotFound
	}
	return nil
}

func (s *Store) CreateSchedule(_ context.Context, sc *models.DoctorSchedule) error {
	defer s.lock()()
	if err := s.checkScheduleRefs(sc); err != nil {
		return err
	}
	sc.ID = s.st.next("schedules")
	sc.CreatedAt = s.clock()
	sc.UpdatedAt = sc.CreatedAt
	s.st.schedules[sc.ID] = *copySchedule(*sc)
	return nil
}

func (s *Store) UpdateSchedule(_ context.Context, sc *models.DoctorSchedule) error {
	defer s.lock()()
	if _, ok := s.st.schedules[sc.ID]; !ok {
		return records.ErrNotFound
	}
	if err := s.checkScheduleRefs(sc); err != nil {
		return err
	}
	sc.UpdatedAt = s.clock()
	s.st.schedules[sc.ID] = *copySchedule(*sc)
	return nil
}

func (s *Store) DeleteSchedule(_ context.Context, id uint) error {
	defer s.lock()()
	if _, ok := s.st.schedules[id]; !ok {
		return records.ErrNotFound
	}
	delete(s.st.schedules, id)
	return nil
}

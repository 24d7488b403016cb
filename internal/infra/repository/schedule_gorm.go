package repository

import (
	"context"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// --------------------------------------------------
// Doctor schedules
// --------------------------------------------------

func (s *GormStore) GetSchedule(ctx context.Context, id uint) (*models.DoctorSchedule, error) {
	var sc models.DoctorSchedule
	if err := s.db.WithContext(ctx).First(&sc, id).Error; err != nil {
		return nil, translate(err)
	}
	return &sc, nil
}

func (s *GormStore) ListSchedules(ctx context.Context) ([]models.DoctorSchedule, error) {
	var list []models.DoctorSchedule
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&list).Error; err != nil {
		return nil, translate(err)
	}
	return list, nil
}

func (s *GormStore) ListSchedulesForDoctor(ctx context.Context, doctorID uint) ([]models.DoctorSchedule, error) {
	var list []models.DoctorSchedule
	if err := s.db.WithContext(ctx).
		Where("doctor_id = ?", doctorID).
		Order("id ASC").
		Find(&list).Error; err != nil {
		return nil, translate(err)
	}
	return list, nil
}

func (s *GormStore) FirstScheduleForDoctor(ctx context.Context, doctorID uint) (*models.DoctorSchedule, error) {
	var sc models.DoctorSchedule
	if err := s.db.WithContext(ctx).
		Where("doctor_id = ?", doctorID).
		Order("id ASC").
		First(&sc).Error; err != nil {
		return nil, translate(err)
	}
	return &sc, nil
}

func (s *GormStore) ScheduleForDoctorOnDate(
	ctx context.Context,
	doctorID uint,
	date string,
) (*models.DoctorSchedule, error) {

	var sc models.DoctorSchedule
	if err := s.db.WithContext(ctx).
		Where("doctor_id = ? AND date = ?", doctorID, date).
		Order("id ASC").
		First(&sc).Error; err != nil {
		return nil, translate(err)
	}
	return &sc, nil
}

func (s *GormStore) CreateSchedule(ctx context.Context, sc *models.DoctorSchedule) error {
	return translate(s.db.WithContext(ctx).Create(sc).Error)
}

func (s *GormStore) UpdateSchedule(ctx context.Context, sc *models.DoctorSchedule) error {
	return translate(s.db.WithContext(ctx).Save(sc).Error)
}

func (s *GormStore) DeleteSchedule(ctx context.Context, id uint) error {
	return s.deleteByID(ctx, &models.DoctorSchedule{}, id)
}

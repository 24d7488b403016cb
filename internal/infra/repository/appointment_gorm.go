package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (s *GormStore) withParties(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Preload("Patient").
		Preload("Doctor").
		Preload("Clinic")
}

func (s *GormStore) GetAppointment(ctx context.Context, id uint) (*models.Appointment, error) {
	var ap models.Appointment
	if err := s.withParties(ctx).First(&ap, id).Error; err != nil {
		return nil, translate(err)
	}
	return &ap, nil
}

func (s *GormStore) ListAppointments(ctx context.Context, creatorID *uint) ([]models.Appointment, error) {
	q := s.withParties(ctx).Order("id ASC")
	if creatorID != nil {
		q = q.Where("user_id = ?", *creatorID)
	}

	var apps []models.Appointment
	if err := q.Find(&apps).Error; err != nil {
		return nil, translate(err)
	}
	return apps, nil
}

// ListBookingConflicts locks the returned rows for the rest of the
// transaction. Both branches of the OR are served by the slot and
// datetime indexes.
func (s *GormStore) ListBookingConflicts(
	ctx context.Context,
	doctorID uint,
	date string,
	slot string,
	excludeID uint,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := s.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id <> ?", excludeID).
		Where(
			s.db.Where("doctor_id = ?", doctorID).
				Or("appointment_date = ? AND appointment_time = ?", date, slot),
		).
		Find(&apps).Error; err != nil {
		return nil, translate(err)
	}
	return apps, nil
}

func (s *GormStore) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	return translate(s.db.WithContext(ctx).Omit(clause.Associations).Create(ap).Error)
}

func (s *GormStore) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	return translate(s.db.WithContext(ctx).Omit(clause.Associations).Save(ap).Error)
}

func (s *GormStore) DeleteAppointment(ctx context.Context, id uint) error {
	return s.deleteByID(ctx, &models.Appointment{}, id)
}

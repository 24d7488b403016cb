package repository

import (
	"context"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// --------------------------------------------------
// Patient
// --------------------------------------------------

func (s *GormStore) GetPatient(ctx context.Context, id uint) (*models.Patient, error) {
	var p models.Patient
	if err := s.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (s *GormStore) ListPatients(ctx context.Context, ownerID *uint) ([]models.Patient, error) {
	q := s.db.WithContext(ctx).Order("id ASC")
	if ownerID != nil {
		q = q.Where("user_id = ?", *ownerID)
	}

	var patients []models.Patient
	if err := q.Find(&patients).Error; err != nil {
		return nil, translate(err)
	}
	return patients, nil
}

func (s *GormStore) PatientNameTaken(ctx context.Context, name string, excludeID uint) (bool, error) {
	return s.nameTaken(ctx, &models.Patient{}, name, excludeID)
}

func (s *GormStore) CreatePatient(ctx context.Context, p *models.Patient) error {
	return translate(s.db.WithContext(ctx).Create(p).Error)
}

func (s *GormStore) UpdatePatient(ctx context.Context, p *models.Patient) error {
	return translate(s.db.WithContext(ctx).Save(p).Error)
}

func (s *GormStore) DeletePatient(ctx context.Context, id uint) error {
	return s.deleteByID(ctx, &models.Patient{}, id)
}

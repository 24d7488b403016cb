package repository

import (
	"context"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// --------------------------------------------------
// Doctor
// --------------------------------------------------

func (s *GormStore) GetDoctor(ctx context.Context, id uint) (*models.Doctor, error) {
	var d models.Doctor
	if err := s.db.WithContext(ctx).First(&d, id).Error; err != nil {
		return nil, translate(err)
	}
	return &d, nil
}

func (s *GormStore) ListDoctors(ctx context.Context) ([]models.Doctor, error) {
	var doctors []models.Doctor
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&doctors).Error; err != nil {
		return nil, translate(err)
	}
	return doctors, nil
}

func (s *GormStore) DoctorNameTaken(ctx context.Context, name string, excludeID uint) (bool, error) {
	return s.nameTaken(ctx, &models.Doctor{}, name, excludeID)
}

func (s *GormStore) CreateDoctor(ctx context.Context, d *models.Doctor) error {
	return translate(s.db.WithContext(ctx).Create(d).Error)
}

func (s *GormStore) UpdateDoctor(ctx context.Context, d *models.Doctor) error {
	return translate(s.db.WithContext(ctx).Save(d).Error)
}

func (s *GormStore) DeleteDoctor(ctx context.Context, id uint) error {
	return s.deleteByID(ctx, &models.Doctor{}, id)
}

// --------------------------------------------------
// Clinic
// --------------------------------------------------

func (s *GormStore) GetClinic(ctx context.Context, id uint) (*models.Clinic, error) {
	var c models.Clinic
	if err := s.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (s *GormStore) ListClinics(ctx context.Context) ([]models.Clinic, error) {
	var clinics []models.Clinic
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&clinics).Error; err != nil {
		return nil, translate(err)
	}
	return clinics, nil
}

func (s *GormStore) ClinicNameTaken(ctx context.Context, name string, excludeID uint) (bool, error) {
	return s.nameTaken(ctx, &models.Clinic{}, name, excludeID)
}

func (s *GormStore) CreateClinic(ctx context.Context, c *models.Clinic) error {
	return translate(s.db.WithContext(ctx).Create(c).Error)
}

func (s *GormStore) UpdateClinic(ctx context.Context, c *models.Clinic) error {
	return translate(s.db.WithContext(ctx).Save(c).Error)
}

func (s *GormStore) DeleteClinic(ctx context.Context, id uint) error {
	return s.deleteByID(ctx, &models.Clinic{}, id)
}

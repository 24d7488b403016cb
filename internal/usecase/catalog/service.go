// Package catalog manages doctors and clinics. Reads are open to anyone,
// writes are reserved to admins. Missing records are reported before the
// role check.
package catalog

import (
	"context"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/access"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/records"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type Repository interface {
	records.DoctorRepository
	records.ClinicRepository
}

type Service struct {
	repo  Repository
	audit *audit.Dispatcher
}

func NewService(repo Repository, audit *audit.Dispatcher) *Service {
	return &Service{repo: repo, audit: audit}
}

func badRequest(err error) error {
	return httperr.ErrBadRequest("invalid_request", "%s", err.Error())
}

func (s *Service) record(p access.Principal, action, entity string, id uint) {
	s.audit.Dispatch(audit.Event{
		UserID:   &p.ID,
		Action:   action,
		Entity:   entity,
		EntityID: &id,
	})
}

// ======================================================
// DOCTORS
// ======================================================

func doctorNotFound(err error, id uint) error {
	return httperr.NotFoundOr(err, "doctor_not_found", "Doctor with ID: %d, not found!", id)
}

func doctorExists(name string) error {
	return httperr.ErrConflict("doctor_exists", "Doctor with name: %s already exists", name)
}

func (s *Service) CreateDoctor(ctx context.Context, p access.Principal, in DoctorInput) (*models.Doctor, error) {
	if err := access.RequireAdmin(p, "Only admins can create doctors"); err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, badRequest(err)
	}

	taken, err := s.repo.DoctorNameTaken(ctx, in.Name, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, doctorExists(in.Name)
	}

	d := &models.Doctor{Name: in.Name, Specialty: in.Specialty}
	if err := s.repo.CreateDoctor(ctx, d); err != nil {
		return nil, httperr.ConflictOr(err, "doctor_exists", "Doctor with name: %s already exists", in.Name)
	}

	s.record(p, "doctor_created", "doctor", d.ID)
	return d, nil
}

func (s *Service) GetDoctor(ctx context.Context, id uint) (*models.Doctor, error) {
	d, err := s.repo.GetDoctor(ctx, id)
	if err != nil {
		return nil, doctorNotFound(err, id)
	}
	return d, nil
}

func (s *Service) ListDoctors(ctx context.Context) ([]models.Doctor, error) {
	return s.repo.ListDoctors(ctx)
}

func (s *Service) UpdateDoctor(ctx context.Context, p access.Principal, id uint, in DoctorUpdate) (*models.Doctor, error) {
	d, err := s.repo.GetDoctor(ctx, id)
	if err != nil {
		return nil, doctorNotFound(err, id)
	}
	if err := access.RequireAdmin(p, "Only admins can update doctors"); err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, badRequest(err)
	}

	in.Apply(d)

	taken, err := s.repo.DoctorNameTaken(ctx, d.Name, d.ID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, doctorExists(d.Name)
	}

	if err := s.repo.UpdateDoctor(ctx, d); err != nil {
		return nil, httperr.ConflictOr(err, "doctor_exists", "Doctor with name: %s already exists", d.Name)
	}

	s.record(p, "doctor_updated", "doctor", d.ID)
	return d, nil
}

// DeleteDoctor also removes the doctor's schedules and appointments.
func (s *Service) DeleteDoctor(ctx context.Context, p access.Principal, id uint) error {
	if _, err := s.repo.GetDoctor(ctx, id); err != nil {
		return doctorNotFound(err, id)
	}
	if err := access.RequireAdmin(p, "Only admins can delete doctors"); err != nil {
		return err
	}
	if err := s.repo.DeleteDoctor(ctx, id); err != nil {
		return doctorNotFound(err, id)
	}

	s.record(p, "doctor_deleted", "doctor", id)
	return nil
}

// ======================================================
// CLINICS
// ======================================================

func clinicNotFound(err error, id uint) error {
	return httperr.NotFoundOr(err, "clinic_not_found", "Clinic with ID: %d, not found!", id)
}

func clinicExists(err error, name string) error {
	return httperr.ConflictOr(err, "clinic_exists", "Clinic with name or phone of %s already exists", name)
}

func (s *Service) CreateClinic(ctx context.Context, p access.Principal, in ClinicInput) (*models.Clinic, error) {
	if err := access.RequireAdmin(p, "Only admins can create clinics"); err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, badRequest(err)
	}

	taken, err := s.repo.ClinicNameTaken(ctx, in.Name, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, httperr.ErrConflict("clinic_exists", "Clinic with name: %s already exists", in.Name)
	}

	c := &models.Clinic{Name: in.Name, Address: in.Address, Phone: in.Phone}
	if err := s.repo.CreateClinic(ctx, c); err != nil {
		return nil, clinicExists(err, in.Name)
	}

	s.record(p, "clinic_created", "clinic", c.ID)
	return c, nil
}

func (s *Service) GetClinic(ctx context.Context, id uint) (*models.Clinic, error) {
	c, err := s.repo.GetClinic(ctx, id)
	if err != nil {
		return nil, clinicNotFound(err, id)
	}
	return c, nil
}

func (s *Service) ListClinics(ctx context.Context) ([]models.Clinic, error) {
	return s.repo.ListClinics(ctx)
}

func (s *Service) UpdateClinic(ctx context.Context, p access.Principal, id uint, in ClinicUpdate) (*models.Clinic, error) {
	c, err := s.repo.GetClinic(ctx, id)
	if err != nil {
		return nil, clinicNotFound(err, id)
	}
	if err := access.RequireAdmin(p, "Only admins can update clinics"); err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, badRequest(err)
	}

	in.Apply(c)

	taken, err := s.repo.ClinicNameTaken(ctx, c.Name, c.ID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, httperr.ErrConflict("clinic_exists", "Clinic with name: %s already exists", c.Name)
	}

	if err := s.repo.UpdateClinic(ctx, c); err != nil {
		return nil, clinicExists(err, c.Name)
	}

	s.record(p, "clinic_updated", "clinic", c.ID)
	return c, nil
}

func (s *Service) DeleteClinic(ctx context.Context, p access.Principal, id uint) error {
	if _, err := s.repo.GetClinic(ctx, id); err != nil {
		return clinicNotFound(err, id)
	}
	if err := access.RequireAdmin(p, "Only admins can delete clinics"); err != nil {
		return err
	}
	if err := s.repo.DeleteClinic(ctx, id); err != nil {
		return clinicNotFound(err, id)
	}

	s.record(p, "clinic_deleted", "clinic", id)
	return nil
}

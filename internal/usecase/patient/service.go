package patient

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/access"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/records"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/validators"
)

type CreateInput struct {
	Name   string `json:"name"`
	DOB    string `json:"dob"`
	Gender string `json:"gender"`
	Phone  string `json:"phone"`
}

func (in CreateInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Name, validators.NameRules...),
		validation.Field(&in.DOB, validators.TokenRules...),
		validation.Field(&in.Gender, validators.TokenRules...),
		validation.Field(&in.Phone, validators.PhoneRules...),
	)
}

type UpdateInput struct {
	Name   *string `json:"name"`
	DOB    *string `json:"dob"`
	Gender *string `json:"gender"`
	Phone  *string `json:"phone"`
}

func (in UpdateInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Name, validation.NilOrNotEmpty, validation.Length(1, 100)),
		validation.Field(&in.DOB, validation.NilOrNotEmpty, validation.Length(1, 32)),
		validation.Field(&in.Gender, validation.NilOrNotEmpty, validation.Length(1, 32)),
		validation.Field(&in.Phone, validation.NilOrNotEmpty, validation.Length(3, 20)),
	)
}

func (in UpdateInput) Apply(p *models.Patient) {
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.DOB != nil {
		p.DOB = *in.DOB
	}
	if in.Gender != nil {
		p.Gender = *in.Gender
	}
	if in.Phone != nil {
		p.Phone = *in.Phone
	}
}

// Service exposes patient profiles. Every patient belongs to the user who
// created it; non-admins only ever see their own.
type Service struct {
	repo  records.PatientRepository
	audit *audit.Dispatcher
}

func NewService(repo records.PatientRepository, audit *audit.Dispatcher) *Service {
	return &Service{repo: repo, audit: audit}
}

func notFound(err error, id uint) error {
	return httperr.NotFoundOr(err, "patient_not_found", "Patient with ID: %d, not found!", id)
}

func nameTaken(name string) error {
	return httperr.ErrConflict("patient_exists", "The information of '%s' has been successfully added already.", name)
}

func (s *Service) Create(ctx context.Context, p access.Principal, in CreateInput) (*models.Patient, error) {
	if err := in.Validate(); err != nil {
		return nil, httperr.ErrBadRequest("invalid_request", "%s", err.Error())
	}

	taken, err := s.repo.PatientNameTaken(ctx, in.Name, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, nameTaken(in.Name)
	}

	pt := &models.Patient{
		Name:   in.Name,
		DOB:    in.DOB,
		Gender: in.Gender,
		Phone:  in.Phone,
		UserID: p.ID,
	}
	if err := s.repo.CreatePatient(ctx, pt); err != nil {
		return nil, httperr.ConflictOr(err, "patient_exists", "The information of '%s' has been successfully added already.", in.Name)
	}

	s.audit.Dispatch(audit.Event{UserID: &p.ID, Action: "patient_created", Entity: "patient", EntityID: &pt.ID})
	return pt, nil
}

func (s *Service) Get(ctx context.Context, p access.Principal, id uint) (*models.Patient, error) {
	pt, err := s.repo.GetPatient(ctx, id)
	if err != nil {
		return nil, notFound(err, id)
	}
	if err := access.CanAccessPatient(p, pt, "view"); err != nil {
		return nil, err
	}
	return pt, nil
}

func (s *Service) List(ctx context.Context, p access.Principal) ([]models.Patient, error) {
	return s.repo.ListPatients(ctx, access.OwnerScope(p))
}

func (s *Service) Update(ctx context.Context, p access.Principal, id uint, in UpdateInput) (*models.Patient, error) {
	pt, err := s.repo.GetPatient(ctx, id)
	if err != nil {
		return nil, notFound(err, id)
	}
	if err := access.CanAccessPatient(p, pt, "update"); err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, httperr.ErrBadRequest("invalid_request", "%s", err.Error())
	}

	in.Apply(pt)

	taken, err := s.repo.PatientNameTaken(ctx, pt.Name, pt.ID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, nameTaken(pt.Name)
	}

	if err := s.repo.UpdatePatient(ctx, pt); err != nil {
		return nil, httperr.ConflictOr(err, "patient_exists", "The information of '%s' has been successfully added already.", pt.Name)
	}

	s.audit.Dispatch(audit.Event{UserID: &p.ID, Action: "patient_updated", Entity: "patient", EntityID: &pt.ID})
	return pt, nil
}

// Delete also removes the patient's appointments.
func (s *Service) Delete(ctx context.Context, p access.Principal, id uint) error {
	pt, err := s.repo.GetPatient(ctx, id)
	if err != nil {
		return notFound(err, id)
	}
	if err := access.CanAccessPatient(p, pt, "delete"); err != nil {
		return err
	}
	if err := s.repo.DeletePatient(ctx, id); err != nil {
		return notFound(err, id)
	}

	s.audit.Dispatch(audit.Event{UserID: &p.ID, Action: "patient_deleted", Entity: "patient", EntityID: &id})
	return nil
}

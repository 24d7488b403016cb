package schedule

import (
	"context"
	"slices"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gorm.io/datatypes"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/access"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/records"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateInput struct {
	DoctorID uint     `json:"doctor_id"`
	ClinicID uint     `json:"clinic_id"`
	Date     string   `json:"date"`
	Slots    []string `json:"slots"`
}

func (in CreateInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.DoctorID, validation.Required),
		validation.Field(&in.ClinicID, validation.Required),
		validation.Field(&in.Date, validators.TokenRules...),
		validation.Field(&in.Slots, validation.Required, validators.Slots),
	)
}

type UpdateInput struct {
	ClinicID *uint    `json:"clinic_id"`
	Date     *string  `json:"date"`
	Slots    []string `json:"slots"`
}

func (in UpdateInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.ClinicID, validation.NilOrNotEmpty),
		validation.Field(&in.Date, validation.NilOrNotEmpty, validation.Length(1, 32)),
		validation.Field(&in.Slots, validators.Slots),
	)
}

func (in UpdateInput) Apply(s *models.DoctorSchedule) {
	if in.ClinicID != nil {
		s.ClinicID = *in.ClinicID
	}
	if in.Date != nil {
		s.Date = *in.Date
	}
	if in.Slots != nil {
		s.Slots = datatypes.JSONSlice[string](slices.Clone(in.Slots))
	}
}

// ======================================================
// SERVICE
// ======================================================

type Repository interface {
	records.ScheduleRepository
	GetDoctor(ctx context.Context, id uint) (*models.Doctor, error)
	GetClinic(ctx context.Context, id uint) (*models.Clinic, error)
}

type Service struct {
	repo  Repository
	audit *audit.Dispatcher
}

func NewService(repo Repository, audit *audit.Dispatcher) *Service {
	return &Service{repo: repo, audit: audit}
}

func scheduleNotFound(err error, id uint) error {
	return httperr.NotFoundOr(err, "schedule_not_found", "Doctor Schedule with ID: %d, not found!", id)
}

func (s *Service) Create(ctx context.Context, p access.Principal, in CreateInput) (*models.DoctorSchedule, error) {
	if err := access.RequireAdmin(p, "Only admin can add doctor schedules."); err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, httperr.ErrBadRequest("invalid_request", "%s", err.Error())
	}

	doctor, err := s.repo.GetDoctor(ctx, in.DoctorID)
	if err != nil {
		return nil, httperr.NotFoundOr(err, "doctor_not_found", "Doctor with ID: %d, not found!", in.DoctorID)
	}
	if _, err := s.repo.GetClinic(ctx, in.ClinicID); err != nil {
		return nil, httperr.NotFoundOr(err, "clinic_not_found", "Clinic with ID: %d, not found!", in.ClinicID)
	}

	existing, err := s.repo.ListSchedulesForDoctor(ctx, in.DoctorID)
	if err != nil {
		return nil, err
	}
	if slices.ContainsFunc(existing, func(sc models.DoctorSchedule) bool {
		return sc.Date == in.Date && slices.Equal([]string(sc.Slots), in.Slots)
	}) {
		return nil, httperr.ErrConflict("schedule_exists", "%s has already been scheduled for this timeframe.", doctor.Name)
	}

	sc := &models.DoctorSchedule{
		DoctorID: in.DoctorID,
		ClinicID: in.ClinicID,
		Date:     in.Date,
		Slots:    datatypes.JSONSlice[string](slices.Clone(in.Slots)),
	}
	if err := s.repo.CreateSchedule(ctx, sc); err != nil {
		return nil, err
	}

	s.audit.Dispatch(audit.Event{
		UserID:   &p.ID,
		Action:   "schedule_created",
		Entity:   "schedule",
		EntityID: &sc.ID,
		Metadata: map[string]any{"doctor_id": sc.DoctorID, "date": sc.Date},
	})
	return sc, nil
}

func (s *Service) List(ctx context.Context) ([]models.DoctorSchedule, error) {
	return s.repo.ListSchedules(ctx)
}

// ListForDoctor reports NotFound when the doctor has no schedule at all.
func (s *Service) ListForDoctor(ctx context.Context, doctorID uint) ([]models.DoctorSchedule, error) {
	list, err := s.repo.ListSchedulesForDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, httperr.ErrNotFound("schedule_not_found", "Doctor with ID: %d, not found!", doctorID)
	}
	return list, nil
}

func (s *Service) Update(ctx context.Context, p access.Principal, id uint, in UpdateInput) (*models.DoctorSchedule, error) {
	sc, err := s.repo.GetSchedule(ctx, id)
	if err != nil {
		return nil, scheduleNotFound(err, id)
	}
	if err := access.RequireAdmin(p, "Only admin can update doctor schedule."); err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, httperr.ErrBadRequest("invalid_request", "%s", err.Error())
	}

	if in.ClinicID != nil {
		if _, err := s.repo.GetClinic(ctx, *in.ClinicID); err != nil {
			return nil, httperr.NotFoundOr(err, "clinic_not_found", "Clinic with ID: %d, not found!", *in.ClinicID)
		}
	}

	in.Apply(sc)
	if err := s.repo.UpdateSchedule(ctx, sc); err != nil {
		return nil, scheduleNotFound(err, id)
	}

	s.audit.Dispatch(audit.Event{
		UserID:   &p.ID,
		Action:   "schedule_updated",
		Entity:   "schedule",
		EntityID: &sc.ID,
	})
	return sc, nil
}

func (s *Service) Delete(ctx context.Context, p access.Principal, id uint) error {
	if _, err := s.repo.GetSchedule(ctx, id); err != nil {
		return scheduleNotFound(err, id)
	}
	if err := access.RequireAdmin(p, "Only admin can delete doctor schedule."); err != nil {
		return err
	}
	if err := s.repo.DeleteSchedule(ctx, id); err != nil {
		return scheduleNotFound(err, id)
	}

	s.audit.Dispatch(audit.Event{
		UserID:   &p.ID,
		Action:   "schedule_deleted",
		Entity:   "schedule",
		EntityID: &id,
	})
	return nil
}

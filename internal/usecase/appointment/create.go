package appointment

import (
	"context"
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/access"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/records"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	PatientID       uint   `json:"patient_id"`
	DoctorID        uint   `json:"doctor_id"`
	ClinicID        uint   `json:"clinic_id"`
	AppointmentDate string `json:"appointment_date"`
	AppointmentTime string `json:"appointment_time"`
}

func (in CreateAppointmentInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.PatientID, validation.Required),
		validation.Field(&in.DoctorID, validation.Required),
		validation.Field(&in.ClinicID, validation.Required),
		validation.Field(&in.AppointmentDate, validators.TokenRules...),
		validation.Field(&in.AppointmentTime, validators.TokenRules...),
	)
}

func (in CreateAppointmentInput) candidate() domain.Candidate {
	return domain.Candidate{
		DoctorID: in.DoctorID,
		ClinicID: in.ClinicID,
		Date:     in.AppointmentDate,
		Time:     in.AppointmentTime,
	}
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	Deps
}

func NewCreateAppointment(deps Deps) *CreateAppointment {
	return &CreateAppointment{Deps: deps}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	p access.Principal,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	if err := in.Validate(); err != nil {
		return nil, httperr.ErrBadRequest("invalid_request", "%s", err.Error())
	}

	c := in.candidate()

	release, err := holdSlot(ctx, uc.Locker, c)
	if err != nil {
		return nil, err
	}
	defer release()

	var (
		ap   *models.Appointment
		prty parties
	)

	err = uc.Store.Transaction(ctx, func(tx records.Store) error {
		// --------------------------------------------------
		// Referenced entities
		// --------------------------------------------------
		patient, err := tx.GetPatient(ctx, in.PatientID)
		if err != nil {
			return httperr.NotFoundOr(err, "patient_not_found", "Patient with ID: %d not found", in.PatientID)
		}
		doctor, err := tx.GetDoctor(ctx, in.DoctorID)
		if err != nil {
			return httperr.NotFoundOr(err, "doctor_not_found", "Doctor with ID: %d not found", in.DoctorID)
		}
		clinic, err := tx.GetClinic(ctx, in.ClinicID)
		if err != nil {
			return httperr.NotFoundOr(err, "clinic_not_found", "Clinic with ID: %d not found", in.ClinicID)
		}
		prty = parties{patient: *patient, doctor: *doctor, clinic: *clinic}

		// --------------------------------------------------
		// Schedule and conflicts
		// --------------------------------------------------
		if err := admit(ctx, tx, uc.Opts, c, prty, 0); err != nil {
			return err
		}

		// --------------------------------------------------
		// Persist
		// --------------------------------------------------
		ap = domain.NewBooking(c, in.PatientID, p.ID)
		return tx.CreateAppointment(ctx, ap)
	})
	if err != nil {
		if errors.Is(err, records.ErrDuplicate) {
			return nil, doubleBooked(prty.doctor.Name)
		}
		return nil, err
	}

	ap.Patient, ap.Doctor, ap.Clinic = prty.patient, prty.doctor, prty.clinic

	uc.Audit.Dispatch(audit.Event{
		UserID:   &p.ID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"doctor_id": ap.DoctorID,
			"date":      ap.AppointmentDate,
			"time":      ap.AppointmentTime,
		},
	})

	return ap, nil
}

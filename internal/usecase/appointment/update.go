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
)

// ======================================================
// INPUT
// ======================================================

// UpdateAppointmentInput is a sparse update: nil fields keep their value.
type UpdateAppointmentInput struct {
	PatientID       *uint   `json:"patient_id"`
	DoctorID        *uint   `json:"doctor_id"`
	ClinicID        *uint   `json:"clinic_id"`
	AppointmentDate *string `json:"appointment_date"`
	AppointmentTime *string `json:"appointment_time"`
	Status          *string `json:"status"`
}

func (in UpdateAppointmentInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.AppointmentDate, validation.NilOrNotEmpty, validation.Length(1, 32)),
		validation.Field(&in.AppointmentTime, validation.NilOrNotEmpty, validation.Length(1, 32)),
		validation.Field(&in.Status, validation.NilOrNotEmpty, validation.Length(1, 20)),
	)
}

// Apply merges the present fields into ap.
func (in UpdateAppointmentInput) Apply(ap *models.Appointment) {
	if in.PatientID != nil {
		ap.PatientID = *in.PatientID
	}
	if in.DoctorID != nil {
		ap.DoctorID = *in.DoctorID
	}
	if in.ClinicID != nil {
		ap.ClinicID = *in.ClinicID
	}
	if in.AppointmentDate != nil {
		ap.AppointmentDate = *in.AppointmentDate
	}
	if in.AppointmentTime != nil {
		ap.AppointmentTime = *in.AppointmentTime
	}
	if in.Status != nil {
		ap.Status = *in.Status
	}
}

// ======================================================
// USE CASE
// ======================================================

type UpdateAppointment struct {
	Deps
}

func NewUpdateAppointment(deps Deps) *UpdateAppointment {
	return &UpdateAppointment{Deps: deps}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	p access.Principal,
	id uint,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	if err := in.Validate(); err != nil {
		return nil, httperr.ErrBadRequest("invalid_request", "%s", err.Error())
	}

	// --------------------------------------------------
	// Existence, then ownership
	// --------------------------------------------------
	current, err := uc.Store.GetAppointment(ctx, id)
	if err != nil {
		return nil, notFoundAppointment(err, id)
	}
	if err := access.CanAccessAppointment(p, current, "update"); err != nil {
		return nil, err
	}

	merged := *current
	in.Apply(&merged)
	c := domain.CandidateOf(&merged)

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
		ap, err = tx.GetAppointment(ctx, id)
		if err != nil {
			return notFoundAppointment(err, id)
		}
		// Ownership may have changed since the first read.
		if err := access.CanAccessAppointment(p, ap, "update"); err != nil {
			return err
		}

		prty = parties{patient: ap.Patient, doctor: ap.Doctor, clinic: ap.Clinic}

		// --------------------------------------------------
		// Re-resolve changed references
		// --------------------------------------------------
		if in.PatientID != nil {
			patient, err := tx.GetPatient(ctx, *in.PatientID)
			if err != nil {
				return invalidReference(err, "patient_id")
			}
			prty.patient = *patient
		}
		if in.DoctorID != nil {
			doctor, err := tx.GetDoctor(ctx, *in.DoctorID)
			if err != nil {
				return invalidReference(err, "doctor_id")
			}
			prty.doctor = *doctor
		}
		if in.ClinicID != nil {
			clinic, err := tx.GetClinic(ctx, *in.ClinicID)
			if err != nil {
				return invalidReference(err, "clinic_id")
			}
			prty.clinic = *clinic
		}

		in.Apply(ap)

		if err := admit(ctx, tx, uc.Opts, domain.CandidateOf(ap), prty, ap.ID); err != nil {
			return err
		}

		return tx.UpdateAppointment(ctx, ap)
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
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: in,
	})

	return ap, nil
}

func invalidReference(err error, field string) error {
	if errors.Is(err, records.ErrNotFound) {
		return httperr.ErrBadRequest("invalid_"+field, "Invalid %s", field)
	}
	return err
}

package appointment

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/records"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/infra/lock"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// ======================================================
// SHARED DEPENDENCIES
// ======================================================

// Options selects the booking rules in force.
type Options struct {
	Rule   domain.DoubleBookingRule
	Lookup domain.ScheduleLookup
}

type Deps struct {
	Store  records.Store
	Locker lock.Locker
	Audit  *audit.Dispatcher
	Opts   Options
}

// ======================================================
// ADMISSION
// ======================================================

// parties are the resolved entities a candidate refers to.
type parties struct {
	patient models.Patient
	doctor  models.Doctor
	clinic  models.Clinic
}

// admit runs the schedule lookup and the conflict detector for c inside
// tx. selfID is the appointment being updated, 0 on create.
func admit(
	ctx context.Context,
	tx records.Store,
	opts Options,
	c domain.Candidate,
	p parties,
	selfID uint,
) error {

	schedule, err := domain.ScheduleFor(ctx, tx, opts.Lookup, c.DoctorID, c.Date)
	if err != nil && !errors.Is(err, records.ErrNotFound) {
		return err
	}

	existing, err := tx.ListBookingConflicts(ctx, c.DoctorID, c.Date, c.Time, selfID)
	if err != nil {
		return err
	}

	return rejectionError(
		domain.CheckAdmissibility(c, schedule, existing, opts.Rule),
		p, schedule,
	)
}

func rejectionError(err error, p parties, schedule *models.DoctorSchedule) error {
	var rej domain.Rejection
	if !errors.As(err, &rej) {
		return err
	}

	name := p.doctor.Name
	switch rej.Reason {
	case domain.ReasonNoSchedule:
		return httperr.ErrNotFound("booking_unavailable", "Booking for %s is currently unavailable", name)
	case domain.ReasonDoubleBooked:
		return doubleBooked(name)
	case domain.ReasonDateMismatch:
		return httperr.ErrConflict(string(rej.Reason), "%s does not have a schedule for this date: %s.", name, schedule.Date)
	case domain.ReasonSlotMismatch:
		return httperr.ErrConflict(string(rej.Reason), "%s has time schedules for these times: %v.", name, []string(schedule.Slots))
	case domain.ReasonClinicMismatch:
		return httperr.ErrConflict(string(rej.Reason), "%s does not have a schedule at %s.", name, p.clinic.Name)
	}
	return err
}

func doubleBooked(doctorName string) error {
	return httperr.ErrConflict(string(domain.ReasonDoubleBooked), "%s is already booked for this timeframe", doctorName)
}

// holdSlot takes the booking lock for c.
func holdSlot(ctx context.Context, l lock.Locker, c domain.Candidate) (func(), error) {
	release, err := l.Acquire(ctx, lock.BookingKey(c.DoctorID, c.Date, c.Time))
	if errors.Is(err, lock.ErrNotAcquired) {
		return nil, httperr.ErrConflict("slot_busy", "Another booking for this time slot is in progress, try again")
	}
	return release, err
}

func notFoundAppointment(err error, id uint) error {
	return httperr.NotFoundOr(err, "appointment_not_found", "Appointment with ID: %d, not found!", id)
}

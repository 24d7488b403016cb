package appointment

import (
	"fmt"
	"slices"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// DoubleBookingRule names the predicate used to detect a double booking.
type DoubleBookingRule string

const (
	// RuleSplit reports a conflict when any existing appointment belongs to
	// the doctor and any existing appointment, possibly another one, holds
	// the same date and time.
	RuleSplit DoubleBookingRule = "split"
	// RuleExact reports a conflict only when a single appointment matches
	// doctor, date and time together.
	RuleExact DoubleBookingRule = "exact"
)

func ParseDoubleBookingRule(s string) (DoubleBookingRule, error) {
	switch DoubleBookingRule(s) {
	case "", RuleSplit:
		return RuleSplit, nil
	case RuleExact:
		return RuleExact, nil
	default:
		return "", fmt.Errorf("unknown double booking rule %q", s)
	}
}

func IsDoctorDoubleBooked(
	existing []models.Appointment,
	doctorID uint,
	date string,
	time string,
	rule DoubleBookingRule,
) bool {
	if rule == RuleExact {
		return slices.ContainsFunc(existing, func(a models.Appointment) bool {
			return a.DoctorID == doctorID && a.AppointmentDate == date && a.AppointmentTime == time
		})
	}

	doctorBusy := slices.ContainsFunc(existing, func(a models.Appointment) bool {
		return a.DoctorID == doctorID
	})
	slotTaken := slices.ContainsFunc(existing, func(a models.Appointment) bool {
		return a.AppointmentDate == date && a.AppointmentTime == time
	})
	return doctorBusy && slotTaken
}

// ===============================
// Admissibility
// ===============================

type Reason string

const (
	ReasonNoSchedule     Reason = "no_schedule"
	ReasonDoubleBooked   Reason = "double_booked"
	ReasonDateMismatch   Reason = "date_mismatch"
	ReasonSlotMismatch   Reason = "slot_mismatch"
	ReasonClinicMismatch Reason = "clinic_mismatch"
)

// Rejection is returned by CheckAdmissibility for the first failing check.
type Rejection struct {
	Reason Reason
}

func (r Rejection) Error() string {
	return "booking rejected: " + string(r.Reason)
}

// CheckAdmissibility runs, in order, the schedule presence, double booking,
// date, slot and clinic checks and returns the first failure as a Rejection.
func CheckAdmissibility(
	c Candidate,
	schedule *models.DoctorSchedule,
	existing []models.Appointment,
	rule DoubleBookingRule,
) error {
	if schedule == nil {
		return Rejection{Reason: ReasonNoSchedule}
	}
	if IsDoctorDoubleBooked(existing, c.DoctorID, c.Date, c.Time, rule) {
		return Rejection{Reason: ReasonDoubleBooked}
	}
	if schedule.Date != c.Date {
		return Rejection{Reason: ReasonDateMismatch}
	}
	if !slices.Contains(schedule.Slots, c.Time) {
		return Rejection{Reason: ReasonSlotMismatch}
	}
	if schedule.ClinicID != c.ClinicID {
		return Rejection{Reason: ReasonClinicMismatch}
	}
	return nil
}

package appointment

import (
	"context"
	"fmt"
	"slices"

	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/records"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// ScheduleLookup selects which schedule row governs a booking.
type ScheduleLookup string

const (
	// LookupFirst uses the doctor's first schedule row regardless of date.
	LookupFirst ScheduleLookup = "first"
	// LookupByDate uses the first row keyed by (doctor, requested date).
	LookupByDate ScheduleLookup = "by_date"
)

func ParseScheduleLookup(s string) (ScheduleLookup, error) {
	switch ScheduleLookup(s) {
	case "", LookupFirst:
		return LookupFirst, nil
	case LookupByDate:
		return LookupByDate, nil
	default:
		return "", fmt.Errorf("unknown schedule lookup %q", s)
	}
}

// ScheduleFor resolves the governing schedule for doctorID. It returns
// records.ErrNotFound when the doctor has none.
func ScheduleFor(
	ctx context.Context,
	repo records.ScheduleRepository,
	mode ScheduleLookup,
	doctorID uint,
	date string,
) (*models.DoctorSchedule, error) {
	if mode == LookupByDate {
		return repo.ScheduleForDoctorOnDate(ctx, doctorID, date)
	}
	return repo.FirstScheduleForDoctor(ctx, doctorID)
}

// IsSlotAvailable reports whether the schedule offers time on date at clinicID.
func IsSlotAvailable(s models.DoctorSchedule, date, time string, clinicID uint) bool {
	return s.Date == date &&
		slices.Contains(s.Slots, time) &&
		s.ClinicID == clinicID
}

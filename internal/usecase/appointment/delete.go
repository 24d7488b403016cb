package appointment

import (
	"context"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/access"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/records"
)

type DeleteAppointment struct {
	store records.AppointmentRepository
	audit *audit.Dispatcher
}

func NewDeleteAppointment(
	store records.AppointmentRepository,
	audit *audit.Dispatcher,
) *DeleteAppointment {
	return &DeleteAppointment{
		store: store,
		audit: audit,
	}
}

func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	p access.Principal,
	id uint,
) error {

	ap, err := uc.store.GetAppointment(ctx, id)
	if err != nil {
		return notFoundAppointment(err, id)
	}
	if err := access.CanAccessAppointment(p, ap, "delete"); err != nil {
		return err
	}

	if err := uc.store.DeleteAppointment(ctx, id); err != nil {
		return notFoundAppointment(err, id)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &p.ID,
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &id,
	})

	return nil
}

package appointment

import (
	"context"

	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/access"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/records"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type GetAppointment struct {
	store records.AppointmentRepository
}

func NewGetAppointment(store records.AppointmentRepository) *GetAppointment {
	return &GetAppointment{store: store}
}

func (uc *GetAppointment) Execute(
	ctx context.Context,
	p access.Principal,
	id uint,
) (*models.Appointment, error) {

	ap, err := uc.store.GetAppointment(ctx, id)
	if err != nil {
		return nil, notFoundAppointment(err, id)
	}
	if err := access.CanAccessAppointment(p, ap, "view"); err != nil {
		return nil, err
	}
	return ap, nil
}

// ListAppointments returns every appointment to admins and only the
// caller's own bookings to everyone else.
type ListAppointments struct {
	store records.AppointmentRepository
}

func NewListAppointments(store records.AppointmentRepository) *ListAppointments {
	return &ListAppointments{store: store}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
	p access.Principal,
) ([]models.Appointment, error) {
	return uc.store.ListAppointments(ctx, access.OwnerScope(p))
}

package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinic-scheduler/internal/dto"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/clinic-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create *appointment.CreateAppointment
	get    *appointment.GetAppointment
	list   *appointment.ListAppointments
	update *appointment.UpdateAppointment
	delete *appointment.DeleteAppointment
}

func NewAppointmentHandler(deps appointment.Deps) *AppointmentHandler {
	return &AppointmentHandler{
		create: appointment.NewCreateAppointment(deps),
		get:    appointment.NewGetAppointment(deps.Store),
		list:   appointment.NewListAppointments(deps.Store),
		update: appointment.NewUpdateAppointment(deps),
		delete: appointment.NewDeleteAppointment(deps.Store, deps.Audit),
	}
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var in appointment.CreateAppointmentInput
	if !bindJSON(c, &in) {
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), principal(c), in)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, dto.NewAppointmentDTO(*ap))
}

// ======================================================
// READ
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	list, err := h.list.Execute(c.Request.Context(), principal(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, dto.NewAppointmentDTOs(list))
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	ap, err := h.get.Execute(c.Request.Context(), principal(c), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, dto.NewAppointmentDTO(*ap))
}

// ======================================================
// UPDATE / DELETE
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var in appointment.UpdateAppointmentInput
	if !bindJSON(c, &in) {
		return
	}

	ap, err := h.update.Execute(c.Request.Context(), principal(c), id, in)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, dto.NewAppointmentDTO(*ap))
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.delete.Execute(c.Request.Context(), principal(c), id); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.NoContent(c)
}

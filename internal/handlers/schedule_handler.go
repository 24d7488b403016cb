package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/clinic-scheduler/internal/usecase/schedule"
)

type ScheduleHandler struct {
	schedules *schedule.Service
}

func NewScheduleHandler(schedules *schedule.Service) *ScheduleHandler {
	return &ScheduleHandler{schedules: schedules}
}

func (h *ScheduleHandler) Create(c *gin.Context) {
	var in schedule.CreateInput
	if !bindJSON(c, &in) {
		return
	}
	sc, err := h.schedules.Create(c.Request.Context(), principal(c), in)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, sc)
}

func (h *ScheduleHandler) List(c *gin.Context) {
	list, err := h.schedules.List(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, list)
}

// ListForDoctor serves GET /doctors/:id/schedules.
func (h *ScheduleHandler) ListForDoctor(c *gin.Context) {
	doctorID, ok := pathID(c, "id")
	if !ok {
		return
	}
	list, err := h.schedules.ListForDoctor(c.Request.Context(), doctorID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, list)
}

// Update and Delete are mounted under /doctors/:id/schedules, where :id
// names the schedule itself.
func (h *ScheduleHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var in schedule.UpdateInput
	if !bindJSON(c, &in) {
		return
	}
	sc, err := h.schedules.Update(c.Request.Context(), principal(c), id, in)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, sc)
}

func (h *ScheduleHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.schedules.Delete(c.Request.Context(), principal(c), id); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.NoContent(c)
}

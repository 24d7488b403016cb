package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/clinic-scheduler/internal/usecase/catalog"
)

// CatalogHandler serves doctors and clinics.
type CatalogHandler struct {
	catalog *catalog.Service
}

func NewCatalogHandler(catalog *catalog.Service) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// ======================================================
// DOCTORS
// ======================================================

func (h *CatalogHandler) CreateDoctor(c *gin.Context) {
	var in catalog.DoctorInput
	if !bindJSON(c, &in) {
		return
	}
	d, err := h.catalog.CreateDoctor(c.Request.Context(), principal(c), in)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, d)
}

func (h *CatalogHandler) ListDoctors(c *gin.Context) {
	list, err := h.catalog.ListDoctors(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, list)
}

func (h *CatalogHandler) GetDoctor(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	d, err := h.catalog.GetDoctor(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, d)
}

func (h *CatalogHandler) UpdateDoctor(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var in catalog.DoctorUpdate
	if !bindJSON(c, &in) {
		return
	}
	d, err := h.catalog.UpdateDoctor(c.Request.Context(), principal(c), id, in)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, d)
}

func (h *CatalogHandler) DeleteDoctor(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.catalog.DeleteDoctor(c.Request.Context(), principal(c), id); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.NoContent(c)
}

// ======================================================
// CLINICS
// ======================================================

func (h *CatalogHandler) CreateClinic(c *gin.Context) {
	var in catalog.ClinicInput
	if !bindJSON(c, &in) {
		return
	}
	cl, err := h.catalog.CreateClinic(c.Request.Context(), principal(c), in)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, cl)
}

func (h *CatalogHandler) ListClinics(c *gin.Context) {
	list, err := h.catalog.ListClinics(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, list)
}

func (h *CatalogHandler) GetClinic(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	cl, err := h.catalog.GetClinic(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, cl)
}

func (h *CatalogHandler) UpdateClinic(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var in catalog.ClinicUpdate
	if !bindJSON(c, &in) {
		return
	}
	cl, err := h.catalog.UpdateClinic(c.Request.Context(), principal(c), id, in)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, cl)
}

func (h *CatalogHandler) DeleteClinic(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.catalog.DeleteClinic(c.Request.Context(), principal(c), id); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.NoContent(c)
}

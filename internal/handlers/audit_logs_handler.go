package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/access"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/records"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

const (
	defaultAuditLimit = 50
	maxAuditLimit     = 200
)

type AuditLogsHandler struct {
	repo records.AuditRepository
}

func NewAuditLogsHandler(repo records.AuditRepository) *AuditLogsHandler {
	return &AuditLogsHandler{repo: repo}
}

type auditPage struct {
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
	Total int64             `json:"total"`
	Logs  []models.AuditLog `json:"logs"`
}

// List supports ?action, ?entity, ?from and ?to (YYYY-MM-DD, inclusive)
// plus ?page and ?limit.
func (h *AuditLogsHandler) List(c *gin.Context) {
	if err := access.RequireAdmin(principal(c), "Only admin can read audit logs."); err != nil {
		httperr.Respond(c, err)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultAuditLimit)))
	if limit <= 0 || limit > maxAuditLimit {
		limit = defaultAuditLimit
	}

	f := records.AuditFilter{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
		Limit:  limit,
		Offset: (page - 1) * limit,
	}

	if s := c.Query("from"); s != "" {
		from, err := time.Parse(time.DateOnly, s)
		if err != nil {
			httperr.BadRequest(c, "invalid_from", "from must be YYYY-MM-DD.")
			return
		}
		f.From = &from
	}
	if s := c.Query("to"); s != "" {
		to, err := time.Parse(time.DateOnly, s)
		if err != nil {
			httperr.BadRequest(c, "invalid_to", "to must be YYYY-MM-DD.")
			return
		}
		to = to.Add(24 * time.Hour)
		f.To = &to
	}

	ctx := c.Request.Context()

	total, err := h.repo.CountAuditLogs(ctx, f)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	logs, err := h.repo.ListAuditLogs(ctx, f)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	if logs == nil {
		logs = []models.AuditLog{}
	}

	c.JSON(http.StatusOK, auditPage{
		Page:  page,
		Limit: limit,
		Total: total,
		Logs:  logs,
	})
}

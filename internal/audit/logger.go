package audit

import (
	"context"
	"encoding/json"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// Writer persists audit rows. records.Store satisfies it.
type Writer interface {
	CreateAuditLog(ctx context.Context, l *models.AuditLog) error
}

type Logger struct {
	w Writer
}

func New(w Writer) *Logger {
	return &Logger{w: w}
}

func (l *Logger) Log(ctx context.Context, ev Event) error {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	row := models.AuditLog{
		UserID:   ev.UserID,
		Action:   ev.Action,
		Entity:   ev.Entity,
		EntityID: ev.EntityID,
		Metadata: metaJSON,
	}

	return l.w.CreateAuditLog(ctx, &row)
}

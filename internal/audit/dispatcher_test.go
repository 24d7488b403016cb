package audit

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type recordingWriter struct {
	mu   sync.Mutex
	rows []models.AuditLog
	err  error
}

func (w *recordingWriter) CreateAuditLog(_ context.Context, l *models.AuditLog) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.err != nil {
		return w.err
	}
	w.rows = append(w.rows, *l)
	return nil
}

func TestDispatcherWritesEvents(t *testing.T) {
	w := &recordingWriter{}
	d := NewDispatcher(New(w), zerolog.Nop())

	d.Dispatch(Event{
		UserID:   UintPtr(3),
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: UintPtr(9),
		Metadata: map[string]any{"doctor_id": 1},
	})
	d.Close()

	if len(w.rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(w.rows))
	}
	row := w.rows[0]
	if row.Action != "appointment_created" || *row.EntityID != 9 || *row.UserID != 3 {
		t.Errorf("unexpected row %+v", row)
	}
	if row.Metadata != `{"doctor_id":1}` {
		t.Errorf("unexpected metadata %q", row.Metadata)
	}
}

func TestDispatcherSwallowsWriteErrors(t *testing.T) {
	w := &recordingWriter{err: errors.New("db down")}
	d := NewDispatcher(New(w), zerolog.Nop())

	d.Dispatch(Event{Action: "doctor_deleted"})
	d.Close()
	d.Close()
}

func TestNilDispatcher(t *testing.T) {
	var d *Dispatcher
	d.Dispatch(Event{Action: "ignored"})
	d.Close()
}

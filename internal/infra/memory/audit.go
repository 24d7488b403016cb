package memory

import (
	"context"
	"slices"

	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/records"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

func (s *Store) CreateAuditLog(_ context.Context, l *models.AuditLog) error {
	defer s.lock()()
	l.ID = s.st.next("audit_logs")
	if l.CreatedAt.IsZero() {
		l.CreatedAt = s.clock()
	}
	s.st.audit = append(s.st.audit, *l)
	return nil
}

func auditMatches(l models.AuditLog, f records.AuditFilter) bool {
	if f.Action != "" && l.Action != f.Action {
		return false
	}
	if f.Entity != "" && l.Entity != f.Entity {
		return false
	}
	if f.From != nil && l.CreatedAt.Before(*f.From) {
		return false
	}
	if f.To != nil && !l.CreatedAt.Before(*f.To) {
		return false
	}
	return true
}

// ListAuditLogs returns matches newest first.
func (s *Store) ListAuditLogs(_ context.Context, f records.AuditFilter) ([]models.AuditLog, error) {
	defer s.lock()()

	var out []models.AuditLog
	for _, l := range slices.Backward(s.st.audit) {
		if auditMatches(l, f) {
			out = append(out, l)
		}
	}

	if f.Offset > 0 {
		if f.Offset >= len(out) {
			return nil, nil
		}
		out = out[f.Offset:]
	}
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func (s *Store) CountAuditLogs(_ context.Context, f records.AuditFilter) (int64, error) {
	defer s.lock()()

	var n int64
	for _, l := range s.st.audit {
		if auditMatches(l, f) {
			n++
		}
	}
	return n, nil
}

// Package memory is a process-local records.Store. It enforces the same
// unique keys and cascade deletes as the postgres schema and serializes
// transactions behind one mutex.
package memory

import (
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/records"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type state struct {
	seq          map[string]uint
	users        map[uint]models.User
	patients     map[uint]models.Patient
	doctors      map[uint]models.Doctor
	clinics      map[uint]models.Clinic
	schedules    map[uint]models.DoctorSchedule
	appointments map[uint]models.Appointment
	audit        []models.AuditLog
}

func newState() *state {
	return &state{
		seq:          map[string]uint{},
		users:        map[uint]models.User{},
		patients:     map[uint]models.Patient{},
		doctors:      map[uint]models.Doctor{},
		clinics:      map[uint]models.Clinic{},
		schedules:    map[uint]models.DoctorSchedule{},
		appointments: map[uint]models.Appointment{},
	}
}

func (s *state) clone() *state {
	c := &state{
		seq:          maps.Clone(s.seq),
		users:        maps.Clone(s.users),
		patients:     maps.Clone(s.patients),
		doctors:      maps.Clone(s.doctors),
		clinics:      maps.Clone(s.clinics),
		schedules:    make(map[uint]models.DoctorSchedule, len(s.schedules)),
		appointments: maps.Clone(s.appointments),
		audit:        slices.Clone(s.audit),
	}
	for id, sc := range s.schedules {
		sc.Slots = slices.Clone(sc.Slots)
		c.schedules[id] = sc
	}
	return c
}

func (s *state) next(table string) uint {
	s.seq[table]++
	return s.seq[table]
}

type Store struct {
	mu    *sync.Mutex
	st    *state
	inTx  bool
	clock func() time.Time
}

func New() *Store {
	return &Store{
		mu:    &sync.Mutex{},
		st:    newState(),
		clock: time.Now,
	}
}

func (s *Store) lock() func() {
	if s.inTx {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

// Transaction runs fn against a snapshot and publishes it only when fn
// succeeds. Other callers block until the transaction ends.
func (s *Store) Transaction(ctx context.Context, fn func(tx records.Store) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	unlock := s.lock()
	defer unlock()

	tx := &Store{mu: s.mu, st: s.st.clone(), inTx: true, clock: s.clock}
	if err := fn(tx); err != nil {
		return err
	}
	*s.st = *tx.st
	return nil
}

func sortedValues[T any](m map[uint]T) []T {
	keys := slices.Sorted(maps.Keys(m))
	out := make([]T, 0, len(keys))
	for _, k := range keys {
		out = append(out, m[k])
	}
	return out
}

func filterValues[T any](m map[uint]T, keep func(T) bool) []T {
	var out []T
	for _, v := range sortedValues(m) {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

func duplicate(constraint string) error {
	return records.DuplicateError{Constraint: constraint}
}

var _ records.Store = (*Store)(nil)

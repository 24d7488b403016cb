package appointment

import (
	"context"
	"sync"
	"testing"

	"gorm.io/datatypes"

	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/access"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/infra/lock"
	"github.com/BruksfildServices01/clinic-scheduler/internal/infra/memory"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type world struct {
	store  *memory.Store
	deps   Deps
	admin  access.Principal
	alice  access.Principal
	bob    access.Principal
	pAlice models.Patient
	house  models.Doctor
	wilson models.Doctor
	ppth   models.Clinic
	other  models.Clinic
}

func newWorld(t *testing.T, opts Options) *world {
	t.Helper()
	ctx := context.Background()
	w := &world{store: memory.New()}

	mk := func(username, role string) access.Principal {
		u := models.User{Username: username, Email: username + "@example.com", PasswordHash: "x", Role: role}
		must(t, w.store.CreateUser(ctx, &u))
		return access.Principal{ID: u.ID, Username: u.Username, Role: access.Role(role)}
	}
	w.admin = mk("root", "admin")
	w.alice = mk("alice", "patient")
	w.bob = mk("bob", "patient")

	w.pAlice = models.Patient{Name: "Alice", DOB: "1990-01-01", Gender: "F", Phone: "555", UserID: w.alice.ID}
	must(t, w.store.CreatePatient(ctx, &w.pAlice))

	w.house = models.Doctor{Name: "Dr. House", Specialty: "Diagnostics"}
	must(t, w.store.CreateDoctor(ctx, &w.house))
	w.wilson = models.Doctor{Name: "Dr. Wilson", Specialty: "Oncology"}
	must(t, w.store.CreateDoctor(ctx, &w.wilson))

	w.ppth = models.Clinic{Name: "PPTH", Address: "Princeton", Phone: "100"}
	must(t, w.store.CreateClinic(ctx, &w.ppth))
	w.other = models.Clinic{Name: "Mercy", Address: "Trenton", Phone: "200"}
	must(t, w.store.CreateClinic(ctx, &w.other))

	for _, sc := range []models.DoctorSchedule{
		{DoctorID: w.house.ID, ClinicID: w.ppth.ID, Date: "2024-05-01", Slots: datatypes.JSONSlice[string]{"09:00", "09:30", "10:00"}},
		{DoctorID: w.wilson.ID, ClinicID: w.ppth.ID, Date: "2024-05-01", Slots: datatypes.JSONSlice[string]{"09:00", "11:00"}},
		{DoctorID: w.house.ID, ClinicID: w.other.ID, Date: "2024-05-02", Slots: datatypes.JSONSlice[string]{"14:00"}},
	} {
		must(t, w.store.CreateSchedule(ctx, &sc))
	}

	w.deps = Deps{Store: w.store, Locker: lock.NewLocalLocker(), Opts: opts}
	return w
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func expectKind(t *testing.T, err error, kind httperr.Kind, code string) {
	t.Helper()
	if httperr.KindOf(err) != kind {
		t.Fatalf("expected %s, got %v", kind, err)
	}
	if code != "" && !httperr.IsBusiness(err, code) {
		t.Fatalf("expected code %s, got %v", code, err)
	}
}

func (w *world) input(doctor models.Doctor, clinic models.Clinic, date, slot string) CreateAppointmentInput {
	return CreateAppointmentInput{
		PatientID:       w.pAlice.ID,
		DoctorID:        doctor.ID,
		ClinicID:        clinic.ID,
		AppointmentDate: date,
		AppointmentTime: slot,
	}
}

func TestCreateAppointment(t *testing.T) {
	w := newWorld(t, Options{})
	ap, err := NewCreateAppointment(w.deps).Execute(context.Background(), w.alice, w.input(w.house, w.ppth, "2024-05-01", "09:00"))
	must(t, err)

	if ap.Status != string(domain.StatusBooked) {
		t.Errorf("expected booked, got %q", ap.Status)
	}
	if ap.UserID != w.alice.ID {
		t.Errorf("expected creator %d, got %d", w.alice.ID, ap.UserID)
	}
	if ap.Doctor.Name != "Dr. House" || ap.Clinic.Name != "PPTH" {
		t.Errorf("expected parties attached, got %+v", ap)
	}
}

func TestCreateAppointmentRejections(t *testing.T) {
	ctx := context.Background()

	t.Run("missing patient", func(t *testing.T) {
		w := newWorld(t, Options{})
		in := w.input(w.house, w.ppth, "2024-05-01", "09:00")
		in.PatientID = 99
		_, err := NewCreateAppointment(w.deps).Execute(ctx, w.alice, in)
		expectKind(t, err, httperr.KindNotFound, "patient_not_found")
		if err.Error() != "patient_not_found: Patient with ID: 99 not found" {
			t.Errorf("unexpected message %q", err.Error())
		}
	})

	t.Run("no schedule", func(t *testing.T) {
		w := newWorld(t, Options{})
		cuddy := models.Doctor{Name: "Dr. Cuddy", Specialty: "Admin"}
		must(t, w.store.CreateDoctor(ctx, &cuddy))

		_, err := NewCreateAppointment(w.deps).Execute(ctx, w.alice, w.input(cuddy, w.ppth, "2024-05-01", "09:00"))
		expectKind(t, err, httperr.KindNotFound, "booking_unavailable")
		if err.Error() != "booking_unavailable: Booking for Dr. Cuddy is currently unavailable" {
			t.Errorf("unexpected message %q", err.Error())
		}
	})

	t.Run("date mismatch", func(t *testing.T) {
		w := newWorld(t, Options{})
		_, err := NewCreateAppointment(w.deps).Execute(ctx, w.alice, w.input(w.house, w.ppth, "2024-05-02", "09:00"))
		expectKind(t, err, httperr.KindConflict, "date_mismatch")
		if err.Error() != "date_mismatch: Dr. House does not have a schedule for this date: 2024-05-01." {
			t.Errorf("unexpected message %q", err.Error())
		}
	})

	t.Run("slot mismatch", func(t *testing.T) {
		w := newWorld(t, Options{})
		_, err := NewCreateAppointment(w.deps).Execute(ctx, w.alice, w.input(w.house, w.ppth, "2024-05-01", "12:00"))
		expectKind(t, err, httperr.KindConflict, "slot_mismatch")
		if err.Error() != "slot_mismatch: Dr. House has time schedules for these times: [09:00 09:30 10:00]." {
			t.Errorf("unexpected message %q", err.Error())
		}
	})

	t.Run("clinic mismatch", func(t *testing.T) {
		w := newWorld(t, Options{})
		_, err := NewCreateAppointment(w.deps).Execute(ctx, w.alice, w.input(w.house, w.other, "2024-05-01", "09:00"))
		expectKind(t, err, httperr.KindConflict, "clinic_mismatch")
		if err.Error() != "clinic_mismatch: Dr. House does not have a schedule at Mercy." {
			t.Errorf("unexpected message %q", err.Error())
		}
	})

	t.Run("invalid input", func(t *testing.T) {
		w := newWorld(t, Options{})
		_, err := NewCreateAppointment(w.deps).Execute(ctx, w.alice, CreateAppointmentInput{})
		expectKind(t, err, httperr.KindBadRequest, "invalid_request")
	})
}

func TestCreateAppointmentDoubleBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("same slot", func(t *testing.T) {
		w := newWorld(t, Options{})
		uc := NewCreateAppointment(w.deps)
		_, err := uc.Execute(ctx, w.alice, w.input(w.house, w.ppth, "2024-05-01", "09:00"))
		must(t, err)

		_, err = uc.Execute(ctx, w.alice, w.input(w.house, w.ppth, "2024-05-01", "09:00"))
		expectKind(t, err, httperr.KindConflict, "double_booked")
		if err.Error() != "double_booked: Dr. House is already booked for this timeframe" {
			t.Errorf("unexpected message %q", err.Error())
		}
	})

	// House is booked at 09:30 and Wilson holds 09:00; the split rule
	// treats House at 09:00 as taken, the exact rule does not.
	splitCase := func(t *testing.T, rule domain.DoubleBookingRule) error {
		w := newWorld(t, Options{Rule: rule})
		uc := NewCreateAppointment(w.deps)
		_, err := uc.Execute(ctx, w.alice, w.input(w.house, w.ppth, "2024-05-01", "09:30"))
		must(t, err)
		_, err = uc.Execute(ctx, w.alice, w.input(w.wilson, w.ppth, "2024-05-01", "09:00"))
		must(t, err)

		_, err = uc.Execute(ctx, w.alice, w.input(w.house, w.ppth, "2024-05-01", "09:00"))
		return err
	}

	t.Run("split rule", func(t *testing.T) {
		expectKind(t, splitCase(t, domain.RuleSplit), httperr.KindConflict, "double_booked")
	})

	t.Run("exact rule", func(t *testing.T) {
		if err := splitCase(t, domain.RuleExact); err != nil {
			t.Errorf("expected exact rule to admit, got %v", err)
		}
	})
}

func TestCreateAppointmentConcurrent(t *testing.T) {
	w := newWorld(t, Options{Rule: domain.RuleExact})
	uc := NewCreateAppointment(w.deps)
	in := w.input(w.house, w.ppth, "2024-05-01", "10:00")

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		conflicts int
	)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Execute(context.Background(), w.alice, in)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case httperr.KindOf(err) == httperr.KindConflict:
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if successes != 1 || conflicts != 15 {
		t.Errorf("expected 1 success and 15 conflicts, got %d and %d", successes, conflicts)
	}
}

func TestScheduleLookupByDate(t *testing.T) {
	ctx := context.Background()

	w := newWorld(t, Options{Lookup: domain.LookupFirst})
	_, err := NewCreateAppointment(w.deps).Execute(ctx, w.alice, w.input(w.house, w.other, "2024-05-02", "14:00"))
	expectKind(t, err, httperr.KindConflict, "date_mismatch")

	w = newWorld(t, Options{Lookup: domain.LookupByDate})
	_, err = NewCreateAppointment(w.deps).Execute(ctx, w.alice, w.input(w.house, w.other, "2024-05-02", "14:00"))
	must(t, err)
}

func TestGetListAndOwnership(t *testing.T) {
	ctx := context.Background()
	w := newWorld(t, Options{})

	ap, err := NewCreateAppointment(w.deps).Execute(ctx, w.alice, w.input(w.house, w.ppth, "2024-05-01", "09:00"))
	must(t, err)

	get := NewGetAppointment(w.store)

	if _, err := get.Execute(ctx, w.alice, ap.ID); err != nil {
		t.Errorf("owner denied: %v", err)
	}
	if _, err := get.Execute(ctx, w.admin, ap.ID); err != nil {
		t.Errorf("admin denied: %v", err)
	}
	_, err = get.Execute(ctx, w.bob, ap.ID)
	expectKind(t, err, httperr.KindForbidden, "")
	if err.Error() != "forbidden: You don't have permission to view this appointment" {
		t.Errorf("unexpected message %q", err.Error())
	}

	_, err = get.Execute(ctx, w.bob, 999)
	expectKind(t, err, httperr.KindNotFound, "appointment_not_found")

	list := NewListAppointments(w.store)
	own, _ := list.Execute(ctx, w.alice)
	none, _ := list.Execute(ctx, w.bob)
	all, _ := list.Execute(ctx, w.admin)
	if len(own) != 1 || len(none) != 0 || len(all) != 1 {
		t.Errorf("unexpected list sizes own=%d bob=%d admin=%d", len(own), len(none), len(all))
	}
}

func TestUpdateAppointment(t *testing.T) {
	ctx := context.Background()
	w := newWorld(t, Options{})

	ap, err := NewCreateAppointment(w.deps).Execute(ctx, w.alice, w.input(w.house, w.ppth, "2024-05-01", "09:00"))
	must(t, err)

	uc := NewUpdateAppointment(w.deps)

	t.Run("status only excludes itself from conflicts", func(t *testing.T) {
		status := "confirmed"
		got, err := uc.Execute(ctx, w.alice, ap.ID, UpdateAppointmentInput{Status: &status})
		must(t, err)
		if got.Status != "confirmed" || got.AppointmentTime != "09:00" {
			t.Errorf("unexpected result %+v", got)
		}
	})

	t.Run("move slot", func(t *testing.T) {
		slot := "10:00"
		got, err := uc.Execute(ctx, w.alice, ap.ID, UpdateAppointmentInput{AppointmentTime: &slot})
		must(t, err)
		if got.AppointmentTime != "10:00" || got.Doctor.Name != "Dr. House" {
			t.Errorf("unexpected result %+v", got)
		}
	})

	t.Run("invalid doctor", func(t *testing.T) {
		bad := uint(404)
		_, err := uc.Execute(ctx, w.alice, ap.ID, UpdateAppointmentInput{DoctorID: &bad})
		expectKind(t, err, httperr.KindBadRequest, "invalid_doctor_id")
		if err.Error() != "invalid_doctor_id: Invalid doctor_id" {
			t.Errorf("unexpected message %q", err.Error())
		}
	})

	t.Run("slot outside schedule", func(t *testing.T) {
		slot := "23:00"
		_, err := uc.Execute(ctx, w.alice, ap.ID, UpdateAppointmentInput{AppointmentTime: &slot})
		expectKind(t, err, httperr.KindConflict, "slot_mismatch")
	})

	t.Run("forbidden", func(t *testing.T) {
		status := "x"
		_, err := uc.Execute(ctx, w.bob, ap.ID, UpdateAppointmentInput{Status: &status})
		expectKind(t, err, httperr.KindForbidden, "")
	})

	t.Run("missing", func(t *testing.T) {
		status := "x"
		_, err := uc.Execute(ctx, w.bob, 999, UpdateAppointmentInput{Status: &status})
		expectKind(t, err, httperr.KindNotFound, "appointment_not_found")
	})

	stored, err := w.store.GetAppointment(ctx, ap.ID)
	must(t, err)
	if stored.AppointmentTime != "10:00" || stored.Status != "confirmed" {
		t.Errorf("rejected updates leaked into storage: %+v", stored)
	}
}

func TestDeleteAppointment(t *testing.T) {
	ctx := context.Background()
	w := newWorld(t, Options{})

	ap, err := NewCreateAppointment(w.deps).Execute(ctx, w.alice, w.input(w.house, w.ppth, "2024-05-01", "09:00"))
	must(t, err)

	del := NewDeleteAppointment(w.store, nil)

	expectKind(t, del.Execute(ctx, w.bob, ap.ID), httperr.KindForbidden, "")
	must(t, del.Execute(ctx, w.alice, ap.ID))

	_, err = NewGetAppointment(w.store).Execute(ctx, w.alice, ap.ID)
	expectKind(t, err, httperr.KindNotFound, "appointment_not_found")
	expectKind(t, del.Execute(ctx, w.alice, ap.ID), httperr.KindNotFound, "appointment_not_found")

	// The freed slot is bookable again.
	if _, err := NewCreateAppointment(w.deps).Execute(ctx, w.alice, w.input(w.house, w.ppth, "2024-05-01", "09:00")); err != nil {
		t.Errorf("expected slot reusable after delete, got %v", err)
	}
}

package catalog

import (
	"context"
	"testing"

	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/access"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/infra/memory"
)

var (
	admin   = access.Principal{ID: 1, Username: "root", Role: access.RoleAdmin}
	patient = access.Principal{ID: 2, Username: "alice", Role: access.RolePatient}
)

func strPtr(s string) *string { return &s }

func TestDoctorLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := NewService(memory.New(), nil)

	if _, err := svc.CreateDoctor(ctx, patient, DoctorInput{Name: "Dr. House", Specialty: "Diagnostics"}); httperr.KindOf(err) != httperr.KindForbidden {
		t.Fatalf("expected forbidden for patient, got %v", err)
	}

	d, err := svc.CreateDoctor(ctx, admin, DoctorInput{Name: "Dr. House", Specialty: "Diagnostics"})
	if err != nil {
		t.Fatalf("CreateDoctor: %v", err)
	}

	if _, err := svc.CreateDoctor(ctx, admin, DoctorInput{Name: "Dr. House", Specialty: "Other"}); !httperr.IsBusiness(err, "doctor_exists") {
		t.Errorf("expected doctor_exists, got %v", err)
	}

	if _, err := svc.CreateDoctor(ctx, admin, DoctorInput{Name: "", Specialty: "x"}); httperr.KindOf(err) != httperr.KindBadRequest {
		t.Errorf("expected bad request for blank name, got %v", err)
	}

	updated, err := svc.UpdateDoctor(ctx, admin, d.ID, DoctorUpdate{Specialty: strPtr("Nephrology")})
	if err != nil {
		t.Fatalf("UpdateDoctor: %v", err)
	}
	if updated.Name != "Dr. House" || updated.Specialty != "Nephrology" {
		t.Errorf("unexpected update result %+v", updated)
	}

	if err := svc.DeleteDoctor(ctx, admin, d.ID); err != nil {
		t.Fatalf("DeleteDoctor: %v", err)
	}
	if _, err := svc.GetDoctor(ctx, d.ID); !httperr.IsBusiness(err, "doctor_not_found") {
		t.Errorf("expected doctor_not_found, got %v", err)
	}
	if err := svc.DeleteDoctor(ctx, admin, d.ID); !httperr.IsBusiness(err, "doctor_not_found") {
		t.Errorf("expected doctor_not_found on second delete, got %v", err)
	}
}

func TestUpdateDoctorRenameConflict(t *testing.T) {
	ctx := context.Background()
	svc := NewService(memory.New(), nil)

	_, _ = svc.CreateDoctor(ctx, admin, DoctorInput{Name: "Dr. House", Specialty: "x"})
	w, _ := svc.CreateDoctor(ctx, admin, DoctorInput{Name: "Dr. Wilson", Specialty: "y"})

	_, err := svc.UpdateDoctor(ctx, admin, w.ID, DoctorUpdate{Name: strPtr("Dr. House")})
	if !httperr.IsBusiness(err, "doctor_exists") {
		t.Errorf("expected doctor_exists, got %v", err)
	}

	got, _ := svc.GetDoctor(ctx, w.ID)
	if got.Name != "Dr. Wilson" {
		t.Errorf("expected rename rejected without write, got %q", got.Name)
	}
}

func TestClinicLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := NewService(memory.New(), nil)

	c, err := svc.CreateClinic(ctx, admin, ClinicInput{Name: "PPTH", Address: "Princeton", Phone: "100"})
	if err != nil {
		t.Fatalf("CreateClinic: %v", err)
	}

	if _, err := svc.CreateClinic(ctx, admin, ClinicInput{Name: "PPTH", Address: "x", Phone: "200"}); !httperr.IsBusiness(err, "clinic_exists") {
		t.Errorf("expected clinic_exists for name, got %v", err)
	}
	if _, err := svc.CreateClinic(ctx, admin, ClinicInput{Name: "Mercy", Address: "x", Phone: "100"}); !httperr.IsBusiness(err, "clinic_exists") {
		t.Errorf("expected clinic_exists for phone, got %v", err)
	}

	if _, err := svc.UpdateClinic(ctx, patient, c.ID, ClinicUpdate{Address: strPtr("y")}); httperr.KindOf(err) != httperr.KindForbidden {
		t.Errorf("expected forbidden, got %v", err)
	}

	list, _ := svc.ListClinics(ctx)
	if len(list) != 1 {
		t.Errorf("expected 1 clinic, got %d", len(list))
	}

	if err := svc.DeleteClinic(ctx, admin, c.ID); err != nil {
		t.Fatalf("DeleteClinic: %v", err)
	}
}

package access

import (
	"testing"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

var (
	admin   = Principal{ID: 1, Username: "root", Role: RoleAdmin}
	alice   = Principal{ID: 2, Username: "alice", Role: RolePatient}
	mallory = Principal{ID: 3, Username: "mallory", Role: RolePatient}
)

func assertForbidden(t *testing.T, err error) {
	t.Helper()
	if httperr.KindOf(err) != httperr.KindForbidden {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestCanAccessAppointment(t *testing.T) {
	ap := &models.Appointment{UserID: alice.ID}

	if err := CanAccessAppointment(alice, ap, "view"); err != nil {
		t.Errorf("owner denied: %v", err)
	}
	if err := CanAccessAppointment(admin, ap, "delete"); err != nil {
		t.Errorf("admin denied: %v", err)
	}
	err := CanAccessAppointment(mallory, ap, "update")
	assertForbidden(t, err)
	if err.Error() != "forbidden: You don't have permission to update this appointment" {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestCanAccessPatient(t *testing.T) {
	pt := &models.Patient{UserID: alice.ID}

	if err := CanAccessPatient(alice, pt, "view"); err != nil {
		t.Errorf("owner denied: %v", err)
	}
	assertForbidden(t, CanAccessPatient(mallory, pt, "view"))
}

func TestUserRules(t *testing.T) {
	u := &models.User{ID: alice.ID, Username: "alice"}

	if err := CanModifyUser(alice, u, "update"); err != nil {
		t.Errorf("self denied: %v", err)
	}
	if err := CanModifyUser(admin, u, "update"); err != nil {
		t.Errorf("admin denied: %v", err)
	}
	assertForbidden(t, CanModifyUser(mallory, u, "delete"))
	assertForbidden(t, CanReadUser(mallory, u))
	assertForbidden(t, CanListUsers(alice))

	if err := CanListUsers(admin); err != nil {
		t.Errorf("admin denied list: %v", err)
	}
}

func TestCanAssignRole(t *testing.T) {
	if err := CanAssignRole(alice, RolePatient, RolePatient); err != nil {
		t.Errorf("unchanged role denied: %v", err)
	}
	if err := CanAssignRole(alice, RolePatient, ""); err != nil {
		t.Errorf("absent role denied: %v", err)
	}
	assertForbidden(t, CanAssignRole(alice, RolePatient, RoleAdmin))
	if err := CanAssignRole(admin, RolePatient, RoleAdmin); err != nil {
		t.Errorf("admin denied promotion: %v", err)
	}
}

func TestOwnerScope(t *testing.T) {
	if OwnerScope(admin) != nil {
		t.Error("expected nil scope for admin")
	}
	if s := OwnerScope(alice); s == nil || *s != alice.ID {
		t.Errorf("expected scope %d, got %v", alice.ID, s)
	}
}

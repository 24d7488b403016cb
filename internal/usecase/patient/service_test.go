package patient

import (
	"context"
	"testing"

	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/access"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/infra/memory"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

func principals(t *testing.T, store *memory.Store) (admin, alice, bob access.Principal) {
	t.Helper()
	mk := func(name, role string) access.Principal {
		u := models.User{Username: name, Email: name + "@example.com", PasswordHash: "x", Role: role}
		if err := store.CreateUser(context.Background(), &u); err != nil {
			t.Fatal(err)
		}
		return access.Principal{ID: u.ID, Username: name, Role: access.Role(role)}
	}
	return mk("root", "admin"), mk("alice", "patient"), mk("bob", "patient")
}

func TestPatientOwnership(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	admin, alice, bob := principals(t, store)
	svc := NewService(store, nil)

	pt, err := svc.Create(ctx, alice, CreateInput{Name: "Alice", DOB: "1990-01-01", Gender: "F", Phone: "555"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if pt.UserID != alice.ID {
		t.Errorf("expected owner %d, got %d", alice.ID, pt.UserID)
	}

	if _, err := svc.Get(ctx, bob, pt.ID); httperr.KindOf(err) != httperr.KindForbidden {
		t.Errorf("expected forbidden for bob, got %v", err)
	}
	if _, err := svc.Get(ctx, admin, pt.ID); err != nil {
		t.Errorf("admin denied: %v", err)
	}
	if _, err := svc.Get(ctx, bob, 999); !httperr.IsBusiness(err, "patient_not_found") {
		t.Errorf("expected not found before permission, got %v", err)
	}

	own, _ := svc.List(ctx, alice)
	others, _ := svc.List(ctx, bob)
	all, _ := svc.List(ctx, admin)
	if len(own) != 1 || len(others) != 0 || len(all) != 1 {
		t.Errorf("unexpected list sizes %d %d %d", len(own), len(others), len(all))
	}

	phone := "666"
	if _, err := svc.Update(ctx, bob, pt.ID, UpdateInput{Phone: &phone}); httperr.KindOf(err) != httperr.KindForbidden {
		t.Errorf("expected forbidden update, got %v", err)
	}
	got, err := svc.Update(ctx, alice, pt.ID, UpdateInput{Phone: &phone})
	if err != nil || got.Phone != "666" || got.Name != "Alice" {
		t.Errorf("unexpected update %+v %v", got, err)
	}

	if err := svc.Delete(ctx, bob, pt.ID); httperr.KindOf(err) != httperr.KindForbidden {
		t.Errorf("expected forbidden delete, got %v", err)
	}
	if err := svc.Delete(ctx, alice, pt.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Get(ctx, alice, pt.ID); !httperr.IsBusiness(err, "patient_not_found") {
		t.Errorf("expected not found after delete, got %v", err)
	}
}

func TestPatientNameUnique(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	_, alice, bob := principals(t, store)
	svc := NewService(store, nil)

	if _, err := svc.Create(ctx, alice, CreateInput{Name: "Alice", DOB: "1990", Gender: "F", Phone: "555"}); err != nil {
		t.Fatal(err)
	}
	_, err := svc.Create(ctx, bob, CreateInput{Name: "Alice", DOB: "1991", Gender: "F", Phone: "556"})
	if !httperr.IsBusiness(err, "patient_exists") {
		t.Fatalf("expected patient_exists, got %v", err)
	}

	list, _ := store.ListPatients(ctx, nil)
	if len(list) != 1 {
		t.Errorf("expected rejected create to write nothing, got %d patients", len(list))
	}
}

package user

import (
	"context"
	"testing"
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/auth"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/access"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/infra/memory"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

func newService() (*Service, *memory.Store, *auth.TokenIssuer) {
	store := memory.New()
	issuer := auth.NewTokenIssuer("test-secret", time.Hour)
	return NewService(store, issuer, nil), store, issuer
}

func principalOf(u *models.User) access.Principal {
	return access.Principal{ID: u.ID, Username: u.Username, Role: access.Role(u.Role)}
}

func strPtr(s string) *string { return &s }

func TestRegister(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newService()

	u, err := svc.Register(ctx, nil, RegisterInput{Username: "alice", Email: " Alice@Example.com ", Password: "secret1"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if u.Role != "patient" {
		t.Errorf("expected default role patient, got %q", u.Role)
	}
	if u.Email != "alice@example.com" {
		t.Errorf("expected normalized email, got %q", u.Email)
	}
	if u.PasswordHash == "secret1" || !auth.CheckPassword(u.PasswordHash, "secret1") {
		t.Error("password was not hashed")
	}

	tests := []struct {
		name string
		in   RegisterInput
		code string
	}{
		{"duplicate username", RegisterInput{Username: "alice", Email: "other@example.com", Password: "secret1"}, "username_taken"},
		{"duplicate email", RegisterInput{Username: "alice2", Email: "alice@example.com", Password: "secret1"}, "email_taken"},
		{"bad email", RegisterInput{Username: "carol", Email: "nope", Password: "secret1"}, "invalid_request"},
		{"short password", RegisterInput{Username: "carol", Email: "carol@example.com", Password: "123"}, "invalid_request"},
		{"unknown role", RegisterInput{Username: "carol", Email: "carol@example.com", Password: "secret1", Role: "root"}, "invalid_request"},
		{"anonymous admin", RegisterInput{Username: "carol", Email: "carol@example.com", Password: "secret1", Role: "admin"}, "forbidden"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Register(ctx, nil, tt.in); !httperr.IsBusiness(err, tt.code) {
				t.Errorf("expected %s, got %v", tt.code, err)
			}
		})
	}

	alice := principalOf(u)
	if _, err := svc.Register(ctx, &alice, RegisterInput{Username: "carol", Email: "carol@example.com", Password: "secret1", Role: "admin"}); httperr.KindOf(err) != httperr.KindForbidden {
		t.Errorf("expected patient to be refused admin creation, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	svc, _, issuer := newService()

	u, err := svc.Register(ctx, nil, RegisterInput{Username: "alice", Email: "alice@example.com", Password: "secret1"})
	if err != nil {
		t.Fatal(err)
	}

	tok, err := svc.Login(ctx, LoginInput{Email: "ALICE@example.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	claims, err := issuer.Parse(tok)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if claims.UserID != u.ID || claims.Username != "alice" || claims.Role != "patient" {
		t.Errorf("unexpected claims %+v", claims)
	}

	for _, in := range []LoginInput{
		{Email: "alice@example.com", Password: "wrong"},
		{Email: "ghost@example.com", Password: "secret1"},
	} {
		if _, err := svc.Login(ctx, in); !httperr.IsBusiness(err, "invalid_credentials") {
			t.Errorf("expected invalid_credentials for %s, got %v", in.Email, err)
		}
	}
}

func TestAccountAccess(t *testing.T) {
	ctx := context.Background()
	svc, store, _ := newService()

	root := &models.User{Username: "root", Email: "root@example.com", PasswordHash: "x", Role: "admin"}
	if err := store.CreateUser(ctx, root); err != nil {
		t.Fatal(err)
	}
	admin := principalOf(root)

	a, _ := svc.Register(ctx, nil, RegisterInput{Username: "alice", Email: "alice@example.com", Password: "secret1"})
	b, _ := svc.Register(ctx, nil, RegisterInput{Username: "bob", Email: "bob@example.com", Password: "secret1"})
	alice, bob := principalOf(a), principalOf(b)

	if _, err := svc.List(ctx, alice); httperr.KindOf(err) != httperr.KindForbidden {
		t.Errorf("expected patient list to be forbidden, got %v", err)
	}
	if all, err := svc.List(ctx, admin); err != nil || len(all) != 3 {
		t.Errorf("expected 3 users, got %d (%v)", len(all), err)
	}

	if _, err := svc.Get(ctx, alice, a.ID); err != nil {
		t.Errorf("self read denied: %v", err)
	}
	if _, err := svc.Get(ctx, bob, a.ID); httperr.KindOf(err) != httperr.KindForbidden {
		t.Errorf("expected forbidden read, got %v", err)
	}
	if _, err := svc.Get(ctx, bob, 999); !httperr.IsBusiness(err, "user_not_found") {
		t.Errorf("expected user_not_found, got %v", err)
	}

	if _, err := svc.Update(ctx, bob, a.ID, UpdateInput{Username: strPtr("mallory")}); httperr.KindOf(err) != httperr.KindForbidden {
		t.Errorf("expected forbidden update, got %v", err)
	}
	if _, err := svc.Update(ctx, alice, a.ID, UpdateInput{Role: strPtr("admin")}); httperr.KindOf(err) != httperr.KindForbidden {
		t.Errorf("expected self promotion to be forbidden, got %v", err)
	}
	if _, err := svc.Update(ctx, alice, a.ID, UpdateInput{Email: strPtr("bob@example.com")}); !httperr.IsBusiness(err, "email_taken") {
		t.Errorf("expected email_taken, got %v", err)
	}

	got, err := svc.Update(ctx, alice, a.ID, UpdateInput{Password: strPtr("newsecret")})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !auth.CheckPassword(got.PasswordHash, "newsecret") {
		t.Error("password was not rehashed")
	}

	promoted, err := svc.Update(ctx, admin, b.ID, UpdateInput{Role: strPtr("admin")})
	if err != nil || promoted.Role != "admin" {
		t.Errorf("admin promotion failed: %+v %v", promoted, err)
	}

	if err := svc.Delete(ctx, alice, root.ID); httperr.KindOf(err) != httperr.KindForbidden {
		t.Errorf("expected forbidden delete, got %v", err)
	}
	if err := svc.Delete(ctx, alice, a.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := svc.Delete(ctx, admin, a.ID); !httperr.IsBusiness(err, "user_not_found") {
		t.Errorf("expected user_not_found, got %v", err)
	}
}

// Package access holds the role policy applied by every use case. Checks
// return httperr Forbidden errors; callers resolve existence first.
package access

import (
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type Role string

const (
	RoleAdmin   Role = "admin"
	RolePatient Role = "patient"
)

func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin, true
	case RolePatient:
		return RolePatient, true
	}
	return "", false
}

// Principal is the authenticated caller.
type Principal struct {
	ID       uint
	Username string
	Role     Role
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

func forbidden(msg string) error {
	return httperr.ErrForbidden("forbidden", "%s", msg)
}

func RequireAdmin(p Principal, msg string) error {
	if !p.IsAdmin() {
		return forbidden(msg)
	}
	return nil
}

// OwnerScope is the creator filter used by list operations: nil for
// admins, the principal id otherwise.
func OwnerScope(p Principal) *uint {
	if p.IsAdmin() {
		return nil
	}
	id := p.ID
	return &id
}

// ===============================
// Entity rules
// ===============================

func CanAccessAppointment(p Principal, ap *models.Appointment, verb string) error {
	if p.IsAdmin() || ap.UserID == p.ID {
		return nil
	}
	return forbidden("You don't have permission to " + verb + " this appointment")
}

func CanAccessPatient(p Principal, pt *models.Patient, verb string) error {
	if p.IsAdmin() || pt.UserID == p.ID {
		return nil
	}
	return forbidden("You don't have permission to " + verb + " this patient")
}

func CanReadUser(p Principal, u *models.User) error {
	if p.IsAdmin() || u.ID == p.ID {
		return nil
	}
	return forbidden("You don't have permission to view this user")
}

func CanModifyUser(p Principal, u *models.User, verb string) error {
	if p.IsAdmin() || u.Username == p.Username {
		return nil
	}
	return forbidden("You don't have permission to " + verb + " this user")
}

func CanListUsers(p Principal) error {
	return RequireAdmin(p, "You don't have permission to list users")
}

// CanAssignRole rejects role changes from non-admins. Creating a patient
// account needs no privilege.
func CanAssignRole(p Principal, current, requested Role) error {
	if requested == "" || requested == current || p.IsAdmin() {
		return nil
	}
	return forbidden("You don't have permission to assign role " + string(requested))
}

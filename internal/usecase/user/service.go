package user

import (
	"context"
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/auth"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/access"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/records"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/validators"
)

type RegisterInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (in RegisterInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Username, validators.UsernameRules...),
		validation.Field(&in.Email, validators.EmailRules...),
		validation.Field(&in.Password, validators.PasswordRules...),
		validation.Field(&in.Role, validators.RoleRule),
	)
}

type UpdateInput struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
}

func (in UpdateInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Username, validation.NilOrNotEmpty, validation.Length(3, 100)),
		validation.Field(&in.Email, validation.NilOrNotEmpty, validation.Length(3, 100), validation.By(emailPtr)),
		validation.Field(&in.Password, validation.NilOrNotEmpty, validation.Length(6, 72)),
		validation.Field(&in.Role, validation.NilOrNotEmpty, validators.RoleRule),
	)
}

func emailPtr(value interface{}) error {
	s, _ := value.(*string)
	if s == nil {
		return nil
	}
	return validation.Validate(*s, validators.EmailRules...)
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Service struct {
	repo   records.UserRepository
	tokens *auth.TokenIssuer
	audit  *audit.Dispatcher
}

func NewService(repo records.UserRepository, tokens *auth.TokenIssuer, audit *audit.Dispatcher) *Service {
	return &Service{repo: repo, tokens: tokens, audit: audit}
}

func badRequest(err error) error {
	return httperr.ErrBadRequest("invalid_request", "%s", err.Error())
}

func usernameTaken(name string) error {
	return httperr.ErrConflict("username_taken", "Username %s is already registered", name)
}

func emailTaken(email string) error {
	return httperr.ErrConflict("email_taken", "Email %s is already registered", email)
}

// uniqueness reports which unique key u collides with, ignoring u itself.
func (s *Service) uniqueness(ctx context.Context, u *models.User) error {
	if other, err := s.repo.FindUserByUsername(ctx, u.Username); err == nil && other.ID != u.ID {
		return usernameTaken(u.Username)
	} else if err != nil && !errors.Is(err, records.ErrNotFound) {
		return err
	}
	if other, err := s.repo.FindUserByEmail(ctx, u.Email); err == nil && other.ID != u.ID {
		return emailTaken(u.Email)
	} else if err != nil && !errors.Is(err, records.ErrNotFound) {
		return err
	}
	return nil
}

func duplicate(err error, u *models.User) error {
	switch {
	case records.IsDuplicateOf(err, "idx_users_username"):
		return usernameTaken(u.Username)
	case records.IsDuplicateOf(err, "idx_users_email"):
		return emailTaken(u.Email)
	}
	return httperr.ConflictOr(err, "user_exists", "User already exists")
}

// Register creates an account. caller is nil for anonymous sign-ups, which
// may only create patients.
func (s *Service) Register(ctx context.Context, caller *access.Principal, in RegisterInput) (*models.User, error) {
	in.Email = validators.NormalizeEmail(in.Email)
	if err := in.Validate(); err != nil {
		return nil, badRequest(err)
	}

	role := access.RolePatient
	if in.Role != "" {
		role = access.Role(in.Role)
	}
	if role == access.RoleAdmin {
		if caller == nil {
			return nil, httperr.ErrForbidden("forbidden", "Only admin can create admin users")
		}
		if err := access.RequireAdmin(*caller, "Only admin can create admin users"); err != nil {
			return nil, err
		}
	}

	u := &models.User{Username: in.Username, Email: in.Email, Role: string(role)}
	if err := s.uniqueness(ctx, u); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	u.PasswordHash = hash

	if err := s.repo.CreateUser(ctx, u); err != nil {
		return nil, duplicate(err, u)
	}

	var actor *uint
	if caller != nil {
		actor = &caller.ID
	}
	s.audit.Dispatch(audit.Event{UserID: actor, Action: "user_created", Entity: "user", EntityID: &u.ID})
	return u, nil
}

func invalidCredential() error {
	return httperr.ErrUnauthorized("invalid_credentials", "Invalid Credential")
}

// Login exchanges an email and password for a bearer token.
func (s *Service) Login(ctx context.Context, in LoginInput) (string, error) {
	u, err := s.repo.FindUserByEmail(ctx, validators.NormalizeEmail(in.Email))
	if err != nil {
		if errors.Is(err, records.ErrNotFound) {
			return "", invalidCredential()
		}
		return "", err
	}
	if !auth.CheckPassword(u.PasswordHash, in.Password) {
		return "", invalidCredential()
	}

	return s.tokens.Issue(auth.Claims{UserID: u.ID, Username: u.Username, Role: u.Role})
}

func (s *Service) List(ctx context.Context, p access.Principal) ([]models.User, error) {
	if err := access.CanListUsers(p); err != nil {
		return nil, err
	}
	return s.repo.ListUsers(ctx)
}

func (s *Service) Get(ctx context.Context, p access.Principal, id uint) (*models.User, error) {
	u, err := s.repo.GetUser(ctx, id)
	if err != nil {
		return nil, httperr.NotFoundOr(err, "user_not_found", "User with ID: %d, not found!", id)
	}
	if err := access.CanReadUser(p, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Service) Update(ctx context.Context, p access.Principal, id uint, in UpdateInput) (*models.User, error) {
	u, err := s.repo.GetUser(ctx, id)
	if err != nil {
		return nil, httperr.NotFoundOr(err, "user_not_found", "User with ID: %d not found!", id)
	}
	if err := access.CanModifyUser(p, u, "update"); err != nil {
		return nil, err
	}

	if in.Email != nil {
		e := validators.NormalizeEmail(*in.Email)
		in.Email = &e
	}
	if err := in.Validate(); err != nil {
		return nil, badRequest(err)
	}

	if in.Role != nil {
		if err := access.CanAssignRole(p, access.Role(u.Role), access.Role(*in.Role)); err != nil {
			return nil, err
		}
		u.Role = *in.Role
	}
	if in.Username != nil {
		u.Username = *in.Username
	}
	if in.Email != nil {
		u.Email = *in.Email
	}
	if err := s.uniqueness(ctx, u); err != nil {
		return nil, err
	}
	if in.Password != nil {
		hash, err := auth.HashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = hash
	}

	if err := s.repo.UpdateUser(ctx, u); err != nil {
		return nil, duplicate(err, u)
	}

	s.audit.Dispatch(audit.Event{UserID: &p.ID, Action: "user_updated", Entity: "user", EntityID: &u.ID})
	return u, nil
}

// Delete removes the account together with its patients and their
// appointments.
func (s *Service) Delete(ctx context.Context, p access.Principal, id uint) error {
	u, err := s.repo.GetUser(ctx, id)
	if err != nil {
		return httperr.NotFoundOr(err, "user_not_found", "User with ID: %d not found!", id)
	}
	if err := access.CanModifyUser(p, u, "delete"); err != nil {
		return err
	}
	if err := s.repo.DeleteUser(ctx, id); err != nil {
		return httperr.NotFoundOr(err, "user_not_found", "User with ID: %d not found!", id)
	}

	s.audit.Dispatch(audit.Event{UserID: &p.ID, Action: "user_deleted", Entity: "user", EntityID: &id})
	return nil
}

package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinic-scheduler/internal/auth"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/access"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/records"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
)

const ContextPrincipal = "principal"

var (
	errMissingHeader = errors.New("missing_authorization_header")
	errInvalidHeader = errors.New("invalid_authorization_header")
	errUnknownUser   = errors.New("unknown_user")
)

// Authenticator turns a bearer token into a Principal. The user row is
// reloaded on every request so deleted accounts and role changes apply
// immediately.
type Authenticator struct {
	tokens *auth.TokenIssuer
	users  records.UserRepository
}

func NewAuthenticator(tokens *auth.TokenIssuer, users records.UserRepository) *Authenticator {
	return &Authenticator{tokens: tokens, users: users}
}

func bearer(header string) (string, error) {
	if header == "" {
		return "", errMissingHeader
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", errInvalidHeader
	}
	return parts[1], nil
}

func (a *Authenticator) resolve(c *gin.Context, tokenString string) (access.Principal, error) {
	claims, err := a.tokens.Parse(tokenString)
	if err != nil {
		return access.Principal{}, err
	}

	u, err := a.users.GetUser(c.Request.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, records.ErrNotFound) {
			return access.Principal{}, errUnknownUser
		}
		return access.Principal{}, err
	}

	role, ok := access.ParseRole(u.Role)
	if !ok {
		role = access.RolePatient
	}
	return access.Principal{ID: u.ID, Username: u.Username, Role: role}, nil
}

func (a *Authenticator) unauthorized(c *gin.Context, err error) {
	code := "invalid_token"
	switch {
	case errors.Is(err, errMissingHeader), errors.Is(err, errInvalidHeader), errors.Is(err, errUnknownUser):
		code = err.Error()
	case !errors.Is(err, auth.ErrInvalidToken):
		httperr.Respond(c, err)
		c.Abort()
		return
	}
	httperr.Unauthorized(c, code, "Could not validate credentials")
	c.Abort()
}

// Required rejects requests without a valid bearer token.
func (a *Authenticator) Required() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := bearer(c.GetHeader("Authorization"))
		if err != nil {
			a.unauthorized(c, err)
			return
		}

		p, err := a.resolve(c, tokenString)
		if err != nil {
			a.unauthorized(c, err)
			return
		}

		c.Set(ContextPrincipal, p)
		c.Next()
	}
}

// Optional attaches a Principal when a valid token is present and lets
// anonymous requests through. A token that is present but invalid is
// still rejected.
func (a *Authenticator) Optional() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		tokenString, err := bearer(header)
		if err != nil {
			a.unauthorized(c, err)
			return
		}
		p, err := a.resolve(c, tokenString)
		if err != nil {
			a.unauthorized(c, err)
			return
		}

		c.Set(ContextPrincipal, p)
		c.Next()
	}
}

// PrincipalFrom returns the authenticated caller, if any.
func PrincipalFrom(c *gin.Context) (access.Principal, bool) {
	v, ok := c.Get(ContextPrincipal)
	if !ok {
		return access.Principal{}, false
	}
	p, ok := v.(access.Principal)
	return p, ok
}

package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinic-scheduler/internal/dto"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/clinic-scheduler/internal/usecase/user"
)

type AuthHandler struct {
	users *user.Service
}

func NewAuthHandler(users *user.Service) *AuthHandler {
	return &AuthHandler{users: users}
}

// Login accepts a JSON body {email, password} or an OAuth2 password form
// where username carries the email.
func (h *AuthHandler) Login(c *gin.Context) {
	var in user.LoginInput

	if c.ContentType() == "application/x-www-form-urlencoded" || c.ContentType() == "multipart/form-data" {
		in.Email = c.PostForm("username")
		in.Password = c.PostForm("password")
	} else if !bindJSON(c, &in) {
		return
	}

	if in.Email == "" || in.Password == "" {
		httperr.BadRequest(c, "invalid_request", "Email and password are required.")
		return
	}

	token, err := h.users.Login(c.Request.Context(), in)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.BearerToken(token))
}

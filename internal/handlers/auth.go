package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emilythestrangee/videotube/backend/internal/apperror"
	"github.com/emilythestrangee/videotube/backend/internal/middleware"
	"github.com/emilythestrangee/videotube/backend/internal/models"
)

type AuthHandler struct {
	auth AuthService
}

func NewAuthHandler(auth AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register handles user registration
func (h *AuthHandler) Register(c *gin.Context) {
	var input models.RegisterRequest
	if !bindJSON(c, &input) {
		return
	}

	resp, err := h.auth.Register(c.Request.Context(), input)
	if err != nil {
		apperror.HandleError(c, err)
		return
	}

	setTokenCookie(c, resp.Token)
	apperror.HandleSuccess(c, http.StatusCreated, resp, "User registered successfully")
}

// Login handles user login with a username or email
func (h *AuthHandler) Login(c *gin.Context) {
	var input models.LoginRequest
	if !bindJSON(c, &input) {
		return
	}

	resp, err := h.auth.Login(c.Request.Context(), input)
	if err != nil {
		apperror.HandleError(c, err)
		return
	}

	setTokenCookie(c, resp.Token)
	apperror.HandleSuccess(c, http.StatusOK, resp, "User logged in successfully")
}

// The cookie lives for the browser session; the token carries its own expiry.
func setTokenCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.TokenCookie, token, 0, "/", "", c.Request.TLS != nil, true)
}

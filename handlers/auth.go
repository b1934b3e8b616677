package handlers

import (
	"net/http"

	"stayx/services/googleauth"
	"stayx/services/session"
	"stayx/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler serves session bootstrap and Google sign-in.
type AuthHandler struct {
	Session session.Service
	Google  googleauth.GoogleAuthService
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(sessions session.Service, google googleauth.GoogleAuthService) *AuthHandler {
	return &AuthHandler{Session: sessions, Google: google}
}

// BootstrapHandler handles POST /api/auth/session. It verifies a Firebase
// ID token and returns the auth snapshot the client should route on.
func (h *AuthHandler) BootstrapHandler(c *gin.Context) {
	var req struct {
		IDToken  string `json:"idToken" binding:"required"`
		Redirect string `json:"redirect"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	snap, err := h.Session.Bootstrap(c.Request.Context(), req.IDToken, req.Redirect)
	if err != nil {
		utils.GetLogger().Warn("session bootstrap failed", zap.Error(err))
		utils.JSONError(c, http.StatusUnauthorized, "Authentication failed", "")
		return
	}
	c.JSON(http.StatusOK, snap)
}

// CustomTokenHandler handles POST /api/auth/custom-token. The client sends
// a Google ID token; the response carries a Firebase custom token.
func (h *AuthHandler) CustomTokenHandler(c *gin.Context) {
	var req struct {
		IDToken  string `json:"idToken" binding:"required"`
		Redirect string `json:"redirect"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	result, err := h.Google.SignInWithGoogle(c.Request.Context(), googleauth.SignInRequest{
		Mode:     googleauth.ModeIDToken,
		IDToken:  req.IDToken,
		Redirect: req.Redirect,
	})
	if err != nil {
		utils.GetLogger().Warn("google sign-in (id_token) failed", zap.Error(err))
		utils.JSONError(c, http.StatusUnauthorized, "Google sign-in failed", "")
		return
	}
	c.JSON(http.StatusOK, result)
}

// GoogleCallbackHandler handles GET /auth/google/callback for the redirect
// flow. The optional state parameter carries the post-login path.
func (h *AuthHandler) GoogleCallbackHandler(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing authorization code", "")
		return
	}

	result, err := h.Google.SignInWithGoogle(c.Request.Context(), googleauth.SignInRequest{
		Mode:     googleauth.ModeCode,
		Code:     code,
		Redirect: c.Query("state"),
	})
	if err != nil {
		utils.GetLogger().Warn("google sign-in (code) failed", zap.Error(err))
		utils.JSONError(c, http.StatusUnauthorized, "Google sign-in failed", "")
		return
	}
	c.JSON(http.StatusOK, result)
}

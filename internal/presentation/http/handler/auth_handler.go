package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/sellora/pos-gateway/internal/application/service"
	"github.com/sellora/pos-gateway/internal/domain/enum"
	"github.com/sellora/pos-gateway/internal/presentation/http/dto/request"
	"github.com/sellora/pos-gateway/internal/presentation/http/dto/response"
	"github.com/sellora/pos-gateway/pkg/session"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	sessionService *service.SessionService
	store          *session.Store
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(sessionService *service.SessionService, store *session.Store) *AuthHandler {
	return &AuthHandler{sessionService: sessionService, store: store}
}

// Login authenticates against the upstream and persists the session in
// cookie-backed storage. The response names the surface the client should
// route to, mirroring the role-based redirect of the original screen.
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	sess, err := h.sessionService.Login(c.Request.Context(), &service.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	h.store.Set(c, sess)

	response.OK(c, "Login successful", gin.H{
		"userId":   sess.UserID,
		"username": sess.Username,
		"role":     sess.Role,
		"isActive": sess.IsActive,
		"redirect": redirectFor(sess.Role),
	})
}

// Session reports the persisted identity without touching the upstream.
// This backs the redirect-on-load shortcut: a stored role routes the client
// immediately, and staleness surfaces only when a forwarded call fails.
func (h *AuthHandler) Session(c *gin.Context) {
	sess, ok := h.store.Get(c)
	if !ok {
		response.OK(c, "No session", gin.H{"authenticated": false})
		return
	}

	response.OK(c, "Session active", gin.H{
		"authenticated": true,
		"userId":        sess.UserID,
		"username":      sess.Username,
		"role":          sess.Role,
		"isActive":      sess.IsActive,
		"redirect":      redirectFor(sess.Role),
	})
}

// Logout clears the persisted session. Local-only; the upstream has no
// logout endpoint to call.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.store.Clear(c)
	response.OK(c, "Logged out", nil)
}

// redirectFor maps a role to its surface: Admin to the back-office,
// everything else to the cashier screen.
func redirectFor(role enum.Role) string {
	if role == enum.RoleAdmin {
		return "/admin"
	}
	return "/cashier"
}

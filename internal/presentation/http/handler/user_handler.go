package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/sellora/pos-gateway/internal/application/service"
	"github.com/sellora/pos-gateway/internal/presentation/http/dto/request"
	"github.com/sellora/pos-gateway/internal/presentation/http/dto/response"
)

// UserHandler forwards account management requests.
type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List returns all back-office accounts.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Users", users)
}

// Create adds a back-office account.
func (h *UserHandler) Create(c *gin.Context) {
	var req request.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.userService.Create(c.Request.Context(), &service.CreateUserInput{
		Username: req.Username,
		Password: req.Password,
		Role:     req.Role,
	}); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "User created", nil)
}

package service

import (
	"context"

	"github.com/sellora/pos-gateway/internal/domain/entity"
	"github.com/sellora/pos-gateway/internal/domain/repository"
)

// UserService forwards account management to the upstream.
type UserService struct {
	userAPI repository.UserAPI
}

// NewUserService creates a new user service.
func NewUserService(userAPI repository.UserAPI) *UserService {
	return &UserService{userAPI: userAPI}
}

func (s *UserService) List(ctx context.Context) ([]entity.User, error) {
	return s.userAPI.List(ctx)
}

// CreateUserInput contains the fields for a new back-office account.
type CreateUserInput struct {
	Username string
	Password string
	Role     string
}

func (s *UserService) Create(ctx context.Context, input *CreateUserInput) error {
	return s.userAPI.Create(ctx, input.Username, input.Password, input.Role)
}

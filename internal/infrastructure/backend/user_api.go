package backend

import (
	"context"
	"net/http"

	"github.com/sellora/pos-gateway/internal/domain/entity"
	"github.com/sellora/pos-gateway/internal/domain/repository"
)

type userAPI struct {
	client *Client
}

// NewUserAPI creates the upstream user boundary.
func NewUserAPI(client *Client) repository.UserAPI {
	return &userAPI{client: client}
}

func (u *userAPI) List(ctx context.Context) ([]entity.User, error) {
	var users []entity.User
	if err := u.client.do(ctx, http.MethodGet, "/api/Users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

type createUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (u *userAPI) Create(ctx context.Context, username, password, role string) error {
	return u.client.do(ctx, http.MethodPost, "/api/Users", &createUserRequest{
		Username: username,
		Password: password,
		Role:     role,
	}, nil)
}

package backend

import (
	"context"
	"net/http"

	"github.com/sellora/pos-gateway/internal/domain/entity"
	"github.com/sellora/pos-gateway/internal/domain/repository"
	"github.com/sellora/pos-gateway/pkg/apperror"
)

type authAPI struct {
	client *Client
}

// NewAuthAPI creates the upstream auth boundary.
func NewAuthAPI(client *Client) repository.AuthAPI {
	return &authAPI{client: client}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login authenticates against the upstream. Every upstream failure collapses
// into the same invalid-credentials error regardless of the underlying cause,
// matching the observed client behavior.
func (a *authAPI) Login(ctx context.Context, username, password string) (*entity.Session, error) {
	var sess entity.Session
	err := a.client.do(ctx, http.MethodPost, "/api/Auth/login", &loginRequest{
		Username: username,
		Password: password,
	}, &sess)
	if err != nil {
		return nil, apperror.ErrInvalidCredentials
	}
	if sess.AccessToken == "" {
		// Shape validation at the boundary: a success response without a
		// token is not a session.
		return nil, apperror.ErrInvalidCredentials
	}
	return &sess, nil
}

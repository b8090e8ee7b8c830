package repository

import (
	"context"

	"github.com/sellora/pos-gateway/internal/domain/entity"
)

// AuthAPI is the authentication surface of the upstream POS backend.
type AuthAPI interface {
	// Login exchanges credentials for an access token and identity. Any
	// upstream failure is reported uniformly as invalid credentials.
	Login(ctx context.Context, username, password string) (*entity.Session, error)
}

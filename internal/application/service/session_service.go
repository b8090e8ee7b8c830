package service

import (
	"context"

	"github.com/sellora/pos-gateway/internal/domain/entity"
	"github.com/sellora/pos-gateway/internal/domain/repository"
)

// SessionService authenticates users against the upstream backend. It holds
// no state of its own; persistence of the resulting session is the cookie
// store's job.
type SessionService struct {
	authAPI repository.AuthAPI
}

// NewSessionService creates a new session service.
func NewSessionService(authAPI repository.AuthAPI) *SessionService {
	return &SessionService{authAPI: authAPI}
}

// LoginInput contains the credentials for a login attempt.
type LoginInput struct {
	Username string
	Password string
}

// Login exchanges credentials for an upstream session. Failures come back as
// a uniform invalid-credentials error; the upstream's reasons are not
// distinguished.
func (s *SessionService) Login(ctx context.Context, input *LoginInput) (*entity.Session, error) {
	return s.authAPI.Login(ctx, input.Username, input.Password)
}

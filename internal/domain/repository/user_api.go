package repository

import (
	"context"

	"github.com/sellora/pos-gateway/internal/domain/entity"
)

// UserAPI is the account-management surface of the upstream POS backend.
type UserAPI interface {
	List(ctx context.Context) ([]entity.User, error)
	Create(ctx context.Context, username, password string, role string) error
}

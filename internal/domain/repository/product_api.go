package repository

import (
	"context"

	"github.com/sellora/pos-gateway/internal/domain/entity"
)

// ProductAPI is the catalog surface of the upstream POS backend.
type ProductAPI interface {
	List(ctx context.Context) ([]entity.Product, error)
	Create(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, id int64, product *entity.Product) error
	Delete(ctx context.Context, id int64) error
}

package service

import (
	"context"

	"github.com/sellora/pos-gateway/internal/domain/entity"
	"github.com/sellora/pos-gateway/internal/domain/repository"
)

// ProductService forwards catalog management to the upstream field for
// field. No business rules live here.
type ProductService struct {
	productAPI repository.ProductAPI
}

// NewProductService creates a new product service.
func NewProductService(productAPI repository.ProductAPI) *ProductService {
	return &ProductService{productAPI: productAPI}
}

func (s *ProductService) List(ctx context.Context) ([]entity.Product, error) {
	return s.productAPI.List(ctx)
}

// ProductInput contains the writable product fields.
type ProductInput struct {
	Barcode   string
	Name      string
	Unit      string
	SellPrice float64
	StockQty  int
}

func (s *ProductService) Create(ctx context.Context, input *ProductInput) error {
	return s.productAPI.Create(ctx, &entity.Product{
		Barcode:   input.Barcode,
		Name:      input.Name,
		Unit:      input.Unit,
		SellPrice: input.SellPrice,
		StockQty:  input.StockQty,
	})
}

func (s *ProductService) Update(ctx context.Context, id int64, input *ProductInput) error {
	return s.productAPI.Update(ctx, id, &entity.Product{
		ID:        id,
		Barcode:   input.Barcode,
		Name:      input.Name,
		Unit:      input.Unit,
		SellPrice: input.SellPrice,
		StockQty:  input.StockQty,
	})
}

func (s *ProductService) Delete(ctx context.Context, id int64) error {
	return s.productAPI.Delete(ctx, id)
}

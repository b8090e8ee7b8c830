package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sellora/pos-gateway/internal/domain/entity"
	"github.com/sellora/pos-gateway/internal/domain/repository"
)

type productAPI struct {
	client *Client
}

// NewProductAPI creates the upstream product boundary.
func NewProductAPI(client *Client) repository.ProductAPI {
	return &productAPI{client: client}
}

func (p *productAPI) List(ctx context.Context) ([]entity.Product, error) {
	var products []entity.Product
	if err := p.client.do(ctx, http.MethodGet, "/api/Products", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (p *productAPI) Create(ctx context.Context, product *entity.Product) error {
	return p.client.do(ctx, http.MethodPost, "/api/Products", product, nil)
}

func (p *productAPI) Update(ctx context.Context, id int64, product *entity.Product) error {
	return p.client.do(ctx, http.MethodPut, fmt.Sprintf("/api/Products/%d", id), product, nil)
}

func (p *productAPI) Delete(ctx context.Context, id int64) error {
	return p.client.do(ctx, http.MethodDelete, fmt.Sprintf("/api/Products/%d", id), nil, nil)
}

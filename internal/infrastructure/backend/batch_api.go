package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sellora/pos-gateway/internal/domain/entity"
	"github.com/sellora/pos-gateway/internal/domain/repository"
	"github.com/sellora/pos-gateway/pkg/apperror"
)

type batchAPI struct {
	client *Client
}

// NewBatchAPI creates the upstream batch boundary.
func NewBatchAPI(client *Client) repository.BatchAPI {
	return &batchAPI{client: client}
}

func (b *batchAPI) GetLatestCreated(ctx context.Context) (*entity.Batch, error) {
	var batch entity.Batch
	err := b.client.do(ctx, http.MethodGet, "/api/Batches/latest-created", nil, &batch)
	if apperror.IsNotFound(err) {
		// 404 means no open batch exists, not a failure.
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if batch.ID == 0 {
		// Empty or id-less body is equally "no active batch".
		return nil, nil
	}
	return &batch, nil
}

type createBatchRequest struct {
	Status string `json:"status"`
}

func (b *batchAPI) Create(ctx context.Context, status string) error {
	return b.client.do(ctx, http.MethodPost, "/api/Batches", &createBatchRequest{Status: status}, nil)
}

func (b *batchAPI) GetByID(ctx context.Context, id int64) (*entity.Batch, error) {
	var batch entity.Batch
	if err := b.client.do(ctx, http.MethodGet, fmt.Sprintf("/api/Batches/%d", id), nil, &batch); err != nil {
		return nil, err
	}
	if batch.ID == 0 {
		return nil, apperror.NewAppError(http.StatusBadGateway, "malformed upstream response: batch without id")
	}
	return &batch, nil
}

func (b *batchAPI) Checkout(ctx context.Context, id int64, payload *entity.CheckoutPayload) error {
	return b.client.do(ctx, http.MethodPost, fmt.Sprintf("/api/Batches/%d/checkout", id), payload, nil)
}

func (b *batchAPI) List(ctx context.Context) ([]entity.Batch, error) {
	var batches []entity.Batch
	if err := b.client.do(ctx, http.MethodGet, "/api/Batches", nil, &batches); err != nil {
		return nil, err
	}
	return batches, nil
}

func (b *batchAPI) UpdateStatus(ctx context.Context, id int64, update *entity.StatusUpdate) error {
	return b.client.do(ctx, http.MethodPut, fmt.Sprintf("/api/Batches/%d/status", id), update, nil)
}

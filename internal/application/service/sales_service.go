package service

import (
	"context"

	"github.com/sellora/pos-gateway/internal/domain/entity"
	"github.com/sellora/pos-gateway/internal/domain/enum"
	"github.com/sellora/pos-gateway/internal/domain/repository"
)

// SalesService backs the admin sales view: listing batches and applying
// status corrections. Straight CRUD forwarding.
type SalesService struct {
	batchAPI repository.BatchAPI
}

// NewSalesService creates a new sales service.
func NewSalesService(batchAPI repository.BatchAPI) *SalesService {
	return &SalesService{batchAPI: batchAPI}
}

func (s *SalesService) List(ctx context.Context) ([]entity.Batch, error) {
	return s.batchAPI.List(ctx)
}

// StatusUpdateInput contains an admin batch status correction. The upstream
// expects the full payment field set alongside the new status.
type StatusUpdateInput struct {
	Status          string
	GivenAmount     float64
	PaymentMethod   string
	DiscountAmount  float64
	DiscountPercent float64
	ReturnedAmount  float64
}

func (s *SalesService) UpdateStatus(ctx context.Context, id int64, input *StatusUpdateInput) error {
	return s.batchAPI.UpdateStatus(ctx, id, &entity.StatusUpdate{
		Status:          enum.BatchStatus(input.Status),
		GivenAmount:     input.GivenAmount,
		PaymentMethod:   input.PaymentMethod,
		DiscountAmount:  input.DiscountAmount,
		DiscountPercent: input.DiscountPercent,
		ReturnedAmount:  input.ReturnedAmount,
	})
}

package repository

import (
	"context"

	"github.com/sellora/pos-gateway/internal/domain/entity"
)

// BatchAPI is the sales-batch surface of the upstream POS backend. The
// upstream is the sole source of truth; every read returns a fresh copy that
// replaces whatever the gateway held before.
type BatchAPI interface {
	// GetLatestCreated returns the most recently created batch, or (nil, nil)
	// when the upstream reports none (404 or empty body).
	GetLatestCreated(ctx context.Context) (*entity.Batch, error)
	// Create opens a new batch with the given lifecycle status.
	Create(ctx context.Context, status string) error
	// GetByID returns the full batch including its line items.
	GetByID(ctx context.Context, id int64) (*entity.Batch, error)
	// Checkout finalizes a batch. This is the only terminal mutation the
	// gateway issues; a batch transitions to checked-out exactly once.
	Checkout(ctx context.Context, id int64, payload *entity.CheckoutPayload) error
	// List returns all batches for the admin sales view.
	List(ctx context.Context) ([]entity.Batch, error)
	// UpdateStatus applies an admin-side status correction.
	UpdateStatus(ctx context.Context, id int64, update *entity.StatusUpdate) error
}

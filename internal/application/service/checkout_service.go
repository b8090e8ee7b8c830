package service

import (
	"context"

	"github.com/sellora/pos-gateway/internal/domain/entity"
	"github.com/sellora/pos-gateway/internal/domain/enum"
	"github.com/sellora/pos-gateway/internal/domain/repository"
	"github.com/sellora/pos-gateway/internal/infrastructure/backend"
	"github.com/sellora/pos-gateway/pkg/apperror"
)

// CheckoutService is the cashier-side engine: it resolves the single active
// batch (creating one when none exists), keeps its snapshot fresh through the
// watch manager, derives totals, and issues the one-way checkout mutation.
type CheckoutService struct {
	batches repository.BatchAPI
	watcher watchManager
}

// watchManager is the slice of watch.Manager the service needs. Narrowed to
// an interface so tests can observe watch lifecycle without timers.
type watchManager interface {
	Put(batch *entity.Batch)
	Snapshot(id int64) (*entity.Batch, bool)
	Watch(ctx context.Context, id int64)
	Stop(id int64)
}

// NewCheckoutService creates a new checkout service.
func NewCheckoutService(batches repository.BatchAPI, watcher watchManager) *CheckoutService {
	return &CheckoutService{batches: batches, watcher: watcher}
}

// BatchView is what the cashier screen renders: the current batch snapshot,
// the seed payment inputs, derived totals, and whether checkout is possible.
// A failed initialization is carried inline in Error — the screen stays
// usable, checkout stays disabled.
type BatchView struct {
	Batch           *entity.Batch       `json:"batch"`
	Payment         entity.PaymentInput `json:"payment"`
	Totals          entity.Totals       `json:"totals"`
	CheckoutEnabled bool                `json:"checkoutEnabled"`
	Error           string              `json:"error,omitempty"`
}

// ActiveBatch runs the fetch-or-create cycle: take the latest created batch
// if one exists, otherwise create one and re-fetch. The returned view always
// renders; initialization failures are inline, never fatal.
func (s *CheckoutService) ActiveBatch(ctx context.Context) *BatchView {
	latest, err := s.batches.GetLatestCreated(ctx)
	if err != nil {
		// Same tolerance as the original screen: a failed probe is treated
		// as "no batch yet" and the create path decides the outcome.
		latest = nil
	}

	if latest == nil {
		if err := s.batches.Create(ctx, "created"); err != nil {
			return errorView(err)
		}
		latest, err = s.batches.GetLatestCreated(ctx)
		if err != nil {
			return errorView(err)
		}
	}

	if latest == nil {
		// Create reported success but the re-fetch still finds nothing:
		// upstream inconsistency.
		return errorView(apperror.ErrNoActiveBatch)
	}

	detail, err := s.batches.GetByID(ctx, latest.ID)
	if err != nil {
		return errorView(err)
	}

	s.watcher.Put(detail)
	// The poll loop outlives this request; hand it a background context
	// carrying the same upstream credentials.
	s.watcher.Watch(backend.WithToken(context.Background(), backend.TokenFromContext(ctx)), detail.ID)

	seed := detail.PaymentSeed()
	return &BatchView{
		Batch:           detail,
		Payment:         seed,
		Totals:          entity.ComputeTotals(detail.Items, seed),
		CheckoutEnabled: true,
	}
}

// Live returns the freshest known state of a batch: the poll snapshot when
// one exists, otherwise a direct fetch.
func (s *CheckoutService) Live(ctx context.Context, id int64) (*entity.Batch, error) {
	if batch, ok := s.watcher.Snapshot(id); ok {
		return batch, nil
	}
	return s.batches.GetByID(ctx, id)
}

// Preview recomputes totals for the current batch contents and the given
// payment inputs. Pure with respect to the inputs; only the item list comes
// from live state.
func (s *CheckoutService) Preview(ctx context.Context, id int64, in entity.PaymentInput) (entity.Totals, error) {
	batch, err := s.Live(ctx, id)
	if err != nil {
		return entity.Totals{}, err
	}
	return entity.ComputeTotals(batch.Items, in), nil
}

// CheckoutInput carries the cashier's final payment fields. ReturnedAmount is
// an explicit override; zero means "use the computed change due".
type CheckoutInput struct {
	GivenAmount     float64
	ReturnedAmount  float64
	PaymentMethod   string
	DiscountAmount  float64
	DiscountPercent float64
}

// Checkout finalizes the batch. Disabled without a batch id. On success the
// engine resets (watcher stops, snapshot drops) so the next load creates a
// fresh batch; on failure the batch stays active and editable and the caller
// may retry with corrected input.
func (s *CheckoutService) Checkout(ctx context.Context, id int64, in *CheckoutInput) (*entity.CheckoutPayload, error) {
	if id == 0 {
		return nil, apperror.NewBadRequestError("No active batch to check out")
	}
	if !enum.PaymentMethod(in.PaymentMethod).Valid() {
		return nil, apperror.NewBadRequestError("Unknown payment method")
	}

	returned := in.ReturnedAmount
	if returned == 0 {
		batch, err := s.Live(ctx, id)
		if err != nil {
			return nil, err
		}
		totals := entity.ComputeTotals(batch.Items, entity.PaymentInput{
			GivenAmount:     in.GivenAmount,
			DiscountAmount:  in.DiscountAmount,
			DiscountPercent: in.DiscountPercent,
		})
		returned = totals.ChangeDue
	}

	payload := &entity.CheckoutPayload{
		Status:          enum.BatchStatusCheckedOut,
		GivenAmount:     in.GivenAmount,
		PaymentMethod:   in.PaymentMethod,
		DiscountAmount:  in.DiscountAmount,
		DiscountPercent: in.DiscountPercent,
		ReturnedAmount:  returned,
	}

	if err := s.batches.Checkout(ctx, id, payload); err != nil {
		return nil, err
	}

	s.watcher.Stop(id)
	return payload, nil
}

func errorView(err error) *BatchView {
	return &BatchView{Error: apperror.GetAppError(err).Message}
}

package handler

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/sellora/pos-gateway/internal/application/service"
	"github.com/sellora/pos-gateway/internal/domain/entity"
	"github.com/sellora/pos-gateway/internal/presentation/http/dto/request"
	"github.com/sellora/pos-gateway/internal/presentation/http/dto/response"
	"github.com/sellora/pos-gateway/pkg/apperror"
)

// CashierHandler backs the checkout screen.
type CashierHandler struct {
	checkoutService *service.CheckoutService
}

// NewCashierHandler creates a new cashier handler
func NewCashierHandler(checkoutService *service.CheckoutService) *CashierHandler {
	return &CashierHandler{checkoutService: checkoutService}
}

// GetBatch runs the fetch-or-create cycle and returns the renderable view.
// Initialization failures are inline in the view, never an HTTP error: the
// screen stays usable with checkout disabled.
func (h *CashierHandler) GetBatch(c *gin.Context) {
	view := h.checkoutService.ActiveBatch(c.Request.Context())
	if view.Error != "" {
		response.OK(c, "No active batch", view)
		return
	}
	response.OK(c, "Active batch", view)
}

// LiveBatch serves the freshest poll snapshot for the given batch, letting
// the screen reflect items scanned by another device between full loads.
func (h *CashierHandler) LiveBatch(c *gin.Context) {
	id := PathID(c)
	if id == 0 {
		response.BadRequest(c, "Invalid batch id")
		return
	}

	batch, err := h.checkoutService.Live(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Batch snapshot", batch)
}

// Totals previews the derived totals for the current batch contents and the
// submitted payment fields.
func (h *CashierHandler) Totals(c *gin.Context) {
	id := PathID(c)
	if id == 0 {
		response.BadRequest(c, "Invalid batch id")
		return
	}

	var req request.TotalsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	totals, err := h.checkoutService.Preview(c.Request.Context(), id, entity.PaymentInput{
		GivenAmount:     req.GivenAmount,
		DiscountAmount:  req.DiscountAmount,
		DiscountPercent: req.DiscountPercent,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Totals", totals)
}

// Checkout finalizes the batch. On failure the batch stays active and the
// upstream's message is surfaced for the cashier to correct and retry.
func (h *CashierHandler) Checkout(c *gin.Context) {
	id := PathID(c)
	if id == 0 {
		response.Error(c, apperror.NewBadRequestError("No active batch to check out"))
		return
	}

	var req request.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	payload, err := h.checkoutService.Checkout(c.Request.Context(), id, &service.CheckoutInput{
		GivenAmount:     req.GivenAmount,
		ReturnedAmount:  req.ReturnedAmount,
		PaymentMethod:   req.PaymentMethod,
		DiscountAmount:  req.DiscountAmount,
		DiscountPercent: req.DiscountPercent,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	if sess := GetSession(c); sess != nil {
		log.Printf("batch %d checked out by %s (%s)", id, sess.Username, payload.PaymentMethod)
	}

	// The client reloads on success, re-entering the fetch-or-create cycle.
	response.OK(c, "Checkout complete", gin.H{
		"batchId": id,
		"payload": payload,
		"reload":  true,
	})
}

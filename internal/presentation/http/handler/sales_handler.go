package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/sellora/pos-gateway/internal/application/service"
	"github.com/sellora/pos-gateway/internal/presentation/http/dto/request"
	"github.com/sellora/pos-gateway/internal/presentation/http/dto/response"
)

// SalesHandler backs the admin sales information view.
type SalesHandler struct {
	salesService *service.SalesService
}

// NewSalesHandler creates a new sales handler
func NewSalesHandler(salesService *service.SalesService) *SalesHandler {
	return &SalesHandler{salesService: salesService}
}

// List returns every batch for the sales table.
func (h *SalesHandler) List(c *gin.Context) {
	batches, err := h.salesService.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Batches", batches)
}

// UpdateStatus applies an admin status correction to a batch.
func (h *SalesHandler) UpdateStatus(c *gin.Context) {
	id := PathID(c)
	if id == 0 {
		response.BadRequest(c, "Invalid batch id")
		return
	}

	var req request.BatchStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.salesService.UpdateStatus(c.Request.Context(), id, &service.StatusUpdateInput{
		Status:          req.Status,
		GivenAmount:     req.GivenAmount,
		PaymentMethod:   req.PaymentMethod,
		DiscountAmount:  req.DiscountAmount,
		DiscountPercent: req.DiscountPercent,
		ReturnedAmount:  req.ReturnedAmount,
	}); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Batch status updated", nil)
}

package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/sellora/pos-gateway/internal/application/service"
	"github.com/sellora/pos-gateway/internal/presentation/http/dto/request"
	"github.com/sellora/pos-gateway/internal/presentation/http/dto/response"
)

// ProductHandler forwards catalog management requests.
type ProductHandler struct {
	productService *service.ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// List returns the full catalog.
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.productService.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Products", products)
}

// Create adds a catalog entry.
func (h *ProductHandler) Create(c *gin.Context) {
	var req request.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.productService.Create(c.Request.Context(), productInput(&req)); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Product created", nil)
}

// Update rewrites a catalog entry.
func (h *ProductHandler) Update(c *gin.Context) {
	id := PathID(c)
	if id == 0 {
		response.BadRequest(c, "Invalid product id")
		return
	}

	var req request.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.productService.Update(c.Request.Context(), id, productInput(&req)); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Product updated", nil)
}

// Delete removes a catalog entry.
func (h *ProductHandler) Delete(c *gin.Context) {
	id := PathID(c)
	if id == 0 {
		response.BadRequest(c, "Invalid product id")
		return
	}

	if err := h.productService.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

func productInput(req *request.ProductRequest) *service.ProductInput {
	return &service.ProductInput{
		Barcode:   req.Barcode,
		Name:      req.Name,
		Unit:      req.Unit,
		SellPrice: req.SellPrice,
		StockQty:  req.StockQty,
	}
}

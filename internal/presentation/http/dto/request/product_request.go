package request

// ProductRequest represents a product create or update request
type ProductRequest struct {
	Barcode   string  `json:"barcode" binding:"required"`
	Name      string  `json:"name" binding:"required"`
	Unit      string  `json:"unit" binding:"required"`
	SellPrice float64 `json:"sellPrice" binding:"min=0"`
	StockQty  int     `json:"stockQty" binding:"min=0"`
}

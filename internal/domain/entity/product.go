package entity

// Product is a catalog entry managed from the admin back-office. Stock and
// pricing live upstream; the gateway forwards mutations field for field.
type Product struct {
	ID        int64   `json:"id"`
	Barcode   string  `json:"barcode"`
	Name      string  `json:"name"`
	Unit      string  `json:"unit"`
	SellPrice float64 `json:"sellPrice"`
	StockQty  int     `json:"stockQty"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

// LowStockThreshold is the stock level at or below which a product counts as
// low stock on the admin dashboard.
const LowStockThreshold = 10

// LowStock reports whether the product should be flagged on the dashboard.
func (p *Product) LowStock() bool {
	return p.StockQty <= LowStockThreshold
}

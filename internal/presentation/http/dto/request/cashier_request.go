package request

// TotalsRequest asks for a totals preview against the current batch
// contents. Discounts and amounts may legitimately be zero, so nothing here
// is required.
type TotalsRequest struct {
	GivenAmount     float64 `json:"givenAmount" binding:"min=0"`
	DiscountAmount  float64 `json:"discountAmount" binding:"min=0"`
	DiscountPercent float64 `json:"discountPercent" binding:"min=0"`
}

// CheckoutRequest carries the cashier's final payment fields for the
// checkout mutation. ReturnedAmount zero means "use the computed change due".
type CheckoutRequest struct {
	GivenAmount     float64 `json:"givenAmount" binding:"min=0"`
	ReturnedAmount  float64 `json:"returnedAmount" binding:"min=0"`
	PaymentMethod   string  `json:"paymentMethod" binding:"required"`
	DiscountAmount  float64 `json:"discountAmount" binding:"min=0"`
	DiscountPercent float64 `json:"discountPercent" binding:"min=0"`
}

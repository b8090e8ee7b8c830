package entity

import "github.com/sellora/pos-gateway/internal/domain/enum"

// Batch represents a single sales transaction as owned by the upstream
// backend. The gateway holds a read-mostly copy that is replaced wholesale on
// every fetch; nothing here is persisted locally.
type Batch struct {
	ID              int64            `json:"id"`
	BatchCode       string           `json:"batchCode"`
	CustomerID      string           `json:"customerId"`
	Status          enum.BatchStatus `json:"status"`
	Subtotal        float64          `json:"subtotal"`
	DiscountAmount  float64          `json:"discountAmount"`
	DiscountPercent float64          `json:"discountPercent"`
	Payable         float64          `json:"payable"`
	GivenAmount     float64          `json:"givenAmount"`
	PaymentMethod   string           `json:"paymentMethod"`
	ReturnedAmount  float64          `json:"returnedAmount"`
	Items           []BatchItem      `json:"items"`
}

// BatchItem is one scanned product line within a batch. Items are appended
// upstream by the scanning flow and are immutable from the gateway's point of
// view. LineTotal is computed and trusted from the upstream; the gateway never
// recomputes qty * unitPrice.
type BatchItem struct {
	ID          int64   `json:"id"`
	Barcode     string  `json:"barcode"`
	ProductName string  `json:"productName"`
	Qty         int     `json:"qty"`
	UnitPrice   float64 `json:"unitPrice"`
	LineTotal   float64 `json:"lineTotal"`
}

// CheckoutPayload is the terminal mutation the gateway issues for a batch.
// Field names match the upstream wire format exactly.
type CheckoutPayload struct {
	Status          enum.BatchStatus `json:"status"`
	GivenAmount     float64          `json:"givenAmount"`
	PaymentMethod   string           `json:"paymentMethod"`
	DiscountAmount  float64          `json:"discountAmount"`
	DiscountPercent float64          `json:"discountPercent"`
	ReturnedAmount  float64          `json:"returnedAmount"`
}

// StatusUpdate is the admin-side batch mutation sent to
// PUT /api/Batches/{id}/status. The upstream expects the full payment field
// set alongside the new status.
type StatusUpdate struct {
	Status          enum.BatchStatus `json:"status"`
	GivenAmount     float64          `json:"givenAmount"`
	PaymentMethod   string           `json:"paymentMethod"`
	DiscountAmount  float64          `json:"discountAmount"`
	DiscountPercent float64          `json:"discountPercent"`
	ReturnedAmount  float64          `json:"returnedAmount"`
}

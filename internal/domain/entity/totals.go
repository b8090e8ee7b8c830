package entity

// PaymentInput carries the cashier-entered payment fields that feed the
// totals computation. These are seeded once from the fetched batch and are
// caller-owned afterwards; the background refresh never touches them.
type PaymentInput struct {
	GivenAmount     float64 `json:"givenAmount"`
	DiscountAmount  float64 `json:"discountAmount"`
	DiscountPercent float64 `json:"discountPercent"`
}

// Totals are the display-only derived values for a batch. They are never
// persisted; values stay at full float64 precision, rounding is a rendering
// concern.
type Totals struct {
	Subtotal      float64 `json:"subtotal"`
	TotalDiscount float64 `json:"totalDiscount"`
	Payable       float64 `json:"payable"`
	ChangeDue     float64 `json:"changeDue"`
}

// ComputeTotals derives the running totals for a set of line items and the
// current payment inputs. Pure function of its arguments:
//
//	subtotal      = sum of line totals (trusted from the upstream)
//	totalDiscount = discountAmount + subtotal * discountPercent / 100
//	payable       = max(0, subtotal - totalDiscount)
//	changeDue     = max(0, givenAmount - payable)
//
// A discount can never drive payable negative, and a short given amount
// yields zero change, not negative change.
func ComputeTotals(items []BatchItem, in PaymentInput) Totals {
	var subtotal float64
	for _, it := range items {
		subtotal += it.LineTotal
	}

	totalDiscount := in.DiscountAmount + subtotal*in.DiscountPercent/100

	payable := subtotal - totalDiscount
	if payable < 0 {
		payable = 0
	}

	changeDue := in.GivenAmount - payable
	if changeDue < 0 {
		changeDue = 0
	}

	return Totals{
		Subtotal:      subtotal,
		TotalDiscount: totalDiscount,
		Payable:       payable,
		ChangeDue:     changeDue,
	}
}

// PaymentSeed extracts the initial payment inputs from a freshly fetched
// batch. Used exactly once per engine cycle; afterwards the inputs belong to
// the caller.
func (b *Batch) PaymentSeed() PaymentInput {
	return PaymentInput{
		GivenAmount:     b.GivenAmount,
		DiscountAmount:  b.DiscountAmount,
		DiscountPercent: b.DiscountPercent,
	}
}

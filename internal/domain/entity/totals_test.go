package entity

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestComputeTotals(t *testing.T) {
	tests := []struct {
		name  string
		items []BatchItem
		in    PaymentInput
		want  Totals
	}{
		{
			name:  "empty batch",
			items: nil,
			in:    PaymentInput{},
			want:  Totals{Subtotal: 0, TotalDiscount: 0, Payable: 0, ChangeDue: 0},
		},
		{
			name: "percent discount and exact change",
			items: []BatchItem{
				{Qty: 2, UnitPrice: 10, LineTotal: 20},
			},
			in:   PaymentInput{GivenAmount: 20, DiscountAmount: 0, DiscountPercent: 10},
			want: Totals{Subtotal: 20, TotalDiscount: 2, Payable: 18, ChangeDue: 2},
		},
		{
			name: "flat and percent discounts combine",
			items: []BatchItem{
				{LineTotal: 50},
				{LineTotal: 50},
			},
			in:   PaymentInput{GivenAmount: 100, DiscountAmount: 5, DiscountPercent: 10},
			want: Totals{Subtotal: 100, TotalDiscount: 15, Payable: 85, ChangeDue: 15},
		},
		{
			name: "discount exceeding subtotal clamps payable to zero",
			items: []BatchItem{
				{LineTotal: 10},
			},
			in:   PaymentInput{GivenAmount: 0, DiscountAmount: 50, DiscountPercent: 0},
			want: Totals{Subtotal: 10, TotalDiscount: 50, Payable: 0, ChangeDue: 0},
		},
		{
			name: "short payment clamps change to zero",
			items: []BatchItem{
				{LineTotal: 18},
			},
			in:   PaymentInput{GivenAmount: 15},
			want: Totals{Subtotal: 18, TotalDiscount: 0, Payable: 18, ChangeDue: 0},
		},
		{
			name: "line totals are trusted, not recomputed",
			items: []BatchItem{
				// LineTotal deliberately disagrees with qty * unitPrice.
				{Qty: 3, UnitPrice: 10, LineTotal: 25},
			},
			in:   PaymentInput{GivenAmount: 25},
			want: Totals{Subtotal: 25, TotalDiscount: 0, Payable: 25, ChangeDue: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeTotals(tt.items, tt.in)
			if !almostEqual(got.Subtotal, tt.want.Subtotal) {
				t.Errorf("Subtotal = %v, want %v", got.Subtotal, tt.want.Subtotal)
			}
			if !almostEqual(got.TotalDiscount, tt.want.TotalDiscount) {
				t.Errorf("TotalDiscount = %v, want %v", got.TotalDiscount, tt.want.TotalDiscount)
			}
			if !almostEqual(got.Payable, tt.want.Payable) {
				t.Errorf("Payable = %v, want %v", got.Payable, tt.want.Payable)
			}
			if !almostEqual(got.ChangeDue, tt.want.ChangeDue) {
				t.Errorf("ChangeDue = %v, want %v", got.ChangeDue, tt.want.ChangeDue)
			}
		})
	}
}

func TestComputeTotalsIsPure(t *testing.T) {
	items := []BatchItem{{LineTotal: 42.5}, {LineTotal: 7.5}}
	in := PaymentInput{GivenAmount: 60, DiscountAmount: 2, DiscountPercent: 5}

	first := ComputeTotals(items, in)
	second := ComputeTotals(items, in)

	if first != second {
		t.Errorf("recomputation diverged: %+v vs %+v", first, second)
	}
}

func TestPaymentSeed(t *testing.T) {
	b := &Batch{
		GivenAmount:     12,
		DiscountAmount:  3,
		DiscountPercent: 7,
		ReturnedAmount:  1,
	}

	seed := b.PaymentSeed()
	if seed.GivenAmount != 12 || seed.DiscountAmount != 3 || seed.DiscountPercent != 7 {
		t.Errorf("unexpected seed: %+v", seed)
	}
}

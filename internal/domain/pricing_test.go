package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDerivePricing(t *testing.T) {
	tests := []struct {
		name     string
		items    []PricingItem
		discount Discount
		taxRate  TaxRate
		tip      int64
		want     PricingBreakdown
	}{
		{
			name: "sums line totals into subtotal",
			items: []PricingItem{
				{Quantity: 2, PricePerUnit: 2500},
				{Quantity: 1, PricePerUnit: 1500},
				{Quantity: 3, PricePerUnit: 500},
			},
			want: PricingBreakdown{Subtotal: 8000, TotalAmount: 8000},
		},
		{
			name:  "empty selection derives to zero",
			items: nil,
			want:  PricingBreakdown{},
		},
		{
			name: "percentage code with whole-number value, tax on discounted subtotal",
			items: []PricingItem{
				{Quantity: 1, PricePerUnit: 1000},
			},
			discount: &DiscountCode{Type: DiscountPercentage, Value: 10},
			taxRate:  TaxRateFromPercent(8.25),
			want: PricingBreakdown{
				Subtotal:       1000,
				DiscountAmount: 100,
				TaxAmount:      74, // round(900 * 0.0825)
				TotalAmount:    974,
			},
		},
		{
			name: "percentage code with fractional value",
			items: []PricingItem{
				{Quantity: 1, PricePerUnit: 1000},
			},
			discount: &DiscountCode{Type: DiscountPercentage, Value: 0.1},
			want: PricingBreakdown{
				Subtotal:       1000,
				DiscountAmount: 100,
				TotalAmount:    900,
			},
		},
		{
			name: "discount capped by max discount amount",
			items: []PricingItem{
				{Quantity: 1, PricePerUnit: 10000},
			},
			discount: &DiscountCode{Type: DiscountPercentage, Value: 50, MaxDiscountAmount: ptr(int64(2000))},
			want: PricingBreakdown{
				Subtotal:       10000,
				DiscountAmount: 2000,
				TotalAmount:    8000,
			},
		},
		{
			name: "discount never exceeds subtotal",
			items: []PricingItem{
				{Quantity: 1, PricePerUnit: 500},
			},
			discount: &DiscountCode{Type: DiscountFixed, Value: 2000},
			want: PricingBreakdown{
				Subtotal:       500,
				DiscountAmount: 500,
				TotalAmount:    0,
			},
		},
		{
			name: "flat discount with tax and tip",
			items: []PricingItem{
				{Quantity: 2, PricePerUnit: 5000},
			},
			discount: FlatDiscount(1000),
			taxRate:  TaxRateFromPercent(7),
			tip:      1500,
			want: PricingBreakdown{
				Subtotal:       10000,
				DiscountAmount: 1000,
				TaxAmount:      630,
				TipAmount:      1500,
				TotalAmount:    11130,
			},
		},
		{
			name: "negative tip treated as no tip",
			items: []PricingItem{
				{Quantity: 1, PricePerUnit: 1000},
			},
			tip:  -500,
			want: PricingBreakdown{Subtotal: 1000, TotalAmount: 1000},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DerivePricing(tt.items, tt.discount, tt.taxRate, tt.tip)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDerivePricingIsOrderInvariant(t *testing.T) {
	items := []PricingItem{
		{Quantity: 3, PricePerUnit: 1999},
		{Quantity: 1, PricePerUnit: 12550},
		{Quantity: 7, PricePerUnit: 305},
	}
	reordered := []PricingItem{items[2], items[0], items[1]}

	discount := &DiscountCode{Type: DiscountPercentage, Value: 15}
	taxRate := TaxRateFromPercent(6.5)

	assert.Equal(t,
		DerivePricing(items, discount, taxRate, 200),
		DerivePricing(reordered, discount, taxRate, 200),
	)
}

func TestDerivePricingIsIdempotent(t *testing.T) {
	items := []PricingItem{
		{Quantity: 4, PricePerUnit: 2750},
		{Quantity: 2, PricePerUnit: 999},
	}
	discount := &DiscountCode{Type: DiscountPercentage, Value: 12.5}
	taxRate := TaxRateFromPercent(8.25)

	first := DerivePricing(items, discount, taxRate, 500)
	second := DerivePricing(items, discount, taxRate, 500)

	assert.Equal(t, first, second)
}

func TestTotalIsMonotonicInTip(t *testing.T) {
	items := []PricingItem{
		{Quantity: 2, PricePerUnit: 4500},
	}
	discount := FlatDiscount(1500)
	taxRate := TaxRateFromPercent(8.25)

	var previous int64 = -1

	for _, tip := range []int64{0, 1, 100, 101, 999, 5000} {
		got := DerivePricing(items, discount, taxRate, tip)
		assert.GreaterOrEqual(t, got.TotalAmount, previous, "tip=%d", tip)
		previous = got.TotalAmount
	}
}

func TestPreservedTaxRate(t *testing.T) {
	tests := []struct {
		name             string
		originalSubtotal int64
		originalDiscount int64
		originalTax      int64
		newAfterDiscount int64
		wantTax          int64
	}{
		{
			name:             "reapplies the original effective rate to a new subtotal",
			originalSubtotal: 1000,
			originalDiscount: 0,
			originalTax:      80,
			newAfterDiscount: 2000,
			wantTax:          160,
		},
		{
			name:             "rate survives a discounted original",
			originalSubtotal: 2000,
			originalDiscount: 1000,
			originalTax:      83, // 8.25% of 1000, rounded
			newAfterDiscount: 3000,
			wantTax:          249,
		},
		{
			name:             "zero original after-discount yields zero rate",
			originalSubtotal: 1000,
			originalDiscount: 1000,
			originalTax:      0,
			newAfterDiscount: 5000,
			wantTax:          0,
		},
		{
			name:             "fully zero original yields zero rate",
			originalSubtotal: 0,
			originalDiscount: 0,
			originalTax:      0,
			newAfterDiscount: 1000,
			wantTax:          0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate := PreservedTaxRate(tt.originalSubtotal, tt.originalDiscount, tt.originalTax)
			assert.Equal(t, tt.wantTax, rate.TaxOn(tt.newAfterDiscount))
		})
	}
}

func TestTipPresets(t *testing.T) {
	presets := TipPresets(900)

	assert.Equal(t, []TipPreset{
		{Percent: 10, Amount: 90},
		{Percent: 15, Amount: 135},
		{Percent: 20, Amount: 180},
		{Percent: 25, Amount: 225},
	}, presets)

	// 333 * 15% = 49.95, rounds up
	presets = TipPresets(333)
	assert.Equal(t, int64(50), presets[1].Amount)
}

func ptr[T any](v T) *T {
	return &v
}

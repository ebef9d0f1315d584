package domain

import (
	"github.com/shopspring/decimal"
)

// PricingItem is one priced line of a selection or booking, in integer cents.
type PricingItem struct {
	Quantity     int
	PricePerUnit int64
}

func (p PricingItem) LineTotal() int64 {
	return int64(p.Quantity) * p.PricePerUnit
}

// PricingBreakdown holds the four derived monetary fields of a booking plus
// the tip, all in integer cents.
//
// Invariant: TotalAmount = max(0, Subtotal-DiscountAmount) + TaxAmount + TipAmount.
type PricingBreakdown struct {
	Subtotal       int64
	DiscountAmount int64
	TaxAmount      int64
	TipAmount      int64
	TotalAmount    int64
}

// Discount is anything that can reduce a subtotal: a flat amount in cents or a
// discount code. The returned amount is not yet capped by the subtotal, that
// happens inside DerivePricing.
type Discount interface {
	AmountFor(subtotalCents int64) int64
}

// FlatDiscount is a fixed reduction in cents.
type FlatDiscount int64

func (d FlatDiscount) AmountFor(int64) int64 {
	return int64(d)
}

// TaxRate is a sales tax rate expressed as a percentage in the 0-100 range.
// The zero value applies no tax.
type TaxRate struct {
	percent decimal.Decimal
}

func TaxRateFromPercent(percent float64) TaxRate {
	return TaxRate{percent: decimal.NewFromFloat(percent)}
}

// PreservedTaxRate derives the effective tax rate of an existing booking from
// its original monetary fields, so that editing item quantities reapplies the
// original jurisdiction's rate without another tax lookup. If the original
// discounted subtotal was zero the rate is zero.
func PreservedTaxRate(originalSubtotal, originalDiscount, originalTax int64) TaxRate {
	afterDiscount := originalSubtotal - originalDiscount
	if afterDiscount <= 0 {
		return TaxRate{}
	}

	rate := decimal.NewFromInt(originalTax).
		Div(decimal.NewFromInt(afterDiscount)).
		Mul(decimal.NewFromInt(100))

	return TaxRate{percent: rate}
}

// TaxOn computes the tax in cents on an already discounted subtotal, rounding
// to the nearest cent.
func (t TaxRate) TaxOn(afterDiscountCents int64) int64 {
	if t.percent.IsZero() || afterDiscountCents <= 0 {
		return 0
	}

	return decimal.NewFromInt(afterDiscountCents).
		Mul(t.percent).
		Div(decimal.NewFromInt(100)).
		Round(0).
		IntPart()
}

// DerivePricing computes subtotal, discount, tax and total from scratch. It is
// a pure function of its four inputs; callers re-run it whenever any input
// changes rather than patching individual fields.
//
// Tax applies to the discounted subtotal. The tip is independent of tax and is
// added last.
func DerivePricing(items []PricingItem, discount Discount, taxRate TaxRate, tipCents int64) PricingBreakdown {
	var subtotal int64
	for _, item := range items {
		subtotal += item.LineTotal()
	}

	var discountAmount int64
	if discount != nil {
		discountAmount = discount.AmountFor(subtotal)
	}
	if discountAmount < 0 {
		discountAmount = 0
	}
	if discountAmount > subtotal {
		discountAmount = subtotal
	}

	afterDiscount := subtotal - discountAmount
	if afterDiscount < 0 {
		afterDiscount = 0
	}

	tax := taxRate.TaxOn(afterDiscount)

	if tipCents < 0 {
		tipCents = 0
	}

	total := afterDiscount + tax + tipCents
	if total < 0 {
		total = 0
	}

	return PricingBreakdown{
		Subtotal:       subtotal,
		DiscountAmount: discountAmount,
		TaxAmount:      tax,
		TipAmount:      tipCents,
		TotalAmount:    total,
	}
}

// TipPreset is a suggested tip computed against the discounted subtotal.
type TipPreset struct {
	Percent int
	Amount  int64
}

var tipPresetPercentages = []int{10, 15, 20, 25}

// TipPresets returns the suggested tip amounts for the given discounted
// subtotal, rounded to the nearest cent.
func TipPresets(afterDiscountCents int64) []TipPreset {
	presets := make([]TipPreset, len(tipPresetPercentages))

	for i, pct := range tipPresetPercentages {
		amount := decimal.NewFromInt(afterDiscountCents).
			Mul(decimal.NewFromInt(int64(pct))).
			Div(decimal.NewFromInt(100)).
			Round(0).
			IntPart()

		presets[i] = TipPreset{Percent: pct, Amount: amount}
	}

	return presets
}

package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed_amount"
)

// DiscountCode is a promotional code reducing the subtotal by a percentage or
// a fixed amount of cents, optionally capped.
type DiscountCode struct {
	ID                int
	Code              string
	Type              DiscountType
	Value             float64
	MaxDiscountAmount *int64
	Active            bool
	ExpiresAt         *time.Time
	CreatedAt         time.Time
}

// AmountFor computes the discount in cents for the given subtotal.
//
// Percentage values greater than 1 are treated as whole-number percents
// (10 means 10%), values up to 1 as fractions (0.1 means 10%). The result is
// rounded to the nearest cent, capped by MaxDiscountAmount when present, and
// finally capped by the subtotal itself.
func (d *DiscountCode) AmountFor(subtotalCents int64) int64 {
	var amount int64

	switch d.Type {
	case DiscountPercentage:
		fraction := decimal.NewFromFloat(d.Value)
		if fraction.GreaterThan(decimal.NewFromInt(1)) {
			fraction = fraction.Div(decimal.NewFromInt(100))
		}

		amount = decimal.NewFromInt(subtotalCents).Mul(fraction).Round(0).IntPart()
	case DiscountFixed:
		amount = decimal.NewFromFloat(d.Value).Round(0).IntPart()
	}

	if amount < 0 {
		amount = 0
	}

	if d.MaxDiscountAmount != nil && amount > *d.MaxDiscountAmount {
		amount = *d.MaxDiscountAmount
	}

	if amount > subtotalCents {
		amount = subtotalCents
	}

	return amount
}

// Validate reports whether the code can currently be applied.
func (d *DiscountCode) Validate(now time.Time) error {
	if !d.Active {
		return ErrDiscountCodeInactive
	}

	if d.ExpiresAt != nil && now.After(*d.ExpiresAt) {
		return ErrDiscountCodeExpired
	}

	return nil
}

type DiscountCodeRepository interface {
	GetByCode(ctx context.Context, code string) (*DiscountCode, error)
	GetById(ctx context.Context, id int) (*DiscountCode, error)
	GetAll(ctx context.Context, pagination Pagination) ([]*DiscountCode, *Metadata, error)
	Create(ctx context.Context, code *DiscountCode) error
	SetActive(ctx context.Context, id int, active bool) error
}

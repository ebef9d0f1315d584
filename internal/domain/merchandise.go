package domain

import (
	"context"
	"time"
)

// MerchandiseVariant is one sellable variant of a merchandise item, e.g. a
// shirt size. Availability is tracked per merchandise+variant combination.
type MerchandiseVariant struct {
	Option            string
	QuantityAvailable int
}

// TripMerchandise is a merchandise item offered on a specific trip. Items
// without variants track availability on the item itself.
type TripMerchandise struct {
	ID                int
	TripID            int
	Name              string
	Description       string
	Price             int64
	QuantityAvailable int
	Variants          []MerchandiseVariant
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// AvailableFor returns the purchasable quantity for the given variant, or for
// the item itself when variant is nil. Unknown variants have no availability.
func (m *TripMerchandise) AvailableFor(variant *string) int {
	if variant == nil {
		if len(m.Variants) > 0 {
			return 0
		}

		return m.QuantityAvailable
	}

	for _, v := range m.Variants {
		if v.Option == *variant {
			return v.QuantityAvailable
		}
	}

	return 0
}

type MerchandiseRepository interface {
	GetByTripId(ctx context.Context, tripID int) ([]*TripMerchandise, error)
	GetById(ctx context.Context, id int) (*TripMerchandise, error)
	Create(ctx context.Context, merch *TripMerchandise) error
	Update(ctx context.Context, merch *TripMerchandise) error
}

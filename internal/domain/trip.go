package domain

import (
	"context"
	"time"
)

// Mission is the event a trip sails out to see, e.g. a rocket launch window.
type Mission struct {
	ID          int
	Name        string
	Description string
	LaunchTime  *time.Time
	CreatedAt   time.Time
}

type TripStatus string

const (
	TripStatusScheduled TripStatus = "scheduled"
	TripStatusDeparted  TripStatus = "departed"
	TripStatusCompleted TripStatus = "completed"
	TripStatusCancelled TripStatus = "cancelled"
)

type Trip struct {
	ID             int
	MissionID      int
	MissionName    string
	Name           string
	DepartureTime  time.Time
	ReturnTime     time.Time
	TaxRatePercent float64
	Status         TripStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
	Version        int
}

// EffectivePricingItem is the per ticket-type price and remaining inventory
// for a specific trip+boat pairing.
type EffectivePricingItem struct {
	TicketType string
	Price      int64
	Remaining  int
}

// TripBoat is the assignment of a boat to a trip. Its capacity is independent
// of the boat's nominal capacity: a boat may sail a launch-viewing trip with
// fewer sellable seats than it physically has.
type TripBoat struct {
	ID          int
	TripID      int
	BoatID      int
	BoatName    string
	MaxCapacity int
}

// TripBoatAvailability is a TripBoat with its live availability: seats left
// net of sold tickets and wizard holds, plus effective per-type pricing.
type TripBoatAvailability struct {
	TripBoat
	RemainingCapacity int
	Pricing           []EffectivePricingItem
}

func (tb *TripBoatAvailability) PricingFor(ticketType string) (EffectivePricingItem, bool) {
	for _, p := range tb.Pricing {
		if p.TicketType == ticketType {
			return p, true
		}
	}

	return EffectivePricingItem{}, false
}

type MissionRepository interface {
	GetAll(ctx context.Context) ([]*Mission, error)
	GetById(ctx context.Context, id int) (*Mission, error)
	Create(ctx context.Context, mission *Mission) error
}

type TripRepository interface {
	GetAll(ctx context.Context, missionID int, pagination Pagination) ([]*Trip, *Metadata, error)
	GetById(ctx context.Context, id int) (*Trip, error)
	Create(ctx context.Context, trip *Trip) error
	Update(ctx context.Context, trip *Trip) error
	Delete(ctx context.Context, id int) error

	// GetBoatAvailability returns the boats assigned to a trip with remaining
	// capacity net of sold tickets, and effective per-type pricing net of sold
	// per-type inventory. Wizard holds are layered on top by the caller.
	GetBoatAvailability(ctx context.Context, tripID int) ([]*TripBoatAvailability, error)
	GetBoatAvailabilityForBoat(ctx context.Context, tripID, boatID int) (*TripBoatAvailability, error)
	AssignBoat(ctx context.Context, tripBoat *TripBoat, pricing []EffectivePricingItem) error
}

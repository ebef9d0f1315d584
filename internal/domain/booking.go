package domain

import (
	"context"
	"crypto/rand"
	"time"
)

type BookingStatus string

const (
	BookingStatusDraft     BookingStatus = "draft"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCheckedIn BookingStatus = "checked_in"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentStatusPending           PaymentStatus = "pending_payment"
	PaymentStatusPaid              PaymentStatus = "paid"
	PaymentStatusFree              PaymentStatus = "free"
	PaymentStatusFailed            PaymentStatus = "failed"
	PaymentStatusRefunded          PaymentStatus = "refunded"
	PaymentStatusPartiallyRefunded PaymentStatus = "partially_refunded"
)

type ItemStatus string

const (
	ItemStatusActive   ItemStatus = "active"
	ItemStatusRefunded ItemStatus = "refunded"
)

type ItemType string

const (
	ItemTypeTicket      ItemType = "ticket"
	ItemTypeMerchandise ItemType = "merchandise"
)

// Booking is a customer's purchase record. All monetary fields are integer
// cents; TotalAmount = max(0, Subtotal-DiscountAmount) + TaxAmount + TipAmount.
type Booking struct {
	ID                 int
	ConfirmationCode   string
	WizardSessionID    string
	CustomerName       string
	CustomerEmail      string
	CustomerPhone      string
	Status             BookingStatus
	PaymentStatus      PaymentStatus
	Subtotal           int64
	DiscountAmount     int64
	TaxAmount          int64
	TipAmount          int64
	TotalAmount        int64
	DiscountCodeID     *int
	PaymentIntentID    *string
	RefundedAdjustment int64
	Items              []BookingItem
	Version            int
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// BookingItem is one line of a booking: a ticket tied to a trip+boat, or a
// merchandise item tied additionally to a trip merchandise record.
type BookingItem struct {
	ID                int
	BookingID         int
	TripID            int
	BoatID            int
	ItemType          ItemType
	TicketType        string
	TripMerchandiseID *int
	VariantOption     *string
	Quantity          int
	PricePerUnit      int64
	Status            ItemStatus
	RefundReason      *string
	RefundNotes       *string
}

func (i BookingItem) LineTotal() int64 {
	return int64(i.Quantity) * i.PricePerUnit
}

// PricingItems projects the booking's active items into pricing lines, in item
// order.
func (b *Booking) PricingItems() []PricingItem {
	items := make([]PricingItem, 0, len(b.Items))

	for _, item := range b.Items {
		if item.Status != ItemStatusActive {
			continue
		}

		items = append(items, PricingItem{Quantity: item.Quantity, PricePerUnit: item.PricePerUnit})
	}

	return items
}

// TicketCount returns the number of seats the booking occupies on a boat.
// Merchandise lines do not occupy seats.
func (b *Booking) TicketCount() int {
	var count int

	for _, item := range b.Items {
		if item.ItemType == ItemTypeTicket && item.Status == ItemStatusActive {
			count += item.Quantity
		}
	}

	return count
}

// CanCheckIn reports whether the booking may transition to checked_in.
func (b *Booking) CanCheckIn() bool {
	return b.Status == BookingStatusConfirmed &&
		(b.PaymentStatus == PaymentStatusPaid ||
			b.PaymentStatus == PaymentStatusFree ||
			b.PaymentStatus == PaymentStatusPartiallyRefunded)
}

// Confirmation codes skip lookalike characters (0/O, 1/I/L) so they survive
// being read over the phone at the dock.
const confirmationCodeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

const confirmationCodeLength = 8

func GenerateConfirmationCode() (string, error) {
	randomBytes := make([]byte, confirmationCodeLength)
	_, err := rand.Read(randomBytes)
	if err != nil {
		return "", err
	}

	code := make([]byte, confirmationCodeLength)
	for i, b := range randomBytes {
		code[i] = confirmationCodeAlphabet[int(b)%len(confirmationCodeAlphabet)]
	}

	return string(code), nil
}

// BookingItemQuantityUpdate is one requested quantity change in a booking
// edit. A quantity of zero deletes the item.
type BookingItemQuantityUpdate struct {
	ItemID   int
	Quantity int
}

// BookingFilters narrows admin booking searches.
type BookingFilters struct {
	Pagination
	ConfirmationCode string
	CustomerEmail    string
	TripID           int
}

type TripStats struct {
	TripID         int
	TripName       string
	DepartureTime  time.Time
	Bookings       int
	TicketsSold    int
	Revenue        int64
	RefundedAmount int64
}

type BookingRepository interface {
	Create(ctx context.Context, booking *Booking) error
	GetById(ctx context.Context, id int) (*Booking, error)
	GetByConfirmationCode(ctx context.Context, code string) (*Booking, error)
	GetByWizardSessionId(ctx context.Context, wizardSessionID string) (*Booking, error)
	GetAll(ctx context.Context, filters BookingFilters) ([]*Booking, *Metadata, error)
	UpdateItems(ctx context.Context, booking *Booking, updates []BookingItemQuantityUpdate, pricing PricingBreakdown) error
	UpdateStatus(ctx context.Context, id int, status BookingStatus, version int) error
	UpdatePaymentStatus(ctx context.Context, id int, status PaymentStatus) error
	SetPaymentIntent(ctx context.Context, id int, paymentIntentID string) error
	// ApplyRefund flips the listed items to refunded, adds the adjustment to
	// the booking's refund adjustment and moves the payment status, all in
	// one transaction guarded by the booking version.
	ApplyRefund(ctx context.Context, booking *Booking, itemIDs []int, adjustment int64, reason, notes string, paymentStatus PaymentStatus) error
	GetTripStats(ctx context.Context, from, to time.Time) ([]TripStats, error)
}

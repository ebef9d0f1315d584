package mocks

import (
	"context"
	"time"

	"github.com/harborline/boat-tour-booking/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockBookingRepo struct {
	mock.Mock
	domain.BookingRepository
}

func (m *MockBookingRepo) Create(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingRepo) GetById(ctx context.Context, id int) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepo) GetByConfirmationCode(ctx context.Context, code string) (*domain.Booking, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepo) GetByWizardSessionId(ctx context.Context, wizardSessionID string) (*domain.Booking, error) {
	args := m.Called(ctx, wizardSessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepo) GetAll(ctx context.Context, filters domain.BookingFilters) ([]*domain.Booking, *domain.Metadata, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]*domain.Booking), args.Get(1).(*domain.Metadata), args.Error(2)
}

func (m *MockBookingRepo) UpdateItems(
	ctx context.Context,
	booking *domain.Booking,
	updates []domain.BookingItemQuantityUpdate,
	pricing domain.PricingBreakdown) error {

	args := m.Called(ctx, booking, updates, pricing)
	return args.Error(0)
}

func (m *MockBookingRepo) UpdateStatus(ctx context.Context, id int, status domain.BookingStatus, version int) error {
	args := m.Called(ctx, id, status, version)
	return args.Error(0)
}

func (m *MockBookingRepo) UpdatePaymentStatus(ctx context.Context, id int, status domain.PaymentStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockBookingRepo) SetPaymentIntent(ctx context.Context, id int, paymentIntentID string) error {
	args := m.Called(ctx, id, paymentIntentID)
	return args.Error(0)
}

func (m *MockBookingRepo) ApplyRefund(
	ctx context.Context,
	booking *domain.Booking,
	itemIDs []int,
	adjustment int64,
	reason, notes string,
	paymentStatus domain.PaymentStatus) error {

	args := m.Called(ctx, booking, itemIDs, adjustment, reason, notes, paymentStatus)
	return args.Error(0)
}

func (m *MockBookingRepo) GetTripStats(ctx context.Context, from, to time.Time) ([]domain.TripStats, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TripStats), args.Error(1)
}

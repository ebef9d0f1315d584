package mocks

import (
	"context"

	"github.com/harborline/boat-tour-booking/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockTripRepo struct {
	mock.Mock
	domain.TripRepository
}

func (m *MockTripRepo) GetAll(ctx context.Context, missionID int, pagination domain.Pagination) ([]*domain.Trip, *domain.Metadata, error) {
	args := m.Called(ctx, missionID, pagination)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]*domain.Trip), args.Get(1).(*domain.Metadata), args.Error(2)
}

func (m *MockTripRepo) GetById(ctx context.Context, id int) (*domain.Trip, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Trip), args.Error(1)
}

func (m *MockTripRepo) Create(ctx context.Context, trip *domain.Trip) error {
	args := m.Called(ctx, trip)
	return args.Error(0)
}

func (m *MockTripRepo) Update(ctx context.Context, trip *domain.Trip) error {
	args := m.Called(ctx, trip)
	return args.Error(0)
}

func (m *MockTripRepo) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTripRepo) GetBoatAvailability(ctx context.Context, tripID int) ([]*domain.TripBoatAvailability, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.TripBoatAvailability), args.Error(1)
}

func (m *MockTripRepo) GetBoatAvailabilityForBoat(ctx context.Context, tripID, boatID int) (*domain.TripBoatAvailability, error) {
	args := m.Called(ctx, tripID, boatID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TripBoatAvailability), args.Error(1)
}

func (m *MockTripRepo) AssignBoat(ctx context.Context, tripBoat *domain.TripBoat, pricing []domain.EffectivePricingItem) error {
	args := m.Called(ctx, tripBoat, pricing)
	return args.Error(0)
}

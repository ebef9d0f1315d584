package mocks

import (
	"context"

	"github.com/harborline/boat-tour-booking/internal/domain"
)

type MockMerchandiseRepo struct {
	domain.MerchandiseRepository
	GetByTripIdFunc func(ctx context.Context, tripID int) ([]*domain.TripMerchandise, error)
	GetByIdFunc     func(ctx context.Context, id int) (*domain.TripMerchandise, error)
	CreateFunc      func(ctx context.Context, merch *domain.TripMerchandise) error
	UpdateFunc      func(ctx context.Context, merch *domain.TripMerchandise) error
}

func (m *MockMerchandiseRepo) GetByTripId(ctx context.Context, tripID int) ([]*domain.TripMerchandise, error) {
	return m.GetByTripIdFunc(ctx, tripID)
}

func (m *MockMerchandiseRepo) GetById(ctx context.Context, id int) (*domain.TripMerchandise, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockMerchandiseRepo) Create(ctx context.Context, merch *domain.TripMerchandise) error {
	return m.CreateFunc(ctx, merch)
}

func (m *MockMerchandiseRepo) Update(ctx context.Context, merch *domain.TripMerchandise) error {
	return m.UpdateFunc(ctx, merch)
}

package mocks

import (
	"context"

	"github.com/harborline/boat-tour-booking/internal/domain"
)

type MockBoatRepo struct {
	domain.BoatRepository
	GetAllFunc  func(ctx context.Context) ([]*domain.Boat, error)
	GetByIdFunc func(ctx context.Context, id int) (*domain.Boat, error)
	CreateFunc  func(ctx context.Context, boat *domain.Boat) error
	UpdateFunc  func(ctx context.Context, boat *domain.Boat) error
}

func (m *MockBoatRepo) GetAll(ctx context.Context) ([]*domain.Boat, error) {
	return m.GetAllFunc(ctx)
}

func (m *MockBoatRepo) GetById(ctx context.Context, id int) (*domain.Boat, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockBoatRepo) Create(ctx context.Context, boat *domain.Boat) error {
	return m.CreateFunc(ctx, boat)
}

func (m *MockBoatRepo) Update(ctx context.Context, boat *domain.Boat) error {
	return m.UpdateFunc(ctx, boat)
}

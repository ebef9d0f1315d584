package mocks

import (
	"context"

	"github.com/harborline/boat-tour-booking/internal/domain"
)

type MockMissionRepo struct {
	domain.MissionRepository
	GetAllFunc  func(ctx context.Context) ([]*domain.Mission, error)
	GetByIdFunc func(ctx context.Context, id int) (*domain.Mission, error)
	CreateFunc  func(ctx context.Context, mission *domain.Mission) error
}

func (m *MockMissionRepo) GetAll(ctx context.Context) ([]*domain.Mission, error) {
	return m.GetAllFunc(ctx)
}

func (m *MockMissionRepo) GetById(ctx context.Context, id int) (*domain.Mission, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockMissionRepo) Create(ctx context.Context, mission *domain.Mission) error {
	return m.CreateFunc(ctx, mission)
}

package mocks

import (
	"context"

	"github.com/harborline/boat-tour-booking/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockDiscountRepo struct {
	mock.Mock
	domain.DiscountCodeRepository
}

func (m *MockDiscountRepo) GetByCode(ctx context.Context, code string) (*domain.DiscountCode, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DiscountCode), args.Error(1)
}

func (m *MockDiscountRepo) GetById(ctx context.Context, id int) (*domain.DiscountCode, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DiscountCode), args.Error(1)
}

func (m *MockDiscountRepo) GetAll(ctx context.Context, pagination domain.Pagination) ([]*domain.DiscountCode, *domain.Metadata, error) {
	args := m.Called(ctx, pagination)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]*domain.DiscountCode), args.Get(1).(*domain.Metadata), args.Error(2)
}

func (m *MockDiscountRepo) Create(ctx context.Context, code *domain.DiscountCode) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

func (m *MockDiscountRepo) SetActive(ctx context.Context, id int, active bool) error {
	args := m.Called(ctx, id, active)
	return args.Error(0)
}

package mocks

import (
	"context"

	"github.com/harborline/boat-tour-booking/internal/domain"
)

type MockAdminUserRepo struct {
	domain.AdminUserRepository
	GetByEmailFunc func(ctx context.Context, email string) (*domain.AdminUser, error)
	GetByIdFunc    func(ctx context.Context, id int) (*domain.AdminUser, error)
	CreateFunc     func(ctx context.Context, user *domain.AdminUser) error
}

func (m *MockAdminUserRepo) GetByEmail(ctx context.Context, email string) (*domain.AdminUser, error) {
	return m.GetByEmailFunc(ctx, email)
}

func (m *MockAdminUserRepo) GetById(ctx context.Context, id int) (*domain.AdminUser, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockAdminUserRepo) Create(ctx context.Context, user *domain.AdminUser) error {
	return m.CreateFunc(ctx, user)
}

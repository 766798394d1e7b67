package repository

import (
	"context"

	"github.com/aaravmahajanofficial/cart-service/internal/models"
	"github.com/stretchr/testify/mock"
)

// MockCartRepository is a testify mock of CartRepository for service tests.
type MockCartRepository struct {
	mock.Mock
}

func NewMockCartRepository() *MockCartRepository {
	return &MockCartRepository{}
}

func (m *MockCartRepository) List(ctx context.Context) ([]models.CartItem, error) {
	args := m.Called(ctx)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]models.CartItem), args.Error(1)
}

func (m *MockCartRepository) GetByID(ctx context.Context, id int64) (*models.CartItem, error) {
	args := m.Called(ctx, id)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.CartItem), args.Error(1)
}

func (m *MockCartRepository) Create(ctx context.Context, item *models.CartItem) error {
	args := m.Called(ctx, item)

	return args.Error(0)
}

func (m *MockCartRepository) Update(ctx context.Context, item *models.CartItem) error {
	args := m.Called(ctx, item)

	return args.Error(0)
}

func (m *MockCartRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

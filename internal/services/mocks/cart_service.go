package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/cart-service/internal/models"
	"github.com/stretchr/testify/mock"
)

// CartService is a testify mock of service.CartService for handler tests.
type CartService struct {
	mock.Mock
}

func (m *CartService) ListItems(ctx context.Context) ([]models.CartItem, error) {
	args := m.Called(ctx)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]models.CartItem), args.Error(1)
}

func (m *CartService) GetItem(ctx context.Context, id int64) (*models.CartItem, error) {
	args := m.Called(ctx, id)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.CartItem), args.Error(1)
}

func (m *CartService) AddItem(ctx context.Context, req *models.CreateCartItemRequest) (*models.CartItem, error) {
	args := m.Called(ctx, req)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.CartItem), args.Error(1)
}

func (m *CartService) UpdateItem(ctx context.Context, id int64, req *models.UpdateCartItemRequest) (*models.CartItem, error) {
	args := m.Called(ctx, id, req)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.CartItem), args.Error(1)
}

func (m *CartService) RemoveItem(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

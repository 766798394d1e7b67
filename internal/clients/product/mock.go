package product

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockClient is a testify mock of Client for use in service tests.
type MockClient struct {
	mock.Mock
}

func NewMockClient() *MockClient {
	return &MockClient{}
}

func (m *MockClient) GetProduct(ctx context.Context, productID int64) (*Product, error) {
	args := m.Called(ctx, productID)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*Product), args.Error(1)
}

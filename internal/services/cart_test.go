package service_test

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/cart-service/internal/clients/product"
	apperrors "github.com/aaravmahajanofficial/cart-service/internal/errors"
	"github.com/aaravmahajanofficial/cart-service/internal/models"
	repository "github.com/aaravmahajanofficial/cart-service/internal/repositories"
	service "github.com/aaravmahajanofficial/cart-service/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupCartServiceTest() (*repository.MockCartRepository, *product.MockClient, service.CartService) {
	mockRepo := repository.NewMockCartRepository()
	mockProducts := product.NewMockClient()
	cartService := service.NewCartService(mockRepo, mockProducts)

	return mockRepo, mockProducts, cartService
}

func floatPtr(v float64) *float64 {
	return &v
}

func TestListItems(t *testing.T) {
	ctx := t.Context()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockRepo, _, cartService := setupCartServiceTest()
		existing := []models.CartItem{
			{ID: 2, ProductID: 20, Name: "Beta", Quantity: 1, Price: 5.0},
			{ID: 1, ProductID: 10, Name: "Alpha", Quantity: 2, Price: 10.0},
		}
		mockRepo.On("List", ctx).Return(existing, nil).Once()

		// Act
		items, err := cartService.ListItems(ctx)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, existing, items)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure - Database Error", func(t *testing.T) {
		// Arrange
		mockRepo, _, cartService := setupCartServiceTest()
		dbError := errors.New("database connection failed")
		mockRepo.On("List", ctx).Return(nil, dbError).Once()

		// Act
		items, err := cartService.ListItems(ctx)

		// Assert
		require.Error(t, err)
		assert.Nil(t, items)
		appErr, ok := apperrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.ErrCodeDatabaseError, appErr.Code)
		assert.ErrorIs(t, err, dbError)
		mockRepo.AssertExpectations(t)
	})
}

func TestGetItem(t *testing.T) {
	ctx := t.Context()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockRepo, _, cartService := setupCartServiceTest()
		existing := &models.CartItem{ID: 1, ProductID: 5, Name: "Widget", Quantity: 2, Price: 20.0}
		mockRepo.On("GetByID", ctx, int64(1)).Return(existing, nil).Once()

		// Act
		item, err := cartService.GetItem(ctx, 1)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, existing, item)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure - Not Found", func(t *testing.T) {
		// Arrange
		mockRepo, _, cartService := setupCartServiceTest()
		mockRepo.On("GetByID", ctx, int64(999)).Return(nil, sql.ErrNoRows).Once()

		// Act
		item, err := cartService.GetItem(ctx, 999)

		// Assert
		require.Error(t, err)
		assert.Nil(t, item)
		appErr, ok := apperrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.ErrCodeNotFound, appErr.Code)
		assert.Equal(t, "Cart item not found", appErr.Message)
		mockRepo.AssertExpectations(t)
	})
}

func TestAddItem(t *testing.T) {
	ctx := t.Context()

	t.Run("Success - Price Is Unit Price Times Quantity", func(t *testing.T) {
		// Arrange
		mockRepo, mockProducts, cartService := setupCartServiceTest()
		req := &models.CreateCartItemRequest{ProductID: 5, Quantity: 2}

		mockProducts.On("GetProduct", ctx, int64(5)).
			Return(&product.Product{ID: 5, Name: "Widget", Price: floatPtr(10.0)}, nil).Once()
		mockRepo.On("Create", ctx, mock.AnythingOfType("*models.CartItem")).Return(nil).Once()

		// Act
		item, err := cartService.AddItem(ctx, req)

		// Assert
		require.NoError(t, err)
		require.NotNil(t, item)
		assert.Equal(t, int64(5), item.ProductID)
		assert.Equal(t, "Widget", item.Name)
		assert.Equal(t, 2, item.Quantity)
		assert.InDelta(t, 20.0, item.Price, 0.0001, "Price should be unit price * quantity")
		mockRepo.AssertExpectations(t)
		mockProducts.AssertExpectations(t)
	})

	t.Run("Success - Product Name Is Sanitized", func(t *testing.T) {
		// Arrange
		mockRepo, mockProducts, cartService := setupCartServiceTest()
		req := &models.CreateCartItemRequest{ProductID: 5, Quantity: 1}

		mockProducts.On("GetProduct", ctx, int64(5)).
			Return(&product.Product{ID: 5, Name: `<script>alert(1)</script>Widget`, Price: floatPtr(10.0)}, nil).Once()
		mockRepo.On("Create", ctx, mock.AnythingOfType("*models.CartItem")).Return(nil).Once()

		// Act
		item, err := cartService.AddItem(ctx, req)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "Widget", item.Name, "Markup from the upstream name should be stripped")
		mockRepo.AssertExpectations(t)
		mockProducts.AssertExpectations(t)
	})

	t.Run("Failure - Product Not Found", func(t *testing.T) {
		// Arrange
		mockRepo, mockProducts, cartService := setupCartServiceTest()
		req := &models.CreateCartItemRequest{ProductID: 42, Quantity: 2}

		mockProducts.On("GetProduct", ctx, int64(42)).Return(nil, product.ErrNotFound).Once()

		// Act
		item, err := cartService.AddItem(ctx, req)

		// Assert
		require.Error(t, err)
		assert.Nil(t, item)
		appErr, ok := apperrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.ErrCodeUpstreamError, appErr.Code)
		assert.Equal(t, "Product not found", appErr.Message)
		assert.Equal(t, 404, appErr.StatusCode)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		mockProducts.AssertExpectations(t)
	})

	t.Run("Failure - Product Has No Price", func(t *testing.T) {
		// Arrange
		mockRepo, mockProducts, cartService := setupCartServiceTest()
		req := &models.CreateCartItemRequest{ProductID: 5, Quantity: 2}

		mockProducts.On("GetProduct", ctx, int64(5)).
			Return(&product.Product{ID: 5, Name: "Widget"}, nil).Once()

		// Act
		item, err := cartService.AddItem(ctx, req)

		// Assert
		require.Error(t, err)
		assert.Nil(t, item)
		appErr, ok := apperrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, "Product not found", appErr.Message)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		mockProducts.AssertExpectations(t)
	})

	t.Run("Failure - Database Error", func(t *testing.T) {
		// Arrange
		mockRepo, mockProducts, cartService := setupCartServiceTest()
		req := &models.CreateCartItemRequest{ProductID: 5, Quantity: 2}
		dbError := errors.New("database insertion error")

		mockProducts.On("GetProduct", ctx, int64(5)).
			Return(&product.Product{ID: 5, Name: "Widget", Price: floatPtr(10.0)}, nil).Once()
		mockRepo.On("Create", ctx, mock.AnythingOfType("*models.CartItem")).Return(dbError).Once()

		// Act
		item, err := cartService.AddItem(ctx, req)

		// Assert
		require.Error(t, err)
		assert.Nil(t, item)
		appErr, ok := apperrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.ErrCodeDatabaseError, appErr.Code)
		assert.ErrorIs(t, err, dbError)
		mockRepo.AssertExpectations(t)
		mockProducts.AssertExpectations(t)
	})
}

func TestUpdateItem(t *testing.T) {
	ctx := t.Context()

	existingItem := func() *models.CartItem {
		return &models.CartItem{
			ID:        1,
			ProductID: 5,
			Name:      "Widget",
			Quantity:  2,
			Price:     20.0,
			CreatedAt: time.Now().Add(-time.Hour),
			UpdatedAt: time.Now().Add(-time.Hour),
		}
	}

	t.Run("Success - Price Recomputed From Fresh Lookup", func(t *testing.T) {
		// Arrange
		mockRepo, mockProducts, cartService := setupCartServiceTest()
		req := &models.UpdateCartItemRequest{Quantity: 3}

		mockRepo.On("GetByID", ctx, int64(1)).Return(existingItem(), nil).Once()
		mockProducts.On("GetProduct", ctx, int64(5)).
			Return(&product.Product{ID: 5, Name: "Widget", Price: floatPtr(12.0)}, nil).Once()
		mockRepo.On("Update", ctx, mock.AnythingOfType("*models.CartItem")).Return(nil).Once()

		// Act
		item, err := cartService.UpdateItem(ctx, 1, req)

		// Assert
		require.NoError(t, err)
		require.NotNil(t, item)
		assert.Equal(t, 3, item.Quantity)
		assert.InDelta(t, 36.0, item.Price, 0.0001, "Price should track the fresh unit price")
		assert.Equal(t, "Widget", item.Name, "Name snapshot is not refreshed on update")
		mockRepo.AssertExpectations(t)
		mockProducts.AssertExpectations(t)
	})

	t.Run("Failure - Cart Item Not Found Skips Product Lookup", func(t *testing.T) {
		// Arrange
		mockRepo, mockProducts, cartService := setupCartServiceTest()
		req := &models.UpdateCartItemRequest{Quantity: 3}

		mockRepo.On("GetByID", ctx, int64(999)).Return(nil, sql.ErrNoRows).Once()

		// Act
		item, err := cartService.UpdateItem(ctx, 999, req)

		// Assert
		require.Error(t, err)
		assert.Nil(t, item)
		appErr, ok := apperrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.ErrCodeNotFound, appErr.Code)
		assert.Equal(t, "Cart item not found", appErr.Message)
		mockProducts.AssertNotCalled(t, "GetProduct", mock.Anything, mock.Anything)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure - Product Unavailable Leaves Item Unmodified", func(t *testing.T) {
		// Arrange
		mockRepo, mockProducts, cartService := setupCartServiceTest()
		req := &models.UpdateCartItemRequest{Quantity: 3}

		mockRepo.On("GetByID", ctx, int64(1)).Return(existingItem(), nil).Once()
		mockProducts.On("GetProduct", ctx, int64(5)).Return(nil, product.ErrNotFound).Once()

		// Act
		item, err := cartService.UpdateItem(ctx, 1, req)

		// Assert
		require.Error(t, err)
		assert.Nil(t, item)
		appErr, ok := apperrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.ErrCodeUpstreamError, appErr.Code)
		assert.Equal(t, "Product not found or price unavailable", appErr.Message)
		assert.Equal(t, 404, appErr.StatusCode)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		mockRepo.AssertExpectations(t)
		mockProducts.AssertExpectations(t)
	})

	t.Run("Failure - Product Has No Price", func(t *testing.T) {
		// Arrange
		mockRepo, mockProducts, cartService := setupCartServiceTest()
		req := &models.UpdateCartItemRequest{Quantity: 3}

		mockRepo.On("GetByID", ctx, int64(1)).Return(existingItem(), nil).Once()
		mockProducts.On("GetProduct", ctx, int64(5)).
			Return(&product.Product{ID: 5, Name: "Widget"}, nil).Once()

		// Act
		item, err := cartService.UpdateItem(ctx, 1, req)

		// Assert
		require.Error(t, err)
		assert.Nil(t, item)
		appErr, ok := apperrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, "Product not found or price unavailable", appErr.Message)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		mockRepo.AssertExpectations(t)
		mockProducts.AssertExpectations(t)
	})

	t.Run("Failure - Database Error On Persist", func(t *testing.T) {
		// Arrange
		mockRepo, mockProducts, cartService := setupCartServiceTest()
		req := &models.UpdateCartItemRequest{Quantity: 3}
		dbError := errors.New("database update error")

		mockRepo.On("GetByID", ctx, int64(1)).Return(existingItem(), nil).Once()
		mockProducts.On("GetProduct", ctx, int64(5)).
			Return(&product.Product{ID: 5, Name: "Widget", Price: floatPtr(12.0)}, nil).Once()
		mockRepo.On("Update", ctx, mock.AnythingOfType("*models.CartItem")).Return(dbError).Once()

		// Act
		item, err := cartService.UpdateItem(ctx, 1, req)

		// Assert
		require.Error(t, err)
		assert.Nil(t, item)
		appErr, ok := apperrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.ErrCodeDatabaseError, appErr.Code)
		mockRepo.AssertExpectations(t)
		mockProducts.AssertExpectations(t)
	})
}

func TestRemoveItem(t *testing.T) {
	ctx := t.Context()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockRepo, _, cartService := setupCartServiceTest()
		existing := &models.CartItem{ID: 1, ProductID: 5, Name: "Widget", Quantity: 2, Price: 20.0}

		mockRepo.On("GetByID", ctx, int64(1)).Return(existing, nil).Once()
		mockRepo.On("Delete", ctx, int64(1)).Return(nil).Once()

		// Act
		err := cartService.RemoveItem(ctx, 1)

		// Assert
		require.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure - Not Found", func(t *testing.T) {
		// Arrange
		mockRepo, _, cartService := setupCartServiceTest()
		mockRepo.On("GetByID", ctx, int64(999)).Return(nil, sql.ErrNoRows).Once()

		// Act
		err := cartService.RemoveItem(ctx, 999)

		// Assert
		require.Error(t, err)
		appErr, ok := apperrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.ErrCodeNotFound, appErr.Code)
		assert.Equal(t, "Cart item not found", appErr.Message)
		mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure - Database Error", func(t *testing.T) {
		// Arrange
		mockRepo, _, cartService := setupCartServiceTest()
		existing := &models.CartItem{ID: 1, ProductID: 5, Name: "Widget", Quantity: 2, Price: 20.0}
		dbError := errors.New("database deletion error")

		mockRepo.On("GetByID", ctx, int64(1)).Return(existing, nil).Once()
		mockRepo.On("Delete", ctx, int64(1)).Return(dbError).Once()

		// Act
		err := cartService.RemoveItem(ctx, 1)

		// Assert
		require.Error(t, err)
		appErr, ok := apperrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.ErrCodeDatabaseError, appErr.Code)
		assert.ErrorIs(t, err, dbError)
		mockRepo.AssertExpectations(t)
	})
}

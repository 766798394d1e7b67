package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/aaravmahajanofficial/cart-service/internal/clients/product"
	apperrors "github.com/aaravmahajanofficial/cart-service/internal/errors"
	"github.com/aaravmahajanofficial/cart-service/internal/models"
	repository "github.com/aaravmahajanofficial/cart-service/internal/repositories"
	"github.com/microcosm-cc/bluemonday"
)

type CartService interface {
	ListItems(ctx context.Context) ([]models.CartItem, error)
	GetItem(ctx context.Context, id int64) (*models.CartItem, error)
	AddItem(ctx context.Context, req *models.CreateCartItemRequest) (*models.CartItem, error)
	UpdateItem(ctx context.Context, id int64, req *models.UpdateCartItemRequest) (*models.CartItem, error)
	RemoveItem(ctx context.Context, id int64) error
}

type cartService struct {
	repo      repository.CartRepository
	products  product.Client
	sanitizer *bluemonday.Policy
}

func NewCartService(repo repository.CartRepository, products product.Client) CartService {
	return &cartService{
		repo:     repo,
		products: products,
		// the product name comes from another service and is echoed back to
		// clients, strip any markup before persisting the snapshot
		sanitizer: bluemonday.StrictPolicy(),
	}
}

func (s *cartService) ListItems(ctx context.Context) ([]models.CartItem, error) {

	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.DatabaseError("Failed to fetch cart items").WithError(err)
	}

	return items, nil
}

func (s *cartService) GetItem(ctx context.Context, id int64) (*models.CartItem, error) {

	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFoundError("Cart item not found").WithError(err)
		}

		return nil, apperrors.DatabaseError("Failed to fetch cart item").WithError(err)
	}

	return item, nil
}

func (s *cartService) AddItem(ctx context.Context, req *models.CreateCartItemRequest) (*models.CartItem, error) {

	p, err := s.products.GetProduct(ctx, req.ProductID)
	if err != nil {
		return nil, apperrors.UpstreamError("Product not found").WithError(err)
	}

	if p.Price == nil {
		return nil, apperrors.UpstreamError("Product not found")
	}

	item := &models.CartItem{
		ProductID: req.ProductID,
		Name:      s.sanitizer.Sanitize(p.Name),
		Quantity:  req.Quantity,
		Price:     *p.Price * float64(req.Quantity),
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, apperrors.DatabaseError("Failed to create cart item").WithError(err)
	}

	return item, nil
}

func (s *cartService) UpdateItem(ctx context.Context, id int64, req *models.UpdateCartItemRequest) (*models.CartItem, error) {

	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFoundError("Cart item not found").WithError(err)
		}

		return nil, apperrors.DatabaseError("Failed to fetch cart item").WithError(err)
	}

	// price is always recomputed from a fresh lookup, never carried forward
	p, err := s.products.GetProduct(ctx, item.ProductID)
	if err != nil {
		return nil, apperrors.UpstreamError("Product not found or price unavailable").WithError(err)
	}

	if p.Price == nil {
		return nil, apperrors.UpstreamError("Product not found or price unavailable")
	}

	item.Quantity = req.Quantity
	item.Price = *p.Price * float64(req.Quantity)

	if err := s.repo.Update(ctx, item); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFoundError("Cart item not found").WithError(err)
		}

		return nil, apperrors.DatabaseError("Failed to update cart item").WithError(err)
	}

	return item, nil
}

func (s *cartService) RemoveItem(ctx context.Context, id int64) error {

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperrors.NotFoundError("Cart item not found").WithError(err)
		}

		return apperrors.DatabaseError("Failed to fetch cart item").WithError(err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperrors.NotFoundError("Cart item not found").WithError(err)
		}

		return apperrors.DatabaseError("Failed to delete cart item").WithError(err)
	}

	return nil
}

package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aaravmahajanofficial/cart-service/internal/models"
	"github.com/aaravmahajanofficial/cart-service/internal/utils"
)

// CartRepository is CRUD over cart_items. Lookups for missing rows surface
// sql.ErrNoRows, the service layer decides what that means.
type CartRepository interface {
	List(ctx context.Context) ([]models.CartItem, error)
	GetByID(ctx context.Context, id int64) (*models.CartItem, error)
	Create(ctx context.Context, item *models.CartItem) error
	Update(ctx context.Context, item *models.CartItem) error
	Delete(ctx context.Context, id int64) error
}

type cartRepository struct {
	DB *sql.DB
}

func NewCartRepo(db *sql.DB) CartRepository {
	return &cartRepository{DB: db}
}

func (r *cartRepository) List(ctx context.Context) ([]models.CartItem, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, product_id, name, quantity, price, created_at, updated_at
		FROM cart_items
		ORDER BY created_at DESC
	`

	rows, err := r.DB.QueryContext(dbCtx, query)
	if err != nil {
		return nil, fmt.Errorf("querying database: %w", err)
	}

	defer rows.Close()

	items := []models.CartItem{}

	for rows.Next() {
		var item models.CartItem

		err := rows.Scan(&item.ID, &item.ProductID, &item.Name, &item.Quantity, &item.Price, &item.CreatedAt, &item.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}

		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return items, nil
}

func (r *cartRepository) GetByID(ctx context.Context, id int64) (*models.CartItem, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, product_id, name, quantity, price, created_at, updated_at
		FROM cart_items
		WHERE id = $1
	`

	item := &models.CartItem{}

	err := r.DB.QueryRowContext(dbCtx, query, id).Scan(&item.ID, &item.ProductID, &item.Name, &item.Quantity, &item.Price, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("querying database: %w", err)
	}

	return item, nil
}

func (r *cartRepository) Create(ctx context.Context, item *models.CartItem) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO cart_items (product_id, name, quantity, price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query, item.ProductID, item.Name, item.Quantity, item.Price).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
}

func (r *cartRepository) Update(ctx context.Context, item *models.CartItem) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE cart_items
		SET quantity = $1, price = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query, item.Quantity, item.Price, item.ID).Scan(&item.UpdatedAt)
}

func (r *cartRepository) Delete(ctx context.Context, id int64) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `DELETE FROM cart_items WHERE id = $1`

	result, err := r.DB.ExecContext(dbCtx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete the cart item: %w", err)
	}

	deletedRows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get deleted rows: %w", err)
	}

	if deletedRows == 0 {
		return sql.ErrNoRows
	}

	return nil
}

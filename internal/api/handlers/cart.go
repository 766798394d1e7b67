package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/cart-service/internal/api/middleware"
	"github.com/aaravmahajanofficial/cart-service/internal/models"
	service "github.com/aaravmahajanofficial/cart-service/internal/services"
	"github.com/aaravmahajanofficial/cart-service/internal/utils"
	"github.com/aaravmahajanofficial/cart-service/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type CartHandler struct {
	cartService service.CartService
	validator   *validator.Validate
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService, validator: validator.New()}
}

// ListItems godoc
//	@Summary		List cart items
//	@Description	Returns every cart item, newest first.
//	@Tags			Cart
//	@Produce		json
//	@Success		200	{object}	response.APIResponse	"Cart items fetched successfully"
//	@Failure		500	{object}	response.APIResponse	"Internal server error"
//	@Router			/cart [get]
func (h *CartHandler) ListItems() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		items, err := h.cartService.ListItems(r.Context())
		if err != nil {
			logger.Error("Failed to fetch cart items", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Cart items fetched successfully", slog.Int("count", len(items)))
		response.Success(w, http.StatusOK, "Cart items fetched successfully", items)
	}
}

// GetItem godoc
//	@Summary		Get a cart item by ID
//	@Description	Retrieves a single cart item.
//	@Tags			Cart
//	@Produce		json
//	@Param			id	path		int						true	"Cart item ID"
//	@Success		200	{object}	response.APIResponse	"Cart item fetched successfully"
//	@Failure		404	{object}	response.APIResponse	"Cart item not found"
//	@Failure		422	{object}	response.APIResponse	"Invalid cart item ID"
//	@Failure		500	{object}	response.APIResponse	"Internal server error"
//	@Router			/cart/{id} [get]
func (h *CartHandler) GetItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid cart item id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		item, err := h.cartService.GetItem(r.Context(), id)
		if err != nil {
			logger.Error("Failed to fetch cart item",
				slog.Int64("itemId", id),
				slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Cart item fetched successfully", slog.Int64("itemId", id))
		response.Success(w, http.StatusOK, "Cart item fetched successfully", item)
	}
}

// CreateItem godoc
//	@Summary		Add an item to the cart
//	@Description	Looks the product up in the product service and stores a line with price = unit price * quantity.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			item	body		models.CreateCartItemRequest	true	"Cart item details"
//	@Success		201		{object}	response.APIResponse			"Cart item created successfully"
//	@Failure		404		{object}	response.APIResponse			"Product not found"
//	@Failure		422		{object}	response.APIResponse			"Validation failed"
//	@Failure		500		{object}	response.APIResponse			"Internal server error"
//	@Router			/cart [post]
func (h *CartHandler) CreateItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateCartItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid create cart item input")
			return
		}

		item, err := h.cartService.AddItem(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to create cart item",
				slog.Int64("productId", req.ProductID),
				slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Cart item created successfully",
			slog.Int64("itemId", item.ID),
			slog.Int64("productId", item.ProductID))
		response.Success(w, http.StatusCreated, "Cart item created successfully", item)
	}
}

// UpdateItem godoc
//	@Summary		Update a cart item's quantity
//	@Description	Re-fetches the product price and recomputes the line total for the new quantity.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int								true	"Cart item ID"
//	@Param			item	body		models.UpdateCartItemRequest	true	"New quantity"
//	@Success		200		{object}	response.APIResponse			"Cart item updated successfully"
//	@Failure		404		{object}	response.APIResponse			"Cart item or product not found"
//	@Failure		422		{object}	response.APIResponse			"Validation failed"
//	@Failure		500		{object}	response.APIResponse			"Internal server error"
//	@Router			/cart/{id} [put]
func (h *CartHandler) UpdateItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid cart item id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		var req models.UpdateCartItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid update cart item input", slog.Int64("itemId", id))
			return
		}

		item, err := h.cartService.UpdateItem(r.Context(), id, &req)
		if err != nil {
			logger.Error("Failed to update cart item",
				slog.Int64("itemId", id),
				slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Cart item updated successfully",
			slog.Int64("itemId", item.ID),
			slog.Int("quantity", item.Quantity))
		response.Success(w, http.StatusOK, "Cart item updated successfully", item)
	}
}

// DeleteItem godoc
//	@Summary		Delete a cart item
//	@Description	Removes a cart item.
//	@Tags			Cart
//	@Produce		json
//	@Param			id	path		int						true	"Cart item ID"
//	@Success		200	{object}	response.APIResponse	"Cart item deleted successfully"
//	@Failure		404	{object}	response.APIResponse	"Cart item not found"
//	@Failure		422	{object}	response.APIResponse	"Invalid cart item ID"
//	@Failure		500	{object}	response.APIResponse	"Internal server error"
//	@Router			/cart/{id} [delete]
func (h *CartHandler) DeleteItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid cart item id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		if err := h.cartService.RemoveItem(r.Context(), id); err != nil {
			logger.Error("Failed to delete cart item",
				slog.Int64("itemId", id),
				slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Cart item deleted successfully", slog.Int64("itemId", id))
		response.Success(w, http.StatusOK, "Cart item deleted successfully", nil)
	}
}

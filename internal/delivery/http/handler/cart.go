package handler

import (
	"errors"
	"net/http"

	"github.com/hasthaat/storefront/internal/delivery/http/middleware"
	"github.com/hasthaat/storefront/internal/delivery/http/request"
	"github.com/hasthaat/storefront/internal/delivery/http/response"
	"github.com/hasthaat/storefront/internal/domain"
	"github.com/hasthaat/storefront/internal/pkg/logger"
	"github.com/hasthaat/storefront/internal/usecase/cart"
)

// CartHandler handles HTTP requests for the session cart
type CartHandler struct {
	service *cart.Service
	logger  *logger.Logger
}

// NewCartHandler creates a new cart handler
func NewCartHandler(service *cart.Service, log *logger.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		logger:  log,
	}
}

// AddItemRequest represents the request body for adding a cart item
type AddItemRequest struct {
	ProductID int64 `json:"product_id" validate:"required"`
	Quantity  int   `json:"quantity"`
}

// SetQuantityRequest represents the request body for setting a line quantity
type SetQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// cartView shapes a cart response with its derived totals
type cartView struct {
	Lines          []domain.CartLine `json:"lines"`
	TotalItemCount int               `json:"total_item_count"`
	TotalPrice     int64             `json:"total_price"`
}

func newCartView(c *domain.Cart) cartView {
	lines := c.Lines
	if lines == nil {
		lines = []domain.CartLine{}
	}
	return cartView{
		Lines:          lines,
		TotalItemCount: c.TotalItemCount(),
		TotalPrice:     c.TotalPrice(),
	}
}

// Get handles GET /api/v1/cart
// @Summary Get the session cart
// @Tags Cart
// @Produce json
// @Success 200 {object} map[string]interface{} "Cart with totals"
// @Router /cart [get]
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	c, err := h.service.Get(r.Context(), middleware.SessionID(r.Context()))
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Success(w, newCartView(c))
}

// AddItem handles POST /api/v1/cart/items
// @Summary Add a product to the cart
// @Description Adds a product to the session cart. Adding a product already in the cart increments its quantity.
// @Tags Cart
// @Accept json
// @Produce json
// @Param item body AddItemRequest true "Product and quantity"
// @Success 200 {object} map[string]interface{} "Updated cart"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 404 {object} map[string]string "Product not found"
// @Router /cart/items [post]
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	c, err := h.service.AddItem(r.Context(), middleware.SessionID(r.Context()), req.ProductID, req.Quantity)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Success(w, newCartView(c))
}

// SetQuantity handles PUT /api/v1/cart/items/:productId
// @Summary Set a cart line's quantity
// @Description Sets the line to the exact quantity. Zero or less removes the line; unknown products are a no-op.
// @Tags Cart
// @Accept json
// @Produce json
// @Param productId path int true "Product ID"
// @Param quantity body SetQuantityRequest true "New quantity"
// @Success 200 {object} map[string]interface{} "Updated cart"
// @Failure 400 {object} map[string]string "Invalid request"
// @Router /cart/items/{productId} [put]
func (h *CartHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	productID, err := request.GetInt64Param(r, "productId")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	var req SetQuantityRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	c, err := h.service.SetQuantity(r.Context(), middleware.SessionID(r.Context()), productID, req.Quantity)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Success(w, newCartView(c))
}

// RemoveItem handles DELETE /api/v1/cart/items/:productId
// @Summary Remove a product from the cart
// @Tags Cart
// @Produce json
// @Param productId path int true "Product ID"
// @Success 200 {object} map[string]interface{} "Updated cart"
// @Failure 400 {object} map[string]string "Invalid product ID"
// @Router /cart/items/{productId} [delete]
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID, err := request.GetInt64Param(r, "productId")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	c, err := h.service.RemoveItem(r.Context(), middleware.SessionID(r.Context()), productID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Success(w, newCartView(c))
}

// Clear handles DELETE /api/v1/cart
// @Summary Clear the session cart
// @Tags Cart
// @Success 204 "Cart cleared"
// @Router /cart [delete]
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Clear(r.Context(), middleware.SessionID(r.Context())); err != nil {
		h.handleError(w, err)
		return
	}

	response.NoContent(w)
}

// handleError handles service layer errors and returns appropriate HTTP responses
func (h *CartHandler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		response.Error(w, http.StatusNotFound, "Product not found")
	default:
		h.logger.Error("Internal error in cart handler", err)
		response.Error(w, http.StatusInternalServerError, "Internal server error")
	}
}

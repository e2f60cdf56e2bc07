package handler

import (
	"errors"
	"net/http"

	"github.com/hasthaat/storefront/internal/delivery/http/middleware"
	"github.com/hasthaat/storefront/internal/delivery/http/request"
	"github.com/hasthaat/storefront/internal/delivery/http/response"
	"github.com/hasthaat/storefront/internal/domain"
	"github.com/hasthaat/storefront/internal/pkg/logger"
	"github.com/hasthaat/storefront/internal/usecase/checkout"
)

// CheckoutHandler handles HTTP requests for placing orders
type CheckoutHandler struct {
	service *checkout.Service
	logger  *logger.Logger
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(service *checkout.Service, log *logger.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		service: service,
		logger:  log,
	}
}

// PlaceOrderRequest represents the request body for placing an order
type PlaceOrderRequest struct {
	Shipping      domain.ShippingDetails `json:"shipping"`
	PaymentMethod string                 `json:"payment_method"`
}

// PlaceOrder handles POST /api/v1/checkout
// @Summary Place an order
// @Description Snapshots the session cart into an order confirmation and clears the cart. The order number is presentational.
// @Tags Checkout
// @Accept json
// @Produce json
// @Param order body PlaceOrderRequest true "Shipping details and payment method"
// @Success 201 {object} map[string]interface{} "Order confirmation"
// @Failure 400 {object} map[string]string "Missing required fields"
// @Failure 409 {object} map[string]string "Cart is empty"
// @Router /checkout [post]
func (h *CheckoutHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req PlaceOrderRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.service.PlaceOrder(
		r.Context(),
		middleware.SessionID(r.Context()),
		req.Shipping,
		domain.PaymentMethod(req.PaymentMethod),
	)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Created(w, order)
}

// handleError handles service layer errors and returns appropriate HTTP responses
func (h *CheckoutHandler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		response.Error(w, http.StatusBadRequest, "Missing or invalid checkout fields")
	case errors.Is(err, domain.ErrEmptyCart):
		response.Error(w, http.StatusConflict, "Cart is empty")
	default:
		h.logger.Error("Internal error in checkout handler", err)
		response.Error(w, http.StatusInternalServerError, "Internal server error")
	}
}

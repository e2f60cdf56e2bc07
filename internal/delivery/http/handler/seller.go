package handler

import (
	"errors"
	"net/http"

	"github.com/hasthaat/storefront/internal/delivery/http/request"
	"github.com/hasthaat/storefront/internal/delivery/http/response"
	"github.com/hasthaat/storefront/internal/domain"
	"github.com/hasthaat/storefront/internal/pkg/logger"
	"github.com/hasthaat/storefront/internal/usecase/seller"
)

// SellerHandler handles HTTP requests for seller onboarding
type SellerHandler struct {
	service *seller.Service
	logger  *logger.Logger
}

// NewSellerHandler creates a new seller handler
func NewSellerHandler(service *seller.Service, log *logger.Logger) *SellerHandler {
	return &SellerHandler{
		service: service,
		logger:  log,
	}
}

// ApplyRequest represents a seller application submission
type ApplyRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	City     string `json:"city"`

	ShopName        string `json:"shop_name"`
	ShopDescription string `json:"shop_description"`

	ProductName        string `json:"product_name"`
	ProductPrice       int64  `json:"product_price"`
	ProductDescription string `json:"product_description"`
}

// Apply handles POST /api/v1/seller-applications
// @Summary Submit a seller application
// @Description Accepts a seller onboarding application. Only required-field presence is validated.
// @Tags Sellers
// @Accept json
// @Produce json
// @Param application body ApplyRequest true "Application details"
// @Success 201 {object} map[string]interface{} "Accepted application"
// @Failure 400 {object} map[string]string "Missing required fields"
// @Router /seller-applications [post]
func (h *SellerHandler) Apply(w http.ResponseWriter, r *http.Request) {
	var req ApplyRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	app := &domain.SellerApplication{
		FullName:           req.FullName,
		Email:              req.Email,
		Phone:              req.Phone,
		City:               req.City,
		ShopName:           req.ShopName,
		ShopDescription:    req.ShopDescription,
		ProductName:        req.ProductName,
		ProductPrice:       req.ProductPrice,
		ProductDescription: req.ProductDescription,
	}

	if err := h.service.Apply(r.Context(), app); err != nil {
		h.handleError(w, err)
		return
	}

	response.Created(w, app)
}

// handleError handles service layer errors and returns appropriate HTTP responses
func (h *SellerHandler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		response.Error(w, http.StatusBadRequest, "Missing or invalid application fields")
	default:
		h.logger.Error("Internal error in seller handler", err)
		response.Error(w, http.StatusInternalServerError, "Internal server error")
	}
}

package handler

import (
	"errors"
	"net/http"

	"github.com/hasthaat/storefront/internal/delivery/http/request"
	"github.com/hasthaat/storefront/internal/delivery/http/response"
	"github.com/hasthaat/storefront/internal/domain"
	"github.com/hasthaat/storefront/internal/pkg/logger"
	"github.com/hasthaat/storefront/internal/usecase/catalog"
)

// CatalogHandler handles HTTP requests for products, categories and artisans
type CatalogHandler struct {
	service *catalog.Service
	logger  *logger.Logger
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(service *catalog.Service, log *logger.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		logger:  log,
	}
}

// ListProducts handles GET /api/v1/products
// @Summary List products
// @Description Get the filtered, sorted product view. Unknown filter values fall back to defaults; an empty result is a normal outcome.
// @Tags Catalog
// @Produce json
// @Param category query string false "Category slug"
// @Param min_price query int false "Inclusive lower price bound" default(0)
// @Param max_price query int false "Inclusive upper price bound (defaults to catalog max)"
// @Param min_rating query number false "Inclusive minimum rating, 0 disables" default(0)
// @Param sort query string false "Sort key: newest, priceLow, priceHigh" default(newest)
// @Success 200 {object} map[string]interface{} "Filtered product list with count"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /products [get]
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	cfg := catalog.FilterConfig{
		Category:  r.URL.Query().Get("category"),
		MinPrice:  request.GetInt64Query(r, "min_price", 0),
		MaxPrice:  request.GetInt64Query(r, "max_price", 0),
		MinRating: request.GetFloatQuery(r, "min_rating", 0),
		Sort:      catalog.SortKey(r.URL.Query().Get("sort")),
	}

	products, count, err := h.service.Browse(r.Context(), cfg)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Collection(w, products, count)
}

// GetProduct handles GET /api/v1/products/:id
// @Summary Get a product by id
// @Tags Catalog
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} map[string]interface{} "Product details"
// @Failure 400 {object} map[string]string "Invalid product ID"
// @Failure 404 {object} map[string]string "Product not found"
// @Router /products/{id} [get]
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := request.GetInt64Param(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	product, err := h.service.ProductByID(r.Context(), id)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Success(w, product)
}

// ListCategories handles GET /api/v1/categories
// @Summary List categories
// @Tags Catalog
// @Produce json
// @Success 200 {object} map[string]interface{} "Category list"
// @Router /categories [get]
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.Categories(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Collection(w, categories, len(categories))
}

// ListArtisans handles GET /api/v1/artisans
// @Summary List artisans
// @Tags Catalog
// @Produce json
// @Success 200 {object} map[string]interface{} "Artisan list"
// @Router /artisans [get]
func (h *CatalogHandler) ListArtisans(w http.ResponseWriter, r *http.Request) {
	artisans, err := h.service.Artisans(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Collection(w, artisans, len(artisans))
}

// GetArtisan handles GET /api/v1/artisans/:id
// @Summary Get an artisan profile
// @Tags Catalog
// @Produce json
// @Param id path int true "Artisan ID"
// @Success 200 {object} map[string]interface{} "Artisan profile"
// @Failure 404 {object} map[string]string "Artisan not found"
// @Router /artisans/{id} [get]
func (h *CatalogHandler) GetArtisan(w http.ResponseWriter, r *http.Request) {
	id, err := request.GetInt64Param(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid artisan ID")
		return
	}

	artisan, err := h.service.ArtisanByID(r.Context(), id)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Success(w, artisan)
}

// ListArtisanProducts handles GET /api/v1/artisans/:id/products
// @Summary List an artisan's products
// @Tags Catalog
// @Produce json
// @Param id path int true "Artisan ID"
// @Success 200 {object} map[string]interface{} "Product list"
// @Failure 404 {object} map[string]string "Artisan not found"
// @Router /artisans/{id}/products [get]
func (h *CatalogHandler) ListArtisanProducts(w http.ResponseWriter, r *http.Request) {
	id, err := request.GetInt64Param(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid artisan ID")
		return
	}

	products, err := h.service.ArtisanProducts(r.Context(), id)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Collection(w, products, len(products))
}

// handleError handles service layer errors and returns appropriate HTTP responses
func (h *CatalogHandler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		response.Error(w, http.StatusNotFound, "Not found")
	default:
		h.logger.Error("Internal error in catalog handler", err)
		response.Error(w, http.StatusInternalServerError, "Internal server error")
	}
}

package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/hasthaat/storefront/internal/config"
	"github.com/hasthaat/storefront/internal/delivery/http/handler"
	"github.com/hasthaat/storefront/internal/delivery/http/middleware"
	"github.com/hasthaat/storefront/internal/delivery/http/response"
	"github.com/hasthaat/storefront/internal/pkg/logger"
)

// Router holds HTTP handlers and router configuration
type Router struct {
	catalogHandler  *handler.CatalogHandler
	cartHandler     *handler.CartHandler
	checkoutHandler *handler.CheckoutHandler
	sellerHandler   *handler.SellerHandler
	logger          *logger.Logger
	cfg             *config.Config
}

// NewRouter creates a new HTTP router
func NewRouter(
	catalogHandler *handler.CatalogHandler,
	cartHandler *handler.CartHandler,
	checkoutHandler *handler.CheckoutHandler,
	sellerHandler *handler.SellerHandler,
	cfg *config.Config,
	log *logger.Logger,
) *Router {
	return &Router{
		catalogHandler:  catalogHandler,
		cartHandler:     cartHandler,
		checkoutHandler: checkoutHandler,
		sellerHandler:   sellerHandler,
		logger:          log,
		cfg:             cfg,
	}
}

// Setup configures and returns the HTTP router
func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.Logger(rt.logger))
	r.Use(chimiddleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   rt.cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", middleware.SessionHeader},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", rt.healthCheck)
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", rt.catalogHandler.ListProducts)
			r.Get("/{id}", rt.catalogHandler.GetProduct)
		})

		r.Get("/categories", rt.catalogHandler.ListCategories)

		r.Route("/artisans", func(r chi.Router) {
			r.Get("/", rt.catalogHandler.ListArtisans)
			r.Get("/{id}", rt.catalogHandler.GetArtisan)
			r.Get("/{id}/products", rt.catalogHandler.ListArtisanProducts)
		})

		// Session-scoped routes mint a session id when none is present
		r.Group(func(r chi.Router) {
			r.Use(middleware.Session())

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", rt.cartHandler.Get)
				r.Delete("/", rt.cartHandler.Clear)
				r.Post("/items", rt.cartHandler.AddItem)
				r.Put("/items/{productId}", rt.cartHandler.SetQuantity)
				r.Delete("/items/{productId}", rt.cartHandler.RemoveItem)
			})

			r.Post("/checkout", rt.checkoutHandler.PlaceOrder)
		})

		r.Post("/seller-applications", rt.sellerHandler.Apply)
	})

	return r
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}

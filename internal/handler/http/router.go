package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cantikstore/storefront/internal/service"
	"github.com/cantikstore/storefront/pkg/health"
	"github.com/cantikstore/storefront/pkg/middleware"
)

// Services bundles everything the router exposes.
type Services struct {
	Cart     *service.CartService
	Catalog  *service.CatalogService
	Checkout *service.CheckoutService
	Admin    *service.AdminService
	Media    *service.MediaService
}

// NewRouter creates a chi router with all storefront routes registered.
func NewRouter(svcs Services, healthHandler *health.Handler, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(logger))
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.PrometheusMetrics("storefront"))
	r.Use(middleware.Tracing("storefront"))
	r.Use(middleware.RequestLogger(logger))
	r.Use(CORS)

	// Health check endpoints
	r.Get("/health/live", healthHandler.LivenessHandler())
	r.Get("/health/ready", healthHandler.ReadinessHandler())
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})

	cartHandler := NewCartHandler(svcs.Cart, logger)
	catalogHandler := NewCatalogHandler(svcs.Catalog, logger)
	checkoutHandler := NewCheckoutHandler(svcs.Checkout, logger)
	adminHandler := NewAdminHandler(svcs.Admin, logger)
	mediaHandler := NewMediaHandler(svcs.Media, logger)

	// Public storefront endpoints
	r.Get("/api/v1/products", catalogHandler.ListProducts)
	r.Get("/api/v1/categories", catalogHandler.ListCategories)

	// Cart endpoints, keyed by the anonymous session header
	r.Route("/api/v1/cart", func(r chi.Router) {
		r.Use(ContentTypeJSON)
		r.Use(SessionFromHeader)

		r.Get("/", cartHandler.GetCart)
		r.Delete("/", cartHandler.ClearCart)

		r.Post("/items", cartHandler.AddItem)
		r.Put("/items/{productID}/{size}", cartHandler.UpdateItemQuantity)
		r.Delete("/items/{productID}/{size}", cartHandler.RemoveItem)
	})

	r.With(ContentTypeJSON, SessionFromHeader).
		Post("/api/v1/checkout", checkoutHandler.Checkout)

	// Admin login is the only unauthenticated admin endpoint.
	r.With(ContentTypeJSON).Post("/api/v1/admin/login", adminHandler.Login)

	r.Route("/api/v1/admin", func(r chi.Router) {
		r.Use(AdminAuth(svcs.Admin, logger))

		r.Post("/logout", adminHandler.Logout)
		r.Get("/dashboard", adminHandler.Dashboard)
		r.Post("/dashboard/refresh", adminHandler.RefreshDashboard)

		// Image uploads are multipart, so they sit outside the JSON
		// content-type gate.
		r.Post("/images", mediaHandler.UploadImages)

		r.Group(func(r chi.Router) {
			r.Use(ContentTypeJSON)

			r.Post("/products", catalogHandler.CreateProduct)
			r.Put("/products/{id}", catalogHandler.UpdateProduct)
			r.Delete("/products/{id}", catalogHandler.DeleteProduct)

			r.Post("/categories", catalogHandler.CreateCategory)
			r.Delete("/categories/{id}", catalogHandler.DeleteCategory)

			r.Get("/orders", catalogHandler.ListOrders)
			r.Patch("/orders/{id}/status", catalogHandler.UpdateOrderStatus)
		})
	})

	return r
}

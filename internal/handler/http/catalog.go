package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cantikstore/storefront/internal/service"
	"github.com/cantikstore/storefront/pkg/validator"
)

// CatalogHandler handles HTTP requests for products, categories and orders.
// Listing is public; everything that mutates sits behind admin auth.
type CatalogHandler struct {
	service *service.CatalogService
	logger  *slog.Logger
}

// NewCatalogHandler creates a new catalog HTTP handler.
func NewCatalogHandler(svc *service.CatalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: svc,
		logger:  logger,
	}
}

// ProductRequest is the JSON request body for creating or updating a product.
type ProductRequest struct {
	Name          string   `json:"name" validate:"required,min=1,max=500"`
	Price         int64    `json:"price" validate:"gte=0"`
	OriginalPrice int64    `json:"original_price" validate:"gte=0"`
	Category      string   `json:"category" validate:"required"`
	Image         string   `json:"image"`
	Images        []string `json:"images"`
	Description   string   `json:"description"`
	Sizes         []string `json:"sizes"`
	Bestseller    bool     `json:"bestseller"`
	InStock       *bool    `json:"in_stock"`
	NewArrival    bool     `json:"new_arrival"`
}

func (r ProductRequest) toInput() service.ProductInput {
	return service.ProductInput{
		Name:          r.Name,
		Price:         r.Price,
		OriginalPrice: r.OriginalPrice,
		Category:      r.Category,
		Image:         r.Image,
		Images:        r.Images,
		Description:   r.Description,
		Sizes:         r.Sizes,
		Bestseller:    r.Bestseller,
		InStock:       r.InStock,
		NewArrival:    r.NewArrival,
	}
}

// CategoryRequest is the JSON request body for creating a category.
type CategoryRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=200"`
	Image string `json:"image"`
}

// OrderStatusRequest is the JSON request body for updating an order status.
type OrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// ListProducts handles GET /api/v1/products
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.ListProducts(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, response{Data: products})
}

// CreateProduct handles POST /api/v1/admin/products
func (h *CatalogHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		writeValidationError(w, err)
		return
	}

	product, err := h.service.CreateProduct(r.Context(), req.toInput())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, response{Data: product})
}

// UpdateProduct handles PUT /api/v1/admin/products/{id}
func (h *CatalogHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeBadRequest(w, "product id is required")
		return
	}

	var req ProductRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		writeValidationError(w, err)
		return
	}

	product, err := h.service.UpdateProduct(r.Context(), id, req.toInput())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, response{Data: product})
}

// DeleteProduct handles DELETE /api/v1/admin/products/{id}
func (h *CatalogHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeBadRequest(w, "product id is required")
		return
	}

	if err := h.service.DeleteProduct(r.Context(), id); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, response{Data: map[string]string{"status": "deleted"}})
}

// ListCategories handles GET /api/v1/categories
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, response{Data: categories})
}

// CreateCategory handles POST /api/v1/admin/categories
func (h *CatalogHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		writeValidationError(w, err)
		return
	}

	category, err := h.service.CreateCategory(r.Context(), service.CategoryInput{
		Name:  req.Name,
		Image: req.Image,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, response{Data: category})
}

// DeleteCategory handles DELETE /api/v1/admin/categories/{id}
func (h *CatalogHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeBadRequest(w, "category id is required")
		return
	}

	if err := h.service.DeleteCategory(r.Context(), id); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, response{Data: map[string]string{"status": "deleted"}})
}

// ListOrders handles GET /api/v1/admin/orders
func (h *CatalogHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.ListOrders(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, response{Data: orders})
}

// UpdateOrderStatus handles PATCH /api/v1/admin/orders/{id}/status
func (h *CatalogHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeBadRequest(w, "order id is required")
		return
	}

	var req OrderStatusRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		writeValidationError(w, err)
		return
	}

	if err := h.service.UpdateOrderStatus(r.Context(), id, req.Status); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, response{Data: map[string]string{"status": req.Status}})
}

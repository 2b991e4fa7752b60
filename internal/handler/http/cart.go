package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cantikstore/storefront/internal/service"
	"github.com/cantikstore/storefront/pkg/validator"
)

// CartHandler handles HTTP requests for cart endpoints.
type CartHandler struct {
	service *service.CartService
	logger  *slog.Logger
}

// NewCartHandler creates a new cart HTTP handler.
func NewCartHandler(svc *service.CartService, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		service: svc,
		logger:  logger,
	}
}

// AddItemRequest is the JSON request body for adding an item to the cart.
type AddItemRequest struct {
	ProductID         string `json:"product_id" validate:"required"`
	Size              string `json:"size" validate:"required"`
	Name              string `json:"name" validate:"required,min=1,max=500"`
	UnitPrice         int64  `json:"unit_price" validate:"gte=0"`
	OriginalUnitPrice int64  `json:"original_unit_price" validate:"gte=0"`
	ImageURL          string `json:"image_url"`
	Quantity          int    `json:"quantity" validate:"gte=0"`
}

// UpdateQuantityRequest is the JSON request body for updating an item's quantity.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// GetCart handles GET /api/v1/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	sessionID, _ := sessionFromContext(r.Context())

	cart, err := h.service.GetCart(r.Context(), sessionID)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, response{Data: cart})
}

// AddItem handles POST /api/v1/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	sessionID, _ := sessionFromContext(r.Context())

	var req AddItemRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		writeValidationError(w, err)
		return
	}

	input := service.AddItemInput{
		ProductID:         req.ProductID,
		Size:              req.Size,
		Name:              req.Name,
		UnitPrice:         req.UnitPrice,
		OriginalUnitPrice: req.OriginalUnitPrice,
		ImageURL:          req.ImageURL,
		Quantity:          req.Quantity,
	}

	cart, err := h.service.AddItem(r.Context(), sessionID, input)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, response{Data: cart})
}

// UpdateItemQuantity handles PUT /api/v1/cart/items/{productID}/{size}
func (h *CartHandler) UpdateItemQuantity(w http.ResponseWriter, r *http.Request) {
	sessionID, _ := sessionFromContext(r.Context())

	productID := chi.URLParam(r, "productID")
	size := chi.URLParam(r, "size")
	if productID == "" || size == "" {
		writeBadRequest(w, "productID and size are required")
		return
	}

	var req UpdateQuantityRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		writeValidationError(w, err)
		return
	}

	cart, err := h.service.UpdateQuantity(r.Context(), sessionID, productID, size, req.Quantity)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, response{Data: cart})
}

// RemoveItem handles DELETE /api/v1/cart/items/{productID}/{size}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	sessionID, _ := sessionFromContext(r.Context())

	productID := chi.URLParam(r, "productID")
	size := chi.URLParam(r, "size")
	if productID == "" || size == "" {
		writeBadRequest(w, "productID and size are required")
		return
	}

	cart, err := h.service.RemoveItem(r.Context(), sessionID, productID, size)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, response{Data: cart})
}

// ClearCart handles DELETE /api/v1/cart
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	sessionID, _ := sessionFromContext(r.Context())

	cart, err := h.service.ClearCart(r.Context(), sessionID)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, response{Data: cart})
}

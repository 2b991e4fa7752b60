package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cantikstore/storefront/internal/service"
)

// CheckoutHandler handles the checkout endpoint.
type CheckoutHandler struct {
	service *service.CheckoutService
	logger  *slog.Logger
}

// NewCheckoutHandler creates a new checkout HTTP handler.
func NewCheckoutHandler(svc *service.CheckoutService, logger *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		service: svc,
		logger:  logger,
	}
}

// CheckoutRequest is the JSON request body for placing an order. The phone
// number is optional; the WhatsApp conversation identifies the customer.
type CheckoutRequest struct {
	CustomerPhone string `json:"customer_phone"`
}

// Checkout handles POST /api/v1/checkout
func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	sessionID, _ := sessionFromContext(r.Context())

	var req CheckoutRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeBadRequest(w, "invalid request body: "+err.Error())
			return
		}
	}

	result, err := h.service.Checkout(r.Context(), sessionID, req.CustomerPhone)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, response{Data: result})
}

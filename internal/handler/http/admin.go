package http

import (
	"log/slog"
	"net/http"

	"github.com/cantikstore/storefront/internal/service"
	"github.com/cantikstore/storefront/pkg/validator"
)

// AdminHandler handles admin authentication and the dashboard snapshot.
type AdminHandler struct {
	service *service.AdminService
	logger  *slog.Logger
}

// NewAdminHandler creates a new admin HTTP handler.
func NewAdminHandler(svc *service.AdminService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		service: svc,
		logger:  logger,
	}
}

// LoginRequest is the JSON request body for admin login.
type LoginRequest struct {
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the session token the admin sends back on every
// authenticated call.
type LoginResponse struct {
	Token string `json:"token"`
}

// Login handles POST /api/v1/admin/login
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		writeValidationError(w, err)
		return
	}

	token, err := h.service.Login(r.Context(), req.Password)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, response{Data: LoginResponse{Token: token}})
}

// Logout handles POST /api/v1/admin/logout
func (h *AdminHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token, _ := adminTokenFromContext(r.Context())

	if err := h.service.Logout(r.Context(), token); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, response{Data: map[string]string{"status": "logged_out"}})
}

// Dashboard handles GET /api/v1/admin/dashboard
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, response{Data: h.service.Snapshot()})
}

// RefreshDashboard handles POST /api/v1/admin/dashboard/refresh
func (h *AdminHandler) RefreshDashboard(w http.ResponseWriter, r *http.Request) {
	if err := h.service.LoadData(r.Context()); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, response{Data: h.service.Snapshot()})
}

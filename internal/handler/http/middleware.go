package http

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/cantikstore/storefront/internal/service"
)

// contextKey is an unexported type for context keys to prevent collisions.
type contextKey string

const (
	sessionIDKey  contextKey = "session_id"
	adminTokenKey contextKey = "admin_token"
)

// SessionFromHeader reads the X-Session-ID header that identifies the
// customer's cart and stores it in the request context. Carts are anonymous;
// the frontend generates the session ID and sends it on every cart call.
func SessionFromHeader(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sid := r.Header.Get("X-Session-ID")
		if sid == "" {
			writeBadRequest(w, "X-Session-ID header is required")
			return
		}
		ctx := context.WithValue(r.Context(), sessionIDKey, sid)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// sessionFromContext extracts the cart session ID from the request context.
func sessionFromContext(ctx context.Context) (string, bool) {
	sid, ok := ctx.Value(sessionIDKey).(string)
	return sid, ok && sid != ""
}

// AdminAuth verifies the X-Admin-Token header against the session store and
// rejects requests without a live admin session.
func AdminAuth(admin *service.AdminService, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get("X-Admin-Token")
			if token == "" {
				writeJSON(w, http.StatusUnauthorized, response{
					Error: &errorResponse{Code: "UNAUTHORIZED", Message: "authentication required"},
				})
				return
			}

			ok, err := admin.IsAuthenticated(r.Context(), token)
			if err != nil {
				writeError(w, r, logger, err)
				return
			}
			if !ok {
				writeJSON(w, http.StatusUnauthorized, response{
					Error: &errorResponse{Code: "UNAUTHORIZED", Message: "session expired or revoked"},
				})
				return
			}

			ctx := context.WithValue(r.Context(), adminTokenKey, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// adminTokenFromContext extracts the admin session token from the request context.
func adminTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(adminTokenKey).(string)
	return token, ok && token != ""
}

// ContentTypeJSON enforces that requests with a body have Content-Type: application/json.
func ContentTypeJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.ContentLength > 0 || r.Method == http.MethodPost || r.Method == http.MethodPut || r.Method == http.MethodPatch {
			ct := r.Header.Get("Content-Type")
			if ct != "" && !strings.HasPrefix(ct, "application/json") {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnsupportedMediaType)
				_, _ = w.Write([]byte(`{"error":{"code":"UNSUPPORTED_MEDIA_TYPE","message":"Content-Type must be application/json"}}`))
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

// CORS adds permissive Cross-Origin Resource Sharing headers for the
// browser storefront.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, X-Correlation-ID, X-Session-ID, X-Admin-Token")
		w.Header().Set("Access-Control-Max-Age", "3600")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

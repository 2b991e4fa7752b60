package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/cantikstore/storefront/internal/domain"
	"github.com/cantikstore/storefront/internal/repository"
	apperrors "github.com/cantikstore/storefront/pkg/errors"
)

// AdminSnapshot is the admin dashboard's view of all three collections,
// loaded together so the dashboard renders from one consistent pull.
type AdminSnapshot struct {
	Products   []domain.Product  `json:"products"`
	Categories []domain.Category `json:"categories"`
	Orders     []domain.Order    `json:"orders"`
	Loading    bool              `json:"loading"`
}

// AdminService handles admin authentication and the dashboard data cache.
//
// Authentication is a shared passphrase exchanged for an opaque token held
// in the session store; deleting the token is what logs the admin out. The
// cache is full-replacement: each refresh swaps an entire collection, never
// merges.
type AdminService struct {
	sessions repository.SessionRepository
	catalog  *CatalogService
	logger   *slog.Logger
	password string

	mu         sync.RWMutex
	products   []domain.Product
	categories []domain.Category
	orders     []domain.Order
	loading    bool
}

// NewAdminService creates a new admin service.
func NewAdminService(sessions repository.SessionRepository, catalog *CatalogService, logger *slog.Logger, password string) *AdminService {
	return &AdminService{
		sessions: sessions,
		catalog:  catalog,
		logger:   logger,
		password: password,
	}
}

// Login exchanges the admin passphrase for a session token.
func (s *AdminService) Login(ctx context.Context, password string) (string, error) {
	if subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) != 1 {
		s.logger.WarnContext(ctx, "admin login rejected")
		return "", apperrors.Unauthorized("invalid credentials")
	}

	token := uuid.NewString()
	if err := s.sessions.Put(ctx, token); err != nil {
		return "", fmt.Errorf("store admin session: %w", err)
	}

	s.logger.InfoContext(ctx, "admin logged in")
	return token, nil
}

// Logout revokes an admin session token. Revoking an unknown token is a
// no-op, so logout is idempotent.
func (s *AdminService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, token); err != nil {
		return fmt.Errorf("revoke admin session: %w", err)
	}
	return nil
}

// IsAuthenticated reports whether the token belongs to a live admin session.
func (s *AdminService) IsAuthenticated(ctx context.Context, token string) (bool, error) {
	if token == "" {
		return false, nil
	}
	return s.sessions.Exists(ctx, token)
}

// LoadData pulls all three collections into the cache. Collections that fail
// to load keep their previous contents.
func (s *AdminService) LoadData(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	var firstErr error
	if err := s.RefreshProducts(ctx); err != nil {
		firstErr = err
	}
	if err := s.RefreshCategories(ctx); err != nil && firstErr == nil {
		firstErr = err
	}
	if err := s.RefreshOrders(ctx); err != nil && firstErr == nil {
		firstErr = err
	}

	return firstErr
}

// RefreshProducts replaces the cached product list.
func (s *AdminService) RefreshProducts(ctx context.Context) error {
	products, err := s.catalog.ListProducts(ctx)
	if err != nil {
		return fmt.Errorf("refresh products: %w", err)
	}

	s.mu.Lock()
	s.products = products
	s.mu.Unlock()
	return nil
}

// RefreshCategories replaces the cached category list.
func (s *AdminService) RefreshCategories(ctx context.Context) error {
	categories, err := s.catalog.ListCategories(ctx)
	if err != nil {
		return fmt.Errorf("refresh categories: %w", err)
	}

	s.mu.Lock()
	s.categories = categories
	s.mu.Unlock()
	return nil
}

// RefreshOrders replaces the cached order list.
func (s *AdminService) RefreshOrders(ctx context.Context) error {
	orders, err := s.catalog.ListOrders(ctx)
	if err != nil {
		return fmt.Errorf("refresh orders: %w", err)
	}

	s.mu.Lock()
	s.orders = orders
	s.mu.Unlock()
	return nil
}

// Snapshot returns the current dashboard view.
func (s *AdminService) Snapshot() AdminSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return AdminSnapshot{
		Products:   s.products,
		Categories: s.categories,
		Orders:     s.orders,
		Loading:    s.loading,
	}
}

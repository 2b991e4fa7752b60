package repository

import (
	"context"

	"github.com/cantikstore/storefront/internal/domain"
)

// Catalog is the document-store facade for the three storefront collections.
// Both the remote (PostgreSQL) and local fallback implementations satisfy it,
// as does the fallback decorator that composes the two.
//
// List operations are deterministic: products and orders newest-first by
// creation time, categories in stable store order. Create operations persist
// the record exactly as given, including its identifier.
type Catalog interface {
	ListProducts(ctx context.Context, limit int) ([]domain.Product, error)
	CreateProduct(ctx context.Context, p *domain.Product) error
	UpdateProduct(ctx context.Context, p *domain.Product) error
	DeleteProduct(ctx context.Context, id string) error

	ListCategories(ctx context.Context, limit int) ([]domain.Category, error)
	CreateCategory(ctx context.Context, c *domain.Category) error
	DeleteCategory(ctx context.Context, id string) error

	ListOrders(ctx context.Context, limit int) ([]domain.Order, error)
	CreateOrder(ctx context.Context, o *domain.Order) error
	UpdateOrderStatus(ctx context.Context, id, status string) error
}

// CartRepository defines the interface for cart persistence. The cart service
// writes through it after every mutation and loads from it at session start.
type CartRepository interface {
	// Get retrieves a cart by its session ID.
	Get(ctx context.Context, sessionID string) (*domain.Cart, error)

	// Save persists a cart, overwriting any existing cart for the session.
	Save(ctx context.Context, cart *domain.Cart) error

	// Delete removes a cart from the store by the session ID.
	Delete(ctx context.Context, sessionID string) error
}

// SessionRepository defines the interface for admin session persistence.
// Sessions are opaque tokens with a bounded lifetime; deleting a token is
// what makes logout effective.
type SessionRepository interface {
	Put(ctx context.Context, token string) error
	Exists(ctx context.Context, token string) (bool, error)
	Delete(ctx context.Context, token string) error
}

package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cantikstore/storefront/internal/domain"
	"github.com/cantikstore/storefront/internal/event"
	"github.com/cantikstore/storefront/internal/repository"
	apperrors "github.com/cantikstore/storefront/pkg/errors"
)

// List window sizes. The storefront shows the most recent slice of each
// collection rather than paginating.
const (
	ProductListLimit  = 100
	CategoryListLimit = 50
	OrderListLimit    = 100
)

// ProductInput holds the fields an admin submits when creating or updating
// a product. InStock is a pointer so "not sent" and "false" are
// distinguishable: omitted means in stock.
type ProductInput struct {
	Name          string   `json:"name" validate:"required"`
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

// CategoryInput holds the fields for creating a category.
type CategoryInput struct {
	Name  string `json:"name" validate:"required"`
	Image string `json:"image"`
}

// CatalogService implements product, category and order operations over the
// catalog repository (normally the fallback decorator, so calls succeed with
// or without the remote store).
type CatalogService struct {
	catalog  repository.Catalog
	producer *event.Producer
	logger   *slog.Logger
}

// NewCatalogService creates a new catalog service. producer may be nil when
// event publishing is disabled.
func NewCatalogService(catalog repository.Catalog, producer *event.Producer, logger *slog.Logger) *CatalogService {
	return &CatalogService{
		catalog:  catalog,
		producer: producer,
		logger:   logger,
	}
}

// normalizeProduct fills the defaults every stored product carries: a size
// run, a gallery derived from the primary image, and in-stock unless
// explicitly cleared.
func normalizeProduct(input ProductInput) domain.Product {
	sizes := input.Sizes
	if len(sizes) == 0 {
		sizes = domain.DefaultSizes()
	}

	images := input.Images
	if len(images) == 0 && input.Image != "" {
		images = []string{input.Image}
	}

	inStock := true
	if input.InStock != nil {
		inStock = *input.InStock
	}

	return domain.Product{
		Name:          input.Name,
		Price:         input.Price,
		OriginalPrice: input.OriginalPrice,
		Category:      input.Category,
		Image:         input.Image,
		Images:        images,
		Description:   input.Description,
		Sizes:         sizes,
		Bestseller:    input.Bestseller,
		InStock:       inStock,
		NewArrival:    input.NewArrival,
	}
}

// ListProducts returns the storefront's product window, newest first.
func (s *CatalogService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.catalog.ListProducts(ctx, ProductListLimit)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// CreateProduct normalizes and persists a new product, returning it with its
// assigned identifier.
func (s *CatalogService) CreateProduct(ctx context.Context, input ProductInput) (*domain.Product, error) {
	if input.Name == "" {
		return nil, apperrors.InvalidInput("product name is required")
	}
	if input.Price < 0 || input.OriginalPrice < 0 {
		return nil, apperrors.InvalidInput("prices must not be negative")
	}

	product := normalizeProduct(input)
	product.ID = domain.NewID()
	product.CreatedAt = time.Now().UTC()

	if err := s.catalog.CreateProduct(ctx, &product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	s.logger.InfoContext(ctx, "product created",
		slog.String("product_id", product.ID),
		slog.String("name", product.Name),
	)

	return &product, nil
}

// UpdateProduct normalizes and persists changes to an existing product.
func (s *CatalogService) UpdateProduct(ctx context.Context, id string, input ProductInput) (*domain.Product, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("product id is required")
	}
	if input.Name == "" {
		return nil, apperrors.InvalidInput("product name is required")
	}

	product := normalizeProduct(input)
	product.ID = id

	if err := s.catalog.UpdateProduct(ctx, &product); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}

	return &product, nil
}

// DeleteProduct removes a product from the catalog.
func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.InvalidInput("product id is required")
	}

	if err := s.catalog.DeleteProduct(ctx, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}

	s.logger.InfoContext(ctx, "product deleted", slog.String("product_id", id))
	return nil
}

// ListCategories returns the category list, alphabetical by name.
func (s *CatalogService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.catalog.ListCategories(ctx, CategoryListLimit)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// CreateCategory persists a new category.
func (s *CatalogService) CreateCategory(ctx context.Context, input CategoryInput) (*domain.Category, error) {
	if input.Name == "" {
		return nil, apperrors.InvalidInput("category name is required")
	}

	category := domain.Category{
		ID:        domain.NewID(),
		Name:      input.Name,
		Image:     input.Image,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.catalog.CreateCategory(ctx, &category); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}

	return &category, nil
}

// DeleteCategory removes a category. Products keep their category string:
// deleting a category never cascades.
func (s *CatalogService) DeleteCategory(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.InvalidInput("category id is required")
	}

	if err := s.catalog.DeleteCategory(ctx, id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}

	return nil
}

// ListOrders returns the order window, newest first.
func (s *CatalogService) ListOrders(ctx context.Context) ([]domain.Order, error) {
	orders, err := s.catalog.ListOrders(ctx, OrderListLimit)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// UpdateOrderStatus moves an order to a new status, enforcing the forward
// transition rules. The order must be within the visible order window.
func (s *CatalogService) UpdateOrderStatus(ctx context.Context, id, status string) error {
	if id == "" {
		return apperrors.InvalidInput("order id is required")
	}
	if !domain.IsValidStatus(status) {
		return apperrors.InvalidInput(fmt.Sprintf("invalid order status %q", status))
	}

	orders, err := s.catalog.ListOrders(ctx, OrderListLimit)
	if err != nil {
		return fmt.Errorf("list orders: %w", err)
	}

	var current *domain.Order
	for i := range orders {
		if orders[i].ID == id {
			current = &orders[i]
			break
		}
	}
	if current == nil {
		return apperrors.NotFound("order", id)
	}

	if current.Status == status {
		return nil
	}
	if !current.CanTransitionTo(status) {
		return apperrors.InvalidInput(
			fmt.Sprintf("order cannot move from %s to %s", current.Status, status),
		)
	}

	if err := s.catalog.UpdateOrderStatus(ctx, id, status); err != nil {
		return fmt.Errorf("update order status: %w", err)
	}

	s.logger.InfoContext(ctx, "order status updated",
		slog.String("order_id", id),
		slog.String("old_status", current.Status),
		slog.String("new_status", status),
	)

	if s.producer != nil {
		if err := s.producer.PublishOrderStatusChanged(ctx, id, current.Status, status); err != nil {
			s.logger.WarnContext(ctx, "failed to publish order status event",
				slog.String("order_id", id),
				slog.String("error", err.Error()),
			)
		}
	}

	return nil
}

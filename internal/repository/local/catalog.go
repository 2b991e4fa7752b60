package local

import (
	"context"

	"github.com/cantikstore/storefront/internal/domain"
	"github.com/cantikstore/storefront/internal/repository"
)

const (
	keyProducts   = "products"
	keyCategories = "categories"
	keyOrders     = "orders"
)

// Catalog implements repository.Catalog over the file-backed blob store. It
// is the offline side of the storefront: every operation succeeds without a
// database, and the first read of an empty collection seeds the sample data
// so the shop is never blank.
//
// Mutations aimed at records this store does not hold (for instance a delete
// of a server-side id while offline) are silent no-ops, mirroring how a
// detached replica cannot verify what the remote holds.
type Catalog struct {
	store *Store
}

var _ repository.Catalog = (*Catalog)(nil)

func NewCatalog(store *Store) *Catalog {
	return &Catalog{store: store}
}

// loadProducts returns the stored product list, seeding the sample catalog
// on first touch so subsequent mutations build on a persisted baseline.
func (c *Catalog) loadProducts() ([]domain.Product, error) {
	var products []domain.Product
	if c.store.read(keyProducts, &products) {
		return products, nil
	}
	products = sampleProducts()
	if err := c.store.write(keyProducts, products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Catalog) loadCategories() ([]domain.Category, error) {
	var categories []domain.Category
	if c.store.read(keyCategories, &categories) {
		return categories, nil
	}
	categories = defaultCategories()
	if err := c.store.write(keyCategories, categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *Catalog) loadOrders() []domain.Order {
	var orders []domain.Order
	if !c.store.read(keyOrders, &orders) {
		return []domain.Order{}
	}
	return orders
}

func limitSlice[T any](s []T, limit int) []T {
	if limit > 0 && len(s) > limit {
		return s[:limit]
	}
	return s
}

func (c *Catalog) ListProducts(_ context.Context, limit int) ([]domain.Product, error) {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	products, err := c.loadProducts()
	if err != nil {
		return nil, err
	}
	return limitSlice(products, limit), nil
}

// CreateProduct prepends so newly added items surface first, matching the
// newest-first ordering the remote store derives from creation time.
func (c *Catalog) CreateProduct(_ context.Context, p *domain.Product) error {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	products, err := c.loadProducts()
	if err != nil {
		return err
	}
	products = append([]domain.Product{*p}, products...)
	return c.store.write(keyProducts, products)
}

func (c *Catalog) UpdateProduct(_ context.Context, p *domain.Product) error {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	products, err := c.loadProducts()
	if err != nil {
		return err
	}
	for i := range products {
		if products[i].ID == p.ID {
			updated := *p
			updated.CreatedAt = products[i].CreatedAt
			products[i] = updated
			return c.store.write(keyProducts, products)
		}
	}
	return nil
}

func (c *Catalog) DeleteProduct(_ context.Context, id string) error {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	products, err := c.loadProducts()
	if err != nil {
		return err
	}
	kept := products[:0]
	for _, p := range products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	return c.store.write(keyProducts, kept)
}

func (c *Catalog) ListCategories(_ context.Context, limit int) ([]domain.Category, error) {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	categories, err := c.loadCategories()
	if err != nil {
		return nil, err
	}
	return limitSlice(categories, limit), nil
}

// CreateCategory appends: category order is stable and additions go last.
func (c *Catalog) CreateCategory(_ context.Context, cat *domain.Category) error {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	categories, err := c.loadCategories()
	if err != nil {
		return err
	}
	categories = append(categories, *cat)
	return c.store.write(keyCategories, categories)
}

func (c *Catalog) DeleteCategory(_ context.Context, id string) error {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	categories, err := c.loadCategories()
	if err != nil {
		return err
	}
	kept := categories[:0]
	for _, cat := range categories {
		if cat.ID != id {
			kept = append(kept, cat)
		}
	}
	return c.store.write(keyCategories, kept)
}

func (c *Catalog) ListOrders(_ context.Context, limit int) ([]domain.Order, error) {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	return limitSlice(c.loadOrders(), limit), nil
}

func (c *Catalog) CreateOrder(_ context.Context, o *domain.Order) error {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	orders := append([]domain.Order{*o}, c.loadOrders()...)
	return c.store.write(keyOrders, orders)
}

func (c *Catalog) UpdateOrderStatus(_ context.Context, id, status string) error {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	orders := c.loadOrders()
	for i := range orders {
		if orders[i].ID == id {
			orders[i].Status = status
			return c.store.write(keyOrders, orders)
		}
	}
	return nil
}

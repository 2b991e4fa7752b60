package fallback

import (
	"context"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/cantikstore/storefront/internal/domain"
	"github.com/cantikstore/storefront/internal/repository"
)

var (
	fallbackTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_catalog_fallback_total",
			Help: "Catalog operations served by the local store instead of the remote.",
		},
		[]string{"operation"},
	)

	remoteConnected = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "storefront_catalog_remote_connected",
			Help: "Whether the remote document store is currently believed reachable (1 or 0).",
		},
	)
)

// RemoteCatalog is the remote side of the fallback pair. Ping is the cheap
// reachability probe the decorator runs before trusting the remote again.
type RemoteCatalog interface {
	repository.Catalog
	Ping(ctx context.Context) error
}

// Catalog decorates a remote catalog with a local fallback so every
// operation succeeds even with the database down.
//
// Reads probe the remote when the connection flag is unset and serve from
// whichever side answers; a remote failure after a successful probe falls
// back for that call only, without clearing the flag. Writes trust the flag
// as-is. Records created on the fallback side get a local_-prefixed id and
// stay local forever: later updates and deletes of such ids never touch the
// remote, so a reconnect cannot clobber a server record that happens to
// share nothing but position.
type Catalog struct {
	remote RemoteCatalog
	local  repository.Catalog
	state  *ConnState
	logger *slog.Logger
}

var _ repository.Catalog = (*Catalog)(nil)

// NewCatalog builds the decorator around the given remote and local stores.
func NewCatalog(remote RemoteCatalog, local repository.Catalog, state *ConnState, logger *slog.Logger) *Catalog {
	c := &Catalog{
		remote: remote,
		local:  local,
		state:  state,
		logger: logger,
	}
	c.publishState()
	return c
}

// State exposes the shared connection flag for health reporting.
func (c *Catalog) State() *ConnState {
	return c.state
}

func (c *Catalog) publishState() {
	if c.state.Connected() {
		remoteConnected.Set(1)
	} else {
		remoteConnected.Set(0)
	}
}

// Probe checks remote reachability and updates the shared flag. It returns
// the new belief.
func (c *Catalog) Probe(ctx context.Context) bool {
	if err := c.remote.Ping(ctx); err != nil {
		c.logger.Info("remote catalog unreachable, serving from local store",
			slog.String("error", err.Error()),
		)
		c.state.MarkDisconnected()
		c.publishState()
		return false
	}
	c.state.MarkConnected()
	c.publishState()
	return true
}

// ensureProbed runs the reachability probe only when the flag is unset.
func (c *Catalog) ensureProbed(ctx context.Context) {
	if !c.state.Connected() {
		c.Probe(ctx)
	}
}

func (c *Catalog) fellBack(op string, err error) {
	fallbackTotal.WithLabelValues(op).Inc()
	if err != nil {
		c.logger.Warn("remote catalog call failed, falling back to local store",
			slog.String("operation", op),
			slog.String("error", err.Error()),
		)
	}
}

func (c *Catalog) ListProducts(ctx context.Context, limit int) ([]domain.Product, error) {
	c.ensureProbed(ctx)

	if c.state.Connected() {
		products, err := c.remote.ListProducts(ctx, limit)
		if err == nil {
			return products, nil
		}
		c.fellBack("list_products", err)
	} else {
		fallbackTotal.WithLabelValues("list_products").Inc()
	}

	return c.local.ListProducts(ctx, limit)
}

func (c *Catalog) CreateProduct(ctx context.Context, p *domain.Product) error {
	if c.state.Connected() {
		err := c.remote.CreateProduct(ctx, p)
		if err == nil {
			return nil
		}
		c.fellBack("create_product", err)
	} else {
		fallbackTotal.WithLabelValues("create_product").Inc()
	}

	p.ID = domain.NewLocalID()
	return c.local.CreateProduct(ctx, p)
}

func (c *Catalog) UpdateProduct(ctx context.Context, p *domain.Product) error {
	if c.state.Connected() && !domain.IsLocalID(p.ID) {
		err := c.remote.UpdateProduct(ctx, p)
		if err == nil {
			return nil
		}
		c.fellBack("update_product", err)
	} else {
		fallbackTotal.WithLabelValues("update_product").Inc()
	}

	return c.local.UpdateProduct(ctx, p)
}

func (c *Catalog) DeleteProduct(ctx context.Context, id string) error {
	if c.state.Connected() && !domain.IsLocalID(id) {
		err := c.remote.DeleteProduct(ctx, id)
		if err == nil {
			return nil
		}
		c.fellBack("delete_product", err)
	} else {
		fallbackTotal.WithLabelValues("delete_product").Inc()
	}

	return c.local.DeleteProduct(ctx, id)
}

func (c *Catalog) ListCategories(ctx context.Context, limit int) ([]domain.Category, error) {
	c.ensureProbed(ctx)

	if c.state.Connected() {
		categories, err := c.remote.ListCategories(ctx, limit)
		if err == nil {
			return categories, nil
		}
		c.fellBack("list_categories", err)
	} else {
		fallbackTotal.WithLabelValues("list_categories").Inc()
	}

	return c.local.ListCategories(ctx, limit)
}

func (c *Catalog) CreateCategory(ctx context.Context, cat *domain.Category) error {
	if c.state.Connected() {
		err := c.remote.CreateCategory(ctx, cat)
		if err == nil {
			return nil
		}
		c.fellBack("create_category", err)
	} else {
		fallbackTotal.WithLabelValues("create_category").Inc()
	}

	cat.ID = domain.NewLocalID()
	return c.local.CreateCategory(ctx, cat)
}

func (c *Catalog) DeleteCategory(ctx context.Context, id string) error {
	if c.state.Connected() && !domain.IsLocalID(id) {
		err := c.remote.DeleteCategory(ctx, id)
		if err == nil {
			return nil
		}
		c.fellBack("delete_category", err)
	} else {
		fallbackTotal.WithLabelValues("delete_category").Inc()
	}

	return c.local.DeleteCategory(ctx, id)
}

func (c *Catalog) ListOrders(ctx context.Context, limit int) ([]domain.Order, error) {
	c.ensureProbed(ctx)

	if c.state.Connected() {
		orders, err := c.remote.ListOrders(ctx, limit)
		if err == nil {
			return orders, nil
		}
		c.fellBack("list_orders", err)
	} else {
		fallbackTotal.WithLabelValues("list_orders").Inc()
	}

	return c.local.ListOrders(ctx, limit)
}

func (c *Catalog) CreateOrder(ctx context.Context, o *domain.Order) error {
	if c.state.Connected() {
		err := c.remote.CreateOrder(ctx, o)
		if err == nil {
			return nil
		}
		c.fellBack("create_order", err)
	} else {
		fallbackTotal.WithLabelValues("create_order").Inc()
	}

	o.ID = domain.NewLocalID()
	return c.local.CreateOrder(ctx, o)
}

func (c *Catalog) UpdateOrderStatus(ctx context.Context, id, status string) error {
	if c.state.Connected() && !domain.IsLocalID(id) {
		err := c.remote.UpdateOrderStatus(ctx, id, status)
		if err == nil {
			return nil
		}
		c.fellBack("update_order_status", err)
	} else {
		fallbackTotal.WithLabelValues("update_order_status").Inc()
	}

	return c.local.UpdateOrderStatus(ctx, id, status)
}

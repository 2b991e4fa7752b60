package fallback

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cantikstore/storefront/internal/domain"
	"github.com/cantikstore/storefront/internal/repository/local"
)

var errRemoteDown = errors.New("connection refused")

// fakeRemote is an in-memory RemoteCatalog whose failures are scriptable.
type fakeRemote struct {
	pingErr  error
	callErr  error
	products []domain.Product
	orders   []domain.Order
	calls    []string
}

func (f *fakeRemote) record(op string) { f.calls = append(f.calls, op) }

func (f *fakeRemote) Ping(context.Context) error {
	f.record("ping")
	return f.pingErr
}

func (f *fakeRemote) ListProducts(context.Context, int) ([]domain.Product, error) {
	f.record("list_products")
	if f.callErr != nil {
		return nil, f.callErr
	}
	return f.products, nil
}

func (f *fakeRemote) CreateProduct(_ context.Context, p *domain.Product) error {
	f.record("create_product")
	if f.callErr != nil {
		return f.callErr
	}
	f.products = append([]domain.Product{*p}, f.products...)
	return nil
}

func (f *fakeRemote) UpdateProduct(_ context.Context, p *domain.Product) error {
	f.record("update_product")
	return f.callErr
}

func (f *fakeRemote) DeleteProduct(context.Context, string) error {
	f.record("delete_product")
	return f.callErr
}

func (f *fakeRemote) ListCategories(context.Context, int) ([]domain.Category, error) {
	f.record("list_categories")
	if f.callErr != nil {
		return nil, f.callErr
	}
	return nil, nil
}

func (f *fakeRemote) CreateCategory(_ context.Context, c *domain.Category) error {
	f.record("create_category")
	return f.callErr
}

func (f *fakeRemote) DeleteCategory(context.Context, string) error {
	f.record("delete_category")
	return f.callErr
}

func (f *fakeRemote) ListOrders(context.Context, int) ([]domain.Order, error) {
	f.record("list_orders")
	if f.callErr != nil {
		return nil, f.callErr
	}
	return f.orders, nil
}

func (f *fakeRemote) CreateOrder(_ context.Context, o *domain.Order) error {
	f.record("create_order")
	if f.callErr != nil {
		return f.callErr
	}
	f.orders = append([]domain.Order{*o}, f.orders...)
	return nil
}

func (f *fakeRemote) UpdateOrderStatus(context.Context, string, string) error {
	f.record("update_order_status")
	return f.callErr
}

func setup(t *testing.T, remote *fakeRemote, connected bool) (*Catalog, *ConnState) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	store, err := local.NewStore(t.TempDir(), logger)
	require.NoError(t, err)
	state := NewConnState(connected)
	return NewCatalog(remote, local.NewCatalog(store), state, logger), state
}

func TestListProducts_ProbesWhenDisconnected(t *testing.T) {
	remote := &fakeRemote{products: []domain.Product{{ID: "r1"}}}
	c, state := setup(t, remote, false)

	products, err := c.ListProducts(context.Background(), 0)
	require.NoError(t, err)

	// Probe succeeded, so the flag flips and the remote serves the read.
	assert.True(t, state.Connected())
	require.Len(t, products, 1)
	assert.Equal(t, "r1", products[0].ID)
	assert.Equal(t, []string{"ping", "list_products"}, remote.calls)
}

func TestListProducts_FailedProbeServesLocal(t *testing.T) {
	remote := &fakeRemote{pingErr: errRemoteDown}
	c, state := setup(t, remote, false)

	products, err := c.ListProducts(context.Background(), 0)
	require.NoError(t, err)

	assert.False(t, state.Connected())
	// Local store seeds the sample catalog.
	assert.Len(t, products, 12)
	assert.Equal(t, []string{"ping"}, remote.calls)
}

func TestListProducts_StickyFlagSurvivesCallFailure(t *testing.T) {
	remote := &fakeRemote{callErr: errRemoteDown}
	c, state := setup(t, remote, true)

	products, err := c.ListProducts(context.Background(), 0)
	require.NoError(t, err)

	// The call fell back but the flag stays set: only a failed probe
	// clears it.
	assert.True(t, state.Connected())
	assert.Len(t, products, 12)
	// No probe ran because the flag was already set.
	assert.NotContains(t, remote.calls, "ping")
}

func TestCreateProduct_RemoteFailureForksLocally(t *testing.T) {
	remote := &fakeRemote{callErr: errRemoteDown}
	c, _ := setup(t, remote, true)

	p := &domain.Product{ID: "server-id", Name: "Dress"}
	require.NoError(t, c.CreateProduct(context.Background(), p))

	// The record got a local id and landed in the local store.
	assert.True(t, domain.IsLocalID(p.ID))

	remote.callErr = errRemoteDown
	remote.pingErr = errRemoteDown
	products, err := c.ListProducts(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, p.ID, products[0].ID)
}

func TestCreateProduct_DisconnectedSkipsRemote(t *testing.T) {
	remote := &fakeRemote{}
	c, _ := setup(t, remote, false)

	p := &domain.Product{ID: "server-id", Name: "Dress"}
	require.NoError(t, c.CreateProduct(context.Background(), p))

	assert.True(t, domain.IsLocalID(p.ID))
	// Writes trust the flag; no probe, no remote call.
	assert.Empty(t, remote.calls)
}

func TestUpdateProduct_LocalIDNeverTouchesRemote(t *testing.T) {
	remote := &fakeRemote{}
	c, _ := setup(t, remote, true)

	p := &domain.Product{ID: "local_abc", Name: "Dress"}
	require.NoError(t, c.UpdateProduct(context.Background(), p))

	assert.Empty(t, remote.calls)
}

func TestDeleteProduct_LocalIDNeverTouchesRemote(t *testing.T) {
	remote := &fakeRemote{}
	c, _ := setup(t, remote, true)

	require.NoError(t, c.DeleteProduct(context.Background(), "local_abc"))
	assert.Empty(t, remote.calls)
}

func TestUpdateProduct_RemoteIDUsesRemote(t *testing.T) {
	remote := &fakeRemote{}
	c, _ := setup(t, remote, true)

	p := &domain.Product{ID: "server-id", Name: "Dress"}
	require.NoError(t, c.UpdateProduct(context.Background(), p))

	assert.Equal(t, []string{"update_product"}, remote.calls)
}

func TestCreateOrder_FallbackAssignsLocalID(t *testing.T) {
	remote := &fakeRemote{pingErr: errRemoteDown}
	c, _ := setup(t, remote, false)

	o := &domain.Order{ID: "server-id", Status: domain.OrderStatusPending}
	require.NoError(t, c.CreateOrder(context.Background(), o))
	assert.True(t, domain.IsLocalID(o.ID))

	orders, err := c.ListOrders(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, o.ID, orders[0].ID)
}

func TestProbe_RecoversAfterRemoteReturns(t *testing.T) {
	remote := &fakeRemote{pingErr: errRemoteDown, products: []domain.Product{{ID: "r1"}}}
	c, state := setup(t, remote, false)

	_, err := c.ListProducts(context.Background(), 0)
	require.NoError(t, err)
	assert.False(t, state.Connected())

	remote.pingErr = nil

	products, err := c.ListProducts(context.Background(), 0)
	require.NoError(t, err)
	assert.True(t, state.Connected())
	require.Len(t, products, 1)
	assert.Equal(t, "r1", products[0].ID)
}

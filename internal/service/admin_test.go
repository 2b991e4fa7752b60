package service

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cantikstore/storefront/internal/domain"
	apperrors "github.com/cantikstore/storefront/pkg/errors"
)

// memSessionRepo is an in-memory SessionRepository.
type memSessionRepo struct {
	mu     sync.Mutex
	tokens map[string]bool
}

func newMemSessionRepo() *memSessionRepo {
	return &memSessionRepo{tokens: make(map[string]bool)}
}

func (m *memSessionRepo) Put(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokens[token] = true
	return nil
}

func (m *memSessionRepo) Exists(_ context.Context, token string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tokens[token], nil
}

func (m *memSessionRepo) Delete(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.tokens, token)
	return nil
}

func newAdminService() (*AdminService, *memSessionRepo, *memCatalog) {
	sessions := newMemSessionRepo()
	catalog := &memCatalog{}
	catalogSvc := NewCatalogService(catalog, nil, newTestLogger())
	return NewAdminService(sessions, catalogSvc, newTestLogger(), "cantik123"), sessions, catalog
}

func TestAdminLogin(t *testing.T) {
	svc, _, _ := newAdminService()
	ctx := context.Background()

	token, err := svc.Login(ctx, "cantik123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	authed, err := svc.IsAuthenticated(ctx, token)
	require.NoError(t, err)
	assert.True(t, authed)
}

func TestAdminLogin_WrongPassword(t *testing.T) {
	svc, _, _ := newAdminService()

	_, err := svc.Login(context.Background(), "letmein")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestAdminLogout(t *testing.T) {
	svc, _, _ := newAdminService()
	ctx := context.Background()

	token, err := svc.Login(ctx, "cantik123")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, token))

	authed, err := svc.IsAuthenticated(ctx, token)
	require.NoError(t, err)
	assert.False(t, authed)

	// Revoking again, or revoking nothing, is fine.
	require.NoError(t, svc.Logout(ctx, token))
	require.NoError(t, svc.Logout(ctx, ""))
}

func TestIsAuthenticated_EmptyAndUnknownToken(t *testing.T) {
	svc, _, _ := newAdminService()
	ctx := context.Background()

	authed, err := svc.IsAuthenticated(ctx, "")
	require.NoError(t, err)
	assert.False(t, authed)

	authed, err = svc.IsAuthenticated(ctx, "not-a-token")
	require.NoError(t, err)
	assert.False(t, authed)
}

func TestLoadData_FullReplacement(t *testing.T) {
	svc, _, catalog := newAdminService()
	ctx := context.Background()

	catalog.products = []domain.Product{{ID: "p1", Name: "Floral Summer Dress"}}
	catalog.categories = []domain.Category{{ID: "c1", Name: "Dresses"}}
	catalog.orders = []domain.Order{{ID: "o1", Status: domain.OrderStatusPending}}

	require.NoError(t, svc.LoadData(ctx))

	snap := svc.Snapshot()
	require.Len(t, snap.Products, 1)
	require.Len(t, snap.Categories, 1)
	require.Len(t, snap.Orders, 1)
	assert.False(t, snap.Loading)

	// A refresh replaces the whole collection, it never merges.
	catalog.mu.Lock()
	catalog.products = []domain.Product{{ID: "p2", Name: "Linen Kurti"}}
	catalog.mu.Unlock()

	require.NoError(t, svc.RefreshProducts(ctx))

	snap = svc.Snapshot()
	require.Len(t, snap.Products, 1)
	assert.Equal(t, "p2", snap.Products[0].ID)
}

func TestSnapshot_EmptyBeforeLoad(t *testing.T) {
	svc, _, _ := newAdminService()

	snap := svc.Snapshot()
	assert.Empty(t, snap.Products)
	assert.Empty(t, snap.Categories)
	assert.Empty(t, snap.Orders)
	assert.False(t, snap.Loading)
}

package redis

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cantikstore/storefront/internal/domain"
	apperrors "github.com/cantikstore/storefront/pkg/errors"
)

func setupTestRedis(t *testing.T) (*CartRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	repo := NewCartRepository(client, 0)
	return repo, mr
}

func sampleCart() *domain.Cart {
	now := time.Now().UTC().Truncate(time.Millisecond)
	return &domain.Cart{
		SessionID: "sess-001",
		Items: []domain.CartItem{
			{
				ProductID: "p1",
				Size:      "M",
				Name:      "Floral Summer Dress",
				UnitPrice: 899,
				Quantity:  2,
				ImageURL:  "https://img.example.com/d.jpg",
			},
		},
		UpdatedAt: now,
	}
}

func TestCartRepository_Get_Success(t *testing.T) {
	repo, mr := setupTestRedis(t)

	cart := sampleCart()
	data, err := json.Marshal(cart)
	require.NoError(t, err)
	require.NoError(t, mr.Set("cart:"+cart.SessionID, string(data)))

	got, err := repo.Get(context.Background(), cart.SessionID)
	require.NoError(t, err)
	assert.Equal(t, cart.SessionID, got.SessionID)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "p1", got.Items[0].ProductID)
	assert.Equal(t, "M", got.Items[0].Size)
	assert.Equal(t, int64(899), got.Items[0].UnitPrice)
	assert.Equal(t, 2, got.Items[0].Quantity)
}

func TestCartRepository_Get_NotFound(t *testing.T) {
	repo, _ := setupTestRedis(t)

	_, err := repo.Get(context.Background(), "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCartRepository_Get_CorruptPayload(t *testing.T) {
	repo, mr := setupTestRedis(t)

	require.NoError(t, mr.Set("cart:sess-001", "{broken"))

	_, err := repo.Get(context.Background(), "sess-001")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrCorruptData)
}

func TestCartRepository_SaveAndGetRoundTrip(t *testing.T) {
	repo, _ := setupTestRedis(t)

	cart := sampleCart()
	require.NoError(t, repo.Save(context.Background(), cart))

	got, err := repo.Get(context.Background(), cart.SessionID)
	require.NoError(t, err)
	assert.Equal(t, cart.Items, got.Items)
}

func TestCartRepository_Save_NoTTLMeansNoExpiry(t *testing.T) {
	repo, mr := setupTestRedis(t)

	require.NoError(t, repo.Save(context.Background(), sampleCart()))

	// Zero TTL stores without expiry.
	assert.Equal(t, time.Duration(0), mr.TTL("cart:sess-001"))
}

func TestCartRepository_Save_WithTTL(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	repo := NewCartRepository(client, time.Hour)

	require.NoError(t, repo.Save(context.Background(), sampleCart()))
	assert.Equal(t, time.Hour, mr.TTL("cart:sess-001"))
}

func TestCartRepository_Delete(t *testing.T) {
	repo, _ := setupTestRedis(t)

	cart := sampleCart()
	require.NoError(t, repo.Save(context.Background(), cart))
	require.NoError(t, repo.Delete(context.Background(), cart.SessionID))

	_, err := repo.Get(context.Background(), cart.SessionID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCartRepository_Delete_MissingIsNoOp(t *testing.T) {
	repo, _ := setupTestRedis(t)
	assert.NoError(t, repo.Delete(context.Background(), "missing"))
}

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cantikstore/storefront/internal/domain"
	localrepo "github.com/cantikstore/storefront/internal/repository/local"
	redisrepo "github.com/cantikstore/storefront/internal/repository/redis"
	"github.com/cantikstore/storefront/internal/service"
	"github.com/cantikstore/storefront/internal/storage"
	"github.com/cantikstore/storefront/pkg/health"
	"github.com/cantikstore/storefront/pkg/logger"
)

const testAdminPassword = "cantik123"

// newTestServer wires the full HTTP surface over miniredis and a file-backed
// catalog in a temp dir.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	log := logger.New("storefront-test", "error")

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	store, err := localrepo.NewStore(t.TempDir(), log)
	require.NoError(t, err)
	catalog := localrepo.NewCatalog(store)

	cartRepo := redisrepo.NewCartRepository(client, 0)
	sessionRepo := redisrepo.NewSessionRepository(client, time.Hour)

	cartSvc := service.NewCartService(cartRepo, log)
	catalogSvc := service.NewCatalogService(catalog, nil, log)
	checkoutSvc := service.NewCheckoutService(cartSvc, catalog, nil, log, service.CheckoutConfig{
		WhatsAppNumber:        "+919605996444",
		FreeDeliveryThreshold: 999,
		DeliveryCharge:        49,
		StoreName:             "Cantik",
	})
	adminSvc := service.NewAdminService(sessionRepo, catalogSvc, log, testAdminPassword)
	mediaSvc := service.NewMediaService(storage.Disabled{}, log)

	router := NewRouter(Services{
		Cart:     cartSvc,
		Catalog:  catalogSvc,
		Checkout: checkoutSvc,
		Admin:    adminSvc,
		Media:    mediaSvc,
	}, health.NewHandler(), log)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Fields  map[string]string `json:"fields"`
	} `json:"error"`
}

func doRequest(t *testing.T, srv *httptest.Server, method, path string, body any, headers map[string]string) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(context.Background(), method, srv.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func sessionHeaders(sid string) map[string]string {
	return map[string]string{"X-Session-ID": sid}
}

func loginAdmin(t *testing.T, srv *httptest.Server) string {
	t.Helper()

	status, env := doRequest(t, srv, http.MethodPost, "/api/v1/admin/login",
		LoginRequest{Password: testAdminPassword}, nil)
	require.Equal(t, http.StatusOK, status)

	var resp LoginResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func adminHeaders(token string) map[string]string {
	return map[string]string{"X-Admin-Token": token}
}

func TestListProducts_SeededCatalog(t *testing.T) {
	srv := newTestServer(t)

	status, env := doRequest(t, srv, http.MethodGet, "/api/v1/products", nil, nil)
	require.Equal(t, http.StatusOK, status)

	var products []domain.Product
	require.NoError(t, json.Unmarshal(env.Data, &products))
	require.Len(t, products, 12)
	assert.Equal(t, "sample_1", products[0].ID)
}

func TestListCategories_SeededCatalog(t *testing.T) {
	srv := newTestServer(t)

	status, env := doRequest(t, srv, http.MethodGet, "/api/v1/categories", nil, nil)
	require.Equal(t, http.StatusOK, status)

	var categories []domain.Category
	require.NoError(t, json.Unmarshal(env.Data, &categories))
	require.Len(t, categories, 5)
	assert.Equal(t, "Casual", categories[0].Name)
}

func TestCart_RequiresSessionHeader(t *testing.T) {
	srv := newTestServer(t)

	status, env := doRequest(t, srv, http.MethodGet, "/api/v1/cart", nil, nil)
	assert.Equal(t, http.StatusBadRequest, status)
	require.NotNil(t, env.Error)
	assert.Contains(t, env.Error.Message, "X-Session-ID")
}

func TestCart_Flow(t *testing.T) {
	srv := newTestServer(t)
	headers := sessionHeaders("sess-flow")

	// New session starts empty.
	status, env := doRequest(t, srv, http.MethodGet, "/api/v1/cart", nil, headers)
	require.Equal(t, http.StatusOK, status)
	var cart domain.Cart
	require.NoError(t, json.Unmarshal(env.Data, &cart))
	assert.Empty(t, cart.Items)

	// Add an item.
	status, env = doRequest(t, srv, http.MethodPost, "/api/v1/cart/items", AddItemRequest{
		ProductID: "sample_1",
		Size:      "M",
		Name:      "Floral Summer Dress",
		UnitPrice: 899,
		Quantity:  1,
	}, headers)
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(env.Data, &cart))
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.Items[0].Quantity)

	// Same product and size merges.
	status, env = doRequest(t, srv, http.MethodPost, "/api/v1/cart/items", AddItemRequest{
		ProductID: "sample_1",
		Size:      "M",
		Name:      "Floral Summer Dress",
		UnitPrice: 899,
		Quantity:  2,
	}, headers)
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(env.Data, &cart))
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity)

	// Set an explicit quantity.
	status, env = doRequest(t, srv, http.MethodPut, "/api/v1/cart/items/sample_1/M",
		UpdateQuantityRequest{Quantity: 5}, headers)
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(env.Data, &cart))
	assert.Equal(t, 5, cart.Items[0].Quantity)

	// Remove the line.
	status, env = doRequest(t, srv, http.MethodDelete, "/api/v1/cart/items/sample_1/M", nil, headers)
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(env.Data, &cart))
	assert.Empty(t, cart.Items)
}

func TestCart_ClearCart(t *testing.T) {
	srv := newTestServer(t)
	headers := sessionHeaders("sess-clear")

	status, _ := doRequest(t, srv, http.MethodPost, "/api/v1/cart/items", AddItemRequest{
		ProductID: "sample_2",
		Size:      "L",
		Name:      "Elegant Black Gown",
		UnitPrice: 1499,
		Quantity:  1,
	}, headers)
	require.Equal(t, http.StatusOK, status)

	status, env := doRequest(t, srv, http.MethodDelete, "/api/v1/cart", nil, headers)
	require.Equal(t, http.StatusOK, status)

	var cart domain.Cart
	require.NoError(t, json.Unmarshal(env.Data, &cart))
	assert.Empty(t, cart.Items)
}

func TestCart_AddItemValidation(t *testing.T) {
	srv := newTestServer(t)
	headers := sessionHeaders("sess-validate")

	// Missing required fields surface per-field messages.
	status, env := doRequest(t, srv, http.MethodPost, "/api/v1/cart/items",
		AddItemRequest{Quantity: 1}, headers)
	assert.Equal(t, http.StatusBadRequest, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	assert.Contains(t, env.Error.Fields, "ProductID")
	assert.Contains(t, env.Error.Fields, "Size")

	// Malformed JSON is a plain bad request.
	req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/v1/cart/items",
		strings.NewReader("{not json"))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Session-ID", "sess-validate")

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCart_RejectsNonJSONBody(t *testing.T) {
	srv := newTestServer(t)

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/v1/cart/items",
		strings.NewReader("product_id=sample_1"))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("X-Session-ID", "sess-ct")

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnsupportedMediaType, resp.StatusCode)
}

func TestCheckout(t *testing.T) {
	srv := newTestServer(t)
	headers := sessionHeaders("sess-checkout")

	status, _ := doRequest(t, srv, http.MethodPost, "/api/v1/cart/items", AddItemRequest{
		ProductID: "sample_1",
		Size:      "M",
		Name:      "Floral Summer Dress",
		UnitPrice: 899,
		Quantity:  1,
	}, headers)
	require.Equal(t, http.StatusOK, status)

	status, env := doRequest(t, srv, http.MethodPost, "/api/v1/checkout",
		CheckoutRequest{CustomerPhone: "+911234567890"}, headers)
	require.Equal(t, http.StatusCreated, status)

	var result service.CheckoutResult
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Equal(t, domain.OrderStatusPending, result.Order.Status)
	assert.Equal(t, int64(948), result.Order.Total)
	assert.True(t, strings.HasPrefix(result.WhatsAppURL, "https://wa.me/919605996444?text="))

	// Cart is gone after checkout.
	status, env = doRequest(t, srv, http.MethodGet, "/api/v1/cart", nil, headers)
	require.Equal(t, http.StatusOK, status)
	var cart domain.Cart
	require.NoError(t, json.Unmarshal(env.Data, &cart))
	assert.Empty(t, cart.Items)
}

func TestCheckout_EmptyCart(t *testing.T) {
	srv := newTestServer(t)

	status, env := doRequest(t, srv, http.MethodPost, "/api/v1/checkout", nil,
		sessionHeaders("sess-empty"))
	assert.Equal(t, http.StatusBadRequest, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_INPUT", env.Error.Code)
}

func TestAdminLogin_WrongPasswordHTTP(t *testing.T) {
	srv := newTestServer(t)

	status, env := doRequest(t, srv, http.MethodPost, "/api/v1/admin/login",
		LoginRequest{Password: "wrong"}, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, "UNAUTHORIZED", env.Error.Code)
}

func TestAdminEndpoints_RequireToken(t *testing.T) {
	srv := newTestServer(t)

	status, env := doRequest(t, srv, http.MethodGet, "/api/v1/admin/dashboard", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	require.NotNil(t, env.Error)

	status, _ = doRequest(t, srv, http.MethodGet, "/api/v1/admin/dashboard", nil,
		adminHeaders("bogus-token"))
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestAdminLogout_RevokesToken(t *testing.T) {
	srv := newTestServer(t)
	token := loginAdmin(t, srv)

	status, _ := doRequest(t, srv, http.MethodGet, "/api/v1/admin/dashboard", nil, adminHeaders(token))
	require.Equal(t, http.StatusOK, status)

	status, _ = doRequest(t, srv, http.MethodPost, "/api/v1/admin/logout", nil, adminHeaders(token))
	require.Equal(t, http.StatusOK, status)

	status, _ = doRequest(t, srv, http.MethodGet, "/api/v1/admin/dashboard", nil, adminHeaders(token))
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestAdminDashboard_Refresh(t *testing.T) {
	srv := newTestServer(t)
	token := loginAdmin(t, srv)

	status, env := doRequest(t, srv, http.MethodPost, "/api/v1/admin/dashboard/refresh", nil,
		adminHeaders(token))
	require.Equal(t, http.StatusOK, status)

	var snap service.AdminSnapshot
	require.NoError(t, json.Unmarshal(env.Data, &snap))
	assert.Len(t, snap.Products, 12)
	assert.Len(t, snap.Categories, 5)
}

func TestAdminProductLifecycle(t *testing.T) {
	srv := newTestServer(t)
	token := loginAdmin(t, srv)

	status, env := doRequest(t, srv, http.MethodPost, "/api/v1/admin/products", ProductRequest{
		Name:     "Chiffon Saree",
		Price:    1899,
		Category: "Ethnic",
		Image:    "https://example.com/saree.jpg",
	}, adminHeaders(token))
	require.Equal(t, http.StatusCreated, status)

	var product domain.Product
	require.NoError(t, json.Unmarshal(env.Data, &product))
	require.NotEmpty(t, product.ID)
	assert.Equal(t, domain.DefaultSizes(), product.Sizes)

	// New product leads the list.
	status, env = doRequest(t, srv, http.MethodGet, "/api/v1/products", nil, nil)
	require.Equal(t, http.StatusOK, status)
	var products []domain.Product
	require.NoError(t, json.Unmarshal(env.Data, &products))
	require.Len(t, products, 13)
	assert.Equal(t, product.ID, products[0].ID)

	status, env = doRequest(t, srv, http.MethodPut, "/api/v1/admin/products/"+product.ID, ProductRequest{
		Name:     "Chiffon Saree",
		Price:    1699,
		Category: "Ethnic",
	}, adminHeaders(token))
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(env.Data, &product))
	assert.Equal(t, int64(1699), product.Price)

	status, _ = doRequest(t, srv, http.MethodDelete, "/api/v1/admin/products/"+product.ID, nil,
		adminHeaders(token))
	require.Equal(t, http.StatusOK, status)
}

func TestAdminOrderStatus(t *testing.T) {
	srv := newTestServer(t)
	token := loginAdmin(t, srv)
	headers := sessionHeaders("sess-order")

	status, _ := doRequest(t, srv, http.MethodPost, "/api/v1/cart/items", AddItemRequest{
		ProductID: "sample_1",
		Size:      "S",
		Name:      "Floral Summer Dress",
		UnitPrice: 899,
		Quantity:  1,
	}, headers)
	require.Equal(t, http.StatusOK, status)

	status, env := doRequest(t, srv, http.MethodPost, "/api/v1/checkout", nil, headers)
	require.Equal(t, http.StatusCreated, status)
	var result service.CheckoutResult
	require.NoError(t, json.Unmarshal(env.Data, &result))

	status, env = doRequest(t, srv, http.MethodGet, "/api/v1/admin/orders", nil, adminHeaders(token))
	require.Equal(t, http.StatusOK, status)
	var orders []domain.Order
	require.NoError(t, json.Unmarshal(env.Data, &orders))
	require.Len(t, orders, 1)
	assert.Equal(t, result.Order.ID, orders[0].ID)

	status, _ = doRequest(t, srv, http.MethodPatch,
		"/api/v1/admin/orders/"+result.Order.ID+"/status",
		OrderStatusRequest{Status: domain.OrderStatusConfirmed}, adminHeaders(token))
	require.Equal(t, http.StatusOK, status)

	// Confirmed cannot go back to pending.
	status, _ = doRequest(t, srv, http.MethodPatch,
		"/api/v1/admin/orders/"+result.Order.ID+"/status",
		OrderStatusRequest{Status: domain.OrderStatusPending}, adminHeaders(token))
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestUploadImages_InlineFallback(t *testing.T) {
	srv := newTestServer(t)
	token := loginAdmin(t, srv)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("images", "dress.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("jpeg bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/v1/admin/images", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("X-Admin-Token", token)

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	var upload UploadImagesResponse
	require.NoError(t, json.Unmarshal(env.Data, &upload))
	require.Len(t, upload.URLs, 1)
	assert.True(t, strings.HasPrefix(upload.URLs[0], "data:"))
}

func TestCORS_Preflight(t *testing.T) {
	srv := newTestServer(t)

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/api/v1/products", nil)
	require.NoError(t, err)

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Contains(t, resp.Header.Get("Access-Control-Allow-Headers"), "X-Admin-Token")
}

func TestHealthEndpoints(t *testing.T) {
	srv := newTestServer(t)

	resp, err := srv.Client().Get(srv.URL + "/health/live")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = srv.Client().Get(srv.URL + "/health/ready")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ShahJahanApurbo/decoration-store/internal/api"
	"github.com/ShahJahanApurbo/decoration-store/internal/config"
	"github.com/ShahJahanApurbo/decoration-store/internal/domain"
	apperrors "github.com/ShahJahanApurbo/decoration-store/pkg/errors"
)

// MockCatalogService is a mock implementation of handlers.CatalogService
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) Products(ctx context.Context, first int, after string) (*domain.ProductPage, error) {
	args := m.Called(ctx, first, after)
	if page := args.Get(0); page != nil {
		return page.(*domain.ProductPage), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCatalogService) ProductByHandle(ctx context.Context, handle string) (*domain.Product, error) {
	args := m.Called(ctx, handle)
	if p := args.Get(0); p != nil {
		return p.(*domain.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCatalogService) SearchProducts(ctx context.Context, query string, first int, after string) (*domain.ProductPage, error) {
	args := m.Called(ctx, query, first, after)
	if page := args.Get(0); page != nil {
		return page.(*domain.ProductPage), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCatalogService) FeaturedProducts(ctx context.Context, first int) ([]domain.Product, error) {
	args := m.Called(ctx, first)
	if p := args.Get(0); p != nil {
		return p.([]domain.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCatalogService) Recommendations(ctx context.Context, productID string) ([]domain.Product, error) {
	args := m.Called(ctx, productID)
	if p := args.Get(0); p != nil {
		return p.([]domain.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCatalogService) Collections(ctx context.Context, first int, after string) (*domain.CollectionPage, error) {
	args := m.Called(ctx, first, after)
	if page := args.Get(0); page != nil {
		return page.(*domain.CollectionPage), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCatalogService) CollectionByHandle(ctx context.Context, handle string, first int, after string) (*domain.Collection, error) {
	args := m.Called(ctx, handle, first, after)
	if c := args.Get(0); c != nil {
		return c.(*domain.Collection), args.Error(1)
	}
	return nil, args.Error(1)
}

func newTestRouter(svc *MockCatalogService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{Environment: "test", Port: "0"}
	return api.NewRouter(cfg, svc, zap.NewNop())
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
}

func doRequest(t *testing.T, router *gin.Engine, path string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)

	var body envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestListProducts_DefaultPageSize(t *testing.T) {
	svc := new(MockCatalogService)
	svc.On("Products", mock.Anything, 20, "").
		Return(&domain.ProductPage{Products: []domain.Product{{Handle: "ceramic-vase"}}}, nil)

	w, body := doRequest(t, newTestRouter(svc), "/api/products")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, body.Success)
	svc.AssertExpectations(t)
}

func TestListProducts_InvalidFirstFallsBack(t *testing.T) {
	svc := new(MockCatalogService)
	svc.On("Products", mock.Anything, 20, "").
		Return(&domain.ProductPage{}, nil)

	w, _ := doRequest(t, newTestRouter(svc), "/api/products?first=banana")

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestListProducts_QueryParamSwitchesToSearch(t *testing.T) {
	svc := new(MockCatalogService)
	svc.On("SearchProducts", mock.Anything, "vase", 20, "").
		Return(&domain.ProductPage{}, nil)

	w, body := doRequest(t, newTestRouter(svc), "/api/products?query=vase")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, body.Success)
	svc.AssertNotCalled(t, "Products", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetProduct_NotFound(t *testing.T) {
	svc := new(MockCatalogService)
	svc.On("ProductByHandle", mock.Anything, "missing-item").
		Return(nil, &apperrors.ErrNotFound{Resource: "product", Handle: "missing-item"})

	w, body := doRequest(t, newTestRouter(svc), "/api/products/missing-item")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, body.Success)
	assert.Equal(t, "product not found", body.Error)
}

func TestGetProduct_UpstreamFailure(t *testing.T) {
	svc := new(MockCatalogService)
	svc.On("ProductByHandle", mock.Anything, "ceramic-vase").
		Return(nil, &apperrors.ErrUpstream{StatusCode: 502})

	w, body := doRequest(t, newTestRouter(svc), "/api/products/ceramic-vase")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.False(t, body.Success)
	assert.Equal(t, "Failed to fetch product", body.Error)
}

func TestGetProduct_NotConfigured(t *testing.T) {
	svc := new(MockCatalogService)
	svc.On("ProductByHandle", mock.Anything, "ceramic-vase").
		Return(nil, &apperrors.ErrNotConfigured{Missing: []string{"SHOPIFY_STORE_DOMAIN"}})

	w, body := doRequest(t, newTestRouter(svc), "/api/products/ceramic-vase")

	// Distinguishable from transient failures so the UI can render a
	// setup prompt.
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "store not configured", body.Error)
}

func TestFeaturedProducts_DefaultsToEight(t *testing.T) {
	svc := new(MockCatalogService)
	svc.On("FeaturedProducts", mock.Anything, 8).
		Return([]domain.Product{{Handle: "ceramic-vase"}}, nil)

	w, body := doRequest(t, newTestRouter(svc), "/api/products/featured")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, body.Success)
	svc.AssertExpectations(t)
}

func TestGetCollection_NotFound(t *testing.T) {
	svc := new(MockCatalogService)
	svc.On("CollectionByHandle", mock.Anything, "missing", 20, "").
		Return(nil, &apperrors.ErrNotFound{Resource: "collection", Handle: "missing"})

	w, body := doRequest(t, newTestRouter(svc), "/api/collections/missing")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "collection not found", body.Error)
}

func TestListCollections(t *testing.T) {
	svc := new(MockCatalogService)
	svc.On("Collections", mock.Anything, 5, "cursor-1").
		Return(&domain.CollectionPage{Collections: []domain.Collection{{Handle: "living-room"}}}, nil)

	w, body := doRequest(t, newTestRouter(svc), "/api/collections?first=5&after=cursor-1")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, body.Success)
	svc.AssertExpectations(t)
}

func TestHealth(t *testing.T) {
	svc := new(MockCatalogService)
	router := newTestRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequestIDHeaderSet(t *testing.T) {
	svc := new(MockCatalogService)
	router := newTestRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

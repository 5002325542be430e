package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/ShahJahanApurbo/decoration-store/internal/domain"
	"github.com/ShahJahanApurbo/decoration-store/internal/shopify"
	apperrors "github.com/ShahJahanApurbo/decoration-store/pkg/errors"
)

const (
	// DefaultPageSize is used when a caller passes a non-positive page size.
	DefaultPageSize = 20
	// DefaultFeaturedSize bounds the featured subset.
	DefaultFeaturedSize = 8
	// maxPageSize is the Storefront API's own per-page ceiling.
	maxPageSize = 250
)

// Executor is the gateway the service issues queries through.
type Executor interface {
	Execute(ctx context.Context, query string, variables map[string]interface{}) (*shopify.GraphQLResponse, error)
}

// Service exposes typed catalog operations over the Storefront API and
// flattens the edge/node wire shapes into domain values. When a Cache is
// attached, list and lookup responses are served read-through; with a nil
// cache every call goes upstream, which is the default.
type Service struct {
	client Executor
	cache  *Cache
	logger *zap.Logger
}

// NewService creates a catalog service. cache may be nil.
func NewService(client Executor, cache *Cache, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		client: client,
		cache:  cache,
		logger: logger,
	}
}

// Products fetches one page of products, newest first.
func (s *Service) Products(ctx context.Context, first int, after string) (*domain.ProductPage, error) {
	first = normalizeFirst(first, DefaultPageSize)

	cacheKey := fmt.Sprintf("products:first=%d:after=%s", first, after)
	var page domain.ProductPage
	if s.cacheGet(ctx, cacheKey, &page) {
		return &page, nil
	}

	variables := map[string]interface{}{"first": first}
	if after != "" {
		variables["after"] = after
	}

	resp, err := s.client.Execute(ctx, shopify.ProductsQuery, variables)
	if err != nil {
		return nil, fmt.Errorf("fetch products: %w", err)
	}

	var data shopify.ProductsData
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		return nil, fmt.Errorf("parse products response: %w", err)
	}

	result := flattenProductPage(data.Products)
	s.cacheSet(ctx, cacheKey, result)
	return result, nil
}

// ProductByHandle fetches a single product. A null product upstream is
// reported as *errors.ErrNotFound, distinct from gateway failures.
func (s *Service) ProductByHandle(ctx context.Context, handle string) (*domain.Product, error) {
	if handle == "" {
		return nil, &apperrors.ErrNotFound{Resource: "product", Handle: handle}
	}

	cacheKey := "product:handle=" + handle
	var cached domain.Product
	if s.cacheGet(ctx, cacheKey, &cached) {
		return &cached, nil
	}

	resp, err := s.client.Execute(ctx, shopify.ProductByHandleQuery, map[string]interface{}{
		"handle": handle,
	})
	if err != nil {
		return nil, fmt.Errorf("fetch product %q: %w", handle, err)
	}

	var data shopify.ProductByHandleData
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		return nil, fmt.Errorf("parse product response: %w", err)
	}
	if data.Product == nil {
		return nil, &apperrors.ErrNotFound{Resource: "product", Handle: handle}
	}

	product := flattenProduct(*data.Product)
	s.cacheSet(ctx, cacheKey, product)
	return &product, nil
}

// SearchProducts runs a full-text search scoped to products. A blank query
// short-circuits to an empty page without touching the network.
func (s *Service) SearchProducts(ctx context.Context, query string, first int, after string) (*domain.ProductPage, error) {
	if strings.TrimSpace(query) == "" {
		return &domain.ProductPage{Products: []domain.Product{}}, nil
	}
	first = normalizeFirst(first, DefaultPageSize)

	variables := map[string]interface{}{
		"query": query,
		"first": first,
	}
	if after != "" {
		variables["after"] = after
	}

	resp, err := s.client.Execute(ctx, shopify.SearchProductsQuery, variables)
	if err != nil {
		return nil, fmt.Errorf("search products %q: %w", query, err)
	}

	var data shopify.ProductsData
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		return nil, fmt.Errorf("parse search response: %w", err)
	}

	return flattenProductPage(data.Products), nil
}

// FeaturedProducts fetches the bounded featured subset. No pagination.
func (s *Service) FeaturedProducts(ctx context.Context, first int) ([]domain.Product, error) {
	first = normalizeFirst(first, DefaultFeaturedSize)

	cacheKey := fmt.Sprintf("featured:first=%d", first)
	var cached []domain.Product
	if s.cacheGet(ctx, cacheKey, &cached) {
		return cached, nil
	}

	resp, err := s.client.Execute(ctx, shopify.FeaturedProductsQuery, map[string]interface{}{
		"first": first,
	})
	if err != nil {
		return nil, fmt.Errorf("fetch featured products: %w", err)
	}

	var data shopify.ProductsData
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		return nil, fmt.Errorf("parse featured products response: %w", err)
	}

	products := make([]domain.Product, 0, len(data.Products.Edges))
	for _, edge := range data.Products.Edges {
		products = append(products, flattenProduct(edge.Node))
	}
	s.cacheSet(ctx, cacheKey, products)
	return products, nil
}

// Recommendations fetches recommended products for a source product.
// An empty product ID is a no-op.
func (s *Service) Recommendations(ctx context.Context, productID string) ([]domain.Product, error) {
	if strings.TrimSpace(productID) == "" {
		return []domain.Product{}, nil
	}

	resp, err := s.client.Execute(ctx, shopify.ProductRecommendationsQuery, map[string]interface{}{
		"productId": productID,
	})
	if err != nil {
		return nil, fmt.Errorf("fetch recommendations for %q: %w", productID, err)
	}

	var data shopify.ProductRecommendationsData
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		return nil, fmt.Errorf("parse recommendations response: %w", err)
	}

	return flattenProductList(data.ProductRecommendations), nil
}

// Collections fetches one page of collections.
func (s *Service) Collections(ctx context.Context, first int, after string) (*domain.CollectionPage, error) {
	first = normalizeFirst(first, DefaultPageSize)

	cacheKey := fmt.Sprintf("collections:first=%d:after=%s", first, after)
	var page domain.CollectionPage
	if s.cacheGet(ctx, cacheKey, &page) {
		return &page, nil
	}

	variables := map[string]interface{}{"first": first}
	if after != "" {
		variables["after"] = after
	}

	resp, err := s.client.Execute(ctx, shopify.CollectionsQuery, variables)
	if err != nil {
		return nil, fmt.Errorf("fetch collections: %w", err)
	}

	var data shopify.CollectionsData
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		return nil, fmt.Errorf("parse collections response: %w", err)
	}

	result := flattenCollectionPage(data.Collections)
	s.cacheSet(ctx, cacheKey, result)
	return result, nil
}

// CollectionByHandle fetches a single collection with one page of member
// products. A null collection upstream is *errors.ErrNotFound.
func (s *Service) CollectionByHandle(ctx context.Context, handle string, first int, after string) (*domain.Collection, error) {
	if handle == "" {
		return nil, &apperrors.ErrNotFound{Resource: "collection", Handle: handle}
	}
	first = normalizeFirst(first, DefaultPageSize)

	variables := map[string]interface{}{
		"handle": handle,
		"first":  first,
	}
	if after != "" {
		variables["after"] = after
	}

	resp, err := s.client.Execute(ctx, shopify.CollectionByHandleQuery, variables)
	if err != nil {
		return nil, fmt.Errorf("fetch collection %q: %w", handle, err)
	}

	var data shopify.CollectionByHandleData
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		return nil, fmt.Errorf("parse collection response: %w", err)
	}
	if data.Collection == nil {
		return nil, &apperrors.ErrNotFound{Resource: "collection", Handle: handle}
	}

	collection := flattenCollection(*data.Collection)
	return &collection, nil
}

// normalizeFirst replaces non-positive page sizes with def and caps at the
// Storefront API's per-page ceiling.
func normalizeFirst(first, def int) int {
	if first <= 0 {
		return def
	}
	if first > maxPageSize {
		return maxPageSize
	}
	return first
}

func (s *Service) cacheGet(ctx context.Context, key string, dest interface{}) bool {
	if s.cache == nil {
		return false
	}
	ok, err := s.cache.Get(ctx, key, dest)
	if err != nil {
		s.logger.Debug("cache read failed", zap.String("key", key), zap.Error(err))
		return false
	}
	return ok
}

func (s *Service) cacheSet(ctx context.Context, key string, value interface{}) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, value); err != nil {
		s.logger.Debug("cache write failed", zap.String("key", key), zap.Error(err))
	}
}

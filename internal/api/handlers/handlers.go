package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ShahJahanApurbo/decoration-store/internal/domain"
	apperrors "github.com/ShahJahanApurbo/decoration-store/pkg/errors"
)

// CatalogService is the catalog surface the handlers proxy to.
type CatalogService interface {
	Products(ctx context.Context, first int, after string) (*domain.ProductPage, error)
	ProductByHandle(ctx context.Context, handle string) (*domain.Product, error)
	SearchProducts(ctx context.Context, query string, first int, after string) (*domain.ProductPage, error)
	FeaturedProducts(ctx context.Context, first int) ([]domain.Product, error)
	Recommendations(ctx context.Context, productID string) ([]domain.Product, error)
	Collections(ctx context.Context, first int, after string) (*domain.CollectionPage, error)
	CollectionByHandle(ctx context.Context, handle string, first int, after string) (*domain.Collection, error)
}

// respondError maps the gateway's failure taxonomy onto HTTP statuses:
// 503 when the store is not configured (a setup problem, not a transient
// one), 404 for not-found lookups, 500 for transport/protocol failures.
// Upstream error detail goes into "message" for logs/debugging; "error"
// stays a stable caller-facing string.
func respondError(c *gin.Context, logger *zap.Logger, err error, callerMsg string) {
	var notConfigured *apperrors.ErrNotConfigured
	var notFound *apperrors.ErrNotFound

	switch {
	case errors.As(err, &notConfigured):
		logger.Warn("Request rejected: store not configured", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"success": false,
			"error":   "store not configured",
			"message": err.Error(),
		})
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   notFound.Resource + " not found",
		})
	default:
		logger.Error(callerMsg, zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   callerMsg,
			"message": err.Error(),
		})
	}
}

// pageSize parses the "first" query param, falling back to def for absent
// or unparseable values and clamping to [1, 100].
func pageSize(c *gin.Context, def int) int {
	first := def
	if raw := c.Query("first"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 1 {
			first = n
		}
	}
	if first > 100 {
		first = 100
	}
	return first
}

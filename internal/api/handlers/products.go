package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ShahJahanApurbo/decoration-store/internal/catalog"
)

// HandleListProducts handles GET /api/products. When the "query" param is
// present the request is a product search; otherwise a paged listing.
// An optional "category" param filters the page by the normalized
// category key.
func HandleListProducts(svc CatalogService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		first := pageSize(c, catalog.DefaultPageSize)
		after := c.Query("after")
		query := c.Query("query")
		category := c.Query("category")

		var (
			page interface{}
			err  error
		)
		if query != "" {
			result, searchErr := svc.SearchProducts(c.Request.Context(), query, first, after)
			if searchErr == nil && category != "" {
				result.Products = catalog.FilterByCategory(result.Products, category)
			}
			page, err = result, searchErr
		} else {
			result, listErr := svc.Products(c.Request.Context(), first, after)
			if listErr == nil && category != "" {
				result.Products = catalog.FilterByCategory(result.Products, category)
			}
			page, err = result, listErr
		}
		if err != nil {
			respondError(c, logger, err, "Failed to fetch products")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    page,
		})
	}
}

// HandleGetProduct handles GET /api/products/:handle
func HandleGetProduct(svc CatalogService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		handle := c.Param("handle")
		if handle == "" {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "product handle is required",
			})
			return
		}

		product, err := svc.ProductByHandle(c.Request.Context(), handle)
		if err != nil {
			respondError(c, logger, err, "Failed to fetch product")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    product,
		})
	}
}

// HandleFeaturedProducts handles GET /api/products/featured
func HandleFeaturedProducts(svc CatalogService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		first := pageSize(c, catalog.DefaultFeaturedSize)

		products, err := svc.FeaturedProducts(c.Request.Context(), first)
		if err != nil {
			respondError(c, logger, err, "Failed to fetch featured products")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    products,
		})
	}
}

// HandleProductRecommendations handles GET /api/products/:handle/recommendations.
// The product is resolved first so recommendations key off its ID.
func HandleProductRecommendations(svc CatalogService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		handle := c.Param("handle")
		if handle == "" {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "product handle is required",
			})
			return
		}

		product, err := svc.ProductByHandle(c.Request.Context(), handle)
		if err != nil {
			respondError(c, logger, err, "Failed to fetch product")
			return
		}

		recommendations, err := svc.Recommendations(c.Request.Context(), product.ID)
		if err != nil {
			respondError(c, logger, err, "Failed to fetch recommendations")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    recommendations,
		})
	}
}

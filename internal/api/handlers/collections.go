package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ShahJahanApurbo/decoration-store/internal/catalog"
)

// HandleListCollections handles GET /api/collections
func HandleListCollections(svc CatalogService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		first := pageSize(c, catalog.DefaultPageSize)
		after := c.Query("after")

		page, err := svc.Collections(c.Request.Context(), first, after)
		if err != nil {
			respondError(c, logger, err, "Failed to fetch collections")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    page,
		})
	}
}

// HandleGetCollection handles GET /api/collections/:handle
func HandleGetCollection(svc CatalogService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		handle := c.Param("handle")
		if handle == "" {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "collection handle is required",
			})
			return
		}
		first := pageSize(c, catalog.DefaultPageSize)
		after := c.Query("after")

		collection, err := svc.CollectionByHandle(c.Request.Context(), handle, first, after)
		if err != nil {
			respondError(c, logger, err, "Failed to fetch collection")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    collection,
		})
	}
}

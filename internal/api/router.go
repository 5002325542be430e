package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ShahJahanApurbo/decoration-store/internal/api/handlers"
	"github.com/ShahJahanApurbo/decoration-store/internal/api/middleware"
	"github.com/ShahJahanApurbo/decoration-store/internal/config"
)

// NewRouter creates and configures the Gin router
func NewRouter(cfg *config.Config, svc handlers.CatalogService, logger *zap.Logger) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(customRecovery(logger))
	router.Use(middleware.RequestID())
	router.Use(loggingMiddleware(logger))

	// Root: friendly response so GET / returns 200 instead of 404
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": "Decoration Store Catalog API",
			"endpoints": []string{
				"GET /health",
				"GET /api/products",
				"GET /api/products/featured",
				"GET /api/products/:handle",
				"GET /api/products/:handle/recommendations",
				"GET /api/collections",
				"GET /api/collections/:handle",
			},
		})
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API routes
	api := router.Group("/api")
	{
		api.GET("/products", handlers.HandleListProducts(svc, logger))
		api.GET("/products/featured", handlers.HandleFeaturedProducts(svc, logger))
		api.GET("/products/:handle", handlers.HandleGetProduct(svc, logger))
		api.GET("/products/:handle/recommendations", handlers.HandleProductRecommendations(svc, logger))
		api.GET("/collections", handlers.HandleListCollections(svc, logger))
		api.GET("/collections/:handle", handlers.HandleGetCollection(svc, logger))
	}

	return router
}

// customRecovery is a custom recovery middleware that logs panics
func customRecovery(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("Panic recovered",
			zap.Any("error", recovered),
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal server error",
			"details": fmt.Sprintf("%v", recovered),
		})
	})
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		status := c.Writer.Status()
		logger.Info("HTTP request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.String("request_id", middleware.GetRequestID(c)),
		)
	}
}

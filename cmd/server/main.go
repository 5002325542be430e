package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/ShahJahanApurbo/decoration-store/internal/api"
	"github.com/ShahJahanApurbo/decoration-store/internal/catalog"
	"github.com/ShahJahanApurbo/decoration-store/internal/config"
	"github.com/ShahJahanApurbo/decoration-store/internal/shopify"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	var logger *zap.Logger
	if cfg.Environment == "production" {
		logger, _ = zap.NewProduction()
	} else {
		logger, _ = zap.NewDevelopment()
	}
	defer logger.Sync()

	logger.Info("Starting catalog API server",
		zap.String("port", cfg.Port),
		zap.String("environment", cfg.Environment),
	)

	// Storefront client; missing credentials are reported per call so the
	// storefront can render a setup prompt instead of the server dying here.
	client := shopify.NewClient(cfg.Shopify, logger)
	if !client.Configured() {
		logger.Warn("Shopify Storefront credentials missing; catalog endpoints will report store-not-configured")
	}

	// Optional Redis response cache
	cache, err := catalog.NewCache(cfg.Cache, logger)
	if err != nil {
		logger.Fatal("Failed to initialize cache", zap.Error(err))
	}
	if cache != nil {
		defer cache.Close()
	}

	svc := catalog.NewService(client, cache, logger)

	// Initialize router
	router := api.NewRouter(cfg, svc, logger)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	logger.Info("Server started successfully", zap.String("address", srv.Addr))

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}

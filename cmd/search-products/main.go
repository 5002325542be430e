package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/ShahJahanApurbo/decoration-store/internal/catalog"
	"github.com/ShahJahanApurbo/decoration-store/internal/config"
	"github.com/ShahJahanApurbo/decoration-store/internal/shopify"
)

func main() {
	first := flag.Int("first", catalog.DefaultPageSize, "maximum results")
	flag.Parse()

	query := strings.Join(flag.Args(), " ")
	if strings.TrimSpace(query) == "" {
		fmt.Fprintln(os.Stderr, "usage: search-products [-first N] <query>")
		os.Exit(2)
	}

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	client := shopify.NewClient(cfg.Shopify, logger)
	svc := catalog.NewService(client, nil, logger)

	result, err := svc.SearchProducts(context.Background(), query, *first, "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Search failed: %v\n", err)
		os.Exit(1)
	}

	if len(result.Products) == 0 {
		fmt.Printf("No products match %q\n", query)
		return
	}
	for _, p := range result.Products {
		fmt.Printf("  %-40s  %s\n", p.Title, p.Handle)
	}
	fmt.Printf("%d results for %q\n", len(result.Products), query)
}

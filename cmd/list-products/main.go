package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/ShahJahanApurbo/decoration-store/internal/catalog"
	"github.com/ShahJahanApurbo/decoration-store/internal/config"
	"github.com/ShahJahanApurbo/decoration-store/internal/pricing"
	"github.com/ShahJahanApurbo/decoration-store/internal/shopify"
)

func main() {
	first := flag.Int("first", catalog.DefaultPageSize, "page size")
	pages := flag.Int("pages", 1, "number of pages to fetch (0 = all)")
	flag.Parse()

	// .env is optional; real env vars win either way
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

	fmt.Println("Fetching products from Shopify Storefront API...")

	ctx := context.Background()
	after := ""
	total := 0
	for page := 1; *pages == 0 || page <= *pages; page++ {
		result, err := svc.Products(ctx, *first, after)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to fetch products: %v\n", err)
			os.Exit(1)
		}
		for _, p := range result.Products {
			price, ferr := pricing.FormatPrice(p.PriceRange.MinVariantPrice.Amount, p.PriceRange.MinVariantPrice.CurrencyCode)
			if ferr != nil {
				price = p.PriceRange.MinVariantPrice.Amount + " " + p.PriceRange.MinVariantPrice.CurrencyCode
			}
			fmt.Printf("  %-40s  %-30s  from %s\n", p.Title, p.Handle, price)
			total++
		}
		if !result.PageInfo.HasNextPage {
			break
		}
		after = result.PageInfo.EndCursor
	}

	fmt.Printf("Done: %d products\n", total)
}

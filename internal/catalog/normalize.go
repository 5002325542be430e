package catalog

import (
	"github.com/ShahJahanApurbo/decoration-store/internal/domain"
	"github.com/ShahJahanApurbo/decoration-store/internal/shopify"
)

// The Storefront API wraps every list in edge/node pairs. Everything below
// flattens those into the plain slices the rest of the code works with.

func flattenMoney(m shopify.MoneyNode) domain.Money {
	return domain.Money{Amount: m.Amount, CurrencyCode: m.CurrencyCode}
}

func flattenImage(img shopify.ImageNode) domain.Image {
	return domain.Image{
		ID:      img.ID,
		URL:     img.URL,
		AltText: img.AltText,
		Width:   img.Width,
		Height:  img.Height,
	}
}

func flattenVariant(v shopify.VariantNode) domain.Variant {
	variant := domain.Variant{
		ID:               v.ID,
		Title:            v.Title,
		Price:            flattenMoney(v.Price),
		AvailableForSale: v.AvailableForSale,
	}
	if v.CompareAtPrice != nil {
		compareAt := flattenMoney(*v.CompareAtPrice)
		variant.CompareAtPrice = &compareAt
	}
	for _, opt := range v.SelectedOptions {
		variant.SelectedOptions = append(variant.SelectedOptions, domain.SelectedOption{
			Name:  opt.Name,
			Value: opt.Value,
		})
	}
	if v.Image != nil {
		img := flattenImage(*v.Image)
		variant.Image = &img
	}
	return variant
}

func flattenPageInfo(p shopify.PageInfoNode) domain.PageInfo {
	return domain.PageInfo{
		HasNextPage:     p.HasNextPage,
		HasPreviousPage: p.HasPreviousPage,
		StartCursor:     p.StartCursor,
		EndCursor:       p.EndCursor,
	}
}

func flattenProduct(node shopify.ProductNode) domain.Product {
	product := domain.Product{
		ID:               node.ID,
		Title:            node.Title,
		Handle:           node.Handle,
		Description:      node.Description,
		Vendor:           node.Vendor,
		ProductType:      node.ProductType,
		Tags:             node.Tags,
		AvailableForSale: node.AvailableForSale,
		CreatedAt:        node.CreatedAt,
		UpdatedAt:        node.UpdatedAt,
		PriceRange: domain.PriceRange{
			MinVariantPrice: flattenMoney(node.PriceRange.MinVariantPrice),
			MaxVariantPrice: flattenMoney(node.PriceRange.MaxVariantPrice),
		},
	}
	for _, edge := range node.Images.Edges {
		product.Images = append(product.Images, flattenImage(edge.Node))
	}
	for _, edge := range node.Variants.Edges {
		product.Variants = append(product.Variants, flattenVariant(edge.Node))
	}
	return product
}

func flattenProductPage(conn shopify.ProductConnection) *domain.ProductPage {
	page := &domain.ProductPage{
		Products: make([]domain.Product, 0, len(conn.Edges)),
		PageInfo: flattenPageInfo(conn.PageInfo),
	}
	for _, edge := range conn.Edges {
		page.Products = append(page.Products, flattenProduct(edge.Node))
	}
	return page
}

func flattenProductList(nodes []shopify.ProductNode) []domain.Product {
	products := make([]domain.Product, 0, len(nodes))
	for _, node := range nodes {
		products = append(products, flattenProduct(node))
	}
	return products
}

func flattenCollection(node shopify.CollectionNode) domain.Collection {
	collection := domain.Collection{
		ID:           node.ID,
		Title:        node.Title,
		Handle:       node.Handle,
		Description:  node.Description,
		UpdatedAt:    node.UpdatedAt,
		Products:     make([]domain.Product, 0, len(node.Products.Edges)),
		ProductsPage: flattenPageInfo(node.Products.PageInfo),
	}
	if node.Image != nil {
		img := flattenImage(*node.Image)
		collection.Image = &img
	}
	for _, edge := range node.Products.Edges {
		collection.Products = append(collection.Products, flattenProduct(edge.Node))
	}
	return collection
}

func flattenCollectionPage(conn shopify.CollectionConnection) *domain.CollectionPage {
	page := &domain.CollectionPage{
		Collections: make([]domain.Collection, 0, len(conn.Edges)),
		PageInfo:    flattenPageInfo(conn.PageInfo),
	}
	for _, edge := range conn.Edges {
		page.Collections = append(page.Collections, flattenCollection(edge.Node))
	}
	return page
}

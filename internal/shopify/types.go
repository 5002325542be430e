package shopify

// Wire-level shapes of the Storefront API responses. These mirror the
// GraphQL edge/node convention exactly; flattening into domain types
// happens in the catalog package.

type MoneyNode struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currencyCode"`
}

type ImageNode struct {
	ID      string `json:"id"`
	URL     string `json:"url"`
	AltText string `json:"altText"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
}

type SelectedOptionNode struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type VariantNode struct {
	ID               string               `json:"id"`
	Title            string               `json:"title"`
	Price            MoneyNode            `json:"price"`
	CompareAtPrice   *MoneyNode           `json:"compareAtPrice"`
	AvailableForSale bool                 `json:"availableForSale"`
	SelectedOptions  []SelectedOptionNode `json:"selectedOptions"`
	Image            *ImageNode           `json:"image"`
}

type PageInfoNode struct {
	HasNextPage     bool   `json:"hasNextPage"`
	HasPreviousPage bool   `json:"hasPreviousPage"`
	StartCursor     string `json:"startCursor"`
	EndCursor       string `json:"endCursor"`
}

type ImageConnection struct {
	Edges []struct {
		Node ImageNode `json:"node"`
	} `json:"edges"`
}

type VariantConnection struct {
	Edges []struct {
		Node VariantNode `json:"node"`
	} `json:"edges"`
}

type ProductNode struct {
	ID               string            `json:"id"`
	Title            string            `json:"title"`
	Handle           string            `json:"handle"`
	Description      string            `json:"description"`
	Vendor           string            `json:"vendor"`
	ProductType      string            `json:"productType"`
	Tags             []string          `json:"tags"`
	AvailableForSale bool              `json:"availableForSale"`
	CreatedAt        string            `json:"createdAt"`
	UpdatedAt        string            `json:"updatedAt"`
	PriceRange       PriceRangeNode    `json:"priceRange"`
	Images           ImageConnection   `json:"images"`
	Variants         VariantConnection `json:"variants"`
}

type PriceRangeNode struct {
	MinVariantPrice MoneyNode `json:"minVariantPrice"`
	MaxVariantPrice MoneyNode `json:"maxVariantPrice"`
}

type ProductConnection struct {
	Edges []struct {
		Cursor string      `json:"cursor"`
		Node   ProductNode `json:"node"`
	} `json:"edges"`
	PageInfo PageInfoNode `json:"pageInfo"`
}

type CollectionNode struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Handle      string            `json:"handle"`
	Description string            `json:"description"`
	UpdatedAt   string            `json:"updatedAt"`
	Image       *ImageNode        `json:"image"`
	Products    ProductConnection `json:"products"`
}

type CollectionConnection struct {
	Edges []struct {
		Cursor string         `json:"cursor"`
		Node   CollectionNode `json:"node"`
	} `json:"edges"`
	PageInfo PageInfoNode `json:"pageInfo"`
}

// Top-level data payloads, one per query in queries.go.

type ProductsData struct {
	Products ProductConnection `json:"products"`
}

type ProductByHandleData struct {
	Product *ProductNode `json:"product"`
}

type CollectionsData struct {
	Collections CollectionConnection `json:"collections"`
}

type CollectionByHandleData struct {
	Collection *CollectionNode `json:"collection"`
}

type ProductRecommendationsData struct {
	ProductRecommendations []ProductNode `json:"productRecommendations"`
}

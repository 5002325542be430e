package domain

// Money is a decimal amount paired with an ISO 4217 currency code. Amount
// stays a string end to end; arithmetic must go through decimal parsing,
// never float conversion.
type Money struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currencyCode"`
}

// Image is a product or collection photo. URL is never mutated; resized
// renditions are derived copies.
type Image struct {
	ID      string `json:"id"`
	URL     string `json:"url"`
	AltText string `json:"altText,omitempty"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
}

// SelectedOption is one (name, value) pair of a variant's configuration.
type SelectedOption struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Variant is a specific purchasable configuration of a product.
type Variant struct {
	ID               string           `json:"id"`
	Title            string           `json:"title"`
	Price            Money            `json:"price"`
	CompareAtPrice   *Money           `json:"compareAtPrice,omitempty"`
	AvailableForSale bool             `json:"availableForSale"`
	SelectedOptions  []SelectedOption `json:"selectedOptions,omitempty"`
	Image            *Image           `json:"image,omitempty"`
}

// PriceRange is the min/max variant price of a product.
type PriceRange struct {
	MinVariantPrice Money `json:"minVariantPrice"`
	MaxVariantPrice Money `json:"maxVariantPrice"`
}

// Product is a sellable item. Handle is the only externally
// dereferenceable key and must be URL-safe.
type Product struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Handle           string     `json:"handle"`
	Description      string     `json:"description"`
	Vendor           string     `json:"vendor"`
	ProductType      string     `json:"productType"`
	Tags             []string   `json:"tags"`
	AvailableForSale bool       `json:"availableForSale"`
	CreatedAt        string     `json:"createdAt"`
	UpdatedAt        string     `json:"updatedAt"`
	PriceRange       PriceRange `json:"priceRange"`
	Images           []Image    `json:"images"`
	Variants         []Variant  `json:"variants"`
}

// Collection is a curated grouping of products. Products holds one bounded
// page of members, not the full membership; a count derived from it is a
// lower bound until pagination is exhausted.
type Collection struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Handle       string    `json:"handle"`
	Description  string    `json:"description,omitempty"`
	UpdatedAt    string    `json:"updatedAt,omitempty"`
	Image        *Image    `json:"image,omitempty"`
	Products     []Product `json:"products"`
	ProductsPage PageInfo  `json:"productsPage"`
}

// PageInfo carries the upstream pagination cursors. Cursors are opaque:
// passed back verbatim, never constructed or parsed locally.
type PageInfo struct {
	HasNextPage     bool   `json:"hasNextPage"`
	HasPreviousPage bool   `json:"hasPreviousPage"`
	StartCursor     string `json:"startCursor,omitempty"`
	EndCursor       string `json:"endCursor,omitempty"`
}

// ProductPage is one page of a product listing.
type ProductPage struct {
	Products []Product `json:"products"`
	PageInfo PageInfo  `json:"pageInfo"`
}

// CollectionPage is one page of a collection listing.
type CollectionPage struct {
	Collections []Collection `json:"collections"`
	PageInfo    PageInfo     `json:"pageInfo"`
}

// Package feed holds per-resource fetch state for storefront views: paged
// product and collection lists, single-entity lookups, search, featured
// and recommendation sets. Each feed owns its state exclusively; there is
// no cross-feed cache or invalidation. Within one feed, at most one
// request is in flight and superseded responses are discarded before any
// state is committed.
package feed

import (
	"context"

	"github.com/ShahJahanApurbo/decoration-store/internal/domain"
)

// Phase is the lifecycle state every feed moves through.
//
//	Idle -> Loading -> (Loaded | NotFound | Failed)
//	Loaded/Failed -> Loading on refetch, loadMore, or a new search term
//
// NotFound only occurs on single-entity lookups; lists resolve to Loaded
// with an empty slice instead.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseLoaded
	PhaseNotFound
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseLoaded:
		return "loaded"
	case PhaseNotFound:
		return "not_found"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Catalog is the slice of the catalog service the feeds consume.
type Catalog interface {
	Products(ctx context.Context, first int, after string) (*domain.ProductPage, error)
	ProductByHandle(ctx context.Context, handle string) (*domain.Product, error)
	SearchProducts(ctx context.Context, query string, first int, after string) (*domain.ProductPage, error)
	FeaturedProducts(ctx context.Context, first int) ([]domain.Product, error)
	Recommendations(ctx context.Context, productID string) ([]domain.Product, error)
	Collections(ctx context.Context, first int, after string) (*domain.CollectionPage, error)
	CollectionByHandle(ctx context.Context, handle string, first int, after string) (*domain.Collection, error)
}

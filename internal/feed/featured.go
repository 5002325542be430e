package feed

import (
	"context"
	"strings"
	"sync"

	"github.com/ShahJahanApurbo/decoration-store/internal/domain"
)

// FeaturedFeed fetches the bounded featured product set. No pagination.
type FeaturedFeed struct {
	catalog Catalog
	count   int

	mu       sync.Mutex
	phase    Phase
	products []domain.Product
	err      error
	inFlight bool
	closed   bool
}

// FeaturedFeedState is a point-in-time copy of the feed.
type FeaturedFeedState struct {
	Phase    Phase
	Products []domain.Product
	Err      error
}

func NewFeaturedFeed(catalog Catalog, count int) *FeaturedFeed {
	return &FeaturedFeed{catalog: catalog, count: count, phase: PhaseIdle}
}

// Load fetches the featured set; a call while one is in flight is ignored.
func (f *FeaturedFeed) Load(ctx context.Context) error {
	f.mu.Lock()
	if f.closed || f.inFlight {
		f.mu.Unlock()
		return nil
	}
	f.inFlight = true
	f.phase = PhaseLoading
	f.mu.Unlock()

	products, err := f.catalog.FeaturedProducts(ctx, f.count)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.inFlight = false
	if f.closed {
		return nil
	}
	if err != nil {
		f.phase = PhaseFailed
		f.err = err
		return err
	}
	f.phase = PhaseLoaded
	f.err = nil
	f.products = products
	return nil
}

// State returns a copy of the current feed state.
func (f *FeaturedFeed) State() FeaturedFeedState {
	f.mu.Lock()
	defer f.mu.Unlock()
	products := make([]domain.Product, len(f.products))
	copy(products, f.products)
	return FeaturedFeedState{Phase: f.phase, Products: products, Err: f.err}
}

// Close detaches the feed.
func (f *FeaturedFeed) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
}

// RecommendationFeed fetches recommendations for a source product.
type RecommendationFeed struct {
	catalog Catalog

	mu       sync.Mutex
	phase    Phase
	products []domain.Product
	err      error
	seq      uint64
	closed   bool
}

// RecommendationFeedState is a point-in-time copy of the feed.
type RecommendationFeedState struct {
	Phase    Phase
	Products []domain.Product
	Err      error
}

func NewRecommendationFeed(catalog Catalog) *RecommendationFeed {
	return &RecommendationFeed{catalog: catalog, phase: PhaseIdle}
}

// Load fetches recommendations for productID. An empty ID resolves to an
// empty Loaded result without a network call. A newer Load supersedes an
// older one.
func (f *RecommendationFeed) Load(ctx context.Context, productID string) error {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return nil
	}
	f.seq++
	if strings.TrimSpace(productID) == "" {
		f.phase = PhaseLoaded
		f.products = []domain.Product{}
		f.err = nil
		f.mu.Unlock()
		return nil
	}
	seq := f.seq
	f.phase = PhaseLoading
	f.mu.Unlock()

	products, err := f.catalog.Recommendations(ctx, productID)

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed || f.seq != seq {
		return nil
	}
	if err != nil {
		f.phase = PhaseFailed
		f.err = err
		return err
	}
	f.phase = PhaseLoaded
	f.err = nil
	f.products = products
	return nil
}

// State returns a copy of the current feed state.
func (f *RecommendationFeed) State() RecommendationFeedState {
	f.mu.Lock()
	defer f.mu.Unlock()
	products := make([]domain.Product, len(f.products))
	copy(products, f.products)
	return RecommendationFeedState{Phase: f.phase, Products: products, Err: f.err}
}

// Close detaches the feed.
func (f *RecommendationFeed) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
}

package feed

import (
	"context"
	"strings"
	"sync"

	"github.com/ShahJahanApurbo/decoration-store/internal/domain"
)

// SearchFeed holds product search results keyed to the current query
// string. Results for a superseded query are discarded on arrival: the
// sequence captured at issue time is compared against the feed's current
// sequence before any state is committed, so typing "a" then "ab" can
// never end with "a"'s results displayed.
type SearchFeed struct {
	catalog  Catalog
	pageSize int

	mu       sync.Mutex
	phase    Phase
	query    string
	products []domain.Product
	err      error
	seq      uint64
	closed   bool
}

// SearchFeedState is a point-in-time copy of the feed.
type SearchFeedState struct {
	Phase    Phase
	Query    string
	Products []domain.Product
	Err      error
}

func NewSearchFeed(catalog Catalog, pageSize int) *SearchFeed {
	return &SearchFeed{catalog: catalog, pageSize: pageSize, phase: PhaseIdle}
}

// Search runs a product search for query. Empty or whitespace-only input
// resolves immediately to an empty Loaded result without a network call.
func (f *SearchFeed) Search(ctx context.Context, query string) error {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return nil
	}
	f.seq++
	if strings.TrimSpace(query) == "" {
		f.phase = PhaseLoaded
		f.query = ""
		f.products = []domain.Product{}
		f.err = nil
		f.mu.Unlock()
		return nil
	}
	seq := f.seq
	f.query = query
	f.phase = PhaseLoading
	f.mu.Unlock()

	page, err := f.catalog.SearchProducts(ctx, query, f.pageSize, "")

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed || f.seq != seq {
		// Superseded by a newer search; drop the response.
		return nil
	}
	if err != nil {
		f.phase = PhaseFailed
		f.err = err
		return err
	}
	f.phase = PhaseLoaded
	f.err = nil
	f.products = page.Products
	return nil
}

// Clear resets the feed to the empty, no-query state and invalidates any
// in-flight search.
func (f *SearchFeed) Clear() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	f.phase = PhaseIdle
	f.query = ""
	f.products = nil
	f.err = nil
}

// State returns a copy of the current feed state.
func (f *SearchFeed) State() SearchFeedState {
	f.mu.Lock()
	defer f.mu.Unlock()
	products := make([]domain.Product, len(f.products))
	copy(products, f.products)
	return SearchFeedState{
		Phase:    f.phase,
		Query:    f.query,
		Products: products,
		Err:      f.err,
	}
}

// Close detaches the feed.
func (f *SearchFeed) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
}

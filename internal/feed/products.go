package feed

import (
	"context"
	"sync"

	"github.com/ShahJahanApurbo/decoration-store/internal/domain"
)

// ProductFeed is a paged product list. Load replaces the list; LoadMore
// appends the next page. Items are only ever appended, never reordered or
// deduplicated.
type ProductFeed struct {
	catalog  Catalog
	pageSize int

	mu          sync.Mutex
	phase       Phase
	products    []domain.Product
	err         error
	endCursor   string
	hasNextPage bool
	inFlight    bool
	closed      bool
}

// ProductFeedState is a point-in-time copy of the feed.
type ProductFeedState struct {
	Phase       Phase
	Products    []domain.Product
	Err         error
	HasNextPage bool
}

func NewProductFeed(catalog Catalog, pageSize int) *ProductFeed {
	return &ProductFeed{
		catalog:  catalog,
		pageSize: pageSize,
		phase:    PhaseIdle,
	}
}

// Load fetches the first page, replacing any prior list. A call while a
// request is already in flight is ignored.
func (f *ProductFeed) Load(ctx context.Context) error {
	f.mu.Lock()
	if f.closed || f.inFlight {
		f.mu.Unlock()
		return nil
	}
	f.inFlight = true
	f.phase = PhaseLoading
	f.mu.Unlock()

	page, err := f.catalog.Products(ctx, f.pageSize, "")

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
	f.products = page.Products
	f.endCursor = page.PageInfo.EndCursor
	f.hasNextPage = page.PageInfo.HasNextPage
	return nil
}

// LoadMore appends the next page. A no-op when there is no next page, no
// cursor is held, or another request is still in flight; concurrent calls
// are dropped, not queued.
func (f *ProductFeed) LoadMore(ctx context.Context) error {
	f.mu.Lock()
	if f.closed || f.inFlight || !f.hasNextPage || f.endCursor == "" {
		f.mu.Unlock()
		return nil
	}
	after := f.endCursor
	f.inFlight = true
	f.phase = PhaseLoading
	f.mu.Unlock()

	page, err := f.catalog.Products(ctx, f.pageSize, after)

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
	f.products = append(f.products, page.Products...)
	f.endCursor = page.PageInfo.EndCursor
	f.hasNextPage = page.PageInfo.HasNextPage
	return nil
}

// State returns a copy of the current feed state.
func (f *ProductFeed) State() ProductFeedState {
	f.mu.Lock()
	defer f.mu.Unlock()
	products := make([]domain.Product, len(f.products))
	copy(products, f.products)
	return ProductFeedState{
		Phase:       f.phase,
		Products:    products,
		Err:         f.err,
		HasNextPage: f.hasNextPage,
	}
}

// Close detaches the feed: any still-pending completion becomes a no-op.
func (f *ProductFeed) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
}

package feed

import (
	"context"
	"sync"

	"github.com/ShahJahanApurbo/decoration-store/internal/domain"
)

// CollectionFeed is a paged collection list with the same append-only
// pagination contract as ProductFeed.
type CollectionFeed struct {
	catalog  Catalog
	pageSize int

	mu          sync.Mutex
	phase       Phase
	collections []domain.Collection
	err         error
	endCursor   string
	hasNextPage bool
	inFlight    bool
	closed      bool
}

// CollectionFeedState is a point-in-time copy of the feed.
type CollectionFeedState struct {
	Phase       Phase
	Collections []domain.Collection
	Err         error
	HasNextPage bool
}

func NewCollectionFeed(catalog Catalog, pageSize int) *CollectionFeed {
	return &CollectionFeed{
		catalog:  catalog,
		pageSize: pageSize,
		phase:    PhaseIdle,
	}
}

// Load fetches the first page, replacing any prior list.
func (f *CollectionFeed) Load(ctx context.Context) error {
	f.mu.Lock()
	if f.closed || f.inFlight {
		f.mu.Unlock()
		return nil
	}
	f.inFlight = true
	f.phase = PhaseLoading
	f.mu.Unlock()

	page, err := f.catalog.Collections(ctx, f.pageSize, "")

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
	f.collections = page.Collections
	f.endCursor = page.PageInfo.EndCursor
	f.hasNextPage = page.PageInfo.HasNextPage
	return nil
}

// LoadMore appends the next page; no-op without a next page or while a
// request is in flight.
func (f *CollectionFeed) LoadMore(ctx context.Context) error {
	f.mu.Lock()
	if f.closed || f.inFlight || !f.hasNextPage || f.endCursor == "" {
		f.mu.Unlock()
		return nil
	}
	after := f.endCursor
	f.inFlight = true
	f.phase = PhaseLoading
	f.mu.Unlock()

	page, err := f.catalog.Collections(ctx, f.pageSize, after)

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
	f.collections = append(f.collections, page.Collections...)
	f.endCursor = page.PageInfo.EndCursor
	f.hasNextPage = page.PageInfo.HasNextPage
	return nil
}

// State returns a copy of the current feed state.
func (f *CollectionFeed) State() CollectionFeedState {
	f.mu.Lock()
	defer f.mu.Unlock()
	collections := make([]domain.Collection, len(f.collections))
	copy(collections, f.collections)
	return CollectionFeedState{
		Phase:       f.phase,
		Collections: collections,
		Err:         f.err,
		HasNextPage: f.hasNextPage,
	}
}

// Close detaches the feed.
func (f *CollectionFeed) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
}

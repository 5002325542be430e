package feed

import (
	"context"
	"errors"
	"sync"

	"github.com/ShahJahanApurbo/decoration-store/internal/domain"
	apperrors "github.com/ShahJahanApurbo/decoration-store/pkg/errors"
)

// ProductLookup fetches one product by handle. A handle that resolves to
// null upstream lands in PhaseNotFound with a nil error, distinct from a
// gateway failure, so the caller renders a 404 page and not an error
// banner.
type ProductLookup struct {
	catalog Catalog

	mu      sync.Mutex
	phase   Phase
	product *domain.Product
	err     error
	seq     uint64
	closed  bool
}

// ProductLookupState is a point-in-time copy of the lookup.
type ProductLookupState struct {
	Phase   Phase
	Product *domain.Product
	Err     error
}

func NewProductLookup(catalog Catalog) *ProductLookup {
	return &ProductLookup{catalog: catalog, phase: PhaseIdle}
}

// Load fetches the product for handle. A newer Load supersedes an older
// one: the older response is discarded on arrival, before any state
// changes.
func (l *ProductLookup) Load(ctx context.Context, handle string) error {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return nil
	}
	l.seq++
	seq := l.seq
	l.phase = PhaseLoading
	l.mu.Unlock()

	product, err := l.catalog.ProductByHandle(ctx, handle)

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed || l.seq != seq {
		return nil
	}
	var notFound *apperrors.ErrNotFound
	switch {
	case err == nil:
		l.phase = PhaseLoaded
		l.product = product
		l.err = nil
	case errors.As(err, &notFound):
		l.phase = PhaseNotFound
		l.product = nil
		l.err = nil
	default:
		l.phase = PhaseFailed
		l.product = nil
		l.err = err
		return err
	}
	return nil
}

// State returns a copy of the current lookup state.
func (l *ProductLookup) State() ProductLookupState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return ProductLookupState{Phase: l.phase, Product: l.product, Err: l.err}
}

// Close detaches the lookup.
func (l *ProductLookup) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.closed = true
}

// CollectionLookup fetches one collection by handle with the same
// not-found semantics as ProductLookup.
type CollectionLookup struct {
	catalog  Catalog
	pageSize int

	mu         sync.Mutex
	phase      Phase
	collection *domain.Collection
	err        error
	seq        uint64
	closed     bool
}

// CollectionLookupState is a point-in-time copy of the lookup.
type CollectionLookupState struct {
	Phase      Phase
	Collection *domain.Collection
	Err        error
}

func NewCollectionLookup(catalog Catalog, pageSize int) *CollectionLookup {
	return &CollectionLookup{catalog: catalog, pageSize: pageSize, phase: PhaseIdle}
}

// Load fetches the collection for handle with its first page of products.
func (l *CollectionLookup) Load(ctx context.Context, handle string) error {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return nil
	}
	l.seq++
	seq := l.seq
	l.phase = PhaseLoading
	l.mu.Unlock()

	collection, err := l.catalog.CollectionByHandle(ctx, handle, l.pageSize, "")

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed || l.seq != seq {
		return nil
	}
	var notFound *apperrors.ErrNotFound
	switch {
	case err == nil:
		l.phase = PhaseLoaded
		l.collection = collection
		l.err = nil
	case errors.As(err, &notFound):
		l.phase = PhaseNotFound
		l.collection = nil
		l.err = nil
	default:
		l.phase = PhaseFailed
		l.collection = nil
		l.err = err
		return err
	}
	return nil
}

// State returns a copy of the current lookup state.
func (l *CollectionLookup) State() CollectionLookupState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return CollectionLookupState{Phase: l.phase, Collection: l.collection, Err: l.err}
}

// Close detaches the lookup.
func (l *CollectionLookup) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.closed = true
}

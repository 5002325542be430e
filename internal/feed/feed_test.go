package feed_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ShahJahanApurbo/decoration-store/internal/domain"
	"github.com/ShahJahanApurbo/decoration-store/internal/feed"
	apperrors "github.com/ShahJahanApurbo/decoration-store/pkg/errors"
)

// MockCatalog is a mock implementation of the feed.Catalog interface
type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) Products(ctx context.Context, first int, after string) (*domain.ProductPage, error) {
	args := m.Called(ctx, first, after)
	if page := args.Get(0); page != nil {
		return page.(*domain.ProductPage), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCatalog) ProductByHandle(ctx context.Context, handle string) (*domain.Product, error) {
	args := m.Called(ctx, handle)
	if p := args.Get(0); p != nil {
		return p.(*domain.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCatalog) SearchProducts(ctx context.Context, query string, first int, after string) (*domain.ProductPage, error) {
	args := m.Called(ctx, query, first, after)
	if page := args.Get(0); page != nil {
		return page.(*domain.ProductPage), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCatalog) FeaturedProducts(ctx context.Context, first int) ([]domain.Product, error) {
	args := m.Called(ctx, first)
	if p := args.Get(0); p != nil {
		return p.([]domain.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCatalog) Recommendations(ctx context.Context, productID string) ([]domain.Product, error) {
	args := m.Called(ctx, productID)
	if p := args.Get(0); p != nil {
		return p.([]domain.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCatalog) Collections(ctx context.Context, first int, after string) (*domain.CollectionPage, error) {
	args := m.Called(ctx, first, after)
	if page := args.Get(0); page != nil {
		return page.(*domain.CollectionPage), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCatalog) CollectionByHandle(ctx context.Context, handle string, first int, after string) (*domain.Collection, error) {
	args := m.Called(ctx, handle, first, after)
	if c := args.Get(0); c != nil {
		return c.(*domain.Collection), args.Error(1)
	}
	return nil, args.Error(1)
}

func productPage(titles []string, endCursor string, hasNext bool) *domain.ProductPage {
	page := &domain.ProductPage{
		PageInfo: domain.PageInfo{HasNextPage: hasNext, EndCursor: endCursor},
	}
	for _, title := range titles {
		page.Products = append(page.Products, domain.Product{ID: title, Title: title})
	}
	return page
}

func titles(products []domain.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.Title)
	}
	return out
}

func TestProductFeed_LoadThenLoadMoreAppends(t *testing.T) {
	mockCatalog := new(MockCatalog)
	f := feed.NewProductFeed(mockCatalog, 2)

	mockCatalog.On("Products", mock.Anything, 2, "").
		Return(productPage([]string{"A", "B"}, "c1", true), nil).Once()
	mockCatalog.On("Products", mock.Anything, 2, "c1").
		Return(productPage([]string{"C", "D"}, "c2", false), nil).Once()

	require.NoError(t, f.Load(context.Background()))
	require.NoError(t, f.LoadMore(context.Background()))

	state := f.State()
	assert.Equal(t, feed.PhaseLoaded, state.Phase)
	// Prior order preserved, new items appended at the end.
	assert.Equal(t, []string{"A", "B", "C", "D"}, titles(state.Products))
	assert.False(t, state.HasNextPage)

	// Exhausted list: further LoadMore calls are no-ops.
	require.NoError(t, f.LoadMore(context.Background()))
	require.NoError(t, f.LoadMore(context.Background()))
	assert.Equal(t, []string{"A", "B", "C", "D"}, titles(f.State().Products))
	mockCatalog.AssertNumberOfCalls(t, "Products", 2)
}

func TestProductFeed_LoadMoreBeforeLoadIsNoOp(t *testing.T) {
	mockCatalog := new(MockCatalog)
	f := feed.NewProductFeed(mockCatalog, 2)

	require.NoError(t, f.LoadMore(context.Background()))

	assert.Equal(t, feed.PhaseIdle, f.State().Phase)
	mockCatalog.AssertNotCalled(t, "Products", mock.Anything, mock.Anything, mock.Anything)
}

func TestProductFeed_SingleInFlightLoadMore(t *testing.T) {
	mockCatalog := new(MockCatalog)
	f := feed.NewProductFeed(mockCatalog, 2)

	mockCatalog.On("Products", mock.Anything, 2, "").
		Return(productPage([]string{"A", "B"}, "c1", true), nil).Once()
	require.NoError(t, f.Load(context.Background()))

	entered := make(chan struct{})
	release := make(chan struct{})
	mockCatalog.On("Products", mock.Anything, 2, "c1").
		Run(func(args mock.Arguments) {
			close(entered)
			<-release
		}).
		Return(productPage([]string{"C"}, "c2", false), nil).Once()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		f.LoadMore(context.Background())
	}()
	<-entered

	// Second call while the first is pending: dropped, not queued.
	require.NoError(t, f.LoadMore(context.Background()))

	close(release)
	wg.Wait()

	assert.Equal(t, []string{"A", "B", "C"}, titles(f.State().Products))
	mockCatalog.AssertNumberOfCalls(t, "Products", 2)
}

func TestProductFeed_LoadFailureKeepsItems(t *testing.T) {
	mockCatalog := new(MockCatalog)
	f := feed.NewProductFeed(mockCatalog, 2)

	mockCatalog.On("Products", mock.Anything, 2, "").
		Return(productPage([]string{"A"}, "c1", true), nil).Once()
	require.NoError(t, f.Load(context.Background()))

	mockCatalog.On("Products", mock.Anything, 2, "c1").
		Return(nil, &apperrors.ErrUpstream{StatusCode: 500}).Once()
	err := f.LoadMore(context.Background())
	require.Error(t, err)

	state := f.State()
	assert.Equal(t, feed.PhaseFailed, state.Phase)
	assert.Equal(t, []string{"A"}, titles(state.Products))
	assert.Error(t, state.Err)
}

func TestProductFeed_CloseMakesCompletionNoOp(t *testing.T) {
	mockCatalog := new(MockCatalog)
	f := feed.NewProductFeed(mockCatalog, 2)

	entered := make(chan struct{})
	release := make(chan struct{})
	mockCatalog.On("Products", mock.Anything, 2, "").
		Run(func(args mock.Arguments) {
			close(entered)
			<-release
		}).
		Return(productPage([]string{"A"}, "c1", true), nil).Once()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		f.Load(context.Background())
	}()
	<-entered
	f.Close()
	close(release)
	wg.Wait()

	// The late completion must not commit state to a closed feed.
	assert.Empty(t, f.State().Products)
}

func TestSearchFeed_BlankQueryNeverHitsNetwork(t *testing.T) {
	mockCatalog := new(MockCatalog)
	f := feed.NewSearchFeed(mockCatalog, 20)

	for i := 0; i < 3; i++ {
		require.NoError(t, f.Search(context.Background(), ""))
		require.NoError(t, f.Search(context.Background(), "   \t"))
	}

	state := f.State()
	assert.Equal(t, feed.PhaseLoaded, state.Phase)
	assert.Empty(t, state.Products)
	assert.NoError(t, state.Err)
	mockCatalog.AssertNotCalled(t, "SearchProducts", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSearchFeed_StaleResponseDiscarded(t *testing.T) {
	mockCatalog := new(MockCatalog)
	f := feed.NewSearchFeed(mockCatalog, 20)

	enteredA := make(chan struct{})
	releaseA := make(chan struct{})
	mockCatalog.On("SearchProducts", mock.Anything, "a", 20, "").
		Run(func(args mock.Arguments) {
			close(enteredA)
			<-releaseA
		}).
		Return(productPage([]string{"a-result"}, "", false), nil).Once()
	mockCatalog.On("SearchProducts", mock.Anything, "ab", 20, "").
		Return(productPage([]string{"ab-result"}, "", false), nil).Once()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		f.Search(context.Background(), "a")
	}()
	<-enteredA

	// Newer query commits while "a" is still pending.
	require.NoError(t, f.Search(context.Background(), "ab"))
	assert.Equal(t, []string{"ab-result"}, titles(f.State().Products))

	// The late "a" response arrives and must be dropped.
	close(releaseA)
	wg.Wait()

	state := f.State()
	assert.Equal(t, feed.PhaseLoaded, state.Phase)
	assert.Equal(t, "ab", state.Query)
	assert.Equal(t, []string{"ab-result"}, titles(state.Products))
}

func TestSearchFeed_Clear(t *testing.T) {
	mockCatalog := new(MockCatalog)
	f := feed.NewSearchFeed(mockCatalog, 20)

	mockCatalog.On("SearchProducts", mock.Anything, "vase", 20, "").
		Return(productPage([]string{"Ceramic Vase"}, "", false), nil).Once()
	require.NoError(t, f.Search(context.Background(), "vase"))
	require.NotEmpty(t, f.State().Products)

	f.Clear()

	state := f.State()
	assert.Equal(t, feed.PhaseIdle, state.Phase)
	assert.Empty(t, state.Products)
	assert.Empty(t, state.Query)
}

func TestProductLookup_NotFoundIsNotAnError(t *testing.T) {
	mockCatalog := new(MockCatalog)
	l := feed.NewProductLookup(mockCatalog)

	mockCatalog.On("ProductByHandle", mock.Anything, "missing-item").
		Return(nil, &apperrors.ErrNotFound{Resource: "product", Handle: "missing-item"}).Once()

	require.NoError(t, l.Load(context.Background(), "missing-item"))

	state := l.State()
	assert.Equal(t, feed.PhaseNotFound, state.Phase)
	assert.Nil(t, state.Product)
	assert.NoError(t, state.Err)
}

func TestProductLookup_TransportFailureIsAnError(t *testing.T) {
	mockCatalog := new(MockCatalog)
	l := feed.NewProductLookup(mockCatalog)

	mockCatalog.On("ProductByHandle", mock.Anything, "ceramic-vase").
		Return(nil, &apperrors.ErrUpstream{StatusCode: 502}).Once()

	err := l.Load(context.Background(), "ceramic-vase")
	require.Error(t, err)

	state := l.State()
	assert.Equal(t, feed.PhaseFailed, state.Phase)
	assert.Nil(t, state.Product)
	assert.Error(t, state.Err)
}

func TestProductLookup_SupersededLoadDiscarded(t *testing.T) {
	mockCatalog := new(MockCatalog)
	l := feed.NewProductLookup(mockCatalog)

	entered := make(chan struct{})
	release := make(chan struct{})
	mockCatalog.On("ProductByHandle", mock.Anything, "old-handle").
		Run(func(args mock.Arguments) {
			close(entered)
			<-release
		}).
		Return(&domain.Product{Handle: "old-handle"}, nil).Once()
	mockCatalog.On("ProductByHandle", mock.Anything, "new-handle").
		Return(&domain.Product{Handle: "new-handle"}, nil).Once()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		l.Load(context.Background(), "old-handle")
	}()
	<-entered

	require.NoError(t, l.Load(context.Background(), "new-handle"))
	close(release)
	wg.Wait()

	state := l.State()
	require.NotNil(t, state.Product)
	assert.Equal(t, "new-handle", state.Product.Handle)
}

func TestCollectionFeed_PaginatesLikeProducts(t *testing.T) {
	mockCatalog := new(MockCatalog)
	f := feed.NewCollectionFeed(mockCatalog, 2)

	page1 := &domain.CollectionPage{
		Collections: []domain.Collection{{Handle: "living-room"}, {Handle: "bedroom"}},
		PageInfo:    domain.PageInfo{HasNextPage: true, EndCursor: "c1"},
	}
	page2 := &domain.CollectionPage{
		Collections: []domain.Collection{{Handle: "outdoor"}},
		PageInfo:    domain.PageInfo{HasNextPage: false},
	}
	mockCatalog.On("Collections", mock.Anything, 2, "").Return(page1, nil).Once()
	mockCatalog.On("Collections", mock.Anything, 2, "c1").Return(page2, nil).Once()

	require.NoError(t, f.Load(context.Background()))
	require.NoError(t, f.LoadMore(context.Background()))

	state := f.State()
	require.Len(t, state.Collections, 3)
	assert.Equal(t, "living-room", state.Collections[0].Handle)
	assert.Equal(t, "outdoor", state.Collections[2].Handle)
	assert.False(t, state.HasNextPage)
}

func TestCollectionLookup_NotFound(t *testing.T) {
	mockCatalog := new(MockCatalog)
	l := feed.NewCollectionLookup(mockCatalog, 20)

	mockCatalog.On("CollectionByHandle", mock.Anything, "missing", 20, "").
		Return(nil, &apperrors.ErrNotFound{Resource: "collection", Handle: "missing"}).Once()

	require.NoError(t, l.Load(context.Background(), "missing"))

	state := l.State()
	assert.Equal(t, feed.PhaseNotFound, state.Phase)
	assert.Nil(t, state.Collection)
	assert.NoError(t, state.Err)
}

func TestFeaturedFeed_Load(t *testing.T) {
	mockCatalog := new(MockCatalog)
	f := feed.NewFeaturedFeed(mockCatalog, 8)

	mockCatalog.On("FeaturedProducts", mock.Anything, 8).
		Return([]domain.Product{{Title: "A"}, {Title: "B"}}, nil).Once()

	require.NoError(t, f.Load(context.Background()))

	state := f.State()
	assert.Equal(t, feed.PhaseLoaded, state.Phase)
	assert.Equal(t, []string{"A", "B"}, titles(state.Products))
}

func TestRecommendationFeed_EmptyIDIsNoOp(t *testing.T) {
	mockCatalog := new(MockCatalog)
	f := feed.NewRecommendationFeed(mockCatalog)

	require.NoError(t, f.Load(context.Background(), ""))

	state := f.State()
	assert.Equal(t, feed.PhaseLoaded, state.Phase)
	assert.Empty(t, state.Products)
	mockCatalog.AssertNotCalled(t, "Recommendations", mock.Anything, mock.Anything)
}

func TestRecommendationFeed_Load(t *testing.T) {
	mockCatalog := new(MockCatalog)
	f := feed.NewRecommendationFeed(mockCatalog)

	mockCatalog.On("Recommendations", mock.Anything, "gid://shopify/Product/1").
		Return([]domain.Product{{Title: "Wall Clock"}}, nil).Once()

	require.NoError(t, f.Load(context.Background(), "gid://shopify/Product/1"))

	assert.Equal(t, []string{"Wall Clock"}, titles(f.State().Products))
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "idle", feed.PhaseIdle.String())
	assert.Equal(t, "loading", feed.PhaseLoading.String())
	assert.Equal(t, "loaded", feed.PhaseLoaded.String())
	assert.Equal(t, "not_found", feed.PhaseNotFound.String())
	assert.Equal(t, "failed", feed.PhaseFailed.String())
}

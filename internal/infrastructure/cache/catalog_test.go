package cache

import (
	"context"
	"testing"
	"time"

	"github.com/comparehub/shopper/internal/domain"
)

// countingCatalog counts upstream calls per read path.
type countingCatalog struct {
	detailCalls  int
	summaryCalls int
	detailErr    error
}

func (c *countingCatalog) ListProducts(ctx context.Context, q domain.ListQuery) ([]domain.Product, error) {
	return []domain.Product{}, nil
}

func (c *countingCatalog) GetProduct(ctx context.Context, id int, q domain.ListQuery) (*domain.ProductDetail, error) {
	c.detailCalls++
	if c.detailErr != nil {
		return nil, c.detailErr
	}
	return &domain.ProductDetail{
		Product: domain.Product{ID: id, Name: "Cached Thing", Category: "laptops"},
	}, nil
}

func (c *countingCatalog) Compare(ctx context.Context, ids []int, q domain.ListQuery) (*domain.ComparePayload, error) {
	return &domain.ComparePayload{Products: []domain.CompareEntry{}}, nil
}

func (c *countingCatalog) AnalyticsSummary(ctx context.Context) (domain.AnalyticsReport, error) {
	c.summaryCalls++
	return domain.AnalyticsReport(`{"totalProducts":1}`), nil
}

func (c *countingCatalog) TopDeals(ctx context.Context) (domain.AnalyticsReport, error) {
	return domain.AnalyticsReport(`[]`), nil
}

func (c *countingCatalog) TrackClick(ctx context.Context, click domain.ClickEvent) error {
	return nil
}

func query(condition string, stores ...string) domain.ListQuery {
	return domain.ListQuery{Condition: condition, Stores: stores}
}

func TestCachingCatalog_DetailHit(t *testing.T) {
	upstream := &countingCatalog{}
	catalog := NewCachingCatalog(upstream, NewMemoryCache(), time.Minute)
	ctx := context.Background()
	q := query("New", "Amazon")

	first, err := catalog.GetProduct(ctx, 7, q)
	if err != nil {
		t.Fatalf("GetProduct() error = %v", err)
	}
	second, err := catalog.GetProduct(ctx, 7, q)
	if err != nil {
		t.Fatalf("second GetProduct() error = %v", err)
	}

	if upstream.detailCalls != 1 {
		t.Errorf("upstream detail calls = %d, want 1", upstream.detailCalls)
	}
	if second.ID != 7 {
		t.Errorf("cached ID = %d, want 7", second.ID)
	}
	if first == second {
		t.Error("cache should hand out copies, not the same pointer")
	}

	// Mutating a served copy must not poison later reads.
	second.Category = "Mutated"
	third, _ := catalog.GetProduct(ctx, 7, q)
	if third.Category != "laptops" {
		t.Errorf("Category = %q, want laptops untouched by caller mutation", third.Category)
	}
}

func TestCachingCatalog_DetailKeyIncludesFilters(t *testing.T) {
	upstream := &countingCatalog{}
	catalog := NewCachingCatalog(upstream, NewMemoryCache(), time.Minute)
	ctx := context.Background()

	catalog.GetProduct(ctx, 7, query("New", "Amazon"))
	catalog.GetProduct(ctx, 7, query("Used", "Amazon"))
	catalog.GetProduct(ctx, 7, query("New", "Walmart"))

	if upstream.detailCalls != 3 {
		t.Errorf("upstream detail calls = %d, want 3 (one per filter set)", upstream.detailCalls)
	}
}

func TestCachingCatalog_DetailErrorNotCached(t *testing.T) {
	upstream := &countingCatalog{detailErr: domain.ErrCatalogAPIFailure}
	catalog := NewCachingCatalog(upstream, NewMemoryCache(), time.Minute)
	ctx := context.Background()
	q := query("New", "Amazon")

	if _, err := catalog.GetProduct(ctx, 7, q); err == nil {
		t.Fatal("GetProduct() error = nil, want upstream failure")
	}

	upstream.detailErr = nil
	if _, err := catalog.GetProduct(ctx, 7, q); err != nil {
		t.Fatalf("GetProduct() after recovery error = %v", err)
	}
	if upstream.detailCalls != 2 {
		t.Errorf("upstream detail calls = %d, want 2 (failure not cached)", upstream.detailCalls)
	}
}

func TestCachingCatalog_AnalyticsHit(t *testing.T) {
	upstream := &countingCatalog{}
	catalog := NewCachingCatalog(upstream, NewMemoryCache(), time.Minute)
	ctx := context.Background()

	catalog.AnalyticsSummary(ctx)
	report, err := catalog.AnalyticsSummary(ctx)
	if err != nil {
		t.Fatalf("AnalyticsSummary() error = %v", err)
	}

	if upstream.summaryCalls != 1 {
		t.Errorf("upstream summary calls = %d, want 1", upstream.summaryCalls)
	}
	if string(report) != `{"totalProducts":1}` {
		t.Errorf("report = %s", report)
	}
}

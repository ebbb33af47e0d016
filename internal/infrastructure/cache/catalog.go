package cache

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/comparehub/shopper/internal/domain"
)

// CachingCatalog wraps a catalog client and caches the reads that tolerate
// staleness: product details and the analytics documents. List and compare
// reads always go upstream so a fresh selection never merges stale pricing,
// and click tracking is passed straight through.
type CachingCatalog struct {
	upstream domain.CatalogClient
	cache    domain.CacheRepository
	ttl      time.Duration
}

// NewCachingCatalog wraps upstream with a read cache. A zero ttl gets a
// 5 minute default.
func NewCachingCatalog(upstream domain.CatalogClient, cache domain.CacheRepository, ttl time.Duration) *CachingCatalog {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &CachingCatalog{upstream: upstream, cache: cache, ttl: ttl}
}

func (c *CachingCatalog) ListProducts(ctx context.Context, q domain.ListQuery) ([]domain.Product, error) {
	return c.upstream.ListProducts(ctx, q)
}

func (c *CachingCatalog) Compare(ctx context.Context, ids []int, q domain.ListQuery) (*domain.ComparePayload, error) {
	return c.upstream.Compare(ctx, ids, q)
}

func (c *CachingCatalog) TrackClick(ctx context.Context, click domain.ClickEvent) error {
	return c.upstream.TrackClick(ctx, click)
}

// GetProduct serves detail reads from cache when possible. Cached values are
// copied on the way out so handler-side normalization never leaks back in.
func (c *CachingCatalog) GetProduct(ctx context.Context, id int, q domain.ListQuery) (*domain.ProductDetail, error) {
	key := detailKey(id, q)
	if v, err := c.cache.Get(ctx, key); err == nil {
		if detail, ok := v.(domain.ProductDetail); ok {
			out := detail
			return &out, nil
		}
	}

	detail, err := c.upstream.GetProduct(ctx, id, q)
	if err != nil {
		return nil, err
	}
	_ = c.cache.Set(ctx, key, *detail, c.ttl)
	return detail, nil
}

func (c *CachingCatalog) AnalyticsSummary(ctx context.Context) (domain.AnalyticsReport, error) {
	return c.cachedReport(ctx, "analytics:summary", c.upstream.AnalyticsSummary)
}

func (c *CachingCatalog) TopDeals(ctx context.Context) (domain.AnalyticsReport, error) {
	return c.cachedReport(ctx, "analytics:top-deals", c.upstream.TopDeals)
}

func (c *CachingCatalog) cachedReport(ctx context.Context, key string, fetch func(context.Context) (domain.AnalyticsReport, error)) (domain.AnalyticsReport, error) {
	if v, err := c.cache.Get(ctx, key); err == nil {
		if report, ok := v.(domain.AnalyticsReport); ok {
			return report, nil
		}
	}

	report, err := fetch(ctx)
	if err != nil {
		return nil, err
	}
	_ = c.cache.Set(ctx, key, report, c.ttl)
	return report, nil
}

// detailKey includes the applied filters: the same product can price
// differently per condition and store set.
func detailKey(id int, q domain.ListQuery) string {
	return fmt.Sprintf("detail:%d:%s:%s", id, q.Condition, strings.Join(q.Stores, ","))
}

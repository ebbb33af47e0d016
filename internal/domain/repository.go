package domain

import (
	"context"
	"time"
)

// CatalogClient defines the read paths into the upstream catalog API.
type CatalogClient interface {
	ListProducts(ctx context.Context, q ListQuery) ([]Product, error)
	GetProduct(ctx context.Context, id int, q ListQuery) (*ProductDetail, error)
	Compare(ctx context.Context, ids []int, q ListQuery) (*ComparePayload, error)
	AnalyticsSummary(ctx context.Context) (AnalyticsReport, error)
	TopDeals(ctx context.Context) (AnalyticsReport, error)
	TrackClick(ctx context.Context, click ClickEvent) error
}

// CacheRepository is a TTL key/value cache for upstream read results.
// Get returns ErrCacheMiss for absent or expired keys.
type CacheRepository interface {
	Get(ctx context.Context, key string) (any, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// StateRepository is the persisted client-scoped key/value store backing
// the compare basket, wishlist, and market preferences. Load decodes the
// value for key into out and returns ErrStateMiss when the key is absent or
// the stored value cannot be decoded; callers fall back to their type's
// empty default. Save replaces the stored value wholesale.
type StateRepository interface {
	Load(key string, out any) error
	Save(key string, value any) error
	Delete(key string) error
}

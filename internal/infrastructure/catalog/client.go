package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/comparehub/shopper/internal/domain"
	"github.com/comparehub/shopper/internal/logger"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const maxRetries = 3

// Config holds the catalog client settings.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	RatePerSec float64
	Burst      int
}

// Client handles communication with the upstream catalog API. List-level
// reads are retried on transient failures; per-item detail reads are
// single-shot because the aggregator tolerates their loss.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	rateLimiter *rate.Limiter
	debug       bool
}

// NewClient creates a catalog API client.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	rps := cfg.RatePerSec
	if rps <= 0 {
		rps = 10
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 20
	}

	return &Client{
		httpClient:  &http.Client{Timeout: timeout},
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		rateLimiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// SetDebug toggles request-level debug logging.
func (c *Client) SetDebug(enabled bool) {
	c.debug = enabled
}

// ListProducts fetches the filtered product list with list-level
// aggregates.
func (c *Client) ListProducts(ctx context.Context, q domain.ListQuery) ([]domain.Product, error) {
	reqURL := c.endpoint("/products", queryValues(q))

	var products []domain.Product
	if err := c.getWithRetry(ctx, reqURL, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProduct fetches one product detail record with the full offer list and
// spec bag. A 404 maps to domain.ErrProductNotFound. Not retried: detail
// reads are enrichment, and a lost one only degrades a single record.
func (c *Client) GetProduct(ctx context.Context, id int, q domain.ListQuery) (*domain.ProductDetail, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidRequest
	}
	reqURL := c.endpoint("/products/"+strconv.Itoa(id), queryValues(q))

	var detail domain.ProductDetail
	if err := c.getOnce(ctx, reqURL, &detail); err != nil {
		return nil, err
	}
	mapDetail(&detail)
	return &detail, nil
}

// Compare fetches the list-level comparison payload for the given ids.
func (c *Client) Compare(ctx context.Context, ids []int, q domain.ListQuery) (*domain.ComparePayload, error) {
	if len(ids) == 0 {
		return nil, domain.ErrInvalidRequest
	}
	params := queryValues(q)
	params.Set("ids", joinIDs(ids))
	reqURL := c.endpoint("/compare", params)

	var payload domain.ComparePayload
	if err := c.getWithRetry(ctx, reqURL, &payload); err != nil {
		return nil, err
	}
	mapComparePayload(&payload)
	return &payload, nil
}

// AnalyticsSummary fetches the aggregate reporting document. The payload is
// opaque display data and passed through undecoded.
func (c *Client) AnalyticsSummary(ctx context.Context) (domain.AnalyticsReport, error) {
	return c.getRaw(ctx, c.endpoint("/analytics/summary", nil))
}

// TopDeals fetches the top-deals reporting document.
func (c *Client) TopDeals(ctx context.Context) (domain.AnalyticsReport, error) {
	return c.getRaw(ctx, c.endpoint("/analytics/top-deals", nil))
}

// TrackClick reports an outbound offer click. Fire and forget: callers log
// the returned error at most, and never let it block navigation.
func (c *Client) TrackClick(ctx context.Context, click domain.ClickEvent) error {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter error: %w", err)
	}

	body, err := json.Marshal(click)
	if err != nil {
		return fmt.Errorf("failed to encode click event: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/track/click", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "CompareHub-Shopper/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrCatalogAPIFailure, err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("%w: status %d", domain.ErrCatalogAPIFailure, resp.StatusCode)
	}
	return nil
}

// getWithRetry executes a GET with up to maxRetries attempts and
// exponential backoff on transient failures.
func (c *Client) getWithRetry(ctx context.Context, reqURL string, out any) error {
	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err := c.getOnce(ctx, reqURL, out)
		if err == nil {
			return nil
		}
		if err == domain.ErrProductNotFound || ctx.Err() != nil {
			return err
		}
		lastErr = err
		if c.debug {
			logger.FromCtx(ctx).Debug("catalog request retry",
				zap.String("url", reqURL),
				zap.Int("attempt", attempt),
				zap.Error(err))
		}
		if attempt < maxRetries {
			select {
			case <-time.After(exponentialBackoff(attempt)):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
	return lastErr
}

func (c *Client) getOnce(ctx context.Context, reqURL string, out any) error {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter error: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "CompareHub-Shopper/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrCatalogAPIFailure, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrCatalogAPIFailure, err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return domain.ErrProductNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", domain.ErrCatalogAPIFailure, resp.StatusCode)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *Client) getRaw(ctx context.Context, reqURL string) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.getWithRetry(ctx, reqURL, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func (c *Client) endpoint(path string, params url.Values) string {
	if len(params) == 0 {
		return c.baseURL + path
	}
	return c.baseURL + path + "?" + params.Encode()
}

// queryValues renders a composed list query as URL parameters. The
// condition and stores parameters are always present.
func queryValues(q domain.ListQuery) url.Values {
	params := url.Values{}
	params.Set("condition", q.Condition)
	params.Set("stores", strings.Join(q.Stores, ","))

	if q.Query != "" {
		params.Set("q", q.Query)
	}
	if q.Category != "" {
		params.Set("category", q.Category)
	}
	if q.Brand != "" {
		params.Set("brand", q.Brand)
	}
	if q.MinPrice != "" {
		params.Set("minPrice", q.MinPrice)
	}
	if q.MaxPrice != "" {
		params.Set("maxPrice", q.MaxPrice)
	}
	if q.MinRating != "" {
		params.Set("minRating", q.MinRating)
	}
	if q.Sort != "" {
		params.Set("sort", q.Sort)
	}
	return params
}

func joinIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}

// exponentialBackoff returns the wait before the next retry attempt.
func exponentialBackoff(attempt int) time.Duration {
	return time.Duration(1<<(attempt-1)) * 500 * time.Millisecond
}

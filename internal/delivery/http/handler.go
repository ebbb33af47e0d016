package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/comparehub/shopper/internal/domain"
	"github.com/comparehub/shopper/internal/infrastructure/state"
	"github.com/comparehub/shopper/internal/logger"
	"github.com/comparehub/shopper/internal/usecase"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	catalog     domain.CatalogClient
	compare     *usecase.CompareService
	images      *usecase.ImageResolver
	selection   *state.SelectionStore
	wishlist    *state.WishlistStore
	preferences *state.PreferencesStore
	market      usecase.Market
}

// NewHandler creates a new HTTP handler
func NewHandler(
	catalog domain.CatalogClient,
	compare *usecase.CompareService,
	images *usecase.ImageResolver,
	selection *state.SelectionStore,
	wishlist *state.WishlistStore,
	preferences *state.PreferencesStore,
	market usecase.Market,
) *Handler {
	return &Handler{
		catalog:     catalog,
		compare:     compare,
		images:      images,
		selection:   selection,
		wishlist:    wishlist,
		preferences: preferences,
		market:      market,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "comparehub-shopper",
		"version": "1.0.0",
	})
}

// ListProducts proxies the filtered catalog list, with categories
// normalized and image references resolved.
func (h *Handler) ListProducts(c *gin.Context) {
	query := h.composeQuery(c)

	products, err := h.catalog.ListProducts(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "catalog unavailable"})
		return
	}

	for i := range products {
		products[i].Category = domain.NormalizeCategory(products[i].Category)
		products[i].ImageURL = h.images.Resolve(products[i])
	}
	c.JSON(http.StatusOK, products)
}

// GetProduct returns one product detail record.
func (h *Handler) GetProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	detail, err := h.catalog.GetProduct(c.Request.Context(), id, h.composeQuery(c))
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "catalog unavailable"})
		return
	}

	detail.Category = domain.NormalizeCategory(detail.Category)
	detail.ImageURL = h.images.Resolve(detail.Product)
	c.JSON(http.StatusOK, detail)
}

// Compare runs the comparison aggregator. A non-empty ids parameter takes
// precedence over the persisted basket and is mirrored back into it.
func (h *Handler) Compare(c *gin.Context) {
	ids := parseIDsParam(c.Query("ids"))
	if len(ids) > 0 {
		ids = h.selection.Replace(ids)
	} else {
		ids = h.selection.IDs()
	}

	result, err := h.compare.Compare(c.Request.Context(), ids, h.composeQuery(c))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidSelection):
			c.JSON(http.StatusBadRequest, gin.H{"error": "select at least 2 and at most 4 products"})
		case errors.Is(err, domain.ErrStaleRun):
			c.JSON(http.StatusConflict, gin.H{"error": "comparison superseded by a newer selection"})
		default:
			c.JSON(http.StatusBadGateway, gin.H{"error": "comparison unavailable"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"filters":     result.Filters,
		"products":    result.Products,
		"rows":        usecase.SpecRows(result),
		"lowestPrice": result.LowestPrice(),
	})
}

// AnalyticsSummary passes the aggregate reporting document through.
func (h *Handler) AnalyticsSummary(c *gin.Context) {
	h.passThrough(c, h.catalog.AnalyticsSummary)
}

// TopDeals passes the top-deals reporting document through.
func (h *Handler) TopDeals(c *gin.Context) {
	h.passThrough(c, h.catalog.TopDeals)
}

func (h *Handler) passThrough(c *gin.Context, fetch func(context.Context) (domain.AnalyticsReport, error)) {
	report, err := fetch(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "analytics unavailable"})
		return
	}
	c.Data(http.StatusOK, "application/json", report)
}

// TrackClick forwards an outbound click event. Fire and forget: the
// response never waits on the upstream call and failures only get logged.
func (h *Handler) TrackClick(c *gin.Context) {
	var click domain.ClickEvent
	if err := c.ShouldBindJSON(&click); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid click payload"})
		return
	}

	log := logger.FromCtx(c.Request.Context())
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := h.catalog.TrackClick(ctx, click); err != nil {
			log.Warn("click tracking failed",
				zap.Int("productId", click.ProductID),
				zap.String("store", click.StoreName),
				zap.Error(err))
		}
	}()

	c.JSON(http.StatusAccepted, gin.H{"status": "accepted"})
}

// GetBasket returns the compare basket in toggle order.
func (h *Handler) GetBasket(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ids": h.selection.IDs()})
}

// ToggleBasket toggles a product in the compare basket.
func (h *Handler) ToggleBasket(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ids": h.selection.Toggle(id)})
}

// RemoveFromBasket drops a product from the compare basket.
func (h *Handler) RemoveFromBasket(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ids": h.selection.Remove(id)})
}

// ClearBasket empties the compare basket.
func (h *Handler) ClearBasket(c *gin.Context) {
	h.selection.Clear()
	c.JSON(http.StatusOK, gin.H{"ids": []int{}})
}

// GetWishlist returns the saved snapshots, most recent first.
func (h *Handler) GetWishlist(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": h.wishlist.Items()})
}

// AddToWishlist saves a product snapshot. Re-adding an already saved id is
// a no-op.
func (h *Handler) AddToWishlist(c *gin.Context) {
	var item domain.WishlistItem
	if err := c.ShouldBindJSON(&item); err != nil || item.ID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid wishlist item"})
		return
	}
	item.Category = domain.NormalizeCategory(item.Category)
	c.JSON(http.StatusOK, gin.H{"items": h.wishlist.Add(item)})
}

// ToggleWishlist removes the snapshot when its id is already saved,
// otherwise saves it.
func (h *Handler) ToggleWishlist(c *gin.Context) {
	var item domain.WishlistItem
	if err := c.ShouldBindJSON(&item); err != nil || item.ID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid wishlist item"})
		return
	}
	item.Category = domain.NormalizeCategory(item.Category)
	c.JSON(http.StatusOK, gin.H{"items": h.wishlist.Toggle(item)})
}

// RemoveFromWishlist drops a saved snapshot by id.
func (h *Handler) RemoveFromWishlist(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": h.wishlist.Remove(id)})
}

// ClearWishlist empties the wishlist.
func (h *Handler) ClearWishlist(c *gin.Context) {
	h.wishlist.Clear()
	c.JSON(http.StatusOK, gin.H{"items": []domain.WishlistItem{}})
}

// GetPreferences returns the effective market preferences: the persisted
// record with the condition default and store safety net applied.
func (h *Handler) GetPreferences(c *gin.Context) {
	c.JSON(http.StatusOK, h.effectivePreferences(h.preferences.Preferences()))
}

// UpdatePreferences replaces the persisted market preferences.
func (h *Handler) UpdatePreferences(c *gin.Context) {
	var prefs domain.MarketPreferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid preferences payload"})
		return
	}
	c.JSON(http.StatusOK, h.effectivePreferences(h.preferences.Update(prefs)))
}

// composeQuery merges the request's ad hoc filters with the persisted
// market preferences under the configured market defaults.
func (h *Handler) composeQuery(c *gin.Context) domain.ListQuery {
	return h.market.ComposeQuery(usecase.UIFilters{
		Query:     c.Query("q"),
		Category:  c.Query("category"),
		Brand:     c.Query("brand"),
		MinPrice:  c.Query("minPrice"),
		MaxPrice:  c.Query("maxPrice"),
		MinRating: c.Query("minRating"),
		Sort:      c.Query("sort"),
	}, h.preferences.Preferences())
}

func (h *Handler) effectivePreferences(prefs domain.MarketPreferences) domain.MarketPreferences {
	q := h.market.ComposeQuery(usecase.UIFilters{}, prefs)
	return domain.MarketPreferences{
		Condition: q.Condition,
		Stores:    q.Stores,
	}
}

// parseIDsParam parses a csv ids parameter into positive, deduplicated ids
// preserving order.
func parseIDsParam(raw string) []int {
	var ids []int
	seen := map[int]bool{}
	for _, part := range strings.Split(raw, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n <= 0 || seen[n] {
			continue
		}
		seen[n] = true
		ids = append(ids, n)
	}
	return ids
}

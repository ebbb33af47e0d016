package domain

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Price tolerates the loose typing of upstream offer payloads: numbers,
// numeric strings, or garbage like "n/a". Anything that does not parse to a
// finite number decodes to 0, which Valid() rejects.
type Price float64

// UnmarshalJSON accepts numeric and string-encoded prices without failing
// the surrounding document.
func (p *Price) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		*p = 0
		return nil
	}
	s = strings.Trim(s, `"`)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		*p = 0
		return nil
	}
	*p = Price(v)
	return nil
}

// Valid reports whether the price is finite and strictly positive.
// Zero, negative, and unparseable prices are all treated as absent.
func (p Price) Valid() bool {
	v := float64(p)
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}

// Product is a catalog entry as returned by the list endpoint. The Best*
// aggregate fields are optional and only populated by list-level reads.
type Product struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Brand       string   `json:"brand,omitempty"`
	Model       string   `json:"model,omitempty"`
	Category    string   `json:"category,omitempty"`
	Description string   `json:"description,omitempty"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	BestPrice   *float64 `json:"bestPrice,omitempty"`
	BestSource  string   `json:"bestSource,omitempty"`
	BestRating  *float64 `json:"bestRating,omitempty"`
}

// Offer is a priced listing of a product at one store.
type Offer struct {
	Source string   `json:"source"`
	Price  Price    `json:"price"`
	Rating *float64 `json:"rating,omitempty"`
	URL    string   `json:"url,omitempty"`
}

// BestOffer is the offer chosen by the best-offer selector. The zero value
// is the "no offers" placeholder rendered when nothing valid exists.
type BestOffer struct {
	Source string   `json:"source"`
	Price  *float64 `json:"price"`
	Rating *float64 `json:"rating"`
	URL    *string  `json:"url"`
}

// Valid reports whether the best offer carries a usable positive price.
func (b BestOffer) Valid() bool {
	return b.Price != nil && Price(*b.Price).Valid()
}

// ProductDetail is the per-item detail payload with the full offer list
// and spec bag.
type ProductDetail struct {
	Product
	Offers      []Offer `json:"offers"`
	Specs       SpecBag `json:"specs,omitempty"`
	LastUpdated string  `json:"lastUpdated,omitempty"`
}

// WishlistItem is the lightweight snapshot persisted per saved product.
type WishlistItem struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Brand    string `json:"brand,omitempty"`
	Category string `json:"category,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// MarketPreferences are the persisted condition/store defaults applied to
// every catalog query.
type MarketPreferences struct {
	Condition string   `json:"condition"`
	Stores    []string `json:"stores"`
}

// ClickEvent is the fire-and-forget payload sent before navigating to an
// offer URL.
type ClickEvent struct {
	ProductID int    `json:"productId"`
	StoreName string `json:"storeName"`
	URL       string `json:"url"`
}

// ListQuery is the composed filter set for list-level catalog reads.
// Condition and Stores are always populated by the query composer.
type ListQuery struct {
	Query     string
	Category  string
	Brand     string
	MinPrice  string
	MaxPrice  string
	MinRating string
	Sort      string
	Condition string
	Stores    []string
}

// AnalyticsReport is opaque aggregate reporting passed through to clients
// without interpretation.
type AnalyticsReport = json.RawMessage

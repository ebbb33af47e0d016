package usecase

import (
	"regexp"
	"strings"

	"github.com/comparehub/shopper/internal/domain"
)

// DefaultCondition is applied when no market preference is persisted.
const DefaultCondition = "New"

// CoreStores is the store allow-list substituted wholesale when the
// persisted preference contains none of them. A safety net against empty
// or nonsensical persisted state, not a user-editable merge.
var CoreStores = []string{"Amazon", "Best Buy", "Walmart"}

// knownStores are the canonical store names that case/spacing variants fold
// into ("bestbuy", "BEST  BUY" -> "Best Buy").
var knownStores = []string{"Amazon", "Best Buy", "Walmart", "Target", "Newegg", "eBay"}

var storeSpaceRegex = regexp.MustCompile(`\s+`)

// UIFilters are the ad hoc filter inputs of a list view.
type UIFilters struct {
	Query     string
	Category  string
	Brand     string
	MinPrice  string
	MaxPrice  string
	MinRating string
	Sort      string
}

// Market carries the configured market defaults: the condition applied when
// no preference is persisted, and the core store set substituted when the
// persisted allow-list contains none of its stores. The zero value behaves
// like DefaultMarket.
type Market struct {
	Condition string
	Core      []string
}

// DefaultMarket returns the built-in market defaults.
func DefaultMarket() Market {
	return Market{Condition: DefaultCondition, Core: CoreStores}
}

// withDefaults fills empty fields with the built-in defaults and folds the
// configured core names into canonical form.
func (m Market) withDefaults() Market {
	if strings.TrimSpace(m.Condition) == "" {
		m.Condition = DefaultCondition
	}
	if len(m.Core) == 0 {
		m.Core = CoreStores
	}
	core := make([]string, 0, len(m.Core))
	seen := make(map[string]bool, len(m.Core))
	for _, s := range m.Core {
		name := CanonicalStoreName(s)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		core = append(core, name)
	}
	m.Core = core
	return m
}

// CanonicalStoreName folds case and spacing variants of known store names
// into their canonical form. Unknown names are returned trimmed with
// collapsed whitespace.
func CanonicalStoreName(s string) string {
	clean := storeSpaceRegex.ReplaceAllString(strings.TrimSpace(s), " ")
	folded := strings.ToLower(strings.ReplaceAll(clean, " ", ""))
	for _, known := range knownStores {
		if strings.ToLower(strings.ReplaceAll(known, " ", "")) == folded {
			return known
		}
	}
	return clean
}

// NormalizeStores canonicalizes and deduplicates a persisted store
// allow-list, substituting the market's core set when the result contains
// none of the core stores.
func (m Market) NormalizeStores(stores []string) []string {
	m = m.withDefaults()

	seen := make(map[string]bool, len(stores))
	out := make([]string, 0, len(stores))
	for _, s := range stores {
		name := CanonicalStoreName(s)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}

	for _, core := range m.Core {
		if seen[core] {
			return out
		}
	}
	return append([]string(nil), m.Core...)
}

// ComposeQuery merges ad hoc UI filters with the persisted market
// preferences into the outgoing list query. Condition and Stores are always
// populated.
func (m Market) ComposeQuery(f UIFilters, prefs domain.MarketPreferences) domain.ListQuery {
	m = m.withDefaults()

	condition := strings.TrimSpace(prefs.Condition)
	if condition == "" {
		condition = m.Condition
	}

	return domain.ListQuery{
		Query:     strings.TrimSpace(f.Query),
		Category:  f.Category,
		Brand:     f.Brand,
		MinPrice:  f.MinPrice,
		MaxPrice:  f.MaxPrice,
		MinRating: f.MinRating,
		Sort:      f.Sort,
		Condition: condition,
		Stores:    m.NormalizeStores(prefs.Stores),
	}
}

// NormalizeStores applies the built-in market defaults.
func NormalizeStores(stores []string) []string {
	return DefaultMarket().NormalizeStores(stores)
}

// ComposeQuery applies the built-in market defaults.
func ComposeQuery(f UIFilters, prefs domain.MarketPreferences) domain.ListQuery {
	return DefaultMarket().ComposeQuery(f, prefs)
}

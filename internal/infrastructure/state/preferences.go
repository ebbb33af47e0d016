package state

import (
	"strings"
	"sync"

	"github.com/comparehub/shopper/internal/domain"
)

// Persisted keys for market preferences.
const (
	conditionKey = "market_condition"
	storesKey    = "market_stores"
)

// PreferencesStore persists the market preferences (condition + store
// allow-list) read by the query composer. Defaults are the composer's
// concern; this store only guarantees clean loads and full-replace writes.
type PreferencesStore struct {
	repo      domain.StateRepository
	mu        sync.Mutex
	condition string
	stores    []string
}

// NewPreferencesStore loads the persisted preferences, each key falling
// back to its empty default independently.
func NewPreferencesStore(repo domain.StateRepository) *PreferencesStore {
	s := &PreferencesStore{repo: repo}
	var condition string
	if err := repo.Load(conditionKey, &condition); err == nil {
		s.condition = strings.TrimSpace(condition)
	}
	var stores []string
	if err := repo.Load(storesKey, &stores); err == nil {
		s.stores = stores
	}
	return s
}

// Preferences returns the persisted record. Absent values stay empty; the
// query composer applies the condition default and the core-store safety
// net.
func (s *PreferencesStore) Preferences() domain.MarketPreferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.MarketPreferences{
		Condition: s.condition,
		Stores:    append([]string(nil), s.stores...),
	}
}

// Update replaces both preference keys.
func (s *PreferencesStore) Update(prefs domain.MarketPreferences) domain.MarketPreferences {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.condition = strings.TrimSpace(prefs.Condition)
	s.stores = append([]string(nil), prefs.Stores...)
	_ = s.repo.Save(conditionKey, s.condition)
	stores := s.stores
	if stores == nil {
		stores = []string{}
	}
	_ = s.repo.Save(storesKey, stores)

	return domain.MarketPreferences{
		Condition: s.condition,
		Stores:    append([]string(nil), s.stores...),
	}
}

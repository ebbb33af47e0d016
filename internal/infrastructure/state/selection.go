package state

import (
	"sync"

	"github.com/comparehub/shopper/internal/domain"
)

// Persisted key and cap for the compare basket.
const (
	selectionKey = "compare_selected"

	// MaxSelection is the compare basket capacity.
	MaxSelection = 4
)

// SelectionStore is the persisted compare basket: an ordered, deduplicated
// set of at most four product ids, order reflecting toggle order. Every
// mutation derives the next value from in-memory state and persists it
// immediately.
type SelectionStore struct {
	repo domain.StateRepository
	mu   sync.Mutex
	ids  []int
}

// NewSelectionStore loads the persisted basket, falling back to empty on a
// missing or corrupt value.
func NewSelectionStore(repo domain.StateRepository) *SelectionStore {
	s := &SelectionStore{repo: repo}
	var ids []int
	if err := repo.Load(selectionKey, &ids); err == nil {
		s.ids = sanitizeSelection(ids)
	}
	return s
}

// IDs returns the selected product ids in toggle order.
func (s *SelectionStore) IDs() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]int(nil), s.ids...)
}

// Toggle adds the id if absent and the basket is not full, removes it if
// present. Returns the resulting selection. Toggling a new id into a full
// basket is a silent no-op.
func (s *SelectionStore) Toggle(id int) []int {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.ids {
		if existing == id {
			s.ids = append(s.ids[:i:i], s.ids[i+1:]...)
			s.persist()
			return append([]int(nil), s.ids...)
		}
	}
	if id > 0 && len(s.ids) < MaxSelection {
		s.ids = append(s.ids, id)
		s.persist()
	}
	return append([]int(nil), s.ids...)
}

// Remove drops the id from the basket if present.
func (s *SelectionStore) Remove(id int) []int {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.ids {
		if existing == id {
			s.ids = append(s.ids[:i:i], s.ids[i+1:]...)
			s.persist()
			break
		}
	}
	return append([]int(nil), s.ids...)
}

// Clear empties the basket.
func (s *SelectionStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids = nil
	s.persist()
}

// Replace mirrors an externally supplied selection (e.g. a shared URL
// parameter) into the store, applying the same dedupe and cap rules.
func (s *SelectionStore) Replace(ids []int) []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids = sanitizeSelection(ids)
	s.persist()
	return append([]int(nil), s.ids...)
}

func (s *SelectionStore) persist() {
	ids := s.ids
	if ids == nil {
		ids = []int{}
	}
	_ = s.repo.Save(selectionKey, ids)
}

// sanitizeSelection drops non-positive and duplicate ids and enforces the
// basket cap, preserving order.
func sanitizeSelection(ids []int) []int {
	seen := make(map[int]bool, len(ids))
	var out []int
	for _, id := range ids {
		if id <= 0 || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
		if len(out) == MaxSelection {
			break
		}
	}
	return out
}

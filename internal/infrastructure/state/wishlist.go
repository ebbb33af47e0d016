package state

import (
	"sync"

	"github.com/comparehub/shopper/internal/domain"
)

// Persisted key and cap for the wishlist.
const (
	wishlistKey = "wishlist"

	// MaxWishlist is the wishlist capacity; the oldest entries beyond it
	// are dropped on insert.
	MaxWishlist = 50
)

// WishlistStore is the persisted wishlist: lightweight product snapshots in
// most-recent-first order, deduplicated by id, capped at MaxWishlist.
type WishlistStore struct {
	repo  domain.StateRepository
	mu    sync.Mutex
	items []domain.WishlistItem
}

// NewWishlistStore loads the persisted wishlist, falling back to empty on a
// missing or corrupt value.
func NewWishlistStore(repo domain.StateRepository) *WishlistStore {
	s := &WishlistStore{repo: repo}
	var items []domain.WishlistItem
	if err := repo.Load(wishlistKey, &items); err == nil {
		s.items = sanitizeWishlist(items)
	}
	return s
}

// Items returns the saved snapshots, most recent first.
func (s *WishlistStore) Items() []domain.WishlistItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.WishlistItem(nil), s.items...)
}

// Add prepends a snapshot. Re-adding an id already present is a no-op; the
// oldest entry is evicted when the cap is exceeded.
func (s *WishlistStore) Add(item domain.WishlistItem) []domain.WishlistItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	if item.ID > 0 && !s.contains(item.ID) {
		s.add(item)
	}
	return append([]domain.WishlistItem(nil), s.items...)
}

// Toggle removes the snapshot when its id is already saved, otherwise adds
// it. Returns the resulting list. The check and the mutation happen under
// one lock hold so concurrent toggles of the same id stay consistent.
func (s *WishlistStore) Toggle(item domain.WishlistItem) []domain.WishlistItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	if item.ID > 0 {
		if s.contains(item.ID) {
			s.remove(item.ID)
		} else {
			s.add(item)
		}
	}
	return append([]domain.WishlistItem(nil), s.items...)
}

// Remove drops the snapshot with the given id if present.
func (s *WishlistStore) Remove(id int) []domain.WishlistItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.remove(id)
	return append([]domain.WishlistItem(nil), s.items...)
}

// add and remove mutate and persist; callers hold the lock.
func (s *WishlistStore) add(item domain.WishlistItem) {
	s.items = append([]domain.WishlistItem{item}, s.items...)
	if len(s.items) > MaxWishlist {
		s.items = s.items[:MaxWishlist]
	}
	s.persist()
}

func (s *WishlistStore) remove(id int) {
	for i, item := range s.items {
		if item.ID == id {
			s.items = append(s.items[:i:i], s.items[i+1:]...)
			s.persist()
			break
		}
	}
}

// Clear empties the wishlist.
func (s *WishlistStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.persist()
}

func (s *WishlistStore) contains(id int) bool {
	for _, item := range s.items {
		if item.ID == id {
			return true
		}
	}
	return false
}

func (s *WishlistStore) persist() {
	items := s.items
	if items == nil {
		items = []domain.WishlistItem{}
	}
	_ = s.repo.Save(wishlistKey, items)
}

func sanitizeWishlist(items []domain.WishlistItem) []domain.WishlistItem {
	seen := make(map[int]bool, len(items))
	var out []domain.WishlistItem
	for _, item := range items {
		if item.ID <= 0 || seen[item.ID] {
			continue
		}
		seen[item.ID] = true
		out = append(out, item)
		if len(out) == MaxWishlist {
			break
		}
	}
	return out
}

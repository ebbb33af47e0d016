package state

import (
	"reflect"
	"testing"
)

func newTestFileStore(t *testing.T) *FileStore {
	t.Helper()
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore() error = %v", err)
	}
	return store
}

func TestSelectionToggleSequence(t *testing.T) {
	s := NewSelectionStore(newTestFileStore(t))

	for _, id := range []int{1, 2, 3, 4, 5} {
		s.Toggle(id)
	}
	want := []int{1, 2, 3, 4}
	if got := s.IDs(); !reflect.DeepEqual(got, want) {
		t.Errorf("IDs = %v, want %v (capped at 4)", got, want)
	}

	// Toggling the overflow id again is still a no-op.
	s.Toggle(5)
	if got := s.IDs(); !reflect.DeepEqual(got, want) {
		t.Errorf("IDs = %v, want %v after re-toggling 5", got, want)
	}

	// Toggling a member removes it; order of the rest is preserved.
	s.Toggle(2)
	if got := s.IDs(); !reflect.DeepEqual(got, []int{1, 3, 4}) {
		t.Errorf("IDs = %v, want [1 3 4]", got)
	}
}

func TestSelectionNoDuplicates(t *testing.T) {
	s := NewSelectionStore(newTestFileStore(t))
	s.Toggle(7)
	s.Toggle(8)
	s.Toggle(7) // removes
	s.Toggle(7) // re-adds
	got := s.IDs()
	seen := map[int]bool{}
	for _, id := range got {
		if seen[id] {
			t.Fatalf("duplicate id %d in %v", id, got)
		}
		seen[id] = true
	}
	if !reflect.DeepEqual(got, []int{8, 7}) {
		t.Errorf("IDs = %v, want [8 7] (toggle order)", got)
	}
}

func TestSelectionPersistence(t *testing.T) {
	store := newTestFileStore(t)

	s := NewSelectionStore(store)
	s.Toggle(10)
	s.Toggle(20)

	reloaded := NewSelectionStore(store)
	if got := reloaded.IDs(); !reflect.DeepEqual(got, []int{10, 20}) {
		t.Errorf("reloaded IDs = %v, want [10 20]", got)
	}
}

func TestSelectionReplace(t *testing.T) {
	s := NewSelectionStore(newTestFileStore(t))
	s.Toggle(1)

	got := s.Replace([]int{5, 5, -1, 6, 7, 8, 9})
	want := []int{5, 6, 7, 8}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Replace = %v, want %v (deduped, capped)", got, want)
	}
}

func TestSelectionRemoveAndClear(t *testing.T) {
	s := NewSelectionStore(newTestFileStore(t))
	s.Toggle(1)
	s.Toggle(2)

	s.Remove(1)
	if got := s.IDs(); !reflect.DeepEqual(got, []int{2}) {
		t.Errorf("IDs = %v, want [2]", got)
	}
	s.Remove(99) // absent id is a no-op
	if got := s.IDs(); !reflect.DeepEqual(got, []int{2}) {
		t.Errorf("IDs = %v, want [2] after removing absent id", got)
	}

	s.Clear()
	if got := s.IDs(); len(got) != 0 {
		t.Errorf("IDs = %v, want empty after Clear", got)
	}
}

func TestSelectionCorruptStateFallsBackEmpty(t *testing.T) {
	store := newTestFileStore(t)
	if err := store.Save("compare_selected", "definitely not a list"); err != nil {
		t.Fatal(err)
	}

	s := NewSelectionStore(store)
	if got := s.IDs(); len(got) != 0 {
		t.Errorf("IDs = %v, want empty for corrupt persisted value", got)
	}
}

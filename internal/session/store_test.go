package session

import (
	"reflect"
	"testing"
)

func TestStoreStartsEmpty(t *testing.T) {
	s := NewStore()
	if !s.Empty() {
		t.Error("new store should be empty")
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
	if got := s.CIDs(); len(got) != 0 {
		t.Errorf("CIDs() = %v, want empty", got)
	}
}

func TestReplaceOverwritesWholesale(t *testing.T) {
	s := NewStore()

	s.Replace([]string{"2244", "962"})
	if got := s.CIDs(); !reflect.DeepEqual(got, []string{"2244", "962"}) {
		t.Errorf("CIDs() = %v after first replace", got)
	}

	// A later search fully replaces, never appends
	s.Replace([]string{"5793"})
	if got := s.CIDs(); !reflect.DeepEqual(got, []string{"5793"}) {
		t.Errorf("CIDs() = %v, want [5793]", got)
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}

// TestReplaceWithEmpty verifies a zero-hit search clears the store: the
// state after it is indistinguishable from never having searched.
func TestReplaceWithEmpty(t *testing.T) {
	s := NewStore()
	s.Replace([]string{"2244", "962"})

	s.Replace(nil)
	if !s.Empty() {
		t.Error("store should be empty after replacing with nil")
	}

	s.Replace([]string{"1"})
	s.Replace([]string{})
	if !s.Empty() {
		t.Error("store should be empty after replacing with an empty slice")
	}
}

// TestStoreCopiesInput verifies the store is isolated from later mutation of
// the slices passed in or handed out.
func TestStoreCopiesInput(t *testing.T) {
	in := []string{"2244", "962"}
	s := NewStore()
	s.Replace(in)

	in[0] = "mutated"
	if got := s.CIDs(); got[0] != "2244" {
		t.Errorf("store aliased caller slice: CIDs() = %v", got)
	}

	out := s.CIDs()
	out[1] = "mutated"
	if got := s.CIDs(); got[1] != "962" {
		t.Errorf("store aliased returned slice: CIDs() = %v", got)
	}
}

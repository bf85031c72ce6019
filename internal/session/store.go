// Package session holds state that outlives a single request/response cycle.
package session

// Store keeps the CID list produced by the most recent similarity search so
// a later "View All Compounds" action can replay it.
//
// Lifecycle: created empty at session start, overwritten wholesale by every
// similarity search (including with an empty list), read by View All, never
// implicitly cleared. One Store belongs to one interactive session; actions
// within a session are strictly sequential, so no locking is needed.
type Store struct {
	cids []string
}

// NewStore creates an empty similarity result store.
func NewStore() *Store {
	return &Store{}
}

// Replace overwrites the stored CID list. An empty or nil list is a valid
// replacement: a search that found nothing still counts as a search.
func (s *Store) Replace(cids []string) {
	s.cids = make([]string, len(cids))
	copy(s.cids, cids)
}

// CIDs returns a copy of the stored list in search-result order.
func (s *Store) CIDs() []string {
	out := make([]string, len(s.cids))
	copy(out, s.cids)
	return out
}

// Len returns the number of stored CIDs.
func (s *Store) Len() int {
	return len(s.cids)
}

// Empty reports whether there is nothing to display. True both before any
// search and after a search that found nothing; View All warns identically
// in either case.
func (s *Store) Empty() bool {
	return len(s.cids) == 0
}

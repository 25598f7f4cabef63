package skills

import (
	"errors"
	"fmt"
	"math"
	"sync"
)

var (
	// ErrNotFound indicates a mutation against a name that was never loaded.
	// This is a caller contract violation, not a user error.
	ErrNotFound = errors.New("skill not found")

	// ErrDuplicateName indicates two records in a load batch share a name.
	ErrDuplicateName = errors.New("duplicate skill name")
)

// Store holds the authoritative skill collection for the session. Records are
// kept in load order; that order drives chart axes and report sections. After
// load, Score is the only mutable field.
type Store struct {
	mu      sync.Mutex
	records []Record
	index   map[string]int
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{index: make(map[string]int)}
}

// Load replaces the entire collection. Names must be unique; on a duplicate
// the load fails and the previous collection is left untouched.
func (s *Store) Load(records []Record) error {
	index := make(map[string]int, len(records))
	copied := make([]Record, 0, len(records))
	for i, r := range records {
		if _, ok := index[r.Name]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateName, r.Name)
		}
		index[r.Name] = i
		copied = append(copied, r.Clone())
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = copied
	s.index = index
	return nil
}

// SetScore replaces the named record's score. The value is clamped into
// [MinScore, MaxScore] even though validated input should already be in
// range. A NaN candidate is ignored entirely so a buggy caller cannot poison
// the record. The commit is synchronous; any "saving" indicator shown around
// this call is purely a UI affordance.
func (s *Store) SetScore(name string, score float64) error {
	if math.IsNaN(score) {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.index[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	s.records[i].Score = ClampScore(score)
	return nil
}

// Snapshot returns a deep copy of the collection in load order. Mutating the
// result has no effect on the store.
func (s *Store) Snapshot() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Record, 0, len(s.records))
	for _, r := range s.records {
		out = append(out, r.Clone())
	}
	return out
}

// Len returns the number of loaded records.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// FlaggedCount returns how many records carry the suspicion flag.
func (s *Store) FlaggedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for i := range s.records {
		if s.records[i].IsFlagged() {
			n++
		}
	}
	return n
}

package state

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/five82/cumplesito/internal/wishlist"
)

// ErrStale is returned when a result belongs to a view generation that is no
// longer current. The result must be dropped.
var ErrStale = errors.New("view changed before the result arrived")

// Snapshot represents the latest wishlist data available to the UI.
type Snapshot struct {
	WishlistID          string
	Wishlist            wishlist.Wishlist
	HasWishlist         bool
	NotFound            bool
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int
	Generation          uint64
}

// IsOffline returns true when the record store has been unreachable for
// several refreshes in a row.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Loading reports whether the view is waiting for its first answer.
func (s Snapshot) Loading() bool {
	return s.WishlistID != "" && !s.HasWishlist && !s.NotFound && s.LastError == nil
}

// Store holds the one wishlist aggregate the UI is looking at. Every writer
// passes the generation it started under; writes for older generations are
// rejected with ErrStale.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Open starts a new view of wishlist id and returns its generation. The
// previous aggregate is discarded.
func (s *Store) Open(id string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	gen := s.snapshot.Generation + 1
	s.snapshot = Snapshot{WishlistID: id, Generation: gen}
	return gen
}

// Close leaves the current view. Results still in flight become stale.
func (s *Store) Close() {
	s.Open("")
}

// Generation returns the current view generation.
func (s *Store) Generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot.Generation
}

// Commit replaces the aggregate with a freshly fetched wishlist. A nil
// wishlist records that the record store has no such list.
func (s *Store) Commit(gen uint64, w *wishlist.Wishlist) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.snapshot.Generation {
		return ErrStale
	}
	if w == nil {
		s.snapshot.Wishlist = wishlist.Wishlist{}
		s.snapshot.HasWishlist = false
		s.snapshot.NotFound = true
	} else {
		s.snapshot.Wishlist = w.Clone()
		s.snapshot.HasWishlist = true
		s.snapshot.NotFound = false
	}
	s.snapshot.LastError = nil
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.ConsecutiveFailures = 0
	return nil
}

// Patch replaces one item in place by id. It reports whether the item was
// found.
func (s *Store) Patch(gen uint64, item wishlist.Item) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.snapshot.Generation {
		return false, ErrStale
	}
	if !s.snapshot.HasWishlist {
		return false, nil
	}
	found := s.snapshot.Wishlist.ReplaceItem(item.Clone())
	if found {
		s.snapshot.LastUpdated = time.Now()
	}
	return found, nil
}

// Append adds a new item at the end of the list.
func (s *Store) Append(gen uint64, item wishlist.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.snapshot.Generation {
		return ErrStale
	}
	if !s.snapshot.HasWishlist {
		return nil
	}
	s.snapshot.Wishlist.Items = append(s.snapshot.Wishlist.Items, item.Clone())
	s.snapshot.LastUpdated = time.Now()
	return nil
}

// Remove drops one item by id and reports whether it was present.
func (s *Store) Remove(gen uint64, itemID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.snapshot.Generation {
		return false, ErrStale
	}
	if !s.snapshot.HasWishlist {
		return false, nil
	}
	removed := s.snapshot.Wishlist.RemoveItem(itemID)
	if removed {
		s.snapshot.LastUpdated = time.Now()
	}
	return removed, nil
}

// Fail records err for the view while keeping the data already shown.
func (s *Store) Fail(gen uint64, err error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.snapshot.Generation {
		return ErrStale
	}
	s.snapshot.LastError = err
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.ConsecutiveFailures++
	return nil
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Wishlist = s.snapshot.Wishlist.Clone()
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

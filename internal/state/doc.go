// Package state holds the wishlist the UI is currently showing.
//
// A Store has one writer path (mutation results and periodic refreshes, both
// running as background commands) and one reader (the bubbletea View). It is
// safe for concurrent use and its zero value is ready.
//
// # Generations
//
// Every time the user opens a wishlist, Open bumps a generation counter and
// clears the aggregate. Background work captures the generation it started
// under and hands it back to Commit, Patch or Fail. If the user has moved on
// in the meantime the write is refused with ErrStale, so a slow answer for
// one list can never overwrite another:
//
//	gen := store.Open("w1")
//	w, err := client.GetWishlist(ctx, "w1")
//	if err != nil {
//		_ = store.Fail(gen, err)
//		return
//	}
//	_ = store.Commit(gen, w) // ErrStale if the user navigated away
//
// # Update semantics
//
// Commit replaces the whole aggregate; a nil wishlist marks the view as
// NotFound. Patch replaces a single item by id and is only used when the
// refresh after a mutation fails. Fail records the error and keeps the data
// already shown; two failures in a row flip IsOffline.
//
// Snapshot returns deep copies, so callers may read the items and
// contributions without holding any lock.
package state

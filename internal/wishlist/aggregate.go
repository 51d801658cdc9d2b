package wishlist

import "strings"

// FindItem returns the index of the item with the given id, or -1.
func (w Wishlist) FindItem(id string) int {
	for idx, item := range w.Items {
		if item.ID == id {
			return idx
		}
	}
	return -1
}

// ReplaceItem swaps the item with the same id in place and reports whether a
// match was found. Order is preserved.
func (w *Wishlist) ReplaceItem(item Item) bool {
	idx := w.FindItem(item.ID)
	if idx < 0 {
		return false
	}
	w.Items[idx] = item.Clone()
	return true
}

// RemoveItem drops the item with the given id and reports whether it existed.
func (w *Wishlist) RemoveItem(id string) bool {
	idx := w.FindItem(id)
	if idx < 0 {
		return false
	}
	w.Items = append(w.Items[:idx:idx], w.Items[idx+1:]...)
	return true
}

// IsOwner is the UI-only owner check: an explicit owner flag on the link, or
// the session user owning the list. It grants no authorization.
func (w Wishlist) IsOwner(viewerID string, ownerFlag bool) bool {
	if ownerFlag {
		return true
	}
	viewerID = strings.TrimSpace(viewerID)
	return viewerID != "" && viewerID == w.OwnerID
}

// Counts summarizes item states for headers and listings.
type Counts struct {
	Total     int
	Available int
	Reserved  int
	Purchased int
	Open      int
	Funded    int
}

// Count tallies the wishlist's items by state.
func (w Wishlist) Count() Counts {
	var c Counts
	for _, item := range w.Items {
		c.Total++
		switch item.State() {
		case StateAvailable:
			c.Available++
		case StateReserved:
			c.Reserved++
		case StatePurchased:
			c.Purchased++
		case StateOpen:
			c.Open++
		case StateFunded:
			c.Funded++
		}
	}
	return c
}

package wishlist

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemType distinguishes single-purchase gifts from pooled gifts.
type ItemType string

const (
	TypeStandard ItemType = "standard"
	TypePooled   ItemType = "pooled_gift"
)

// Normalize maps unknown or empty item types to TypeStandard.
func (t ItemType) Normalize() ItemType {
	if t == TypePooled {
		return TypePooled
	}
	return TypeStandard
}

// Item is a single gift on a wishlist. Optional strings use "" for absent.
type Item struct {
	ID          string
	WishlistID  string
	Title       string
	Description string
	ImageURL    string
	ProductURL  string
	Type        ItemType

	IsPurchased bool
	PurchasedBy string
	IsReserved  bool
	ReservedBy  string

	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	Contributions []Contribution

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsPooled reports whether the item is funded by contributions.
func (i Item) IsPooled() bool {
	return i.Type == TypePooled
}

// Contribution is an append-only money pledge toward a pooled item.
type Contribution struct {
	ContributorName string
	Amount          decimal.Decimal
	Message         string
	CreatedAt       time.Time
}

// Wishlist is the aggregate root; it owns its items in server order.
type Wishlist struct {
	ID                     string
	Title                  string
	OwnerName              string
	OwnerID                string
	EventDate              time.Time
	Description            string
	Profile                string
	AllowAnonymousPurchase bool
	ShareableLink          string
	Items                  []Item
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// User is an authenticated account.
type User struct {
	ID        string
	Name      string
	Email     string
	CreatedAt time.Time
}

// Clone returns a deep copy of the wishlist so callers can hand it across
// goroutines without sharing item or contribution slices.
func (w Wishlist) Clone() Wishlist {
	dup := w
	if w.Items == nil {
		return dup
	}
	dup.Items = make([]Item, len(w.Items))
	for idx, item := range w.Items {
		dup.Items[idx] = item.Clone()
	}
	return dup
}

// Clone returns a deep copy of the item.
func (i Item) Clone() Item {
	dup := i
	if i.Contributions != nil {
		dup.Contributions = make([]Contribution, len(i.Contributions))
		copy(dup.Contributions, i.Contributions)
	}
	return dup
}

package api

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/five82/cumplesito/internal/wishlist"
)

// ToWishlist converts the wire shape into the domain aggregate.
func ToWishlist(dto WishlistDTO) wishlist.Wishlist {
	w := wishlist.Wishlist{
		ID:                     dto.ID,
		Title:                  dto.Title,
		OwnerName:              dto.OwnerName,
		OwnerID:                dto.OwnerID,
		EventDate:              parseEventDate(dto.EventDate),
		Description:            dto.Description,
		Profile:                deref(dto.BirthdayPersonProfile),
		AllowAnonymousPurchase: dto.AllowAnonymousPurchase,
		ShareableLink:          dto.ShareableLink,
		CreatedAt:              parseTime(dto.CreatedAt),
		UpdatedAt:              parseTime(dto.UpdatedAt),
	}
	if dto.Items != nil {
		w.Items = make([]wishlist.Item, len(dto.Items))
		for idx, item := range dto.Items {
			w.Items[idx] = ToItem(item)
		}
	}
	return w
}

// FromWishlist is the inverse of ToWishlist.
func FromWishlist(w wishlist.Wishlist) WishlistDTO {
	dto := WishlistDTO{
		ID:                     w.ID,
		Title:                  w.Title,
		OwnerName:              w.OwnerName,
		OwnerID:                w.OwnerID,
		EventDate:              formatEventDate(w.EventDate),
		Description:            w.Description,
		BirthdayPersonProfile:  optional(w.Profile),
		AllowAnonymousPurchase: w.AllowAnonymousPurchase,
		ShareableLink:          w.ShareableLink,
		CreatedAt:              formatTime(w.CreatedAt),
		UpdatedAt:              formatTime(w.UpdatedAt),
	}
	if w.Items != nil {
		dto.Items = make([]ItemDTO, len(w.Items))
		for idx, item := range w.Items {
			dto.Items[idx] = FromItem(item)
		}
	}
	return dto
}

// ToItem converts a wire item. The item type is kept as sent; anything but
// pooled_gift behaves as a standard item. Malformed amounts read as zero.
func ToItem(dto ItemDTO) wishlist.Item {
	item := wishlist.Item{
		ID:            dto.ID,
		WishlistID:    dto.WishlistID,
		Title:         dto.Title,
		Description:   dto.Description,
		ImageURL:      deref(dto.ImageURL),
		ProductURL:    deref(dto.ProductURL),
		Type:          wishlist.ItemType(dto.ItemType),
		IsPurchased:   dto.IsPurchased,
		PurchasedBy:   deref(dto.PurchasedBy),
		IsReserved:    dto.IsReserved,
		ReservedBy:    deref(dto.ReservedBy),
		TargetAmount:  toDecimal(dto.TargetAmount),
		CurrentAmount: toDecimal(dto.CurrentAmount),
		CreatedAt:     parseTime(dto.CreatedAt),
		UpdatedAt:     parseTime(dto.UpdatedAt),
	}
	if dto.Contributions != nil {
		item.Contributions = make([]wishlist.Contribution, len(dto.Contributions))
		for idx, c := range dto.Contributions {
			item.Contributions[idx] = wishlist.Contribution{
				ContributorName: c.ContributorName,
				Amount:          toDecimal(&c.Amount),
				Message:         deref(c.Message),
				CreatedAt:       parseTime(c.CreatedAt),
			}
		}
	}
	return item
}

// FromItem is the inverse of ToItem. Amounts are sent for pooled items and
// whenever they are non-zero.
func FromItem(item wishlist.Item) ItemDTO {
	dto := ItemDTO{
		ID:          item.ID,
		WishlistID:  item.WishlistID,
		Title:       item.Title,
		Description: item.Description,
		ImageURL:    optional(item.ImageURL),
		ProductURL:  optional(item.ProductURL),
		ItemType:    string(item.Type),
		IsPurchased: item.IsPurchased,
		PurchasedBy: optional(item.PurchasedBy),
		IsReserved:  item.IsReserved,
		ReservedBy:  optional(item.ReservedBy),
		CreatedAt:   formatTime(item.CreatedAt),
		UpdatedAt:   formatTime(item.UpdatedAt),
	}
	if item.IsPooled() || !item.TargetAmount.IsZero() {
		dto.TargetAmount = fromDecimal(item.TargetAmount)
	}
	if item.IsPooled() || !item.CurrentAmount.IsZero() {
		dto.CurrentAmount = fromDecimal(item.CurrentAmount)
	}
	if item.Contributions != nil {
		dto.Contributions = make([]ContributionDTO, len(item.Contributions))
		for idx, c := range item.Contributions {
			dto.Contributions[idx] = ContributionDTO{
				ContributorName: c.ContributorName,
				Amount:          json.Number(c.Amount.String()),
				Message:         optional(c.Message),
				CreatedAt:       formatTime(c.CreatedAt),
			}
		}
	}
	return dto
}

// FromItemInput builds the create/edit body from a validated form.
func FromItemInput(in wishlist.ItemInput) ItemRequest {
	kind := string(in.Type.Normalize())
	req := ItemRequest{
		Title:       &in.Title,
		Description: &in.Description,
		ImageURL:    optional(in.ImageURL),
		ProductURL:  optional(in.ProductURL),
		ItemType:    &kind,
	}
	if in.Type.Normalize() == wishlist.TypePooled {
		req.TargetAmount = fromDecimal(in.TargetAmount)
	}
	return req
}

// ToUser converts the wire user.
func ToUser(dto UserDTO) wishlist.User {
	return wishlist.User{
		ID:        dto.ID,
		Name:      dto.Name,
		Email:     dto.Email,
		CreatedAt: parseTime(dto.CreatedAt),
	}
}

// FromUser is the inverse of ToUser.
func FromUser(u wishlist.User) UserDTO {
	return UserDTO{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: formatTime(u.CreatedAt),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func toDecimal(n *json.Number) decimal.Decimal {
	if n == nil || *n == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(n.String())
	if err != nil {
		return decimal.Zero
	}
	return d
}

func fromDecimal(d decimal.Decimal) *json.Number {
	n := json.Number(d.String())
	return &n
}

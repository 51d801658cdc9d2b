package api

import (
	"encoding/json"
	"time"
)

// UserDTO mirrors the user payload returned by /auth/register and /auth/me.
type UserDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at,omitempty"`
}

// TokenDTO mirrors the /auth/login response.
type TokenDTO struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type,omitempty"`
}

// LoginRequest is the /auth/login body.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the /auth/register body.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// WishlistDTO mirrors a wishlist as the record store sends it.
type WishlistDTO struct {
	ID                     string    `json:"id"`
	Title                  string    `json:"title"`
	OwnerName              string    `json:"owner_name"`
	OwnerID                string    `json:"owner_id"`
	EventDate              string    `json:"event_date"`
	Description            string    `json:"description"`
	BirthdayPersonProfile  *string   `json:"birthday_person_profile,omitempty"`
	AllowAnonymousPurchase bool      `json:"allow_anonymous_purchase"`
	Items                  []ItemDTO `json:"items"`
	CreatedAt              string    `json:"created_at,omitempty"`
	UpdatedAt              string    `json:"updated_at,omitempty"`
	ShareableLink          string    `json:"shareable_link,omitempty"`
}

// ItemDTO mirrors a wishlist item.
type ItemDTO struct {
	ID            string            `json:"id"`
	WishlistID    string            `json:"wishlist_id,omitempty"`
	Title         string            `json:"title"`
	Description   string            `json:"description"`
	ImageURL      *string           `json:"image_url,omitempty"`
	ProductURL    *string           `json:"product_url,omitempty"`
	ItemType      string            `json:"item_type,omitempty"`
	IsPurchased   bool              `json:"is_purchased"`
	PurchasedBy   *string           `json:"purchased_by,omitempty"`
	IsReserved    bool              `json:"is_reserved"`
	ReservedBy    *string           `json:"reserved_by,omitempty"`
	TargetAmount  *json.Number      `json:"target_amount,omitempty"`
	CurrentAmount *json.Number      `json:"current_amount,omitempty"`
	Contributions []ContributionDTO `json:"contributions,omitempty"`
	CreatedAt     string            `json:"created_at,omitempty"`
	UpdatedAt     string            `json:"updated_at,omitempty"`
}

// ContributionDTO mirrors one pooled-gift contribution.
type ContributionDTO struct {
	ContributorName string      `json:"contributor_name"`
	Amount          json.Number `json:"amount"`
	Message         *string     `json:"message,omitempty"`
	CreatedAt       string      `json:"created_at,omitempty"`
}

// CreateWishlistRequest is the POST /wishlists body.
type CreateWishlistRequest struct {
	Title                  string `json:"title"`
	OwnerName              string `json:"owner_name"`
	EventDate              string `json:"event_date"`
	Description            string `json:"description"`
	AllowAnonymousPurchase bool   `json:"allow_anonymous_purchase"`
}

// ItemRequest is the body for creating or editing an item. Nil fields are
// left untouched by the record store on edit.
type ItemRequest struct {
	Title        *string      `json:"title,omitempty"`
	Description  *string      `json:"description,omitempty"`
	ImageURL     *string      `json:"image_url,omitempty"`
	ProductURL   *string      `json:"product_url,omitempty"`
	ItemType     *string      `json:"item_type,omitempty"`
	TargetAmount *json.Number `json:"target_amount,omitempty"`
}

// PurchaseRequest is the POST .../purchase body.
type PurchaseRequest struct {
	PurchasedBy string `json:"purchased_by"`
}

// ReserveRequest is the POST .../reserve body.
type ReserveRequest struct {
	ReservedBy string `json:"reserved_by"`
}

// ContributionRequest is the POST .../contributions body.
type ContributionRequest struct {
	ContributorName string      `json:"contributor_name"`
	Amount          json.Number `json:"amount"`
	Message         string      `json:"message,omitempty"`
}

// MetadataRequest is the /metadata/extract body.
type MetadataRequest struct {
	URL string `json:"url"`
}

// Metadata is the best-effort scrape of a product page.
type Metadata struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
}

// ErrorDTO is the error envelope. Detail is a string or a list of
// validation problems.
type ErrorDTO struct {
	Detail json.RawMessage `json:"detail"`
}

const (
	eventDateLayout = "2006-01-02"
	naiveLayout     = "2006-01-02T15:04:05.999999999"
	naiveSeconds    = "2006-01-02T15:04:05"
	naiveMicros     = "2006-01-02T15:04:05.000000"
)

// naiveUTC tags timestamps the record store sent without a zone so that
// formatTime writes them back without one.
var naiveUTC = time.FixedZone("UTC", 0)

func parseTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	// Naive timestamps from the record store are UTC.
	if t, err := time.ParseInLocation(naiveLayout, value, naiveUTC); err == nil {
		return t
	}
	return time.Time{}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	if t.Location() == naiveUTC {
		switch {
		case t.Nanosecond() == 0:
			return t.Format(naiveSeconds)
		case t.Nanosecond()%1000 == 0:
			return t.Format(naiveMicros)
		}
		return t.Format(naiveLayout)
	}
	return t.Format(time.RFC3339Nano)
}

func parseEventDate(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	if t, err := time.Parse(eventDateLayout, value); err == nil {
		return t
	}
	t := parseTime(value)
	if t.IsZero() {
		return t
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func formatEventDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(eventDateLayout)
}

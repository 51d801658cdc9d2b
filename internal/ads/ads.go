// Package ads describes the decorative ad slots shown on a few screens.
//
// The terminal cannot render a real ad network unit, so a slot always renders
// as a framed banner. With ads disabled (or a placeholder publisher id) the
// banner shows the size it reserves; with ads enabled it shows the publisher
// and slot ids it would serve.
package ads

import (
	"fmt"
	"strings"
)

// Slot names a place in the interface that may carry an ad.
type Slot string

const (
	HomeTop        Slot = "HOME_TOP"
	HomeSidebar    Slot = "HOME_SIDEBAR"
	WishlistTop    Slot = "WISHLIST_TOP"
	WishlistInline Slot = "WISHLIST_INLINE"
	MyListsTop     Slot = "MY_LISTS_TOP"
)

// PlaceholderPublisher is the publisher id shipped in sample configs. It never
// counts as configured.
const PlaceholderPublisher = "ca-pub-XXXXXXXXXXXXXXXX"

var defaultSlotIDs = map[Slot]string{
	HomeTop:        "1234567890",
	HomeSidebar:    "0987654321",
	WishlistTop:    "1122334455",
	WishlistInline: "5544332211",
	MyListsTop:     "6677889900",
}

// Size is a banner footprint in CSS pixels.
type Size struct {
	Name   string
	Width  int
	Height int
}

var (
	Small  = Size{Name: "small", Width: 320, Height: 100}
	Medium = Size{Name: "medium", Width: 728, Height: 90}
	Large  = Size{Name: "large", Width: 970, Height: 90}
)

// SizeFor picks the banner footprint for a terminal width in columns.
func SizeFor(columns int) Size {
	switch {
	case columns >= 120:
		return Large
	case columns >= 80:
		return Medium
	default:
		return Small
	}
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Config controls ad rendering.
type Config struct {
	Enabled     bool
	PublisherID string
	SlotIDs     map[Slot]string
}

// Active reports whether live ads are configured.
func (c Config) Active() bool {
	id := strings.TrimSpace(c.PublisherID)
	return c.Enabled && id != "" && id != PlaceholderPublisher
}

// SlotID returns the ad unit id configured for slot.
func (c Config) SlotID(slot Slot) string {
	if id, ok := c.SlotIDs[slot]; ok && id != "" {
		return id
	}
	return defaultSlotIDs[slot]
}

// ScriptURL is the ad network loader URL for the configured publisher.
func (c Config) ScriptURL() string {
	return "https://pagead2.googlesyndication.com/pagead/js/adsbygoogle.js?client=" + strings.TrimSpace(c.PublisherID)
}

// Banner is what one slot renders.
type Banner struct {
	Slot   Slot
	SlotID string
	Size   Size
	Live   bool
	// Detail is the second line of the banner: the reserved size for a
	// placeholder, the publisher and unit ids for a live slot.
	Detail string
}

// Banner builds the banner for slot at the given terminal width.
func (c Config) Banner(slot Slot, columns int) Banner {
	size := SizeFor(columns)
	if slot == WishlistInline {
		size = Small
	}
	b := Banner{Slot: slot, SlotID: c.SlotID(slot), Size: size, Live: c.Active()}
	if b.Live {
		b.Detail = fmt.Sprintf("%s · %s", strings.TrimSpace(c.PublisherID), b.SlotID)
	} else {
		b.Detail = size.String()
	}
	return b
}

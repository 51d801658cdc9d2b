package ui

import (
	"errors"
	"net/url"
	"strconv"
	"strings"
)

// ErrInvalidLink is returned when a pasted value is neither a wishlist id nor
// a share link.
var ErrInvalidLink = errors.New("not a wishlist link")

// ParseLink extracts the wishlist id from a share link such as
// https://cumplesito.app/wishlist/<id>?owner=true, or accepts a bare id. The
// owner query flag is reported but grants nothing beyond UI controls.
func ParseLink(raw string) (id string, owner bool, err error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false, ErrInvalidLink
	}
	if !strings.Contains(raw, "/") && !strings.ContainsAny(raw, " ?#") {
		return raw, false, nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", false, ErrInvalidLink
	}
	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i := 0; i+1 < len(segments); i++ {
		if segments[i] == "wishlist" && segments[i+1] != "" {
			owner, _ = strconv.ParseBool(u.Query().Get("owner"))
			return segments[i+1], owner, nil
		}
	}
	return "", false, ErrInvalidLink
}

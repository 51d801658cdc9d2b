package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// ErrNotFound matches any *Error carrying a 404.
var ErrNotFound = errors.New("not found")

// Error is a non-2xx answer from the record store.
type Error struct {
	Method string
	Path   string
	Status int
	Detail string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api %s %s returned status %d: %s", e.Method, e.Path, e.Status, e.Detail)
	}
	return fmt.Sprintf("api %s %s returned status %d", e.Method, e.Path, e.Status)
}

// Is lets errors.Is(err, ErrNotFound) match 404 responses.
func (e *Error) Is(target error) bool {
	return target == ErrNotFound && e.Status == http.StatusNotFound
}

// Unauthorized reports whether the token was missing, expired or rejected.
func (e *Error) Unauthorized() bool {
	return e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden
}

// UserMessage returns the server-supplied detail when err carries one, and
// fallback otherwise.
func UserMessage(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return fallback
}

// IsUnauthorized reports whether err is a 401/403 from the record store.
func IsUnauthorized(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Unauthorized()
}

// SoftError wraps a metadata extraction failure. Blocked is set when the
// product site is known to refuse scraping.
type SoftError struct {
	URL     string
	Blocked bool
	Err     error
}

func (e *SoftError) Error() string {
	if e.Blocked {
		return fmt.Sprintf("metadata for %s unavailable (site blocks extraction): %v", e.URL, e.Err)
	}
	return fmt.Sprintf("metadata for %s unavailable: %v", e.URL, e.Err)
}

func (e *SoftError) Unwrap() error { return e.Err }

var blockedHosts = []string{"mercadolibre.", "mercadolivre.", "meli.la"}

func isBlockedHost(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return false
	}
	host := strings.ToLower(u.Hostname())
	for _, marker := range blockedHosts {
		if strings.Contains(host, marker) {
			return true
		}
	}
	return false
}

// IsBlockedHost reports whether productURL points at a site that refuses
// metadata extraction.
func IsBlockedHost(productURL string) bool {
	return isBlockedHost(strings.TrimSpace(productURL))
}

// parseDetail pulls a human-readable message out of an error body. The
// detail field is either a string or a list of {loc, msg} objects.
func parseDetail(raw []byte) string {
	if len(raw) == 0 {
		return ""
	}
	var envelope ErrorDTO
	if err := json.Unmarshal(raw, &envelope); err != nil || len(envelope.Detail) == 0 {
		return ""
	}
	var text string
	if err := json.Unmarshal(envelope.Detail, &text); err == nil {
		return strings.TrimSpace(text)
	}
	var problems []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(envelope.Detail, &problems); err == nil {
		for _, p := range problems {
			if msg := strings.TrimSpace(p.Msg); msg != "" {
				return msg
			}
		}
	}
	return ""
}

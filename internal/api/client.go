package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/five82/cumplesito/internal/logging"
	"github.com/five82/cumplesito/internal/wishlist"
)

// Backend is the set of record-store calls the rest of the client needs.
// *Client implements it; tests substitute fakes.
type Backend interface {
	GetWishlist(ctx context.Context, id string) (*wishlist.Wishlist, error)
	ListWishlists(ctx context.Context) ([]wishlist.Wishlist, error)
	CreateWishlist(ctx context.Context, form wishlist.NewWishlist) (*wishlist.Wishlist, error)
	DeleteWishlist(ctx context.Context, id string) error
	AddItem(ctx context.Context, wishlistID string, in wishlist.ItemInput) (*wishlist.Item, error)
	UpdateItem(ctx context.Context, wishlistID, itemID string, in wishlist.ItemInput) (*wishlist.Item, error)
	DeleteItem(ctx context.Context, wishlistID, itemID string) error
	Purchase(ctx context.Context, wishlistID, itemID, name string) (*wishlist.Item, error)
	Unpurchase(ctx context.Context, wishlistID, itemID string) (*wishlist.Item, error)
	Reserve(ctx context.Context, wishlistID, itemID, name string) (*wishlist.Item, error)
	Unreserve(ctx context.Context, wishlistID, itemID string) (*wishlist.Item, error)
	Contribute(ctx context.Context, wishlistID, itemID string, c wishlist.ContributionInput) (*wishlist.Item, error)
	ExtractMetadata(ctx context.Context, productURL string) (Metadata, error)
}

var _ Backend = (*Client)(nil)

// TokenSource supplies the bearer token for authenticated calls. An empty
// token means the request goes out anonymously.
type TokenSource interface {
	Token() string
}

// Client talks to the Cumplesito record store over HTTP.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
	tokens    TokenSource
	log       logrus.FieldLogger
}

const (
	DefaultBaseURL   = "http://localhost:8000/api"
	defaultUserAgent = "cumplesito/0.1"
	requestTimeout   = 10 * time.Second
	maxErrorBody     = 64 << 10
)

// Option customizes a Client.
type Option func(*Client)

// WithTimeout overrides the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithTokenSource attaches bearer tokens to every request.
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.tokens = ts }
}

// WithLogger routes request logging to log.
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// NewClient builds a Client for the API rooted at baseURL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	c := &Client{
		baseURL:   base,
		http:      &http.Client{Timeout: requestTimeout},
		userAgent: defaultUserAgent,
		log:       logging.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the API root the client talks to.
func (c *Client) BaseURL() string {
	if c == nil {
		return ""
	}
	return c.baseURL.String()
}

// Register creates an account.
func (c *Client) Register(ctx context.Context, form wishlist.Registration) (*wishlist.User, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	body := RegisterRequest{Name: form.Name, Email: form.Email, Password: form.Password}
	var payload UserDTO
	if err := c.do(ctx, http.MethodPost, &body, &payload, "auth", "register"); err != nil {
		return nil, err
	}
	user := ToUser(payload)
	return &user, nil
}

// Login exchanges credentials for an access token.
func (c *Client) Login(ctx context.Context, creds wishlist.Credentials) (string, error) {
	if c == nil {
		return "", fmt.Errorf("client is nil")
	}
	body := LoginRequest{Email: creds.Email, Password: creds.Password}
	var payload TokenDTO
	if err := c.do(ctx, http.MethodPost, &body, &payload, "auth", "login"); err != nil {
		return "", err
	}
	if strings.TrimSpace(payload.AccessToken) == "" {
		return "", fmt.Errorf("login response missing access_token")
	}
	return payload.AccessToken, nil
}

// Me returns the account the token belongs to.
func (c *Client) Me(ctx context.Context, token string) (*wishlist.User, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload UserDTO
	if err := c.send(ctx, http.MethodGet, token, nil, &payload, "auth", "me"); err != nil {
		return nil, err
	}
	user := ToUser(payload)
	return &user, nil
}

// ListWishlists returns the signed-in user's wishlists.
func (c *Client) ListWishlists(ctx context.Context) ([]wishlist.Wishlist, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload []WishlistDTO
	if err := c.do(ctx, http.MethodGet, nil, &payload, "wishlists"); err != nil {
		return nil, err
	}
	out := make([]wishlist.Wishlist, 0, len(payload))
	for _, dto := range payload {
		out = append(out, ToWishlist(dto))
	}
	return out, nil
}

// CreateWishlist creates a wishlist owned by the signed-in user.
func (c *Client) CreateWishlist(ctx context.Context, form wishlist.NewWishlist) (*wishlist.Wishlist, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	body := CreateWishlistRequest{
		Title:                  form.Title,
		OwnerName:              form.OwnerName,
		EventDate:              strings.TrimSpace(form.EventDate),
		Description:            form.Description,
		AllowAnonymousPurchase: form.AllowAnonymousPurchase,
	}
	var payload WishlistDTO
	if err := c.do(ctx, http.MethodPost, &body, &payload, "wishlists"); err != nil {
		return nil, err
	}
	w := ToWishlist(payload)
	return &w, nil
}

// GetWishlist fetches a wishlist with its items. A missing wishlist is not
// an error: it returns (nil, nil).
func (c *Client) GetWishlist(ctx context.Context, id string) (*wishlist.Wishlist, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload WishlistDTO
	if err := c.do(ctx, http.MethodGet, nil, &payload, "wishlists", id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	w := ToWishlist(payload)
	return &w, nil
}

// DeleteWishlist removes a wishlist and all of its items.
func (c *Client) DeleteWishlist(ctx context.Context, id string) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	return c.do(ctx, http.MethodDelete, nil, nil, "wishlists", id)
}

// AddItem appends an item to a wishlist.
func (c *Client) AddItem(ctx context.Context, wishlistID string, in wishlist.ItemInput) (*wishlist.Item, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	body := FromItemInput(in)
	return c.itemCall(ctx, http.MethodPost, &body, "wishlists", wishlistID, "items")
}

// UpdateItem edits an item's descriptive fields.
func (c *Client) UpdateItem(ctx context.Context, wishlistID, itemID string, in wishlist.ItemInput) (*wishlist.Item, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	body := FromItemInput(in)
	return c.itemCall(ctx, http.MethodPut, &body, "wishlists", wishlistID, "items", itemID)
}

// DeleteItem removes an item.
func (c *Client) DeleteItem(ctx context.Context, wishlistID, itemID string) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	return c.do(ctx, http.MethodDelete, nil, nil, "wishlists", wishlistID, "items", itemID)
}

// Purchase marks a standard item as bought by name.
func (c *Client) Purchase(ctx context.Context, wishlistID, itemID, name string) (*wishlist.Item, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	body := PurchaseRequest{PurchasedBy: name}
	return c.itemCall(ctx, http.MethodPost, &body, "wishlists", wishlistID, "items", itemID, "purchase")
}

// Unpurchase clears a purchase.
func (c *Client) Unpurchase(ctx context.Context, wishlistID, itemID string) (*wishlist.Item, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	return c.itemCall(ctx, http.MethodDelete, nil, "wishlists", wishlistID, "items", itemID, "purchase")
}

// Reserve holds a standard item for name.
func (c *Client) Reserve(ctx context.Context, wishlistID, itemID, name string) (*wishlist.Item, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	body := ReserveRequest{ReservedBy: name}
	return c.itemCall(ctx, http.MethodPost, &body, "wishlists", wishlistID, "items", itemID, "reserve")
}

// Unreserve releases a reservation.
func (c *Client) Unreserve(ctx context.Context, wishlistID, itemID string) (*wishlist.Item, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	return c.itemCall(ctx, http.MethodDelete, nil, "wishlists", wishlistID, "items", itemID, "reserve")
}

// Contribute pledges money toward a pooled item.
func (c *Client) Contribute(ctx context.Context, wishlistID, itemID string, in wishlist.ContributionInput) (*wishlist.Item, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	body := ContributionRequest{
		ContributorName: in.ContributorName,
		Amount:          json.Number(in.Amount.String()),
		Message:         strings.TrimSpace(in.Message),
	}
	return c.itemCall(ctx, http.MethodPost, &body, "wishlists", wishlistID, "items", itemID, "contributions")
}

// ExtractMetadata asks the record store to scrape a product page. Any
// failure comes back as a *SoftError; callers treat it as a hint, never as a
// reason to block the form.
func (c *Client) ExtractMetadata(ctx context.Context, productURL string) (Metadata, error) {
	if c == nil {
		return Metadata{}, fmt.Errorf("client is nil")
	}
	target := strings.TrimSpace(productURL)
	soft := &SoftError{URL: target, Blocked: isBlockedHost(target)}
	body := MetadataRequest{URL: target}
	var payload Metadata
	if err := c.do(ctx, http.MethodPost, &body, &payload, "metadata", "extract"); err != nil {
		soft.Err = err
		return Metadata{}, soft
	}
	if payload.Title == "" && payload.Description == "" && payload.Image == "" {
		soft.Err = errors.New("no metadata found")
		return Metadata{}, soft
	}
	return payload, nil
}

func (c *Client) itemCall(ctx context.Context, method string, body any, segments ...string) (*wishlist.Item, error) {
	var payload ItemDTO
	if err := c.do(ctx, method, body, &payload, segments...); err != nil {
		return nil, err
	}
	if payload.ID == "" {
		// Some endpoints answer with an empty body; the caller refreshes anyway.
		return nil, nil
	}
	item := ToItem(payload)
	return &item, nil
}

func (c *Client) do(ctx context.Context, method string, body, dest any, segments ...string) error {
	token := ""
	if c.tokens != nil {
		token = c.tokens.Token()
	}
	return c.send(ctx, method, token, body, dest, segments...)
}

func (c *Client) send(ctx context.Context, method, token string, body, dest any, segments ...string) error {
	reqURL := c.baseURL.JoinPath(segments...)
	path := reqURL.Path

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	log := c.log.WithFields(logrus.Fields{
		"method":     method,
		"path":       path,
		"request_id": requestID,
	})
	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		log.WithError(err).Warn("request failed")
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	log = log.WithFields(logrus.Fields{
		"status":  resp.StatusCode,
		"elapsed": time.Since(started).Round(time.Millisecond),
	})
	if resp.StatusCode >= 400 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		apiErr := &Error{Method: method, Path: path, Status: resp.StatusCode, Detail: parseDetail(raw)}
		if resp.StatusCode == http.StatusNotFound {
			log.Debug("not found")
		} else {
			log.WithField("detail", apiErr.Detail).Warn("api error")
		}
		return apiErr
	}
	log.Debug("request ok")

	if dest == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api url %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse api url %q: missing host", raw)
	}
	u.Path = strings.TrimRight(u.Path, "/")
	u.RawPath = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}

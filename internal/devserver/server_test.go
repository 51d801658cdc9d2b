package devserver

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/five82/cumplesito/internal/api"
	"github.com/five82/cumplesito/internal/wishlist"
)

type staticToken struct{ token string }

func (s *staticToken) Token() string { return s.token }

type harness struct {
	server *Server
	http   *httptest.Server
	tokens *staticToken
	client *api.Client
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	srv := New(Options{Secret: "test", BcryptCost: bcrypt.MinCost, FrontendURL: "http://front.test"})
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	tokens := &staticToken{}
	client, err := api.NewClient(ts.URL+"/api", api.WithTokenSource(tokens), api.WithTimeout(2*time.Second))
	require.NoError(t, err)
	return &harness{server: srv, http: ts, tokens: tokens, client: client}
}

func (h *harness) signIn(t *testing.T, name, email string) wishlist.User {
	t.Helper()
	ctx := context.Background()
	_, err := h.client.Register(ctx, wishlist.Registration{Name: name, Email: email, Password: "secret1"})
	require.NoError(t, err)
	token, err := h.client.Login(ctx, wishlist.Credentials{Email: email, Password: "secret1"})
	require.NoError(t, err)
	h.tokens.token = token
	user, err := h.client.Me(ctx, token)
	require.NoError(t, err)
	return *user
}

func (h *harness) createList(t *testing.T, allowAnonymous bool) wishlist.Wishlist {
	t.Helper()
	w, err := h.client.CreateWishlist(context.Background(), wishlist.NewWishlist{
		Title:                  "Cumple",
		OwnerName:              "Sofía",
		EventDate:              "2026-11-20",
		Description:            "Ideas",
		AllowAnonymousPurchase: allowAnonymous,
	})
	require.NoError(t, err)
	return *w
}

func TestAuthFlow(t *testing.T) {
	h := newHarness(t)
	user := h.signIn(t, "Sofía", "Sofi@Example.com")
	assert.Equal(t, "sofi@example.com", user.Email)

	_, err := h.client.Register(context.Background(), wishlist.Registration{Name: "Otra", Email: "sofi@example.com", Password: "secret1"})
	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "Email already registered", apiErr.Detail)

	_, err = h.client.Login(context.Background(), wishlist.Credentials{Email: "sofi@example.com", Password: "wrong"})
	assert.True(t, api.IsUnauthorized(err))

	_, err = h.client.Me(context.Background(), "garbage")
	assert.True(t, api.IsUnauthorized(err))
}

func TestWishlistLifecycle(t *testing.T) {
	h := newHarness(t)
	owner := h.signIn(t, "Sofía", "sofi@example.com")
	ctx := context.Background()

	w := h.createList(t, false)
	assert.Equal(t, owner.ID, w.OwnerID)
	assert.Equal(t, "http://front.test/wishlist/"+w.ID, w.ShareableLink)
	assert.Equal(t, time.Date(2026, 11, 20, 0, 0, 0, 0, time.UTC), w.EventDate)

	item, err := h.client.AddItem(ctx, w.ID, wishlist.ItemInput{Title: "Lego", Description: "Set grande"})
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, wishlist.TypeStandard, item.Type)

	edited, err := h.client.UpdateItem(ctx, w.ID, item.ID, wishlist.ItemInput{Title: "Lego Technic", Description: "Set grande"})
	require.NoError(t, err)
	assert.Equal(t, "Lego Technic", edited.Title)

	mine, err := h.client.ListWishlists(ctx)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.Len(t, mine[0].Items, 1)

	require.NoError(t, h.client.DeleteItem(ctx, w.ID, item.ID))
	got, err := h.client.GetWishlist(ctx, w.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Items)

	require.NoError(t, h.client.DeleteWishlist(ctx, w.ID))
	got, err = h.client.GetWishlist(ctx, w.ID)
	require.NoError(t, err)
	assert.Nil(t, got, "deleted wishlist reads as absent")
}

func TestOwnerOnlyEdits(t *testing.T) {
	h := newHarness(t)
	h.signIn(t, "Sofía", "sofi@example.com")
	w := h.createList(t, false)

	h.signIn(t, "Intruso", "intruso@example.com")
	_, err := h.client.AddItem(context.Background(), w.ID, wishlist.ItemInput{Title: "x", Description: "y"})
	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.Status)

	h.tokens.token = ""
	_, err = h.client.AddItem(context.Background(), w.ID, wishlist.ItemInput{Title: "x", Description: "y"})
	assert.True(t, api.IsUnauthorized(err))
}

func TestVisitorActions(t *testing.T) {
	h := newHarness(t)
	h.signIn(t, "Sofía", "sofi@example.com")
	w := h.createList(t, true)
	ctx := context.Background()
	item, err := h.client.AddItem(ctx, w.ID, wishlist.ItemInput{Title: "Lego", Description: "Set"})
	require.NoError(t, err)
	h.tokens.token = ""

	reserved, err := h.client.Reserve(ctx, w.ID, item.ID, "Carlos")
	require.NoError(t, err)
	assert.Equal(t, wishlist.StateReserved, reserved.State())

	_, err = h.client.Reserve(ctx, w.ID, item.ID, "Otro")
	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)

	bought, err := h.client.Purchase(ctx, w.ID, item.ID, "")
	require.NoError(t, err)
	assert.Equal(t, AnonymousName, bought.PurchasedBy)
	assert.False(t, bought.IsReserved)

	cleared, err := h.client.Unpurchase(ctx, w.ID, item.ID)
	require.NoError(t, err)
	assert.Equal(t, wishlist.StateAvailable, cleared.State())
}

func TestPurchaseNeedsNameWithoutAnonymous(t *testing.T) {
	h := newHarness(t)
	h.signIn(t, "Sofía", "sofi@example.com")
	w := h.createList(t, false)
	item, err := h.client.AddItem(context.Background(), w.ID, wishlist.ItemInput{Title: "Lego", Description: "Set"})
	require.NoError(t, err)

	_, err = h.client.Purchase(context.Background(), w.ID, item.ID, "  ")
	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Name is required", apiErr.Detail)
}

func TestContributions(t *testing.T) {
	h := newHarness(t)
	h.signIn(t, "Sofía", "sofi@example.com")
	w := h.createList(t, false)
	ctx := context.Background()
	item, err := h.client.AddItem(ctx, w.ID, wishlist.ItemInput{
		Title: "Bici", Description: "Roja", Type: wishlist.TypePooled, TargetAmount: decimal.NewFromInt(100),
	})
	require.NoError(t, err)
	assert.True(t, item.TargetAmount.Equal(decimal.NewFromInt(100)))

	after, err := h.client.Contribute(ctx, w.ID, item.ID, wishlist.ContributionInput{
		ContributorName: "Marta", Amount: decimal.RequireFromString("60.50"), Message: "¡Feliz cumple!",
	})
	require.NoError(t, err)
	assert.True(t, after.CurrentAmount.Equal(decimal.RequireFromString("60.5")))
	require.Len(t, after.Contributions, 1)
	assert.Equal(t, "¡Feliz cumple!", after.Contributions[0].Message)

	_, err = h.client.Contribute(ctx, w.ID, item.ID, wishlist.ContributionInput{ContributorName: "Pablo", Amount: decimal.NewFromInt(50)})
	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Amount exceeds remaining 39.50", apiErr.Detail)

	funded, err := h.client.Contribute(ctx, w.ID, item.ID, wishlist.ContributionInput{ContributorName: "Pablo", Amount: decimal.RequireFromString("39.5")})
	require.NoError(t, err)
	assert.Equal(t, wishlist.StateFunded, funded.State())
}

func TestValidationProblemsUseFieldList(t *testing.T) {
	h := newHarness(t)
	h.signIn(t, "Sofía", "sofi@example.com")
	w := h.createList(t, false)

	req, err := http.NewRequest(http.MethodPost, h.http.URL+"/api/wishlists/"+w.ID+"/items", strings.NewReader(`{"title":"  ","item_type":"pooled_gift"}`))
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+h.tokens.token)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, string(body), `"loc":["body","target_amount"]`)
	assert.Contains(t, string(body), `"loc":["body","title"]`)
}

func TestUnknownWishlist(t *testing.T) {
	h := newHarness(t)
	got, err := h.client.GetWishlist(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = h.client.Reserve(context.Background(), "nope", "item", "Carlos")
	assert.True(t, errors.Is(err, api.ErrNotFound))
}

func TestMetricsExposed(t *testing.T) {
	h := newHarness(t)
	_, _ = h.client.GetWishlist(context.Background(), "nope")

	resp, err := http.Get(h.http.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `cumplesito_http_requests_total{method="GET",route="/api/wishlists/:id",status="404"} 1`)
}

func TestSeed(t *testing.T) {
	h := newHarness(t)
	id, err := Seed(h.server.Store())
	require.NoError(t, err)

	w, err := h.client.GetWishlist(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, w)
	require.Len(t, w.Items, 4)
	assert.NotEmpty(t, w.Profile)

	counts := w.Count()
	assert.Equal(t, 1, counts.Reserved)
	assert.Equal(t, 1, counts.Purchased)
	assert.True(t, w.Items[3].CurrentAmount.Equal(decimal.NewFromInt(75)))
}

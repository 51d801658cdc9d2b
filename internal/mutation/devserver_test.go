package mutation

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/five82/cumplesito/internal/api"
	"github.com/five82/cumplesito/internal/devserver"
	"github.com/five82/cumplesito/internal/state"
	"github.com/five82/cumplesito/internal/wishlist"
)

type tokenHolder struct{ token string }

func (t *tokenHolder) Token() string { return t.token }

// TestAgainstDevServer drives a full visitor session through the real HTTP
// client and the in-memory record store.
func TestAgainstDevServer(t *testing.T) {
	srv := devserver.New(devserver.Options{BcryptCost: bcrypt.MinCost})
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	listID, err := devserver.Seed(srv.Store())
	require.NoError(t, err)

	tokens := &tokenHolder{}
	client, err := api.NewClient(ts.URL+"/api", api.WithTokenSource(tokens), api.WithTimeout(2*time.Second))
	require.NoError(t, err)
	store := &state.Store{}
	svc := New(client, store, WithAnonymousLabel(func() string { return "Anónimo" }))
	ctx := context.Background()

	gen, err := svc.Open(ctx, listID)
	require.NoError(t, err)
	snap := store.Snapshot()
	require.True(t, snap.HasWishlist)
	items := snap.Wishlist.Items
	require.Len(t, items, 4)

	res, err := svc.Purchase(ctx, gen, items[0].ID, "")
	require.NoError(t, err)
	assert.True(t, res.Refreshed)
	bought := store.Snapshot().Wishlist.Items[0]
	assert.Equal(t, wishlist.StatePurchased, bought.State())
	assert.Equal(t, "Anónimo", bought.PurchasedBy)

	_, err = svc.Reserve(ctx, gen, items[1].ID, "Ana")
	assert.ErrorIs(t, err, wishlist.ErrInvalidTransition, "already reserved by the seed")

	_, err = svc.Contribute(ctx, gen, items[3].ID, wishlist.ContributionInput{ContributorName: "Ana", Amount: decimal.NewFromInt(500)})
	var cerr *wishlist.ContributionError
	require.ErrorAs(t, err, &cerr)
	assert.True(t, cerr.Remaining.Equal(decimal.NewFromInt(225)))

	res, err = svc.Contribute(ctx, gen, items[3].ID, wishlist.ContributionInput{ContributorName: "Ana", Amount: decimal.NewFromInt(225)})
	require.NoError(t, err)
	assert.True(t, res.Refreshed)
	assert.Equal(t, wishlist.StateFunded, store.Snapshot().Wishlist.Items[3].State())

	_, err = svc.AddItem(ctx, gen, wishlist.ItemInput{Title: "Libro", Description: "Novela"})
	assert.True(t, api.IsUnauthorized(err), "visitors cannot add items")
	assert.Len(t, store.Snapshot().Wishlist.Items, 4)

	token, err := client.Login(ctx, wishlist.Credentials{Email: devserver.DemoEmail, Password: devserver.DemoPassword})
	require.NoError(t, err)
	tokens.token = token

	res, err = svc.AddItem(ctx, gen, wishlist.ItemInput{Title: "Libro", Description: "Novela"})
	require.NoError(t, err)
	assert.True(t, res.Refreshed)
	after := store.Snapshot().Wishlist.Items
	require.Len(t, after, 5)
	assert.Equal(t, "Libro", after[4].Title, "server order is kept")

	_, err = svc.DeleteItem(ctx, gen, after[4].ID)
	require.NoError(t, err)
	assert.Len(t, store.Snapshot().Wishlist.Items, 4)

	mine, err := svc.Mine(ctx)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, listID, mine[0].ID)

	require.NoError(t, svc.DeleteWishlist(ctx, listID))
	_, err = svc.Open(ctx, listID)
	require.NoError(t, err)
	assert.True(t, store.Snapshot().NotFound)
}

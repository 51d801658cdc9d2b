package devserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/five82/cumplesito/internal/api"
)

const productPage = `<!doctype html>
<html><head>
<title>Fallback title</title>
<meta property="og:title" content="Molino de café">
<meta name="description" content="Muelas cónicas">
<meta property="og:image" content="/img/molino.jpg">
</head><body><h1>Molino</h1></body></html>`

func TestParseMetadata(t *testing.T) {
	base, _ := url.Parse("https://shop.example.com/p/molino")
	meta, err := ParseMetadata(strings.NewReader(productPage), base)
	require.NoError(t, err)
	assert.Equal(t, api.Metadata{
		Title:       "Molino de café",
		Description: "Muelas cónicas",
		Image:       "https://shop.example.com/img/molino.jpg",
	}, meta)
}

func TestParseMetadataFallsBackToTitle(t *testing.T) {
	meta, err := ParseMetadata(strings.NewReader(`<html><head><title> Plain </title></head></html>`), nil)
	require.NoError(t, err)
	assert.Equal(t, "Plain", meta.Title)
	assert.Empty(t, meta.Image)
}

func TestExtractThroughServer(t *testing.T) {
	shop := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/p/molino":
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte(productPage))
		case "/empty":
			_, _ = w.Write([]byte("<html></html>"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer shop.Close()

	srv := New(Options{BcryptCost: bcrypt.MinCost})
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()
	client, err := api.NewClient(ts.URL+"/api", api.WithTimeout(2*time.Second))
	require.NoError(t, err)
	ctx := context.Background()

	meta, err := client.ExtractMetadata(ctx, shop.URL+"/p/molino")
	require.NoError(t, err)
	assert.Equal(t, "Molino de café", meta.Title)
	assert.Equal(t, shop.URL+"/img/molino.jpg", meta.Image)

	_, err = client.ExtractMetadata(ctx, shop.URL+"/empty")
	var soft *api.SoftError
	require.ErrorAs(t, err, &soft)
	assert.False(t, soft.Blocked)

	_, err = client.ExtractMetadata(ctx, shop.URL+"/missing")
	require.ErrorAs(t, err, &soft)
}

func TestExtractBlockedHost(t *testing.T) {
	_, err := NewScraper(nil).Extract(context.Background(), "https://articulo.mercadolibre.com.mx/MLM-123")
	assert.ErrorIs(t, err, ErrBlockedSite)

	_, err = NewScraper(nil).Extract(context.Background(), "ftp://example.com/file")
	assert.ErrorIs(t, err, ErrInvalidURL)
}

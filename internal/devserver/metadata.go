package devserver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/five82/cumplesito/internal/api"
)

var (
	// ErrBlockedSite is returned for stores that refuse scraping.
	ErrBlockedSite = errors.New("site blocks automatic extraction")
	// ErrNoMetadata is returned when a page carries nothing usable.
	ErrNoMetadata  = errors.New("no metadata found")
	// ErrInvalidURL rejects anything but absolute http(s) URLs.
	ErrInvalidURL  = errors.New("invalid url")
	// ErrFetchFailed wraps network and HTTP failures fetching the page.
	ErrFetchFailed = errors.New("fetch page failed")
)

const (
	maxPageBytes = 2 << 20
	scrapeAgent  = "Mozilla/5.0 (compatible; cumplesito-devserver/0.1)"
)

// Scraper pulls a title, description and image out of a product page using
// Open Graph tags with HTML fallbacks.
type Scraper struct {
	http *http.Client
}

// NewScraper returns a Scraper. A nil client gets a 10s timeout client.
func NewScraper(hc *http.Client) *Scraper {
	if hc == nil {
		hc = &http.Client{Timeout: 10 * time.Second}
	}
	return &Scraper{http: hc}
}

// Extract fetches pageURL and reads its metadata.
func (s *Scraper) Extract(ctx context.Context, pageURL string) (api.Metadata, error) {
	target, err := url.Parse(strings.TrimSpace(pageURL))
	if err != nil || (target.Scheme != "http" && target.Scheme != "https") || target.Host == "" {
		return api.Metadata{}, fmt.Errorf("%w: %q", ErrInvalidURL, pageURL)
	}
	if api.IsBlockedHost(target.String()) {
		return api.Metadata{}, ErrBlockedSite
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return api.Metadata{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", scrapeAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := s.http.Do(req)
	if err != nil {
		return api.Metadata{}, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode == http.StatusForbidden {
		return api.Metadata{}, ErrBlockedSite
	}
	if resp.StatusCode >= 400 {
		return api.Metadata{}, fmt.Errorf("%w: status %d", ErrFetchFailed, resp.StatusCode)
	}

	meta, err := ParseMetadata(io.LimitReader(resp.Body, maxPageBytes), resp.Request.URL)
	if err != nil {
		return api.Metadata{}, err
	}
	if meta.Title == "" && meta.Description == "" && meta.Image == "" {
		return api.Metadata{}, ErrNoMetadata
	}
	return meta, nil
}

// ParseMetadata reads metadata from an HTML document. Relative image URLs are
// resolved against base.
func ParseMetadata(r io.Reader, base *url.URL) (api.Metadata, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return api.Metadata{}, fmt.Errorf("parse html: %w", err)
	}

	found := map[string]string{}
	var title string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "meta":
				key := strings.ToLower(attr(n, "property"))
				if key == "" {
					key = strings.ToLower(attr(n, "name"))
				}
				content := strings.TrimSpace(attr(n, "content"))
				if key != "" && content != "" {
					if _, seen := found[key]; !seen {
						found[key] = content
					}
				}
			case "title":
				if title == "" && n.FirstChild != nil {
					title = strings.TrimSpace(n.FirstChild.Data)
				}
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)

	meta := api.Metadata{
		Title:       first(found["og:title"], found["twitter:title"], title),
		Description: first(found["og:description"], found["twitter:description"], found["description"]),
		Image:       first(found["og:image"], found["og:image:url"], found["twitter:image"]),
	}
	if meta.Image != "" && base != nil {
		if ref, err := url.Parse(meta.Image); err == nil {
			meta.Image = base.ResolveReference(ref).String()
		}
	}
	return meta, nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			return a.Val
		}
	}
	return ""
}

func first(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

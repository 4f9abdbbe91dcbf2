package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fwojciec/sitescrape"
	"github.com/fwojciec/sitescrape/etree"
	sitehttp "github.com/fwojciec/sitescrape/http"
	"github.com/fwojciec/sitescrape/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSitemapService_URLs(t *testing.T) {
	t.Parallel()

	t.Run("fetches and parses the sitemap", func(t *testing.T) {
		t.Parallel()

		sitemapXML := `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url><loc>{{BASE}}/docs/intro</loc></url>
  <url><loc>{{BASE}}/docs/guide</loc></url>
  <url><loc>{{BASE}}/docs/api</loc></url>
</urlset>`

		srv := newTestServer(t, map[string]string{
			"/sitemap.xml": sitemapXML,
		})
		defer srv.Close()

		fetcher := sitehttp.NewFetcher(sitehttp.WithClient(srv.Client()))
		defer fetcher.Close()

		svc := sitehttp.NewSitemapService(fetcher, etree.NewSitemapParser())
		urls, err := svc.URLs(context.Background(), srv.URL+"/sitemap.xml", 2)

		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/docs/intro", srv.URL + "/docs/guide"}, urls)
	})

	t.Run("propagates fetch errors", func(t *testing.T) {
		t.Parallel()

		srv := newTestServer(t, map[string]string{})
		defer srv.Close()

		fetcher := sitehttp.NewFetcher(sitehttp.WithClient(srv.Client()))
		defer fetcher.Close()

		svc := sitehttp.NewSitemapService(fetcher, etree.NewSitemapParser())
		_, err := svc.URLs(context.Background(), srv.URL+"/sitemap.xml", 5)

		require.Error(t, err)
		assert.Equal(t, sitescrape.EFETCH, sitescrape.ErrorCode(err))
		assert.Contains(t, err.Error(), "404")
	})

	t.Run("propagates parse errors", func(t *testing.T) {
		t.Parallel()

		srv := newTestServer(t, map[string]string{
			"/sitemap.xml": "<urlset><</urlset>",
		})
		defer srv.Close()

		fetcher := sitehttp.NewFetcher(sitehttp.WithClient(srv.Client()))
		defer fetcher.Close()

		svc := sitehttp.NewSitemapService(fetcher, etree.NewSitemapParser())
		_, err := svc.URLs(context.Background(), srv.URL+"/sitemap.xml", 5)

		require.Error(t, err)
		assert.Equal(t, sitescrape.EPARSE, sitescrape.ErrorCode(err))
	})

	t.Run("passes body and limit to parser", func(t *testing.T) {
		t.Parallel()

		var gotXML string
		var gotN int
		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				assert.Equal(t, "https://example.com/sitemap.xml", url)
				return "<urlset/>", nil
			},
		}
		parser := &mock.SitemapParser{
			ParseURLsFn: func(xml string, n int) ([]string, error) {
				gotXML, gotN = xml, n
				return []string{}, nil
			},
		}

		svc := sitehttp.NewSitemapService(fetcher, parser)
		urls, err := svc.URLs(context.Background(), "https://example.com/sitemap.xml", 7)

		require.NoError(t, err)
		assert.Empty(t, urls)
		assert.Equal(t, "<urlset/>", gotXML)
		assert.Equal(t, 7, gotN)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		svc := sitehttp.NewSitemapService(&mock.Fetcher{}, &mock.SitemapParser{})
		_, err := svc.URLs(ctx, "https://example.com/sitemap.xml", 5)

		require.ErrorIs(t, err, context.Canceled)
	})
}

// newTestServer creates a test HTTP server with the given path->content mapping.
// Content strings may contain {{BASE}} which is replaced with the server URL.
func newTestServer(t *testing.T, content map[string]string) *httptest.Server {
	t.Helper()

	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := content[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		body = strings.ReplaceAll(body, "{{BASE}}", srv.URL)

		w.Header().Set("Content-Type", "application/xml")
		_, _ = w.Write([]byte(body))
	}))

	return srv
}

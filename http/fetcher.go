// Package http provides HTTP implementations of sitescrape.Fetcher and
// sitescrape.SitemapService. A single http.Client acts as the session
// shared by every request of a run.
package http

import (
	"context"
	"io"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/fwojciec/sitescrape"
	"golang.org/x/net/html/charset"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 30 * time.Second

// Ensure Fetcher implements sitescrape.Fetcher at compile time.
var _ sitescrape.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves documents using plain HTTP GET requests.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for each request. Zero disables the timeout.
// Defaults to DefaultFetchTimeout if not specified.
// Ignored when a client is supplied with WithClient.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithClient makes the Fetcher use c instead of creating its own client.
func WithClient(c *http.Client) Option {
	return func(f *Fetcher) {
		f.client = c
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher with its own connection pool.
// Close must be called when the Fetcher is no longer needed.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.client == nil {
		f.client = &http.Client{
			Timeout:   f.timeout,
			Transport: http.DefaultTransport.(*http.Transport).Clone(),
		}
	}

	return f
}

// Fetch retrieves the document at url and returns its body decoded to UTF-8.
// Any status other than 200 is an EFETCH error.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", sitescrape.Wrapf(err, sitescrape.EFETCH, "invalid URL %q", url)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", sitescrape.Wrapf(err, sitescrape.EFETCH, "GET %s", url)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", sitescrape.Errorf(sitescrape.EFETCH, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", sitescrape.Wrapf(err, sitescrape.EFETCH, "reading %s", url)
	}

	return decode(body, resp.Header.Get("Content-Type"))
}

// Close releases idle connections held by the session.
func (f *Fetcher) Close() error {
	f.client.CloseIdleConnections()
	return nil
}

// decode converts body to UTF-8 using the charset declared in the
// Content-Type header or the document itself. Bodies that are already
// valid UTF-8 are returned unchanged unless a charset was declared in
// the header.
func decode(body []byte, contentType string) (string, error) {
	enc, name, certain := charset.DetermineEncoding(body, contentType)
	if name == "utf-8" || (!certain && utf8.Valid(body)) {
		return string(body), nil
	}

	decoded, err := enc.NewDecoder().Bytes(body)
	if err != nil {
		return "", sitescrape.Wrapf(err, sitescrape.EFETCH, "decoding %s body", name)
	}
	return string(decoded), nil
}

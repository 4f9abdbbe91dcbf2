// Package scrape orchestrates a sitemap scrape. It coordinates sitemap
// discovery, a concurrent fetch stage and a concurrent clean stage, and
// assembles the cleaned pages in sitemap order.
package scrape

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/fwojciec/sitescrape"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Scraper runs the fetch-and-clean pipeline for one sitemap.
type Scraper struct {
	Sitemaps sitescrape.SitemapService
	Fetcher  sitescrape.Fetcher
	Cleaner  sitescrape.Cleaner

	// Concurrency bounds the number of pages fetched or cleaned at once.
	// Zero or less starts every page at the same time.
	Concurrency int

	// KeepGoing records per-page failures in Result.Errors instead of
	// aborting the whole run on the first one.
	KeepGoing bool

	// Progress, if set, receives events as pages are fetched.
	// Calls are serialized.
	Progress ProgressFunc

	mu sync.Mutex
}

// ProgressEvent reports progress during a scrape.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting scrape progress.
type ProgressFunc func(event ProgressEvent)

// Run fetches the sitemap at sitemapURL, then fetches and cleans its first
// n pages. Page i of the result is always the i-th sitemap URL, whatever
// order the requests complete in.
//
// Unless KeepGoing is set, the first fetch or clean error cancels the
// remaining work and Run returns that error with no result.
func (s *Scraper) Run(ctx context.Context, sitemapURL string, n int) (*sitescrape.Result, error) {
	if n < 1 {
		return nil, sitescrape.Errorf(sitescrape.EINVALID, "page limit must be positive, got %d", n)
	}

	urls, err := s.Sitemaps.URLs(ctx, sitemapURL, n)
	if err != nil {
		return nil, fmt.Errorf("sitemap: %w", err)
	}

	total := len(urls)
	s.notify(ProgressEvent{Type: ProgressStarted, Total: total})

	var completed atomic.Int64
	bodies, fetchErrs, err := fanOut(ctx, urls, s.Concurrency, s.KeepGoing,
		func(ctx context.Context, _ int, url string) (string, error) {
			html, err := s.Fetcher.Fetch(ctx, url)
			event := ProgressEvent{
				Type:      ProgressCompleted,
				Completed: int(completed.Add(1)),
				Total:     total,
				URL:       url,
			}
			if err != nil {
				event.Type = ProgressFailed
				event.Error = err
			}
			s.notify(event)
			return html, err
		})
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pages, cleanErrs, err := fanOut(ctx, bodies, s.Concurrency, s.KeepGoing,
		func(_ context.Context, i int, html string) (*sitescrape.Page, error) {
			if fetchErrs[i] != nil {
				return nil, nil
			}
			page, err := s.Cleaner.Clean(html)
			if err != nil {
				return nil, fmt.Errorf("cleaning %s: %w", urls[i], err)
			}
			if page == nil {
				return nil, sitescrape.Errorf(sitescrape.EINTERNAL, "cleaner returned no page for %s", urls[i])
			}
			return page, nil
		})
	if err != nil {
		return nil, err
	}

	result := &sitescrape.Result{
		ID:         uuid.NewString(),
		SitemapURL: sitemapURL,
		Pages:      make([]*sitescrape.Page, 0, total),
	}
	for i, url := range urls {
		index := i + 1
		if err := firstErr(fetchErrs[i], cleanErrs[i]); err != nil {
			result.Errors = append(result.Errors, &sitescrape.PageError{Index: index, URL: url, Err: err})
			continue
		}
		page := pages[i]
		page.Index = index
		page.URL = url
		page.Hash = ComputeHash(page.Text)
		result.Pages = append(result.Pages, page)
	}

	s.notify(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})

	return result, nil
}

func (s *Scraper) notify(event ProgressEvent) {
	if s.Progress == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Progress(event)
}

// fanOut calls fn for every item concurrently, at most limit at a time
// (unbounded when limit <= 0), and returns the results in input order.
//
// Without keepGoing the first error cancels the context passed to the
// other calls and is returned as the third value. With keepGoing errors are
// reported per item in the second value and the third is always nil.
func fanOut[T, R any](ctx context.Context, items []T, limit int, keepGoing bool, fn func(ctx context.Context, i int, item T) (R, error)) ([]R, []error, error) {
	results := make([]R, len(items))
	errs := make([]error, len(items))

	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, item := range items {
		g.Go(func() error {
			r, err := fn(gctx, i, item)
			if err != nil {
				if !keepGoing {
					return err
				}
				errs[i] = err
				return nil
			}
			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return results, errs, nil
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

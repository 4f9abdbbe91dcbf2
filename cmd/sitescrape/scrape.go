package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fwojciec/sitescrape/scrape"
)

// ScrapeCmd scrapes one sitemap and prints the result.
type ScrapeCmd struct {
	SitemapURL string
	Pages      int
	Format     string
	Progress   bool
	Now        func() time.Time
}

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	now := c.Now
	if now == nil {
		now = time.Now
	}
	start := now()

	if c.Progress {
		s := newSpinner(deps.Stderr)
		deps.Scraper.Progress = spinnerProgress(s)
		s.Start()
		defer s.Stop()
	}

	result, err := deps.Scraper.Run(deps.Ctx, c.SitemapURL, c.Pages)
	if err != nil {
		reportError(deps.Stderr, err)
		return err
	}
	if deps.Logger != nil {
		deps.Logger.Info("scrape", "id", result.ID, "pages", result.Len(), "failed", len(result.Errors))
	}

	switch c.Format {
	case "json":
		err = scrape.WriteJSON(deps.Stdout, result)
	default:
		err = scrape.WriteText(deps.Stdout, result)
	}
	if err != nil {
		err = fmt.Errorf("writing output: %w", err)
		reportError(deps.Stderr, err)
		return err
	}

	for _, pe := range result.Errors {
		fmt.Fprintf(deps.Stderr, "page %d (%s) failed: %s\n", pe.Index, pe.URL, errorText(pe.Err))
	}

	// Keep stdout valid JSON.
	out := deps.Stdout
	if c.Format == "json" {
		out = deps.Stderr
	}
	fmt.Fprintf(out, "Scraping completed in %s\n", now().Sub(start))
	return nil
}

func newSpinner(w io.Writer) *spinner.Spinner {
	opts := []spinner.Option{
		spinner.WithWriter(w),
		spinner.WithSuffix(" fetching sitemap"),
	}
	// The terminal check looks at the file, which defaults to stdout.
	if f, ok := w.(*os.File); ok {
		opts = append(opts, spinner.WithWriterFile(f))
	}
	return spinner.New(spinner.CharSets[9], 100*time.Millisecond, opts...)
}

// spinnerProgress drives an already started spinner from scrape progress
// events. The spinner only renders when its writer is a terminal.
func spinnerProgress(s *spinner.Spinner) scrape.ProgressFunc {
	return func(event scrape.ProgressEvent) {
		switch event.Type {
		case scrape.ProgressStarted:
			s.Lock()
			s.Suffix = fmt.Sprintf(" fetching 0/%d", event.Total)
			s.Unlock()
		case scrape.ProgressCompleted, scrape.ProgressFailed:
			s.Lock()
			s.Suffix = fmt.Sprintf(" fetching %d/%d %s", event.Completed, event.Total, scrape.TruncateURL(event.URL, 50))
			s.Unlock()
		case scrape.ProgressFinished:
			s.Stop()
		}
	}
}

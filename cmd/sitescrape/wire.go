package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	charmlog "github.com/charmbracelet/log"
	"github.com/fwojciec/sitescrape"
	"github.com/fwojciec/sitescrape/etree"
	"github.com/fwojciec/sitescrape/goquery"
	"github.com/fwojciec/sitescrape/htmltomarkdown"
	sitehttp "github.com/fwojciec/sitescrape/http"
	"github.com/fwojciec/sitescrape/readability"
	"github.com/fwojciec/sitescrape/rod"
	"github.com/fwojciec/sitescrape/scrape"
	siteslog "github.com/fwojciec/sitescrape/slog"
	"github.com/fwojciec/sitescrape/trafilatura"
)

// Dependencies holds the services a command needs.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Scraper *scrape.Scraper
	Logger  *slog.Logger
}

// wire builds the scraper described by cli. The returned cleanup releases
// the fetch sessions and must be called on every exit path.
func (m *Main) wire(cli *CLI, stderr io.Writer) (*Dependencies, func(), error) {
	filter, err := sitescrape.NewURLFilter(cli.Include, cli.Exclude)
	if err != nil {
		return nil, nil, err
	}

	parserOpts := []etree.Option{etree.WithFilter(filter)}
	if cli.AnyNamespace {
		parserOpts = append(parserOpts, etree.WithNamespaceFallback())
	}
	if cli.Unique {
		parserOpts = append(parserOpts, etree.WithDedupe())
	}

	fetcherOpts := []sitehttp.Option{sitehttp.WithTimeout(cli.Timeout)}
	if cli.UserAgent != "" {
		fetcherOpts = append(fetcherOpts, sitehttp.WithUserAgent(cli.UserAgent))
	}
	httpFetcher := sitehttp.NewFetcher(fetcherOpts...)

	// The sitemap is plain XML and never needs a browser.
	var pages sitescrape.Fetcher = httpFetcher
	closers := []func() error{httpFetcher.Close}
	cleanup := func() {
		for _, c := range closers {
			_ = c()
		}
	}

	if cli.Browser {
		rodFetcher, err := rod.NewFetcher(rod.WithFetchTimeout(cli.Timeout))
		if err != nil {
			cleanup()
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return nil, nil, fmt.Errorf("failed to start browser: %w", err)
		}
		pages = rodFetcher
		closers = append(closers, rodFetcher.Close)
	}

	cleaner, err := newCleaner(cli.Extractor)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	var sitemaps sitescrape.SitemapService = sitehttp.NewSitemapService(httpFetcher, etree.NewSitemapParser(parserOpts...))

	deps := &Dependencies{}
	if cli.Verbose {
		logger := newLogger(stderr)
		sitemaps = siteslog.NewLoggingSitemapService(sitemaps, logger)
		pages = siteslog.NewLoggingFetcher(pages, logger)
		cleaner = siteslog.NewLoggingCleaner(cleaner, logger)
		deps.Logger = logger
	}

	deps.Scraper = &scrape.Scraper{
		Sitemaps:    sitemaps,
		Fetcher:     pages,
		Cleaner:     cleaner,
		Concurrency: cli.Concurrency,
		KeepGoing:   cli.KeepGoing,
	}
	return deps, cleanup, nil
}

func newCleaner(name string) (sitescrape.Cleaner, error) {
	switch name {
	case "", "clean":
		return goquery.NewCleaner(), nil
	case "readability":
		return readability.NewCleaner(), nil
	case "trafilatura":
		return trafilatura.NewCleaner(), nil
	case "markdown":
		return htmltomarkdown.NewCleaner(goquery.NewCleaner()), nil
	}
	return nil, sitescrape.Errorf(sitescrape.EINVALID, "unknown extractor %q", name)
}

// newLogger returns a debug-level slog.Logger backed by a charmbracelet
// handler writing to w.
func newLogger(w io.Writer) *slog.Logger {
	handler := charmlog.NewWithOptions(w, charmlog.Options{
		Level:           charmlog.DebugLevel,
		ReportTimestamp: true,
		Prefix:          "sitescrape",
	})
	return slog.New(handler)
}

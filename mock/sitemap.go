package mock

import (
	"context"

	"github.com/fwojciec/sitescrape"
)

var _ sitescrape.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of sitescrape.SitemapService.
type SitemapService struct {
	URLsFn func(ctx context.Context, sitemapURL string, n int) ([]string, error)
}

func (s *SitemapService) URLs(ctx context.Context, sitemapURL string, n int) ([]string, error) {
	return s.URLsFn(ctx, sitemapURL, n)
}

var _ sitescrape.SitemapParser = (*SitemapParser)(nil)

// SitemapParser is a mock implementation of sitescrape.SitemapParser.
type SitemapParser struct {
	ParseURLsFn func(xml string, n int) ([]string, error)
}

func (p *SitemapParser) ParseURLs(xml string, n int) ([]string, error) {
	return p.ParseURLsFn(xml, n)
}

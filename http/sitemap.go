package http

import (
	"context"

	"github.com/fwojciec/sitescrape"
)

// Ensure SitemapService implements sitescrape.SitemapService.
var _ sitescrape.SitemapService = (*SitemapService)(nil)

// SitemapService downloads a sitemap through a Fetcher and hands the XML
// to a SitemapParser. Only flat <urlset> sitemaps are supported.
type SitemapService struct {
	fetcher sitescrape.Fetcher
	parser  sitescrape.SitemapParser
}

// NewSitemapService creates a new SitemapService. The fetcher is usually
// the same *Fetcher used for pages so that all requests share one session.
func NewSitemapService(fetcher sitescrape.Fetcher, parser sitescrape.SitemapParser) *SitemapService {
	return &SitemapService{fetcher: fetcher, parser: parser}
}

// URLs fetches the sitemap at sitemapURL and returns at most n page URLs
// in document order.
func (s *SitemapService) URLs(ctx context.Context, sitemapURL string, n int) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	xml, err := s.fetcher.Fetch(ctx, sitemapURL)
	if err != nil {
		return nil, err
	}

	return s.parser.ParseURLs(xml, n)
}

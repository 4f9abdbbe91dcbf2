package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/sitescrape"
)

// Ensure LoggingSitemapService implements sitescrape.SitemapService.
var _ sitescrape.SitemapService = (*LoggingSitemapService)(nil)

// LoggingSitemapService wraps a SitemapService with debug logging.
type LoggingSitemapService struct {
	next   sitescrape.SitemapService
	logger *slog.Logger
}

// NewLoggingSitemapService creates a new LoggingSitemapService.
func NewLoggingSitemapService(next sitescrape.SitemapService, logger *slog.Logger) *LoggingSitemapService {
	return &LoggingSitemapService{next: next, logger: logger}
}

// URLs delegates to the wrapped service and logs the operation.
func (s *LoggingSitemapService) URLs(ctx context.Context, sitemapURL string, n int) (urls []string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("sitemap",
			"url", sitemapURL,
			"limit", n,
			"count", len(urls),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.URLs(ctx, sitemapURL, n)
}

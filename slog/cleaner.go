package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/sitescrape"
)

// Ensure LoggingCleaner implements sitescrape.Cleaner.
var _ sitescrape.Cleaner = (*LoggingCleaner)(nil)

// LoggingCleaner wraps a Cleaner with debug logging.
type LoggingCleaner struct {
	next   sitescrape.Cleaner
	logger *slog.Logger
}

// NewLoggingCleaner creates a new LoggingCleaner.
func NewLoggingCleaner(next sitescrape.Cleaner, logger *slog.Logger) *LoggingCleaner {
	return &LoggingCleaner{next: next, logger: logger}
}

// Clean delegates to the wrapped cleaner and logs title and text size.
func (c *LoggingCleaner) Clean(html string) (page *sitescrape.Page, err error) {
	defer func(begin time.Time) {
		attrs := []any{"bytes", len(html)}
		if page != nil {
			attrs = append(attrs, "title", page.Title, "chars", len(page.Text))
		}
		attrs = append(attrs, "duration", time.Since(begin), "err", err)
		c.logger.Info("clean", attrs...)
	}(time.Now())
	return c.next.Clean(html)
}

// Package trafilatura implements sitescrape.Cleaner with
// github.com/markusmobius/go-trafilatura.
package trafilatura

import (
	"strings"

	"github.com/fwojciec/sitescrape"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Cleaner implements sitescrape.Cleaner at compile time.
var _ sitescrape.Cleaner = (*Cleaner)(nil)

// Cleaner wraps go-trafilatura to reduce a page to its main content text.
type Cleaner struct {
	opts trafilatura.Options
}

// NewCleaner creates a new Cleaner with fallback extractors enabled.
func NewCleaner() *Cleaner {
	return &Cleaner{
		opts: trafilatura.Options{
			EnableFallback: true,
		},
	}
}

// Clean returns the page title from metadata and the whitespace-normalized
// main content text.
func (c *Cleaner) Clean(rawHTML string) (*sitescrape.Page, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, sitescrape.Errorf(sitescrape.EINVALID, "empty HTML input")
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), c.opts)
	if err != nil {
		return nil, sitescrape.Wrapf(err, sitescrape.EPARSE, "trafilatura")
	}

	title := sitescrape.NormalizeSpace(result.Metadata.Title)
	if title == "" {
		title = sitescrape.DefaultTitle
	}

	return &sitescrape.Page{
		Title: title,
		Text:  sitescrape.NormalizeSpace(result.ContentText),
	}, nil
}

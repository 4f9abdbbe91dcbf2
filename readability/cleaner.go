// Package readability implements sitescrape.Cleaner with
// github.com/go-shiori/go-readability, keeping only the main article.
package readability

import (
	"strings"

	"github.com/fwojciec/sitescrape"
	"github.com/go-shiori/go-readability"
)

// Ensure Cleaner implements sitescrape.Cleaner at compile time.
var _ sitescrape.Cleaner = (*Cleaner)(nil)

// Cleaner wraps go-readability to reduce a page to its main article text.
type Cleaner struct{}

// NewCleaner creates a new Cleaner.
func NewCleaner() *Cleaner {
	return &Cleaner{}
}

// Clean returns the article title and its whitespace-normalized text.
func (c *Cleaner) Clean(rawHTML string) (*sitescrape.Page, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, sitescrape.Errorf(sitescrape.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, sitescrape.Wrapf(err, sitescrape.EPARSE, "readability")
	}

	title := sitescrape.NormalizeSpace(article.Title)
	if title == "" {
		title = sitescrape.DefaultTitle
	}

	return &sitescrape.Page{
		Title: title,
		Text:  sitescrape.NormalizeSpace(article.TextContent),
	}, nil
}

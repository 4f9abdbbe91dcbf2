// Package htmltomarkdown implements sitescrape.Cleaner producing Markdown
// with github.com/JohannesKaufmann/html-to-markdown/v2.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/sitescrape"
	"github.com/fwojciec/sitescrape/goquery"
)

// Ensure Cleaner implements sitescrape.Cleaner at compile time.
var _ sitescrape.Cleaner = (*Cleaner)(nil)

// Cleaner prunes a page with the goquery pipeline and renders what is left
// of the <body> as Markdown. Unlike the plain-text cleaner, line structure
// is kept.
type Cleaner struct {
	pruner *goquery.Cleaner
	conv   *converter.Converter
}

// NewCleaner creates a new Cleaner. A nil pruner uses goquery.NewCleaner().
func NewCleaner(pruner *goquery.Cleaner) *Cleaner {
	if pruner == nil {
		pruner = goquery.NewCleaner()
	}
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Cleaner{pruner: pruner, conv: conv}
}

// Clean returns the page title and the body as trimmed Markdown.
func (c *Cleaner) Clean(rawHTML string) (*sitescrape.Page, error) {
	doc, err := c.pruner.Prune(rawHTML)
	if err != nil {
		return nil, err
	}

	body, err := doc.Find("body").Html()
	if err != nil {
		return nil, sitescrape.Wrapf(err, sitescrape.EINTERNAL, "rendering body")
	}

	var md string
	if strings.TrimSpace(body) != "" {
		md, err = c.conv.ConvertString(body)
		if err != nil {
			return nil, sitescrape.Wrapf(err, sitescrape.EPARSE, "converting to markdown")
		}
	}

	return &sitescrape.Page{
		Title: goquery.Title(doc),
		Text:  strings.TrimSpace(md),
	}, nil
}

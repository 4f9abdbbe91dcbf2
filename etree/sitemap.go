// Package etree parses Sitemap 0.9 documents with github.com/beevik/etree.
package etree

import (
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/sitescrape"
	"github.com/fwojciec/sitescrape/bloom"
)

// Bloom filter sizing used when deduplicating sitemap entries.
const (
	dedupeExpectedURLs      = 50000
	dedupeFalsePositiveRate = 0.0001
)

// Ensure SitemapParser implements sitescrape.SitemapParser.
var _ sitescrape.SitemapParser = (*SitemapParser)(nil)

// SitemapParser extracts url/loc values from a <urlset> document.
// It does not follow <sitemapindex> entries.
type SitemapParser struct {
	namespace string
	fallback  bool
	dedupe    bool
	filter    *sitescrape.URLFilter
}

// Option configures a SitemapParser.
type Option func(*SitemapParser)

// WithNamespace overrides the namespace that url and loc elements must be in.
// Defaults to sitescrape.SitemapNamespace.
func WithNamespace(ns string) Option {
	return func(p *SitemapParser) {
		p.namespace = ns
	}
}

// WithNamespaceFallback also accepts url and loc elements that are not in
// any namespace. Without it a sitemap that omits xmlns yields no URLs.
func WithNamespaceFallback() Option {
	return func(p *SitemapParser) {
		p.fallback = true
	}
}

// WithDedupe drops repeated URLs, keeping the first occurrence.
// Duplicates are detected with a Bloom filter, so with a very small
// probability a distinct URL is dropped as well.
func WithDedupe() Option {
	return func(p *SitemapParser) {
		p.dedupe = true
	}
}

// WithFilter drops URLs that do not pass the filter.
func WithFilter(f *sitescrape.URLFilter) Option {
	return func(p *SitemapParser) {
		p.filter = f
	}
}

// NewSitemapParser creates a new SitemapParser.
func NewSitemapParser(opts ...Option) *SitemapParser {
	p := &SitemapParser{
		namespace: sitescrape.SitemapNamespace,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseURLs returns the first n url/loc values in document order.
// Filtering and deduplication happen before truncation.
func (p *SitemapParser) ParseURLs(xml string, n int) ([]string, error) {
	if n < 1 {
		return nil, sitescrape.Errorf(sitescrape.EINVALID, "page limit must be positive, got %d", n)
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromString(xml); err != nil {
		return nil, sitescrape.Wrapf(err, sitescrape.EPARSE, "parsing sitemap XML")
	}

	root := doc.Root()
	if root == nil {
		return nil, sitescrape.Errorf(sitescrape.EPARSE, "sitemap XML has no root element")
	}
	if len(doc.ChildElements()) > 1 {
		return nil, sitescrape.Errorf(sitescrape.EPARSE, "sitemap XML has content after the root element")
	}

	var seen *bloom.Filter
	if p.dedupe {
		seen = bloom.NewFilter(dedupeExpectedURLs, dedupeFalsePositiveRate)
	}

	urls := []string{}
	for _, urlEl := range root.ChildElements() {
		if !p.matches(urlEl, "url") {
			continue
		}
		for _, locEl := range urlEl.ChildElements() {
			if !p.matches(locEl, "loc") {
				continue
			}
			u := strings.TrimSpace(locEl.Text())
			if u == "" || !p.filter.Match(u) {
				continue
			}
			if seen != nil && seen.Seen(u) {
				continue
			}
			urls = append(urls, u)
			if len(urls) == n {
				return urls, nil
			}
		}
	}

	return urls, nil
}

// matches reports whether el has the given local name in the parser's namespace.
func (p *SitemapParser) matches(el *etree.Element, tag string) bool {
	if el.Tag != tag {
		return false
	}
	ns := el.NamespaceURI()
	return ns == p.namespace || (p.fallback && ns == "")
}

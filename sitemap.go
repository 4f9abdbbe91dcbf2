package sitescrape

import (
	"context"
	"regexp"
)

// SitemapNamespace is the XML namespace of the Sitemap 0.9 protocol.
// Only <url> and <loc> elements in this namespace are read unless a parser
// is explicitly configured to fall back to un-namespaced elements.
const SitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// SitemapParser extracts page URLs from sitemap XML.
type SitemapParser interface {
	// ParseURLs returns the text of every url/loc element in document order,
	// truncated to the first n. Malformed XML fails with EPARSE.
	// A document without matching elements yields an empty slice, not an error.
	ParseURLs(xml string, n int) ([]string, error)
}

// SitemapService fetches a sitemap and returns the page URLs it lists.
type SitemapService interface {
	// URLs fetches the sitemap at sitemapURL and returns at most n page URLs
	// in document order.
	URLs(ctx context.Context, sitemapURL string, n int) ([]string, error)
}

// URLFilter specifies patterns for including/excluding URLs.
type URLFilter struct {
	// Include patterns - if set, only URLs matching at least one pattern are included.
	Include []*regexp.Regexp

	// Exclude patterns - URLs matching any pattern are excluded.
	// Exclude is applied after Include.
	Exclude []*regexp.Regexp
}

// NewURLFilter compiles include and exclude patterns into a filter.
// It returns nil when both lists are empty.
func NewURLFilter(include, exclude []string) (*URLFilter, error) {
	if len(include) == 0 && len(exclude) == 0 {
		return nil, nil
	}
	f := &URLFilter{}
	for _, p := range include {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, Errorf(EINVALID, "invalid include pattern %q: %v", p, err)
		}
		f.Include = append(f.Include, re)
	}
	for _, p := range exclude {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, Errorf(EINVALID, "invalid exclude pattern %q: %v", p, err)
		}
		f.Exclude = append(f.Exclude, re)
	}
	return f, nil
}

// Match returns true if the URL passes the filter.
// If the filter is nil, all URLs pass.
func (f *URLFilter) Match(url string) bool {
	if f == nil {
		return true
	}

	if len(f.Include) > 0 {
		matched := false
		for _, re := range f.Include {
			if re.MatchString(url) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	for _, re := range f.Exclude {
		if re.MatchString(url) {
			return false
		}
	}

	return true
}

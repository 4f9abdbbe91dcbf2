package sitescrape

import "strings"

// DefaultTitle is used when a page has no title.
const DefaultTitle = "No Title"

// Cleaner reduces raw HTML to a title and plain body text.
// Implementations are pure: the same input always yields the same output.
type Cleaner interface {
	// Clean returns a Page with only Title and Text set.
	Clean(html string) (*Page, error)
}

// NormalizeSpace collapses every run of whitespace into a single space and
// trims the result.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

package sitescrape

// Page is the cleaned content of one sitemap entry.
type Page struct {
	// Index is the 1-based position of the URL in the sitemap.
	Index int
	URL   string
	Title string
	Text  string
	Hash  string
}

// PageContent is the value stored for each index of a result mapping.
type PageContent struct {
	PageContent string `json:"Page_content"`
}

// PageError records a page that could not be fetched or cleaned.
type PageError struct {
	Index int
	URL   string
	Err   error
}

// Result is the outcome of one scrape run.
// Pages are ordered by Index, which follows sitemap document order.
type Result struct {
	ID         string
	SitemapURL string
	Pages      []*Page

	// Errors is only populated when the run tolerates per-page failures.
	Errors []*PageError
}

// Len returns the number of cleaned pages.
func (r *Result) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Pages)
}

// Get returns the page with the given 1-based index.
func (r *Result) Get(index int) (*Page, bool) {
	if r == nil {
		return nil, false
	}
	for _, p := range r.Pages {
		if p.Index == index {
			return p, true
		}
	}
	return nil, false
}

// Content returns the result as a mapping from page index to content.
func (r *Result) Content() map[int]PageContent {
	m := make(map[int]PageContent, r.Len())
	if r == nil {
		return m
	}
	for _, p := range r.Pages {
		m[p.Index] = PageContent{PageContent: p.Text}
	}
	return m
}

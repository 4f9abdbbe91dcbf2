package mock

import "github.com/fwojciec/sitescrape"

var _ sitescrape.Cleaner = (*Cleaner)(nil)

// Cleaner is a mock implementation of sitescrape.Cleaner.
type Cleaner struct {
	CleanFn func(html string) (*sitescrape.Page, error)
}

func (c *Cleaner) Clean(html string) (*sitescrape.Page, error) {
	return c.CleanFn(html)
}

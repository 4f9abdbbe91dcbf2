// Package bloom detects repeated sitemap entries using a Bloom filter.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter remembers URLs it has been shown.
// It is not safe for concurrent use.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a Filter sized for n expected URLs with the given
// false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Seen reports whether url was probably shown before, and records it.
// False positives are possible; false negatives are not.
func (f *Filter) Seen(url string) bool {
	return f.f.TestAndAddString(url)
}

// Len returns the approximate number of distinct URLs recorded.
func (f *Filter) Len() uint {
	return uint(f.f.ApproximatedSize())
}

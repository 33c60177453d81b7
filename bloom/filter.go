// Package bloom provides probabilistic listing-URL deduplication for
// the run coordinator's frontier.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter tracks which listing URLs a run has already queued. False
// positives drop a URL that was never seen; false negatives cannot
// occur, so a URL is never processed twice.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a filter sized for n expected URLs with the given
// false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Seen marks the URL as queued and reports whether it had already been
// marked.
func (f *Filter) Seen(url string) bool {
	return f.f.TestAndAddString(url)
}

// Test reports whether the URL might already be queued.
func (f *Filter) Test(url string) bool {
	return f.f.TestString(url)
}

// EstimatedCount returns the approximate number of URLs queued so far.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}

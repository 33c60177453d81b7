package engine

import (
	"sync"

	"carscrape/bloom"
)

// Frontier collects listing URLs discovered during a run, in discovery
// order, with Bloom-filter deduplication. Safe for concurrent use.
type Frontier struct {
	mu   sync.Mutex
	seen *bloom.Filter
	urls []string
}

// NewFrontier creates a frontier sized for n expected URLs.
func NewFrontier(n uint) *Frontier {
	return &Frontier{seen: bloom.NewFilter(n, 0.001)}
}

// Add queues the URL unless it was already seen. Reports whether the
// URL was newly added.
func (f *Frontier) Add(url string) bool {
	if url == "" {
		return false
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.seen.Seen(url) {
		return false
	}
	f.urls = append(f.urls, url)
	return true
}

// URLs returns the queued URLs in discovery order.
func (f *Frontier) URLs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.urls))
	copy(out, f.urls)
	return out
}

// Len returns the number of queued URLs.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.urls)
}

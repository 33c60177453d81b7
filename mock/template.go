// Package mock provides mock implementations of carscrape interfaces.
package mock

import (
	"carscrape"
)

var _ carscrape.Template = (*Template)(nil)

// Template is a mock implementation of carscrape.Template.
type Template struct {
	NameFn         func() string
	RoleFn         func() carscrape.Role
	CapabilitiesFn func() carscrape.Capability
	MatchFn        func(html, pageURL string) bool
	ListingURLsFn  func(html, pageURL string) ([]string, error)
	NextPageFn     func(html, pageURL string) (string, error)
	ParseDetailFn  func(html, pageURL string) (*carscrape.ParsedRecord, error)
}

func (t *Template) Name() string {
	return t.NameFn()
}

func (t *Template) Role() carscrape.Role {
	return t.RoleFn()
}

func (t *Template) Capabilities() carscrape.Capability {
	if t.CapabilitiesFn != nil {
		return t.CapabilitiesFn()
	}
	return 0
}

func (t *Template) Match(html, pageURL string) bool {
	return t.MatchFn(html, pageURL)
}

func (t *Template) ListingURLs(html, pageURL string) ([]string, error) {
	if t.ListingURLsFn != nil {
		return t.ListingURLsFn(html, pageURL)
	}
	return nil, carscrape.Errorf(carscrape.ENOTIMPLEMENTED, "mock template does not support listing extraction")
}

func (t *Template) NextPage(html, pageURL string) (string, error) {
	if t.NextPageFn != nil {
		return t.NextPageFn(html, pageURL)
	}
	return "", carscrape.Errorf(carscrape.ENOTIMPLEMENTED, "mock template does not support pagination")
}

func (t *Template) ParseDetail(html, pageURL string) (*carscrape.ParsedRecord, error) {
	if t.ParseDetailFn != nil {
		return t.ParseDetailFn(html, pageURL)
	}
	return nil, carscrape.Errorf(carscrape.ENOTIMPLEMENTED, "mock template does not support detail parsing")
}

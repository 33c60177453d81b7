package goquery

import (
	"carscrape"
)

var _ carscrape.Template = (*ListingAjaxInfinite)(nil)

// Selectors that reveal a load-more or infinite-scroll stock page.
const ajaxTriggers = ".load-more[data-url], [data-next-page], [data-next-url], .infinite-scroll[data-url]"

// ListingAjaxInfinite handles stock pages that load further results over
// XHR. The already-rendered links are extracted normally and the
// load-more endpoint is surfaced as the next page so the run coordinator
// can walk the saved snapshots of each batch.
type ListingAjaxInfinite struct {
	baseTemplate
	cfg *carscrape.Config
}

// NewListingAjaxInfinite creates the listing_ajax_infinite template.
func NewListingAjaxInfinite(cfg *carscrape.Config) *ListingAjaxInfinite {
	return &ListingAjaxInfinite{baseTemplate{name: "listing_ajax_infinite"}, cfg}
}

func (t *ListingAjaxInfinite) Role() carscrape.Role {
	return carscrape.RoleListing
}

func (t *ListingAjaxInfinite) Capabilities() carscrape.Capability {
	return carscrape.CapListingURLs | carscrape.CapNextPage
}

// Match requires a load-more trigger alongside at least one accepted
// rendered link.
func (t *ListingAjaxInfinite) Match(html, pageURL string) bool {
	doc, _, err := parseListingPage(html, pageURL)
	if err != nil {
		return false
	}
	if doc.Find(ajaxTriggers).Length() == 0 {
		return false
	}
	urls, err := t.ListingURLs(html, pageURL)
	return err == nil && len(urls) > 0
}

// ListingURLs returns the accepted links already rendered on the page.
func (t *ListingAjaxInfinite) ListingURLs(html, pageURL string) ([]string, error) {
	doc, base, err := parseListingPage(html, pageURL)
	if err != nil {
		return nil, err
	}
	return acceptedAnchors(doc.Selection, base, t.cfg), nil
}

// NextPage returns the load-more endpoint, resolved against the page.
func (t *ListingAjaxInfinite) NextPage(html, pageURL string) (string, error) {
	doc, base, err := parseListingPage(html, pageURL)
	if err != nil {
		return "", err
	}
	trigger := doc.Find(ajaxTriggers).First()
	if trigger.Length() == 0 {
		return "", nil
	}
	href := firstAttr(trigger, "data-url", "data-next-url", "data-next-page", "href")
	if href == "" || isNonHTTPLink(href) {
		return "", nil
	}
	return resolveURL(base, href), nil
}

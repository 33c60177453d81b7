package goquery

import (
	"carscrape"
	"github.com/PuerkitoBio/goquery"
)

var _ carscrape.Template = (*ListingSection)(nil)

// ListingSection is the loosest listing template: it scans section and
// main containers for accepted detail links. It runs after the grid and
// card templates so a structured layout always wins.
type ListingSection struct {
	baseTemplate
	cfg *carscrape.Config
}

// NewListingSection creates the listing_section template.
func NewListingSection(cfg *carscrape.Config) *ListingSection {
	return &ListingSection{baseTemplate{name: "listing_section"}, cfg}
}

func (t *ListingSection) Role() carscrape.Role {
	return carscrape.RoleListing
}

func (t *ListingSection) Capabilities() carscrape.Capability {
	return carscrape.CapListingURLs | carscrape.CapNextPage
}

// Match requires at least one accepted link in a section container.
func (t *ListingSection) Match(html, pageURL string) bool {
	urls, err := t.ListingURLs(html, pageURL)
	return err == nil && len(urls) > 0
}

// ListingURLs returns accepted links found in section, main and
// listing-class containers.
func (t *ListingSection) ListingURLs(html, pageURL string) ([]string, error) {
	doc, base, err := parseListingPage(html, pageURL)
	if err != nil {
		return nil, err
	}
	var out []string
	doc.Find("section, main, .listing, .stock-list").Each(func(_ int, container *goquery.Selection) {
		out = append(out, acceptedAnchors(container, base, t.cfg)...)
	})
	return dedupe(out), nil
}

// NextPage returns the rel=next link when the section page paginates.
func (t *ListingSection) NextPage(html, pageURL string) (string, error) {
	doc, base, err := parseListingPage(html, pageURL)
	if err != nil {
		return "", err
	}
	return relNextHref(doc, base), nil
}

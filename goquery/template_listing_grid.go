package goquery

import (
	"carscrape"
	"github.com/PuerkitoBio/goquery"
)

var _ carscrape.Template = (*ListingImageGrid)(nil)

// Containers used by image-grid stock pages.
const gridContainers = ".image-grid, .vehicle-grid, ul.grid, .grid"

// ListingImageGrid extracts detail links from stock pages laid out as a
// grid of linked vehicle images.
type ListingImageGrid struct {
	baseTemplate
	cfg *carscrape.Config
}

// NewListingImageGrid creates the listing_image_grid template.
func NewListingImageGrid(cfg *carscrape.Config) *ListingImageGrid {
	return &ListingImageGrid{baseTemplate{name: "listing_image_grid"}, cfg}
}

func (t *ListingImageGrid) Role() carscrape.Role {
	return carscrape.RoleListing
}

func (t *ListingImageGrid) Capabilities() carscrape.Capability {
	return carscrape.CapListingURLs | carscrape.CapNextPage
}

// Match requires a grid container with at least one accepted image link.
func (t *ListingImageGrid) Match(html, pageURL string) bool {
	urls, err := t.ListingURLs(html, pageURL)
	return err == nil && len(urls) > 0
}

// ListingURLs returns accepted links wrapping images in grid containers.
func (t *ListingImageGrid) ListingURLs(html, pageURL string) ([]string, error) {
	doc, base, err := parseListingPage(html, pageURL)
	if err != nil {
		return nil, err
	}
	var out []string
	doc.Find(gridContainers).Each(func(_ int, grid *goquery.Selection) {
		grid.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
			if a.Find("img").Length() == 0 {
				return
			}
			href, _ := a.Attr("href")
			if isNonHTTPLink(href) {
				return
			}
			if accepted, ok := carscrape.AcceptListingURL(base, href, t.cfg); ok {
				out = append(out, accepted)
			}
		})
	})
	return dedupe(out), nil
}

// NextPage returns the rel=next link when the grid page paginates.
func (t *ListingImageGrid) NextPage(html, pageURL string) (string, error) {
	doc, base, err := parseListingPage(html, pageURL)
	if err != nil {
		return "", err
	}
	return relNextHref(doc, base), nil
}

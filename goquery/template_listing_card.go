package goquery

import (
	"carscrape"
	"github.com/PuerkitoBio/goquery"
)

var _ carscrape.Template = (*ListingCard)(nil)

// Containers used by card-based stock pages.
const cardContainers = ".vehicle-card, .listing-card, .car-card, .card, article.vehicle"

// ListingCard extracts detail links from stock pages laid out as
// repeated vehicle cards.
type ListingCard struct {
	baseTemplate
	cfg *carscrape.Config
}

// NewListingCard creates the listing_card template.
func NewListingCard(cfg *carscrape.Config) *ListingCard {
	return &ListingCard{baseTemplate{name: "listing_card"}, cfg}
}

func (t *ListingCard) Role() carscrape.Role {
	return carscrape.RoleListing
}

func (t *ListingCard) Capabilities() carscrape.Capability {
	return carscrape.CapListingURLs | carscrape.CapNextPage
}

// Match requires at least one card with an accepted link.
func (t *ListingCard) Match(html, pageURL string) bool {
	urls, err := t.ListingURLs(html, pageURL)
	return err == nil && len(urls) > 0
}

// ListingURLs returns accepted links found inside card containers.
func (t *ListingCard) ListingURLs(html, pageURL string) ([]string, error) {
	doc, base, err := parseListingPage(html, pageURL)
	if err != nil {
		return nil, err
	}
	var out []string
	doc.Find(cardContainers).Each(func(_ int, card *goquery.Selection) {
		out = append(out, acceptedAnchors(card, base, t.cfg)...)
	})
	return dedupe(out), nil
}

// NextPage returns the rel=next link when the card page paginates.
func (t *ListingCard) NextPage(html, pageURL string) (string, error) {
	doc, base, err := parseListingPage(html, pageURL)
	if err != nil {
		return "", err
	}
	return relNextHref(doc, base), nil
}

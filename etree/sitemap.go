// Package etree parses saved sitemap.xml documents into listing URLs.
package etree

import (
	"net/url"

	"carscrape"
	"github.com/beevik/etree"
)

// ListingURLs extracts the <loc> entries of a sitemap document and
// filters them through the listing-URL acceptance heuristic, so a full
// site sitemap yields only detail-page candidates. Sitemap index
// documents yield nothing; their child sitemaps must be parsed
// individually.
func ListingURLs(xml string, siteURL string, cfg *carscrape.Config) ([]string, error) {
	base, err := url.Parse(siteURL)
	if err != nil {
		return nil, carscrape.Errorf(carscrape.EINVALID, "invalid site URL: %v", err)
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromString(xml); err != nil {
		return nil, carscrape.Errorf(carscrape.EINVALID, "failed to parse sitemap: %v", err)
	}

	root := doc.Root()
	if root == nil || root.Tag != "urlset" {
		return nil, nil
	}

	var out []string
	seen := make(map[string]bool)
	for _, entry := range root.SelectElements("url") {
		loc := entry.SelectElement("loc")
		if loc == nil {
			continue
		}
		accepted, ok := carscrape.AcceptListingURL(base, loc.Text(), cfg)
		if !ok || seen[accepted] {
			continue
		}
		seen[accepted] = true
		out = append(out, accepted)
	}
	return out, nil
}

// IsIndex reports whether the document is a sitemap index rather than a
// urlset.
func IsIndex(xml string) bool {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(xml); err != nil {
		return false
	}
	root := doc.Root()
	return root != nil && root.Tag == "sitemapindex"
}

// ChildSitemaps returns the <loc> entries of a sitemap index document.
func ChildSitemaps(xml string) ([]string, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(xml); err != nil {
		return nil, carscrape.Errorf(carscrape.EINVALID, "failed to parse sitemap index: %v", err)
	}
	root := doc.Root()
	if root == nil || root.Tag != "sitemapindex" {
		return nil, nil
	}

	var out []string
	for _, entry := range root.SelectElements("sitemap") {
		if loc := entry.SelectElement("loc"); loc != nil && loc.Text() != "" {
			out = append(out, loc.Text())
		}
	}
	return out, nil
}

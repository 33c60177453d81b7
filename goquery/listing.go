package goquery

import (
	"net/url"

	"carscrape"
	"github.com/PuerkitoBio/goquery"
)

// acceptedAnchors collects the hrefs under sel that pass the listing-URL
// acceptance heuristic, resolved and deduplicated in document order.
func acceptedAnchors(sel *goquery.Selection, base *url.URL, cfg *carscrape.Config) []string {
	var out []string
	sel.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		if isNonHTTPLink(href) {
			return
		}
		if accepted, ok := carscrape.AcceptListingURL(base, href, cfg); ok {
			out = append(out, accepted)
		}
	})
	return dedupe(out)
}

// relNextHref returns the href of a rel=next link or anchor, or "".
func relNextHref(doc *goquery.Document, base *url.URL) string {
	for _, selector := range []string{`link[rel="next"]`, `a[rel="next"]`} {
		if href := firstAttr(doc.Find(selector).First(), "href"); href != "" {
			return resolveURL(base, href)
		}
	}
	return ""
}

// parseListingPage parses the document and base URL for a listing or
// pagination operation.
func parseListingPage(html, pageURL string) (*goquery.Document, *url.URL, error) {
	doc, err := parse(html)
	if err != nil {
		return nil, nil, carscrape.Errorf(carscrape.EINVALID, "failed to parse HTML: %v", err)
	}
	base, err := parseBase(pageURL)
	if err != nil {
		return nil, nil, carscrape.Errorf(carscrape.EINVALID, "invalid page URL: %v", err)
	}
	return doc, base, nil
}

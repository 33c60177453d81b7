package goquery

import (
	"net/url"
	"strings"

	"carscrape"
	"github.com/PuerkitoBio/goquery"
)

var _ carscrape.Template = (*PaginationQuery)(nil)

// PaginationQuery recognizes query-parameter pagination: rel=next links
// and next anchors whose href carries a page query parameter.
type PaginationQuery struct {
	baseTemplate
}

// NewPaginationQuery creates the pagination_query template.
func NewPaginationQuery() *PaginationQuery {
	return &PaginationQuery{baseTemplate{name: "pagination_query"}}
}

func (t *PaginationQuery) Role() carscrape.Role {
	return carscrape.RolePagination
}

func (t *PaginationQuery) Capabilities() carscrape.Capability {
	return carscrape.CapNextPage
}

// Match reports whether a query-style next link is present.
func (t *PaginationQuery) Match(html, pageURL string) bool {
	next, err := t.NextPage(html, pageURL)
	return err == nil && next != ""
}

// NextPage returns the rel=next link, or the next-labelled pagination
// anchor whose href paginates by query parameter.
func (t *PaginationQuery) NextPage(html, pageURL string) (string, error) {
	doc, base, err := parseListingPage(html, pageURL)
	if err != nil {
		return "", err
	}
	if next := relNextHref(doc, base); next != "" && hasPageParam(next) {
		return next, nil
	}
	if href := nextAnchorHref(doc, base); href != "" && hasPageParam(href) {
		return href, nil
	}
	return "", nil
}

// nextAnchorHref finds the next-labelled anchor in pagination blocks.
func nextAnchorHref(doc *goquery.Document, base *url.URL) string {
	out := ""
	doc.Find(".pagination a[href], .pager a[href], nav a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		if !isNextAnchor(a) {
			return true
		}
		href, _ := a.Attr("href")
		if isNonHTTPLink(href) {
			return true
		}
		out = resolveURL(base, href)
		return out == ""
	})
	return out
}

// isNextAnchor reports whether the anchor is labelled as a next link.
func isNextAnchor(a *goquery.Selection) bool {
	if class, _ := a.Attr("class"); strings.Contains(strings.ToLower(class), "next") {
		return true
	}
	switch strings.ToLower(Text(a)) {
	case "next", "next »", "»", "›", "→":
		return true
	}
	return false
}

// hasPageParam reports whether the URL paginates via a page query
// parameter.
func hasPageParam(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	for _, key := range []string{"page", "p", "pg", "start", "offset"} {
		if u.Query().Get(key) != "" {
			return true
		}
	}
	return false
}

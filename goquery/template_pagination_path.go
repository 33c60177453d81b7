package goquery

import (
	"net/url"
	"regexp"

	"carscrape"
)

var _ carscrape.Template = (*PaginationPath)(nil)

var pagePathRE = regexp.MustCompile(`/page/[0-9]+/?$`)

// PaginationPath recognizes path-style pagination: next links of the
// form /stock/page/3.
type PaginationPath struct {
	baseTemplate
}

// NewPaginationPath creates the pagination_path template.
func NewPaginationPath() *PaginationPath {
	return &PaginationPath{baseTemplate{name: "pagination_path"}}
}

func (t *PaginationPath) Role() carscrape.Role {
	return carscrape.RolePagination
}

func (t *PaginationPath) Capabilities() carscrape.Capability {
	return carscrape.CapNextPage
}

// Match reports whether a path-style next link is present.
func (t *PaginationPath) Match(html, pageURL string) bool {
	next, err := t.NextPage(html, pageURL)
	return err == nil && next != ""
}

// NextPage returns the rel=next link or next-labelled anchor whose href
// paginates by path segment.
func (t *PaginationPath) NextPage(html, pageURL string) (string, error) {
	doc, base, err := parseListingPage(html, pageURL)
	if err != nil {
		return "", err
	}
	if next := relNextHref(doc, base); next != "" && hasPagePath(next) {
		return next, nil
	}
	if href := nextAnchorHref(doc, base); href != "" && hasPagePath(href) {
		return href, nil
	}
	return "", nil
}

// hasPagePath reports whether the URL path ends in /page/N.
func hasPagePath(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return pagePathRE.MatchString(u.Path)
}

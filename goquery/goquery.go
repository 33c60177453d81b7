// Package goquery implements the carscrape templates using CSS-selector
// parsing. It contains the detail, listing, pagination and dealer
// strategies, the structural predicates they match on, and the shared
// JSON-LD, microdata, meta-tag and spec-table extraction helpers.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// parse builds a goquery document from raw HTML.
func parse(html string) (*goquery.Document, error) {
	return goquery.NewDocumentFromReader(strings.NewReader(html))
}

package goquery

import (
	"encoding/json"
	stdhtml "html"

	"carscrape"
	"github.com/PuerkitoBio/goquery"
)

var _ carscrape.Template = (*ListingJSONAPI)(nil)

// ListingJSONAPI extracts detail links from JSON payloads embedded in
// script blocks: application/json state dumps and window assignments
// left behind by client-rendered stock pages.
type ListingJSONAPI struct {
	baseTemplate
	cfg *carscrape.Config
}

// NewListingJSONAPI creates the listing_json_api template.
func NewListingJSONAPI(cfg *carscrape.Config) *ListingJSONAPI {
	return &ListingJSONAPI{baseTemplate{name: "listing_json_api"}, cfg}
}

func (t *ListingJSONAPI) Role() carscrape.Role {
	return carscrape.RoleListing
}

func (t *ListingJSONAPI) Capabilities() carscrape.Capability {
	return carscrape.CapListingURLs
}

// Match requires at least one accepted link in an embedded payload.
func (t *ListingJSONAPI) Match(html, pageURL string) bool {
	urls, err := t.ListingURLs(html, pageURL)
	return err == nil && len(urls) > 0
}

// ListingURLs walks every string leaf of embedded JSON payloads and
// keeps the ones the acceptance heuristic admits. ld+json blocks are
// skipped; those belong to the structured-data detail templates.
func (t *ListingJSONAPI) ListingURLs(html, pageURL string) ([]string, error) {
	doc, base, err := parseListingPage(html, pageURL)
	if err != nil {
		return nil, err
	}
	var out []string
	doc.Find("script").Each(func(_ int, s *goquery.Selection) {
		if typ, _ := s.Attr("type"); typ == "application/ld+json" {
			return
		}
		payload := scriptJSON(s.Text())
		if payload == nil {
			return
		}
		jsonStrings(payload, func(_, value string) {
			if isNonHTTPLink(value) {
				return
			}
			if accepted, ok := carscrape.AcceptListingURL(base, value, t.cfg); ok {
				out = append(out, accepted)
			}
		})
	})
	return dedupe(out), nil
}

// scriptJSON parses a script body as plain JSON, retrying the right-hand
// side of an assignment. Returns nil when neither form parses.
func scriptJSON(raw string) any {
	raw = stdhtml.UnescapeString(raw)
	var data any
	if err := json.Unmarshal([]byte(raw), &data); err == nil {
		return data
	}
	m := assignRE.FindStringSubmatch(raw)
	if m == nil {
		return nil
	}
	if err := json.Unmarshal([]byte(m[1]), &data); err != nil {
		return nil
	}
	return data
}

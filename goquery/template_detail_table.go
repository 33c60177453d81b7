package goquery

import (
	"carscrape"
	"github.com/PuerkitoBio/goquery"
)

var _ carscrape.Template = (*DetailSpecTable)(nil)

// DetailSpecTable parses detail pages whose vehicle data lives in a
// plain th/td spec table with no structured data at all.
type DetailSpecTable struct {
	baseTemplate
}

// NewDetailSpecTable creates the detail_html_spec_table template.
func NewDetailSpecTable() *DetailSpecTable {
	return &DetailSpecTable{baseTemplate{name: "detail_html_spec_table"}}
}

func (t *DetailSpecTable) Role() carscrape.Role {
	return carscrape.RoleDetail
}

func (t *DetailSpecTable) Capabilities() carscrape.Capability {
	return carscrape.CapParseDetail
}

// Match requires a table with at least one th/td row.
func (t *DetailSpecTable) Match(html, pageURL string) bool {
	doc, err := parse(html)
	if err != nil {
		return false
	}
	matched := false
	doc.Find("table tr").EachWithBreak(func(_ int, tr *goquery.Selection) bool {
		if tr.Find("th").Length() > 0 && tr.Find("td").Length() > 0 {
			matched = true
			return false
		}
		return true
	})
	return matched
}

// ParseDetail extracts the spec table plus the page title and price.
func (t *DetailSpecTable) ParseDetail(html, pageURL string) (*carscrape.ParsedRecord, error) {
	doc, err := parse(html)
	if err != nil {
		return nil, carscrape.Errorf(carscrape.EINVALID, "failed to parse HTML: %v", err)
	}
	base, err := parseBase(pageURL)
	if err != nil {
		return nil, carscrape.Errorf(carscrape.EINVALID, "invalid page URL: %v", err)
	}

	rec := carscrape.NewParsedRecord(carscrape.SourceSpecTable)
	promoteSpecs(rec, tableSpecs(doc))

	if name := Text(doc.Find("h1").First()); name != "" {
		rec.Set("name", name)
	}
	meta := metaValues(doc)
	if !rec.Has("name") {
		rec.Set("name", meta["title"])
	}
	rec.Set("price", firstNonEmpty(
		Text(doc.Find(".price, .vehicle-price").First()),
		meta["price"],
	))
	rec.Set("currency", meta["currency"])
	rec.Set("description", meta["description"])

	rec.Confidence = coreConfidence(rec)
	attachMedia(rec, doc, nil, base)
	return rec, nil
}

package goquery

import (
	"carscrape"
)

var _ carscrape.Template = (*DetailInlineBlocks)(nil)

// DetailInlineBlocks parses detail pages built from label/value blocks,
// definition lists and spec rows rather than a spec table or structured
// data. Microdata and meta tags back it up when the blocks carry no core
// fields.
type DetailInlineBlocks struct {
	baseTemplate
}

// NewDetailInlineBlocks creates the detail_inline_html_blocks template.
func NewDetailInlineBlocks() *DetailInlineBlocks {
	return &DetailInlineBlocks{baseTemplate{name: "detail_inline_html_blocks"}}
}

func (t *DetailInlineBlocks) Role() carscrape.Role {
	return carscrape.RoleDetail
}

func (t *DetailInlineBlocks) Capabilities() carscrape.Capability {
	return carscrape.CapParseDetail
}

// Match requires inline spec structure without relying on tables.
func (t *DetailInlineBlocks) Match(html, pageURL string) bool {
	doc, err := parse(html)
	if err != nil {
		return false
	}
	if doc.Find("dl dt").Length() > 0 || doc.Find(".spec-row").Length() > 0 || doc.Find(".spec-block").Length() > 0 {
		return true
	}
	return doc.Find(".label").Length() > 0 && doc.Find(".value").Length() > 0
}

// ParseDetail extracts inline specs plus the page heading and price.
func (t *DetailInlineBlocks) ParseDetail(html, pageURL string) (*carscrape.ParsedRecord, error) {
	doc, err := parse(html)
	if err != nil {
		return nil, carscrape.Errorf(carscrape.EINVALID, "failed to parse HTML: %v", err)
	}
	base, err := parseBase(pageURL)
	if err != nil {
		return nil, carscrape.Errorf(carscrape.EINVALID, "invalid page URL: %v", err)
	}

	rec := carscrape.NewParsedRecord(carscrape.SourceInline)
	promoteSpecs(rec, inlineSpecs(doc))

	rec.Set("name", Text(doc.Find("h1").First()))
	rec.Set("price", Text(doc.Find(".price, .vehicle-price").First()))

	if !hasCoreFields(rec) {
		if micro := microdataVehicles(doc); len(micro) > 0 {
			applyFallback(rec, micro[0], carscrape.SourceMicrodata, 0.5)
		} else if meta := metaValues(doc); len(meta) > 0 {
			applyFallback(rec, meta, carscrape.SourceMeta, 0.3)
		}
	}
	if rec.Source == carscrape.SourceInline {
		rec.Confidence = coreConfidence(rec)
	}

	attachMedia(rec, doc, nil, base)
	return rec, nil
}

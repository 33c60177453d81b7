package goquery

import (
	"carscrape"
)

var _ carscrape.Template = (*DetailHybrid)(nil)

// DetailHybrid parses detail pages that carry both JSON-LD structured
// data and a visible spec section. Structured data is authoritative;
// visible specs fill in what it leaves blank, so a table that
// contradicts the JSON-LD never overrides it.
type DetailHybrid struct {
	baseTemplate
}

// NewDetailHybrid creates the detail_hybrid_json_html template.
func NewDetailHybrid() *DetailHybrid {
	return &DetailHybrid{baseTemplate{name: "detail_hybrid_json_html"}}
}

func (t *DetailHybrid) Role() carscrape.Role {
	return carscrape.RoleDetail
}

func (t *DetailHybrid) Capabilities() carscrape.Capability {
	return carscrape.CapParseDetail
}

// Match requires both an ld+json block and a visible spec structure.
func (t *DetailHybrid) Match(html, pageURL string) bool {
	doc, err := parse(html)
	if err != nil {
		return false
	}
	return doc.Find(`script[type="application/ld+json"]`).Length() > 0 && hasSpecs(doc)
}

// ParseDetail merges JSON-LD vehicle fields with table and inline specs.
func (t *DetailHybrid) ParseDetail(html, pageURL string) (*carscrape.ParsedRecord, error) {
	doc, err := parse(html)
	if err != nil {
		return nil, carscrape.Errorf(carscrape.EINVALID, "failed to parse HTML: %v", err)
	}
	base, err := parseBase(pageURL)
	if err != nil {
		return nil, carscrape.Errorf(carscrape.EINVALID, "invalid page URL: %v", err)
	}

	rec := carscrape.NewParsedRecord(carscrape.SourceHybrid)
	objs := jsonLDObjects(doc)
	for _, node := range objs {
		if !isVehicleNode(node) {
			continue
		}
		vehicleFields(rec, node)
		break
	}

	specs := tableSpecs(doc)
	for key, val := range inlineSpecs(doc) {
		if _, ok := specs[key]; !ok {
			specs[key] = val
		}
	}
	promoteSpecs(rec, specs)

	rec.Confidence = coreConfidence(rec)
	if !hasCoreFields(rec) {
		if meta := metaValues(doc); len(meta) > 0 {
			applyFallback(rec, meta, carscrape.SourceMeta, 0.3)
		}
	}

	attachMedia(rec, doc, objs, base)
	return rec, nil
}

package goquery

import (
	"strings"

	"carscrape"
	"github.com/PuerkitoBio/goquery"
)

// Compile-time interface verification.
var _ carscrape.Template = (*DetailJSONLD)(nil)

// DetailJSONLD parses detail pages carrying JSON-LD Vehicle structured
// data. When JSON-LD yields no core fields it falls back to vehicle
// microdata, then to meta tags, each stage attempted only when the
// prior one stayed below the field threshold.
type DetailJSONLD struct {
	baseTemplate
}

// NewDetailJSONLD creates the detail_jsonld_vehicle template.
func NewDetailJSONLD() *DetailJSONLD {
	return &DetailJSONLD{baseTemplate{name: "detail_jsonld_vehicle"}}
}

func (t *DetailJSONLD) Role() carscrape.Role {
	return carscrape.RoleDetail
}

func (t *DetailJSONLD) Capabilities() carscrape.Capability {
	return carscrape.CapParseDetail
}

// Match reports whether any ld+json block mentions a vehicle.
func (t *DetailJSONLD) Match(html, pageURL string) bool {
	doc, err := parse(html)
	if err != nil {
		return false
	}
	matched := false
	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if strings.Contains(strings.ToLower(s.Text()), "vehicle") {
			matched = true
			return false
		}
		return true
	})
	return matched
}

// ParseDetail extracts raw vehicle fields.
func (t *DetailJSONLD) ParseDetail(html, pageURL string) (*carscrape.ParsedRecord, error) {
	doc, err := parse(html)
	if err != nil {
		return nil, carscrape.Errorf(carscrape.EINVALID, "failed to parse HTML: %v", err)
	}
	base, err := parseBase(pageURL)
	if err != nil {
		return nil, carscrape.Errorf(carscrape.EINVALID, "invalid page URL: %v", err)
	}

	rec := carscrape.NewParsedRecord(carscrape.SourceJSONLD)
	objs := jsonLDObjects(doc)
	for _, node := range objs {
		if !isVehicleNode(node) {
			continue
		}
		vehicleFields(rec, node)
		break
	}
	rec.Confidence = coreConfidence(rec)

	if !hasCoreFields(rec) {
		if micro := microdataVehicles(doc); len(micro) > 0 {
			applyFallback(rec, micro[0], carscrape.SourceMicrodata, 0.5)
		} else if meta := metaValues(doc); meta["price"] != "" || meta["title"] != "" {
			applyFallback(rec, meta, carscrape.SourceMeta, 0.3)
		}
	}

	attachMedia(rec, doc, objs, base)
	return rec, nil
}

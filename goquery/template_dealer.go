package goquery

import (
	"strings"

	"carscrape"
	"github.com/PuerkitoBio/goquery"
)

var _ carscrape.Template = (*DealerInfo)(nil)

// DealerInfo extracts site-level dealer contact details. It prefers
// Organization and AutomotiveBusiness JSON-LD, then dealer objects left
// in inline scripts, then visible tel: and mailto: links. Pages showing
// none of those signals do not match; a bare brochure page stays
// unclassified rather than producing an empty dealer row.
type DealerInfo struct {
	baseTemplate
}

// NewDealerInfo creates the dealer_info_jsonld template.
func NewDealerInfo() *DealerInfo {
	return &DealerInfo{baseTemplate{name: "dealer_info_jsonld"}}
}

func (t *DealerInfo) Role() carscrape.Role {
	return carscrape.RoleDealer
}

func (t *DealerInfo) Capabilities() carscrape.Capability {
	return carscrape.CapParseDetail
}

// Match requires an organization node or a visible contact link.
func (t *DealerInfo) Match(html, pageURL string) bool {
	doc, err := parse(html)
	if err != nil {
		return false
	}
	for _, node := range jsonLDObjects(doc) {
		if isDealerNode(node) {
			return true
		}
	}
	return doc.Find(`a[href^="tel:"], a[href^="mailto:"]`).Length() > 0
}

// ParseDetail extracts dealer contact fields.
func (t *DealerInfo) ParseDetail(html, pageURL string) (*carscrape.ParsedRecord, error) {
	doc, err := parse(html)
	if err != nil {
		return nil, carscrape.Errorf(carscrape.EINVALID, "failed to parse HTML: %v", err)
	}

	for _, node := range jsonLDObjects(doc) {
		if !isDealerNode(node) {
			continue
		}
		rec := carscrape.NewParsedRecord(carscrape.SourceJSONLD)
		rec.Set("name", jsonText(node["name"]))
		rec.Set("telephone", jsonText(node["telephone"]))
		rec.Set("email", jsonText(node["email"]))
		rec.Set("address", postalAddress(node["address"]))
		rec.Confidence = 0.9
		return rec, nil
	}

	if rec := inlineDealerObject(doc); rec != nil {
		return rec, nil
	}
	return contactFallback(doc), nil
}

// postalAddress flattens a PostalAddress object or plain string.
func postalAddress(v any) string {
	node, ok := v.(map[string]any)
	if !ok {
		return jsonText(v)
	}
	var parts []string
	for _, key := range []string{"streetAddress", "addressLocality", "addressRegion", "postalCode", "addressCountry"} {
		if s := jsonText(node[key]); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}

// inlineDealerObject looks for a dealer object in non-structured script
// blocks, the shape some stock-management platforms embed for their
// widgets.
func inlineDealerObject(doc *goquery.Document) *carscrape.ParsedRecord {
	var rec *carscrape.ParsedRecord
	doc.Find("script").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if typ, _ := s.Attr("type"); typ == "application/ld+json" {
			return true
		}
		obj, ok := scriptJSON(s.Text()).(map[string]any)
		if !ok {
			return true
		}
		name := jsonText(jsonValue(obj, "dealerName", "dealer_name", "name"))
		phone := jsonText(jsonValue(obj, "telephone", "phone", "dealerPhone"))
		if name == "" || phone == "" {
			return true
		}
		rec = carscrape.NewParsedRecord(carscrape.SourceContact)
		rec.Set("name", name)
		rec.Set("telephone", phone)
		rec.Set("email", jsonText(jsonValue(obj, "email", "dealerEmail")))
		rec.Set("address", jsonText(jsonValue(obj, "address", "dealerAddress")))
		rec.Confidence = 0.6
		return false
	})
	return rec
}

// contactFallback builds a dealer record from visible contact links and
// the page heading.
func contactFallback(doc *goquery.Document) *carscrape.ParsedRecord {
	rec := carscrape.NewParsedRecord(carscrape.SourceContact)
	rec.Set("name", firstNonEmpty(
		Text(doc.Find("h1").First()),
		metaContent(doc, `meta[property="og:site_name"]`),
	))
	if tel := firstAttr(doc.Find(`a[href^="tel:"]`).First(), "href"); tel != "" {
		rec.Set("telephone", strings.TrimSpace(strings.TrimPrefix(tel, "tel:")))
	}
	if mail := firstAttr(doc.Find(`a[href^="mailto:"]`).First(), "href"); mail != "" {
		email := strings.TrimPrefix(mail, "mailto:")
		if i := strings.IndexByte(email, '?'); i >= 0 {
			email = email[:i]
		}
		rec.Set("email", strings.TrimSpace(email))
	}
	rec.Set("address", Text(doc.Find("address").First()))
	rec.Confidence = 0.4
	return rec
}

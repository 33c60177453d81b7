package goquery

import (
	"net/url"

	"carscrape"
	"github.com/PuerkitoBio/goquery"
)

// jsonValue returns the first present key's value from a JSON-LD node.
func jsonValue(node map[string]any, keys ...string) any {
	for _, k := range keys {
		if v, ok := node[k]; ok && v != nil {
			return v
		}
	}
	return nil
}

// vehicleFields copies the core JSON-LD Vehicle fields onto the record.
func vehicleFields(rec *carscrape.ParsedRecord, node map[string]any) {
	rec.Set("name", jsonText(node["name"]))
	rec.Set("brand", jsonText(jsonValue(node, "brand", "manufacturer", "make")))
	rec.Set("model", jsonText(jsonValue(node, "model", "vehicleModel")))
	rec.Set("description", jsonText(node["description"]))
	rec.Set("vin", jsonText(node["vehicleIdentificationNumber"]))

	offer := firstOffer(node)
	price := ""
	if offer != nil {
		price = jsonText(offer["price"])
	}
	if price == "" {
		price = jsonText(node["price"])
	}
	rec.Set("price", price)
	if offer != nil {
		rec.Set("currency", jsonText(offer["priceCurrency"]))
	}
}

// coreConfidence estimates extraction quality as the proportion of core
// identity fields (brand, model, price) that were populated.
func coreConfidence(rec *carscrape.ParsedRecord) float64 {
	core := 0
	for _, field := range []string{"brand", "model", "price"} {
		if rec.GetString(field) != "" {
			core++
		}
	}
	return float64(core) / 3.0
}

// attachMedia collects gallery images and videos onto the record.
func attachMedia(rec *carscrape.ParsedRecord, doc *goquery.Document, objs []map[string]any, base *url.URL) {
	rec.Set("images", galleryImages(doc, objs, base))
	rec.Set("videos", galleryVideos(doc, base))
}

// applyFallback copies fallback-stage fields onto the record, marking
// the record with the fallback provenance and confidence. Meta titles
// become the record name.
func applyFallback(rec *carscrape.ParsedRecord, fields map[string]string, source string, confidence float64) {
	for key, val := range fields {
		if key == "title" {
			key = "name"
		}
		if !rec.Has(key) {
			rec.Set(key, val)
		}
	}
	rec.Source = source
	rec.Confidence = confidence
}

// hasCoreFields reports whether any of the fields that gate fallback
// stages were extracted: a record below this threshold moves to the
// next stage of the hybrid chain.
func hasCoreFields(rec *carscrape.ParsedRecord) bool {
	return rec.GetString("name") != "" || rec.GetString("brand") != "" || rec.GetString("price") != ""
}

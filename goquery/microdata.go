package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// microdataVehicles returns a raw field map for every itemscope element
// whose itemtype mentions a vehicle. For meta-style property nodes the
// content attribute is preferred over text.
func microdataVehicles(doc *goquery.Document) []map[string]string {
	var out []map[string]string
	doc.Find("[itemscope]").Each(func(_ int, scope *goquery.Selection) {
		itemtype, _ := scope.Attr("itemtype")
		if !strings.Contains(strings.ToLower(itemtype), "vehicle") {
			return
		}

		fields := make(map[string]string)
		prop := func(field string, names ...string) {
			for _, name := range names {
				node := scope.Find(`[itemprop="` + name + `"]`).First()
				if node.Length() == 0 {
					continue
				}
				v := firstAttr(node, "content")
				if v == "" {
					v = Text(node)
				}
				if v != "" {
					fields[field] = v
					return
				}
			}
		}

		prop("name", "name")
		prop("brand", "brand")
		prop("model", "model")
		prop("description", "description")
		prop("price", "price")
		prop("mileage", "mileageFromOdometer", "mileage")
		prop("year", "vehicleModelYear", "year")

		// An explicit price meta always wins over text content.
		if meta := scope.Find(`meta[itemprop="price"]`).First(); meta.Length() > 0 {
			if v := firstAttr(meta, "content"); v != "" {
				fields["price"] = v
			}
		}

		if len(fields) > 0 {
			out = append(out, fields)
		}
	})
	return out
}

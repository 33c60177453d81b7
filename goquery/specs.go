package goquery

import (
	"regexp"
	"sort"
	"strings"

	"carscrape"
	"github.com/PuerkitoBio/goquery"
)

var specKeyRE = regexp.MustCompile(`[^a-z0-9]+`)

// specKey normalizes a spec label to a snake_case key.
func specKey(label string) string {
	k := specKeyRE.ReplaceAllString(strings.ToLower(label), "_")
	return strings.Trim(k, "_")
}

// hasSpecs reports whether the page shows any visible spec structure:
// a table, label/value blocks, spec rows or a definition list.
func hasSpecs(doc *goquery.Document) bool {
	if doc.Find("table").Length() > 0 ||
		doc.Find(".spec-row").Length() > 0 ||
		doc.Find(".spec").Length() > 0 ||
		doc.Find(".spec-block").Length() > 0 ||
		doc.Find("dl").Length() > 0 {
		return true
	}
	return doc.Find(".label").Length() > 0 && doc.Find(".value").Length() > 0
}

// tableSpecs extracts th/td rows from every table on the page.
func tableSpecs(doc *goquery.Document) map[string]string {
	specs := make(map[string]string)
	doc.Find("table tr").Each(func(_ int, tr *goquery.Selection) {
		th := tr.Find("th").First()
		td := tr.Find("td").First()
		if th.Length() == 0 || td.Length() == 0 {
			return
		}
		key := specKey(Text(th))
		val := Text(td)
		if key == "" || val == "" {
			return
		}
		if _, ok := specs[key]; !ok {
			specs[key] = val
		}
	})
	return specs
}

// inlineSpecs extracts dl/dt-dd pairs, .label/.value pairs and
// .spec-row rows.
func inlineSpecs(doc *goquery.Document) map[string]string {
	specs := make(map[string]string)
	add := func(label, value string) {
		key := specKey(label)
		if key == "" || value == "" {
			return
		}
		if _, ok := specs[key]; !ok {
			specs[key] = value
		}
	}

	doc.Find("dl dt").Each(func(_ int, dt *goquery.Selection) {
		dd := dt.NextFiltered("dd")
		if dd.Length() == 0 {
			return
		}
		add(Text(dt), Text(dd))
	})

	doc.Find(".label").Each(func(_ int, label *goquery.Selection) {
		val := label.NextFiltered(".value")
		if val.Length() == 0 {
			val = label.Parent().Find(".value").First()
		}
		if val.Length() == 0 {
			return
		}
		add(Text(label), Text(val))
	})

	doc.Find(".spec-row").Each(func(_ int, row *goquery.Selection) {
		label := row.Find(".spec").First()
		if label.Length() == 0 {
			label = row.Find("th").First()
		}
		val := row.Find(".value").First()
		if val.Length() == 0 {
			val = row.Find("td").First()
		}
		if label.Length() == 0 || val.Length() == 0 {
			return
		}
		add(Text(label), Text(val))
	})

	return specs
}

// Spec labels promoted to top-level raw fields when the label contains
// the keyword.
var promotedSpecFields = []struct {
	keyword string
	field   string
}{
	{"mileage", "mileage"},
	{"fuel", "fuel"},
	{"transmission", "transmission"},
	{"vin", "vin"},
	{"year", "year"},
	{"brand", "brand"},
	{"make", "brand"},
	{"model", "model"},
}

// promoteSpecs stores the spec map on the record and lifts well-known
// rows into top-level fields so downstream coercion and the detector's
// field counting see them. Keys are visited in sorted order so repeated
// runs promote identically.
func promoteSpecs(rec *carscrape.ParsedRecord, specs map[string]string) {
	rec.Set("specs", specs)
	keys := make([]string, 0, len(specs))
	for key := range specs {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		for _, p := range promotedSpecFields {
			if strings.Contains(key, p.keyword) && !rec.Has(p.field) {
				rec.Set(p.field, specs[key])
			}
		}
	}
}

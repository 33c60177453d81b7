package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// metaContent returns the content of the first matching meta tag.
func metaContent(doc *goquery.Document, selector string) string {
	v, _ := doc.Find(selector).First().Attr("content")
	return strings.TrimSpace(v)
}

// metaValues extracts the Open Graph and plain meta-tag fallbacks:
// title, price, currency and description.
func metaValues(doc *goquery.Document) map[string]string {
	out := make(map[string]string)

	title := metaContent(doc, `meta[property="og:title"]`)
	if title == "" {
		title = metaContent(doc, `meta[name="title"]`)
	}
	if title == "" {
		title = Text(doc.Find("title").First())
	}
	if title != "" {
		out["title"] = title
	}

	if price := firstNonEmpty(
		metaContent(doc, `meta[property="product:price:amount"]`),
		metaContent(doc, `meta[name="price"]`),
	); price != "" {
		out["price"] = price
	}
	if currency := firstNonEmpty(
		metaContent(doc, `meta[property="product:price:currency"]`),
		metaContent(doc, `meta[name="currency"]`),
	); currency != "" {
		out["currency"] = currency
	}
	if desc := firstNonEmpty(
		metaContent(doc, `meta[property="og:description"]`),
		metaContent(doc, `meta[name="description"]`),
	); desc != "" {
		out["description"] = desc
	}

	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

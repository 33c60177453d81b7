package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Gallery container selectors common across dealer platforms.
const galleryContainers = ".gallery, .carousel, .thumbnails, .slider, ul.gallery"

// galleryImages collects ordered, deduplicated image URLs for a detail
// page: JSON-LD image fields first, then gallery containers, then any
// image with a large-variant hint, then og:image.
func galleryImages(doc *goquery.Document, objs []map[string]any, base *url.URL) []string {
	var out []string

	for _, obj := range objs {
		img := obj["image"]
		if img == nil {
			img = obj["images"]
		}
		switch v := img.(type) {
		case string:
			out = append(out, resolveURL(base, v))
		case []any:
			for _, item := range v {
				if s, ok := item.(string); ok {
					out = append(out, resolveURL(base, s))
				}
			}
		}
	}

	doc.Find(galleryContainers).Each(func(_ int, container *goquery.Selection) {
		container.Find("img").Each(func(_ int, img *goquery.Selection) {
			if src := firstAttr(img, "data-large", "data-src", "src", "data-original"); src != "" {
				out = append(out, resolveURL(base, src))
			}
		})
	})

	doc.Find("img").Each(func(_ int, img *goquery.Selection) {
		src := firstAttr(img, "data-large", "data-src", "src")
		if src == "" {
			return
		}
		lower := strings.ToLower(src)
		for _, hint := range []string{"large", "full", "zoom", "1024", "800"} {
			if strings.Contains(lower, hint) {
				out = append(out, resolveURL(base, src))
				return
			}
		}
	})

	if og := metaContent(doc, `meta[property="og:image"]`); og != "" {
		out = append(out, resolveURL(base, og))
	}

	return dedupe(out)
}

// galleryVideos collects video and <source> URLs.
func galleryVideos(doc *goquery.Document, base *url.URL) []string {
	var out []string
	doc.Find("video").Each(func(_ int, video *goquery.Selection) {
		if src := firstAttr(video, "src"); src != "" {
			out = append(out, resolveURL(base, src))
		}
		video.Find("source").Each(func(_ int, source *goquery.Selection) {
			if src := firstAttr(source, "src"); src != "" {
				out = append(out, resolveURL(base, src))
			}
		})
	})
	return dedupe(out)
}

package goquery

import (
	"net/url"
	"strings"
)

// parseBase parses the page URL used to resolve relative links.
func parseBase(pageURL string) (*url.URL, error) {
	return url.Parse(pageURL)
}

// resolveURL resolves href against base and strips the fragment.
// Returns "" when href cannot be parsed.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	resolved.Fragment = ""
	return resolved.String()
}

// isNonHTTPLink reports whether href is a javascript:, mailto:, tel: or
// data: link that can never be a listing URL.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}

// dedupe removes duplicates while preserving first-occurrence order.
func dedupe(urls []string) []string {
	seen := make(map[string]bool, len(urls))
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		if u == "" || seen[u] {
			continue
		}
		seen[u] = true
		out = append(out, u)
	}
	return out
}

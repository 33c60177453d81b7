package carscrape

import (
	"net/url"
	"regexp"
	"strings"
)

// ListingResult is the output of listing and pagination templates. These
// templates never contribute vehicle rows; the run coordinator enforces
// that as a hard contract.
type ListingResult struct {
	// URLs are accepted detail-page links, deduplicated in document order.
	URLs []string

	// NextPage is the next pagination link, or "" when none was found.
	NextPage string
}

// Path segments that mark a stock/listing section of a dealer site.
// Matching is exact per segment; keyword substrings anywhere in a path
// are deliberately not enough to accept a URL.
var stockKeywords = map[string]bool{
	"car":       true,
	"cars":      true,
	"inventory": true,
	"listing":   true,
	"listings":  true,
	"showroom":  true,
	"stock":     true,
	"stocklist": true,
	"used":      true,
	"used-cars": true,
	"vehicle":   true,
	"vehicles":  true,
}

var (
	numericSegmentRE = regexp.MustCompile(`^[0-9]+$`)
	slugSegmentRE    = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// AcceptListingURL applies the conservative acceptance heuristic for
// candidate listing links. A candidate is accepted only if:
//
//   - its host is the page's own host, the link is relative (resolved
//     against base), or its host is in the configured allow-list;
//   - an exact stock-keyword path segment appears within the first
//     MaxCheckSegments segments;
//   - the trailing path segment comes after the keyword and is either a
//     numeric identifier or a slug (lowercase alphanumerics and hyphens,
//     at least MinSlugLength characters).
//
// Paths that match only on a keyword substring (/about/cars,
// /blog/listing-tips) are rejected. Returns the resolved absolute URL
// with fragment stripped.
func AcceptListingURL(base *url.URL, href string, cfg *Config) (string, bool) {
	href = strings.TrimSpace(href)
	if href == "" {
		return "", false
	}
	ref, err := url.Parse(href)
	if err != nil {
		return "", false
	}
	resolved := base.ResolveReference(ref)
	resolved.Fragment = ""

	if resolved.Host != base.Host && !cfg.AllowsDomain(resolved.Hostname()) {
		return "", false
	}

	var segments []string
	for _, s := range strings.Split(resolved.Path, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}
	if len(segments) < 2 {
		return "", false
	}

	// Only the first few segments are inspected for the keyword, bounding
	// the check and avoiding deep-path false matches.
	keywordIdx := -1
	for i, seg := range segments {
		if i >= cfg.maxCheckSegments() {
			break
		}
		if stockKeywords[strings.ToLower(seg)] {
			keywordIdx = i
			break
		}
	}
	if keywordIdx < 0 || keywordIdx == len(segments)-1 {
		return "", false
	}

	last := segments[len(segments)-1]
	if numericSegmentRE.MatchString(last) {
		return resolved.String(), true
	}
	if len(last) >= cfg.minSlugLength() && slugSegmentRE.MatchString(last) {
		return resolved.String(), true
	}
	return "", false
}

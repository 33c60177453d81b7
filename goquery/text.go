package goquery

import (
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Text returns the trimmed text content of a selection.
//
// This is the fail-soft boundary for malformed nodes: any failure during
// extraction is logged at debug level and substituted with the node's
// raw rendering, trimmed. It is deliberately the only place in the
// package where extraction failures are swallowed; every other layer
// lets unexpected errors surface.
func Text(sel *goquery.Selection) (out string) {
	defer func() {
		if r := recover(); r != nil {
			slog.Debug("text extraction fell back to raw node", "cause", r)
			out = strings.TrimSpace(rawNode(sel))
		}
	}()
	return strings.TrimSpace(sel.Text())
}

// rawNode renders the selection's first node back to its HTML string.
func rawNode(sel *goquery.Selection) string {
	if sel == nil || len(sel.Nodes) == 0 {
		return ""
	}
	var b strings.Builder
	if err := html.Render(&b, sel.Nodes[0]); err != nil {
		slog.Debug("raw node rendering failed", "error", err)
		return sel.Nodes[0].Data
	}
	return b.String()
}

// firstAttr returns the first non-empty value among the named attributes.
func firstAttr(sel *goquery.Selection, names ...string) string {
	for _, name := range names {
		if v, ok := sel.Attr(name); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

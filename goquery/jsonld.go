package goquery

import (
	"encoding/json"
	stdhtml "html"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Matches the JSON object on the right-hand side of a script assignment,
// e.g. window.__STATE__ = {...}.
var assignRE = regexp.MustCompile(`=\s*(\{[\s\S]+\})`)

// jsonLDObjects returns every object embedded in ld+json script blocks.
// Top-level arrays are flattened and @graph containers expanded. Blocks
// that fail to parse as plain JSON are retried as the right-hand side of
// an assignment; blocks that still fail are skipped.
func jsonLDObjects(doc *goquery.Document) []map[string]any {
	var out []map[string]any
	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, s *goquery.Selection) {
		raw := stdhtml.UnescapeString(s.Text())
		var data any
		if err := json.Unmarshal([]byte(raw), &data); err != nil {
			m := assignRE.FindStringSubmatch(raw)
			if m == nil {
				return
			}
			if err := json.Unmarshal([]byte(m[1]), &data); err != nil {
				return
			}
		}
		switch v := data.(type) {
		case []any:
			for _, item := range v {
				if obj, ok := item.(map[string]any); ok {
					out = append(out, obj)
				}
			}
		case map[string]any:
			out = append(out, v)
		}
	})
	return expandGraphs(out)
}

// expandGraphs replaces @graph containers with their member nodes.
func expandGraphs(objs []map[string]any) []map[string]any {
	var out []map[string]any
	for _, obj := range objs {
		graph, ok := obj["@graph"].([]any)
		if !ok {
			out = append(out, obj)
			continue
		}
		for _, item := range graph {
			if node, ok := item.(map[string]any); ok {
				out = append(out, node)
			}
		}
	}
	return out
}

// typeNames returns the lowercased local names of a node's @type values,
// with IRIs reduced to their final path or fragment component.
func typeNames(node map[string]any) []string {
	var raw []string
	switch t := node["@type"].(type) {
	case string:
		raw = append(raw, t)
	case []any:
		for _, v := range t {
			if s, ok := v.(string); ok {
				raw = append(raw, s)
			}
		}
	}
	out := make([]string, 0, len(raw))
	for _, s := range raw {
		s = strings.ToLower(s)
		if i := strings.LastIndex(s, "/"); i >= 0 {
			s = s[i+1:]
		}
		if i := strings.LastIndex(s, "#"); i >= 0 {
			s = s[i+1:]
		}
		out = append(out, s)
	}
	return out
}

// isVehicleNode accepts Vehicle, Car and Automobile types.
func isVehicleNode(node map[string]any) bool {
	for _, name := range typeNames(node) {
		switch name {
		case "vehicle", "car", "automobile":
			return true
		}
	}
	return false
}

// isDealerNode accepts Organization and AutomotiveBusiness types,
// including subtypes that embed either name.
func isDealerNode(node map[string]any) bool {
	for _, name := range typeNames(node) {
		if strings.Contains(name, "organization") || strings.Contains(name, "automotivebusiness") {
			return true
		}
	}
	return false
}

// jsonText extracts a display string from a JSON-LD value, following
// nested name/@value objects.
func jsonText(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case map[string]any:
		if s := jsonText(x["name"]); s != "" {
			return s
		}
		return jsonText(x["@value"])
	default:
		return ""
	}
}

// firstOffer returns the node's offer object, unwrapping offer lists.
func firstOffer(node map[string]any) map[string]any {
	switch offers := node["offers"].(type) {
	case map[string]any:
		return offers
	case []any:
		for _, o := range offers {
			if obj, ok := o.(map[string]any); ok {
				return obj
			}
		}
	}
	return nil
}

// jsonStrings walks nested JSON structures and yields every string leaf
// along with the key it was stored under ("" for array members).
func jsonStrings(node any, visit func(key, value string)) {
	switch x := node.(type) {
	case map[string]any:
		for k, v := range x {
			if s, ok := v.(string); ok {
				visit(k, s)
			} else {
				jsonStrings(v, visit)
			}
		}
	case []any:
		for _, item := range x {
			if s, ok := item.(string); ok {
				visit("", s)
			} else {
				jsonStrings(item, visit)
			}
		}
	}
}

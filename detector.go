package carscrape

// TieBreak selects how the detector resolves multiple matching detail
// templates.
type TieBreak string

// Tie-break policies.
const (
	// TieBreakFields parses every matching detail candidate and picks
	// the one with the highest populated field count; earlier registry
	// order wins exact ties.
	TieBreakFields TieBreak = "fields"

	// TieBreakOrder picks the first matching detail template in
	// registry order without comparing parse output.
	TieBreakOrder TieBreak = "order"
)

// Detection is the outcome of classifying one page.
type Detection struct {
	Template Template

	// Record holds the detail parse produced while evaluating
	// candidates, so detail pages are parsed exactly once. It is nil
	// for listing, pagination and dealer detections.
	Record *ParsedRecord
}

// Detector classifies a document against the registered templates.
// A page that no template accepts yields ENOTFOUND; that is a normal
// outcome for out-of-scope page types, not an error condition.
type Detector interface {
	Detect(html, pageURL string) (*Detection, error)
}

// Compile-time interface verification.
var _ Detector = (*RegistryDetector)(nil)

// RegistryDetector classifies pages by evaluating registry templates in
// canonical order. Detail templates are evaluated first; multiple
// matches are resolved by the configured tie-break policy. Listing,
// pagination and dealer roles are strictly first-match-wins.
type RegistryDetector struct {
	registry *Registry
	tieBreak TieBreak
}

// NewRegistryDetector creates a detector over the given registry.
// An empty tieBreak defaults to TieBreakFields.
func NewRegistryDetector(registry *Registry, tieBreak TieBreak) *RegistryDetector {
	if tieBreak == "" {
		tieBreak = TieBreakFields
	}
	return &RegistryDetector{registry: registry, tieBreak: tieBreak}
}

// Detect classifies the document. Only detail candidates that matched
// are parsed; the rest of the registry is never invoked for parsing.
func (d *RegistryDetector) Detect(html, pageURL string) (*Detection, error) {
	var (
		best      Template
		bestRec   *ParsedRecord
		bestCount int
	)
	for _, tpl := range d.registry.Templates() {
		if tpl.Role() != RoleDetail || !tpl.Match(html, pageURL) {
			continue
		}
		rec, err := tpl.ParseDetail(html, pageURL)
		if err != nil {
			if ErrorCode(err) == ENOTIMPLEMENTED {
				continue
			}
			return nil, err
		}
		if d.tieBreak == TieBreakOrder {
			return &Detection{Template: tpl, Record: rec}, nil
		}
		if n := rec.FieldCount(); best == nil || n > bestCount {
			best, bestRec, bestCount = tpl, rec, n
		}
	}
	if best != nil {
		return &Detection{Template: best, Record: bestRec}, nil
	}

	for _, tpl := range d.registry.Templates() {
		switch tpl.Role() {
		case RoleListing, RolePagination, RoleDealer:
			if tpl.Match(html, pageURL) {
				return &Detection{Template: tpl}, nil
			}
		}
	}
	return nil, Errorf(ENOTFOUND, "no template matched %q", pageURL)
}

package carscrape

// Role classifies what a template extracts from a page.
type Role string

// Page roles.
const (
	RoleDetail     Role = "detail"     // one vehicle, yields a vehicle row
	RoleListing    Role = "listing"    // links to detail pages, yields no rows
	RolePagination Role = "pagination" // next-page links only, yields no rows
	RoleDealer     Role = "dealer"     // site-level dealer info
)

// Capability flags declare which operations a template implements.
// Templates signal unsupported operations with ENOTIMPLEMENTED rather
// than relying on runtime introspection.
type Capability uint8

// Template capabilities.
const (
	CapListingURLs Capability = 1 << iota
	CapNextPage
	CapParseDetail
)

// Has reports whether c includes flag.
func (c Capability) Has(flag Capability) bool {
	return c&flag != 0
}

// Template is a named parsing strategy for one page role.
//
// Implementations must not perform network I/O. Match must never panic
// or return an error for malformed input; an unparseable document is
// simply not a match. Operations outside a template's capability set
// return ENOTIMPLEMENTED so callers can skip the template without
// treating the page as failed.
type Template interface {
	// Name returns the stable snake_case identifier used for
	// detection-order registration and cross-component lookup.
	Name() string

	// Role returns the page role this template extracts.
	Role() Role

	// Capabilities returns the set of operations the template implements.
	Capabilities() Capability

	// Match reports whether the template applies to the document.
	Match(html, pageURL string) bool

	// ListingURLs extracts candidate detail-page links, resolved against
	// the page URL and deduplicated in document order.
	ListingURLs(html, pageURL string) ([]string, error)

	// NextPage returns the next pagination link, or "" when no
	// pagination pattern is recognized. Absence is not an error.
	NextPage(html, pageURL string) (string, error)

	// ParseDetail extracts raw fields from a detail or dealer page.
	ParseDetail(html, pageURL string) (*ParsedRecord, error)
}

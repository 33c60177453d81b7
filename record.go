package carscrape

// Raw field provenance values recorded by templates.
const (
	SourceJSONLD    = "json-ld"
	SourceMicrodata = "microdata-fallback"
	SourceMeta      = "meta-fallback"
	SourceSpecTable = "spec-table"
	SourceInline    = "inline-blocks"
	SourceHybrid    = "hybrid"
	SourceContact   = "contact-fallback"
)

// ParsedRecord holds the raw fields extracted by a detail or dealer
// template, before normalization. Field absence is distinguished from an
// explicit empty value: a key is present only when the template actually
// extracted something for it.
type ParsedRecord struct {
	// Fields maps raw field names to extracted values. Values are
	// strings, except "images" and "videos" (ordered URL slices) and
	// "specs" (a flattened map of spec-table rows).
	Fields map[string]any

	// Source records the extraction stage that produced the core fields,
	// for diagnostics (e.g. "json-ld", "microdata-fallback").
	Source string

	// Confidence is the template's own estimate in [0, 1].
	Confidence float64
}

// NewParsedRecord returns an empty record with the given provenance.
func NewParsedRecord(source string) *ParsedRecord {
	return &ParsedRecord{
		Fields: make(map[string]any),
		Source: source,
	}
}

// Set stores a value under key. Empty strings, nil values and empty
// slices are dropped so that field presence stays meaningful.
func (r *ParsedRecord) Set(key string, value any) {
	switch v := value.(type) {
	case nil:
		return
	case string:
		if v == "" {
			return
		}
	case []string:
		if len(v) == 0 {
			return
		}
	case map[string]string:
		if len(v) == 0 {
			return
		}
	}
	r.Fields[key] = value
}

// Has reports whether key was extracted.
func (r *ParsedRecord) Has(key string) bool {
	_, ok := r.Fields[key]
	return ok
}

// GetString returns the string stored under key, or "" when absent or
// not a string.
func (r *ParsedRecord) GetString(key string) string {
	s, _ := r.Fields[key].(string)
	return s
}

// GetStrings returns the string slice stored under key.
func (r *ParsedRecord) GetStrings(key string) []string {
	s, _ := r.Fields[key].([]string)
	return s
}

// Specs returns the flattened spec-table rows, or nil.
func (r *ParsedRecord) Specs() map[string]string {
	m, _ := r.Fields["specs"].(map[string]string)
	return m
}

// FieldCount returns the number of populated fields. The detector uses
// it to break ties between matching detail templates.
func (r *ParsedRecord) FieldCount() int {
	if r == nil {
		return 0
	}
	n := 0
	for _, v := range r.Fields {
		switch x := v.(type) {
		case string:
			if x != "" {
				n++
			}
		case []string:
			if len(x) > 0 {
				n++
			}
		case map[string]string:
			n += len(x)
		default:
			n++
		}
	}
	return n
}

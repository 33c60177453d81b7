package carscrape

// Normalizer maps a template's raw output onto the canonical schemas,
// applying per-field type coercion and the missing-field policy. A
// record lacking identity fields is flagged incomplete, never dropped.
type Normalizer interface {
	NormalizeVehicle(rec *ParsedRecord, pageURL string) (*Vehicle, error)
	NormalizeDealer(rec *ParsedRecord, pageURL string) (*Dealer, error)
}

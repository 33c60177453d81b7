// Package normalize maps raw template output onto the canonical vehicle
// and dealer schemas. Each field has its own coercion; a field that
// cannot be coerced is left unset rather than failing the record.
package normalize

import (
	"net/url"
	"strings"
	"time"

	"carscrape"
)

// Compile-time interface verification.
var _ carscrape.Normalizer = (*Normalizer)(nil)

// Normalizer applies the canonical field coercions.
type Normalizer struct {
	// Now stamps normalized vehicles; defaults to time.Now.
	Now func() time.Time
}

// New returns a Normalizer using the wall clock.
func New() *Normalizer {
	return &Normalizer{Now: time.Now}
}

func (n *Normalizer) now() time.Time {
	if n.Now == nil {
		return time.Now()
	}
	return n.Now()
}

// NormalizeVehicle coerces a detail record into a Vehicle. A record
// lacking identity (no page URL and no VIN) is flagged incomplete and
// still returned.
func (n *Normalizer) NormalizeVehicle(rec *carscrape.ParsedRecord, pageURL string) (*carscrape.Vehicle, error) {
	if rec == nil {
		return nil, carscrape.Errorf(carscrape.EINVALID, "cannot normalize a nil record")
	}

	v := &carscrape.Vehicle{
		SourceURL:    strings.TrimSpace(pageURL),
		VIN:          strings.ToUpper(strings.TrimSpace(rec.GetString("vin"))),
		Make:         CanonicalBrand(rec.GetString("brand")),
		Model:        strings.TrimSpace(rec.GetString("model")),
		Name:         strings.TrimSpace(rec.GetString("name")),
		FuelType:     titleWord(rec.GetString("fuel")),
		Transmission: titleWord(rec.GetString("transmission")),
		Description:  strings.TrimSpace(rec.GetString("description")),
		Source:       rec.Source,
		Confidence:   rec.Confidence,
		ScrapedAt:    n.now(),
	}

	raw := strings.TrimSpace(rec.GetString("price"))
	v.PriceRaw = raw
	price, inferred := ParsePrice(raw)
	v.Price = price
	v.Currency = strings.ToUpper(strings.TrimSpace(rec.GetString("currency")))
	if v.Currency == "" {
		v.Currency = inferred
	}

	v.Mileage, v.MileageUnit = ParseMileage(rec.GetString("mileage"))
	v.Year = ParseYear(rec.GetString("year"))

	base, _ := url.Parse(pageURL)
	v.Images = absolutize(base, rec.GetStrings("images"))
	v.Videos = absolutize(base, rec.GetStrings("videos"))

	v.Incomplete = !v.HasIdentity()
	return v, nil
}

// NormalizeDealer coerces a dealer record.
func (n *Normalizer) NormalizeDealer(rec *carscrape.ParsedRecord, pageURL string) (*carscrape.Dealer, error) {
	if rec == nil {
		return nil, carscrape.Errorf(carscrape.EINVALID, "cannot normalize a nil record")
	}

	d := &carscrape.Dealer{
		SourceURL: strings.TrimSpace(pageURL),
		Name:      strings.TrimSpace(rec.GetString("name")),
		Telephone: strings.TrimSpace(rec.GetString("telephone")),
		Email:     strings.ToLower(strings.TrimSpace(rec.GetString("email"))),
		Address:   strings.TrimSpace(rec.GetString("address")),
	}
	if u, err := url.Parse(pageURL); err == nil {
		d.SiteHost = u.Hostname()
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// absolutize resolves relative URLs against the page base, dropping
// entries that cannot be parsed.
func absolutize(base *url.URL, urls []string) []string {
	if base == nil || len(urls) == 0 {
		return urls
	}
	out := make([]string, 0, len(urls))
	for _, raw := range urls {
		ref, err := url.Parse(strings.TrimSpace(raw))
		if err != nil {
			continue
		}
		out = append(out, base.ResolveReference(ref).String())
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// titleWord trims and capitalizes a single descriptive word like a fuel
// type, leaving multi-word values untouched beyond trimming.
func titleWord(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || strings.ContainsRune(s, ' ') {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

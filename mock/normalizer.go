package mock

import "carscrape"

var _ carscrape.Normalizer = (*Normalizer)(nil)

// Normalizer is a mock implementation of carscrape.Normalizer.
type Normalizer struct {
	NormalizeVehicleFn func(rec *carscrape.ParsedRecord, pageURL string) (*carscrape.Vehicle, error)
	NormalizeDealerFn  func(rec *carscrape.ParsedRecord, pageURL string) (*carscrape.Dealer, error)
}

func (n *Normalizer) NormalizeVehicle(rec *carscrape.ParsedRecord, pageURL string) (*carscrape.Vehicle, error) {
	return n.NormalizeVehicleFn(rec, pageURL)
}

func (n *Normalizer) NormalizeDealer(rec *carscrape.ParsedRecord, pageURL string) (*carscrape.Dealer, error) {
	return n.NormalizeDealerFn(rec, pageURL)
}

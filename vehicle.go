package carscrape

import (
	"context"
	"time"
)

// Vehicle is a canonical vehicle row produced by normalizing a detail
// template's output. Numeric fields use pointers so that a missing value
// is distinguishable from zero.
type Vehicle struct {
	ID        string `json:"id"`
	SourceURL string `json:"sourceUrl"`
	VIN       string `json:"vin"`

	Make         string   `json:"make"`
	Model        string   `json:"model"`
	Name         string   `json:"name"`
	Year         *int     `json:"year"`
	Price        *float64 `json:"price"`
	PriceRaw     string   `json:"priceRaw"`
	Currency     string   `json:"currency"`
	Mileage      *int     `json:"mileage"`
	MileageUnit  string   `json:"mileageUnit"`
	FuelType     string   `json:"fuelType"`
	Transmission string   `json:"transmission"`
	Description  string   `json:"description"`
	Images       []string `json:"images"`
	Videos       []string `json:"videos"`

	// Template and Source identify the template and extraction stage
	// that produced the record, for diagnostics.
	Template   string  `json:"template"`
	Source     string  `json:"source"`
	Confidence float64 `json:"confidence"`

	// Incomplete marks records lacking both identity fields (source URL
	// and VIN). They are still emitted; downstream consumers decide
	// disposition.
	Incomplete bool `json:"incomplete"`

	ScrapedAt time.Time `json:"scrapedAt"`
}

// HasIdentity reports whether the vehicle carries at least one identity
// field usable as a persistence key.
func (v *Vehicle) HasIdentity() bool {
	return v.SourceURL != "" || v.VIN != ""
}

// VehicleStore persists vehicle rows. Implementations upsert by source
// URL when present, falling back to VIN.
type VehicleStore interface {
	SaveVehicle(ctx context.Context, v *Vehicle) error
}

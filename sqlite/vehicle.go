package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"carscrape"
	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ carscrape.VehicleStore = (*VehicleService)(nil)

// VehicleService implements carscrape.VehicleStore using SQLite.
// Rows are upserted by source URL when present, falling back to VIN;
// rows without either identity field always insert.
type VehicleService struct {
	db *DB
}

// NewVehicleService creates a new VehicleService.
func NewVehicleService(db *DB) *VehicleService {
	return &VehicleService{db: db}
}

// hashVehicle computes an xxHash over the fields that matter for change
// detection and returns it as a hex string.
func hashVehicle(v *carscrape.Vehicle) string {
	var b strings.Builder
	b.WriteString(v.Name)
	b.WriteString("|")
	b.WriteString(v.PriceRaw)
	b.WriteString("|")
	if v.Mileage != nil {
		fmt.Fprintf(&b, "%d", *v.Mileage)
	}
	b.WriteString("|")
	b.WriteString(v.Description)
	b.WriteString("|")
	b.WriteString(strings.Join(v.Images, ","))

	h := xxhash.Sum64String(b.String())
	buf := make([]byte, 8)
	for i := 0; i < 8; i++ {
		buf[i] = byte(h >> (56 - 8*i))
	}
	return hex.EncodeToString(buf)
}

// SaveVehicle upserts the vehicle row and fills in its ID.
func (s *VehicleService) SaveVehicle(ctx context.Context, v *carscrape.Vehicle) error {
	if v == nil {
		return carscrape.Errorf(carscrape.EINVALID, "cannot save a nil vehicle")
	}

	id, existingHash, err := s.findExisting(ctx, v)
	if err != nil {
		return err
	}

	hash := hashVehicle(v)
	images, err := json.Marshal(sliceOrEmpty(v.Images))
	if err != nil {
		return err
	}
	videos, err := json.Marshal(sliceOrEmpty(v.Videos))
	if err != nil {
		return err
	}
	scrapedAt := v.ScrapedAt
	if scrapedAt.IsZero() {
		scrapedAt = time.Now().UTC()
	}

	if id == "" {
		v.ID = uuid.New().String()
		_, err = s.db.ExecContext(ctx, `
			INSERT INTO vehicles (id, source_url, vin, make, model, name, year, price, price_raw,
				currency, mileage, mileage_unit, fuel_type, transmission, description,
				images, videos, template, source, confidence, incomplete, content_hash, scraped_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, v.ID, v.SourceURL, v.VIN, v.Make, v.Model, v.Name, v.Year, v.Price, v.PriceRaw,
			v.Currency, v.Mileage, v.MileageUnit, v.FuelType, v.Transmission, v.Description,
			string(images), string(videos), v.Template, v.Source, v.Confidence,
			boolToInt(v.Incomplete), hash, scrapedAt.Format(time.RFC3339))
		return err
	}

	v.ID = id
	if existingHash == hash {
		// Nothing changed; just refresh the scrape timestamp.
		_, err = s.db.ExecContext(ctx, `UPDATE vehicles SET scraped_at = ? WHERE id = ?`,
			scrapedAt.Format(time.RFC3339), id)
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		UPDATE vehicles SET source_url = ?, vin = ?, make = ?, model = ?, name = ?, year = ?,
			price = ?, price_raw = ?, currency = ?, mileage = ?, mileage_unit = ?,
			fuel_type = ?, transmission = ?, description = ?, images = ?, videos = ?,
			template = ?, source = ?, confidence = ?, incomplete = ?, content_hash = ?, scraped_at = ?
		WHERE id = ?
	`, v.SourceURL, v.VIN, v.Make, v.Model, v.Name, v.Year, v.Price, v.PriceRaw, v.Currency,
		v.Mileage, v.MileageUnit, v.FuelType, v.Transmission, v.Description,
		string(images), string(videos), v.Template, v.Source, v.Confidence,
		boolToInt(v.Incomplete), hash, scrapedAt.Format(time.RFC3339), id)
	return err
}

// findExisting locates the row this vehicle should update: by source URL
// first, then by VIN.
func (s *VehicleService) findExisting(ctx context.Context, v *carscrape.Vehicle) (id, hash string, err error) {
	lookup := func(query string, arg string) (string, string, error) {
		var id, hash string
		err := s.db.QueryRowContext(ctx, query, arg).Scan(&id, &hash)
		if err == sql.ErrNoRows {
			return "", "", nil
		}
		return id, hash, err
	}

	if v.SourceURL != "" {
		return lookup(`SELECT id, content_hash FROM vehicles WHERE source_url = ?`, v.SourceURL)
	}
	if v.VIN != "" {
		return lookup(`SELECT id, content_hash FROM vehicles WHERE vin = ?`, v.VIN)
	}
	return "", "", nil
}

// FindVehicleBySourceURL retrieves a vehicle row by its source URL.
func (s *VehicleService) FindVehicleBySourceURL(ctx context.Context, sourceURL string) (*carscrape.Vehicle, error) {
	var (
		v          carscrape.Vehicle
		images     string
		videos     string
		incomplete int
		scrapedAt  string
		hash       string
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT id, source_url, vin, make, model, name, year, price, price_raw, currency,
			mileage, mileage_unit, fuel_type, transmission, description, images, videos,
			template, source, confidence, incomplete, content_hash, scraped_at
		FROM vehicles WHERE source_url = ?
	`, sourceURL).Scan(&v.ID, &v.SourceURL, &v.VIN, &v.Make, &v.Model, &v.Name, &v.Year,
		&v.Price, &v.PriceRaw, &v.Currency, &v.Mileage, &v.MileageUnit, &v.FuelType,
		&v.Transmission, &v.Description, &images, &videos, &v.Template, &v.Source,
		&v.Confidence, &incomplete, &hash, &scrapedAt)

	if err == sql.ErrNoRows {
		return nil, carscrape.Errorf(carscrape.ENOTFOUND, "vehicle not found")
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(images), &v.Images); err != nil {
		return nil, fmt.Errorf("failed to decode images: %w", err)
	}
	if err := json.Unmarshal([]byte(videos), &v.Videos); err != nil {
		return nil, fmt.Errorf("failed to decode videos: %w", err)
	}
	if len(v.Images) == 0 {
		v.Images = nil
	}
	if len(v.Videos) == 0 {
		v.Videos = nil
	}
	v.Incomplete = incomplete != 0

	v.ScrapedAt, err = time.Parse(time.RFC3339, scrapedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse scraped_at: %w", err)
	}
	return &v, nil
}

// CountVehicles returns the number of stored vehicle rows.
func (s *VehicleService) CountVehicles(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM vehicles`).Scan(&n)
	return n, err
}

func sliceOrEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

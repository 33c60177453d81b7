package fs

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"carscrape"
)

// Exporter writes run output as CSV files. Each file is written to a
// temporary sibling and renamed into place so readers never observe a
// partial export.
type Exporter struct {
	dir string
}

// NewExporter creates an Exporter writing into dir.
func NewExporter(dir string) *Exporter {
	return &Exporter{dir: dir}
}

// Column order matches the Vehicle field order; the XLSX export uses
// the same shape.
var vehicleHeader = []string{
	"source_url", "vin", "make", "model", "name", "year", "price", "price_raw",
	"currency", "mileage", "mileage_unit", "fuel_type", "transmission",
	"description", "images", "videos", "template", "source", "confidence",
	"incomplete", "scraped_at",
}

// WriteVehicles writes vehicles.csv.
func (e *Exporter) WriteVehicles(vehicles []*carscrape.Vehicle) error {
	rows := make([][]string, 0, len(vehicles))
	for _, v := range vehicles {
		rows = append(rows, []string{
			v.SourceURL,
			v.VIN,
			v.Make,
			v.Model,
			v.Name,
			intField(v.Year),
			floatField(v.Price),
			v.PriceRaw,
			v.Currency,
			intField(v.Mileage),
			v.MileageUnit,
			v.FuelType,
			v.Transmission,
			v.Description,
			strings.Join(v.Images, " "),
			strings.Join(v.Videos, " "),
			v.Template,
			v.Source,
			strconv.FormatFloat(v.Confidence, 'f', 2, 64),
			strconv.FormatBool(v.Incomplete),
			v.ScrapedAt.Format(time.RFC3339),
		})
	}
	return e.writeCSV("vehicles.csv", vehicleHeader, rows)
}

var dealerHeader = []string{"site_host", "source_url", "name", "telephone", "email", "address"}

// WriteDealers writes dealers.csv.
func (e *Exporter) WriteDealers(dealers []*carscrape.Dealer) error {
	rows := make([][]string, 0, len(dealers))
	for _, d := range dealers {
		rows = append(rows, []string{d.SiteHost, d.SourceURL, d.Name, d.Telephone, d.Email, d.Address})
	}
	return e.writeCSV("dealers.csv", dealerHeader, rows)
}

// writeCSV writes header and rows to name under the export directory,
// atomically.
func (e *Exporter) writeCSV(name string, header []string, rows [][]string) error {
	if err := os.MkdirAll(e.dir, 0755); err != nil {
		return err
	}

	final := filepath.Join(e.dir, name)
	tmp := final + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := w.WriteAll(rows); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, final); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to finalize %s: %w", name, err)
	}
	return nil
}

func intField(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func floatField(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

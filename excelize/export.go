// Package excelize writes run output as a two-sheet XLSX workbook.
package excelize

import (
	"fmt"
	"strings"
	"time"

	"carscrape"
	"github.com/xuri/excelize/v2"
)

const (
	vehicleSheet = "Vehicles"
	dealerSheet  = "Dealers"
)

// Column order matches the Vehicle field order; the CSV export uses the
// same shape.
var vehicleColumns = []string{
	"Source URL", "VIN", "Make", "Model", "Name", "Year", "Price", "Price (raw)",
	"Currency", "Mileage", "Mileage unit", "Fuel", "Transmission", "Description",
	"Images", "Videos", "Template", "Source", "Confidence", "Incomplete",
	"Scraped at",
}

var dealerColumns = []string{"Site", "Source URL", "Name", "Telephone", "Email", "Address"}

// WriteWorkbook writes vehicles and dealers to an XLSX file at path.
func WriteWorkbook(path string, vehicles []*carscrape.Vehicle, dealers []*carscrape.Dealer) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", vehicleSheet)
	if _, err := f.NewSheet(dealerSheet); err != nil {
		return err
	}

	if err := writeRow(f, vehicleSheet, 1, headerCells(vehicleColumns)); err != nil {
		return err
	}
	for i, v := range vehicles {
		cells := []any{
			v.SourceURL, v.VIN, v.Make, v.Model, v.Name,
			numCell(v.Year), floatCell(v.Price), v.PriceRaw, v.Currency,
			numCell(v.Mileage), v.MileageUnit, v.FuelType, v.Transmission,
			v.Description, strings.Join(v.Images, " "),
			strings.Join(v.Videos, " "), v.Template, v.Source,
			v.Confidence, v.Incomplete,
			v.ScrapedAt.Format(time.RFC3339),
		}
		if err := writeRow(f, vehicleSheet, i+2, cells); err != nil {
			return err
		}
	}

	if err := writeRow(f, dealerSheet, 1, headerCells(dealerColumns)); err != nil {
		return err
	}
	for i, d := range dealers {
		cells := []any{d.SiteHost, d.SourceURL, d.Name, d.Telephone, d.Email, d.Address}
		if err := writeRow(f, dealerSheet, i+2, cells); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}

func writeRow(f *excelize.File, sheet string, row int, cells []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
		return fmt.Errorf("failed to write %s row %d: %w", sheet, row, err)
	}
	return nil
}

func headerCells(columns []string) []any {
	out := make([]any, len(columns))
	for i, c := range columns {
		out[i] = c
	}
	return out
}

// numCell maps a missing numeric to an empty cell instead of zero.
func numCell(v *int) any {
	if v == nil {
		return ""
	}
	return *v
}

func floatCell(v *float64) any {
	if v == nil {
		return ""
	}
	return *v
}

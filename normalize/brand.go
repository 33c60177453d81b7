package normalize

import "strings"

// Canonical spellings for brands whose names dealers abbreviate or
// case inconsistently.
var brandAliases = map[string]string{
	"alfa":          "Alfa Romeo",
	"alfa romeo":    "Alfa Romeo",
	"aston martin":  "Aston Martin",
	"audi":          "Audi",
	"bmw":           "BMW",
	"citroen":       "Citroen",
	"dacia":         "Dacia",
	"ds":            "DS",
	"fiat":          "Fiat",
	"ford":          "Ford",
	"honda":         "Honda",
	"hyundai":       "Hyundai",
	"jaguar":        "Jaguar",
	"kia":           "Kia",
	"land rover":    "Land Rover",
	"landrover":     "Land Rover",
	"lexus":         "Lexus",
	"mazda":         "Mazda",
	"merc":          "Mercedes-Benz",
	"mercedes":      "Mercedes-Benz",
	"mercedes-benz": "Mercedes-Benz",
	"mg":            "MG",
	"mini":          "MINI",
	"mitsubishi":    "Mitsubishi",
	"nissan":        "Nissan",
	"peugeot":       "Peugeot",
	"porsche":       "Porsche",
	"renault":       "Renault",
	"seat":          "SEAT",
	"skoda":         "Skoda",
	"suzuki":        "Suzuki",
	"tesla":         "Tesla",
	"toyota":        "Toyota",
	"vauxhall":      "Vauxhall",
	"volkswagen":    "Volkswagen",
	"volvo":         "Volvo",
	"vw":            "Volkswagen",
}

// CanonicalBrand maps a raw brand string to its canonical spelling.
// Unknown brands are returned trimmed but otherwise untouched.
func CanonicalBrand(raw string) string {
	raw = strings.TrimSpace(raw)
	if canonical, ok := brandAliases[strings.ToLower(raw)]; ok {
		return canonical
	}
	return raw
}

package normalize

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

const kmToMiles = 0.621371

var mileageNumberRE = regexp.MustCompile(`([0-9][0-9,.]*)\s*(k\b)?`)

// ParseMileage extracts an integer mileage in miles from raw strings
// like "42,000 miles", "42k", "12-15k" or "68,000 km". Ranges resolve to
// their upper bound; kilometre readings are converted to miles. The
// returned unit is always "miles" when a value was parsed.
func ParseMileage(raw string) (*int, string) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return nil, ""
	}

	best := 0.0
	found := false
	for _, m := range mileageNumberRE.FindAllStringSubmatch(raw, -1) {
		num := strings.ReplaceAll(m[1], ",", "")
		value, err := strconv.ParseFloat(strings.TrimSuffix(num, "."), 64)
		if err != nil {
			continue
		}
		if m[2] != "" {
			value *= 1000
		}
		// A range like "12-15k" keeps its upper bound.
		if value > best {
			best = value
		}
		found = true
	}
	if !found {
		return nil, ""
	}

	// A bare "15k" range partner without the suffix stays plausible only
	// when the whole string carries the k shorthand.
	if strings.Contains(raw, "k") && !strings.Contains(raw, "km") && best < 1000 {
		best *= 1000
	}

	if strings.Contains(raw, "km") || strings.Contains(raw, "kilomet") {
		best *= kmToMiles
	}

	miles := int(math.Round(best))
	if miles <= 0 {
		return nil, ""
	}
	return &miles, "miles"
}

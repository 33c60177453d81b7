package normalize

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	minYear = 1900
	maxYear = 2030

	// Two-digit years at or below the pivot read as 20xx.
	twoDigitPivot = 30
)

var (
	fourDigitYearRE = regexp.MustCompile(`\b(19[0-9]{2}|20[0-9]{2})\b`)
	twoDigitYearRE  = regexp.MustCompile(`^\(?([0-9]{2})\)?$`)
)

// ParseYear extracts a model year. Four-digit years are accepted in the
// 1900-2030 window anywhere in the string; bare two-digit values pivot
// around 30 ("19" reads as 2019, "98" as 1998).
func ParseYear(raw string) *int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	if m := fourDigitYearRE.FindString(raw); m != "" {
		year, _ := strconv.Atoi(m)
		if year >= minYear && year <= maxYear {
			return &year
		}
		return nil
	}

	if m := twoDigitYearRE.FindStringSubmatch(raw); m != nil {
		year, _ := strconv.Atoi(m[1])
		if year <= twoDigitPivot {
			year += 2000
		} else {
			year += 1900
		}
		return &year
	}
	return nil
}

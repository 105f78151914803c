package bnm

import (
	"strings"

	"github.com/shopspring/decimal"
)

// parseFrenchAmount parses a French-formatted amount string into whole MRU.
// Format examples: "12 345,50" -> 12346 (rounded), "1.250" -> 1250,
// "-588,74" -> -589. Both space and dot appear as thousand separators.
func parseFrenchAmount(s string) (int64, error) {
	clean := strings.ReplaceAll(s, " ", "")
	clean = strings.ReplaceAll(clean, " ", "")
	clean = strings.ReplaceAll(clean, ".", "")
	clean = strings.ReplaceAll(clean, ",", ".")

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0, err
	}

	return d.Round(0).IntPart(), nil
}

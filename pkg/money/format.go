package money

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// DisplayPlaces is the number of decimals used when showing amounts and rates.
const DisplayPlaces = 4

// Format renders v with exactly DisplayPlaces decimals. It is a display-only
// helper; computations keep full float64 precision.
func Format(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		// decimal cannot represent these
		return strconv.FormatFloat(v, 'f', DisplayPlaces, 64)
	}
	return decimal.NewFromFloat(v).StringFixed(DisplayPlaces)
}

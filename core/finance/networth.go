package finance

import (
	"fincalc/internal/errors"
)

// NetWorth computes sum(assets) - sum(liabilities). Every element is
// validated before summation; the first negative element aborts with a
// VALUE_ERROR naming its positional index, so no partial sum escapes.
func NetWorth(assets, liabilities []float64) (float64, error) {
	var totalAssets float64
	for i, a := range assets {
		if a < 0 {
			return 0, errors.InvalidValuef("asset_%d cannot be negative", i)
		}
		totalAssets += a
	}

	var totalLiabilities float64
	for i, l := range liabilities {
		if l < 0 {
			return 0, errors.InvalidValuef("liability_%d cannot be negative", i)
		}
		totalLiabilities += l
	}

	return Round2(totalAssets - totalLiabilities), nil
}

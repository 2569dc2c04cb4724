package indicator

import (
	"math"

	"github.com/moznion/go-optional"

	"github.com/rxtech-lab/argo-analysis/internal/types"
)

// BollingerBands computes the Bollinger Bands over the given window. The
// middle band is the SMA of values, and the upper and lower bands sit
// width standard deviations above and below it.
func BollingerBands(values []float64, window int, width float64) (upper, middle, lower types.Series) {
	middle = SMA(values, window)
	upper = types.NewSeries(len(values))
	lower = types.NewSeries(len(values))

	if window <= 0 {
		return upper, middle, lower
	}

	sum := 0.0
	sumSquares := 0.0

	for i, v := range values {
		sum += v
		sumSquares += v * v

		if i >= window {
			old := values[i-window]
			sum -= old
			sumSquares -= old * old
		}

		if i >= window-1 {
			n := float64(window)
			mean := sum / n

			variance := sumSquares/n - mean*mean
			if variance < 0 {
				// Guard against floating point rounding below zero.
				variance = 0
			}

			std := math.Sqrt(variance)
			upper[i] = optional.Some(mean + width*std)
			lower[i] = optional.Some(mean - width*std)
		}
	}

	return upper, middle, lower
}

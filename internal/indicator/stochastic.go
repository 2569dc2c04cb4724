package indicator

import (
	"math"

	"github.com/moznion/go-optional"

	"github.com/rxtech-lab/argo-analysis/internal/types"
)

// Stochastic computes the stochastic oscillator %K and %D lines. %K
// compares the latest close with the highest high and lowest low over
// kWindow bars; %D is the kWindow-aligned SMA of %K over dWindow.
// A flat range (highest high equals lowest low) reads as neutral 50.
func Stochastic(bars []types.Bar, kWindow, dWindow int) (k, d types.Series) {
	k = types.NewSeries(len(bars))

	if kWindow <= 0 {
		d = types.NewSeries(len(bars))

		return k, d
	}

	for i := kWindow - 1; i < len(bars); i++ {
		highestHigh := math.Inf(-1)
		lowestLow := math.Inf(1)

		for j := i - kWindow + 1; j <= i; j++ {
			highestHigh = math.Max(highestHigh, bars[j].High)
			lowestLow = math.Min(lowestLow, bars[j].Low)
		}

		if highestHigh == lowestLow {
			k[i] = optional.Some(50.0)
		} else {
			k[i] = optional.Some(100 * (bars[i].Close - lowestLow) / (highestHigh - lowestLow))
		}
	}

	d = smaOverSeries(k, dWindow)

	return k, d
}

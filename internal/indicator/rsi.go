package indicator

import (
	"github.com/moznion/go-optional"

	"github.com/rxtech-lab/argo-analysis/internal/types"
)

// RSI computes the Relative Strength Index over the given period using
// Wilder's smoothing. The first defined position is index period, since
// period+1 closes are needed for the initial averages.
func RSI(values []float64, period int) types.Series {
	out := types.NewSeries(len(values))
	if period <= 0 || len(values) < period+1 {
		return out
	}

	// Initial averages over the first period of price changes.
	avgGain := 0.0
	avgLoss := 0.0

	for i := 1; i <= period; i++ {
		change := values[i] - values[i-1]
		if change > 0 {
			avgGain += change
		} else {
			avgLoss += -change
		}
	}

	avgGain /= float64(period)
	avgLoss /= float64(period)
	out[period] = optional.Some(rsiValue(avgGain, avgLoss))

	// Wilder's smoothing for subsequent positions.
	for i := period + 1; i < len(values); i++ {
		change := values[i] - values[i-1]

		gain := 0.0
		loss := 0.0

		if change > 0 {
			gain = change
		} else {
			loss = -change
		}

		avgGain = (avgGain*float64(period-1) + gain) / float64(period)
		avgLoss = (avgLoss*float64(period-1) + loss) / float64(period)
		out[i] = optional.Some(rsiValue(avgGain, avgLoss))
	}

	return out
}

func rsiValue(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		return 100 // Perfect uptrend
	}

	rs := avgGain / avgLoss

	return 100 - (100 / (1 + rs))
}

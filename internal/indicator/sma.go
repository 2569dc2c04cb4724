package indicator

import (
	"github.com/moznion/go-optional"

	"github.com/rxtech-lab/argo-analysis/internal/types"
)

// SMA computes the simple moving average of values over the given window.
// The result is aligned with values; positions before the window has
// filled are undefined.
func SMA(values []float64, window int) types.Series {
	return smaOverSeries(types.SeriesFromValues(values), window)
}

// smaOverSeries computes a rolling arithmetic mean over the defined suffix
// of src using a sliding-window sum. src must be undefined for a leading
// prefix and defined afterwards, which holds for every series produced by
// this package.
func smaOverSeries(src types.Series, window int) types.Series {
	out := types.NewSeries(len(src))
	if window <= 0 {
		return out
	}

	first := src.FirstDefined()
	if first < 0 {
		return out
	}

	sum := 0.0

	for i := first; i < len(src); i++ {
		if src[i].IsNone() {
			continue
		}

		sum += src[i].Unwrap()

		if i-first+1 > window {
			sum -= src[i-window].Unwrap()
		}

		if i-first+1 >= window {
			out[i] = optional.Some(sum / float64(window))
		}
	}

	return out
}

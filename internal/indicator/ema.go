package indicator

import (
	"github.com/moznion/go-optional"

	"github.com/rxtech-lab/argo-analysis/internal/types"
)

// EMA computes the exponential moving average of values over the given
// span. The recursion is seeded with the simple average of the first span
// values; positions before the seed are undefined.
func EMA(values []float64, span int) types.Series {
	return emaOverSeries(types.SeriesFromValues(values), span)
}

// emaOverSeries applies the EMA recursion over the defined suffix of src.
func emaOverSeries(src types.Series, span int) types.Series {
	out := types.NewSeries(len(src))
	if span <= 0 {
		return out
	}

	first := src.FirstDefined()
	if first < 0 || len(src)-first < span {
		return out
	}

	// Seed with the SMA of the first span defined values.
	sum := 0.0
	for i := first; i < first+span; i++ {
		sum += src[i].Unwrap()
	}

	prev := sum / float64(span)
	seedIndex := first + span - 1
	out[seedIndex] = optional.Some(prev)

	alpha := 2.0 / (float64(span) + 1.0)

	for i := seedIndex + 1; i < len(src); i++ {
		prev = (src[i].Unwrap()-prev)*alpha + prev
		out[i] = optional.Some(prev)
	}

	return out
}

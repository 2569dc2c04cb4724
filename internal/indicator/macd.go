package indicator

import (
	"github.com/moznion/go-optional"

	"github.com/rxtech-lab/argo-analysis/internal/types"
)

// MACD computes the Moving Average Convergence Divergence line and its
// signal line. The MACD line is EMA(fastSpan) - EMA(slowSpan) at every
// position where both are defined; the signal line is the EMA(signalSpan)
// of the MACD line.
func MACD(values []float64, fastSpan, slowSpan, signalSpan int) (line, signalLine types.Series) {
	fast := EMA(values, fastSpan)
	slow := EMA(values, slowSpan)

	line = types.NewSeries(len(values))

	for i := range line {
		if fast[i].IsSome() && slow[i].IsSome() {
			line[i] = optional.Some(fast[i].Unwrap() - slow[i].Unwrap())
		}
	}

	signalLine = emaOverSeries(line, signalSpan)

	return line, signalLine
}

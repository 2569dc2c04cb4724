package signal

import (
	"github.com/rxtech-lab/argo-analysis/internal/types"
)

// Aggregate reduces a signal set to one recommendation and a strength
// score in [0, 100]. Majority of BUY or SELL wins with strength equal to
// the winning share of all rules; any tie, including the empty set, is a
// neutral HOLD at strength 50.
func Aggregate(signals types.SignalSet) (types.SignalType, float64) {
	buy, sell, _ := signals.Count()

	switch {
	case buy > sell:
		return types.SignalTypeBuy, 100 * float64(buy) / float64(len(signals))
	case sell > buy:
		return types.SignalTypeSell, 100 * float64(sell) / float64(len(signals))
	default:
		return types.SignalTypeHold, 50
	}
}

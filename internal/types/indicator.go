package types

// IndicatorType identifies a derived numeric series in an IndicatorSet.
type IndicatorType string

const (
	IndicatorTypeSMA20      IndicatorType = "sma_20"
	IndicatorTypeSMA50      IndicatorType = "sma_50"
	IndicatorTypeEMA12      IndicatorType = "ema_12"
	IndicatorTypeEMA26      IndicatorType = "ema_26"
	IndicatorTypeMACD       IndicatorType = "macd"
	IndicatorTypeMACDSignal IndicatorType = "macd_signal"
	IndicatorTypeRSI        IndicatorType = "rsi"
	IndicatorTypeBBUpper    IndicatorType = "bb_upper"
	IndicatorTypeBBMiddle   IndicatorType = "bb_middle"
	IndicatorTypeBBLower    IndicatorType = "bb_lower"
	IndicatorTypeStochK     IndicatorType = "stoch_k"
	IndicatorTypeStochD     IndicatorType = "stoch_d"
)

// IndicatorSet maps indicator names to series aligned with the source bars.
// Every series has the same length as the bar series it was computed from.
type IndicatorSet map[IndicatorType]Series

// Series returns the named series, or an empty series when absent so that
// lookups on a partially built set degrade to undefined values.
func (s IndicatorSet) Series(name IndicatorType) Series {
	if series, ok := s[name]; ok {
		return series
	}

	return nil
}

package types

// SignalType is a categorical trading signal.
type SignalType string

const (
	// SignalTypeBuy indicates a bullish signal.
	SignalTypeBuy SignalType = "BUY"
	// SignalTypeSell indicates a bearish signal.
	SignalTypeSell SignalType = "SELL"
	// SignalTypeHold indicates no actionable signal.
	SignalTypeHold SignalType = "HOLD"
)

// RuleType identifies a signal rule. The values are part of the wire
// contract consumed by the presentation layer and must not change.
type RuleType string

const (
	RuleTypeMACrossover RuleType = "MA_Crossover"
	RuleTypeMACD        RuleType = "MACD"
	RuleTypeRSI         RuleType = "RSI"
	RuleTypeBollinger   RuleType = "Bollinger_Bands"
	RuleTypeStochastic  RuleType = "Stochastic"
)

// AllRuleTypes lists every signal rule in evaluation order.
var AllRuleTypes = []RuleType{
	RuleTypeMACrossover,
	RuleTypeMACD,
	RuleTypeRSI,
	RuleTypeBollinger,
	RuleTypeStochastic,
}

// SignalSet maps each rule to the signal it produced. A set is created
// fresh per analysis call and never mutated afterwards.
type SignalSet map[RuleType]SignalType

// Count returns the number of BUY, SELL and HOLD signals in the set.
func (s SignalSet) Count() (buy, sell, hold int) {
	for _, signal := range s {
		switch signal {
		case SignalTypeBuy:
			buy++
		case SignalTypeSell:
			sell++
		case SignalTypeHold:
			hold++
		}
	}

	return buy, sell, hold
}

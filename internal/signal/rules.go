// Package signal evaluates indicator series against fixed thresholds and
// crossovers, producing one BUY/SELL/HOLD signal per rule. Rules only look
// at the two most recent aligned positions; a rule whose inputs are still
// undefined resolves to HOLD.
package signal

import (
	"github.com/go-playground/validator/v10"

	"github.com/rxtech-lab/argo-analysis/internal/types"
	"github.com/rxtech-lab/argo-analysis/pkg/errors"
)

// Config holds the signal rule thresholds.
type Config struct {
	RSIOversold     float64 `yaml:"rsi_oversold" validate:"required,gt=0,ltfield=RSIOverbought"`
	RSIOverbought   float64 `yaml:"rsi_overbought" validate:"required,lt=100"`
	StochOversold   float64 `yaml:"stoch_oversold" validate:"required,gt=0,ltfield=StochOverbought"`
	StochOverbought float64 `yaml:"stoch_overbought" validate:"required,lt=100"`
}

// DefaultConfig returns the conventional oscillator thresholds.
func DefaultConfig() Config {
	return Config{
		RSIOversold:     30,
		RSIOverbought:   70,
		StochOversold:   20,
		StochOverbought: 80,
	}
}

// Engine evaluates the rule set over an IndicatorSet.
type Engine struct {
	config Config
}

// NewEngine creates a signal engine after validating the configuration.
func NewEngine(config Config) (*Engine, error) {
	if err := validator.New().Struct(config); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid signal configuration", err)
	}

	return &Engine{config: config}, nil
}

// Evaluate runs every rule against the latest and previous positions of
// the indicator set and returns one signal per rule.
func (e *Engine) Evaluate(bars []types.Bar, set types.IndicatorSet) types.SignalSet {
	signals := types.SignalSet{
		types.RuleTypeMACrossover: crossover(
			set.Series(types.IndicatorTypeSMA20),
			set.Series(types.IndicatorTypeSMA50),
		),
		types.RuleTypeMACD: crossover(
			set.Series(types.IndicatorTypeMACD),
			set.Series(types.IndicatorTypeMACDSignal),
		),
		types.RuleTypeRSI:       e.rsiLevel(set.Series(types.IndicatorTypeRSI)),
		types.RuleTypeBollinger: e.bollingerTouch(bars, set),
		types.RuleTypeStochastic: e.stochasticLevel(
			set.Series(types.IndicatorTypeStochK),
			set.Series(types.IndicatorTypeStochD),
		),
	}

	return signals
}

// crossover signals BUY when fast crosses above slow between the previous
// and latest positions, SELL on the symmetric downward cross.
func crossover(fast, slow types.Series) types.SignalType {
	fastLatest, fastPrev := fast.Latest(), fast.Previous()
	slowLatest, slowPrev := slow.Latest(), slow.Previous()

	if fastLatest.IsNone() || fastPrev.IsNone() || slowLatest.IsNone() || slowPrev.IsNone() {
		return types.SignalTypeHold
	}

	if fastPrev.Unwrap() <= slowPrev.Unwrap() && fastLatest.Unwrap() > slowLatest.Unwrap() {
		return types.SignalTypeBuy
	}

	if fastPrev.Unwrap() >= slowPrev.Unwrap() && fastLatest.Unwrap() < slowLatest.Unwrap() {
		return types.SignalTypeSell
	}

	return types.SignalTypeHold
}

func (e *Engine) rsiLevel(rsi types.Series) types.SignalType {
	latest := rsi.Latest()
	if latest.IsNone() {
		return types.SignalTypeHold
	}

	switch {
	case latest.Unwrap() < e.config.RSIOversold:
		return types.SignalTypeBuy
	case latest.Unwrap() > e.config.RSIOverbought:
		return types.SignalTypeSell
	default:
		return types.SignalTypeHold
	}
}

// bollingerTouch signals BUY when the latest close touches or pierces the
// lower band, SELL at the upper band.
func (e *Engine) bollingerTouch(bars []types.Bar, set types.IndicatorSet) types.SignalType {
	if len(bars) == 0 {
		return types.SignalTypeHold
	}

	upper := set.Series(types.IndicatorTypeBBUpper).Latest()
	lower := set.Series(types.IndicatorTypeBBLower).Latest()

	if upper.IsNone() || lower.IsNone() {
		return types.SignalTypeHold
	}

	close := bars[len(bars)-1].Close

	switch {
	case close <= lower.Unwrap():
		return types.SignalTypeBuy
	case close >= upper.Unwrap():
		return types.SignalTypeSell
	default:
		return types.SignalTypeHold
	}
}

// stochasticLevel requires both %K and %D past the threshold before it
// signals.
func (e *Engine) stochasticLevel(k, d types.Series) types.SignalType {
	kLatest, dLatest := k.Latest(), d.Latest()

	if kLatest.IsNone() || dLatest.IsNone() {
		return types.SignalTypeHold
	}

	switch {
	case kLatest.Unwrap() < e.config.StochOversold && dLatest.Unwrap() < e.config.StochOversold:
		return types.SignalTypeBuy
	case kLatest.Unwrap() > e.config.StochOverbought && dLatest.Unwrap() > e.config.StochOverbought:
		return types.SignalTypeSell
	default:
		return types.SignalTypeHold
	}
}

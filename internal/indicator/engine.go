// Package indicator computes technical indicator series from OHLCV bars.
// Every indicator is an explicit rolling-window computation producing a
// series aligned index-for-index with its input, with undefined positions
// until the window has filled.
package indicator

import (
	"github.com/go-playground/validator/v10"

	"github.com/rxtech-lab/argo-analysis/internal/types"
	"github.com/rxtech-lab/argo-analysis/pkg/errors"
)

// Config holds the window parameters for the indicator engine.
type Config struct {
	SMAFastWindow   int     `yaml:"sma_fast_window" validate:"required,min=1"`
	SMASlowWindow   int     `yaml:"sma_slow_window" validate:"required,min=1,gtfield=SMAFastWindow"`
	EMAFastSpan     int     `yaml:"ema_fast_span" validate:"required,min=1"`
	EMASlowSpan     int     `yaml:"ema_slow_span" validate:"required,min=1,gtfield=EMAFastSpan"`
	MACDSignalSpan  int     `yaml:"macd_signal_span" validate:"required,min=1"`
	RSIPeriod       int     `yaml:"rsi_period" validate:"required,min=1"`
	BollingerWindow int     `yaml:"bollinger_window" validate:"required,min=1"`
	BollingerWidth  float64 `yaml:"bollinger_width" validate:"required,gt=0"`
	StochKWindow    int     `yaml:"stoch_k_window" validate:"required,min=1"`
	StochDWindow    int     `yaml:"stoch_d_window" validate:"required,min=1"`
}

// DefaultConfig returns the standard parameterization: SMA(20/50),
// EMA(12/26), MACD signal 9, RSI(14), Bollinger(20, 2σ), Stochastic(14, 3).
func DefaultConfig() Config {
	return Config{
		SMAFastWindow:   20,
		SMASlowWindow:   50,
		EMAFastSpan:     12,
		EMASlowSpan:     26,
		MACDSignalSpan:  9,
		RSIPeriod:       14,
		BollingerWindow: 20,
		BollingerWidth:  2.0,
		StochKWindow:    14,
		StochDWindow:    3,
	}
}

// Engine computes a full IndicatorSet from a bar series.
type Engine struct {
	config Config
}

// NewEngine creates an indicator engine after validating the configuration.
func NewEngine(config Config) (*Engine, error) {
	if err := validator.New().Struct(config); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid indicator configuration", err)
	}

	return &Engine{config: config}, nil
}

// Compute derives every indicator series from bars. All series in the
// returned set share the length of bars. A series shorter than a window
// yields undefined values for that indicator rather than an error.
func (e *Engine) Compute(bars []types.Bar) types.IndicatorSet {
	closes := types.Closes(bars)

	macdLine, macdSignal := MACD(closes, e.config.EMAFastSpan, e.config.EMASlowSpan, e.config.MACDSignalSpan)
	bbUpper, bbMiddle, bbLower := BollingerBands(closes, e.config.BollingerWindow, e.config.BollingerWidth)
	stochK, stochD := Stochastic(bars, e.config.StochKWindow, e.config.StochDWindow)

	return types.IndicatorSet{
		types.IndicatorTypeSMA20:      SMA(closes, e.config.SMAFastWindow),
		types.IndicatorTypeSMA50:      SMA(closes, e.config.SMASlowWindow),
		types.IndicatorTypeEMA12:      EMA(closes, e.config.EMAFastSpan),
		types.IndicatorTypeEMA26:      EMA(closes, e.config.EMASlowSpan),
		types.IndicatorTypeMACD:       macdLine,
		types.IndicatorTypeMACDSignal: macdSignal,
		types.IndicatorTypeRSI:        RSI(closes, e.config.RSIPeriod),
		types.IndicatorTypeBBUpper:    bbUpper,
		types.IndicatorTypeBBMiddle:   bbMiddle,
		types.IndicatorTypeBBLower:    bbLower,
		types.IndicatorTypeStochK:     stochK,
		types.IndicatorTypeStochD:     stochD,
	}
}

// Package risk computes volatility and risk-adjusted return statistics
// from a closing price series. Every metric is derived from simple daily
// returns; a metric whose denominator is zero or whose inputs are missing
// resolves to an undefined value instead of failing the whole computation.
package risk

import (
	"math"
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/moznion/go-optional"

	"github.com/rxtech-lab/argo-analysis/internal/types"
	"github.com/rxtech-lab/argo-analysis/pkg/errors"
)

// Config holds the risk engine parameters.
type Config struct {
	// RiskFreeRate is the annual risk-free rate, pro-rated daily for
	// excess return calculations.
	RiskFreeRate float64 `yaml:"risk_free_rate" validate:"gte=0,lt=1"`
	// TradingDaysPerYear is the annualization factor base.
	TradingDaysPerYear int `yaml:"trading_days_per_year" validate:"required,min=1"`
}

// DefaultConfig returns the standard parameterization: 2% annual
// risk-free rate over 252 trading days.
func DefaultConfig() Config {
	return Config{
		RiskFreeRate:       0.02,
		TradingDaysPerYear: 252,
	}
}

// Engine computes VolatilityMetrics and RiskMetrics from closing prices.
type Engine struct {
	config Config
}

// NewEngine creates a risk engine after validating the configuration.
func NewEngine(config Config) (*Engine, error) {
	if err := validator.New().Struct(config); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid risk configuration", err)
	}

	return &Engine{config: config}, nil
}

// Volatility computes volatility statistics from closes. A series shorter
// than 2 points yields fully undefined metrics.
func (e *Engine) Volatility(closes []float64) types.VolatilityMetrics {
	var metrics types.VolatilityMetrics

	returns, ok := dailyReturns(closes)
	if !ok {
		return metrics
	}

	if std, defined := sampleStd(returns); defined {
		metrics.DailyVolatility = optional.Some(std)
		metrics.AnnualizedVolatility = optional.Some(std * math.Sqrt(float64(e.config.TradingDaysPerYear)))
	}

	metrics.MaxDrawdown = optional.Some(maxDrawdown(closes))

	if len(returns) > 0 {
		valueAtRisk := percentile(returns, 0.05)
		metrics.VaR95 = optional.Some(valueAtRisk)
		metrics.CVaR95 = optional.Some(tailMean(returns, valueAtRisk))
	}

	return metrics
}

// RiskAdjusted computes risk-adjusted return statistics from closes. A
// series shorter than 2 points yields fully undefined metrics; individual
// ratios with a zero or undefined denominator are undefined in isolation.
func (e *Engine) RiskAdjusted(closes []float64) types.RiskMetrics {
	var metrics types.RiskMetrics

	returns, ok := dailyReturns(closes)
	if !ok {
		return metrics
	}

	days := float64(e.config.TradingDaysPerYear)
	meanReturn := mean(returns)
	excessMean := meanReturn - e.config.RiskFreeRate/days

	if std, defined := sampleStd(returns); defined && std > 0 {
		metrics.SharpeRatio = optional.Some(excessMean / std * math.Sqrt(days))
	}

	var negatives []float64

	for _, r := range returns {
		if r < 0 {
			negatives = append(negatives, r)
		}
	}

	if std, defined := sampleStd(negatives); defined && std > 0 {
		metrics.SortinoRatio = optional.Some(excessMean / std * math.Sqrt(days))
	}

	if drawdown := maxDrawdown(closes); drawdown < 0 {
		metrics.CalmarRatio = optional.Some(meanReturn * days / math.Abs(drawdown))
	}

	if closes[0] != 0 {
		metrics.TotalReturn = optional.Some((closes[len(closes)-1]/closes[0] - 1) * 100)
	}

	return metrics
}

// dailyReturns computes simple returns close_t/close_{t-1} - 1. It reports
// false when fewer than 2 closes are available or a previous close is
// zero, in which case no metric can be derived.
func dailyReturns(closes []float64) ([]float64, bool) {
	if len(closes) < 2 {
		return nil, false
	}

	returns := make([]float64, 0, len(closes)-1)

	for i := 1; i < len(closes); i++ {
		if closes[i-1] == 0 {
			return nil, false
		}

		returns = append(returns, closes[i]/closes[i-1]-1)
	}

	return returns, true
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sum := 0.0
	for _, v := range values {
		sum += v
	}

	return sum / float64(len(values))
}

// sampleStd computes the sample standard deviation (ddof=1). It reports
// false when fewer than 2 values are available.
func sampleStd(values []float64) (float64, bool) {
	if len(values) < 2 {
		return 0, false
	}

	m := mean(values)
	sumSquares := 0.0

	for _, v := range values {
		dev := v - m
		sumSquares += dev * dev
	}

	return math.Sqrt(sumSquares / float64(len(values)-1)), true
}

// maxDrawdown is the minimum of close_t/runningMax - 1 over the series.
// The result is never positive.
func maxDrawdown(closes []float64) float64 {
	drawdown := 0.0
	runningMax := math.Inf(-1)

	for _, c := range closes {
		runningMax = math.Max(runningMax, c)

		if runningMax > 0 {
			drawdown = math.Min(drawdown, c/runningMax-1)
		}
	}

	return drawdown
}

// percentile computes the q-th percentile of values using linear
// interpolation between the closest ranks.
func percentile(values []float64, q float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	if len(sorted) == 1 {
		return sorted[0]
	}

	pos := q * float64(len(sorted)-1)
	lower := int(math.Floor(pos))

	if lower+1 >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	frac := pos - float64(lower)

	return sorted[lower] + frac*(sorted[lower+1]-sorted[lower])
}

// tailMean averages the values at or below the given threshold.
func tailMean(values []float64, threshold float64) float64 {
	var tail []float64

	for _, v := range values {
		if v <= threshold {
			tail = append(tail, v)
		}
	}

	return mean(tail)
}

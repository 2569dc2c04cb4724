package types

import (
	"time"

	"github.com/moznion/go-optional"
)

// VolatilityMetrics holds volatility statistics derived from the closing
// price series. Metrics whose inputs are missing or degenerate are null.
type VolatilityMetrics struct {
	// DailyVolatility is the sample standard deviation of daily returns.
	DailyVolatility optional.Option[float64] `json:"daily_volatility"`
	// AnnualizedVolatility is the daily volatility scaled by sqrt(252).
	AnnualizedVolatility optional.Option[float64] `json:"annualized_volatility"`
	// MaxDrawdown is the largest peak-to-trough decline, always <= 0.
	MaxDrawdown optional.Option[float64] `json:"max_drawdown"`
	// VaR95 is the 5th percentile of daily returns.
	VaR95 optional.Option[float64] `json:"var_95"`
	// CVaR95 is the mean of returns at or below the 5th percentile.
	CVaR95 optional.Option[float64] `json:"cvar_95"`
}

// RiskMetrics holds risk-adjusted return statistics. Ratios whose
// denominator is zero or undefined are null.
type RiskMetrics struct {
	SharpeRatio  optional.Option[float64] `json:"sharpe_ratio"`
	SortinoRatio optional.Option[float64] `json:"sortino_ratio"`
	CalmarRatio  optional.Option[float64] `json:"calmar_ratio"`
	// TotalReturn is the return over the whole series, as a percentage.
	TotalReturn optional.Option[float64] `json:"total_return"`
}

// AnalysisResult is the outcome of one analysis request. The JSON field
// names are the wire contract consumed by chart builders and API clients.
type AnalysisResult struct {
	Symbol         string            `json:"symbol"`
	CurrentPrice   float64           `json:"current_price"`
	PriceChange    float64           `json:"price_change"`
	PriceChangePct float64           `json:"price_change_pct"`
	Volume         float64           `json:"volume"`
	Signals        SignalSet         `json:"signals"`
	SignalStrength float64           `json:"signal_strength"`
	Recommendation SignalType        `json:"recommendation"`
	Volatility     VolatilityMetrics `json:"volatility"`
	RiskMetrics    RiskMetrics       `json:"risk_metrics"`
	LastUpdated    time.Time         `json:"last_updated"`
	DataPoints     int               `json:"data_points"`
}

// StockProfile holds fundamental and sentiment indicators for a symbol,
// passed through from the market data provider without computation.
// Fields the provider cannot supply are null.
type StockProfile struct {
	Symbol        string                   `json:"symbol"`
	MarketCap     optional.Option[float64] `json:"market_cap"`
	PERatio       optional.Option[float64] `json:"pe_ratio"`
	ForwardPE     optional.Option[float64] `json:"forward_pe"`
	PriceToBook   optional.Option[float64] `json:"price_to_book"`
	DividendYield optional.Option[float64] `json:"dividend_yield"`
	Beta          optional.Option[float64] `json:"beta"`
	Sector        optional.Option[string]  `json:"sector"`
	Industry      optional.Option[string]  `json:"industry"`
}

// Package analyzer orchestrates the analysis pipeline: fetch bars,
// compute indicators and risk statistics, evaluate signal rules and
// aggregate them into one recommendation per request.
package analyzer

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/rxtech-lab/argo-analysis/internal/indicator"
	"github.com/rxtech-lab/argo-analysis/internal/logger"
	"github.com/rxtech-lab/argo-analysis/internal/risk"
	"github.com/rxtech-lab/argo-analysis/internal/signal"
	"github.com/rxtech-lab/argo-analysis/internal/types"
	"github.com/rxtech-lab/argo-analysis/pkg/errors"
	"github.com/rxtech-lab/argo-analysis/pkg/marketdata"
	"github.com/rxtech-lab/argo-analysis/pkg/marketdata/provider"
)

// Analyzer is the entry point consumed by the API and CLI layers. One
// instance serves concurrent requests; every analysis builds its own
// result record.
type Analyzer struct {
	provider   provider.Provider
	indicators *indicator.Engine
	risk       *risk.Engine
	signals    *signal.Engine
	logger     *logger.Logger
}

// NewAnalyzer wires the engines together.
func NewAnalyzer(p provider.Provider, config Config, log *logger.Logger) (*Analyzer, error) {
	indicatorEngine, err := indicator.NewEngine(config.Indicator)
	if err != nil {
		return nil, err
	}

	riskEngine, err := risk.NewEngine(config.Risk)
	if err != nil {
		return nil, err
	}

	signalEngine, err := signal.NewEngine(config.Signal)
	if err != nil {
		return nil, err
	}

	return &Analyzer{
		provider:   p,
		indicators: indicatorEngine,
		risk:       riskEngine,
		signals:    signalEngine,
		logger:     log,
	}, nil
}

// Analyze runs the full pipeline for one symbol and period. A fetch
// failure or a series shorter than 2 bars aborts with
// ErrCodeDataUnavailable; insufficient history for individual windows
// degrades to undefined metrics and HOLD signals instead.
func (a *Analyzer) Analyze(ctx context.Context, symbol string, period marketdata.Period) (*types.AnalysisResult, error) {
	bars, err := a.provider.GetBars(ctx, symbol, period)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrCodeDataUnavailable, err, "fetch bars for %s", symbol)
	}

	if len(bars) < 2 {
		cause := errors.NewInsufficientDataErrorf(2, len(bars), symbol, "need at least 2 bars, got %d", len(bars))

		return nil, errors.Wrapf(errors.ErrCodeDataUnavailable, cause, "no usable price history for %s", symbol)
	}

	closes := types.Closes(bars)
	indicators := a.indicators.Compute(bars)
	signals := a.signals.Evaluate(bars, indicators)
	recommendation, strength := signal.Aggregate(signals)

	latest := bars[len(bars)-1]
	previous := bars[len(bars)-2]
	priceChange := latest.Close - previous.Close

	priceChangePct := 0.0
	if previous.Close != 0 {
		priceChangePct = priceChange / previous.Close * 100
	}

	result := &types.AnalysisResult{
		Symbol:         symbol,
		CurrentPrice:   round(latest.Close, 2),
		PriceChange:    round(priceChange, 2),
		PriceChangePct: round(priceChangePct, 2),
		Volume:         latest.Volume,
		Signals:        signals,
		SignalStrength: round(strength, 1),
		Recommendation: recommendation,
		Volatility:     a.risk.Volatility(closes),
		RiskMetrics:    a.risk.RiskAdjusted(closes),
		LastUpdated:    time.Now().UTC(),
		DataPoints:     len(bars),
	}

	a.logger.Info("analysis completed",
		zap.String("symbol", symbol),
		zap.String("period", string(period)),
		zap.String("recommendation", string(recommendation)),
		zap.Float64("strength", result.SignalStrength),
		zap.Int("data_points", result.DataPoints))

	return result, nil
}

// Sentiment returns the fundamental profile for a symbol, passed through
// from the provider without computation.
func (a *Analyzer) Sentiment(ctx context.Context, symbol string) (*types.StockProfile, error) {
	profile, err := a.provider.GetProfile(ctx, symbol)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrCodeSentimentUnavailable, err, "fetch profile for %s", symbol)
	}

	return profile, nil
}

func round(value float64, places int32) float64 {
	return decimal.NewFromFloat(value).Round(places).InexactFloat64()
}

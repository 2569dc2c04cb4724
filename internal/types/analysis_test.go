package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/moznion/go-optional"
	"github.com/stretchr/testify/suite"
)

type AnalysisTestSuite struct {
	suite.Suite
}

func TestAnalysisSuite(t *testing.T) {
	suite.Run(t, new(AnalysisTestSuite))
}

func (suite *AnalysisTestSuite) TestAnalysisResultWireContract() {
	result := AnalysisResult{
		Symbol:         "AAPL",
		CurrentPrice:   150.25,
		PriceChange:    1.25,
		PriceChangePct: 0.84,
		Volume:         1000000,
		Signals: SignalSet{
			RuleTypeMACrossover: SignalTypeBuy,
			RuleTypeRSI:         SignalTypeHold,
		},
		SignalStrength: 60.0,
		Recommendation: SignalTypeBuy,
		Volatility: VolatilityMetrics{
			DailyVolatility:      optional.Some(0.012),
			AnnualizedVolatility: optional.Some(0.19),
			MaxDrawdown:          optional.Some(-0.08),
			VaR95:                optional.Some(-0.02),
			CVaR95:               optional.Some(-0.03),
		},
		RiskMetrics: RiskMetrics{
			SharpeRatio:  optional.Some(1.2),
			SortinoRatio: optional.None[float64](),
			CalmarRatio:  optional.Some(0.9),
			TotalReturn:  optional.Some(12.5),
		},
		LastUpdated: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
		DataPoints:  252,
	}

	data, err := json.Marshal(result)
	suite.NoError(err)

	var decoded map[string]json.RawMessage
	suite.NoError(json.Unmarshal(data, &decoded))

	// Field names are the wire contract; presentation layers depend on them.
	for _, field := range []string{
		"symbol", "current_price", "price_change", "price_change_pct",
		"volume", "signals", "signal_strength", "recommendation",
		"volatility", "risk_metrics", "last_updated", "data_points",
	} {
		suite.Contains(decoded, field)
	}

	var risk map[string]json.RawMessage
	suite.NoError(json.Unmarshal(decoded["risk_metrics"], &risk))
	suite.Equal("null", string(risk["sortino_ratio"]))
	suite.Equal("1.2", string(risk["sharpe_ratio"]))

	var signals map[string]string
	suite.NoError(json.Unmarshal(decoded["signals"], &signals))
	suite.Equal("BUY", signals["MA_Crossover"])
	suite.Equal("HOLD", signals["RSI"])
}

func (suite *AnalysisTestSuite) TestVolatilityMetricsUndefinedMarshalsNull() {
	var metrics VolatilityMetrics

	data, err := json.Marshal(metrics)
	suite.NoError(err)

	var decoded map[string]json.RawMessage
	suite.NoError(json.Unmarshal(data, &decoded))

	for _, field := range []string{
		"daily_volatility", "annualized_volatility", "max_drawdown",
		"var_95", "cvar_95",
	} {
		suite.Equal("null", string(decoded[field]), field)
	}
}

func (suite *AnalysisTestSuite) TestStockProfileFieldNames() {
	profile := StockProfile{
		Symbol:    "AAPL",
		MarketCap: optional.Some(2.5e12),
		Sector:    optional.Some("Technology"),
	}

	data, err := json.Marshal(profile)
	suite.NoError(err)

	var decoded map[string]json.RawMessage
	suite.NoError(json.Unmarshal(data, &decoded))

	for _, field := range []string{
		"market_cap", "pe_ratio", "forward_pe", "price_to_book",
		"dividend_yield", "beta", "sector", "industry",
	} {
		suite.Contains(decoded, field)
	}

	suite.Equal("null", string(decoded["beta"]))
	suite.Equal(`"Technology"`, string(decoded["sector"]))
}

func (suite *AnalysisTestSuite) TestSignalSetCount() {
	set := SignalSet{
		RuleTypeMACrossover: SignalTypeBuy,
		RuleTypeMACD:        SignalTypeBuy,
		RuleTypeRSI:         SignalTypeSell,
		RuleTypeBollinger:   SignalTypeHold,
		RuleTypeStochastic:  SignalTypeHold,
	}

	buy, sell, hold := set.Count()
	suite.Equal(2, buy)
	suite.Equal(1, sell)
	suite.Equal(2, hold)
}

func (suite *AnalysisTestSuite) TestGenerateAnalysisResultSchema() {
	schemaJSON, err := GenerateAnalysisResultSchemaJSON()
	suite.NoError(err)
	suite.Contains(schemaJSON, "analysis-result")
	suite.Contains(schemaJSON, "current_price")
	suite.Contains(schemaJSON, "risk_metrics")
}

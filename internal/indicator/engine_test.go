package indicator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/rxtech-lab/argo-analysis/internal/types"
	"github.com/rxtech-lab/argo-analysis/pkg/errors"
)

type EngineTestSuite struct {
	suite.Suite
	engine *Engine
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

func (suite *EngineTestSuite) SetupTest() {
	engine, err := NewEngine(DefaultConfig())
	suite.Require().NoError(err)
	suite.engine = engine
}

func constantBars(n int, price float64) []types.Bar {
	bars := make([]types.Bar, n)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := range bars {
		bars[i] = types.Bar{
			Time:   start.AddDate(0, 0, i),
			Open:   price,
			High:   price,
			Low:    price,
			Close:  price,
			Volume: 1000,
		}
	}

	return bars
}

func (suite *EngineTestSuite) TestNewEngineInvalidConfig() {
	config := DefaultConfig()
	config.RSIPeriod = 0

	_, err := NewEngine(config)
	suite.Error(err)
	suite.Equal(errors.ErrCodeInvalidConfiguration, errors.GetCode(err))
}

func (suite *EngineTestSuite) TestNewEngineFastMustBeBelowSlow() {
	config := DefaultConfig()
	config.SMAFastWindow = 50
	config.SMASlowWindow = 20

	_, err := NewEngine(config)
	suite.Error(err)
}

func (suite *EngineTestSuite) TestComputeAlignment() {
	bars := constantBars(60, 100)
	set := suite.engine.Compute(bars)

	suite.Len(set, 12)

	for name, series := range set {
		suite.Len(series, 60, "series %s should be aligned with bars", name)
	}
}

func (suite *EngineTestSuite) TestConstantSeriesIdentities() {
	bars := constantBars(60, 100)
	set := suite.engine.Compute(bars)

	// SMA20 == SMA50 == price on every defined position.
	sma20 := set.Series(types.IndicatorTypeSMA20)
	sma50 := set.Series(types.IndicatorTypeSMA50)

	for i := 49; i < 60; i++ {
		suite.InDelta(100, sma20[i].Unwrap(), 1e-9)
		suite.InDelta(100, sma50[i].Unwrap(), 1e-9)
	}

	// Zero average loss resolves RSI to 100.
	suite.InDelta(100, set.Series(types.IndicatorTypeRSI).Latest().Unwrap(), 1e-9)

	// Bands collapse onto the price.
	suite.InDelta(100, set.Series(types.IndicatorTypeBBUpper).Latest().Unwrap(), 1e-9)
	suite.InDelta(100, set.Series(types.IndicatorTypeBBLower).Latest().Unwrap(), 1e-9)

	// Flat high/low range reads as neutral.
	suite.InDelta(50, set.Series(types.IndicatorTypeStochK).Latest().Unwrap(), 1e-9)
}

func (suite *EngineTestSuite) TestShortSeriesDegradesToUndefined() {
	bars := constantBars(10, 100)
	set := suite.engine.Compute(bars)

	for _, name := range []types.IndicatorType{
		types.IndicatorTypeSMA20,
		types.IndicatorTypeSMA50,
		types.IndicatorTypeEMA12,
		types.IndicatorTypeEMA26,
		types.IndicatorTypeMACD,
		types.IndicatorTypeMACDSignal,
		types.IndicatorTypeRSI,
		types.IndicatorTypeBBUpper,
		types.IndicatorTypeBBMiddle,
		types.IndicatorTypeBBLower,
		types.IndicatorTypeStochK,
		types.IndicatorTypeStochD,
	} {
		suite.True(set.Series(name).Latest().IsNone(), "series %s should be undefined", name)
	}
}

func (suite *EngineTestSuite) TestEmptySeries() {
	set := suite.engine.Compute(nil)
	suite.Len(set, 12)

	for name, series := range set {
		suite.Empty(series, "series %s", name)
	}
}

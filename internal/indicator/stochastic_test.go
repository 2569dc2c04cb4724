package indicator

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/rxtech-lab/argo-analysis/internal/types"
)

type StochasticTestSuite struct {
	suite.Suite
}

func TestStochasticSuite(t *testing.T) {
	suite.Run(t, new(StochasticTestSuite))
}

func barsFromHLC(highs, lows, closes []float64) []types.Bar {
	bars := make([]types.Bar, len(highs))
	for i := range bars {
		bars[i] = types.Bar{
			High:  highs[i],
			Low:   lows[i],
			Close: closes[i],
		}
	}

	return bars
}

func (suite *StochasticTestSuite) TestKnownValues() {
	bars := barsFromHLC(
		[]float64{10, 12, 11},
		[]float64{8, 9, 9},
		[]float64{9, 11, 10},
	)

	k, d := Stochastic(bars, 2, 2)

	suite.True(k[0].IsNone())
	suite.InDelta(75, k[1].Unwrap(), 1e-9)             // 100*(11-8)/(12-8)
	suite.InDelta(100.0/3.0, k[2].Unwrap(), 1e-9)      // 100*(10-9)/(12-9)
	suite.InDelta((75+100.0/3.0)/2, d[2].Unwrap(), 1e-9)
	suite.True(d[1].IsNone())
}

func (suite *StochasticTestSuite) TestFlatRangeIsNeutral() {
	bars := barsFromHLC(
		[]float64{10, 10, 10},
		[]float64{10, 10, 10},
		[]float64{10, 10, 10},
	)

	k, _ := Stochastic(bars, 2, 2)
	suite.InDelta(50, k[1].Unwrap(), 1e-9)
	suite.InDelta(50, k[2].Unwrap(), 1e-9)
}

func (suite *StochasticTestSuite) TestShortSeries() {
	bars := barsFromHLC([]float64{10}, []float64{9}, []float64{9.5})

	k, d := Stochastic(bars, 14, 3)
	suite.True(k.Latest().IsNone())
	suite.True(d.Latest().IsNone())
}

func (suite *StochasticTestSuite) TestBounded() {
	bars := barsFromHLC(
		[]float64{10, 12, 14, 13, 15, 16, 14, 13},
		[]float64{8, 9, 11, 10, 12, 13, 11, 10},
		[]float64{9, 11, 13, 11, 14, 15, 12, 11},
	)

	k, _ := Stochastic(bars, 3, 3)

	for i := range k {
		if k[i].IsSome() {
			suite.GreaterOrEqual(k[i].Unwrap(), 0.0)
			suite.LessOrEqual(k[i].Unwrap(), 100.0)
		}
	}
}

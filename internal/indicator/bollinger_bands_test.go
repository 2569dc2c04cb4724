package indicator

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type BollingerBandsTestSuite struct {
	suite.Suite
}

func TestBollingerBandsSuite(t *testing.T) {
	suite.Run(t, new(BollingerBandsTestSuite))
}

func (suite *BollingerBandsTestSuite) TestKnownValues() {
	// window=2, width=2: mean=2, population std=1 -> bands at 0 and 4.
	upper, middle, lower := BollingerBands([]float64{1, 3}, 2, 2)
	suite.InDelta(2, middle[1].Unwrap(), 1e-9)
	suite.InDelta(4, upper[1].Unwrap(), 1e-9)
	suite.InDelta(0, lower[1].Unwrap(), 1e-9)
}

func (suite *BollingerBandsTestSuite) TestConstantSeriesBandsCollapse() {
	values := make([]float64, 30)
	for i := range values {
		values[i] = 100
	}

	upper, middle, lower := BollingerBands(values, 20, 2)

	for i := 19; i < 30; i++ {
		suite.InDelta(100, upper[i].Unwrap(), 1e-9)
		suite.InDelta(100, middle[i].Unwrap(), 1e-9)
		suite.InDelta(100, lower[i].Unwrap(), 1e-9)
	}
}

func (suite *BollingerBandsTestSuite) TestUndefinedPrefix() {
	upper, middle, lower := BollingerBands([]float64{1, 2, 3, 4, 5}, 3, 2)

	for i := 0; i < 2; i++ {
		suite.True(upper[i].IsNone())
		suite.True(middle[i].IsNone())
		suite.True(lower[i].IsNone())
	}

	suite.True(upper[2].IsSome())
}

func (suite *BollingerBandsTestSuite) TestBandOrdering() {
	values := []float64{10, 11, 9, 12, 8, 13, 7, 14, 6, 15}
	upper, middle, lower := BollingerBands(values, 5, 2)

	for i := range values {
		if middle[i].IsSome() {
			suite.GreaterOrEqual(upper[i].Unwrap(), middle[i].Unwrap())
			suite.LessOrEqual(lower[i].Unwrap(), middle[i].Unwrap())
		}
	}
}

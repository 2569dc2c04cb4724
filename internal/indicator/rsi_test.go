package indicator

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type RSITestSuite struct {
	suite.Suite
}

func TestRSISuite(t *testing.T) {
	suite.Run(t, new(RSITestSuite))
}

func (suite *RSITestSuite) TestUndefinedBeforeWindow() {
	values := []float64{1, 2, 3, 4, 5}
	s := RSI(values, 3)

	for i := 0; i < 3; i++ {
		suite.True(s[i].IsNone())
	}

	suite.True(s[3].IsSome())
}

func (suite *RSITestSuite) TestPerfectUptrendIsHundred() {
	values := make([]float64, 30)
	for i := range values {
		values[i] = float64(100 + i)
	}

	s := RSI(values, 14)
	suite.InDelta(100, s.Latest().Unwrap(), 1e-9)
}

func (suite *RSITestSuite) TestZeroAverageLossIsHundred() {
	// Flat series has no losses; avg-loss == 0 resolves to 100.
	values := make([]float64, 20)
	for i := range values {
		values[i] = 50
	}

	s := RSI(values, 14)
	suite.InDelta(100, s.Latest().Unwrap(), 1e-9)
}

func (suite *RSITestSuite) TestWilderSmoothing() {
	// period=2: initial averages over (+1, +1) give rsi=100, then a -1
	// change smooths to avgGain=0.5, avgLoss=0.5 -> rsi=50.
	s := RSI([]float64{1, 2, 3, 2}, 2)
	suite.InDelta(100, s[2].Unwrap(), 1e-9)
	suite.InDelta(50, s[3].Unwrap(), 1e-9)
}

func (suite *RSITestSuite) TestBoundedBetweenZeroAndHundred() {
	values := []float64{10, 12, 9, 14, 8, 15, 7, 16, 6, 17, 5, 18, 4, 19, 3, 20}
	s := RSI(values, 5)

	for i := range s {
		if s[i].IsSome() {
			v := s[i].Unwrap()
			suite.GreaterOrEqual(v, 0.0)
			suite.LessOrEqual(v, 100.0)
		}
	}
}

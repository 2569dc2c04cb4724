package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/rxtech-lab/argo-analysis/internal/analyzer"
	"github.com/rxtech-lab/argo-analysis/internal/logger"
	"github.com/rxtech-lab/argo-analysis/internal/types"
	"github.com/rxtech-lab/argo-analysis/mocks"
	"github.com/rxtech-lab/argo-analysis/pkg/errors"
	"github.com/rxtech-lab/argo-analysis/pkg/marketdata"
)

type ServerTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	provider *mocks.MockProvider
	server   *Server
	ts       *httptest.Server
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func (suite *ServerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.provider = mocks.NewMockProvider(suite.ctrl)

	a, err := analyzer.NewAnalyzer(suite.provider, analyzer.DefaultConfig(), logger.NewNopLogger())
	suite.Require().NoError(err)

	config := DefaultConfig()
	config.Watchlist = []string{"AAPL", "MSFT"}

	server, err := NewServer(config, a, logger.NewNopLogger())
	suite.Require().NoError(err)
	suite.server = server

	suite.ts = httptest.NewServer(server.Router())
}

func (suite *ServerTestSuite) TearDownTest() {
	suite.ts.Close()
}

func (suite *ServerTestSuite) get(path string) (int, map[string]any) {
	resp, err := http.Get(suite.ts.URL + path)
	suite.Require().NoError(err)
	defer resp.Body.Close()

	var body map[string]any
	suite.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))

	return resp.StatusCode, body
}

func barSeries(n int, price float64) []types.Bar {
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

func (suite *ServerTestSuite) TestHealth() {
	status, body := suite.get("/health")
	suite.Equal(http.StatusOK, status)
	suite.Equal("ok", body["status"])
}

func (suite *ServerTestSuite) TestStockWireContract() {
	suite.provider.EXPECT().
		GetBars(gomock.Any(), "AAPL", marketdata.PeriodOneYear).
		Return(barSeries(10, 100), nil)

	status, body := suite.get("/api/stock/AAPL")
	suite.Equal(http.StatusOK, status)

	for _, key := range []string{
		"symbol", "current_price", "price_change", "price_change_pct",
		"volume", "signals", "signal_strength", "recommendation",
		"volatility", "risk_metrics", "last_updated", "data_points",
	} {
		suite.Contains(body, key)
	}

	suite.Equal("AAPL", body["symbol"])
	suite.Equal("HOLD", body["recommendation"])
	suite.InDelta(50, body["signal_strength"].(float64), 1e-9)

	signals := body["signals"].(map[string]any)
	for _, rule := range []string{"MA_Crossover", "MACD", "RSI", "Bollinger_Bands", "Stochastic"} {
		suite.Equal("HOLD", signals[rule])
	}

	// Undefined ratios are null on the wire, not NaN.
	riskMetrics := body["risk_metrics"].(map[string]any)
	suite.Nil(riskMetrics["sharpe_ratio"])
	suite.NotNil(riskMetrics["total_return"])
}

func (suite *ServerTestSuite) TestStockPeriodQuery() {
	suite.provider.EXPECT().
		GetBars(gomock.Any(), "AAPL", marketdata.PeriodThreeMonths).
		Return(barSeries(10, 100), nil)

	status, _ := suite.get("/api/stock/AAPL?period=3mo")
	suite.Equal(http.StatusOK, status)
}

func (suite *ServerTestSuite) TestStockInvalidPeriod() {
	status, body := suite.get("/api/stock/AAPL?period=14d")
	suite.Equal(http.StatusBadRequest, status)
	suite.EqualValues(errors.ErrCodeInvalidPeriod, body["code"].(float64))
}

func (suite *ServerTestSuite) TestStockDataUnavailable() {
	suite.provider.EXPECT().
		GetBars(gomock.Any(), "NOPE", marketdata.PeriodOneYear).
		Return(nil, errors.New(errors.ErrCodeMarketDataFetchFailed, "no such ticker"))

	status, body := suite.get("/api/stock/NOPE")
	suite.Equal(http.StatusNotFound, status)
	suite.EqualValues(errors.ErrCodeDataUnavailable, body["code"].(float64))
}

func (suite *ServerTestSuite) TestSentiment() {
	suite.provider.EXPECT().
		GetProfile(gomock.Any(), "AAPL").
		Return(&types.StockProfile{Symbol: "AAPL"}, nil)

	status, body := suite.get("/api/sentiment/AAPL")
	suite.Equal(http.StatusOK, status)
	suite.Equal("AAPL", body["symbol"])

	// Unavailable fields serialize as null.
	suite.Contains(body, "market_cap")
	suite.Nil(body["market_cap"])
}

func (suite *ServerTestSuite) TestSentimentUnavailable() {
	suite.provider.EXPECT().
		GetProfile(gomock.Any(), "BTCUSDT").
		Return(nil, errors.New(errors.ErrCodeSentimentUnavailable, "no profile data"))

	status, body := suite.get("/api/sentiment/BTCUSDT")
	suite.Equal(http.StatusNotFound, status)
	suite.EqualValues(errors.ErrCodeSentimentUnavailable, body["code"].(float64))
}

func (suite *ServerTestSuite) TestMarketOverviewSkipsFailures() {
	suite.provider.EXPECT().
		GetBars(gomock.Any(), "AAPL", marketdata.PeriodOneMonth).
		Return(barSeries(10, 100), nil)
	suite.provider.EXPECT().
		GetBars(gomock.Any(), "MSFT", marketdata.PeriodOneMonth).
		Return(nil, errors.New(errors.ErrCodeMarketDataFetchFailed, "boom"))

	status, body := suite.get("/api/market-overview")
	suite.Equal(http.StatusOK, status)
	suite.EqualValues(1, body["count"].(float64))
	suite.Len(body["stocks"].([]any), 1)
}

func (suite *ServerTestSuite) TestSchema() {
	status, body := suite.get("/api/schema")
	suite.Equal(http.StatusOK, status)
	suite.Equal("analysis-result", body["title"])
}

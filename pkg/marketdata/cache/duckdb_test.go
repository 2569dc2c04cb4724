package cache

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/rxtech-lab/argo-analysis/internal/logger"
	"github.com/rxtech-lab/argo-analysis/internal/types"
	"github.com/rxtech-lab/argo-analysis/pkg/marketdata"
)

type stubProvider struct {
	bars  []types.Bar
	calls int
}

func (s *stubProvider) Name() string {
	return "stub"
}

func (s *stubProvider) GetBars(_ context.Context, _ string, _ marketdata.Period) ([]types.Bar, error) {
	s.calls++

	return s.bars, nil
}

func (s *stubProvider) GetProfile(_ context.Context, symbol string) (*types.StockProfile, error) {
	return &types.StockProfile{Symbol: symbol}, nil
}

type CacheTestSuite struct {
	suite.Suite
	upstream *stubProvider
	cache    *CachedProvider
}

func TestCacheSuite(t *testing.T) {
	suite.Run(t, new(CacheTestSuite))
}

func (suite *CacheTestSuite) SetupTest() {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	suite.upstream = &stubProvider{
		bars: []types.Bar{
			{Time: start, Open: 100, High: 102, Low: 99, Close: 101, Volume: 1000},
			{Time: start.AddDate(0, 0, 1), Open: 101, High: 103, Low: 100, Close: 102, Volume: 1100},
		},
	}

	path := filepath.Join(suite.T().TempDir(), "cache.duckdb")

	cache, err := New(path, suite.upstream, DefaultTTL, logger.NewNopLogger())
	suite.Require().NoError(err)
	suite.cache = cache
}

func (suite *CacheTestSuite) TearDownTest() {
	suite.NoError(suite.cache.Close())
}

func (suite *CacheTestSuite) TestSecondFetchIsServedFromCache() {
	ctx := context.Background()

	bars, err := suite.cache.GetBars(ctx, "AAPL", marketdata.PeriodOneMonth)
	suite.Require().NoError(err)
	suite.Len(bars, 2)
	suite.Equal(1, suite.upstream.calls)

	cached, err := suite.cache.GetBars(ctx, "AAPL", marketdata.PeriodOneMonth)
	suite.Require().NoError(err)
	suite.Equal(1, suite.upstream.calls)

	suite.Require().Len(cached, 2)
	suite.InDelta(101, cached[0].Close, 1e-9)
	suite.InDelta(102, cached[1].Close, 1e-9)
	suite.True(cached[0].Time.Before(cached[1].Time))
}

func (suite *CacheTestSuite) TestDistinctPeriodsAreCachedSeparately() {
	ctx := context.Background()

	_, err := suite.cache.GetBars(ctx, "AAPL", marketdata.PeriodOneMonth)
	suite.Require().NoError(err)

	_, err = suite.cache.GetBars(ctx, "AAPL", marketdata.PeriodOneYear)
	suite.Require().NoError(err)

	suite.Equal(2, suite.upstream.calls)
}

func (suite *CacheTestSuite) TestZeroTTLAlwaysRefetches() {
	suite.cache.ttl = 0
	ctx := context.Background()

	_, err := suite.cache.GetBars(ctx, "AAPL", marketdata.PeriodOneMonth)
	suite.Require().NoError(err)

	_, err = suite.cache.GetBars(ctx, "AAPL", marketdata.PeriodOneMonth)
	suite.Require().NoError(err)

	suite.Equal(2, suite.upstream.calls)
}

func (suite *CacheTestSuite) TestProfilePassesThrough() {
	profile, err := suite.cache.GetProfile(context.Background(), "AAPL")
	suite.Require().NoError(err)
	suite.Equal("AAPL", profile.Symbol)
}

package provider

import (
	"context"
	"time"

	"github.com/moznion/go-optional"
	polygon "github.com/polygon-io/client-go/rest"
	"github.com/polygon-io/client-go/rest/models"

	"github.com/rxtech-lab/argo-analysis/internal/types"
	"github.com/rxtech-lab/argo-analysis/pkg/errors"
	"github.com/rxtech-lab/argo-analysis/pkg/marketdata"
)

type PolygonProvider struct {
	client *polygon.Client
}

func NewPolygonProvider(apiKey string) (Provider, error) {
	if apiKey == "" {
		return nil, errors.New(errors.ErrCodeInvalidConfiguration, "polygon provider requires an API key")
	}

	return &PolygonProvider{
		client: polygon.New(apiKey),
	}, nil
}

func (p *PolygonProvider) Name() string {
	return string(ProviderPolygon)
}

// GetBars fetches daily aggregates over the lookback window.
func (p *PolygonProvider) GetBars(ctx context.Context, symbol string, period marketdata.Period) ([]types.Bar, error) {
	now := time.Now()

	//nolint:exhaustruct // third-party struct with many optional fields
	params := models.ListAggsParams{
		Ticker:     symbol,
		Multiplier: 1,
		Timespan:   models.Day,
		From:       models.Millis(period.Start(now)),
		To:         models.Millis(now),
	}.WithLimit(50000)

	iter := p.client.ListAggs(ctx, params)

	var bars []types.Bar

	for iter.Next() {
		agg := iter.Item()
		bars = append(bars, types.Bar{
			Time:   time.Time(agg.Timestamp),
			Open:   agg.Open,
			High:   agg.High,
			Low:    agg.Low,
			Close:  agg.Close,
			Volume: agg.Volume,
		})
	}

	if iter.Err() != nil {
		return nil, errors.Wrapf(errors.ErrCodeMarketDataFetchFailed, iter.Err(), "polygon aggregates for %s", symbol)
	}

	return bars, nil
}

// GetProfile maps ticker details onto the profile record. Polygon carries
// no valuation ratios, so those fields stay null.
func (p *PolygonProvider) GetProfile(ctx context.Context, symbol string) (*types.StockProfile, error) {
	//nolint:exhaustruct // third-party struct with many optional fields
	details, err := p.client.GetTickerDetails(ctx, &models.GetTickerDetailsParams{
		Ticker: symbol,
	})
	if err != nil {
		return nil, errors.Wrapf(errors.ErrCodeSentimentUnavailable, err, "polygon ticker details for %s", symbol)
	}

	profile := &types.StockProfile{
		Symbol: symbol,
	}

	if details.Results.MarketCap > 0 {
		profile.MarketCap = optional.Some(details.Results.MarketCap)
	}

	if details.Results.SICDescription != "" {
		profile.Sector = optional.Some(details.Results.SICDescription)
	}

	return profile, nil
}

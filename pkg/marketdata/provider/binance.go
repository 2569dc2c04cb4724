package provider

import (
	"context"
	"strconv"
	"time"

	binance "github.com/adshao/go-binance/v2"

	"github.com/rxtech-lab/argo-analysis/internal/types"
	"github.com/rxtech-lab/argo-analysis/pkg/errors"
	"github.com/rxtech-lab/argo-analysis/pkg/marketdata"
)

// BinanceProvider fetches daily klines for crypto symbols. Binance has no
// fundamentals endpoint, so profiles are unavailable.
type BinanceProvider struct {
	client *binance.Client
}

func NewBinanceProvider() Provider {
	return &BinanceProvider{
		client: binance.NewClient("", ""),
	}
}

func (p *BinanceProvider) Name() string {
	return string(ProviderBinance)
}

func (p *BinanceProvider) GetBars(ctx context.Context, symbol string, period marketdata.Period) ([]types.Bar, error) {
	now := time.Now()
	startMillis := period.Start(now).UnixMilli()
	endMillis := now.UnixMilli()

	var bars []types.Bar

	// Binance caps each page at 500 klines.
	for {
		klines, err := p.client.NewKlinesService().
			Symbol(symbol).
			Interval("1d").
			StartTime(startMillis).
			EndTime(endMillis).
			Do(ctx)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrCodeMarketDataFetchFailed, err, "binance klines for %s", symbol)
		}

		for _, k := range klines {
			bar, err := klineToBar(k)
			if err != nil {
				return nil, err
			}

			bars = append(bars, bar)
		}

		if len(klines) < 500 {
			break
		}

		startMillis = klines[len(klines)-1].CloseTime + 1
		if startMillis >= endMillis {
			break
		}
	}

	return bars, nil
}

// GetProfile is unavailable for crypto symbols.
func (p *BinanceProvider) GetProfile(_ context.Context, symbol string) (*types.StockProfile, error) {
	return nil, errors.Newf(errors.ErrCodeSentimentUnavailable, "binance has no profile data for %s", symbol)
}

func klineToBar(k *binance.Kline) (types.Bar, error) {
	open, err := strconv.ParseFloat(k.Open, 64)
	if err != nil {
		return types.Bar{}, errors.Wrap(errors.ErrCodeMarketDataParseFailed, "parse kline open", err)
	}

	high, err := strconv.ParseFloat(k.High, 64)
	if err != nil {
		return types.Bar{}, errors.Wrap(errors.ErrCodeMarketDataParseFailed, "parse kline high", err)
	}

	low, err := strconv.ParseFloat(k.Low, 64)
	if err != nil {
		return types.Bar{}, errors.Wrap(errors.ErrCodeMarketDataParseFailed, "parse kline low", err)
	}

	closePrice, err := strconv.ParseFloat(k.Close, 64)
	if err != nil {
		return types.Bar{}, errors.Wrap(errors.ErrCodeMarketDataParseFailed, "parse kline close", err)
	}

	volume, err := strconv.ParseFloat(k.Volume, 64)
	if err != nil {
		return types.Bar{}, errors.Wrap(errors.ErrCodeMarketDataParseFailed, "parse kline volume", err)
	}

	return types.Bar{
		Time:   time.UnixMilli(k.OpenTime).UTC(),
		Open:   open,
		High:   high,
		Low:    low,
		Close:  closePrice,
		Volume: volume,
	}, nil
}

package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/moznion/go-optional"

	"github.com/rxtech-lab/argo-analysis/internal/types"
	"github.com/rxtech-lab/argo-analysis/pkg/errors"
	"github.com/rxtech-lab/argo-analysis/pkg/marketdata"
)

const yahooBaseURL = "https://query1.finance.yahoo.com"

// YahooProvider fetches bars from the Yahoo Finance chart API and profiles
// from the quoteSummary API. It is the only provider that fills the full
// profile record.
type YahooProvider struct {
	client  *http.Client
	baseURL string
}

func NewYahooProvider() Provider {
	return &YahooProvider{
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL: yahooBaseURL,
	}
}

func (p *YahooProvider) Name() string {
	return string(ProviderYahoo)
}

// yahooChart is the response structure of the chart API.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []*float64 `json:"open"`
					High   []*float64 `json:"high"`
					Low    []*float64 `json:"low"`
					Close  []*float64 `json:"close"`
					Volume []*float64 `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// yahooValue is Yahoo's formatted number wrapper; only the raw value matters.
type yahooValue struct {
	Raw float64 `json:"raw"`
}

// yahooQuoteSummary is the response structure of the quoteSummary API.
type yahooQuoteSummary struct {
	QuoteSummary struct {
		Result []struct {
			SummaryDetail *struct {
				MarketCap     *yahooValue `json:"marketCap"`
				TrailingPE    *yahooValue `json:"trailingPE"`
				ForwardPE     *yahooValue `json:"forwardPE"`
				DividendYield *yahooValue `json:"dividendYield"`
				Beta          *yahooValue `json:"beta"`
			} `json:"summaryDetail"`
			DefaultKeyStatistics *struct {
				PriceToBook *yahooValue `json:"priceToBook"`
			} `json:"defaultKeyStatistics"`
			AssetProfile *struct {
				Sector   string `json:"sector"`
				Industry string `json:"industry"`
			} `json:"assetProfile"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"quoteSummary"`
}

func (p *YahooProvider) getJSON(ctx context.Context, u string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return errors.Wrap(errors.ErrCodeMarketDataFetchFailed, "build yahoo request", err)
	}

	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := p.client.Do(req)
	if err != nil {
		return errors.Wrap(errors.ErrCodeMarketDataFetchFailed, "yahoo fetch", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(errors.ErrCodeMarketDataFetchFailed, "yahoo read body", err)
	}

	if resp.StatusCode != http.StatusOK {
		return errors.Newf(errors.ErrCodeMarketDataFetchFailed, "yahoo status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrap(errors.ErrCodeMarketDataParseFailed, "yahoo decode", err)
	}

	return nil
}

// GetBars fetches daily bars; Yahoo range strings match the period names.
func (p *YahooProvider) GetBars(ctx context.Context, symbol string, period marketdata.Period) ([]types.Bar, error) {
	u := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1d&range=%s",
		p.baseURL, url.PathEscape(symbol), period)

	var chart yahooChart
	if err := p.getJSON(ctx, u, &chart); err != nil {
		return nil, err
	}

	if chart.Chart.Error != nil {
		return nil, errors.Newf(errors.ErrCodeMarketDataFetchFailed, "yahoo api error: %s", chart.Chart.Error.Description)
	}

	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, errors.Newf(errors.ErrCodeDataUnavailable, "yahoo returned no data for %s", symbol)
	}

	result := chart.Chart.Result[0]
	quote := result.Indicators.Quote[0]
	bars := make([]types.Bar, 0, len(result.Timestamp))

	for i, ts := range result.Timestamp {
		// Null bars on holidays and halts.
		if i >= len(quote.Close) || quote.Close[i] == nil {
			continue
		}

		bar := types.Bar{
			Time:  time.Unix(ts, 0).UTC(),
			Close: *quote.Close[i],
		}

		if i < len(quote.Open) && quote.Open[i] != nil {
			bar.Open = *quote.Open[i]
		}

		if i < len(quote.High) && quote.High[i] != nil {
			bar.High = *quote.High[i]
		}

		if i < len(quote.Low) && quote.Low[i] != nil {
			bar.Low = *quote.Low[i]
		}

		if i < len(quote.Volume) && quote.Volume[i] != nil {
			bar.Volume = *quote.Volume[i]
		}

		bars = append(bars, bar)
	}

	sort.Slice(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })

	return bars, nil
}

// GetProfile fetches fundamentals from the quoteSummary API.
func (p *YahooProvider) GetProfile(ctx context.Context, symbol string) (*types.StockProfile, error) {
	u := fmt.Sprintf("%s/v10/finance/quoteSummary/%s?modules=summaryDetail,defaultKeyStatistics,assetProfile",
		p.baseURL, url.PathEscape(symbol))

	var summary yahooQuoteSummary
	if err := p.getJSON(ctx, u, &summary); err != nil {
		return nil, errors.Wrapf(errors.ErrCodeSentimentUnavailable, err, "yahoo profile for %s", symbol)
	}

	if summary.QuoteSummary.Error != nil {
		return nil, errors.Newf(errors.ErrCodeSentimentUnavailable, "yahoo api error: %s", summary.QuoteSummary.Error.Description)
	}

	if len(summary.QuoteSummary.Result) == 0 {
		return nil, errors.Newf(errors.ErrCodeSentimentUnavailable, "yahoo returned no profile for %s", symbol)
	}

	result := summary.QuoteSummary.Result[0]
	profile := &types.StockProfile{
		Symbol: symbol,
	}

	if detail := result.SummaryDetail; detail != nil {
		profile.MarketCap = optionalValue(detail.MarketCap)
		profile.PERatio = optionalValue(detail.TrailingPE)
		profile.ForwardPE = optionalValue(detail.ForwardPE)
		profile.DividendYield = optionalValue(detail.DividendYield)
		profile.Beta = optionalValue(detail.Beta)
	}

	if stats := result.DefaultKeyStatistics; stats != nil {
		profile.PriceToBook = optionalValue(stats.PriceToBook)
	}

	if asset := result.AssetProfile; asset != nil {
		if asset.Sector != "" {
			profile.Sector = optional.Some(asset.Sector)
		}

		if asset.Industry != "" {
			profile.Industry = optional.Some(asset.Industry)
		}
	}

	return profile, nil
}

func optionalValue(v *yahooValue) optional.Option[float64] {
	if v == nil {
		return optional.None[float64]()
	}

	return optional.Some(v.Raw)
}

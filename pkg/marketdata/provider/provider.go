// Package provider implements market data providers that supply daily
// OHLCV bars and fundamental profiles for the analysis pipeline.
package provider

import (
	"context"

	"github.com/rxtech-lab/argo-analysis/internal/types"
	"github.com/rxtech-lab/argo-analysis/pkg/errors"
	"github.com/rxtech-lab/argo-analysis/pkg/marketdata"
)

// ProviderType defines the type of market data provider.
type ProviderType string

const (
	ProviderPolygon ProviderType = "polygon"
	ProviderYahoo   ProviderType = "yahoo"
	ProviderBinance ProviderType = "binance"
)

// Config carries provider credentials and endpoints.
type Config struct {
	PolygonAPIKey string `yaml:"polygon_api_key"`
}

type Provider interface {
	// Name identifies the provider in logs and error messages.
	Name() string
	// GetBars returns daily OHLCV bars for the symbol over the lookback
	// period, ordered oldest first.
	GetBars(ctx context.Context, symbol string, period marketdata.Period) ([]types.Bar, error)
	// GetProfile returns fundamental and sentiment fields for the symbol.
	// Providers without a fundamentals endpoint return
	// ErrCodeSentimentUnavailable.
	GetProfile(ctx context.Context, symbol string) (*types.StockProfile, error)
}

// NewProvider creates a market data provider based on the provider type.
func NewProvider(providerType ProviderType, config Config) (Provider, error) {
	switch providerType {
	case ProviderPolygon:
		return NewPolygonProvider(config.PolygonAPIKey)
	case ProviderYahoo:
		return NewYahooProvider(), nil
	case ProviderBinance:
		return NewBinanceProvider(), nil
	default:
		return nil, errors.Newf(errors.ErrCodeInvalidProvider, "unsupported market data provider: %s", providerType)
	}
}

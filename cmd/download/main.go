package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v3"

	"github.com/rxtech-lab/argo-analysis/internal/logger"
	"github.com/rxtech-lab/argo-analysis/pkg/marketdata"
	"github.com/rxtech-lab/argo-analysis/pkg/marketdata/cache"
	"github.com/rxtech-lab/argo-analysis/pkg/marketdata/provider"
)

// downloadAction prefetches bars for every symbol and period combination
// into the DuckDB cache so later analyses run offline.
func downloadAction(ctx context.Context, cmd *cli.Command) error {
	symbols := cmd.StringSlice("symbol")
	if len(symbols) == 0 {
		return fmt.Errorf("at least one --symbol is required")
	}

	periods := make([]marketdata.Period, 0, len(cmd.StringSlice("period")))

	for _, raw := range cmd.StringSlice("period") {
		period, err := marketdata.ParsePeriod(raw)
		if err != nil {
			return err
		}

		periods = append(periods, period)
	}

	dataProvider, err := provider.NewProvider(
		provider.ProviderType(cmd.String("provider")),
		provider.Config{PolygonAPIKey: os.Getenv("POLYGON_API_KEY")},
	)
	if err != nil {
		return fmt.Errorf("failed to create provider: %w", err)
	}

	cached, err := cache.New(cmd.String("cache"), dataProvider, cache.DefaultTTL, logger.NewNopLogger())
	if err != nil {
		return fmt.Errorf("failed to open cache: %w", err)
	}
	defer cached.Close()

	bar := progressbar.NewOptions(len(symbols)*len(periods),
		progressbar.OptionSetDescription("Downloading bars"),
		progressbar.OptionShowCount())

	total := 0

	for _, symbol := range symbols {
		for _, period := range periods {
			bars, err := cached.GetBars(ctx, symbol, period)
			if err != nil {
				return fmt.Errorf("download %s %s: %w", symbol, period, err)
			}

			total += len(bars)

			bar.Add(1)
		}
	}

	bar.Finish()
	log.Printf("Cached %d bars for %d symbols.", total, len(symbols))

	return nil
}

func main() {
	cmd := &cli.Command{
		Name:  "download",
		Usage: "Prefetch historical bars into the analysis cache",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:     "symbol",
				Aliases:  []string{"s"},
				Usage:    "Symbols to prefetch",
				Required: true,
			},
			&cli.StringSliceFlag{
				Name:  "period",
				Usage: "Periods to prefetch (1mo, 3mo, 6mo, 1y, 2y, 5y)",
				Value: []string{string(marketdata.PeriodOneYear)},
			},
			&cli.StringFlag{
				Name:    "provider",
				Aliases: []string{"p"},
				Usage:   fmt.Sprintf("Data provider to use (e.g., %s, %s, %s)", provider.ProviderYahoo, provider.ProviderPolygon, provider.ProviderBinance),
				Value:   string(provider.ProviderYahoo),
			},
			&cli.StringFlag{
				Name:  "cache",
				Usage: "Path to the DuckDB cache database",
				Value: "data/cache.duckdb",
			},
		},
		Action: downloadAction,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

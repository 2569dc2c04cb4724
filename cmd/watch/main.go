package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"

	"github.com/rxtech-lab/argo-analysis/internal/analyzer"
	"github.com/rxtech-lab/argo-analysis/internal/logger"
	"github.com/rxtech-lab/argo-analysis/pkg/marketdata"
	"github.com/rxtech-lab/argo-analysis/pkg/marketdata/cache"
	"github.com/rxtech-lab/argo-analysis/pkg/marketdata/provider"
)

func watchAction(_ context.Context, cmd *cli.Command) error {
	period, err := marketdata.ParsePeriod(cmd.String("period"))
	if err != nil {
		return err
	}

	nopLogger := logger.NewNopLogger()

	dataProvider, err := provider.NewProvider(
		provider.ProviderType(cmd.String("provider")),
		provider.Config{PolygonAPIKey: os.Getenv("POLYGON_API_KEY")},
	)
	if err != nil {
		return fmt.Errorf("failed to create provider: %w", err)
	}

	if cachePath := cmd.String("cache"); cachePath != "" {
		cached, err := cache.New(cachePath, dataProvider, cache.DefaultTTL, nopLogger)
		if err != nil {
			return fmt.Errorf("failed to open cache: %w", err)
		}
		defer cached.Close()

		dataProvider = cached
	}

	config := analyzer.DefaultConfig()

	if configPath := cmd.String("config"); configPath != "" {
		config, err = analyzer.LoadConfig(configPath)
		if err != nil {
			return err
		}
	}

	a, err := analyzer.NewAnalyzer(dataProvider, config, nopLogger)
	if err != nil {
		return fmt.Errorf("failed to create analyzer: %w", err)
	}

	model := NewModel(a, period, cmd.Duration("refresh"), cmd.StringSlice("symbol"))
	program := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}

	return nil
}

func main() {
	cmd := &cli.Command{
		Name:  "watch",
		Usage: "Watch live technical analysis for a set of symbols",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "symbol",
				Aliases: []string{"s"},
				Usage:   "Symbols to watch; omit to enter them interactively",
			},
			&cli.StringFlag{
				Name:    "provider",
				Aliases: []string{"p"},
				Usage:   fmt.Sprintf("Data provider to use (e.g., %s, %s, %s)", provider.ProviderYahoo, provider.ProviderPolygon, provider.ProviderBinance),
				Value:   string(provider.ProviderYahoo),
			},
			&cli.StringFlag{
				Name:  "period",
				Usage: "Lookback period for the analysis (1mo, 3mo, 6mo, 1y, 2y, 5y)",
				Value: string(marketdata.PeriodOneYear),
			},
			&cli.DurationFlag{
				Name:  "refresh",
				Usage: "How often to refresh the analysis",
				Value: time.Minute,
			},
			&cli.StringFlag{
				Name:  "cache",
				Usage: "Path to a DuckDB cache database; empty disables caching",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a YAML analyzer config",
			},
		},
		Action: watchAction,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

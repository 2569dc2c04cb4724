package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/rxtech-lab/argo-analysis/internal/analyzer"
	"github.com/rxtech-lab/argo-analysis/internal/logger"
	"github.com/rxtech-lab/argo-analysis/internal/server"
	"github.com/rxtech-lab/argo-analysis/pkg/marketdata/cache"
	"github.com/rxtech-lab/argo-analysis/pkg/marketdata/provider"
)

func serverAction(ctx context.Context, cmd *cli.Command) error {
	zapLogger, err := logger.NewLogger()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer zapLogger.Sync()

	dataProvider, err := provider.NewProvider(
		provider.ProviderType(cmd.String("provider")),
		provider.Config{PolygonAPIKey: os.Getenv("POLYGON_API_KEY")},
	)
	if err != nil {
		return fmt.Errorf("failed to create provider: %w", err)
	}

	if cachePath := cmd.String("cache"); cachePath != "" {
		cached, err := cache.New(cachePath, dataProvider, cache.DefaultTTL, zapLogger)
		if err != nil {
			return fmt.Errorf("failed to open cache: %w", err)
		}
		defer cached.Close()

		dataProvider = cached
	}

	analyzerConfig := analyzer.DefaultConfig()

	if configPath := cmd.String("config"); configPath != "" {
		analyzerConfig, err = analyzer.LoadConfig(configPath)
		if err != nil {
			return err
		}
	}

	a, err := analyzer.NewAnalyzer(dataProvider, analyzerConfig, zapLogger)
	if err != nil {
		return fmt.Errorf("failed to create analyzer: %w", err)
	}

	serverConfig := server.DefaultConfig()
	serverConfig.Addr = cmd.String("addr")

	if watchlist := cmd.StringSlice("watchlist"); len(watchlist) > 0 {
		serverConfig.Watchlist = watchlist
	}

	srv, err := server.NewServer(serverConfig, a, zapLogger)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)

	go func() {
		zapLogger.Info("starting analysis server",
			zap.String("addr", serverConfig.Addr),
			zap.String("provider", dataProvider.Name()))
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	zapLogger.Info("shutting down")

	return srv.Shutdown(shutdownCtx)
}

func main() {
	cmd := &cli.Command{
		Name:  "server",
		Usage: "Serve the stock analysis HTTP API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "addr",
				Aliases: []string{"a"},
				Usage:   "Listen address",
				Value:   ":8080",
			},
			&cli.StringFlag{
				Name:    "provider",
				Aliases: []string{"p"},
				Usage:   fmt.Sprintf("Data provider to use (e.g., %s, %s, %s)", provider.ProviderYahoo, provider.ProviderPolygon, provider.ProviderBinance),
				Value:   string(provider.ProviderYahoo),
			},
			&cli.StringSliceFlag{
				Name:  "watchlist",
				Usage: "Symbols served by the market overview endpoint",
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
		Action: serverAction,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/moznion/go-optional"
	"github.com/urfave/cli/v3"

	"github.com/rxtech-lab/argo-analysis/internal/analyzer"
	"github.com/rxtech-lab/argo-analysis/internal/logger"
	"github.com/rxtech-lab/argo-analysis/internal/types"
	"github.com/rxtech-lab/argo-analysis/pkg/marketdata"
	"github.com/rxtech-lab/argo-analysis/pkg/marketdata/provider"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	labelStyle = lipgloss.NewStyle().Faint(true).Width(22)
	buyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	sellStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

func analyzeAction(ctx context.Context, cmd *cli.Command) error {
	symbol := strings.ToUpper(cmd.StringArg("symbol"))
	if symbol == "" {
		return fmt.Errorf("symbol argument is required")
	}

	period, err := marketdata.ParsePeriod(cmd.String("period"))
	if err != nil {
		return err
	}

	dataProvider, err := provider.NewProvider(
		provider.ProviderType(cmd.String("provider")),
		provider.Config{PolygonAPIKey: os.Getenv("POLYGON_API_KEY")},
	)
	if err != nil {
		return fmt.Errorf("failed to create provider: %w", err)
	}

	config := analyzer.DefaultConfig()

	if configPath := cmd.String("config"); configPath != "" {
		config, err = analyzer.LoadConfig(configPath)
		if err != nil {
			return err
		}
	}

	a, err := analyzer.NewAnalyzer(dataProvider, config, logger.NewNopLogger())
	if err != nil {
		return fmt.Errorf("failed to create analyzer: %w", err)
	}

	result, err := a.Analyze(ctx, symbol, period)
	if err != nil {
		return err
	}

	if cmd.String("format") == "json" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")

		return encoder.Encode(result)
	}

	printResult(result, period)

	return nil
}

func printResult(result *types.AnalysisResult, period marketdata.Period) {
	fmt.Println(titleStyle.Render(fmt.Sprintf("%s (%s, %d bars)", result.Symbol, period, result.DataPoints)))
	fmt.Println()

	fmt.Printf("%s %.2f (%+.2f, %+.2f%%)\n", labelStyle.Render("Price"), result.CurrentPrice, result.PriceChange, result.PriceChangePct)
	fmt.Printf("%s %s (strength %.1f)\n", labelStyle.Render("Recommendation"), renderSignal(result.Recommendation), result.SignalStrength)
	fmt.Println()

	fmt.Println(titleStyle.Render("Signals"))

	for _, rule := range types.AllRuleTypes {
		fmt.Printf("%s %s\n", labelStyle.Render(string(rule)), renderSignal(result.Signals[rule]))
	}

	fmt.Println()
	fmt.Println(titleStyle.Render("Volatility"))
	fmt.Printf("%s %s\n", labelStyle.Render("Daily"), renderMetric(result.Volatility.DailyVolatility, "%.4f"))
	fmt.Printf("%s %s\n", labelStyle.Render("Annualized"), renderMetric(result.Volatility.AnnualizedVolatility, "%.4f"))
	fmt.Printf("%s %s\n", labelStyle.Render("Max drawdown"), renderMetric(result.Volatility.MaxDrawdown, "%.4f"))
	fmt.Printf("%s %s\n", labelStyle.Render("VaR 95%"), renderMetric(result.Volatility.VaR95, "%.4f"))
	fmt.Printf("%s %s\n", labelStyle.Render("CVaR 95%"), renderMetric(result.Volatility.CVaR95, "%.4f"))

	fmt.Println()
	fmt.Println(titleStyle.Render("Risk-adjusted"))
	fmt.Printf("%s %s\n", labelStyle.Render("Sharpe"), renderMetric(result.RiskMetrics.SharpeRatio, "%.2f"))
	fmt.Printf("%s %s\n", labelStyle.Render("Sortino"), renderMetric(result.RiskMetrics.SortinoRatio, "%.2f"))
	fmt.Printf("%s %s\n", labelStyle.Render("Calmar"), renderMetric(result.RiskMetrics.CalmarRatio, "%.2f"))
	fmt.Printf("%s %s\n", labelStyle.Render("Total return"), renderMetric(result.RiskMetrics.TotalReturn, "%.2f%%"))
}

func renderSignal(signal types.SignalType) string {
	switch signal {
	case types.SignalTypeBuy:
		return buyStyle.Render(string(signal))
	case types.SignalTypeSell:
		return sellStyle.Render(string(signal))
	default:
		return string(signal)
	}
}

func renderMetric(value optional.Option[float64], format string) string {
	if value.IsNone() {
		return "n/a"
	}

	return fmt.Sprintf(format, value.Unwrap())
}

func main() {
	cmd := &cli.Command{
		Name:      "analyze",
		Usage:     "Run a one-shot technical analysis for a symbol",
		ArgsUsage: "SYMBOL",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name:      "symbol",
				UsageText: "Ticker symbol to analyze",
			},
		},
		Flags: []cli.Flag{
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
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: text or json",
				Value:   "text",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a YAML analyzer config",
			},
		},
		Action: analyzeAction,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

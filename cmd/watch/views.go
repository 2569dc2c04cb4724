package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/moznion/go-optional"

	"github.com/rxtech-lab/argo-analysis/internal/types"
)

// NewSymbolInput creates a new text input for symbol entry.
func NewSymbolInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "AAPL,MSFT,NVDA"
	ti.Focus()
	ti.CharLimit = 200
	ti.Width = 50
	ti.Prompt = "> "

	return ti
}

// ParseSymbols parses comma-separated symbols into a slice.
func ParseSymbols(input string) []string {
	parts := strings.Split(input, ",")
	symbols := make([]string, 0, len(parts))

	for _, p := range parts {
		s := strings.TrimSpace(strings.ToUpper(p))
		if s != "" {
			symbols = append(symbols, s)
		}
	}

	return symbols
}

// NewResultsTable creates a new table for displaying analysis results.
func NewResultsTable() table.Model {
	columns := []table.Column{
		{Title: "Symbol", Width: 10},
		{Title: "Price", Width: 14},
		{Title: "Change %", Width: 10},
		{Title: "Signal", Width: 8},
		{Title: "Strength", Width: 10},
		{Title: "Ann. Vol", Width: 10},
		{Title: "Drawdown", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)

	t.SetStyles(s)

	return t
}

// UpdateTableRows updates the table with the latest analysis results.
func UpdateTableRows(t table.Model, results map[string]*types.AnalysisResult, prevPrices map[string]float64) table.Model {
	symbols := make([]string, 0, len(results))
	for symbol := range results {
		symbols = append(symbols, symbol)
	}

	sort.Strings(symbols)

	rows := make([]table.Row, 0, len(results))

	for _, symbol := range symbols {
		result := results[symbol]

		rows = append(rows, table.Row{
			symbol,
			FormatPriceWithColor(result.CurrentPrice, prevPrices[symbol]),
			fmt.Sprintf("%+.2f", result.PriceChangePct),
			FormatRecommendation(result.Recommendation),
			fmt.Sprintf("%.1f", result.SignalStrength),
			formatMetric(result.Volatility.AnnualizedVolatility, "%.2f"),
			formatMetric(result.Volatility.MaxDrawdown, "%.2f"),
		})
	}

	t.SetRows(rows)

	return t
}

func formatMetric(value optional.Option[float64], format string) string {
	if value.IsNone() {
		return "-"
	}

	return fmt.Sprintf(format, value.Unwrap())
}

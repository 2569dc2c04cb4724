package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/rxtech-lab/argo-analysis/internal/types"
)

// Style definitions.
var (
	// TitleStyle for headers.
	TitleStyle = lipgloss.NewStyle().Bold(true)

	// HelpStyle for help text.
	HelpStyle = lipgloss.NewStyle().Faint(true)

	// ErrorStyle for error messages.
	ErrorStyle = lipgloss.NewStyle().Bold(true)

	buyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	sellStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// FormatPriceWithColor formats a price with an indicator based on comparison
// with the previous refresh.
func FormatPriceWithColor(current, previous float64) string {
	priceStr := fmt.Sprintf("%.2f", current)

	if previous == 0 {
		return priceStr
	}

	if current > previous {
		return priceStr + " ▲"
	} else if current < previous {
		return priceStr + " ▼"
	}

	return priceStr
}

// FormatRecommendation colors the recommendation label.
func FormatRecommendation(recommendation types.SignalType) string {
	switch recommendation {
	case types.SignalTypeBuy:
		return buyStyle.Render(string(recommendation))
	case types.SignalTypeSell:
		return sellStyle.Render(string(recommendation))
	default:
		return string(recommendation)
	}
}
